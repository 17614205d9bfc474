// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image/color"
)

// Color is an RGBA color with float32 components in the 0-1 range.
// A is opacity (1 - transparency).
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new opaque [Color] with the given components.
func NewColor(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NewColorTransparency returns a new [Color] from the given rgb
// components and transparency, storing 1 - transparency as alpha.
func NewColorTransparency(r, g, b, transparency float32) Color {
	return Color{R: r, G: g, B: b, A: 1 - transparency}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%v, %v, %v, %v)", c.R, c.G, c.B, c.A)
}

// Packed returns the color packed as 0xRRGGBBAA.
func (c Color) Packed() uint32 {
	return uint32(toByte(c.R))<<24 | uint32(toByte(c.G))<<16 | uint32(toByte(c.B))<<8 | uint32(toByte(c.A))
}

// ColorFromPacked returns a [Color] from a 0xRRGGBBAA packed value.
func ColorFromPacked(p uint32) Color {
	return Color{
		R: float32(p>>24&0xff) / 255,
		G: float32(p>>16&0xff) / 255,
		B: float32(p>>8&0xff) / 255,
		A: float32(p&0xff) / 255,
	}
}

// AsRGBA returns the color as a standard non-premultiplied [color.NRGBA].
func (c Color) AsRGBA() color.NRGBA {
	return color.NRGBA{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B), A: toByte(c.A)}
}

func toByte(f float32) uint8 {
	return uint8(Clamp(f, 0, 1)*255 + 0.5)
}
