// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
// Texture coordinates are carried through traversals as Vector4 values.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4FromVector2 returns a new [Vector4] from the given [Vector2],
// with 0 for Z and 1 for W.
func Vector4FromVector2(v Vector2) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: 0, W: 1}
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Set sets this vector X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// PerspDiv returns the X and Y components divided by W.
// If W is zero, X and Y are returned unchanged.
func (v Vector4) PerspDiv() Vector2 {
	if v.W == 0 {
		return Vec2(v.X, v.Y)
	}
	return Vec2(v.X/v.W, v.Y/v.W)
}
