// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/kazssym/coin/elements"
	"github.com/kazssym/coin/math32"
	"github.com/kazssym/coin/types"
)

var (
	// MaterialType is the type of [Material].
	MaterialType = types.AddType("scene.Material", NodeType)

	// Texture2Type is the type of [Texture2].
	Texture2Type = types.AddType("scene.Texture2", NodeType)

	// TextureCoordinateModeType is the type of [TextureCoordinateMode].
	TextureCoordinateModeType = types.AddType("scene.TextureCoordinateMode", NodeType)

	// DrawStyleType is the type of [DrawStyle].
	DrawStyleType = types.AddType("scene.DrawStyle", NodeType)

	// BumpMapType is the type of [BumpMap].
	BumpMapType = types.AddType("scene.BumpMap", NodeType)

	// ComplexityType is the type of [Complexity].
	ComplexityType = types.AddType("scene.Complexity", NodeType)
)

// Material sets the flat diffuse color and transparency.
type Material struct {
	NodeBase

	// Diffuse is the diffuse color; its alpha is ignored.
	Diffuse math32.Color

	// Transparency is 0 for fully opaque, 1 for fully transparent.
	Transparency float32
}

// NewMaterial returns a new [Material] with the given diffuse color.
func NewMaterial(diffuse math32.Color, name ...string) *Material {
	m := &Material{Diffuse: diffuse}
	InitNode(m, name...)
	return m
}

func (m *Material) NodeType() *types.Type { return MaterialType }

// SetTransparency sets [Material.Transparency].
func (m *Material) SetTransparency(t float32) *Material {
	m.Transparency = t
	return m
}

func (m *Material) ApplyState(st *elements.State) {
	st.SetDiffuse(m.Diffuse)
	st.SetTransparency(m.Transparency)
}

// MaxTextureSize is the largest texture width or height
// that can be used without resizing.
const MaxTextureSize = 4096

// Texture2 enables a 2D texture image on a texture unit.
// Only the image dimensions are kept.
type Texture2 struct {
	NodeBase

	// Unit is the texture unit.
	Unit int

	// Enabled turns texturing on or off for the unit.
	Enabled bool

	// Width and Height are the image dimensions in pixels.
	Width, Height int
}

// NewTexture2 returns a new enabled [Texture2] on the given unit.
func NewTexture2(unit, width, height int, name ...string) *Texture2 {
	tx := &Texture2{Unit: unit, Enabled: true, Width: width, Height: height}
	InitNode(tx, name...)
	return tx
}

func (tx *Texture2) NodeType() *types.Type { return Texture2Type }

// IsOversized returns whether the image exceeds [MaxTextureSize].
func (tx *Texture2) IsOversized() bool {
	return tx.Width > MaxTextureSize || tx.Height > MaxTextureSize
}

func (tx *Texture2) ApplyState(st *elements.State) {
	st.SetTextureEnabled(tx.Unit, tx.Enabled)
	if tx.Unit == 0 {
		st.SetShapeStyle(elements.BigImage, tx.Enabled && tx.IsOversized())
	}
}

// TextureCoordinateMode sets how texture coordinates are obtained
// for a texture unit.
type TextureCoordinateMode struct {
	NodeBase

	// Unit is the texture unit.
	Unit int

	// Mode is the texture coordinate mode.
	Mode elements.TexCoordMode
}

// NewTextureCoordinateMode returns a new [TextureCoordinateMode].
func NewTextureCoordinateMode(unit int, mode elements.TexCoordMode, name ...string) *TextureCoordinateMode {
	tc := &TextureCoordinateMode{Unit: unit, Mode: mode}
	InitNode(tc, name...)
	return tc
}

func (tc *TextureCoordinateMode) NodeType() *types.Type { return TextureCoordinateModeType }

func (tc *TextureCoordinateMode) ApplyState(st *elements.State) {
	st.SetTexCoordMode(tc.Unit, tc.Mode)
}

// DrawStyle controls whether shapes are drawn.
type DrawStyle struct {
	NodeBase

	// Invisible hides the shapes that follow.
	Invisible bool
}

// NewDrawStyle returns a new [DrawStyle].
func NewDrawStyle(invisible bool, name ...string) *DrawStyle {
	ds := &DrawStyle{Invisible: invisible}
	InitNode(ds, name...)
	return ds
}

func (ds *DrawStyle) NodeType() *types.Type { return DrawStyleType }

func (ds *DrawStyle) ApplyState(st *elements.State) {
	st.SetShapeStyle(elements.Invisible, ds.Invisible)
}

// BumpMap activates bump mapping for the shapes that follow.
type BumpMap struct {
	NodeBase

	// Enabled turns bump mapping on or off.
	Enabled bool
}

// NewBumpMap returns a new enabled [BumpMap].
func NewBumpMap(name ...string) *BumpMap {
	bm := &BumpMap{Enabled: true}
	InitNode(bm, name...)
	return bm
}

func (bm *BumpMap) NodeType() *types.Type { return BumpMapType }

func (bm *BumpMap) ApplyState(st *elements.State) {
	st.SetShapeStyle(elements.BumpMap, bm.Enabled)
}

// ComplexityTypes are the ways a [Complexity] value is interpreted.
type ComplexityTypes int32

const (
	// ObjectSpace complexity is a fixed tessellation level.
	ObjectSpace ComplexityTypes = iota

	// ScreenSpace complexity depends on the projected size.
	ScreenSpace

	// BoundingBox draws shapes as their bounding boxes.
	BoundingBox
)

// Complexity sets the tessellation complexity for the shapes that follow.
type Complexity struct {
	NodeBase

	// Value is the complexity in the 0-1 range.
	Value float32

	// Type is how the value is interpreted.
	Type ComplexityTypes
}

// NewComplexity returns a new object space [Complexity].
func NewComplexity(value float32, name ...string) *Complexity {
	c := &Complexity{Value: value}
	InitNode(c, name...)
	return c
}

func (c *Complexity) NodeType() *types.Type { return ComplexityType }

func (c *Complexity) ApplyState(st *elements.State) {
	st.SetComplexity(math32.Clamp(c.Value, 0, 1))
	st.SetShapeStyle(elements.BBoxComplex, c.Type == BoundingBox)
}
