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
	// VertexPropertyType is the type of [VertexProperty].
	VertexPropertyType = types.AddType("scene.VertexProperty", NodeType)

	// IndexedFaceSetType is the type of [IndexedFaceSet].
	IndexedFaceSetType = types.AddType("scene.IndexedFaceSet", VertexShapeType)
)

// Bindings are the ways per-vertex attribute values are bound to faces.
type Bindings int32

const (
	// BindDefault computes the attribute (normals) or uses the
	// current state (materials).
	BindDefault Bindings = iota

	// BindOverall uses the first value for the whole shape.
	BindOverall

	// BindPerVertex uses the values in vertex order.
	BindPerVertex

	// BindPerVertexIndexed uses the values through an index array.
	BindPerVertexIndexed
)

var bindingNames = [...]string{"Default", "Overall", "PerVertex", "PerVertexIndexed"}

func (b Bindings) String() string {
	if b < 0 || int(b) >= len(bindingNames) {
		return "Bindings(invalid)"
	}
	return bindingNames[b]
}

// EndOfFace is the index value that terminates each face in the
// index arrays of an [IndexedFaceSet].
const EndOfFace = -1

// VertexProperty holds the per-vertex attribute arrays of an
// [IndexedFaceSet].
type VertexProperty struct {
	NodeBase

	// Vertex are the vertex positions.
	Vertex []math32.Vector3

	// Normal are the normals, bound by NormalBinding.
	Normal []math32.Vector3

	// TexCoord are the 2D texture coordinates of unit 0.
	TexCoord []math32.Vector2

	// OrderedRGBA are packed 0xRRGGBBAA colors, bound by MaterialBinding.
	OrderedRGBA []uint32

	// NormalBinding is how Normal values are bound.
	NormalBinding Bindings

	// MaterialBinding is how OrderedRGBA values are bound.
	MaterialBinding Bindings
}

// NewVertexProperty returns a new empty [VertexProperty].
func NewVertexProperty(name ...string) *VertexProperty {
	vp := &VertexProperty{}
	InitNode(vp, name...)
	return vp
}

func (vp *VertexProperty) NodeType() *types.Type { return VertexPropertyType }

// IndexedFaceSet is a set of polygons given by index runs into the arrays
// of its [VertexProperty], each run terminated by [EndOfFace].
type IndexedFaceSet struct {
	NodeBase

	// VertexProperty holds the vertex data.
	// Use [IndexedFaceSet.SetVertexProperty] to set it.
	VertexProperty *VertexProperty `copier:"-" json:"-"`

	// CoordIndex indexes VertexProperty.Vertex.
	CoordIndex []int32

	// NormalIndex indexes VertexProperty.Normal; CoordIndex is used if empty.
	NormalIndex []int32

	// MaterialIndex indexes VertexProperty.OrderedRGBA; CoordIndex is used if empty.
	MaterialIndex []int32

	// TextureCoordIndex indexes VertexProperty.TexCoord; CoordIndex is used if empty.
	TextureCoordIndex []int32
}

// NewIndexedFaceSet returns a new [IndexedFaceSet] with a new
// empty [VertexProperty].
func NewIndexedFaceSet(name ...string) *IndexedFaceSet {
	ifs := &IndexedFaceSet{}
	InitNode(ifs, name...)
	ifs.SetVertexProperty(NewVertexProperty())
	return ifs
}

func (ifs *IndexedFaceSet) NodeType() *types.Type { return IndexedFaceSetType }

// SetVertexProperty sets the vertex property node.
func (ifs *IndexedFaceSet) SetVertexProperty(vp *VertexProperty) {
	setNodeField(&ifs.VertexProperty, vp)
}

// Destroy releases the vertex property node.
func (ifs *IndexedFaceSet) Destroy() {
	ifs.SetVertexProperty(nil)
}

// NumFaces returns the number of index runs in CoordIndex.
func (ifs *IndexedFaceSet) NumFaces() int {
	n := 0
	run := 0
	for _, ci := range ifs.CoordIndex {
		if ci == EndOfFace {
			if run > 0 {
				n++
			}
			run = 0
			continue
		}
		run++
	}
	if run > 0 {
		n++
	}
	return n
}

func indexOr(idx []int32, i int, fallback int32) int32 {
	if i < len(idx) {
		return idx[i]
	}
	return fallback
}

func (ifs *IndexedFaceSet) GeneratePrimitives(st *elements.State, emit TriangleFunc) {
	vp := ifs.VertexProperty
	if vp == nil {
		return
	}
	color := overallColor(st)
	if len(vp.OrderedRGBA) > 0 && vp.MaterialBinding != BindDefault {
		color = vp.OrderedRGBA[0]
	}
	needtc := needTexCoords(st)
	var tm *texCoordMapper
	if needtc && (texCoordFunction(st) || len(vp.TexCoord) == 0) {
		tm = newTexCoordMapper(vp.Vertex)
	}

	vertexNum := 0
	vertex := func(i int, faceNormal math32.Vector3) (PrimitiveVertex, bool) {
		ci := ifs.CoordIndex[i]
		if ci < 0 || int(ci) >= len(vp.Vertex) {
			return PrimitiveVertex{}, false
		}
		v := PrimitiveVertex{Point: vp.Vertex[ci], Normal: faceNormal, Color: color}
		switch vp.NormalBinding {
		case BindPerVertexIndexed:
			if ni := indexOr(ifs.NormalIndex, i, ci); ni >= 0 && int(ni) < len(vp.Normal) {
				v.Normal = vp.Normal[ni]
			}
		case BindPerVertex:
			if vertexNum < len(vp.Normal) {
				v.Normal = vp.Normal[vertexNum]
			}
		case BindOverall:
			if len(vp.Normal) > 0 {
				v.Normal = vp.Normal[0]
			}
		}
		switch vp.MaterialBinding {
		case BindPerVertexIndexed:
			if mi := indexOr(ifs.MaterialIndex, i, ci); mi >= 0 && int(mi) < len(vp.OrderedRGBA) {
				v.Color = vp.OrderedRGBA[mi]
			}
		case BindPerVertex:
			if vertexNum < len(vp.OrderedRGBA) {
				v.Color = vp.OrderedRGBA[vertexNum]
			}
		}
		switch {
		case !needtc:
			v.TexCoord = math32.Vec4(0, 0, 0, 1)
		case tm != nil:
			v.TexCoord = tm.texCoord(v.Point)
		default:
			if ti := indexOr(ifs.TextureCoordIndex, i, ci); ti >= 0 && int(ti) < len(vp.TexCoord) {
				v.TexCoord = math32.Vector4FromVector2(vp.TexCoord[ti])
			} else {
				v.TexCoord = math32.Vec4(0, 0, 0, 1)
			}
		}
		vertexNum++
		return v, true
	}

	start := 0
	for i := 0; i <= len(ifs.CoordIndex); i++ {
		if i < len(ifs.CoordIndex) && ifs.CoordIndex[i] != EndOfFace {
			continue
		}
		ifs.emitFace(start, i, vertex, emit)
		start = i + 1
	}
}

// emitFace tessellates the face made of CoordIndex[start:end] as a fan.
func (ifs *IndexedFaceSet) emitFace(start, end int, vertex func(int, math32.Vector3) (PrimitiveVertex, bool), emit TriangleFunc) {
	if end-start < 3 {
		return
	}
	vp := ifs.VertexProperty
	var fn math32.Vector3
	c0, c1, c2 := ifs.CoordIndex[start], ifs.CoordIndex[start+1], ifs.CoordIndex[start+2]
	if c0 >= 0 && c1 >= 0 && c2 >= 0 && int(max(c0, c1, c2)) < len(vp.Vertex) {
		fn = math32.Normal(vp.Vertex[c0], vp.Vertex[c1], vp.Vertex[c2])
	}
	v0, ok := vertex(start, fn)
	if !ok {
		return
	}
	v1, ok := vertex(start+1, fn)
	if !ok {
		return
	}
	for k := start + 2; k < end; k++ {
		v2, ok := vertex(k, fn)
		if !ok {
			return
		}
		emit(&v0, &v1, &v2)
		v1 = v2
	}
}
