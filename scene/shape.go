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
	// ShapeType is the abstract type of all shapes.
	ShapeType = types.AddAbstractType("scene.Shape", NodeType)

	// VertexShapeType is the abstract type of shapes defined by
	// explicit vertex data.
	VertexShapeType = types.AddAbstractType("scene.VertexShape", ShapeType)

	// FaceSetType is the type of [FaceSet].
	FaceSetType = types.AddType("scene.FaceSet", VertexShapeType)
)

// PrimitiveVertex is one vertex of a tessellated triangle.
type PrimitiveVertex struct {
	// Point is the position in object space.
	Point math32.Vector3

	// Normal is the unit normal.
	Normal math32.Vector3

	// TexCoord is the homogeneous texture coordinate of unit 0.
	TexCoord math32.Vector4

	// Color is the packed 0xRRGGBBAA color.
	Color uint32
}

// TriangleFunc receives the three vertices of a triangle.
// The vertices are only valid for the duration of the call.
type TriangleFunc func(v1, v2, v3 *PrimitiveVertex)

// Shape is a node that can be tessellated into triangles.
type Shape interface {
	Node

	// GeneratePrimitives tessellates the shape in the given state,
	// calling emit for each triangle.
	GeneratePrimitives(st *elements.State, emit TriangleFunc)
}

// overallColor returns the packed color of the current material.
func overallColor(st *elements.State) uint32 {
	d := st.Diffuse()
	return math32.NewColorTransparency(d.R, d.G, d.B, st.Transparency()).Packed()
}

// needTexCoords returns whether unit 0 texture coordinates must be
// computed by the shape in the given state.
func needTexCoords(st *elements.State) bool {
	if !st.TextureEnabled(0) {
		return false
	}
	switch st.TexCoordMode(0) {
	case elements.TexCoordDefault, elements.TexCoordExplicit, elements.TexCoordFunction:
		return true
	}
	return false
}

// texCoordFunction returns whether unit 0 texture coordinates are a
// function of the vertex position, ignoring those stored in the shape.
// The function is the bounding box projection of [texCoordMapper].
func texCoordFunction(st *elements.State) bool {
	return st.TextureEnabled(0) && st.TexCoordMode(0) == elements.TexCoordFunction
}

// texCoordMapper generates default texture coordinates by projecting
// points onto the two largest dimensions of a bounding box.
type texCoordMapper struct {
	min   math32.Vector3
	size  [3]float32
	sAxis int
	tAxis int
}

func newTexCoordMapper(pts []math32.Vector3) *texCoordMapper {
	tm := &texCoordMapper{}
	if len(pts) == 0 {
		return tm
	}
	mn, mx := pts[0], pts[0]
	for _, p := range pts[1:] {
		mn = mn.Min(p)
		mx = mx.Max(p)
	}
	tm.min = mn
	tm.size = [3]float32{mx.X - mn.X, mx.Y - mn.Y, mx.Z - mn.Z}
	for ax := range 3 {
		if tm.size[ax] > tm.size[tm.sAxis] {
			tm.sAxis = ax
		}
	}
	tm.tAxis = -1
	for ax := range 3 {
		if ax == tm.sAxis {
			continue
		}
		if tm.tAxis < 0 || tm.size[ax] > tm.size[tm.tAxis] {
			tm.tAxis = ax
		}
	}
	return tm
}

func (tm *texCoordMapper) texCoord(p math32.Vector3) math32.Vector4 {
	c := [3]float32{p.X - tm.min.X, p.Y - tm.min.Y, p.Z - tm.min.Z}
	// t is scaled by the s extent to keep the texture aspect ratio
	var s, t float32
	if sz := tm.size[tm.sAxis]; sz > 0 {
		s = c[tm.sAxis] / sz
		t = c[tm.tAxis] / sz
	}
	return math32.Vec4(s, t, 0, 1)
}

// FaceSet is a set of polygons given by explicit per-vertex data.
// Polygons are convex and are tessellated as triangle fans.
type FaceSet struct {
	NodeBase

	// Coords are the vertex positions, consumed in order by the faces.
	Coords []math32.Vector3

	// NumVertices is the number of vertices of each face.
	// If empty, all Coords form a single face.
	NumVertices []int

	// Normals are optional per-vertex normals. If empty,
	// a flat normal is computed for each face.
	Normals []math32.Vector3

	// TexCoords are optional per-vertex texture coordinates.
	TexCoords []math32.Vector2

	// Colors are optional per-vertex colors. If empty,
	// the current material is used.
	Colors []math32.Color
}

// NewFaceSet returns a new [FaceSet] with the given coordinates
// and face sizes.
func NewFaceSet(coords []math32.Vector3, numVertices []int, name ...string) *FaceSet {
	fs := &FaceSet{Coords: coords, NumVertices: numVertices}
	InitNode(fs, name...)
	return fs
}

func (fs *FaceSet) NodeType() *types.Type { return FaceSetType }

// NumTriangles returns the number of triangles the faces tessellate into.
func (fs *FaceSet) NumTriangles() int {
	n := 0
	for _, nv := range fs.faces() {
		if nv >= 3 {
			n += nv - 2
		}
	}
	return n
}

func (fs *FaceSet) faces() []int {
	if len(fs.NumVertices) == 0 {
		return []int{len(fs.Coords)}
	}
	return fs.NumVertices
}

func (fs *FaceSet) GeneratePrimitives(st *elements.State, emit TriangleFunc) {
	color := overallColor(st)
	var tm *texCoordMapper
	needtc := needTexCoords(st)
	if needtc && (texCoordFunction(st) || len(fs.TexCoords) < len(fs.Coords)) {
		tm = newTexCoordMapper(fs.Coords)
	}
	vertex := func(i int, faceNormal math32.Vector3) PrimitiveVertex {
		v := PrimitiveVertex{Point: fs.Coords[i], Normal: faceNormal, Color: color}
		if i < len(fs.Normals) {
			v.Normal = fs.Normals[i]
		}
		if i < len(fs.Colors) {
			v.Color = fs.Colors[i].Packed()
		}
		switch {
		case !needtc:
			v.TexCoord = math32.Vec4(0, 0, 0, 1)
		case tm != nil:
			v.TexCoord = tm.texCoord(v.Point)
		default:
			v.TexCoord = math32.Vector4FromVector2(fs.TexCoords[i])
		}
		return v
	}

	start := 0
	for _, nv := range fs.faces() {
		if nv < 0 || start+nv > len(fs.Coords) {
			break
		}
		if nv >= 3 {
			fn := math32.Normal(fs.Coords[start], fs.Coords[start+1], fs.Coords[start+2])
			v0 := vertex(start, fn)
			for k := 1; k+1 < nv; k++ {
				v1 := vertex(start+k, fn)
				v2 := vertex(start+k+1, fn)
				emit(&v0, &v1, &v2)
			}
		}
		start += nv
	}
}
