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
	// CubeType is the type of [Cube].
	CubeType = types.AddType("scene.Cube", ShapeType)

	// SphereType is the type of [Sphere].
	SphereType = types.AddType("scene.Sphere", ShapeType)
)

// Cube is an axis-aligned box centered at the origin.
type Cube struct {
	NodeBase

	// Size is the full extent of the box along each axis.
	Size math32.Vector3
}

// NewCube returns a new [Cube] with the default 2x2x2 size.
func NewCube(name ...string) *Cube {
	c := &Cube{}
	InitNode(c, name...)
	c.Defaults()
	return c
}

func (c *Cube) Defaults() {
	c.Size = math32.Vec3(2, 2, 2)
}

func (c *Cube) NodeType() *types.Type { return CubeType }

// cubeFaces are the corners of each unit cube face in counter-clockwise
// order seen from outside, with the face normal.
var cubeFaces = [6]struct {
	normal  math32.Vector3
	corners [4]math32.Vector3
}{
	{math32.Vec3(0, 0, 1), [4]math32.Vector3{math32.Vec3(-1, -1, 1), math32.Vec3(1, -1, 1), math32.Vec3(1, 1, 1), math32.Vec3(-1, 1, 1)}},
	{math32.Vec3(0, 0, -1), [4]math32.Vector3{math32.Vec3(1, -1, -1), math32.Vec3(-1, -1, -1), math32.Vec3(-1, 1, -1), math32.Vec3(1, 1, -1)}},
	{math32.Vec3(-1, 0, 0), [4]math32.Vector3{math32.Vec3(-1, -1, -1), math32.Vec3(-1, -1, 1), math32.Vec3(-1, 1, 1), math32.Vec3(-1, 1, -1)}},
	{math32.Vec3(1, 0, 0), [4]math32.Vector3{math32.Vec3(1, -1, 1), math32.Vec3(1, -1, -1), math32.Vec3(1, 1, -1), math32.Vec3(1, 1, 1)}},
	{math32.Vec3(0, 1, 0), [4]math32.Vector3{math32.Vec3(-1, 1, 1), math32.Vec3(1, 1, 1), math32.Vec3(1, 1, -1), math32.Vec3(-1, 1, -1)}},
	{math32.Vec3(0, -1, 0), [4]math32.Vector3{math32.Vec3(-1, -1, -1), math32.Vec3(1, -1, -1), math32.Vec3(1, -1, 1), math32.Vec3(-1, -1, 1)}},
}

var cubeTexCoords = [4]math32.Vector4{math32.Vec4(0, 0, 0, 1), math32.Vec4(1, 0, 0, 1), math32.Vec4(1, 1, 0, 1), math32.Vec4(0, 1, 0, 1)}

// GeneratePrimitives emits two triangles per face.
func (c *Cube) GeneratePrimitives(st *elements.State, emit TriangleFunc) {
	color := overallColor(st)
	needtc := needTexCoords(st)
	half := c.Size.MulScalar(0.5)
	var vs [4]PrimitiveVertex
	for _, f := range cubeFaces {
		for i, p := range f.corners {
			vs[i] = PrimitiveVertex{
				Point:    math32.Vec3(p.X*half.X, p.Y*half.Y, p.Z*half.Z),
				Normal:   f.normal,
				TexCoord: math32.Vec4(0, 0, 0, 1),
				Color:    color,
			}
			if needtc {
				vs[i].TexCoord = cubeTexCoords[i]
			}
		}
		emit(&vs[0], &vs[1], &vs[2])
		emit(&vs[0], &vs[2], &vs[3])
	}
}

// Sphere is a sphere centered at the origin, tessellated according
// to the current complexity.
type Sphere struct {
	NodeBase

	// Radius is the radius of the sphere.
	Radius float32
}

// NewSphere returns a new [Sphere] with radius 1.
func NewSphere(name ...string) *Sphere {
	s := &Sphere{Radius: 1}
	InitNode(s, name...)
	return s
}

func (s *Sphere) NodeType() *types.Type { return SphereType }

// Slices returns the number of longitudinal slices used at the
// given complexity in [0, 1]. The number of stacks is half of it.
func (s *Sphere) Slices(complexity float32) int {
	return 4 + 2*int(math32.Clamp(complexity, 0, 1)*30)
}

// NumTriangles returns the number of triangles generated at the
// given complexity.
func (s *Sphere) NumTriangles(complexity float32) int {
	slices := s.Slices(complexity)
	stacks := slices / 2
	return 2 * slices * (stacks - 1)
}

func (s *Sphere) GeneratePrimitives(st *elements.State, emit TriangleFunc) {
	color := overallColor(st)
	needtc := needTexCoords(st)
	slices := s.Slices(st.Complexity())
	stacks := slices / 2

	vertex := func(i, j int) PrimitiveVertex {
		theta := math32.Pi * float32(i) / float32(stacks)
		phi := 2 * math32.Pi * float32(j) / float32(slices)
		n := math32.Vec3(math32.Sin(theta)*math32.Sin(phi), math32.Cos(theta), math32.Sin(theta)*math32.Cos(phi))
		v := PrimitiveVertex{Point: n.MulScalar(s.Radius), Normal: n, Color: color, TexCoord: math32.Vec4(0, 0, 0, 1)}
		if needtc {
			v.TexCoord = math32.Vec4(float32(j)/float32(slices), 1-float32(i)/float32(stacks), 0, 1)
		}
		return v
	}

	for i := range stacks {
		for j := range slices {
			a, b := vertex(i, j), vertex(i+1, j)
			c, d := vertex(i+1, j+1), vertex(i, j+1)
			switch i {
			case 0:
				emit(&a, &b, &c)
			case stacks - 1:
				emit(&a, &b, &d)
			default:
				emit(&a, &b, &c)
				emit(&a, &c, &d)
			}
		}
	}
}
