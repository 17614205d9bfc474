// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcache

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/kazssym/coin/elements"
	"github.com/kazssym/coin/math32"
	"github.com/kazssym/coin/scene"
	"github.com/kazssym/coin/types"
)

func newState(textured bool) *elements.State {
	typs := make([]*types.Type, elements.NumSlots())
	ec := elements.MultiTextureEnabledClass
	typs[ec.Slot] = ec.Type
	st := elements.NewState(typs)
	st.SetTextureEnabled(0, textured)
	return st
}

func vertex(x, y float32, color uint32) *scene.PrimitiveVertex {
	return &scene.PrimitiveVertex{
		Point:    math32.Vec3(x, y, 0),
		Normal:   math32.Vec3(0, 0, 1),
		TexCoord: math32.Vec4(x, y, 0, 1),
		Color:    color,
	}
}

func TestMergesVertices(t *testing.T) {
	c := New(newState(false))
	c.AddTriangle(vertex(0, 0, 1), vertex(1, 0, 1), vertex(1, 1, 1))
	c.AddTriangle(vertex(0, 0, 1), vertex(1, 1, 1), vertex(0, 1, 1))

	assert.Equal(t, 4, c.NumVertices())
	assert.Equal(t, 2, c.NumTriangles())
	assert.Equal(t, 6, c.NumIndices())
	if diff := cmp.Diff([]int32{0, 1, 2, 0, 2, 3}, c.Indices()); diff != "" {
		t.Errorf("indices (-want +got):\n%s", diff)
	}
	want := []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0),
	}
	if diff := cmp.Diff(want, c.Vertices()); diff != "" {
		t.Errorf("vertices (-want +got):\n%s", diff)
	}
	assert.Len(t, c.Normals(), 4)
	assert.Nil(t, c.TexCoords())
	assert.False(t, c.HasTexCoords())
	assert.False(t, c.ColorPerVertex())
}

func TestTexCoordsKept(t *testing.T) {
	c := New(newState(true))
	c.AddTriangle(vertex(0, 0, 1), vertex(1, 0, 1), vertex(1, 1, 1))
	assert.True(t, c.HasTexCoords())
	if diff := cmp.Diff([]math32.Vector4{math32.Vec4(0, 0, 0, 1), math32.Vec4(1, 0, 0, 1), math32.Vec4(1, 1, 0, 1)}, c.TexCoords()); diff != "" {
		t.Errorf("texture coordinates (-want +got):\n%s", diff)
	}
}

func TestColorPerVertex(t *testing.T) {
	c := New(newState(false))
	_, ok := c.Color()
	assert.False(t, ok)
	c.AddTriangle(vertex(0, 0, 3), vertex(1, 0, 3), vertex(1, 1, 3))
	assert.False(t, c.ColorPerVertex())
	color, ok := c.Color()
	assert.True(t, ok)
	assert.Equal(t, uint32(3), color)

	// distinct colors at distinct positions
	c.AddTriangle(vertex(0, 0, 3), vertex(1, 1, 3), vertex(0, 1, 4))
	assert.True(t, c.ColorPerVertex())
	_, ok = c.Color()
	assert.False(t, ok)
	assert.Equal(t, []uint32{3, 3, 3, 4}, c.Colors())

	c.Release()
	assert.Zero(t, c.NumVertices())
}
