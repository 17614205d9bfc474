// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vcache provides a cache of triangle vertices that merges equal
// vertices and builds an index array into the merged vertex arrays.
package vcache

import (
	"github.com/kazssym/coin/elements"
	"github.com/kazssym/coin/math32"
	"github.com/kazssym/coin/scene"
)

// Cache accumulates the vertices of triangles. Vertices that are equal in
// every attribute are stored once; each triangle adds three indices.
type Cache struct {
	vertices  []math32.Vector3
	normals   []math32.Vector3
	texCoords []math32.Vector4
	colors    []uint32
	indices   []int32

	// lookup maps a vertex to its index.
	lookup map[scene.PrimitiveVertex]int32

	// color is the color of the first vertex.
	color uint32

	textured       bool
	colorPerVertex bool
}

// New returns a new empty cache for the given traversal state, which
// determines whether texture coordinates are kept.
func New(st *elements.State) *Cache {
	return &Cache{
		lookup:   map[scene.PrimitiveVertex]int32{},
		textured: st.TextureEnabled(0),
	}
}

// AddTriangle adds the three vertices of a triangle.
func (c *Cache) AddTriangle(v1, v2, v3 *scene.PrimitiveVertex) {
	c.indices = append(c.indices, c.add(v1), c.add(v2), c.add(v3))
}

func (c *Cache) add(v *scene.PrimitiveVertex) int32 {
	key := *v
	if !c.textured {
		key.TexCoord = math32.Vector4{}
	}
	if i, ok := c.lookup[key]; ok {
		return i
	}
	i := int32(len(c.vertices))
	if i == 0 {
		c.color = key.Color
	} else if key.Color != c.color {
		c.colorPerVertex = true
	}
	c.lookup[key] = i
	c.vertices = append(c.vertices, key.Point)
	c.normals = append(c.normals, key.Normal)
	c.texCoords = append(c.texCoords, key.TexCoord)
	c.colors = append(c.colors, key.Color)
	return i
}

// NumVertices returns the number of distinct vertices.
func (c *Cache) NumVertices() int {
	return len(c.vertices)
}

// NumIndices returns the number of indices, three per triangle.
func (c *Cache) NumIndices() int {
	return len(c.indices)
}

// NumTriangles returns the number of triangles added.
func (c *Cache) NumTriangles() int {
	return len(c.indices) / 3
}

// Vertices returns the positions of the distinct vertices.
func (c *Cache) Vertices() []math32.Vector3 {
	return c.vertices
}

// Normals returns the normals of the distinct vertices.
func (c *Cache) Normals() []math32.Vector3 {
	return c.normals
}

// TexCoords returns the homogeneous texture coordinates of the distinct
// vertices, or nil if the cache does not keep texture coordinates.
func (c *Cache) TexCoords() []math32.Vector4 {
	if !c.textured {
		return nil
	}
	return c.texCoords
}

// Colors returns the packed colors of the distinct vertices.
func (c *Cache) Colors() []uint32 {
	return c.colors
}

// Indices returns the vertex indices, three per triangle.
func (c *Cache) Indices() []int32 {
	return c.indices
}

// HasTexCoords returns whether texture coordinates are kept.
func (c *Cache) HasTexCoords() bool {
	return c.textured
}

// ColorPerVertex returns whether the vertices do not all have the same color.
func (c *Cache) ColorPerVertex() bool {
	return c.colorPerVertex
}

// Color returns the color shared by all of the vertices, and false
// if there are no vertices or they do not share one color.
func (c *Cache) Color() (uint32, bool) {
	if len(c.vertices) == 0 || c.colorPerVertex {
		return 0, false
	}
	return c.color, true
}

// Release drops the cached data.
func (c *Cache) Release() {
	*c = Cache{}
}
