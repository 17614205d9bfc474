// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/kazssym/coin/callback"
	"github.com/kazssym/coin/math32"
	"github.com/kazssym/coin/scene"
)

// sceneConfig describes a generated scene.
type sceneConfig struct {
	// Grids is the number of face set grids.
	Grids int

	// GridSize is the number of quads along each side of a grid.
	GridSize int

	// Boxes is the number of indexed face set boxes, each under a
	// shape holder.
	Boxes int

	// Hidden is the number of invisible face sets.
	Hidden int

	// Textured enables a texture on unit 0 for the whole scene.
	Textured bool
}

// palette is cycled through for the materials of generated shapes.
var palette = []math32.Color{
	math32.NewColor(0.8, 0.2, 0.2),
	math32.NewColor(0.2, 0.8, 0.2),
	math32.NewColor(0.2, 0.2, 0.8),
	math32.NewColor(0.8, 0.8, 0.2),
}

// buildScene returns the root of a new scene for the given config,
// with one reference held by the caller.
func buildScene(cfg *sceneConfig) *scene.Separator {
	root := scene.NewSeparator("root")
	root.Ref()
	if cfg.Textured {
		root.AddChild(scene.NewTexture2(0, 256, 256, "texture"))
	}
	for i := range cfg.Grids {
		sep := scene.NewSeparator(fmt.Sprintf("grid-%d", i))
		sep.AddChild(scene.NewMaterial(palette[i%len(palette)]))
		sep.AddChild(newGrid(cfg.GridSize, float32(i), fmt.Sprintf("grid-%d", i)))
		root.AddChild(sep)
	}
	for i := range cfg.Boxes {
		sh := scene.NewShapeHolder(newBox(float32(i)*3, fmt.Sprintf("box-%d", i)), fmt.Sprintf("holder-%d", i))
		sh.SetAppearance(scene.NewMaterial(palette[(i+1)%len(palette)]))
		root.AddChild(sh)
	}
	for i := range cfg.Hidden {
		sep := scene.NewSeparator(fmt.Sprintf("hidden-%d", i))
		sep.AddChild(scene.NewDrawStyle(true))
		sep.AddChild(newGrid(1, -float32(i)-1, fmt.Sprintf("hidden-%d", i)))
		root.AddChild(sep)
	}
	// shapes without vertex data are left alone
	root.AddChild(scene.NewCube("cube"))
	root.AddChild(scene.NewSphere("sphere"))
	return root
}

// newGrid returns a face set of n by n unit quads in the plane z.
func newGrid(n int, z float32, name string) *scene.FaceSet {
	n = max(n, 1)
	coords := make([]math32.Vector3, 0, 4*n*n)
	nv := make([]int, 0, n*n)
	for y := range n {
		for x := range n {
			fx, fy := float32(x), float32(y)
			coords = append(coords,
				math32.Vec3(fx, fy, z), math32.Vec3(fx+1, fy, z),
				math32.Vec3(fx+1, fy+1, z), math32.Vec3(fx, fy+1, z))
			nv = append(nv, 4)
		}
	}
	return scene.NewFaceSet(coords, nv, name)
}

// boxIndex is the coordinate index of the six faces of a box
// with the corners ordered as in newBox.
var boxIndex = []int32{
	0, 3, 2, 1, scene.EndOfFace,
	4, 5, 6, 7, scene.EndOfFace,
	0, 1, 5, 4, scene.EndOfFace,
	1, 2, 6, 5, scene.EndOfFace,
	2, 3, 7, 6, scene.EndOfFace,
	3, 0, 4, 7, scene.EndOfFace,
}

// newBox returns an indexed face set of a unit box offset along x.
func newBox(x float32, name string) *scene.IndexedFaceSet {
	ifs := scene.NewIndexedFaceSet(name)
	vp := ifs.VertexProperty
	for i := range 8 {
		px := x + float32(i&1^i>>1&1)
		py := float32(i >> 1 & 1)
		pz := float32(i >> 2 & 1)
		vp.Vertex = append(vp.Vertex, math32.Vec3(px, py, pz))
	}
	ifs.CoordIndex = append(ifs.CoordIndex, boxIndex...)
	return ifs
}

// countTriangles returns the number of triangles generated by all the
// shapes in the graph rooted at the given node.
func countTriangles(root scene.Node) int {
	n := 0
	a := callback.New()
	a.AddTriangleCallback(scene.ShapeType, func(a *callback.Action, s scene.Node, v1, v2, v3 *scene.PrimitiveVertex) {
		n++
	})
	a.Apply(root)
	return n
}
