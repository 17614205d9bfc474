// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazssym/coin/elements"
	"github.com/kazssym/coin/math32"
	"github.com/kazssym/coin/types"
)

func fullState() *elements.State {
	all := elements.AllClasses()
	typs := make([]*types.Type, len(all))
	for i, c := range all {
		if c != nil {
			typs[i] = c.Type
		}
	}
	return elements.NewState(typs)
}

func collect(s Shape, st *elements.State) []PrimitiveVertex {
	var vs []PrimitiveVertex
	s.GeneratePrimitives(st, func(v1, v2, v3 *PrimitiveVertex) {
		vs = append(vs, *v1, *v2, *v3)
	})
	return vs
}

func quad() *FaceSet {
	return NewFaceSet([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0),
	}, []int{4}, "quad")
}

func TestNodeTypes(t *testing.T) {
	assert.True(t, SeparatorType.IsDerivedFrom(GroupType))
	assert.True(t, IndexedFaceSetType.IsDerivedFrom(VertexShapeType))
	assert.True(t, FaceSetType.IsDerivedFrom(ShapeType))
	assert.False(t, CubeType.IsDerivedFrom(VertexShapeType))
	assert.True(t, NewSeparator().IsOfType(GroupType))
	assert.Equal(t, "group:root", NewGroup("root").String())
}

func TestRefCounting(t *testing.T) {
	root := NewGroup("root")
	root.Ref()
	kid := quad()
	root.AddChild(kid)
	assert.Equal(t, 1, kid.RefCount())

	repl := NewCube()
	root.ReplaceChild(0, repl)
	assert.True(t, kid.IsDestroyed())
	assert.Equal(t, 1, repl.RefCount())
	assert.Same(t, repl, root.Child(0))

	root.Unref()
	assert.True(t, root.IsDestroyed())
	assert.True(t, repl.IsDestroyed())
	assert.Empty(t, root.Children)

	n := NewCube()
	n.Ref()
	n.UnrefNoDelete()
	assert.False(t, n.IsDestroyed())
	assert.Equal(t, 0, n.RefCount())
}

func TestShapeHolder(t *testing.T) {
	geom := quad()
	sh := NewShapeHolder(geom)
	sh.SetAppearance(NewMaterial(math32.NewColor(1, 0, 0)))
	assert.Equal(t, 1, sh.NumChildren())
	assert.Same(t, geom, sh.Child(0))
	assert.Nil(t, sh.Child(1))

	repl := NewIndexedFaceSet()
	sh.ReplaceChild(0, repl)
	assert.True(t, geom.IsDestroyed())
	assert.Same(t, repl, sh.Geometry.(*IndexedFaceSet))

	st := fullState()
	sh.ApplyState(st)
	assert.Equal(t, math32.NewColor(1, 0, 0), st.Diffuse())
}

func TestSwitchTraversalChildren(t *testing.T) {
	sw := NewSwitch()
	for range 3 {
		sw.AddChild(NewCube())
	}
	assert.Empty(t, sw.TraversalChildren())
	sw.SetWhichChild(1)
	assert.Equal(t, []int{1}, sw.TraversalChildren())
	sw.SetWhichChild(SwitchAll)
	assert.Equal(t, []int{0, 1, 2}, sw.TraversalChildren())
	sw.SetWhichChild(7)
	assert.Empty(t, sw.TraversalChildren())
}

func TestPathPopPush(t *testing.T) {
	root := NewSeparator("root")
	root.Ref()
	defer root.Unref()
	grp := NewGroup("grp")
	root.AddChild(NewCube())
	root.AddChild(grp)
	shape := quad()
	grp.AddChild(NewMaterial(math32.NewColor(0, 0, 1)))
	grp.AddChild(shape)

	p := NewPath(root).Append(1).Append(1)
	require.Equal(t, 3, p.Len())
	assert.Same(t, shape, p.Tail())
	assert.Equal(t, 1, p.IndexFromTail(0))
	assert.Same(t, grp, p.NodeFromTail(1))
	assert.Nil(t, p.NodeFromTail(5))
	assert.True(t, p.IsValid())
	assert.Equal(t, "/separator:root/group:grp/face-set:quad", p.String())
	assert.Equal(t, 2, shape.RefCount())

	cp := p.Copy()
	assert.Equal(t, 3, shape.RefCount())

	f := p.Pop()
	assert.Same(t, shape, f.Node)
	assert.Equal(t, 1, f.Index)
	assert.Same(t, grp, p.Tail())
	repl := NewCube()
	grp.ReplaceChild(f.Index, repl)
	p.Push(f.Index)
	assert.Same(t, repl, p.Tail())
	assert.True(t, p.IsValid())
	assert.False(t, cp.IsValid())
	assert.False(t, shape.IsDestroyed())

	cp.Release()
	assert.True(t, shape.IsDestroyed())
	assert.Equal(t, 0, cp.Len())

	snap := p.Snapshot()
	p.Truncate(1)
	assert.Same(t, root, p.Tail())
	p.Restore(snap)
	assert.Same(t, repl, p.Tail())
	assert.True(t, p.Contains(grp))
	p.Release()
	assert.False(t, repl.IsDestroyed())

	assert.Panics(t, func() { NewPath(root).Append(5) })
	assert.Panics(t, func() { NewPath(shape).AppendNode(root) })
}

func TestClone(t *testing.T) {
	root := NewSeparator("root")
	root.Ref()
	defer root.Unref()
	shared := quad()
	root.AddChild(shared)
	root.AddChild(NewShapeHolder(shared, "holder"))
	sw := NewSwitch("sw").SetWhichChild(0)
	root.AddChild(sw)
	ifs := NewIndexedFaceSet("ifs")
	ifs.VertexProperty.Vertex = []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)}
	ifs.CoordIndex = []int32{0, 1, 2, EndOfFace}
	sw.AddChild(ifs)

	cl := Clone(root).(*Separator)
	assert.NotSame(t, root, cl)
	assert.Equal(t, "root", cl.Name)
	assert.Equal(t, 0, cl.RefCount())
	require.Equal(t, 3, cl.NumChildren())
	cq := cl.Child(0).(*FaceSet)
	assert.NotSame(t, shared, cq)
	assert.Equal(t, shared.Coords, cq.Coords)
	assert.Same(t, cq, cl.Child(1).(*ShapeHolder).Geometry)
	assert.Equal(t, 2, cq.RefCount())

	csw := cl.Child(2).(*Switch)
	assert.Equal(t, 0, csw.WhichChild)
	cifs := csw.Child(0).(*IndexedFaceSet)
	assert.NotSame(t, ifs.VertexProperty, cifs.VertexProperty)
	assert.Equal(t, ifs.VertexProperty.Vertex, cifs.VertexProperty.Vertex)
	cifs.CoordIndex[0] = 2
	assert.Equal(t, int32(0), ifs.CoordIndex[0])
	assert.Equal(t, 1, cifs.VertexProperty.RefCount())

	// releasing the copy destroys it and leaves the source alone
	cl.Ref()
	cl.Unref()
	assert.True(t, cl.IsDestroyed())
	assert.True(t, cq.IsDestroyed())
	assert.True(t, cifs.IsDestroyed())
	assert.False(t, shared.IsDestroyed())
	assert.Equal(t, 2, shared.RefCount())
}

func TestFaceSetPrimitives(t *testing.T) {
	st := fullState()
	fs := quad()
	vs := collect(fs, st)
	require.Len(t, vs, 6)
	assert.Equal(t, 2, fs.NumTriangles())
	assert.Equal(t, math32.Vec3(0, 0, 1), vs[0].Normal)
	assert.Equal(t, math32.Vec4(0, 0, 0, 1), vs[1].TexCoord)
	assert.Equal(t, overallColor(st), vs[2].Color)

	st.SetTextureEnabled(0, true)
	vs = collect(fs, st)
	assert.Equal(t, math32.Vec4(1, 1, 0, 1), vs[2].TexCoord)

	fs.TexCoords = []math32.Vector2{math32.Vec2(0.5, 0.5), math32.Vec2(0.5, 0.5), math32.Vec2(0.5, 0.5), math32.Vec2(0.5, 0.5)}
	vs = collect(fs, st)
	assert.Equal(t, math32.Vec4(0.5, 0.5, 0, 1), vs[2].TexCoord)
	st.SetTexCoordMode(0, elements.TexCoordFunction)
	vs = collect(fs, st)
	assert.Equal(t, math32.Vec4(1, 1, 0, 1), vs[2].TexCoord)
	assert.Equal(t, math32.Vec4(1, 0, 0, 1), vs[1].TexCoord)
	st.SetTexCoordMode(0, elements.TexCoordTexGen)
	vs = collect(fs, st)
	assert.Equal(t, math32.Vec4(0, 0, 0, 1), vs[2].TexCoord)
	fs.TexCoords = nil
	st.SetTexCoordMode(0, elements.TexCoordDefault)

	fs.Colors = []math32.Color{math32.NewColor(1, 0, 0)}
	vs = collect(fs, st)
	assert.Equal(t, uint32(0xff0000ff), vs[0].Color)
	assert.Equal(t, overallColor(st), vs[1].Color)
}

func TestIndexedFaceSetPrimitives(t *testing.T) {
	st := fullState()
	ifs := NewIndexedFaceSet()
	vp := ifs.VertexProperty
	vp.Vertex = []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0),
	}
	vp.Normal = []math32.Vector3{math32.Vec3(0, 0, -1)}
	vp.NormalBinding = BindOverall
	vp.OrderedRGBA = []uint32{0x00ff00ff}
	vp.MaterialBinding = BindOverall
	ifs.CoordIndex = []int32{0, 1, 2, 3, EndOfFace, 0, 2, 3}
	assert.Equal(t, 2, ifs.NumFaces())

	vs := collect(ifs, st)
	require.Len(t, vs, 9)
	for _, v := range vs {
		assert.Equal(t, math32.Vec3(0, 0, -1), v.Normal)
		assert.Equal(t, uint32(0x00ff00ff), v.Color)
	}
	assert.Equal(t, vp.Vertex[3], vs[5].Point)

	vp.NormalBinding = BindDefault
	ifs.CoordIndex = []int32{0, 1, 9, EndOfFace}
	assert.Empty(t, collect(ifs, st))
}

func TestCubeAndSphere(t *testing.T) {
	st := fullState()
	assert.Len(t, collect(NewCube(), st), 36)

	sp := NewSphere()
	n := sp.NumTriangles(st.Complexity())
	assert.Len(t, collect(sp, st), 3*n)
	st.SetComplexity(0)
	assert.Equal(t, 4, sp.Slices(st.Complexity()))
	assert.Len(t, collect(sp, st), 3*sp.NumTriangles(0))
	assert.Less(t, sp.NumTriangles(0), n)
}
