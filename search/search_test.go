// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazssym/coin/math32"
	"github.com/kazssym/coin/scene"
)

// testScene returns:
//
//	root
//	  a (cube)
//	  sep
//	    b (sphere)
//	    a (cube)
//	  sw (selects none)
//	    c (cube)
//	  holder
//	    d (face set)
func testScene() *scene.Separator {
	root := scene.NewSeparator("root")
	root.Ref()
	root.AddChild(scene.NewCube("a"))
	sep := scene.NewSeparator("sep")
	sep.AddChild(scene.NewSphere("b"))
	sep.AddChild(scene.NewCube("a"))
	root.AddChild(sep)
	sw := scene.NewSwitch("sw")
	sw.AddChild(scene.NewCube("c"))
	root.AddChild(sw)
	fs := scene.NewFaceSet([]math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)}, nil, "d")
	root.AddChild(scene.NewShapeHolder(fs, "holder"))
	return root
}

func tails(paths []*scene.Path) []string {
	var names []string
	for _, p := range paths {
		names = append(names, p.Tail().AsNode().Name)
	}
	return names
}

func TestNoCriteria(t *testing.T) {
	root := testScene()
	defer root.Unref()
	for _, in := range []Interests{First, Last, All} {
		s := New().SetInterest(in).SetSearchingAll(true)
		s.Apply(root)
		assert.Nil(t, s.Path(), in.String())
		assert.Empty(t, s.Paths(), in.String())
		assert.False(t, s.IsFound())
	}
}

func TestFirst(t *testing.T) {
	root := testScene()
	defer root.Unref()
	s := New().SetType(scene.CubeType, false)
	s.Apply(root)
	require.NotNil(t, s.Path())
	assert.True(t, s.IsFound())
	assert.Same(t, root.Child(0), s.Path().Tail())
	assert.Equal(t, 2, s.Path().Len())

	s.SetName("a").SetInterest(First)
	s.Apply(root)
	assert.Same(t, root.Child(0), s.Path().Tail())

	s.Reset()
	s.SetNode(root.Child(1).(*scene.Separator).Child(1))
	s.Apply(root)
	require.NotNil(t, s.Path())
	assert.Equal(t, "/separator:root/separator:sep/cube:a", s.Path().String())
}

func TestLast(t *testing.T) {
	root := testScene()
	defer root.Unref()
	s := New().SetName("a").SetInterest(Last)
	s.Apply(root)
	require.NotNil(t, s.Path())
	assert.False(t, s.IsFound())
	assert.Equal(t, 3, s.Path().Len())
	assert.Empty(t, s.Paths())
}

func TestAll(t *testing.T) {
	root := testScene()
	defer root.Unref()
	s := New().SetType(scene.ShapeType, true).SetInterest(All)
	s.Apply(root)
	assert.Equal(t, []string{"a", "b", "a", "d"}, tails(s.Paths()))
	assert.Nil(t, s.Path())

	s.SetSearchingAll(true)
	s.Apply(root)
	assert.Equal(t, []string{"a", "b", "a", "c", "d"}, tails(s.Paths()))
	for _, p := range s.Paths() {
		assert.True(t, p.IsValid())
	}

	s.SetType(scene.VertexShapeType, true)
	s.Apply(root)
	assert.Equal(t, []string{"d"}, tails(s.Paths()))

	s.SetName("nothing")
	s.Apply(root)
	assert.Empty(t, s.Paths())
}

func TestExactType(t *testing.T) {
	root := testScene()
	defer root.Unref()
	s := New().SetType(scene.GroupType, false).SetInterest(All)
	s.Apply(root)
	assert.Empty(t, s.Paths())
	s.SetType(scene.GroupType, true)
	s.Apply(root)
	assert.Equal(t, []string{"root", "sep", "sw"}, tails(s.Paths()))
	typ, derived := s.Type()
	assert.Same(t, scene.GroupType, typ)
	assert.True(t, derived)
}

func TestReset(t *testing.T) {
	root := testScene()
	defer root.Unref()
	s := New().SetName("a").SetInterest(All).SetSearchingAll(true)
	s.Apply(root)
	paths := s.Paths()
	require.Len(t, paths, 2)
	refs := root.RefCount()

	s.Reset()
	assert.Equal(t, refs-2, root.RefCount())
	assert.Equal(t, LookForMask(0), s.Find())
	assert.Equal(t, First, s.Interest())
	assert.False(t, s.IsSearchingAll())
	assert.Nil(t, s.Node())
	assert.Empty(t, s.Name())
	typ, derived := s.Type()
	assert.Nil(t, typ)
	assert.True(t, derived)

	s.Apply(root)
	fresh := New()
	fresh.Apply(root)
	assert.Equal(t, fresh.Path(), s.Path())
	assert.Equal(t, fresh.Paths(), s.Paths())
}

func TestFindMask(t *testing.T) {
	s := New().SetNode(nil).SetName("x")
	assert.Equal(t, Mask(LookForNode, LookForName), s.Find())
	assert.True(t, s.Find().Has(LookForName))
	assert.False(t, s.Find().Has(LookForType))
	s.SetFind(Mask(LookForName))
	assert.Equal(t, Mask(LookForName), s.Find())
}

func TestContractBreaches(t *testing.T) {
	root := testScene()
	defer root.Unref()

	s := New().SetName("a")
	s.Apply(root)
	require.True(t, s.IsFound())
	assert.Panics(t, func() { s.addPath(scene.NewPath(root)) })

	s = New().SetName("a").SetInterest(Interests(7))
	assert.Panics(t, func() { s.Apply(root) })
	assert.Equal(t, "Interests(7)", Interests(7).String())
}
