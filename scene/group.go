// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"
	"slices"

	"github.com/kazssym/coin/elements"
	"github.com/kazssym/coin/types"
)

var (
	// GroupType is the type of [Group].
	GroupType = types.AddType("scene.Group", NodeType)

	// SeparatorType is the type of [Separator].
	SeparatorType = types.AddType("scene.Separator", GroupType)

	// SwitchType is the type of [Switch].
	SwitchType = types.AddType("scene.Switch", GroupType)

	// ShapeHolderType is the type of [ShapeHolder].
	ShapeHolderType = types.AddType("scene.ShapeHolder", NodeType)
)

// Group is a generic container of any number of children.
// State changes made by its children remain in effect after it.
type Group struct {
	NodeBase

	// Children is the list of children of this node. Use the Group
	// methods to modify it so that reference counts are kept.
	Children []Node `copier:"-" json:"-"`
}

// NewGroup returns a new [Group] with the given optional name.
func NewGroup(name ...string) *Group {
	g := &Group{}
	InitNode(g, name...)
	return g
}

func (g *Group) NodeType() *types.Type { return GroupType }

func (g *Group) NumChildren() int { return len(g.Children) }

func (g *Group) PushesState() bool { return false }

// Child returns the child at the given index and returns nil if
// the index is out of range.
func (g *Group) Child(i int) Node {
	if i < 0 || i >= len(g.Children) {
		return nil
	}
	return g.Children[i]
}

// AddChild adds the given child at the end of the list of children.
func (g *Group) AddChild(kid Node) {
	kid.AsNode().Ref()
	g.Children = append(g.Children, kid)
}

// InsertChild inserts the given child at the given index.
func (g *Group) InsertChild(kid Node, i int) {
	kid.AsNode().Ref()
	g.Children = slices.Insert(g.Children, i, kid)
}

// RemoveChild removes the child at the given index. It returns false
// if there is no child at the given index.
func (g *Group) RemoveChild(i int) bool {
	kid := g.Child(i)
	if kid == nil {
		return false
	}
	g.Children = slices.Delete(g.Children, i, i+1)
	kid.AsNode().Unref()
	return true
}

// ReplaceChild replaces the child at the given index with the given node.
func (g *Group) ReplaceChild(i int, kid Node) {
	old := g.Child(i)
	if old == nil {
		slog.Error("scene.Group.ReplaceChild: index out of range", "group", g, "index", i)
		return
	}
	kid.AsNode().Ref()
	g.Children[i] = kid
	old.AsNode().Unref()
}

// IndexOf returns the index of the given child, or -1 if it is not a child.
func (g *Group) IndexOf(kid Node) int {
	return slices.Index(g.Children, kid)
}

// Destroy releases all children.
func (g *Group) Destroy() {
	kids := g.Children
	g.Children = nil
	for _, kid := range kids {
		kid.AsNode().Unref()
	}
}

// Separator is a [Group] that isolates the state changes made by its
// children from the rest of the scene.
type Separator struct {
	Group
}

// NewSeparator returns a new [Separator] with the given optional name.
func NewSeparator(name ...string) *Separator {
	s := &Separator{}
	InitNode(s, name...)
	return s
}

func (s *Separator) NodeType() *types.Type { return SeparatorType }

func (s *Separator) PushesState() bool { return true }

const (
	// SwitchNone selects no child of a [Switch].
	SwitchNone = -1

	// SwitchAll selects all children of a [Switch].
	SwitchAll = -3
)

// Switch is a [Group] that traverses only the selected child
// under normal traversal rules. Exhaustive traversals still visit
// every child.
type Switch struct {
	Group

	// WhichChild is the index of the child to traverse,
	// or [SwitchNone] or [SwitchAll].
	WhichChild int
}

// NewSwitch returns a new [Switch] selecting no child.
func NewSwitch(name ...string) *Switch {
	s := &Switch{WhichChild: SwitchNone}
	InitNode(s, name...)
	return s
}

func (s *Switch) NodeType() *types.Type { return SwitchType }

// SetWhichChild sets [Switch.WhichChild].
func (s *Switch) SetWhichChild(i int) *Switch {
	s.WhichChild = i
	return s
}

// TraversalChildren returns the selected child index, all indexes
// for [SwitchAll], or none.
func (s *Switch) TraversalChildren() []int {
	switch {
	case s.WhichChild == SwitchAll:
		idx := make([]int, len(s.Children))
		for i := range idx {
			idx[i] = i
		}
		return idx
	case s.WhichChild >= 0 && s.WhichChild < len(s.Children):
		return []int{s.WhichChild}
	}
	return nil
}

// ShapeHolder is a node that holds a single geometry node in a field,
// along with an optional appearance applied to it. The geometry is
// exposed as its only child, at index 0.
type ShapeHolder struct {
	NodeBase

	// Appearance is an optional material applied to the geometry.
	Appearance *Material `copier:"-" json:"-"`

	// Geometry is the shape node. Use [ShapeHolder.SetGeometry] to set it.
	Geometry Node `copier:"-" json:"-"`
}

// NewShapeHolder returns a new [ShapeHolder] holding the given geometry.
func NewShapeHolder(geometry Node, name ...string) *ShapeHolder {
	sh := &ShapeHolder{}
	InitNode(sh, name...)
	if geometry != nil {
		sh.SetGeometry(geometry)
	}
	return sh
}

func (sh *ShapeHolder) NodeType() *types.Type { return ShapeHolderType }

func (sh *ShapeHolder) PushesState() bool { return true }

// SetGeometry sets the geometry node.
func (sh *ShapeHolder) SetGeometry(n Node) {
	setNodeField(&sh.Geometry, n)
}

// SetAppearance sets the appearance material.
func (sh *ShapeHolder) SetAppearance(m *Material) {
	setNodeField(&sh.Appearance, m)
}

func (sh *ShapeHolder) NumChildren() int {
	if sh.Geometry == nil {
		return 0
	}
	return 1
}

func (sh *ShapeHolder) Child(i int) Node {
	if i != 0 {
		return nil
	}
	return sh.Geometry
}

// ReplaceChild sets the geometry; 0 is the only valid index.
func (sh *ShapeHolder) ReplaceChild(i int, kid Node) {
	if i != 0 {
		slog.Error("scene.ShapeHolder.ReplaceChild: index out of range", "holder", sh, "index", i)
		return
	}
	sh.SetGeometry(kid)
}

// ApplyState applies the appearance, if any.
func (sh *ShapeHolder) ApplyState(st *elements.State) {
	if sh.Appearance != nil {
		sh.Appearance.ApplyState(st)
	}
}

// Destroy releases the geometry and appearance.
func (sh *ShapeHolder) Destroy() {
	sh.SetGeometry(nil)
	sh.SetAppearance(nil)
}
