// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"
	"reflect"

	"github.com/jinzhu/copier"
)

// nodeCloner is implemented by nodes that hold other nodes, which
// are not copied by the automatic field copy.
type nodeCloner interface {
	cloneNodesFrom(from Node, cl *cloner)
}

// cloner keeps the clones made so far, so that a node shared by
// several parents is cloned only once.
type cloner struct {
	clones map[Node]Node
}

// Clone returns a deep copy of the graph from the given node down.
// Nodes that are shared within the graph are shared in the copy too.
// The returned node has a reference count of zero.
func Clone(n Node) Node {
	if n == nil {
		return nil
	}
	cl := &cloner{clones: map[Node]Node{}}
	return cl.clone(n)
}

func (cl *cloner) clone(from Node) Node {
	if nc, ok := cl.clones[from]; ok {
		return nc
	}
	nc := reflect.New(reflect.TypeOf(from).Elem()).Interface().(Node)
	InitNode(nc)
	cl.clones[from] = nc
	copyFieldsFrom(nc, from)
	nb := nc.AsNode()
	nb.refs, nb.destroyed = 0, false
	nb.SetName(from.AsNode().Name)
	if c, ok := nc.(nodeCloner); ok {
		c.cloneNodesFrom(from, cl)
	}
	return nc
}

// copyFieldsFrom does a deep copy of all of the fields of the node
// that do not have a `copier:"-"` struct tag.
func copyFieldsFrom(to, from Node) {
	err := copier.CopyWithOption(to.AsNode().This, from.AsNode().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("scene.copyFieldsFrom", "node", from, "err", err)
	}
}

func (g *Group) cloneNodesFrom(from Node, cl *cloner) {
	g.Children = nil
	fc := from.(Container)
	for i := range fc.NumChildren() {
		g.AddChild(cl.clone(fc.Child(i)))
	}
}

func (sh *ShapeHolder) cloneNodesFrom(from Node, cl *cloner) {
	fsh := from.(*ShapeHolder)
	sh.Geometry, sh.Appearance = nil, nil
	if fsh.Geometry != nil {
		sh.SetGeometry(cl.clone(fsh.Geometry))
	}
	if fsh.Appearance != nil {
		sh.SetAppearance(cl.clone(fsh.Appearance).(*Material))
	}
}

func (ifs *IndexedFaceSet) cloneNodesFrom(from Node, cl *cloner) {
	fifs := from.(*IndexedFaceSet)
	ifs.VertexProperty = nil
	if fifs.VertexProperty != nil {
		ifs.SetVertexProperty(cl.clone(fifs.VertexProperty).(*VertexProperty))
	}
}
