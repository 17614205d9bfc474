// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the nodes of a scene graph: grouping nodes,
// property nodes that modify traversal state, and shapes that tessellate
// into triangles, together with the [Path] type that addresses a node
// from a traversal root.
//
// Nodes may be shared by several parents, so the graph is a DAG rather than
// a tree. Lifetime is managed with explicit reference counts: parents and
// paths reference the nodes they hold, and a node is destroyed (releasing
// its own children) when its count drops back to zero.
package scene

import (
	"fmt"
	"log/slog"

	"github.com/kazssym/coin/elements"
	"github.com/kazssym/coin/types"
)

// NodeType is the abstract root type of all nodes.
var NodeType = types.AddAbstractType("scene.Node", nil)

// Node is an interface that all scene graph nodes satisfy.
// The core functionality is defined on [NodeBase], which all
// node types must embed.
type Node interface {
	// AsNode returns the [NodeBase] of this Node.
	AsNode() *NodeBase

	// NodeType returns the runtime type of this node.
	NodeType() *types.Type

	// Destroy is called when the reference count of the node drops
	// to zero. Node types that hold other nodes release them here.
	Destroy()
}

// Container is a node with indexed children.
type Container interface {
	Node

	// NumChildren returns the number of children.
	NumChildren() int

	// Child returns the child at the given index, or nil if out of range.
	Child(i int) Node

	// ReplaceChild replaces the child at the given index.
	ReplaceChild(i int, kid Node)

	// PushesState returns whether state changes made by children
	// are undone after the children have been traversed.
	PushesState() bool
}

// Selector is a container that only traverses some of its children
// under normal traversal rules.
type Selector interface {
	Container

	// TraversalChildren returns the indexes of the children to traverse.
	TraversalChildren() []int
}

// StateNode is a node that modifies traversal state.
type StateNode interface {
	Node

	// ApplyState applies the settings of the node to the given state.
	ApplyState(st *elements.State)
}

// NodeBase implements the core of the [Node] interface.
// All nodes must be initialized with [InitNode] (which the New
// constructors do) so that [NodeBase.This] is set.
type NodeBase struct {

	// Name is the name of this node. It can be used for finding nodes.
	Name string

	// This is the value of this Node as its true underlying type.
	This Node `copier:"-" json:"-"`

	// refs is the reference count.
	refs int

	// destroyed is set once the node has been destroyed.
	destroyed bool
}

// InitNode sets the [NodeBase.This] of the given node and its name.
func InitNode(n Node, name ...string) {
	nb := n.AsNode()
	nb.This = n
	if len(name) > 0 {
		nb.Name = name[0]
	}
}

// AsNode returns the [NodeBase] for this Node.
func (n *NodeBase) AsNode() *NodeBase {
	return n
}

// String returns the type and name of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	if n.Name == "" {
		return n.This.NodeType().IDName
	}
	return fmt.Sprintf("%s:%s", n.This.NodeType().IDName, n.Name)
}

// SetName sets the name of the node.
func (n *NodeBase) SetName(name string) {
	n.Name = name
}

// IsOfType returns whether the node is of the given type or derived from it.
func (n *NodeBase) IsOfType(typ *types.Type) bool {
	return n.This != nil && n.This.NodeType().IsDerivedFrom(typ)
}

// Ref increments the reference count.
func (n *NodeBase) Ref() {
	n.refs++
}

// Unref decrements the reference count, destroying the node
// when it reaches zero.
func (n *NodeBase) Unref() {
	if n.refs <= 0 {
		slog.Error("scene.NodeBase.Unref: reference count already zero", "node", n)
		return
	}
	n.refs--
	if n.refs == 0 && !n.destroyed {
		n.destroyed = true
		if n.This != nil {
			n.This.Destroy()
		}
	}
}

// UnrefNoDelete decrements the reference count without
// destroying the node when it reaches zero.
func (n *NodeBase) UnrefNoDelete() {
	if n.refs > 0 {
		n.refs--
	}
}

// RefCount returns the current reference count.
func (n *NodeBase) RefCount() int {
	return n.refs
}

// IsDestroyed returns whether the node has been destroyed.
func (n *NodeBase) IsDestroyed() bool {
	return n.destroyed
}

// Destroy is a placeholder implementation of [Node.Destroy]
// that does nothing.
func (n *NodeBase) Destroy() {}

// setNodeField sets a node-valued field, keeping reference counts.
func setNodeField[T Node](field *T, n T) {
	var zero T
	if any(n) != any(zero) {
		n.AsNode().Ref()
	}
	if old := *field; any(old) != any(zero) {
		old.AsNode().Unref()
	}
	*field = n
}
