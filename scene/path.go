// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"slices"
	"strings"
)

// Frame is one step of a [Path].
type Frame struct {
	// Node is the node at this step.
	Node Node

	// Index is the index of Node among the children of the previous
	// step's node, or -1 for the head of the path.
	Index int
}

// Path is a chain of nodes from a head node to a tail node, where each
// node is the child of the previous one at the recorded index.
// A path references every node it holds, so that the nodes stay alive
// while the path exists. Call [Path.Release] when done with it.
type Path struct {
	frames []Frame
}

// NewPath returns a new path whose head is the given node.
func NewPath(head Node) *Path {
	p := &Path{}
	if head != nil {
		head.AsNode().Ref()
		p.frames = append(p.frames, Frame{Node: head, Index: -1})
	}
	return p
}

// Len returns the number of nodes in the path.
func (p *Path) Len() int {
	return len(p.frames)
}

// Head returns the first node of the path, or nil if it is empty.
func (p *Path) Head() Node {
	if len(p.frames) == 0 {
		return nil
	}
	return p.frames[0].Node
}

// Tail returns the last node of the path, or nil if it is empty.
func (p *Path) Tail() Node {
	return p.NodeFromTail(0)
}

// Node returns the node at the given position from the head.
func (p *Path) Node(i int) Node {
	return p.frames[i].Node
}

// Index returns the child index at the given position from the head.
func (p *Path) Index(i int) int {
	return p.frames[i].Index
}

// NodeFromTail returns the node i steps up from the tail,
// or nil if there is no such node.
func (p *Path) NodeFromTail(i int) Node {
	j := len(p.frames) - 1 - i
	if j < 0 || j >= len(p.frames) {
		return nil
	}
	return p.frames[j].Node
}

// IndexFromTail returns the child index i steps up from the tail,
// or -1 if there is no such step.
func (p *Path) IndexFromTail(i int) int {
	j := len(p.frames) - 1 - i
	if j < 0 || j >= len(p.frames) {
		return -1
	}
	return p.frames[j].Index
}

// Append adds the child at the given index of the current tail
// to the end of the path. It panics if the tail has no such child.
func (p *Path) Append(index int) *Path {
	c, ok := p.Tail().(Container)
	if !ok {
		panic(fmt.Sprintf("scene.Path.Append: tail %v is not a container", p.Tail()))
	}
	kid := c.Child(index)
	if kid == nil {
		panic(fmt.Sprintf("scene.Path.Append: %v has no child at index %d", p.Tail(), index))
	}
	kid.AsNode().Ref()
	p.frames = append(p.frames, Frame{Node: kid, Index: index})
	return p
}

// AppendNode adds the given child of the current tail to the end of the path.
// It panics if the node is not a child of the tail.
func (p *Path) AppendNode(kid Node) *Path {
	if c, ok := p.Tail().(Container); ok {
		for i := range c.NumChildren() {
			if c.Child(i) == kid {
				return p.Append(i)
			}
		}
	}
	panic(fmt.Sprintf("scene.Path.AppendNode: %v is not a child of %v", kid, p.Tail()))
}

// Push adds the child at the given index of the current tail,
// typically to re-address a child after [Path.Pop].
func (p *Path) Push(index int) *Path {
	return p.Append(index)
}

// Pop removes the tail of the path and returns its frame.
// The returned node is no longer referenced by the path.
func (p *Path) Pop() Frame {
	if len(p.frames) == 0 {
		panic("scene.Path.Pop: empty path")
	}
	f := p.frames[len(p.frames)-1]
	p.frames = p.frames[:len(p.frames)-1]
	f.Node.AsNode().Unref()
	return f
}

// Truncate removes nodes from the tail so that the path has at most
// the given length.
func (p *Path) Truncate(n int) {
	for len(p.frames) > n {
		p.Pop()
	}
}

// Copy returns an independent copy of the path.
func (p *Path) Copy() *Path {
	cp := &Path{}
	cp.Restore(p.frames)
	return cp
}

// Snapshot returns the current frames of the path. Nodes in the
// snapshot are not referenced; use it with [Path.Restore] while
// the nodes are known to be alive.
func (p *Path) Snapshot() []Frame {
	return slices.Clone(p.frames)
}

// Restore sets the frames of the path to the given ones.
func (p *Path) Restore(frames []Frame) {
	for _, f := range frames {
		f.Node.AsNode().Ref()
	}
	old := p.frames
	p.frames = slices.Clone(frames)
	for i := len(old) - 1; i >= 0; i-- {
		old[i].Node.AsNode().Unref()
	}
}

// Release removes all nodes from the path.
func (p *Path) Release() {
	p.Truncate(0)
}

// Contains returns whether the given node is in the path.
func (p *Path) Contains(n Node) bool {
	return slices.ContainsFunc(p.frames, func(f Frame) bool { return f.Node == n })
}

// IsValid returns whether each node of the path is still the child
// of the previous node at the recorded index.
func (p *Path) IsValid() bool {
	for i := 1; i < len(p.frames); i++ {
		c, ok := p.frames[i-1].Node.(Container)
		if !ok || c.Child(p.frames[i].Index) != p.frames[i].Node {
			return false
		}
	}
	return true
}

// String returns the path as a slash separated list of nodes.
func (p *Path) String() string {
	var b strings.Builder
	for _, f := range p.frames {
		b.WriteByte('/')
		b.WriteString(f.Node.AsNode().String())
	}
	return b.String()
}
