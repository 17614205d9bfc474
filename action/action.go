// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package action provides the generic traversal of a scene graph by
// actions. An action dispatches on the runtime type of each node it visits
// through the method table of its [Class], and maintains the traversal
// [elements.State] for the element types its class has enabled.
//
// An action can be applied to a whole graph with [Action.Apply], or
// restricted to the nodes on a [scene.Path] with [Action.ApplyPath]. In the
// latter case, the siblings that come before the path at each level are
// still traversed to accumulate their state, but shapes among them are not.
package action

import (
	"fmt"
	"log/slog"

	"github.com/kazssym/coin/elements"
	"github.com/kazssym/coin/scene"
)

// PathCodes describe the position of the current node relative to the
// path an action was applied to.
type PathCodes int32

const (
	// NoPath is used when the action was applied to a node.
	NoPath PathCodes = iota

	// InPath is used for nodes on the path, above its tail.
	InPath

	// BelowPath is used for the tail of the path and the nodes below it.
	BelowPath

	// OffPath is used for nodes that are not on the path, but that are
	// traversed because they may affect the state of the path.
	OffPath
)

var pathCodeNames = [...]string{"NoPath", "InPath", "BelowPath", "OffPath"}

func (pc PathCodes) String() string {
	if pc < 0 || int(pc) >= len(pathCodeNames) {
		return fmt.Sprintf("PathCodes(%d)", int32(pc))
	}
	return pathCodeNames[pc]
}

// Actioner is an interface that all action types satisfy.
// The core functionality is defined on [Action], which all
// action types must embed.
type Actioner interface {
	// AsAction returns the [Action] of this Actioner.
	AsAction() *Action
}

// Action is the core of all actions.
type Action struct {
	// This is the action as its true underlying type.
	This Actioner

	// Class is the action class used for method dispatch.
	Class *Class

	// Exhaustive traverses every child of every container,
	// ignoring the selection of [scene.Selector] nodes.
	Exhaustive bool

	// state is the traversal state of the current application.
	state *elements.State

	// curPath is the path from the root to the current node.
	curPath *scene.Path

	// applied is the path the action was applied to, if any.
	applied *scene.Path

	pathCode   PathCodes
	terminated bool
}

// Init sets the [Action.This] and [Action.Class] of the given action.
func Init(act Actioner, class *Class) {
	a := act.AsAction()
	a.This = act
	a.Class = class
}

// AsAction returns the [Action] for this Actioner.
func (a *Action) AsAction() *Action {
	return a
}

// Apply traverses the graph rooted at the given node.
// Callers should hold a reference to the root.
func (a *Action) Apply(root scene.Node) {
	if root == nil {
		return
	}
	if root.AsNode().RefCount() == 0 {
		slog.Debug("action.Action.Apply: root node has no references", "root", root.AsNode())
	}
	a.begin(root, nil, NoPath)
	a.Traverse(root)
	a.end(root)
}

// ApplyPath traverses the nodes on the given path, from its head down to
// its tail and the whole graph below the tail. It panics if the path is
// not valid.
func (a *Action) ApplyPath(path *scene.Path) {
	if path.Len() == 0 {
		return
	}
	if !path.IsValid() {
		panic(fmt.Sprintf("action.Action.ApplyPath: invalid path %v", path))
	}
	root := path.Head()
	code := InPath
	if path.Len() == 1 {
		code = BelowPath
	}
	a.begin(root, path, code)
	a.Traverse(root)
	a.end(root)
}

func (a *Action) begin(root scene.Node, path *scene.Path, code PathCodes) {
	if a.This == nil {
		a.This = a
	}
	if a.Class == nil {
		a.Class = BaseClass
	}
	root.AsNode().Ref()
	a.terminated = false
	a.state = elements.NewState(a.Class.EnabledElements())
	a.curPath = scene.NewPath(root)
	a.applied = path
	a.pathCode = code
}

func (a *Action) end(root scene.Node) {
	a.curPath.Release()
	a.applied = nil
	root.AsNode().UnrefNoDelete()
}

// Traverse calls the method of the action class for the given node.
func (a *Action) Traverse(n scene.Node) {
	if a.terminated {
		return
	}
	if m := a.Class.Method(n.NodeType()); m != nil {
		m(a.This, n)
	}
}

// TraverseChildren traverses the children of the given container, which
// must be the current node. State changes made by the children are undone
// afterwards if the container pushes state. A [scene.StateNode] container
// applies its own state before its children.
func (a *Action) TraverseChildren(c scene.Container) {
	if c.PushesState() {
		a.state.Push()
		defer a.state.Pop()
	}
	if sn, ok := c.(scene.StateNode); ok {
		sn.ApplyState(a.state)
	}
	kids := a.traversalChildren(c)
	if a.pathCode != InPath {
		code := a.pathCode
		for _, i := range kids {
			if a.terminated {
				return
			}
			a.traverseChild(c, i, code)
		}
		return
	}

	depth := a.curPath.Len()
	inPath := a.applied.Index(depth)
	code := InPath
	if depth == a.applied.Len()-1 {
		code = BelowPath
	}
	for _, i := range kids {
		if a.terminated || i >= inPath {
			break
		}
		a.traverseChild(c, i, OffPath)
	}
	if !a.terminated {
		a.traverseChild(c, inPath, code)
	}
}

func (a *Action) traversalChildren(c scene.Container) []int {
	if sel, ok := c.(scene.Selector); ok && !a.Exhaustive {
		return sel.TraversalChildren()
	}
	kids := make([]int, c.NumChildren())
	for i := range kids {
		kids[i] = i
	}
	return kids
}

func (a *Action) traverseChild(c scene.Container, i int, code PathCodes) {
	kid := c.Child(i)
	if kid == nil {
		return
	}
	if code == OffPath {
		if _, ok := kid.(scene.Shape); ok {
			return
		}
	}
	a.curPath.Append(i)
	prev := a.pathCode
	a.pathCode = code
	a.Traverse(kid)
	a.pathCode = prev
	a.curPath.Pop()
}

// State returns the traversal state of the current application.
func (a *Action) State() *elements.State {
	return a.state
}

// CurPath returns the path from the root to the current node.
// It is only valid during traversal and changes as the traversal
// continues; use [scene.Path.Copy] to keep it.
func (a *Action) CurPath() *scene.Path {
	return a.curPath
}

// AppliedPath returns the path given to [Action.ApplyPath], or nil.
func (a *Action) AppliedPath() *scene.Path {
	return a.applied
}

// PathCode returns the position of the current node relative
// to the applied path.
func (a *Action) PathCode() PathCodes {
	return a.pathCode
}

// SetTerminated sets whether the traversal is terminated;
// no further nodes are visited once it is.
func (a *Action) SetTerminated(term bool) {
	a.terminated = term
}

// Terminated returns whether the traversal has been terminated.
func (a *Action) Terminated() bool {
	return a.terminated
}
