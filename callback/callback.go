// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package callback provides an action that calls user functions for the
// nodes it traverses: before and after each node of a given type, and for
// each triangle that a shape of a given type tessellates into.
package callback

import (
	"github.com/kazssym/coin/action"
	"github.com/kazssym/coin/elements"
	"github.com/kazssym/coin/scene"
	"github.com/kazssym/coin/types"
)

// Responses tell the traversal how to continue after a node callback.
type Responses int32

const (
	// Continue continues the traversal normally.
	Continue Responses = iota

	// Prune skips the children of a container, or the tessellation
	// of a shape.
	Prune

	// Abort terminates the whole traversal.
	Abort
)

// NodeFunc is a callback for a node.
type NodeFunc func(a *Action, n scene.Node) Responses

// TriangleFunc is a callback for a triangle of a shape.
type TriangleFunc func(a *Action, n scene.Node, v1, v2, v3 *scene.PrimitiveVertex)

type nodeCallback struct {
	typ *types.Type
	fn  NodeFunc
}

type triangleCallback struct {
	typ *types.Type
	fn  TriangleFunc
}

// Action is an action that calls registered callbacks for nodes
// derived from the types they were registered for. The traversal
// state maintains every element type.
type Action struct {
	action.Action

	pre       []nodeCallback
	post      []nodeCallback
	triangles []triangleCallback
}

// Class is the action class of [Action].
var Class = action.NewClass("callback.Action", action.BaseClass)

func init() {
	for _, ec := range elements.AllClasses() {
		if ec != nil {
			Class.EnableElement(ec)
		}
	}
	Class.AddMethod(scene.NodeType, nodeMethod)
	Class.AddMethod(scene.GroupType, nodeMethod)
	Class.AddMethod(scene.ShapeHolderType, nodeMethod)
	Class.AddMethod(scene.ShapeType, shapeMethod)
}

// New returns a new callback [Action].
func New() *Action {
	a := &Action{}
	action.Init(a, Class)
	return a
}

// AddPreCallback adds a callback called before nodes of the given type
// (or derived from it) are traversed.
func (a *Action) AddPreCallback(typ *types.Type, fn NodeFunc) {
	a.pre = append(a.pre, nodeCallback{typ, fn})
}

// AddPostCallback adds a callback called after nodes of the given type
// (or derived from it) have been traversed.
func (a *Action) AddPostCallback(typ *types.Type, fn NodeFunc) {
	a.post = append(a.post, nodeCallback{typ, fn})
}

// AddTriangleCallback adds a callback called for each triangle generated
// by shapes of the given type (or derived from it).
func (a *Action) AddTriangleCallback(typ *types.Type, fn TriangleFunc) {
	a.triangles = append(a.triangles, triangleCallback{typ, fn})
}

// ClearCallbacks removes all callbacks.
func (a *Action) ClearCallbacks() {
	a.pre, a.post, a.triangles = nil, nil, nil
}

// callNode calls the callbacks in the list that match the node type.
// It returns the strongest response.
func (a *Action) callNode(cbs []nodeCallback, n scene.Node) Responses {
	res := Continue
	typ := n.NodeType()
	for _, cb := range cbs {
		if !typ.IsDerivedFrom(cb.typ) {
			continue
		}
		r := cb.fn(a, n)
		if r == Abort {
			a.SetTerminated(true)
			return Abort
		}
		res = max(res, r)
	}
	return res
}

func nodeMethod(act action.Actioner, n scene.Node) {
	a := act.(*Action)
	switch a.callNode(a.pre, n) {
	case Abort:
		return
	case Prune:
		a.callNode(a.post, n)
		return
	}
	if _, ok := n.(scene.Container); ok {
		action.ContainerMethod(act, n)
	} else {
		action.StateMethod(act, n)
	}
	if !a.Terminated() {
		a.callNode(a.post, n)
	}
}

func shapeMethod(act action.Actioner, n scene.Node) {
	a := act.(*Action)
	switch a.callNode(a.pre, n) {
	case Abort:
		return
	case Continue:
		a.tessellate(n)
		if a.Terminated() {
			return
		}
	}
	a.callNode(a.post, n)
}

// tessellate calls the triangle callbacks for the shape, if any match it.
func (a *Action) tessellate(n scene.Node) {
	sh, ok := n.(scene.Shape)
	if !ok {
		return
	}
	typ := n.NodeType()
	var cbs []TriangleFunc
	for _, cb := range a.triangles {
		if typ.IsDerivedFrom(cb.typ) {
			cbs = append(cbs, cb.fn)
		}
	}
	if len(cbs) == 0 {
		return
	}
	sh.GeneratePrimitives(a.State(), func(v1, v2, v3 *scene.PrimitiveVertex) {
		for _, fn := range cbs {
			fn(a, n, v1, v2, v3)
		}
	})
}
