// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package action

import (
	"github.com/kazssym/coin/scene"
)

// BaseClass is the root action class. It applies the state of property
// nodes and traverses the children of containers; shapes do nothing.
var BaseClass = NewClass("action.Action", nil)

func init() {
	BaseClass.AddMethod(scene.NodeType, StateMethod)
	BaseClass.AddMethod(scene.GroupType, ContainerMethod)
	BaseClass.AddMethod(scene.ShapeHolderType, ContainerMethod)
	BaseClass.AddMethod(scene.ShapeType, NullMethod)
}

// NullMethod does nothing.
func NullMethod(act Actioner, n scene.Node) {}

// StateMethod applies the state of a [scene.StateNode].
func StateMethod(act Actioner, n scene.Node) {
	if sn, ok := n.(scene.StateNode); ok {
		sn.ApplyState(act.AsAction().State())
	}
}

// ContainerMethod traverses the children of a [scene.Container].
func ContainerMethod(act Actioner, n scene.Node) {
	if c, ok := n.(scene.Container); ok {
		act.AsAction().TraverseChildren(c)
	}
}
