// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kazssym/coin/elements"
	"github.com/kazssym/coin/math32"
	"github.com/kazssym/coin/scene"
)

func testScene() *scene.Separator {
	root := scene.NewSeparator("root")
	root.Ref()
	root.AddChild(scene.NewMaterial(math32.NewColor(1, 0, 0)).SetTransparency(0.5))
	root.AddChild(scene.NewCube("cube"))
	grp := scene.NewGroup("grp")
	grp.AddChild(scene.NewFaceSet([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	}, nil, "tri"))
	root.AddChild(grp)
	return root
}

func TestEnablesAllElements(t *testing.T) {
	els := Class.EnabledElements()
	for _, ec := range elements.AllClasses() {
		if ec != nil {
			assert.Same(t, ec.Type, els[ec.Slot], ec.Type.Name)
		}
	}
}

func TestCallbacks(t *testing.T) {
	root := testScene()
	defer root.Unref()

	var events []string
	tris := map[string]int{}
	a := New()
	a.AddPreCallback(scene.ShapeType, func(a *Action, n scene.Node) Responses {
		events = append(events, "pre "+n.AsNode().Name)
		return Continue
	})
	a.AddPostCallback(scene.NodeType, func(a *Action, n scene.Node) Responses {
		events = append(events, "post "+n.AsNode().Name)
		return Continue
	})
	a.AddTriangleCallback(scene.VertexShapeType, func(a *Action, n scene.Node, v1, v2, v3 *scene.PrimitiveVertex) {
		tris[n.AsNode().Name]++
		assert.Equal(t, uint32(0xff000080), v1.Color)
	})
	a.Apply(root)

	assert.Equal(t, []string{"pre cube", "post cube", "pre tri", "post tri", "post grp", "post root"}, events[1:])
	assert.Equal(t, "post ", events[0])
	assert.Equal(t, map[string]int{"tri": 1}, tris)
}

func TestPruneAndAbort(t *testing.T) {
	root := testScene()
	defer root.Unref()

	var tris int
	a := New()
	a.AddPreCallback(scene.GroupType, func(a *Action, n scene.Node) Responses {
		if n.AsNode().Name == "grp" {
			return Prune
		}
		return Continue
	})
	a.AddTriangleCallback(scene.ShapeType, func(a *Action, n scene.Node, v1, v2, v3 *scene.PrimitiveVertex) {
		tris++
	})
	a.Apply(root)
	assert.Equal(t, 12, tris)

	tris = 0
	a.ClearCallbacks()
	a.AddPreCallback(scene.CubeType, func(a *Action, n scene.Node) Responses {
		return Abort
	})
	a.AddTriangleCallback(scene.ShapeType, func(a *Action, n scene.Node, v1, v2, v3 *scene.PrimitiveVertex) {
		tris++
	})
	a.Apply(root)
	assert.Zero(t, tris)
	assert.True(t, a.Terminated())
}
