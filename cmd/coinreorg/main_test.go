// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazssym/coin/reorganize"
	"github.com/kazssym/coin/scene"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildScene(t *testing.T) {
	root := buildScene(&sceneConfig{Grids: 2, GridSize: 3, Boxes: 1, Hidden: 1, Textured: true})
	defer root.Unref()
	// texture, 2 grids, 1 holder, 1 hidden, cube, sphere
	assert.Equal(t, 7, root.NumChildren())
	assert.Equal(t, scene.Texture2Type, root.Child(0).NodeType())
	assert.Equal(t, scene.CubeType, root.Child(5).NodeType())

	box := newBox(0, "box")
	box.Ref()
	defer box.Unref()
	assert.Equal(t, 6, box.NumFaces())
	assert.Len(t, box.VertexProperty.Vertex, 8)

	grid := newGrid(3, 0, "grid")
	grid.Ref()
	defer grid.Unref()
	assert.Equal(t, 18, grid.NumTriangles())
}

func TestFormatGraph(t *testing.T) {
	root := scene.NewSeparator("root")
	root.Ref()
	defer root.Unref()
	grp := scene.NewGroup("grp")
	grp.AddChild(newGrid(1, 0, "quad"))
	root.AddChild(grp)
	root.AddChild(scene.NewCube())
	want := "separator:root\n  group:grp\n    face-set:quad\n  cube\n"
	assert.Equal(t, want, formatGraph(root))
}

func TestRunDemo(t *testing.T) {
	opts := &reorganize.Options{}
	opts.Defaults()
	for _, textured := range []bool{false, true} {
		cfg := &sceneConfig{Grids: 2, GridSize: 2, Boxes: 3, Hidden: 1, Textured: textured}
		rep, err := runDemo(cfg, opts, true)
		require.NoError(t, err)
		assert.Equal(t, 6, rep.Stats.Shapes)
		assert.Equal(t, 5, rep.Stats.Replaced)
		assert.Equal(t, 1, rep.Stats.Unchanged[reorganize.ReasonStyle])
		// 2 grids of 4 quads and 3 boxes of 6 quads
		assert.Equal(t, 2*8+3*12, rep.Stats.Triangles)
		assert.Equal(t, rep.TrianglesBefore, rep.TrianglesAfter)
		assert.Equal(t, 5.0, rep.Metrics[`coin_reorganize_shapes_total{result="replaced"}`])
		assert.Equal(t, 1.0, rep.Metrics[`coin_reorganize_shapes_total{result="style"}`])
		assert.Contains(t, rep.Graph, "indexed-face-set:grid-0")
		assert.NotContains(t, rep.Graph, " face-set:grid-0")
		_, err = uuid.Parse(rep.RunID)
		assert.NoError(t, err)
	}

	_, err := runDemo(&sceneConfig{Boxes: -1}, opts, false)
	assert.Error(t, err)
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo", "--grids", "1", "--boxes", "1", "--hidden", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "shapes: 2 replaced: 2 unchanged: 0")
	assert.Contains(t, out, "triangles before")

	out, err = execute(t, "demo", "--json", "--hidden", "2")
	require.NoError(t, err)
	var rep map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	stats := rep["stats"].(map[string]any)
	assert.Equal(t, 4.0, stats["replaced"])
	assert.Equal(t, map[string]any{"style": 2.0}, stats["unchanged"])
	assert.Equal(t, rep["triangles_before"], rep["triangles_after"])

	_, err = execute(t, "demo", "--log-level", "loud")
	assert.Error(t, err)
}

func TestOptionsCommand(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "reorg.toml")
	out, err := execute(t, "options", fn)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "wrote "))

	o, err := reorganize.OpenOptions(fn)
	require.NoError(t, err)
	def := &reorganize.Options{}
	def.Defaults()
	assert.Equal(t, def, o)

	out, err = execute(t, "demo", "--options", fn, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"GenerateNormals": true`)

	_, err = execute(t, "demo", "--options", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "does not exist")
	_, err = execute(t, "demo", "--options", filepath.Join(t.TempDir(), "reorg.json"))
	assert.ErrorIs(t, err, reorganize.ErrUnsupportedFormat)
	_, err = execute(t, "options")
	assert.Error(t, err)
}
