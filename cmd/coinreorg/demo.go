// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/kazssym/coin/base/errors"
	"github.com/kazssym/coin/reorganize"
	"github.com/kazssym/coin/scene"
)

// report is the result of one demo run.
type report struct {
	RunID           string             `json:"run_id"`
	Options         reorganize.Options `json:"options"`
	Stats           reorganize.Stats   `json:"stats"`
	TrianglesBefore int                `json:"triangles_before"`
	TrianglesAfter  int                `json:"triangles_after"`
	Graph           string             `json:"graph,omitempty"`
	Metrics         map[string]float64 `json:"metrics,omitempty"`
}

func newDemoCmd() *cobra.Command {
	var (
		cfg         sceneConfig
		optionsFile string
		asJSON      bool
		showGraph   bool
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Reorganize a generated scene and report the results",
		Long: `Builds a scene of face set grids, indexed face set boxes under shape
holders, and invisible face sets, then reorganizes a copy of it. The
triangle counts of the original and the reorganized copy are reported
along with the pass statistics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &reorganize.Options{}
			opts.Defaults()
			if optionsFile != "" {
				var err error
				opts, err = reorganize.OpenOptions(optionsFile)
				if errors.Is(err, fs.ErrNotExist) {
					return errors.Errorf("options file %s does not exist; write one with: coinreorg options %s", optionsFile, optionsFile)
				}
				if err != nil {
					return err
				}
			}
			rep, err := runDemo(&cfg, opts, showGraph)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), rep, asJSON)
		},
	}
	f := cmd.Flags()
	f.IntVar(&cfg.Grids, "grids", 2, "number of face set grids")
	f.IntVar(&cfg.GridSize, "grid-size", 4, "quads along each side of a grid")
	f.IntVar(&cfg.Boxes, "boxes", 2, "number of indexed face set boxes")
	f.IntVar(&cfg.Hidden, "hidden", 1, "number of invisible face sets")
	f.BoolVar(&cfg.Textured, "textured", false, "enable a texture on unit 0")
	f.StringVar(&optionsFile, "options", "", "reorganize options file (.toml, .yaml or .yml)")
	f.BoolVar(&asJSON, "json", false, "write the report as JSON")
	f.BoolVar(&showGraph, "graph", false, "include the reorganized graph in the report")
	return cmd
}

// runDemo builds the scene for the given config and reorganizes a copy of it.
func runDemo(cfg *sceneConfig, opts *reorganize.Options, showGraph bool) (*report, error) {
	if cfg.Grids < 0 || cfg.Boxes < 0 || cfg.Hidden < 0 {
		return nil, errors.New("shape counts must not be negative")
	}
	rep := &report{RunID: uuid.NewString(), Options: *opts}
	log := slog.With("run", rep.RunID)

	orig := buildScene(cfg)
	defer orig.Unref()
	rep.TrianglesBefore = countTriangles(orig)

	work := scene.Clone(orig)
	work.AsNode().Ref()
	defer work.AsNode().Unref()

	reg := prometheus.NewRegistry()
	p := reorganize.New()
	p.Options = *opts
	p.Metrics = reorganize.NewMetrics(reg)
	p.Apply(work)
	rep.Stats = p.Stats()
	rep.TrianglesAfter = countTriangles(work)
	if rep.TrianglesAfter != rep.TrianglesBefore {
		log.Warn("triangle count changed", "before", rep.TrianglesBefore, "after", rep.TrianglesAfter)
	}
	rep.Metrics = errors.Log1(gatherMetrics(reg))
	if showGraph {
		rep.Graph = formatGraph(work)
	}
	log.Info("demo done", "replaced", rep.Stats.Replaced, "unchanged", rep.Stats.NumUnchanged())
	return rep, nil
}

// gatherMetrics returns the value of every counter in the registry,
// keyed by name and labels.
func gatherMetrics(reg *prometheus.Registry) (map[string]float64, error) {
	mfs, err := reg.Gather()
	if err != nil {
		return nil, err
	}
	vals := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range m.GetLabel() {
				name += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			if c := m.GetCounter(); c != nil {
				vals[name] = c.GetValue()
			}
		}
	}
	return vals, nil
}

// formatGraph returns the graph rooted at n, one node per line,
// indented by depth.
func formatGraph(n scene.Node) string {
	var b strings.Builder
	var walk func(n scene.Node, depth int)
	walk = func(n scene.Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.AsNode().String())
		b.WriteByte('\n')
		if c, ok := n.(scene.Container); ok {
			for i := range c.NumChildren() {
				walk(c.Child(i), depth+1)
			}
		}
	}
	walk(n, 0)
	return b.String()
}

func writeReport(w io.Writer, rep *report, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}
	fmt.Fprintf(w, "run %s\n", rep.RunID)
	fmt.Fprintf(w, "%s\n", rep.Stats.String())
	fmt.Fprintf(w, "triangles before %d after %d\n", rep.TrianglesBefore, rep.TrianglesAfter)
	if rep.Graph != "" {
		fmt.Fprint(w, rep.Graph)
	}
	return nil
}
