// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reorganize rewrites the vertex shapes of a scene graph into
// indexed face sets with merged vertices, which can be drawn as vertex
// arrays.
//
// Each shape is tessellated in the state in effect where it appears. A shape
// is only replaced when that state allows the compact representation: no
// bump mapping, bounding box drawing, invisibility or oversized texture
// image, at most texture unit 0 in use, and no per-vertex colors that differ
// at a shared position. Any other shape is left exactly as it was.
package reorganize

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/kazssym/coin/bitflag"
	"github.com/kazssym/coin/callback"
	"github.com/kazssym/coin/elements"
	"github.com/kazssym/coin/math32"
	"github.com/kazssym/coin/scene"
	"github.com/kazssym/coin/search"
	"github.com/kazssym/coin/vcache"
)

// phases are the steps of the processing of one shape.
type phases int32

const (
	phaseNotStarted phases = iota
	phaseCounting
	phaseIneligible
	phaseCapturing
	phaseReplaced
	phaseUnchanged
)

var phaseNames = [...]string{"NotStarted", "Counting", "Ineligible", "Capturing", "Replaced", "Unchanged"}

func (p phases) String() string {
	return phaseNames[p]
}

// Pass replaces vertex shapes with equivalent indexed face sets.
// A Pass can be applied any number of times; it is not safe for
// concurrent use.
type Pass struct {
	Options

	// Metrics, if set, are updated for every shape.
	Metrics *Metrics

	stats  Stats
	cb     *callback.Action
	search *search.Search

	// per shape
	phase         phases
	reason        Reasons
	numTriangles  int
	cache         *vcache.Cache
	hasTexture    bool
	needTexCoords []bool
	diffuse       uint32
}

// New returns a new [Pass] with default options.
func New() *Pass {
	p := &Pass{}
	p.Defaults()
	p.search = search.New()
	p.cb = callback.New()
	p.cb.AddPreCallback(scene.VertexShapeType, p.preShape)
	p.cb.AddTriangleCallback(scene.VertexShapeType, p.triangle)
	p.cb.AddPostCallback(scene.VertexShapeType, p.postShape)
	return p
}

// Stats returns the counts accumulated since the pass was created
// or the stats were last reset.
func (p *Pass) Stats() Stats {
	st := p.stats
	st.Unchanged = maps.Clone(p.stats.Unchanged)
	return st
}

// ResetStats clears the accumulated counts.
func (p *Pass) ResetStats() {
	p.stats = Stats{}
}

// Apply replaces every vertex shape in the graph rooted at the given
// node, including those under children that are not selected by
// switches, in traversal order.
func (p *Pass) Apply(root scene.Node) {
	if root == nil {
		return
	}
	root.AsNode().Ref()
	defer root.AsNode().UnrefNoDelete()
	if p.GenerateTriangleStrips {
		slog.Debug("reorganize.Pass.Apply: triangle strips are not generated, building triangles")
	}

	before := p.stats.Replaced
	p.search.SetType(scene.VertexShapeType, true)
	p.search.SetSearchingAll(true)
	p.search.SetInterest(search.All)
	p.search.Apply(root)
	paths := p.search.Paths()
	p.ApplyPaths(paths)
	slog.Info("reorganize.Pass.Apply", "root", root.AsNode(), "shapes", len(paths), "replaced", p.stats.Replaced-before)
	p.search.Reset()
}

// ApplyPaths calls [Pass.ApplyPath] for each of the given paths, in order.
func (p *Pass) ApplyPaths(paths []*scene.Path) {
	for _, path := range paths {
		p.ApplyPath(path)
	}
}

// ApplyPath replaces the vertex shape at the tail of the given path, if
// the state along the path allows it. On replacement the tail of the path
// is updated to the new shape. It panics if the tail is not a vertex shape.
func (p *Pass) ApplyPath(path *scene.Path) {
	tail := path.Tail()
	if tail == nil || !tail.AsNode().IsOfType(scene.VertexShapeType) {
		panic(fmt.Sprintf("reorganize.Pass.ApplyPath: tail of %v is not a vertex shape", path))
	}
	p.phase = phaseNotStarted
	p.reason = ReasonNone
	p.numTriangles = 0
	p.cache = nil
	if !path.IsValid() {
		p.unchanged(path, ReasonStalePath)
		return
	}
	p.cb.ApplyPath(path)
	p.replaceNode(path)
}

func (p *Pass) preShape(a *callback.Action, n scene.Node) callback.Responses {
	p.numTriangles = 0
	p.phase = phaseCounting
	return callback.Continue
}

func (p *Pass) postShape(a *callback.Action, n scene.Node) callback.Responses {
	return callback.Continue
}

func (p *Pass) triangle(a *callback.Action, n scene.Node, v1, v2, v3 *scene.PrimitiveVertex) {
	if p.numTriangles == 0 {
		if p.initShape(a.State()) {
			p.cache = vcache.New(a.State())
			p.phase = phaseCapturing
		} else {
			p.phase = phaseIneligible
		}
	}
	p.numTriangles++
	if p.cache != nil {
		p.cache.AddTriangle(v1, v2, v3)
	}
}

// initShape determines whether the shape can be replaced in the given
// state, and records what the replacement needs from it.
func (p *Pass) initShape(st *elements.State) bool {
	eligible := true
	p.hasTexture = st.TextureEnabled(0)
	p.needTexCoords = append(p.needTexCoords[:0], false)

	if bitflag.HasAny(st.ShapeStyle(), elements.BumpMap, elements.BBoxComplex, elements.Invisible, elements.BigImage) {
		eligible = false
		p.reason = ReasonStyle
	}
	if eligible && p.hasTexture {
		switch st.TexCoordMode(0) {
		case elements.TexCoordDefault, elements.TexCoordExplicit, elements.TexCoordFunction:
			p.needTexCoords[0] = true
		case elements.TexCoordTexGen:
		default:
			eligible = false
			p.reason = ReasonTexCoordMode
		}
	}
	if eligible {
		units := st.EnabledUnits()
		for i := 1; i < len(units); i++ {
			p.needTexCoords = append(p.needTexCoords, false)
			if !units[i] {
				continue
			}
			// there is no compact representation for more than one unit,
			// but the needs are still recorded for every unit
			eligible = false
			p.reason = ReasonMultiTexture
			p.hasTexture = true
			switch st.TexCoordMode(i) {
			case elements.TexCoordDefault, elements.TexCoordExplicit, elements.TexCoordFunction:
				p.needTexCoords[i] = true
			}
		}
	}
	if eligible {
		d := st.Diffuse()
		p.diffuse = math32.NewColorTransparency(d.R, d.G, d.B, st.Transparency()).Packed()
	}
	return eligible
}

// replaceNode replaces the tail of the path with a face set built from
// the cache, if there is one that can be used.
func (p *Pass) replaceNode(path *scene.Path) {
	if p.cache == nil {
		if p.numTriangles == 0 {
			p.reason = ReasonNoTriangles
		}
		p.unchanged(path, p.reason)
		return
	}
	defer p.releaseCache()
	// the replacement binds one overall color, the diffuse color
	// captured at the first triangle
	if color, ok := p.cache.Color(); !ok || color != p.diffuse {
		p.unchanged(path, ReasonColorPerVertex)
		return
	}

	parent := path.NodeFromTail(1)
	idx := path.IndexFromTail(0)
	holder, isHolder := parent.(*scene.ShapeHolder)
	group, isGroup := parent.(scene.Container)
	isGroup = isGroup && parent.AsNode().IsOfType(scene.GroupType)
	if !isHolder && !isGroup {
		p.unchanged(path, ReasonParent)
		return
	}

	ifs := p.build(path.Tail().AsNode().Name)
	ifs.Ref()
	path.Pop()
	if isHolder {
		holder.SetGeometry(ifs)
	} else {
		group.ReplaceChild(idx, ifs)
	}
	path.Push(idx)
	ifs.UnrefNoDelete()

	p.phase = phaseReplaced
	p.stats.replaced(p.cache.NumTriangles(), p.cache.NumVertices())
	p.Metrics.record(ReasonNone, p.cache.NumTriangles(), p.cache.NumVertices())
	slog.Debug("reorganize: shape replaced", "path", path, "triangles", p.cache.NumTriangles(), "vertices", p.cache.NumVertices())
}

// build returns a new face set with the given name and the contents
// of the cache.
func (p *Pass) build(name string) *scene.IndexedFaceSet {
	c := p.cache
	ifs := scene.NewIndexedFaceSet(name)
	vp := ifs.VertexProperty
	vp.NormalBinding = scene.BindPerVertexIndexed
	vp.MaterialBinding = scene.BindOverall
	vp.OrderedRGBA = []uint32{p.diffuse}
	if p.hasTexture {
		tcs := c.TexCoords()
		vp.TexCoord = make([]math32.Vector2, len(tcs))
		for i, tc := range tcs {
			vp.TexCoord[i] = tc.PerspDiv()
		}
	}
	vp.Vertex = slices.Clone(c.Vertices())
	vp.Normal = slices.Clone(c.Normals())

	indices := c.Indices()
	ifs.CoordIndex = make([]int32, 0, len(indices)/3*4)
	for i := 0; i+2 < len(indices); i += 3 {
		ifs.CoordIndex = append(ifs.CoordIndex, indices[i], indices[i+1], indices[i+2], scene.EndOfFace)
	}
	return ifs
}

func (p *Pass) unchanged(path *scene.Path, r Reasons) {
	p.phase = phaseUnchanged
	p.reason = r
	p.stats.unchanged(r)
	p.Metrics.record(r, 0, 0)
	slog.Debug("reorganize: shape unchanged", "path", path, "reason", r)
}

func (p *Pass) releaseCache() {
	p.cache.Release()
	p.cache = nil
}
