// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search provides an action that finds the nodes of a scene graph
// that match a combination of criteria: a specific node, a node type, and
// a node name. All of the criteria that are set must match.
package search

import (
	"fmt"

	"github.com/kazssym/coin/action"
	"github.com/kazssym/coin/bitflag"
	"github.com/kazssym/coin/scene"
	"github.com/kazssym/coin/types"
)

// LookFor is one search criterion, as an ordinal bit position
// in a [LookForMask].
type LookFor int

const (
	// LookForNode matches a specific node instance.
	LookForNode LookFor = iota

	// LookForType matches nodes of a type, or of types derived from it.
	LookForType

	// LookForName matches nodes with a name.
	LookForName
)

// LookForMask is a set of [LookFor] criteria.
type LookForMask int64

// Mask returns the mask of the given criteria.
func Mask(flags ...LookFor) LookForMask {
	return bitflag.Mask[LookForMask](flags...)
}

// Has returns whether the mask includes the given criterion.
func (m LookForMask) Has(f LookFor) bool {
	return bitflag.Has(m, f)
}

// Interests select which of the matches are kept.
type Interests int32

const (
	// First keeps the first match and stops the search.
	First Interests = iota

	// Last keeps the most recent match.
	Last

	// All keeps every match, in traversal order.
	All
)

var interestNames = [...]string{"First", "Last", "All"}

func (i Interests) String() string {
	if i < 0 || int(i) >= len(interestNames) {
		return fmt.Sprintf("Interests(%d)", int32(i))
	}
	return interestNames[i]
}

// Search is an action that searches a scene graph for nodes.
// A new Search matches nothing until criteria are set.
type Search struct {
	action.Action

	find           LookForMask
	interest       Interests
	node           scene.Node
	typ            *types.Type
	includeDerived bool
	name           string

	// path is the match kept under First and Last.
	path *scene.Path

	// paths are the matches kept under All.
	paths []*scene.Path
}

// Class is the action class of [Search].
var Class = action.NewClass("search.Search", action.BaseClass)

func init() {
	for _, t := range []*types.Type{scene.NodeType, scene.GroupType, scene.ShapeHolderType, scene.ShapeType} {
		Class.AddMethod(t, searchMethod)
	}
}

// New returns a new [Search] with default settings.
func New() *Search {
	s := &Search{}
	action.Init(s, Class)
	s.Reset()
	return s
}

// SetNode sets the node to search for, and adds [LookForNode] to the criteria.
func (s *Search) SetNode(n scene.Node) *Search {
	s.node = n
	bitflag.Set(&s.find, LookForNode)
	return s
}

// Node returns the node searched for.
func (s *Search) Node() scene.Node {
	return s.node
}

// SetType sets the node type to search for, and adds [LookForType] to the
// criteria. If includeDerived is true, nodes of types derived from typ
// also match.
func (s *Search) SetType(typ *types.Type, includeDerived bool) *Search {
	s.typ = typ
	s.includeDerived = includeDerived
	bitflag.Set(&s.find, LookForType)
	return s
}

// Type returns the node type searched for, and whether derived types match.
func (s *Search) Type() (*types.Type, bool) {
	return s.typ, s.includeDerived
}

// SetName sets the node name to search for, and adds [LookForName]
// to the criteria.
func (s *Search) SetName(name string) *Search {
	s.name = name
	bitflag.Set(&s.find, LookForName)
	return s
}

// Name returns the node name searched for.
func (s *Search) Name() string {
	return s.name
}

// SetFind sets the criteria explicitly.
func (s *Search) SetFind(mask LookForMask) *Search {
	s.find = mask
	return s
}

// Find returns the criteria.
func (s *Search) Find() LookForMask {
	return s.find
}

// SetInterest sets which matches are kept.
func (s *Search) SetInterest(interest Interests) *Search {
	s.interest = interest
	return s
}

// Interest returns which matches are kept.
func (s *Search) Interest() Interests {
	return s.interest
}

// SetSearchingAll sets whether every node is searched, including the
// children that [scene.Selector] nodes do not select.
func (s *Search) SetSearchingAll(all bool) *Search {
	s.Exhaustive = all
	return s
}

// IsSearchingAll returns whether every node is searched.
func (s *Search) IsSearchingAll() bool {
	return s.Exhaustive
}

// Reset restores the default settings and releases any matches.
func (s *Search) Reset() {
	s.find = 0
	s.interest = First
	s.Exhaustive = false
	s.includeDerived = true
	s.node = nil
	s.typ = nil
	s.name = ""
	s.clearMatches()
}

func (s *Search) clearMatches() {
	if s.path != nil {
		s.path.Release()
		s.path = nil
	}
	for _, p := range s.paths {
		p.Release()
	}
	s.paths = nil
}

// Apply searches the graph rooted at the given node,
// replacing the matches of any previous search.
func (s *Search) Apply(root scene.Node) {
	s.clearMatches()
	s.Action.Apply(root)
}

// Path returns the match kept under [First] or [Last], or nil.
// The path belongs to the search and is released by the next
// [Search.Apply] or [Search.Reset].
func (s *Search) Path() *scene.Path {
	return s.path
}

// Paths returns the matches kept under [All].
// The paths belong to the search and are released by the next
// [Search.Apply] or [Search.Reset].
func (s *Search) Paths() []*scene.Path {
	return s.paths
}

// IsFound returns whether the search stopped at a match under [First].
func (s *Search) IsFound() bool {
	return s.Terminated()
}

// Matches returns whether the node matches all of the criteria.
// No node matches when there are no criteria.
func (s *Search) Matches(n scene.Node) bool {
	if s.find == 0 {
		return false
	}
	if s.find.Has(LookForNode) && n != s.node {
		return false
	}
	if s.find.Has(LookForType) {
		typ := n.NodeType()
		if s.includeDerived {
			if !typ.IsDerivedFrom(s.typ) {
				return false
			}
		} else if typ != s.typ {
			return false
		}
	}
	if s.find.Has(LookForName) && n.AsNode().Name != s.name {
		return false
	}
	return true
}

// addPath keeps the given path according to the interest.
// It panics if a match was already found under First, or if
// the interest is not valid.
func (s *Search) addPath(p *scene.Path) {
	if s.IsFound() {
		panic("search.Search.addPath: match already found")
	}
	switch s.interest {
	case First:
		if s.path != nil {
			panic("search.Search.addPath: match already kept")
		}
		s.path = p
		s.SetTerminated(true)
	case Last:
		if s.path != nil {
			s.path.Release()
		}
		s.path = p
	case All:
		s.paths = append(s.paths, p)
	default:
		p.Release()
		panic(fmt.Sprintf("search.Search.addPath: invalid interest %v", s.interest))
	}
}

func searchMethod(act action.Actioner, n scene.Node) {
	s := act.(*Search)
	if s.Matches(n) {
		s.addPath(s.CurPath().Copy())
		if s.IsFound() {
			return
		}
	}
	if c, ok := n.(scene.Container); ok {
		s.TraverseChildren(c)
	}
}
