// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enabled keeps track of which state element types each class of
// action needs its traversal state to maintain.
//
// Every action class owns a registry in an [Arena]. A registry maps a stable
// slot index to the most derived element type required at that slot, and it
// may name a parent registry (the registry of a more general action class).
// The effective table of a registry is its own entries merged with those of
// all of its ancestors. Merging is lazy: a process-wide version counter is
// bumped whenever any table changes, and a registry only re-merges when the
// counter has moved since its last merge.
//
// The version counter is plain process-wide state with no synchronization:
// all registries must be used from a single goroutine, or access must be
// serialized externally.
package enabled

import (
	"fmt"

	"github.com/kazssym/coin/types"
)

// ID addresses a registry within an [Arena].
type ID int32

// NoParent is the parent [ID] of a registry at the root of its chain.
const NoParent ID = -1

// version is the global change counter; see [Version].
var version int

// Version returns the current value of the global counter that is
// incremented whenever an element type is newly enabled in any registry.
func Version() int {
	return version
}

// registry is one table of enabled element types.
type registry struct {
	// parent is the registry of the more general action class, or NoParent.
	parent ID

	// merged is the global version at the time of the last merge.
	merged int

	// slots holds the most derived enabled type per slot index;
	// nil entries are unset.
	slots []*types.Type
}

// Arena owns a set of registries that refer to their parents by [ID].
type Arena struct {
	lists []registry

	// merges counts the number of times a registry has actually
	// walked its ancestor chain in [Arena.Slots].
	merges int
}

// Default is the arena used for the action classes of this module.
var Default = &Arena{}

// New adds a new empty registry with the given parent and returns its [ID].
// The parent must be [NoParent] or an existing registry in the arena.
func (a *Arena) New(parent ID) ID {
	if parent != NoParent {
		a.check(parent)
	}
	a.lists = append(a.lists, registry{parent: parent})
	return ID(len(a.lists) - 1)
}

// Len returns the number of registries in the arena.
func (a *Arena) Len() int {
	return len(a.lists)
}

// Parent returns the parent of the given registry.
func (a *Arena) Parent(id ID) ID {
	return a.at(id).parent
}

// Merges returns the number of ancestor merges performed so far.
func (a *Arena) Merges() int {
	return a.merges
}

// Enable records that typ (or a type derived from it) must be tracked
// at the given slot index of the given registry. The table grows as needed,
// with unset entries for any intermediate slots. An existing entry is only
// replaced when typ is strictly more derived than it; enabling the same or a
// less derived type is a no-op.
func (a *Arena) Enable(id ID, typ *types.Type, slot int) {
	if typ == nil || slot < 0 {
		return
	}
	r := a.at(id)
	for slot >= len(r.slots) {
		r.slots = append(r.slots, nil)
	}
	cur := r.slots[slot]
	if cur == nil || (typ != cur && typ.IsDerivedFrom(cur)) {
		r.slots[slot] = typ
		version++
	}
}

// Slots returns the fully merged table of the given registry, indexed by
// slot. Ancestor entries are folded in only when the global version has
// changed since the previous merge; otherwise the cached table is returned.
// The returned slice must not be modified.
func (a *Arena) Slots(id ID) []*types.Type {
	r := a.at(id)
	if r.merged != version {
		stored := version
		for p := r.parent; p != NoParent; p = a.lists[p].parent {
			a.merge(id, p)
		}
		// merging may itself bump the counter; that must not
		// invalidate the caches of unrelated registries
		version = stored
		a.at(id).merged = stored
		a.merges++
	}
	return a.at(id).slots
}

// merge enables on registry to every entry of registry from.
func (a *Arena) merge(to, from ID) {
	for i, typ := range a.lists[from].slots {
		if typ != nil {
			a.Enable(to, typ, i)
		}
	}
}

func (a *Arena) at(id ID) *registry {
	a.check(id)
	return &a.lists[id]
}

func (a *Arena) check(id ID) {
	if id < 0 || int(id) >= len(a.lists) {
		panic(fmt.Sprintf("enabled.Arena: invalid registry id %d (have %d)", id, len(a.lists)))
	}
}
