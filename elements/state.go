// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"log/slog"

	"github.com/kazssym/coin/types"
)

// State is the traversal state of an action: one stack of elements per
// enabled slot. [State.Push] and [State.Pop] bracket a nested scope
// (a separator); elements are copied on first write within a scope,
// so popping restores every slot to its value before the push.
type State struct {
	// stacks has one stack per slot; nil for slots that are not enabled.
	stacks [][]entry

	// depth is the current nesting depth.
	depth int
}

type entry struct {
	elem  Element
	depth int
}

// NewState returns a new state tracking the given enabled element types,
// indexed by slot as returned by enabled registries. Slots with a nil type
// are not tracked.
func NewState(enabled []*types.Type) *State {
	st := &State{stacks: make([][]entry, len(enabled))}
	for slot, typ := range enabled {
		c := ClassOf(typ)
		if c == nil {
			if typ != nil {
				slog.Error("elements.NewState: type is not an element class", "type", typ, "slot", slot)
			}
			continue
		}
		st.stacks[slot] = []entry{{elem: c.New(), depth: 0}}
	}
	return st
}

// Depth returns the current nesting depth.
func (st *State) Depth() int {
	return st.depth
}

// Push starts a new nested scope.
func (st *State) Push() {
	st.depth++
}

// Pop ends the current nested scope, restoring all elements
// modified within it.
func (st *State) Pop() {
	if st.depth == 0 {
		panic("elements.State.Pop: unbalanced pop")
	}
	for i, s := range st.stacks {
		for len(s) > 1 && s[len(s)-1].depth >= st.depth {
			s = s[:len(s)-1]
		}
		st.stacks[i] = s
	}
	st.depth--
}

// IsEnabled returns whether the slot of the given class is tracked with
// a type derived from the class type.
func (st *State) IsEnabled(c *Class) bool {
	return st.Element(c) != nil
}

// Element returns the current element for the given class, or nil if its
// slot is not tracked by this state or holds an element of an unrelated
// type. The returned element must not be modified; use [State.Writable].
func (st *State) Element(c *Class) Element {
	if c.Slot >= len(st.stacks) {
		return nil
	}
	s := st.stacks[c.Slot]
	if len(s) == 0 {
		return nil
	}
	el := s[len(s)-1].elem
	if !el.ElementClass().Type.IsDerivedFrom(c.Type) {
		return nil
	}
	return el
}

// Writable returns the current element for the given class for modification,
// copying it first if it belongs to an enclosing scope. It returns nil if
// the slot is not tracked.
func (st *State) Writable(c *Class) Element {
	if st.Element(c) == nil {
		return nil
	}
	s := st.stacks[c.Slot]
	top := s[len(s)-1]
	if top.depth < st.depth {
		top = entry{elem: top.elem.Copy(), depth: st.depth}
		st.stacks[c.Slot] = append(s, top)
	}
	return top.elem
}

// writable is [State.Writable] that logs a debug message when the
// slot is not tracked.
func (st *State) writable(c *Class) Element {
	el := st.Writable(c)
	if el == nil {
		slog.Debug("elements.State: element not enabled in this state", "class", c)
	}
	return el
}
