// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elements defines the units of shared, stack-scoped state that
// actions accumulate while traversing a scene graph (texture enablement,
// texture coordinate modes, shape style flags, material color, complexity),
// and the [State] that holds them.
//
// Each element class occupies a slot index. A derived class shares the slot
// of its base class, so an action that needs the extra data of the derived
// class enables the derived type at that slot; see package enabled.
package elements

import (
	"fmt"

	"github.com/kazssym/coin/types"
)

// Element is one unit of state held in a [State] slot.
type Element interface {
	// ElementClass returns the class of this element.
	ElementClass() *Class

	// Copy returns a deep copy of the element, used when a
	// nested state level first modifies it.
	Copy() Element
}

// Class describes an element type and the slot it occupies.
type Class struct {
	// Type is the runtime type of the element.
	Type *types.Type

	// Slot is the stack index in a [State].
	Slot int

	// New returns a new element with default values.
	New func() Element
}

func (c *Class) String() string {
	return fmt.Sprintf("%v@%d", c.Type, c.Slot)
}

var (
	// ElementType is the abstract root type of all elements.
	ElementType = types.AddAbstractType("elements.Element", nil)

	// FloatType is the abstract base type of single float elements.
	FloatType = types.AddAbstractType("elements.Float", ElementType)

	// classes maps element type IDs to their classes.
	classes = map[uint64]*Class{}

	// numSlots is the number of slots allocated so far.
	numSlots int
)

// NewSlotClass registers a new element class of the given type name
// and base type, allocating a new slot for it.
func NewSlotClass(name string, base *types.Type, fn func() Element) *Class {
	c := &Class{Type: types.AddType(name, base), Slot: numSlots, New: fn}
	numSlots++
	classes[c.Type.ID] = c
	return c
}

// NewDerivedClass registers a new element class derived from the given
// class, sharing its slot.
func NewDerivedClass(name string, base *Class, fn func() Element) *Class {
	c := &Class{Type: types.AddType(name, base.Type), Slot: base.Slot, New: fn}
	classes[c.Type.ID] = c
	return c
}

// ClassOf returns the element class for the given type, or nil.
func ClassOf(typ *types.Type) *Class {
	if typ == nil {
		return nil
	}
	return classes[typ.ID]
}

// NumSlots returns the number of element slots allocated.
func NumSlots() int {
	return numSlots
}

// AllClasses returns the most derived class registered for every slot,
// which is what an action that tracks all state enables.
func AllClasses() []*Class {
	res := make([]*Class, numSlots)
	for _, c := range classes {
		cur := res[c.Slot]
		if cur == nil || c.Type.IsDerivedFrom(cur.Type) {
			res[c.Slot] = c
		}
	}
	return res
}
