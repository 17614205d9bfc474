// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

// DefaultComplexity is the complexity used when none is set.
const DefaultComplexity = 0.5

// Complexity holds the tessellation complexity in the 0-1 range,
// used by shapes that approximate curved surfaces.
type Complexity struct {
	Value float32
}

// ComplexityClass is the element class of [Complexity].
var ComplexityClass = NewSlotClass("elements.Complexity", FloatType, func() Element { return &Complexity{Value: DefaultComplexity} })

func (el *Complexity) ElementClass() *Class { return ComplexityClass }

func (el *Complexity) Copy() Element {
	cp := *el
	return &cp
}

// Complexity returns the current complexity.
func (st *State) Complexity() float32 {
	if el, ok := st.Element(ComplexityClass).(*Complexity); ok {
		return el.Value
	}
	return DefaultComplexity
}

// SetComplexity sets the current complexity.
func (st *State) SetComplexity(v float32) {
	if el, ok := st.writable(ComplexityClass).(*Complexity); ok {
		el.Value = v
	}
}
