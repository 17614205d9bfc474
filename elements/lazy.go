// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import "github.com/kazssym/coin/math32"

// Lazy holds the material values that are cheap to track for every shape:
// the flat diffuse color and transparency.
type Lazy struct {
	Diffuse      math32.Color
	Transparency float32
}

// DefaultDiffuse is the diffuse color used when no material is set.
var DefaultDiffuse = math32.NewColor(0.8, 0.8, 0.8)

// LazyClass is the element class of [Lazy].
var LazyClass = NewSlotClass("elements.Lazy", ElementType, func() Element { return &Lazy{Diffuse: DefaultDiffuse} })

func (el *Lazy) ElementClass() *Class { return LazyClass }

func (el *Lazy) Copy() Element {
	cp := *el
	return &cp
}

// Diffuse returns the current diffuse color.
func (st *State) Diffuse() math32.Color {
	if el, ok := st.Element(LazyClass).(*Lazy); ok {
		return el.Diffuse
	}
	return DefaultDiffuse
}

// Transparency returns the current transparency.
func (st *State) Transparency() float32 {
	if el, ok := st.Element(LazyClass).(*Lazy); ok {
		return el.Transparency
	}
	return 0
}

// SetDiffuse sets the current diffuse color.
func (st *State) SetDiffuse(c math32.Color) {
	if el, ok := st.writable(LazyClass).(*Lazy); ok {
		el.Diffuse = c
	}
}

// SetTransparency sets the current transparency.
func (st *State) SetTransparency(t float32) {
	if el, ok := st.writable(LazyClass).(*Lazy); ok {
		el.Transparency = t
	}
}
