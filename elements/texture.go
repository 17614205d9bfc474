// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import "slices"

// TextureEnabled records whether texturing is enabled on unit 0.
type TextureEnabled struct {
	Enabled bool
}

// TextureEnabledClass is the element class of [TextureEnabled].
var TextureEnabledClass = NewSlotClass("elements.TextureEnabled", ElementType, func() Element { return &TextureEnabled{} })

func (el *TextureEnabled) ElementClass() *Class { return TextureEnabledClass }

func (el *TextureEnabled) Copy() Element {
	cp := *el
	return &cp
}

// MultiTextureEnabled records texture enablement for every texture unit.
// It shares the slot of [TextureEnabled].
type MultiTextureEnabled struct {
	Units []bool
}

// MultiTextureEnabledClass is the element class of [MultiTextureEnabled].
var MultiTextureEnabledClass = NewDerivedClass("elements.MultiTextureEnabled", TextureEnabledClass, func() Element { return &MultiTextureEnabled{} })

func (el *MultiTextureEnabled) ElementClass() *Class { return MultiTextureEnabledClass }

func (el *MultiTextureEnabled) Copy() Element {
	return &MultiTextureEnabled{Units: slices.Clone(el.Units)}
}

// TextureEnabled returns whether texturing is enabled on the given unit.
// States that only track unit 0 report false for all other units.
func (st *State) TextureEnabled(unit int) bool {
	switch el := st.Element(TextureEnabledClass).(type) {
	case *MultiTextureEnabled:
		return unit < len(el.Units) && el.Units[unit]
	case *TextureEnabled:
		return unit == 0 && el.Enabled
	}
	return false
}

// EnabledUnits returns the per-unit texture enablement up to and including
// the last enabled unit, or nil if no unit is enabled.
func (st *State) EnabledUnits() []bool {
	var units []bool
	switch el := st.Element(TextureEnabledClass).(type) {
	case *MultiTextureEnabled:
		units = el.Units
	case *TextureEnabled:
		units = []bool{el.Enabled}
	}
	for last := len(units) - 1; last >= 0; last-- {
		if units[last] {
			return units[:last+1]
		}
	}
	return nil
}

// SetTextureEnabled enables or disables texturing on the given unit.
func (st *State) SetTextureEnabled(unit int, on bool) {
	switch el := st.writable(TextureEnabledClass).(type) {
	case *MultiTextureEnabled:
		for unit >= len(el.Units) {
			el.Units = append(el.Units, false)
		}
		el.Units[unit] = on
	case *TextureEnabled:
		if unit == 0 {
			el.Enabled = on
		}
	}
}

// TexCoordMode is the way texture coordinates are obtained for a unit.
type TexCoordMode int32

const (
	// TexCoordDefault generates default coordinates from the shape.
	TexCoordDefault TexCoordMode = iota

	// TexCoordExplicit uses coordinates supplied with the shape.
	TexCoordExplicit

	// TexCoordTexGen lets the renderer generate coordinates.
	TexCoordTexGen

	// TexCoordFunction computes coordinates with a function of position.
	TexCoordFunction

	texCoordModeN
)

var texCoordModeNames = [...]string{"Default", "Explicit", "TexGen", "Function"}

func (m TexCoordMode) String() string {
	if m < 0 || m >= texCoordModeN {
		return "TexCoordMode(invalid)"
	}
	return texCoordModeNames[m]
}

// TextureCoordinate records the texture coordinate mode of unit 0.
type TextureCoordinate struct {
	Mode TexCoordMode
}

// TextureCoordinateClass is the element class of [TextureCoordinate].
var TextureCoordinateClass = NewSlotClass("elements.TextureCoordinate", ElementType, func() Element { return &TextureCoordinate{} })

func (el *TextureCoordinate) ElementClass() *Class { return TextureCoordinateClass }

func (el *TextureCoordinate) Copy() Element {
	cp := *el
	return &cp
}

// MultiTextureCoordinate records the texture coordinate mode of every unit.
// It shares the slot of [TextureCoordinate].
type MultiTextureCoordinate struct {
	Modes []TexCoordMode
}

// MultiTextureCoordinateClass is the element class of [MultiTextureCoordinate].
var MultiTextureCoordinateClass = NewDerivedClass("elements.MultiTextureCoordinate", TextureCoordinateClass, func() Element { return &MultiTextureCoordinate{} })

func (el *MultiTextureCoordinate) ElementClass() *Class { return MultiTextureCoordinateClass }

func (el *MultiTextureCoordinate) Copy() Element {
	return &MultiTextureCoordinate{Modes: slices.Clone(el.Modes)}
}

// TexCoordMode returns the texture coordinate mode of the given unit.
func (st *State) TexCoordMode(unit int) TexCoordMode {
	switch el := st.Element(TextureCoordinateClass).(type) {
	case *MultiTextureCoordinate:
		if unit < len(el.Modes) {
			return el.Modes[unit]
		}
	case *TextureCoordinate:
		if unit == 0 {
			return el.Mode
		}
	}
	return TexCoordDefault
}

// SetTexCoordMode sets the texture coordinate mode of the given unit.
func (st *State) SetTexCoordMode(unit int, mode TexCoordMode) {
	switch el := st.writable(TextureCoordinateClass).(type) {
	case *MultiTextureCoordinate:
		for unit >= len(el.Modes) {
			el.Modes = append(el.Modes, TexCoordDefault)
		}
		el.Modes[unit] = mode
	case *TextureCoordinate:
		if unit == 0 {
			el.Mode = mode
		}
	}
}
