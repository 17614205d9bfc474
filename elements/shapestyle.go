// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"strings"

	"github.com/kazssym/coin/bitflag"
)

// ShapeStyleFlags are bit flags describing how shapes are drawn in the
// current state; see the bitflag package for manipulating them by their
// ordinal values.
type ShapeStyleFlags int64

const (
	// BumpMap is set when a bump map is active.
	BumpMap ShapeStyleFlags = iota

	// BBoxComplex is set when shapes are drawn as bounding boxes.
	BBoxComplex

	// Invisible is set when shapes are not drawn.
	Invisible

	// BigImage is set when the active texture image is too large
	// to be handled without resizing.
	BigImage

	shapeStyleFlagsN
)

var shapeStyleNames = [...]string{"BumpMap", "BBoxComplex", "Invisible", "BigImage"}

// String returns the names of all set flags joined by |.
func (f ShapeStyleFlags) String() string {
	var names []string
	for i := range shapeStyleFlagsN {
		if bitflag.Has(f, i) {
			names = append(names, shapeStyleNames[i])
		}
	}
	return strings.Join(names, "|")
}

// Mask returns the bit mask with the given flags set.
func Mask(flags ...ShapeStyleFlags) ShapeStyleFlags {
	return bitflag.Mask[ShapeStyleFlags](flags...)
}

// ShapeStyle holds the current [ShapeStyleFlags] as a bit mask.
type ShapeStyle struct {
	Flags ShapeStyleFlags
}

// ShapeStyleClass is the element class of [ShapeStyle].
var ShapeStyleClass = NewSlotClass("elements.ShapeStyle", ElementType, func() Element { return &ShapeStyle{} })

func (el *ShapeStyle) ElementClass() *Class { return ShapeStyleClass }

func (el *ShapeStyle) Copy() Element {
	cp := *el
	return &cp
}

// ShapeStyle returns the current shape style bit mask.
func (st *State) ShapeStyle() ShapeStyleFlags {
	if el, ok := st.Element(ShapeStyleClass).(*ShapeStyle); ok {
		return el.Flags
	}
	return 0
}

// SetShapeStyle sets or clears the given shape style flag.
func (st *State) SetShapeStyle(flag ShapeStyleFlags, on bool) {
	if el, ok := st.writable(ShapeStyleClass).(*ShapeStyle); ok {
		bitflag.SetState(&el.Flags, on, flag)
	}
}
