// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reorganize

import (
	"fmt"
	"strings"

	"github.com/kazssym/coin/strcase"
)

// Reasons are the reasons a shape is left unchanged.
type Reasons int32

const (
	// ReasonNone is used for shapes that were replaced.
	ReasonNone Reasons = iota

	// ReasonStyle is used when a shape style flag (bump mapping, complex
	// bounding box, invisibility or an oversized image) is set.
	ReasonStyle

	// ReasonMultiTexture is used when a texture unit above 0 is enabled.
	ReasonMultiTexture

	// ReasonTexCoordMode is used when the texture coordinate mode
	// of unit 0 is not supported.
	ReasonTexCoordMode

	// ReasonNoTriangles is used when the shape generated no triangles.
	ReasonNoTriangles

	// ReasonColorPerVertex is used when vertices at the same position
	// have different colors.
	ReasonColorPerVertex

	// ReasonParent is used when the shape has no parent that can hold
	// the replacement.
	ReasonParent

	// ReasonStalePath is used when an earlier replacement changed a
	// shared parent so that the path no longer leads to the shape.
	ReasonStalePath

	reasonsN
)

var reasonNames = snakeNames("None", "Style", "MultiTexture", "TexCoordMode", "NoTriangles", "ColorPerVertex", "Parent", "StalePath")

func snakeNames(names ...string) [reasonsN]string {
	var sn [reasonsN]string
	for i, n := range names {
		sn[i] = strcase.ToSnake(n)
	}
	return sn
}

func (r Reasons) String() string {
	if r < 0 || r >= reasonsN {
		return fmt.Sprintf("Reasons(%d)", int32(r))
	}
	return reasonNames[r]
}

// MarshalText implements [encoding.TextMarshaler] so that reasons
// can be used as map keys in encoded stats.
func (r Reasons) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Stats are the counts of a [Pass] since it was created
// or last reset.
type Stats struct {

	// Shapes is the number of shapes visited.
	Shapes int `json:"shapes"`

	// Replaced is the number of shapes replaced.
	Replaced int `json:"replaced"`

	// Unchanged is the number of shapes left unchanged, by reason.
	Unchanged map[Reasons]int `json:"unchanged"`

	// Triangles is the number of triangles in the replaced shapes.
	Triangles int `json:"triangles"`

	// Vertices is the number of distinct vertices in the replaced shapes.
	Vertices int `json:"vertices"`
}

// NumUnchanged returns the number of shapes left unchanged.
func (s *Stats) NumUnchanged() int {
	n := 0
	for _, c := range s.Unchanged {
		n += c
	}
	return n
}

func (s *Stats) unchanged(r Reasons) {
	if s.Unchanged == nil {
		s.Unchanged = map[Reasons]int{}
	}
	s.Shapes++
	s.Unchanged[r]++
}

func (s *Stats) replaced(triangles, vertices int) {
	s.Shapes++
	s.Replaced++
	s.Triangles += triangles
	s.Vertices += vertices
}

// String returns a one line summary of the stats.
func (s *Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "shapes: %d replaced: %d unchanged: %d triangles: %d vertices: %d", s.Shapes, s.Replaced, s.NumUnchanged(), s.Triangles, s.Vertices)
	for r := ReasonStyle; r < reasonsN; r++ {
		if c := s.Unchanged[r]; c > 0 {
			fmt.Fprintf(&b, " %v: %d", r, c)
		}
	}
	return b.String()
}
