// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToKebab(t *testing.T) {
	tests := map[string]string{
		"":                      "",
		"Group":                 "group",
		"IndexedFaceSet":        "indexed-face-set",
		"VRMLShape":             "vrml-shape",
		"BBoxComplex":           "b-box-complex",
		"Texture2":              "texture2",
		"TextureCoordinateMode": "texture-coordinate-mode",
		"already-kebab":         "already-kebab",
		" Spaced Words ":        "spaced-words",
	}
	for in, want := range tests {
		assert.Equal(t, want, ToKebab(in), in)
	}
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "color_per_vertex", ToSnake("ColorPerVertex"))
	assert.Equal(t, "tex_coord_mode", ToSnake("TexCoordMode"))
	assert.Equal(t, "COLOR_PER_VERTEX", ToSNAKE("ColorPerVertex"))
	assert.Equal(t, "stale_path", ToSnake("stale-path"))
}
