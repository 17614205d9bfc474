// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reorganize

import (
	"path/filepath"
	"strings"

	"github.com/kazssym/coin/base/errors"
	"github.com/kazssym/coin/base/iox/tomlx"
	"github.com/kazssym/coin/base/iox/yamlx"
)

// ErrUnsupportedFormat is returned for options files whose extension
// is not one of .toml, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("unsupported options file extension")

// Options are the settings of a [Pass].
type Options struct {

	// GenerateNormals generates normals for the rebuilt shapes.
	// The tessellated normals are always kept, so this is informational.
	GenerateNormals bool `toml:"generate_normals" yaml:"generate_normals" default:"true"`

	// GenerateTexCoords generates texture coordinates for the rebuilt shapes.
	// The tessellated coordinates are always kept, so this is informational.
	GenerateTexCoords bool `toml:"generate_tex_coords" yaml:"generate_tex_coords" default:"true"`

	// GenerateTriangleStrips would merge the triangles into strips.
	// It is not implemented: plain indexed triangles are always built.
	GenerateTriangleStrips bool `toml:"generate_triangle_strips" yaml:"generate_triangle_strips" default:"false"`

	// GenerateVPNodes would build standalone vertex property nodes.
	// Vertex properties are always held by the rebuilt shape itself.
	GenerateVPNodes bool `toml:"generate_vp_nodes" yaml:"generate_vp_nodes" default:"false"`

	// MatchIndexArrays shares one index array between all attributes.
	// Only coordinate indices are built, so this is informational.
	MatchIndexArrays bool `toml:"match_index_arrays" yaml:"match_index_arrays" default:"true"`
}

// Defaults sets the default values of the options.
func (o *Options) Defaults() {
	o.GenerateNormals = true
	o.GenerateTexCoords = true
	o.GenerateTriangleStrips = false
	o.GenerateVPNodes = false
	o.MatchIndexArrays = true
}

// OpenOptions reads options from the given TOML (.toml) or YAML
// (.yaml, .yml) file. Settings missing from the file keep their
// default values.
func OpenOptions(filename string) (*Options, error) {
	o := &Options{}
	o.Defaults()
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(o, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(o, filename)
	default:
		return nil, errors.Errorf("reorganize.OpenOptions: %w %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, errors.Errorf("reorganize.OpenOptions: %w", err)
	}
	return o, nil
}

// SaveOptions writes the options to the given TOML or YAML file,
// chosen by its extension as in [OpenOptions].
func SaveOptions(o *Options, filename string) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Save(o, filename)
	case ".yaml", ".yml":
		err = yamlx.Save(o, filename)
	default:
		return errors.Errorf("reorganize.SaveOptions: %w %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return errors.Errorf("reorganize.SaveOptions: %w", err)
	}
	return nil
}
