// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides functions for opening and saving
// values as YAML files.
package yamlx

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Open reads the given object from the given YAML file.
func Open(v any, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return ReadBytes(v, b)
}

// ReadBytes reads the given object from the given YAML bytes.
func ReadBytes(v any, data []byte) error {
	return yaml.Unmarshal(data, v)
}

// Save writes the given object to the given YAML file.
func Save(v any, filename string) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
