// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides functions for opening and saving
// values as TOML files.
package tomlx

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given TOML file.
func Open(v any, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return ReadBytes(v, b)
}

// ReadBytes reads the given object from the given TOML bytes.
func ReadBytes(v any, data []byte) error {
	return toml.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Save writes the given object to the given TOML file.
func Save(v any, filename string) error {
	b, err := WriteBytes(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// WriteBytes writes the given object to TOML bytes.
func WriteBytes(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
