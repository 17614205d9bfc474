// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivation(t *testing.T) {
	base := AddType("typestest.Base", nil)
	mid := AddType("typestest.MidLevel", base)
	leaf := AddType("typestest.Leaf", mid)
	other := AddType("typestest.Other", nil)

	assert.True(t, leaf.IsDerivedFrom(leaf))
	assert.True(t, leaf.IsDerivedFrom(mid))
	assert.True(t, leaf.IsDerivedFrom(base))
	assert.False(t, base.IsDerivedFrom(leaf))
	assert.False(t, leaf.IsDerivedFrom(other))
	assert.False(t, leaf.IsDerivedFrom(nil))

	var bad *Type
	assert.True(t, bad.IsBad())
	assert.False(t, bad.IsDerivedFrom(base))
	assert.Equal(t, 2, leaf.Depth())
	assert.Equal(t, "mid-level", mid.IDName)
	assert.Equal(t, "MidLevel", mid.ShortName())
}

func TestAddTypeTwice(t *testing.T) {
	a := AddType("typestest.Twice", nil)
	b := AddType("typestest.Twice", nil)
	assert.Same(t, a, b)

	tp, err := TypeByNameTry("typestest.Twice")
	require.NoError(t, err)
	assert.Same(t, a, tp)
	_, err = TypeByNameTry("typestest.Missing")
	assert.Error(t, err)
}

func TestIDName(t *testing.T) {
	assert.Equal(t, "group", AddType("typestest.Group", nil).IDName)
	assert.Equal(t, "indexed-face-set", AddType("typestest.IndexedFaceSet", nil).IDName)
	assert.Equal(t, "vrml-shape", AddType("typestest.VRMLShape", nil).IDName)
}
