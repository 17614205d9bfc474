// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testFlags int64

const (
	flagA int = iota
	flagB
	flagC
	flagD
)

func TestSetClear(t *testing.T) {
	var bits testFlags
	Set(&bits, flagA, flagC)
	assert.Equal(t, testFlags(0b101), bits)
	assert.True(t, Has(bits, flagA))
	assert.False(t, Has(bits, flagB))

	Clear(&bits, flagA)
	assert.Equal(t, testFlags(0b100), bits)

	SetState(&bits, true, flagD)
	assert.True(t, Has(bits, flagD))
	SetState(&bits, false, flagD, flagC)
	assert.Zero(t, bits)
}

func TestHasAnyAll(t *testing.T) {
	var bits uint64
	Set(&bits, flagB, flagC)
	assert.True(t, HasAny(bits, flagA, flagB))
	assert.False(t, HasAny(bits, flagA, flagD))
	assert.True(t, HasAll(bits, flagB, flagC))
	assert.False(t, HasAll(bits, flagA, flagB))
	assert.True(t, HasMask(bits, Mask[uint64](flagC)))
	assert.False(t, HasMask(bits, Mask[uint64](flagD)))
	assert.Equal(t, uint64(0b1001), Mask[uint64](flagA, flagD))
}
