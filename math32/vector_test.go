// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerspDiv(t *testing.T) {
	assert.Equal(t, Vec2(1, 2), Vec4(2, 4, 0, 2).PerspDiv())
	assert.Equal(t, Vec2(1, 1), Vec4(1, 1, 0, 0).PerspDiv())
	assert.Equal(t, Vec2(0.5, 0.25), Vec4(0.5, 0.25, 0, 1).PerspDiv())
}

func TestNormal(t *testing.T) {
	n := Normal(Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(0, 1, 0))
	assert.Equal(t, Vec3(0, 0, 1), n)
	assert.Equal(t, Vector3{}, Normal(Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(2, 0, 0)))
}

func TestColorPacked(t *testing.T) {
	c := NewColorTransparency(1, 0, 0, 0.5)
	assert.Equal(t, uint32(0xff000080), c.Packed())
	assert.Equal(t, uint32(0x00ff00ff), NewColor(0, 1, 0).Packed())
	assert.Equal(t, NewColor(0, 0, 1), ColorFromPacked(0x0000ffff))
}
