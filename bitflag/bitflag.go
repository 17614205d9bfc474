// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitflag provides simple bit flag setting, checking, and clearing
// methods that take bit position args as ordinal values (from const iota
// enums) and do the bit shifting from there. The functions are generic
// over any 64-bit integer mask type, so typed flag sets such as shape
// style flags or search criteria can be manipulated directly.
package bitflag

// Mask makes a mask for checking multiple different flags
func Mask[M ~int64 | ~uint64, F ~int | ~int64](flags ...F) M {
	var mask M
	for _, f := range flags {
		mask |= 1 << uint32(f)
	}
	return mask
}

// Set sets bit value(s) for ordinal bit position flags
func Set[M ~int64 | ~uint64, F ~int | ~int64](bits *M, flags ...F) {
	*bits |= Mask[M](flags...)
}

// Clear clears bit value(s) for ordinal bit position flags
func Clear[M ~int64 | ~uint64, F ~int | ~int64](bits *M, flags ...F) {
	*bits &^= Mask[M](flags...)
}

// SetState sets or clears bit value(s) depending on state (on / off) for
// ordinal bit position flags
func SetState[M ~int64 | ~uint64, F ~int | ~int64](bits *M, state bool, flags ...F) {
	if state {
		Set(bits, flags...)
	} else {
		Clear(bits, flags...)
	}
}

// Has checks if given bit value is set for ordinal bit position flag
func Has[M ~int64 | ~uint64, F ~int | ~int64](bits M, flag F) bool {
	return bits&(1<<uint32(flag)) != 0
}

// HasAny checks if any of a set of flags are set for ordinal bit position flags (logical OR)
func HasAny[M ~int64 | ~uint64, F ~int | ~int64](bits M, flags ...F) bool {
	return bits&Mask[M](flags...) != 0
}

// HasAll checks if all of a set of flags are set for ordinal bit position flags (logical AND)
func HasAll[M ~int64 | ~uint64, F ~int | ~int64](bits M, flags ...F) bool {
	mask := Mask[M](flags...)
	return bits&mask == mask
}

// HasMask checks if any of the bits in mask are set
func HasMask[M ~int64 | ~uint64](bits, mask M) bool {
	return bits&mask != 0
}
