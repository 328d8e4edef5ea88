// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitrev

import "math/bits"

// fixed is the set of unsigned types with a width known independently of
// the platform. Every algorithm is written once over this set.
type fixed interface {
	uint8 | uint16 | uint32 | uint64
}

// kernel holds one algorithm instantiated for every fixed width.
type kernel struct {
	u8  func(uint8) uint8
	u16 func(uint16) uint16
	u32 func(uint32) uint32
	u64 func(uint64) uint64
}

// word reverses a pointer-sized value with the fixed width that matches it.
// bits.UintSize is a constant, so the unused branch is compiled away.
func (k *kernel) word(v uint) uint {
	if bits.UintSize == 32 {
		return uint(k.u32(uint32(v)))
	}
	return uint(k.u64(uint64(v)))
}

// apply reverses v with the instantiation of k that matches the width of T.
func apply[T Integer](k *kernel, v T) T {
	switch x := any(v).(type) {
	case uint8:
		return T(k.u8(x))
	case uint16:
		return T(k.u16(x))
	case uint32:
		return T(k.u32(x))
	case uint64:
		return T(k.u64(x))
	case uint:
		return T(k.word(x))
	case uintptr:
		return T(k.word(uint(x)))
	case int8:
		return T(signed(x, k.u8))
	case int16:
		return T(signed(x, k.u16))
	case int32:
		return T(signed(x, k.u32))
	case int64:
		return T(signed(x, k.u64))
	case int:
		return T(signed(x, k.word))
	}
	panic("bitrev: unsupported type")
}

// signed reverses v by reinterpreting its two's complement bit pattern as
// the unsigned type U of the same width and converting the result back.
func signed[S Signed, U Unsigned](v S, rev func(U) U) S {
	return S(rev(U(v)))
}

// widthOf reports the number of bits in T.
func widthOf[T fixed]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// swapBytes reverses the byte order of v. It is the identity for uint8.
func swapBytes[T fixed](v T) T {
	switch x := any(v).(type) {
	case uint16:
		return T(bits.ReverseBytes16(x))
	case uint32:
		return T(bits.ReverseBytes32(x))
	case uint64:
		return T(bits.ReverseBytes64(x))
	}
	return v
}
