// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitrev

var bitwiseKernel = kernel{
	u8:  bitwise[uint8],
	u16: bitwise[uint16],
	u32: bitwise[uint32],
	u64: bitwise[uint64],
}

// ReverseBitwise returns v with its bits reversed, moving one bit per step.
//
// The loop ends as soon as the remaining input has no set bits, so the
// running time depends on the value of v. Do not use it on secret data.
func ReverseBitwise[T Integer](v T) T {
	return apply(&bitwiseKernel, v)
}

// bitwise starts the result r as v and shifts each remaining bit of v into
// the bottom of r. Once v has no more set bits, r is shifted left by the
// number of iterations that were skipped, moving the accumulated bits into
// place. The original low bit of v ends up as the most-significant bit.
func bitwise[T fixed](v T) T {
	r := v
	s := widthOf[T]() - 1
	for v >>= 1; v != 0; v >>= 1 {
		r <<= 1
		r |= v & 1
		s--
	}
	return r << s
}
