// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitrev

var parallelKernel = kernel{
	u8:  parallel[uint8],
	u16: parallel[uint16],
	u32: parallel[uint32],
	u64: parallel[uint64],
}

// ReverseParallel returns v with its bits reversed using a divide and
// conquer approach. Pairs of bits are swapped, then neighboring bit pairs,
// then nibbles. Swapping the byte order completes the reversal.
// It runs in constant time.
func ReverseParallel[T Integer](v T) T {
	return apply(&parallelKernel, v)
}

func parallel[T fixed](v T) T {
	// The masks are derived from the width of T:
	// 0x55..., 0x33..., and 0x0f... respectively.
	m1 := ^T(0) / 3
	m2 := ^T(0) / 5
	m4 := ^T(0) / 17

	v = v>>1&m1 | v&m1<<1 // Swap odd and even bits
	v = v>>2&m2 | v&m2<<2 // Swap consecutive pairs
	v = v>>4&m4 | v&m4<<4 // Swap nibbles
	return swapBytes(v)
}
