// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitrev

import "github.com/dsnet/bitrev/internal"

var lookupKernel = kernel{
	u8:  lookup[uint8],
	u16: lookup[uint16],
	u32: lookup[uint32],
	u64: lookup[uint64],
}

// ReverseLookup returns v with its bits reversed by translating each byte
// through a 256-entry table and reversing the byte order.
func ReverseLookup[T Integer](v T) T {
	return apply(&lookupKernel, v)
}

func lookup[T fixed](v T) (x T) {
	n := widthOf[T]()
	for i := uint(0); i < n; i += 8 {
		x |= T(internal.ReverseLUT[uint8(v>>i)]) << (n - 8 - i)
	}
	return x
}
