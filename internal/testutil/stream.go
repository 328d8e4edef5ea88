// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import "github.com/dsnet/golib/bits"

// ReverseStream reverses the low n bits of v by writing them to a bit buffer
// starting from the least-significant bit and reading them back in the same
// order into the most-significant end of the result.
//
// It is deliberately slow and shares no code with the bitrev package,
// which makes it useful as an oracle in tests.
func ReverseStream(v uint64, n int) (x uint64) {
	bb := bits.NewBuffer(nil)
	for i := 0; i < n; i++ {
		bb.WriteBit(v>>uint(i)&1 == 1)
	}
	for i := 0; i < n; i++ {
		b, _, err := bb.ReadBits(1)
		if err != nil {
			panic(err)
		}
		x = x<<1 | uint64(b)
	}
	return x
}
