// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import "math/bits"

func init() {
	RegisterReverser(8, Reference, func(dst, src []uint64) {
		for i, v := range src {
			dst[i] = uint64(bits.Reverse8(uint8(v)))
		}
	})
	RegisterReverser(16, Reference, func(dst, src []uint64) {
		for i, v := range src {
			dst[i] = uint64(bits.Reverse16(uint16(v)))
		}
	})
	RegisterReverser(32, Reference, func(dst, src []uint64) {
		for i, v := range src {
			dst[i] = uint64(bits.Reverse32(uint32(v)))
		}
	})
	RegisterReverser(64, Reference, func(dst, src []uint64) {
		for i, v := range src {
			dst[i] = bits.Reverse64(v)
		}
	})
	RegisterReverser(128, Reference, func(dst, src []uint64) {
		for i := 0; i+1 < len(src); i += 2 {
			dst[i], dst[i+1] = bits.Reverse64(src[i+1]), bits.Reverse64(src[i])
		}
	})
}
