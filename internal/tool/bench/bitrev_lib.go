// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_bitrev_lib

package bench

import "github.com/dsnet/bitrev"

func init() {
	for _, alg := range bitrev.Algorithms() {
		RegisterReverser(8, alg.String(), batch[uint8](alg))
		RegisterReverser(16, alg.String(), batch[uint16](alg))
		RegisterReverser(32, alg.String(), batch[uint32](alg))
		RegisterReverser(64, alg.String(), batch[uint64](alg))
	}
}

func batch[T uint8 | uint16 | uint32 | uint64](alg bitrev.Algorithm) Reverser {
	return func(dst, src []uint64) {
		for i, v := range src {
			dst[i] = uint64(bitrev.Reverse(alg, T(v)))
		}
	}
}
