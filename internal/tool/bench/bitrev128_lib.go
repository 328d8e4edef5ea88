// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_bitrev_lib && !bitrev_no128

package bench

import "github.com/dsnet/bitrev"

func init() {
	for _, alg := range bitrev.Algorithms() {
		RegisterReverser(128, alg.String(), func(dst, src []uint64) {
			for i := 0; i+1 < len(src); i += 2 {
				r := bitrev.Reverse128(alg, bitrev.Uint128{Hi: src[i], Lo: src[i+1]})
				dst[i], dst[i+1] = r.Hi, r.Lo
			}
		})
	}
}
