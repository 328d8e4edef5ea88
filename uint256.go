// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitrev

import "github.com/holiman/uint256"

// Reverse256 returns the 256-bit word v with its bits reversed using alg.
// Each 64-bit limb is reversed with alg and the limb order is swapped.
// It panics if alg is not one of the defined algorithms.
func Reverse256(alg Algorithm, v uint256.Int) uint256.Int {
	k := alg.kernel()
	return uint256.Int{k.u64(v[3]), k.u64(v[2]), k.u64(v[1]), k.u64(v[0])}
}
