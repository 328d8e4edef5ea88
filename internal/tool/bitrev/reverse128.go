// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !bitrev_no128

package main

import (
	"fmt"

	"github.com/dsnet/bitrev"
)

// reverseWide reverses a 128-bit value. Both signed and unsigned results
// are printed as a hex bit pattern.
func reverseWide(alg bitrev.Algorithm, signed bool, s string) (string, error) {
	v, err := bitrev.ParseUint128(s)
	if err != nil {
		return "", fmt.Errorf("invalid 128-bit value: %w", err)
	}
	if signed {
		return bitrev.ReverseInt128(alg, v.Int128()).Uint128().String(), nil
	}
	return bitrev.Reverse128(alg, v).String(), nil
}
