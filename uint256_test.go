// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitrev

import (
	"testing"

	"github.com/dsnet/bitrev/internal/testutil"
	"github.com/holiman/uint256"
)

func TestReverse256(t *testing.T) {
	var vectors = []struct {
		input  string
		output string
	}{
		{"0x0", "0x0"},
		{"0x1", "0x8000000000000000000000000000000000000000000000000000000000000000"},
		{"0xab", "0xd500000000000000000000000000000000000000000000000000000000000000"},
		{
			"0x123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
			"0xf7b3d591e6a2c480f7b3d591e6a2c480f7b3d591e6a2c480f7b3d591e6a2c480",
		},
		{
			"0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
			"0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		},
	}

	for _, alg := range Algorithms() {
		for i, v := range vectors {
			input := uint256.MustFromHex(v.input)
			output := uint256.MustFromHex(v.output)
			got := Reverse256(alg, *input)
			if !got.Eq(output) {
				t.Errorf("%v, test %d: Reverse256(%s) = %s, want %s", alg, i, v.input, got.Hex(), v.output)
			}
		}
	}
}

func TestReverse256Involution(t *testing.T) {
	rand := testutil.NewRand(256)
	for i := 0; i < 1000; i++ {
		v := uint256.Int{rand.Uint64(), rand.Sparse(), rand.Uint64(), rand.Sparse()}
		want := Reverse256(Parallel, v)
		for _, alg := range Algorithms() {
			got := Reverse256(alg, v)
			if !got.Eq(&want) {
				t.Fatalf("%v: Reverse256(%s) = %s, want %s", alg, v.Hex(), got.Hex(), want.Hex())
			}
			if back := Reverse256(alg, got); !back.Eq(&v) {
				t.Fatalf("%v: Reverse256(Reverse256(%s)) = %s", alg, v.Hex(), back.Hex())
			}
		}
	}
}
