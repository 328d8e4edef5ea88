// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !bitrev_no128

package bitrev

import (
	"errors"
	"math/bits"
	"strconv"
	"testing"

	"github.com/dsnet/bitrev/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestReverse128(t *testing.T) {
	var vectors = []struct {
		input  Uint128
		output Uint128
	}{
		{Uint128{}, Uint128{}},
		{Uint128{^uint64(0), ^uint64(0)}, Uint128{^uint64(0), ^uint64(0)}},
		{Uint128{0, 1}, Uint128{1 << 63, 0}},
		{Uint128{1 << 63, 0}, Uint128{0, 1}},
		{Uint128{0x0123456789abcdef, 0x0123456789abcdef}, Uint128{0xf7b3d591e6a2c480, 0xf7b3d591e6a2c480}},
		{Uint128{0, 0xab}, Uint128{0xd500000000000000, 0}},
		{Uint128{0xabcd2345, 0}, Uint128{0, 0xa2c4b3d500000000}},
	}

	for _, alg := range Algorithms() {
		for i, v := range vectors {
			if got := Reverse128(alg, v.input); got != v.output {
				t.Errorf("%v, test %d: Reverse128(%v) = %v, want %v", alg, i, v.input, got, v.output)
			}
			in, out := v.input.Int128(), v.output.Int128()
			if got := ReverseInt128(alg, in); got != out {
				t.Errorf("%v, test %d: ReverseInt128(%v) = %v, want %v", alg, i, in, got, out)
			}
		}
	}
}

func TestReverse128Agreement(t *testing.T) {
	rand := testutil.NewRand(128)
	for i := 0; i < 10000; i++ {
		v := Uint128{rand.Uint64(), rand.Sparse()}
		if i%3 == 0 {
			v.Hi = 0
		}
		want := Uint128{bits.Reverse64(v.Lo), bits.Reverse64(v.Hi)}
		for _, alg := range Algorithms() {
			if got := Reverse128(alg, v); got != want {
				t.Fatalf("%v: Reverse128(%v) = %v, want %v", alg, v, got, want)
			}
		}
	}
}

func TestReverse128Properties(t *testing.T) {
	properties := newProperties()
	for _, alg := range Algorithms() {
		properties.Property(alg.String()+" involution", prop.ForAll(func(hi, lo uint64) bool {
			v := Uint128{hi, lo}
			return Reverse128(alg, Reverse128(alg, v)) == v
		}, gen.UInt64(), gen.UInt64()))
		properties.Property(alg.String()+" signed", prop.ForAll(func(hi int64, lo uint64) bool {
			v := Int128{hi, lo}
			return ReverseInt128(alg, v).Uint128() == Reverse128(alg, v.Uint128())
		}, gen.Int64(), gen.UInt64()))
	}
	properties.TestingRun(t)
}

func TestUint128Shift(t *testing.T) {
	x := Uint128{0x0123456789abcdef, 0xfedcba9876543210}
	var vectors = []struct {
		n        uint
		lsh, rsh Uint128
	}{
		{0, x, x},
		{4, Uint128{0x123456789abcdeff, 0xedcba98765432100}, Uint128{0x00123456789abcde, 0xffedcba987654321}},
		{64, Uint128{0xfedcba9876543210, 0}, Uint128{0, 0x0123456789abcdef}},
		{68, Uint128{0xedcba98765432100, 0}, Uint128{0, 0x00123456789abcde}},
		{127, Uint128{0, 0}, Uint128{0, 0}},
		{128, Uint128{}, Uint128{}},
	}

	for i, v := range vectors {
		if got := x.Lsh(v.n); got != v.lsh {
			t.Errorf("test %d, Lsh(%d) = %v, want %v", i, v.n, got, v.lsh)
		}
		if got := x.Rsh(v.n); got != v.rsh {
			t.Errorf("test %d, Rsh(%d) = %v, want %v", i, v.n, got, v.rsh)
		}
	}
}

func TestParseUint128(t *testing.T) {
	var vectors = []struct {
		input  string
		output Uint128
		err    error
	}{
		{input: "0", output: Uint128{}},
		{input: "0xff", output: Uint128{0, 0xff}},
		{input: "0x0123456789ABCDEF0123456789ABCDEF", output: Uint128{0x0123456789abcdef, 0x0123456789abcdef}},
		{input: "0x1_0000_0000_0000_0000", output: Uint128{1, 0}},
		{input: "0x_ff", output: Uint128{0, 0xff}},
		{input: "f_f", output: Uint128{0, 0xff}},
		{input: "ffffffffffffffffffffffffffffffff", output: Uint128{^uint64(0), ^uint64(0)}},
		{input: "", err: strconv.ErrSyntax},
		{input: "0x", err: strconv.ErrSyntax},
		{input: "_1", err: strconv.ErrSyntax},
		{input: "1_", err: strconv.ErrSyntax},
		{input: "1__2", err: strconv.ErrSyntax},
		{input: "0x_", err: strconv.ErrSyntax},
		{input: "0x__1", err: strconv.ErrSyntax},
		{input: "0x1ffffffffffffffffffffffffffffffff", err: ErrInvalidWidth},
		{input: "0xgg", err: strconv.ErrSyntax},
	}

	for i, v := range vectors {
		output, err := ParseUint128(v.input)
		if !errors.Is(err, v.err) {
			t.Errorf("test %d, %q: mismatching error: got %v, want %v", i, v.input, err, v.err)
			continue
		}
		if diff := cmp.Diff(v.output, output); diff != "" {
			t.Errorf("test %d, %q: mismatching output (-want +got):\n%s", i, v.input, diff)
		}
	}

	want := "0xf7b3d591e6a2c480f7b3d591e6a2c480"
	if got := (Uint128{0xf7b3d591e6a2c480, 0xf7b3d591e6a2c480}).String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
