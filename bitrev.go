// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitrev computes the bit reversal of fixed-width integers.
//
// Reversing an N-bit value moves bit i to bit N-1-i. Three algorithms are
// provided, and all of them produce identical results for every width:
//
//	Bitwise   moves one bit at a time and stops once no set bits remain.
//	Parallel  swaps bit groups of doubling size using masks, then swaps bytes.
//	Lookup    reverses each byte through a 256-entry table, then swaps bytes.
//
// Parallel performs as well as or better than Lookup for every width and does
// not pollute the cache with a table. Bitwise exists mainly for completeness.
// Its running time depends on the position of the highest set bit of the
// input, so it must not be used on secret data.
//
// Signed integers are reversed by their two's complement bit pattern. The
// pointer-sized types (uint, uintptr, and int) are reversed using the fixed
// width that matches bits.UintSize.
//
// Every function in this package is pure and safe for concurrent use.
package bitrev

import (
	"fmt"
	"strconv"
	"strings"
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "bitrev: " + string(e) }

var (
	ErrUnknownAlgorithm error = Error("unknown algorithm")
	ErrInvalidWidth     error = Error("invalid width")
)

// Unsigned is the set of unsigned integer types that can be reversed.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64 | uint | uintptr
}

// Signed is the set of signed integer types that can be reversed.
type Signed interface {
	int8 | int16 | int32 | int64 | int
}

// Integer is the set of all integer types that can be reversed.
type Integer interface {
	Unsigned | Signed
}

// Algorithm selects the strategy used to reverse bits.
type Algorithm uint8

const (
	Bitwise Algorithm = iota
	Parallel
	Lookup
)

var algoNames = [...]string{
	Bitwise:  "bitwise",
	Parallel: "parallel",
	Lookup:   "lookup",
}

// Algorithms returns every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{Bitwise, Parallel, Lookup}
}

func (a Algorithm) String() string {
	if int(a) < len(algoNames) {
		return algoNames[a]
	}
	return "Algorithm(" + strconv.Itoa(int(a)) + ")"
}

// ParseAlgorithm returns the algorithm with the given case-insensitive name.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algoNames {
		if strings.EqualFold(s, name) {
			return Algorithm(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) kernel() *kernel {
	switch a {
	case Bitwise:
		return &bitwiseKernel
	case Parallel:
		return &parallelKernel
	case Lookup:
		return &lookupKernel
	}
	panic("bitrev: " + a.String())
}

// Reverse returns v with its bits reversed using alg.
// It panics if alg is not one of the defined algorithms.
func Reverse[T Integer](alg Algorithm, v T) T {
	return apply(alg.kernel(), v)
}
