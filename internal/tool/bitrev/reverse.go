// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/dsnet/bitrev"
)

// reverseValue parses s as an integer of the given width and returns the
// bit reversal of it. Unsigned results are printed as zero-padded hex and
// signed results in decimal. A width of 0 selects the platform word size.
//
// Signed inputs may also be given as a raw bit pattern (e.g., 0xff for -1).
func reverseValue(alg bitrev.Algorithm, width int, signed bool, s string) (string, error) {
	switch {
	case width == 8 && signed:
		return reverseSigned[int8](alg, s, width)
	case width == 8:
		return reverseUnsigned[uint8](alg, s, width)
	case width == 16 && signed:
		return reverseSigned[int16](alg, s, width)
	case width == 16:
		return reverseUnsigned[uint16](alg, s, width)
	case width == 32 && signed:
		return reverseSigned[int32](alg, s, width)
	case width == 32:
		return reverseUnsigned[uint32](alg, s, width)
	case width == 64 && signed:
		return reverseSigned[int64](alg, s, width)
	case width == 64:
		return reverseUnsigned[uint64](alg, s, width)
	case width == 0 && signed:
		return reverseSigned[int](alg, s, bits.UintSize)
	case width == 0:
		return reverseUnsigned[uint](alg, s, bits.UintSize)
	case width == 128:
		return reverseWide(alg, signed, s)
	}
	return "", fmt.Errorf("%w: %d", bitrev.ErrInvalidWidth, width)
}

func reverseUnsigned[T bitrev.Unsigned](alg bitrev.Algorithm, s string, bitSize int) (string, error) {
	v, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return "", fmt.Errorf("invalid %d-bit value: %w", bitSize, err)
	}
	r := bitrev.Reverse(alg, T(v))
	return fmt.Sprintf("%#0*x", bitSize/4, uint64(r)), nil
}

func reverseSigned[T bitrev.Signed](alg bitrev.Algorithm, s string, bitSize int) (string, error) {
	v, err := strconv.ParseInt(s, 0, bitSize)
	if err != nil {
		u, uerr := strconv.ParseUint(s, 0, bitSize)
		if uerr != nil {
			return "", fmt.Errorf("invalid %d-bit value: %w", bitSize, err)
		}
		v = int64(T(u))
	}
	r := bitrev.Reverse(alg, T(v))
	return strconv.FormatInt(int64(r), 10), nil
}
