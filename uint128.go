// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !bitrev_no128

package bitrev

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/dsnet/bitrev/internal"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a signed 128-bit integer in two's complement form.
// The sign is the most-significant bit of Hi.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128 reinterprets the bit pattern of x as a signed value.
func (x Uint128) Int128() Int128 { return Int128{Hi: int64(x.Hi), Lo: x.Lo} }

// Uint128 reinterprets the bit pattern of x as an unsigned value.
func (x Int128) Uint128() Uint128 { return Uint128{Hi: uint64(x.Hi), Lo: x.Lo} }

func (x Uint128) IsZero() bool          { return x.Hi|x.Lo == 0 }
func (x Uint128) And(y Uint128) Uint128 { return Uint128{x.Hi & y.Hi, x.Lo & y.Lo} }
func (x Uint128) Or(y Uint128) Uint128  { return Uint128{x.Hi | y.Hi, x.Lo | y.Lo} }

// Lsh returns x shifted left by n bits.
func (x Uint128) Lsh(n uint) Uint128 {
	if n >= 64 {
		return Uint128{Hi: x.Lo << (n - 64)}
	}
	return Uint128{Hi: x.Hi<<n | x.Lo>>(64-n), Lo: x.Lo << n}
}

// Rsh returns x shifted right by n bits.
func (x Uint128) Rsh(n uint) Uint128 {
	if n >= 64 {
		return Uint128{Lo: x.Hi >> (n - 64)}
	}
	return Uint128{Hi: x.Hi >> n, Lo: x.Lo>>n | x.Hi<<(64-n)}
}

// ReverseBytes returns x with its bytes in reverse order.
func (x Uint128) ReverseBytes() Uint128 {
	return Uint128{Hi: bits.ReverseBytes64(x.Lo), Lo: bits.ReverseBytes64(x.Hi)}
}

// String formats x as a 0x-prefixed hexadecimal number of 32 digits.
func (x Uint128) String() string {
	return fmt.Sprintf("0x%016x%016x", x.Hi, x.Lo)
}

// ParseUint128 parses a hexadecimal number of at most 32 digits.
// The 0x prefix is optional. As in Go integer literals, an underscore may
// appear after the prefix or between two digits.
func ParseUint128(s string) (Uint128, error) {
	h := s
	prefixed := len(h) >= 2 && (h[:2] == "0x" || h[:2] == "0X")
	if prefixed {
		h = h[2:]
	}
	digits, ok := stripUnderscores(h, prefixed)
	if !ok || len(digits) == 0 {
		return Uint128{}, &strconv.NumError{Func: "ParseUint128", Num: s, Err: strconv.ErrSyntax}
	}
	if len(digits) > 32 {
		return Uint128{}, fmt.Errorf("%w: %q is not a 128-bit hexadecimal number", ErrInvalidWidth, s)
	}
	var x Uint128
	var err error
	if len(digits) > 16 {
		if x.Hi, err = strconv.ParseUint(digits[:len(digits)-16], 16, 64); err != nil {
			return Uint128{}, err
		}
		digits = digits[len(digits)-16:]
	}
	if x.Lo, err = strconv.ParseUint(digits, 16, 64); err != nil {
		return Uint128{}, err
	}
	return x, nil
}

// stripUnderscores removes the underscores from h, reporting false if one
// does not separate two digits. A leading underscore is allowed only if h
// followed a base prefix.
func stripUnderscores(h string, prefixed bool) (string, bool) {
	if !strings.Contains(h, "_") {
		return h, true
	}
	var sb strings.Builder
	prevDigit := prefixed // Treat the prefix as a digit
	for i := 0; i < len(h); i++ {
		if h[i] == '_' {
			if !prevDigit || i+1 == len(h) {
				return "", false
			}
			prevDigit = false
			continue
		}
		sb.WriteByte(h[i])
		prevDigit = true
	}
	return sb.String(), true
}

// splat128 repeats a 64-bit pattern into both halves.
func splat128(m uint64) Uint128 { return Uint128{m, m} }

// Reverse128 returns v with its bits reversed using alg.
// It panics if alg is not one of the defined algorithms.
func Reverse128(alg Algorithm, v Uint128) Uint128 {
	switch alg {
	case Bitwise:
		return bitwise128(v)
	case Parallel:
		return parallel128(v)
	case Lookup:
		return lookup128(v)
	}
	panic("bitrev: " + alg.String())
}

// ReverseInt128 returns v with the bits of its two's complement pattern
// reversed using alg.
func ReverseInt128(alg Algorithm, v Int128) Int128 {
	return Reverse128(alg, v.Uint128()).Int128()
}

func bitwise128(v Uint128) Uint128 {
	one := Uint128{Lo: 1}
	r := v
	s := uint(127)
	for v = v.Rsh(1); !v.IsZero(); v = v.Rsh(1) {
		r = r.Lsh(1).Or(v.And(one))
		s--
	}
	return r.Lsh(s)
}

func parallel128(v Uint128) Uint128 {
	m1 := splat128(^uint64(0) / 3)
	m2 := splat128(^uint64(0) / 5)
	m4 := splat128(^uint64(0) / 17)

	v = v.Rsh(1).And(m1).Or(v.And(m1).Lsh(1))
	v = v.Rsh(2).And(m2).Or(v.And(m2).Lsh(2))
	v = v.Rsh(4).And(m4).Or(v.And(m4).Lsh(4))
	return v.ReverseBytes()
}

func lookup128(v Uint128) (x Uint128) {
	for i := uint(0); i < 128; i += 8 {
		b := internal.ReverseLUT[uint8(v.Rsh(i).Lo)]
		x = x.Or(Uint128{Lo: uint64(b)}.Lsh(120 - i))
	}
	return x
}
