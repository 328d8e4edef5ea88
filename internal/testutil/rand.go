// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Uint64() uint64 {
	r.Encrypt(r.blk[:], r.blk[:])
	return binary.LittleEndian.Uint64(r.blk[:])
}

// Sparse returns a value whose set bits are confined to a random window,
// which exercises the leading and trailing zero runs of a value.
func (r *Rand) Sparse() uint64 {
	v := r.Uint64()
	return v >> (v % 64) << (r.Uint64() % 64)
}

// Uint64s returns n values with only the low width bits set.
func (r *Rand) Uint64s(n int, width uint) []uint64 {
	vs := make([]uint64, n)
	for i := range vs {
		vs[i] = r.Uint64()
		if width < 64 {
			vs[i] &= 1<<width - 1
		}
	}
	return vs
}
