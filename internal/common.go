// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal holds tables shared by the bitrev packages.
package internal

// ReverseLUT returns the input key with its bits reversed.
//
// The table is filled in during package initialization and is never written
// again, so concurrent readers need no synchronization. Indexing it with a
// uint8 can never go out of bounds.
var ReverseLUT [256]uint8

func init() {
	for i := range ReverseLUT {
		b := uint8(i)
		b = (b&0xaa)>>1 | (b&0x55)<<1
		b = (b&0xcc)>>2 | (b&0x33)<<2
		b = (b&0xf0)>>4 | (b&0x0f)<<4
		ReverseLUT[i] = b
	}
}
