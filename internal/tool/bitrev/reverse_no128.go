// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build bitrev_no128

package main

import (
	"fmt"

	"github.com/dsnet/bitrev"
)

func reverseWide(bitrev.Algorithm, bool, string) (string, error) {
	return "", fmt.Errorf("%w: 128 (built with bitrev_no128)", bitrev.ErrInvalidWidth)
}
