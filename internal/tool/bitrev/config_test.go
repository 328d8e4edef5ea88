// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"testing"

	"github.com/dsnet/bitrev"
	qt "github.com/frankban/quicktest"
)

func TestLoadConfigDefaults(t *testing.T) {
	c := qt.New(t)
	cfg, args, err := loadConfig([]string{"0x01"})
	c.Assert(err, qt.IsNil)
	c.Assert(args, qt.DeepEquals, []string{"0x01"})
	c.Assert(cfg.Algo, qt.Equals, defaultAlgo)
	c.Assert(cfg.Width, qt.Equals, defaultWidth)
	c.Assert(cfg.Signed, qt.IsFalse)
	c.Assert(cfg.Bench.Algos, qt.DeepEquals, []string{"bitwise", "parallel", "lookup"})
	c.Assert(cfg.Bench.Widths, qt.DeepEquals, []int{8, 16, 32, 64, 128})
	c.Assert(cfg.Bench.Sizes, qt.DeepEquals, []string{"1e3", "1e4", "1e5"})
	c.Assert(cfg.Log.Level, qt.Equals, "warn")
	c.Assert(cfg.Log.Output, qt.Equals, "stderr")
}

func TestLoadConfigFlags(t *testing.T) {
	c := qt.New(t)
	cfg, args, err := loadConfig([]string{
		"--algo=LOOKUP", "-w", "64", "--signed",
		"--bench.widths=8,16", "--log.level=debug", "--", "-1",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(args, qt.DeepEquals, []string{"-1"})
	c.Assert(cfg.Algo, qt.Equals, "LOOKUP")
	c.Assert(cfg.Width, qt.Equals, 64)
	c.Assert(cfg.Signed, qt.IsTrue)
	c.Assert(cfg.Bench.Widths, qt.DeepEquals, []int{8, 16})
	c.Assert(cfg.Log.Level, qt.Equals, "debug")
}

func TestLoadConfigEnv(t *testing.T) {
	c := qt.New(t)
	c.Setenv("BITREV_ALGO", "bitwise")
	c.Setenv("BITREV_WIDTH", "16")
	c.Setenv("BITREV_LOG_OUTPUT", "stdout")

	cfg, _, err := loadConfig(nil)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Algo, qt.Equals, "bitwise")
	c.Assert(cfg.Width, qt.Equals, 16)
	c.Assert(cfg.Log.Output, qt.Equals, "stdout")

	// Flags take precedence over the environment.
	cfg, _, err = loadConfig([]string{"--width=8"})
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Width, qt.Equals, 8)
}

func TestLoadConfigErrors(t *testing.T) {
	c := qt.New(t)

	_, _, err := loadConfig([]string{"--algo=swar"})
	c.Assert(err, qt.ErrorIs, bitrev.ErrUnknownAlgorithm)

	_, _, err = loadConfig([]string{"--width=12"})
	c.Assert(err, qt.ErrorIs, bitrev.ErrInvalidWidth)

	_, _, err = loadConfig([]string{"--bench.widths=0"})
	c.Assert(err, qt.ErrorIs, bitrev.ErrInvalidWidth)

	_, _, err = loadConfig([]string{"--bench.algos=bitwise,fast"})
	c.Assert(err, qt.ErrorIs, bitrev.ErrUnknownAlgorithm)

	_, _, err = loadConfig([]string{"--no-such-flag"})
	c.Assert(err, qt.IsNotNil)
}
