// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bitrev reverses the bits of integers given on the command line,
// or benchmarks the reversal algorithms against the standard library.
//
// Example usage:
//
//	$ bitrev --width=8 0x01 0xa0
//	0x80
//	0x05
//
//	$ bitrev --width=16 --signed -- -2
//	32767
//
//	$ BITREV_BENCH_WIDTHS=32,64 bitrev bench
//	BENCHMARK: u32
//		benchmark    std Mvals/s  delta    bitwise Mvals/s  delta    lookup Mvals/s  delta    parallel Mvals/s  delta
//		...
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dsnet/bitrev"
	"github.com/dsnet/bitrev/internal/log"
	flag "github.com/spf13/pflag"
)

func main() {
	cfg, args, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.Output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(os.Stdout, cfg, args); err != nil {
		log.Errorw(err, "bitrev failed")
		os.Exit(1)
	}
}

func run(w io.Writer, cfg *Config, args []string) error {
	if len(args) == 1 && args[0] == "bench" {
		return runBenchmarks(w, cfg.Bench)
	}
	if len(args) == 0 {
		return errors.New("no values to reverse")
	}

	alg, err := bitrev.ParseAlgorithm(cfg.Algo)
	if err != nil {
		return err
	}
	log.Debugw("reversing", "algo", alg.String(), "width", cfg.Width, "signed", cfg.Signed, "count", len(args))
	for _, s := range args {
		out, err := reverseValue(alg, cfg.Width, cfg.Signed, s)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	}
	return nil
}
