// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dsnet/bitrev/internal/log"
	"github.com/dsnet/bitrev/internal/tool/bench"
	strconv "github.com/dsnet/golib/unitconv"
)

// parseSizes parses element counts such as "1e4" or "4Ki".
func parseSizes(ss []string) ([]int, error) {
	var sizes []int
	for _, s := range ss {
		nf, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil || nf < 0 || nf != math.Trunc(nf) {
			return nil, fmt.Errorf("invalid benchmark size: %q", s)
		}
		sizes = append(sizes, int(nf))
	}
	return sizes, nil
}

// runBenchmarks verifies and then benchmarks the selected algorithms against
// the standard library for every selected width, writing a table per width.
func runBenchmarks(w io.Writer, cfg BenchConfig) error {
	sizes, err := parseSizes(cfg.Sizes)
	if err != nil {
		return err
	}

	ts := time.Now()
	for _, width := range cfg.Widths {
		fmt.Fprintf(w, "BENCHMARK: u%d\n", width)

		// Only keep the requested reversers that exist for this width.
		names := []string{bench.Reference}
		for _, a := range cfg.Algos {
			if _, ok := bench.Reversers[width][a]; ok {
				names = append(names, a)
			}
		}
		if _, ok := bench.Reversers[width][bench.Reference]; !ok || len(names) == 1 {
			fmt.Fprintf(w, "\tSKIP: There are no reversers available.\n\n")
			continue
		}

		if err := bench.VerifySuite(width, names, 1000); err != nil {
			return err
		}

		var cnt int
		total := len(names) * len(sizes)
		tick := func() {
			log.Debugw("benchmarking", "width", width, "done", cnt, "total", total)
			cnt++
		}
		results, rows := bench.BenchmarkSuite(width, names, sizes, tick)
		printResults(w, width, results, rows, names)
		fmt.Fprintln(w)
	}
	log.Infow("benchmarks complete", "runtime", time.Since(ts).String())
	return nil
}

// printResults writes a row per input size with a rate and a delta column
// for every reverser. Rates are in millions of values reversed per second,
// so the tables of different widths can be compared with each other.
func printResults(w io.Writer, width int, results [][]bench.Result, rows, names []string) {
	header := []string{"benchmark"}
	for _, name := range names {
		header = append(header, name+" Mvals/s", "delta")
	}
	cells := [][]string{header}
	for j, row := range results {
		line := []string{rows[j]}
		for _, r := range row {
			// Result.R is in MB/s and each value occupies width/8 bytes.
			line = append(line, formatRate(r.R*8/float64(width), ""), formatRate(r.D, "x"))
		}
		cells = append(cells, line)
	}

	maxLens := make([]int, len(header))
	for _, line := range cells {
		for i, s := range line {
			maxLens[i] = max(maxLens[i], len(s))
		}
	}

	for _, line := range cells {
		var sb strings.Builder
		sb.WriteString("\t")
		for i, s := range line {
			pad := strings.Repeat(" ", maxLens[i]-len(s))
			switch {
			case i == 0:
				sb.WriteString(s + pad)
			case i%2 == 1: // Rate columns
				sb.WriteString("      " + pad + s)
			default: // Delta columns
				sb.WriteString("  " + pad + s)
			}
		}
		fmt.Fprintln(w, sb.String())
	}
}

// formatRate formats f with two decimals, or returns an empty cell if f
// is not a usable measurement.
func formatRate(f float64, suffix string) string {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	return fmt.Sprintf("%.2f", f) + suffix
}
