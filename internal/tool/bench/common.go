// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of the bit reversal algorithms
// against each other and against the standard library.
package bench

import (
	"fmt"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/dsnet/bitrev/internal/testutil"
	strconv "github.com/dsnet/golib/unitconv"
)

// Reverser reverses every element of src and stores the results in dst.
// Elements narrower than 64 bits occupy the low bits of a word.
// A 128-bit element occupies two consecutive words, high word first.
type Reverser func(dst, src []uint64)

// Reference is the name of the reverser that every other is compared with.
const Reference = "std"

var (
	// Reversers maps a bit width to the named reversers for that width.
	Reversers map[int]map[string]Reverser

	// Seed for the pseudo-random input of every benchmark.
	Seed = 0
)

func RegisterReverser(width int, name string, rev Reverser) {
	if Reversers == nil {
		Reversers = make(map[int]map[string]Reverser)
	}
	if Reversers[width] == nil {
		Reversers[width] = make(map[string]Reverser)
	}
	Reversers[width][name] = rev
}

// Widths returns every registered width in ascending order.
func Widths() []int {
	var ws []int
	for w := range Reversers {
		ws = append(ws, w)
	}
	sort.Ints(ws)
	return ws
}

// Names returns the names of all reversers registered for the width.
// The reference always appears first.
func Names(width int) []string {
	var s []string
	for k := range Reversers[width] {
		if k != Reference {
			s = append(s, k)
		}
	}
	sort.Strings(s)
	if _, ok := Reversers[width][Reference]; ok {
		s = append([]string{Reference}, s...)
	}
	return s
}

// wordsPer reports how many words hold a single element of the width.
func wordsPer(width int) int {
	return (width + 63) / 64
}

func newInput(width, n int) []uint64 {
	w := width
	if w > 64 {
		w = 64
	}
	return testutil.NewRand(Seed).Uint64s(n*wordsPer(width), uint(w))
}

// BenchmarkReverser benchmarks a single reverser on the given input.
func BenchmarkReverser(input []uint64, width int, rev Reverser) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if rev == nil {
			b.Fatalf("unexpected error: nil Reverser")
		}
		output := make([]uint64, len(input))
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			rev(output, input)
			b.SetBytes(int64(len(input)/wordsPer(width)) * int64(width/8))
		}
	})
}

type Result struct {
	R float64 // Rate (MB/s)
	D float64 // Delta ratio relative to primary benchmark
}

// BenchmarkSuite runs the benchmark for every named reverser of the width
// across all sizes, where a size is the number of elements in the input.
//
// The values returned have the following structure:
//
//	results: [len(sizes)][len(names)]Result
//	names:   [len(sizes)]string
func BenchmarkSuite(width int, names []string, sizes []int, tick func()) (results [][]Result, rows []string) {
	results = make([][]Result, len(sizes))
	rows = make([]string, len(sizes))
	for i, n := range sizes {
		input := newInput(width, n)
		rows[i] = getName(width, n)
		results[i] = make([]Result, len(names))
		for j, name := range names {
			if tick != nil {
				tick()
			}
			result := BenchmarkReverser(input, width, Reversers[width][name])
			if result.N > 0 {
				us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
				results[i][j].R = float64(result.Bytes) / us
			}
			results[i][j].D = results[i][j].R / results[i][0].R
		}
	}
	return results, rows
}

// VerifySuite runs every named reverser of the width on the same input of
// n elements and reports the first one whose output differs from the first
// named reverser.
func VerifySuite(width int, names []string, n int) error {
	if len(names) == 0 {
		return nil
	}
	input := newInput(width, n)
	var want []uint64
	for _, name := range names {
		rev, ok := Reversers[width][name]
		if !ok {
			return fmt.Errorf("no %d-bit reverser named %q", width, name)
		}
		got := make([]uint64, len(input))
		rev(got, input)
		if want == nil {
			want = got
			continue
		}
		for i := range got {
			if got[i] != want[i] {
				return fmt.Errorf("%d-bit reverser %q disagrees with %q at word %d: got %#x, want %#x",
					width, name, names[0], i, got[i], want[i])
			}
		}
	}
	return nil
}

func getName(width, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile("\\.0*e\\+0*")
		sn = re.ReplaceAllString(s, "e")
	default:
		s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("u%d:%s", width, sn)
}
