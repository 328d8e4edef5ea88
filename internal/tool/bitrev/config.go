// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dsnet/bitrev"
	"github.com/dsnet/bitrev/internal/log"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultAlgo      = "parallel"
	defaultWidth     = 32
	defaultSizes     = "1e3,1e4,1e5"
	defaultLogLevel  = log.LevelWarn
	defaultLogOutput = "stderr"
)

// Config holds the tool configuration.
type Config struct {
	Algo   string      `mapstructure:"algo"`
	Width  int         `mapstructure:"width"`
	Signed bool        `mapstructure:"signed"`
	Bench  BenchConfig `mapstructure:"bench"`
	Log    LogConfig   `mapstructure:"log"`
}

// BenchConfig holds the benchmark configuration.
type BenchConfig struct {
	Algos  []string `mapstructure:"algos"`
	Widths []int    `mapstructure:"widths"`
	Sizes  []string `mapstructure:"sizes"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
}

func algoNames() []string {
	var s []string
	for _, a := range bitrev.Algorithms() {
		s = append(s, a.String())
	}
	return s
}

// loadConfig loads configuration from flags, environment variables, and
// defaults. It returns the remaining positional arguments.
func loadConfig(args []string) (*Config, []string, error) {
	v := viper.New()

	fs := flag.NewFlagSet("bitrev", flag.ContinueOnError)
	fs.StringP("algo", "a", defaultAlgo, fmt.Sprintf("reversal algorithm %v", algoNames()))
	fs.IntP("width", "w", defaultWidth, "bit width: 8, 16, 32, 64, 128, or 0 for the platform word size")
	fs.BoolP("signed", "s", false, "treat values as signed two's complement integers")
	fs.StringSlice("bench.algos", algoNames(), "algorithms to benchmark")
	fs.IntSlice("bench.widths", []int{8, 16, 32, 64, 128}, "widths to benchmark")
	fs.StringSlice("bench.sizes", strings.Split(defaultSizes, ","), "number of values per benchmark input")
	fs.StringP("log.level", "l", defaultLogLevel, "log level (debug, info, warn, error)")
	fs.StringP("log.output", "o", defaultLogOutput, "log output (stdout, stderr or filepath)")
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bitrev [flags] VALUE...\n")
		fmt.Fprintf(os.Stderr, "       bitrev [flags] bench\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables are also available with the same name as flags,\n")
		fmt.Fprintf(os.Stderr, "  except for dots (.) which are replaced by underscores (_).\n")
		fmt.Fprintf(os.Stderr, "  For example, BITREV_ALGO or BITREV_BENCH_WIDTHS\n")
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	v.SetEnvPrefix("BITREV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, nil, fmt.Errorf("error binding flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

func validWidth(w int) bool {
	switch w {
	case 0, 8, 16, 32, 64, 128:
		return true
	}
	return false
}

// validateConfig validates the loaded configuration.
func validateConfig(cfg *Config) error {
	if _, err := bitrev.ParseAlgorithm(cfg.Algo); err != nil {
		return err
	}
	if !validWidth(cfg.Width) {
		return fmt.Errorf("%w: %d", bitrev.ErrInvalidWidth, cfg.Width)
	}
	for _, a := range cfg.Bench.Algos {
		if _, err := bitrev.ParseAlgorithm(a); err != nil {
			return err
		}
	}
	for _, w := range cfg.Bench.Widths {
		if w == 0 || !validWidth(w) {
			return fmt.Errorf("%w: %d", bitrev.ErrInvalidWidth, w)
		}
	}
	return nil
}
