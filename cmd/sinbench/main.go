// Copyright 2025 go-sincos Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command sinbench times the four sine evaluation strategies against each
// other: stdlib math.Sin, scalar Taylor polynomials over range-reduced
// angles, the explicit SIMD kernel, and the portable vector kernel.
//
// Usage:
//
//	sinbench                          # canonical run: 1e6 angles x 1000 reps
//	sinbench -n 100000 -reps 100      # quicker run
//	sinbench -full-range              # sample [-π, π] instead of [-π/2, π/2]
//	sinbench -json                    # report as JSON on stdout
//	sinbench -out report.json.zst     # also write a compressed JSON report
//
// The text output keeps the classic fixed-width layout:
//
//	Reference time: 1.2345
//	Taylor time:    0.4567      Error: 1.234568e-11
//	Intrin time:    0.1234      Error: 1.234568e-11
//	Vector time:    0.2345      Error: 1.234568e-11
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ajroetker/go-sincos/bench"
	"github.com/ajroetker/go-sincos/internal/logging"
)

var nAngles = flag.Int("n", 1_000_000, "Number of angles evaluated per repetition")
var reps = flag.Int("reps", 1000, "Timed repetitions per strategy")
var seed = flag.Uint64("seed", 1, "Seed for angle generation; equal seeds give equal inputs")
var fullRange = flag.Bool("full-range", false, "Sample angles in [-π, π] instead of [-π/2, π/2]")
var jsonOut = flag.Bool("json", false, "Print the report as JSON instead of text")
var outFile = flag.String("out", "", "Also write the JSON report to this file (a .zst suffix compresses it)")
var logDir = flag.String("logdir", "", "Write a rotated JSON log under this directory")
var logLevel = flag.String("loglevel", "", "Log level: debug, info, warn or error")
var quiet = flag.Bool("quiet", false, "Suppress the environment header above the timings")

func main() {
	flag.Parse()

	usage := func() {
		fmt.Fprintf(os.Stderr, "usage: sinbench [flags]\nwhere [flags] may be:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if len(flag.Args()) > 0 {
		usage()
	}

	// No -logdir and no -loglevel means no logger at all; warnings and
	// errors still reach stderr through the nil-Logger fallthrough.
	var lg *logging.Logger
	if *logDir != "" || *logLevel != "" {
		lg = logging.New(*logLevel, *logDir)
	}

	cfg := bench.Config{
		N:         *nAngles,
		Reps:      *reps,
		Seed:      *seed,
		FullRange: *fullRange,
	}
	lg.Debugf("config: %+v", cfg)

	report, err := bench.Run(cfg)
	if err != nil {
		lg.Errorf("%v", err)
		os.Exit(1)
	}

	lg.Infof("dispatch %s, %d-byte vectors, %d float64 lanes",
		report.Env.Dispatch, report.Env.WidthBytes, report.Env.Lanes)
	for _, res := range report.Results {
		lg.Infof("%s: %.4fs, max error %e", res.Strategy, res.Seconds, res.MaxError)
	}

	if *jsonOut {
		b, err := report.JSON()
		if err != nil {
			lg.Errorf("encoding report: %v", err)
			os.Exit(1)
		}
		os.Stdout.Write(b)
		fmt.Println()
	} else {
		if !*quiet {
			fmt.Print(report.Header())
		}
		fmt.Print(report.Text())
	}

	if *outFile != "" {
		if err := report.WriteFile(*outFile); err != nil {
			lg.Errorf("writing report: %v", err)
			os.Exit(1)
		}
		lg.Infof("wrote report to %s", *outFile)
	}
}
