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

// Package bench times the four sine evaluation strategies of the trig
// package against each other and measures their numerical error against
// the stdlib reference.
//
// # Run shape
//
// A run generates a seeded batch of angles, reduces them once up front
// (untimed), then times Reps whole-batch evaluations per strategy:
//
//	cfg := bench.DefaultConfig() // one million angles, 1000 reps
//	report, err := bench.Run(cfg)
//	if err != nil {
//	    // invalid configuration
//	}
//	fmt.Print(report.Text())
//
// The reference strategy always runs first; every other strategy reports
// its maximum absolute difference against the reference output.
//
// # Buffers
//
// All buffers live in a Workspace allocated once per run and reused across
// repetitions. Each timing loop has exactly one writer and no reader until
// the loop completes, so overwriting in place is safe.
//
// # Reports
//
// Report renders as fixed-width text (the classic four-line layout) or as
// JSON, and captures the dispatch level and host CPU alongside the timings
// so results from different machines stay comparable.
package bench
