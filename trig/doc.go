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

// Package trig implements range-reduced sine and cosine approximation over
// batches of angles, with interchangeable evaluation kernels.
//
// # Range reduction
//
// Every evaluator works on angles reduced to the primary interval
// [-π/4, π/4]. Reduce and ReduceSlice perform the reduction and emit two
// flags per angle that record how to rebuild the sine of the original value:
//
//	sin(angle) = (positive ? +1 : -1) × (wantSin ? sin(r) : cos(r))
//
// Reduction is done once, up front; the evaluators consume the reduced
// angles and flag slices and never touch the original inputs.
//
// # Evaluators
//
// Four kernels produce sin of the original angles:
//
//   - SinRef: stdlib math.Sin per element, the accuracy yardstick.
//   - SinTaylor: scalar Horner evaluation of the Taylor polynomials.
//   - SinIntrin: explicit SIMD (archsimd Float64x4/Float64x8 under
//     GOEXPERIMENT=simd on amd64; scalar Taylor elsewhere).
//   - SinVec: portable kernels on the vec package, running at whatever
//     lane width the host offers.
//
// CosRef, CosTaylor, and CosVec mirror the same structure for cosine,
// reusing the flags produced by the sine reduction.
//
// All polynomial evaluators share one Horner chain built on fused
// multiply-add, so their results agree exactly: the scalar path uses
// math.FMA, which rounds identically to the hardware FMA the SIMD paths
// use.
//
// # Accuracy
//
// The sine polynomial is the degree-11 Taylor expansion, the cosine
// polynomial degree-10. On [-π/4, π/4] the truncation error is below
// 1e-11, comfortably inside the 1e-9 target for reduced inputs.
//
// # Build requirements
//
// The explicit SIMD path requires GOEXPERIMENT=simd and amd64 with AVX2 or
// AVX-512. Every other configuration transparently falls back to scalar
// code; results are identical either way.
package trig
