//go:build !amd64 || !goexperiment.simd

package trig

// Fallback implementations for builds without SIMD support.
// These delegate to the scalar Taylor path, which rounds identically.

const intrinAccelerated = false

func sinIntrinImpl64(dst, reduced []float64, wantSin, positive []bool) {
	SinTaylor(dst, reduced, wantSin, positive)
}

func sinIntrinImpl32(dst, reduced []float32, wantSin, positive []bool) {
	SinTaylor32(dst, reduced, wantSin, positive)
}
