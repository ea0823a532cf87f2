package trig

// SinIntrin writes sin of the original angles into dst using explicit SIMD
// intrinsics where the build and CPU support them. reduced, wantSin, and
// positive are the parallel outputs of ReduceSlice; all slices must have
// the same length.
//
// On amd64 with GOEXPERIMENT=simd the kernel runs 4 lanes per step on AVX2
// and 8 on AVX-512, with a scalar tail. Every other configuration delegates
// to SinTaylor. Results are identical across all paths: the Horner chain is
// the same and both the scalar math.FMA and the hardware FMA round once.
func SinIntrin(dst, reduced []float64, wantSin, positive []bool) {
	sinIntrinImpl64(dst, reduced, wantSin, positive)
}

// SinIntrin32 is the float32 form of SinIntrin, running 8 lanes per step
// on the AVX2 kernel.
func SinIntrin32(dst, reduced []float32, wantSin, positive []bool) {
	sinIntrinImpl32(dst, reduced, wantSin, positive)
}

// IntrinAccelerated reports whether SinIntrin runs explicit SIMD kernels in
// this build rather than delegating to the scalar Taylor path.
func IntrinAccelerated() bool {
	return intrinAccelerated
}
