//go:build amd64 && goexperiment.simd

package trig

import (
	"simd/archsimd"
	"sync"
)

const intrinAccelerated = true

// AVX2 vectorized constants for the float64 kernel
var (
	intrin64_sinC3  = archsimd.BroadcastFloat64x4(sinC3_f64)
	intrin64_sinC5  = archsimd.BroadcastFloat64x4(sinC5_f64)
	intrin64_sinC7  = archsimd.BroadcastFloat64x4(sinC7_f64)
	intrin64_sinC9  = archsimd.BroadcastFloat64x4(sinC9_f64)
	intrin64_sinC11 = archsimd.BroadcastFloat64x4(sinC11_f64)

	intrin64_cosC2  = archsimd.BroadcastFloat64x4(cosC2_f64)
	intrin64_cosC4  = archsimd.BroadcastFloat64x4(cosC4_f64)
	intrin64_cosC6  = archsimd.BroadcastFloat64x4(cosC6_f64)
	intrin64_cosC8  = archsimd.BroadcastFloat64x4(cosC8_f64)
	intrin64_cosC10 = archsimd.BroadcastFloat64x4(cosC10_f64)

	intrin64_zero = archsimd.BroadcastFloat64x4(0.0)
	intrin64_one  = archsimd.BroadcastFloat64x4(1.0)
)

// AVX2 vectorized constants for the float32 kernel
var (
	intrin32_sinC3  = archsimd.BroadcastFloat32x8(sinC3_f32)
	intrin32_sinC5  = archsimd.BroadcastFloat32x8(sinC5_f32)
	intrin32_sinC7  = archsimd.BroadcastFloat32x8(sinC7_f32)
	intrin32_sinC9  = archsimd.BroadcastFloat32x8(sinC9_f32)
	intrin32_sinC11 = archsimd.BroadcastFloat32x8(sinC11_f32)

	intrin32_cosC2  = archsimd.BroadcastFloat32x8(cosC2_f32)
	intrin32_cosC4  = archsimd.BroadcastFloat32x8(cosC4_f32)
	intrin32_cosC6  = archsimd.BroadcastFloat32x8(cosC6_f32)
	intrin32_cosC8  = archsimd.BroadcastFloat32x8(cosC8_f32)
	intrin32_cosC10 = archsimd.BroadcastFloat32x8(cosC10_f32)

	intrin32_zero = archsimd.BroadcastFloat32x8(0.0)
	intrin32_one  = archsimd.BroadcastFloat32x8(1.0)
)

// Lazy initialization for AVX-512 constants to avoid executing AVX-512
// instructions at package load time on machines without AVX-512 support.

var intrin512Init sync.Once

var (
	intrin512_sinC3  archsimd.Float64x8
	intrin512_sinC5  archsimd.Float64x8
	intrin512_sinC7  archsimd.Float64x8
	intrin512_sinC9  archsimd.Float64x8
	intrin512_sinC11 archsimd.Float64x8

	intrin512_cosC2  archsimd.Float64x8
	intrin512_cosC4  archsimd.Float64x8
	intrin512_cosC6  archsimd.Float64x8
	intrin512_cosC8  archsimd.Float64x8
	intrin512_cosC10 archsimd.Float64x8

	intrin512_zero archsimd.Float64x8
	intrin512_one  archsimd.Float64x8
)

func initIntrin512Constants() {
	intrin512_sinC3 = archsimd.BroadcastFloat64x8(sinC3_f64)
	intrin512_sinC5 = archsimd.BroadcastFloat64x8(sinC5_f64)
	intrin512_sinC7 = archsimd.BroadcastFloat64x8(sinC7_f64)
	intrin512_sinC9 = archsimd.BroadcastFloat64x8(sinC9_f64)
	intrin512_sinC11 = archsimd.BroadcastFloat64x8(sinC11_f64)

	intrin512_cosC2 = archsimd.BroadcastFloat64x8(cosC2_f64)
	intrin512_cosC4 = archsimd.BroadcastFloat64x8(cosC4_f64)
	intrin512_cosC6 = archsimd.BroadcastFloat64x8(cosC6_f64)
	intrin512_cosC8 = archsimd.BroadcastFloat64x8(cosC8_f64)
	intrin512_cosC10 = archsimd.BroadcastFloat64x8(cosC10_f64)

	intrin512_zero = archsimd.BroadcastFloat64x8(0.0)
	intrin512_one = archsimd.BroadcastFloat64x8(1.0)
}

// sinIntrinImpl64 is the SIMD implementation for float64.
// Uses AVX-512 if available, otherwise falls back to AVX2.
func sinIntrinImpl64(dst, reduced []float64, wantSin, positive []bool) {
	if archsimd.X86.AVX512() {
		sinIntrin_AVX512_F64x8(dst, reduced, wantSin, positive)
		return
	}
	sinIntrin_AVX2_F64x4(dst, reduced, wantSin, positive)
}

// sinIntrinImpl32 is the SIMD implementation for float32.
func sinIntrinImpl32(dst, reduced []float32, wantSin, positive []bool) {
	sinIntrin_AVX2_F32x8(dst, reduced, wantSin, positive)
}

// sinIntrin_AVX2_F64x4 evaluates sin of the original angles 4 lanes per
// step from pre-reduced angles and reconstruction flags.
//
// Per batch:
//  1. Evaluate the sine and cosine polynomials with FMA Horner steps.
//  2. Select sin(r) or cos(r) per lane from the wantSin flags.
//  3. Negate lanes whose positive flag is clear.
//
// Flags are staged through small 0/1 float buffers; the resulting Equal
// masks drive Merge, whose receiver wins on TRUE lanes.
func sinIntrin_AVX2_F64x4(dst, reduced []float64, wantSin, positive []bool) {
	n := len(reduced)
	var wsBuf, posBuf [4]float64

	i := 0
	for ; i+4 <= n; i += 4 {
		r := archsimd.LoadFloat64x4Slice(reduced[i : i+4])
		r2 := r.Mul(r)

		sinPoly := intrin64_sinC11.MulAdd(r2, intrin64_sinC9)
		sinPoly = sinPoly.MulAdd(r2, intrin64_sinC7)
		sinPoly = sinPoly.MulAdd(r2, intrin64_sinC5)
		sinPoly = sinPoly.MulAdd(r2, intrin64_sinC3)
		sinPoly = sinPoly.MulAdd(r2, intrin64_one)
		sinR := r.Mul(sinPoly)

		cosPoly := intrin64_cosC10.MulAdd(r2, intrin64_cosC8)
		cosPoly = cosPoly.MulAdd(r2, intrin64_cosC6)
		cosPoly = cosPoly.MulAdd(r2, intrin64_cosC4)
		cosPoly = cosPoly.MulAdd(r2, intrin64_cosC2)
		cosR := cosPoly.MulAdd(r2, intrin64_one)

		for j := 0; j < 4; j++ {
			wsBuf[j] = flagValue[float64](wantSin[i+j])
			posBuf[j] = flagValue[float64](positive[i+j])
		}

		wsMask := archsimd.LoadFloat64x4Slice(wsBuf[:]).Equal(intrin64_one)
		res := sinR.Merge(cosR, wsMask)

		posMask := archsimd.LoadFloat64x4Slice(posBuf[:]).Equal(intrin64_one)
		neg := intrin64_zero.Sub(res)
		res = res.Merge(neg, posMask)

		res.StoreSlice(dst[i : i+4])
	}

	sinTaylorRange64(dst, reduced, wantSin, positive, i)
}

// sinIntrin_AVX512_F64x8 mirrors the AVX2 kernel 8 lanes per step.
func sinIntrin_AVX512_F64x8(dst, reduced []float64, wantSin, positive []bool) {
	intrin512Init.Do(initIntrin512Constants)

	n := len(reduced)
	var wsBuf, posBuf [8]float64

	i := 0
	for ; i+8 <= n; i += 8 {
		r := archsimd.LoadFloat64x8Slice(reduced[i : i+8])
		r2 := r.Mul(r)

		sinPoly := intrin512_sinC11.MulAdd(r2, intrin512_sinC9)
		sinPoly = sinPoly.MulAdd(r2, intrin512_sinC7)
		sinPoly = sinPoly.MulAdd(r2, intrin512_sinC5)
		sinPoly = sinPoly.MulAdd(r2, intrin512_sinC3)
		sinPoly = sinPoly.MulAdd(r2, intrin512_one)
		sinR := r.Mul(sinPoly)

		cosPoly := intrin512_cosC10.MulAdd(r2, intrin512_cosC8)
		cosPoly = cosPoly.MulAdd(r2, intrin512_cosC6)
		cosPoly = cosPoly.MulAdd(r2, intrin512_cosC4)
		cosPoly = cosPoly.MulAdd(r2, intrin512_cosC2)
		cosR := cosPoly.MulAdd(r2, intrin512_one)

		for j := 0; j < 8; j++ {
			wsBuf[j] = flagValue[float64](wantSin[i+j])
			posBuf[j] = flagValue[float64](positive[i+j])
		}

		wsMask := archsimd.LoadFloat64x8Slice(wsBuf[:]).Equal(intrin512_one)
		res := sinR.Merge(cosR, wsMask)

		posMask := archsimd.LoadFloat64x8Slice(posBuf[:]).Equal(intrin512_one)
		neg := intrin512_zero.Sub(res)
		res = res.Merge(neg, posMask)

		res.StoreSlice(dst[i : i+8])
	}

	sinTaylorRange64(dst, reduced, wantSin, positive, i)
}

// sinIntrin_AVX2_F32x8 is the float32 kernel, 8 lanes per step.
func sinIntrin_AVX2_F32x8(dst, reduced []float32, wantSin, positive []bool) {
	n := len(reduced)
	var wsBuf, posBuf [8]float32

	i := 0
	for ; i+8 <= n; i += 8 {
		r := archsimd.LoadFloat32x8Slice(reduced[i : i+8])
		r2 := r.Mul(r)

		sinPoly := intrin32_sinC11.MulAdd(r2, intrin32_sinC9)
		sinPoly = sinPoly.MulAdd(r2, intrin32_sinC7)
		sinPoly = sinPoly.MulAdd(r2, intrin32_sinC5)
		sinPoly = sinPoly.MulAdd(r2, intrin32_sinC3)
		sinPoly = sinPoly.MulAdd(r2, intrin32_one)
		sinR := r.Mul(sinPoly)

		cosPoly := intrin32_cosC10.MulAdd(r2, intrin32_cosC8)
		cosPoly = cosPoly.MulAdd(r2, intrin32_cosC6)
		cosPoly = cosPoly.MulAdd(r2, intrin32_cosC4)
		cosPoly = cosPoly.MulAdd(r2, intrin32_cosC2)
		cosR := cosPoly.MulAdd(r2, intrin32_one)

		for j := 0; j < 8; j++ {
			wsBuf[j] = flagValue[float32](wantSin[i+j])
			posBuf[j] = flagValue[float32](positive[i+j])
		}

		wsMask := archsimd.LoadFloat32x8Slice(wsBuf[:]).Equal(intrin32_one)
		res := sinR.Merge(cosR, wsMask)

		posMask := archsimd.LoadFloat32x8Slice(posBuf[:]).Equal(intrin32_one)
		neg := intrin32_zero.Sub(res)
		res = res.Merge(neg, posMask)

		res.StoreSlice(dst[i : i+8])
	}

	for ; i < n; i++ {
		var v float32
		if wantSin[i] {
			v = sinPoly32(reduced[i])
		} else {
			v = cosPoly32(reduced[i])
		}
		if !positive[i] {
			v = -v
		}
		dst[i] = v
	}
}
