package trig

import "github.com/ajroetker/go-sincos/vec"

// Vectorized polynomial constants, broadcast once at package init (after
// the vec dispatch level is fixed).
var (
	vec64_sinC3  = vec.Set(sinC3_f64)
	vec64_sinC5  = vec.Set(sinC5_f64)
	vec64_sinC7  = vec.Set(sinC7_f64)
	vec64_sinC9  = vec.Set(sinC9_f64)
	vec64_sinC11 = vec.Set(sinC11_f64)

	vec64_cosC2  = vec.Set(cosC2_f64)
	vec64_cosC4  = vec.Set(cosC4_f64)
	vec64_cosC6  = vec.Set(cosC6_f64)
	vec64_cosC8  = vec.Set(cosC8_f64)
	vec64_cosC10 = vec.Set(cosC10_f64)

	vec64_one = vec.Set(trigOne_f64)
)

var (
	vec32_sinC3  = vec.Set(sinC3_f32)
	vec32_sinC5  = vec.Set(sinC5_f32)
	vec32_sinC7  = vec.Set(sinC7_f32)
	vec32_sinC9  = vec.Set(sinC9_f32)
	vec32_sinC11 = vec.Set(sinC11_f32)

	vec32_cosC2  = vec.Set(cosC2_f32)
	vec32_cosC4  = vec.Set(cosC4_f32)
	vec32_cosC6  = vec.Set(cosC6_f32)
	vec32_cosC8  = vec.Set(cosC8_f32)
	vec32_cosC10 = vec.Set(cosC10_f32)

	vec32_one = vec.Set(trigOne_f32)
)

// BaseSinPolyVec64 evaluates the degree-11 sine polynomial on a vector of
// reduced angles. This is the portable register-level kernel; it runs at
// whatever lane width the vec package selected and rounds identically to
// sinPoly64 because vec.MulAdd is a true fused multiply-add.
func BaseSinPolyVec64(r vec.Vec[float64]) vec.Vec[float64] {
	r2 := vec.Mul(r, r)
	p := vec.MulAdd(vec64_sinC11, r2, vec64_sinC9)
	p = vec.MulAdd(p, r2, vec64_sinC7)
	p = vec.MulAdd(p, r2, vec64_sinC5)
	p = vec.MulAdd(p, r2, vec64_sinC3)
	p = vec.MulAdd(p, r2, vec64_one)
	return vec.Mul(r, p)
}

// BaseCosPolyVec64 evaluates the degree-10 cosine polynomial on a vector
// of reduced angles.
func BaseCosPolyVec64(r vec.Vec[float64]) vec.Vec[float64] {
	r2 := vec.Mul(r, r)
	p := vec.MulAdd(vec64_cosC10, r2, vec64_cosC8)
	p = vec.MulAdd(p, r2, vec64_cosC6)
	p = vec.MulAdd(p, r2, vec64_cosC4)
	p = vec.MulAdd(p, r2, vec64_cosC2)
	return vec.MulAdd(p, r2, vec64_one)
}

// BaseSinPolyVec32 is the float32 form of BaseSinPolyVec64.
func BaseSinPolyVec32(r vec.Vec[float32]) vec.Vec[float32] {
	r2 := vec.Mul(r, r)
	p := vec.MulAdd(vec32_sinC11, r2, vec32_sinC9)
	p = vec.MulAdd(p, r2, vec32_sinC7)
	p = vec.MulAdd(p, r2, vec32_sinC5)
	p = vec.MulAdd(p, r2, vec32_sinC3)
	p = vec.MulAdd(p, r2, vec32_one)
	return vec.Mul(r, p)
}

// BaseCosPolyVec32 is the float32 form of BaseCosPolyVec64.
func BaseCosPolyVec32(r vec.Vec[float32]) vec.Vec[float32] {
	r2 := vec.Mul(r, r)
	p := vec.MulAdd(vec32_cosC10, r2, vec32_cosC8)
	p = vec.MulAdd(p, r2, vec32_cosC6)
	p = vec.MulAdd(p, r2, vec32_cosC4)
	p = vec.MulAdd(p, r2, vec32_cosC2)
	return vec.MulAdd(p, r2, vec32_one)
}

// flagValue converts a reconstruction flag to a 0/1 lane value so flag
// slices can participate in vector selects.
func flagValue[T vec.Floats](b bool) T {
	if b {
		return 1
	}
	return 0
}

// SinVec writes sin of the original angles into dst using the portable
// vector kernels. reduced, wantSin, and positive are the parallel outputs
// of ReduceSlice; all slices must have the same length.
//
// Full vectors evaluate both polynomials and select per lane; the tail past
// the last full vector is evaluated with the scalar polynomials, which
// round identically.
func SinVec[T vec.Floats](dst, reduced []T, wantSin, positive []bool) {
	var zero T
	switch any(zero).(type) {
	case float64:
		sinVec64(any(dst).([]float64), any(reduced).([]float64), wantSin, positive)
	case float32:
		sinVec32(any(dst).([]float32), any(reduced).([]float32), wantSin, positive)
	}
}

// CosVec writes cos of the original angles into dst, reusing the sine
// reduction flags the way CosTaylor does.
func CosVec[T vec.Floats](dst, reduced []T, wantSin, positive []bool) {
	var zero T
	switch any(zero).(type) {
	case float64:
		cosVec64(any(dst).([]float64), any(reduced).([]float64), wantSin, positive)
	case float32:
		cosVec32(any(dst).([]float32), any(reduced).([]float32), wantSin, positive)
	}
}

func sinVec64(dst, reduced []float64, wantSin, positive []bool) {
	lanes := vec.MaxLanes[float64]()
	ws := make([]float64, lanes)
	pos := make([]float64, lanes)

	vec.ProcessWithTail[float64](len(reduced),
		func(idx int) {
			r := vec.Load(reduced[idx:])
			sinR := BaseSinPolyVec64(r)
			cosR := BaseCosPolyVec64(r)
			for i := 0; i < lanes; i++ {
				ws[i] = flagValue[float64](wantSin[idx+i])
				pos[i] = flagValue[float64](positive[idx+i])
			}
			wsMask := vec.Equal(vec.Load(ws), vec64_one)
			res := vec.Merge(sinR, cosR, wsMask)
			posMask := vec.Equal(vec.Load(pos), vec64_one)
			res = vec.Merge(res, vec.Neg(res), posMask)
			res.Store(dst[idx:])
		},
		func(idx, _ int) {
			for i := idx; i < len(reduced); i++ {
				var v float64
				if wantSin[i] {
					v = sinPoly64(reduced[i])
				} else {
					v = cosPoly64(reduced[i])
				}
				if !positive[i] {
					v = -v
				}
				dst[i] = v
			}
		})
}

func sinVec32(dst, reduced []float32, wantSin, positive []bool) {
	lanes := vec.MaxLanes[float32]()
	ws := make([]float32, lanes)
	pos := make([]float32, lanes)

	vec.ProcessWithTail[float32](len(reduced),
		func(idx int) {
			r := vec.Load(reduced[idx:])
			sinR := BaseSinPolyVec32(r)
			cosR := BaseCosPolyVec32(r)
			for i := 0; i < lanes; i++ {
				ws[i] = flagValue[float32](wantSin[idx+i])
				pos[i] = flagValue[float32](positive[idx+i])
			}
			wsMask := vec.Equal(vec.Load(ws), vec32_one)
			res := vec.Merge(sinR, cosR, wsMask)
			posMask := vec.Equal(vec.Load(pos), vec32_one)
			res = vec.Merge(res, vec.Neg(res), posMask)
			res.Store(dst[idx:])
		},
		func(idx, _ int) {
			for i := idx; i < len(reduced); i++ {
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
		})
}

func cosVec64(dst, reduced []float64, wantSin, positive []bool) {
	lanes := vec.MaxLanes[float64]()
	ws := make([]float64, lanes)
	pos := make([]float64, lanes)

	vec.ProcessWithTail[float64](len(reduced),
		func(idx int) {
			r := vec.Load(reduced[idx:])
			sinR := BaseSinPolyVec64(r)
			cosR := BaseCosPolyVec64(r)
			for i := 0; i < lanes; i++ {
				ws[i] = flagValue[float64](wantSin[idx+i])
				pos[i] = flagValue[float64](positive[idx+i])
			}
			wsMask := vec.Equal(vec.Load(ws), vec64_one)
			res := vec.Merge(cosR, sinR, wsMask)
			// Sign is positive exactly when the two flags agree.
			signMask := vec.Equal(vec.Load(ws), vec.Load(pos))
			res = vec.Merge(res, vec.Neg(res), signMask)
			res.Store(dst[idx:])
		},
		func(idx, _ int) {
			for i := idx; i < len(reduced); i++ {
				var v float64
				if wantSin[i] {
					v = cosPoly64(reduced[i])
				} else {
					v = sinPoly64(reduced[i])
				}
				if wantSin[i] != positive[i] {
					v = -v
				}
				dst[i] = v
			}
		})
}

func cosVec32(dst, reduced []float32, wantSin, positive []bool) {
	lanes := vec.MaxLanes[float32]()
	ws := make([]float32, lanes)
	pos := make([]float32, lanes)

	vec.ProcessWithTail[float32](len(reduced),
		func(idx int) {
			r := vec.Load(reduced[idx:])
			sinR := BaseSinPolyVec32(r)
			cosR := BaseCosPolyVec32(r)
			for i := 0; i < lanes; i++ {
				ws[i] = flagValue[float32](wantSin[idx+i])
				pos[i] = flagValue[float32](positive[idx+i])
			}
			wsMask := vec.Equal(vec.Load(ws), vec32_one)
			res := vec.Merge(cosR, sinR, wsMask)
			signMask := vec.Equal(vec.Load(ws), vec.Load(pos))
			res = vec.Merge(res, vec.Neg(res), signMask)
			res.Store(dst[idx:])
		},
		func(idx, _ int) {
			for i := idx; i < len(reduced); i++ {
				var v float32
				if wantSin[i] {
					v = cosPoly32(reduced[i])
				} else {
					v = sinPoly32(reduced[i])
				}
				if wantSin[i] != positive[i] {
					v = -v
				}
				dst[i] = v
			}
		})
}
