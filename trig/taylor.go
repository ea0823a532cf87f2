package trig

import "math"

// sinPoly64 evaluates the degree-11 sine polynomial at a reduced angle.
// Horner steps in r² are fused through math.FMA so the result is identical
// to the hardware-FMA SIMD kernels.
func sinPoly64(r float64) float64 {
	r2 := r * r
	p := math.FMA(sinC11_f64, r2, sinC9_f64)
	p = math.FMA(p, r2, sinC7_f64)
	p = math.FMA(p, r2, sinC5_f64)
	p = math.FMA(p, r2, sinC3_f64)
	p = math.FMA(p, r2, trigOne_f64)
	return r * p
}

// cosPoly64 evaluates the degree-10 cosine polynomial at a reduced angle.
func cosPoly64(r float64) float64 {
	r2 := r * r
	p := math.FMA(cosC10_f64, r2, cosC8_f64)
	p = math.FMA(p, r2, cosC6_f64)
	p = math.FMA(p, r2, cosC4_f64)
	p = math.FMA(p, r2, cosC2_f64)
	return math.FMA(p, r2, trigOne_f64)
}

func fma32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

func sinPoly32(r float32) float32 {
	r2 := r * r
	p := fma32(sinC11_f32, r2, sinC9_f32)
	p = fma32(p, r2, sinC7_f32)
	p = fma32(p, r2, sinC5_f32)
	p = fma32(p, r2, sinC3_f32)
	p = fma32(p, r2, trigOne_f32)
	return r * p
}

func cosPoly32(r float32) float32 {
	r2 := r * r
	p := fma32(cosC10_f32, r2, cosC8_f32)
	p = fma32(p, r2, cosC6_f32)
	p = fma32(p, r2, cosC4_f32)
	p = fma32(p, r2, cosC2_f32)
	return fma32(p, r2, trigOne_f32)
}

// SinRef writes math.Sin of each angle into dst. It consumes raw,
// unreduced angles and serves as the accuracy yardstick for the
// polynomial evaluators. dst and angles must have the same length.
func SinRef(dst, angles []float64) {
	for i, a := range angles {
		dst[i] = math.Sin(a)
	}
}

// CosRef writes math.Cos of each angle into dst.
func CosRef(dst, angles []float64) {
	for i, a := range angles {
		dst[i] = math.Cos(a)
	}
}

// SinTaylor writes sin of the original angles into dst by scalar Horner
// evaluation. reduced, wantSin, and positive are the parallel outputs of
// ReduceSlice; all slices must have the same length.
//
// Special cases follow from the polynomials:
//   - reduced 0 with wantSin true yields exactly ±0
func SinTaylor(dst, reduced []float64, wantSin, positive []bool) {
	sinTaylorRange64(dst, reduced, wantSin, positive, 0)
}

// sinTaylorRange64 evaluates the scalar sine path from start to the end of
// the batch. The SIMD kernels use it for their tails.
func sinTaylorRange64(dst, reduced []float64, wantSin, positive []bool, start int) {
	for i := start; i < len(reduced); i++ {
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
}

// CosTaylor writes cos of the original angles into dst, reusing the flags
// produced by the sine reduction: the polynomial selection swaps relative
// to SinTaylor and the sign is negative exactly when the two flags
// disagree, since cos(θ) = sin(θ + π/2) advances the shift count by one.
func CosTaylor(dst, reduced []float64, wantSin, positive []bool) {
	for i, r := range reduced {
		var v float64
		if wantSin[i] {
			v = cosPoly64(r)
		} else {
			v = sinPoly64(r)
		}
		if wantSin[i] != positive[i] {
			v = -v
		}
		dst[i] = v
	}
}

// SinTaylor32 is the float32 form of SinTaylor.
func SinTaylor32(dst, reduced []float32, wantSin, positive []bool) {
	for i, r := range reduced {
		var v float32
		if wantSin[i] {
			v = sinPoly32(r)
		} else {
			v = cosPoly32(r)
		}
		if !positive[i] {
			v = -v
		}
		dst[i] = v
	}
}

// SinCos returns both sin(angle) and cos(angle) through a single range
// reduction, evaluating both polynomials of the reduced angle. This is
// cheaper than reducing twice when both values are needed.
func SinCos(angle float64) (sin, cos float64) {
	r, wantSin, positive := Reduce(angle)
	s := sinPoly64(r)
	c := cosPoly64(r)
	if wantSin {
		sin, cos = s, c
	} else {
		sin, cos = c, s
	}
	if !positive {
		sin = -sin
	}
	if wantSin != positive {
		cos = -cos
	}
	return sin, cos
}
