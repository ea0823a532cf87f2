package trig

import (
	"math"

	"github.com/ajroetker/go-sincos/vec"
)

// Reduction interval bounds. Untyped so they convert cleanly in generic code.
const (
	piOver4 = math.Pi / 4
	piOver2 = math.Pi / 2
)

// Reduce maps an angle into the primary interval [-π/4, π/4] by repeated
// ±π/2 shifts, tracking how to rebuild the sine of the original angle.
//
// The returned flags satisfy
//
//	sin(angle) = (positive ? +1 : -1) × (wantSin ? sin(r) : cos(r))
//
// Each shift swaps the target function between sin and cos (wantSin
// toggles). A downward shift flips the sign when the current target is cos;
// an upward shift flips it when the current target is sin.
//
// Angles already inside [-π/4, π/4], including the endpoints, are returned
// unchanged with both flags true, so Reduce is idempotent. π/2 reduces in
// exactly one shift, to r = 0 with wantSin = false.
//
// The shift loop runs a number of iterations proportional to |angle|/π;
// it is intended for angles within a few periods of zero.
//
// Special cases:
//   - Reduce(±Inf) = NaN, true, true
//   - Reduce(NaN) = NaN, true, true
func Reduce(angle float64) (r float64, wantSin, positive bool) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return math.NaN(), true, true
	}

	wantSin = true
	positive = true
	for angle > piOver4 || angle < -piOver4 {
		if angle < -piOver4 {
			if wantSin {
				positive = !positive
			}
			angle += piOver2
		} else {
			if !wantSin {
				positive = !positive
			}
			angle -= piOver2
		}
		wantSin = !wantSin
	}
	return angle, wantSin, positive
}

// ReduceSlice reduces a batch of angles into parallel outputs: reduced
// angles in reduced, reconstruction flags in wantSin and positive. All four
// slices must have the same length.
//
// The reduction arithmetic runs in float64 regardless of T so that float32
// batches do not accumulate shift error.
func ReduceSlice[T vec.Floats](angles, reduced []T, wantSin, positive []bool) {
	for i, a := range angles {
		r, ws, pos := Reduce(float64(a))
		reduced[i] = T(r)
		wantSin[i] = ws
		positive[i] = pos
	}
}

// Reconstruct applies reduction flags to library sin/cos of a reduced
// angle, recovering sin of the original angle. It is the inverse of the
// bookkeeping Reduce performs and exists mainly for verification.
func Reconstruct(r float64, wantSin, positive bool) float64 {
	var v float64
	if wantSin {
		v = math.Sin(r)
	} else {
		v = math.Cos(r)
	}
	if !positive {
		v = -v
	}
	return v
}
