package trig

import (
	"math"
	"testing"

	"github.com/ajroetker/go-sincos/vec"
)

// TestBaseSinPolyVec64 checks the register-level kernel lane by lane
// against the scalar polynomial. The two must round identically.
func TestBaseSinPolyVec64(t *testing.T) {
	lanes := vec.MaxLanes[float64]()
	input := make([]float64, lanes)
	for i := range input {
		input[i] = (float64(i)/float64(lanes) - 0.5) * math.Pi / 2
	}

	sinOut := make([]float64, lanes)
	BaseSinPolyVec64(vec.Load(input)).Store(sinOut)
	cosOut := make([]float64, lanes)
	BaseCosPolyVec64(vec.Load(input)).Store(cosOut)

	for i, r := range input {
		if sinOut[i] != sinPoly64(r) {
			t.Errorf("BaseSinPolyVec64 lane %d: got %v, want %v", i, sinOut[i], sinPoly64(r))
		}
		if cosOut[i] != cosPoly64(r) {
			t.Errorf("BaseCosPolyVec64 lane %d: got %v, want %v", i, cosOut[i], cosPoly64(r))
		}
	}
}

// TestSinVecMatchesTaylor checks the portable vector evaluator against the
// scalar one for exact equality, across sizes that exercise full vectors,
// tails, and empty input.
func TestSinVecMatchesTaylor(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 100, 1001} {
		_, reduced, wantSin, positive := reduceBatch(n, 2*math.Pi, uint64(23+n))

		want := make([]float64, n)
		SinTaylor(want, reduced, wantSin, positive)

		got := make([]float64, n)
		SinVec(got, reduced, wantSin, positive)

		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("n=%d: SinVec[%d] = %v, SinTaylor = %v", n, i, got[i], want[i])
			}
		}
	}
}

// TestCosVecMatchesTaylor mirrors TestSinVecMatchesTaylor for cosine.
func TestCosVecMatchesTaylor(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7, 8, 100, 1001} {
		_, reduced, wantSin, positive := reduceBatch(n, 2*math.Pi, uint64(29+n))

		want := make([]float64, n)
		CosTaylor(want, reduced, wantSin, positive)

		got := make([]float64, n)
		CosVec(got, reduced, wantSin, positive)

		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("n=%d: CosVec[%d] = %v, CosTaylor = %v", n, i, got[i], want[i])
			}
		}
	}
}

// TestSinVecFloat32 checks the float32 instantiation against the float32
// scalar path for exact equality.
func TestSinVecFloat32(t *testing.T) {
	n := 1003
	_, reduced64, wantSin, positive := reduceBatch(n, 2*math.Pi, 31)

	reduced := make([]float32, n)
	for i, r := range reduced64 {
		reduced[i] = float32(r)
	}

	want := make([]float32, n)
	SinTaylor32(want, reduced, wantSin, positive)

	got := make([]float32, n)
	SinVec(got, reduced, wantSin, positive)

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("SinVec[float32][%d] = %v, SinTaylor32 = %v", i, got[i], want[i])
		}
	}

	gotCos := make([]float32, n)
	CosVec(gotCos, reduced, wantSin, positive)
	for i, r := range reduced {
		var wantV float32
		if wantSin[i] {
			wantV = cosPoly32(r)
		} else {
			wantV = sinPoly32(r)
		}
		if wantSin[i] != positive[i] {
			wantV = -wantV
		}
		if gotCos[i] != wantV {
			t.Fatalf("CosVec[float32][%d] = %v, want %v", i, gotCos[i], wantV)
		}
	}
}

// TestSinVecAccuracy checks the vector evaluator end to end against
// math.Sin, independent of the scalar path.
func TestSinVecAccuracy(t *testing.T) {
	n := 100000
	angles, reduced, wantSin, positive := reduceBatch(n, math.Pi, 37)

	ref := make([]float64, n)
	SinRef(ref, angles)

	got := make([]float64, n)
	SinVec(got, reduced, wantSin, positive)

	if maxErr := maxAbsDiff(got, ref); maxErr > 1e-9 {
		t.Errorf("SinVec max abs error = %e, want < 1e-9", maxErr)
	}
}
