package bench

import (
	"math"

	"github.com/ajroetker/go-sincos/vec"
)

// MaxAbsError returns max |got[i]-want[i]| over the shorter of the two
// slices. It is the error metric every non-reference strategy reports.
// Full vectors reduce through the vec layer; the tail is scalar.
func MaxAbsError(got, want []float64) float64 {
	n := min(len(got), len(want))
	maxErr := 0.0

	vec.ProcessWithTail[float64](n,
		func(offset int) {
			d := vec.Abs(vec.Sub(vec.Load(got[offset:]), vec.Load(want[offset:])))
			if m := vec.ReduceMax(d); m > maxErr {
				maxErr = m
			}
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				if d := math.Abs(got[i] - want[i]); d > maxErr {
					maxErr = d
				}
			}
		})

	return maxErr
}
