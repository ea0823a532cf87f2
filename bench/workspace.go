package bench

import (
	"math"
	"math/rand/v2"

	"github.com/ajroetker/go-sincos/trig"
)

// Workspace owns every buffer a benchmark run touches: the input angles,
// the reduced angles with their reconstruction flags, and one output slice
// per strategy. It is allocated once by NewWorkspace and reused across
// repetitions; the garbage collector reclaims it when the run ends, so
// there is no explicit free step.
type Workspace struct {
	Angles   []float64 // raw input angles
	Reduced  []float64 // angles reduced into [-π/4, π/4]
	WantSin  []bool    // per angle: evaluate sin (true) or cos (false)
	Positive []bool    // per angle: keep the sign (true) or negate (false)

	Ref    []float64 // output of StrategyReference
	Taylor []float64 // output of StrategyTaylor
	Intrin []float64 // output of StrategyIntrin
	Vector []float64 // output of StrategyVector
}

// NewWorkspace allocates all buffers for batches of n angles.
func NewWorkspace(n int) *Workspace {
	return &Workspace{
		Angles:   make([]float64, n),
		Reduced:  make([]float64, n),
		WantSin:  make([]bool, n),
		Positive: make([]bool, n),
		Ref:      make([]float64, n),
		Taylor:   make([]float64, n),
		Intrin:   make([]float64, n),
		Vector:   make([]float64, n),
	}
}

// Fill generates angles from rng, uniform in [-π/2, π/2] or in [-π, π]
// when fullRange is set, and reduces them once up front. The outputs are
// zeroed; the timing loops overwrite them.
func (w *Workspace) Fill(rng *rand.Rand, fullRange bool) {
	spread := math.Pi
	if fullRange {
		spread = 2 * math.Pi
	}
	for i := range w.Angles {
		w.Angles[i] = (rng.Float64() - 0.5) * spread
	}
	trig.ReduceSlice(w.Angles, w.Reduced, w.WantSin, w.Positive)
	for i := range w.Angles {
		w.Ref[i], w.Taylor[i], w.Intrin[i], w.Vector[i] = 0, 0, 0, 0
	}
}

// Output returns the destination buffer the strategy writes to.
func (w *Workspace) Output(s Strategy) []float64 {
	switch s {
	case StrategyReference:
		return w.Ref
	case StrategyTaylor:
		return w.Taylor
	case StrategyIntrin:
		return w.Intrin
	case StrategyVector:
		return w.Vector
	default:
		return nil
	}
}
