package bench

import (
	"fmt"

	"github.com/ajroetker/go-sincos/trig"
)

// Strategy identifies one of the sine evaluation approaches under benchmark.
type Strategy int

const (
	// StrategyReference is the stdlib math.Sin loop over the raw angles,
	// the accuracy yardstick for every other strategy.
	StrategyReference Strategy = iota

	// StrategyTaylor is the scalar Horner evaluation of the Taylor
	// polynomials over pre-reduced angles.
	StrategyTaylor

	// StrategyIntrin is the explicit SIMD kernel (archsimd, AVX2/AVX-512),
	// falling back to the scalar Taylor path on builds without SIMD.
	StrategyIntrin

	// StrategyVector is the portable kernel on the vec package, running at
	// whatever lane width the host offers.
	StrategyVector
)

// String returns the strategy name used in report labels.
func (s Strategy) String() string {
	switch s {
	case StrategyReference:
		return "Reference"
	case StrategyTaylor:
		return "Taylor"
	case StrategyIntrin:
		return "Intrin"
	case StrategyVector:
		return "Vector"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so strategy names appear
// in JSON reports instead of enum values.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, the inverse of
// MarshalText.
func (s *Strategy) UnmarshalText(text []byte) error {
	for _, candidate := range Strategies() {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown strategy %q", text)
}

// Strategies returns all benchmark strategies in execution order. The
// reference runs first; later strategies measure error against its output.
func Strategies() []Strategy {
	return []Strategy{StrategyReference, StrategyTaylor, StrategyIntrin, StrategyVector}
}

// Accelerated reports whether the strategy runs dedicated data-parallel
// kernels in this build. StrategyIntrin is the only conditional one: it
// always runs, but without GOEXPERIMENT=simd on amd64 it delegates to the
// scalar Taylor path.
func (s Strategy) Accelerated() bool {
	switch s {
	case StrategyIntrin:
		return trig.IntrinAccelerated()
	case StrategyVector:
		return true
	default:
		return false
	}
}
