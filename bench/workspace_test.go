package bench

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-sincos/trig"
)

func TestNewWorkspaceSizes(t *testing.T) {
	n := 1000
	w := NewWorkspace(n)

	slices := map[string]int{
		"Angles":   len(w.Angles),
		"Reduced":  len(w.Reduced),
		"WantSin":  len(w.WantSin),
		"Positive": len(w.Positive),
		"Ref":      len(w.Ref),
		"Taylor":   len(w.Taylor),
		"Intrin":   len(w.Intrin),
		"Vector":   len(w.Vector),
	}
	for name, got := range slices {
		if got != n {
			t.Errorf("%s: len %d, want %d", name, got, n)
		}
	}
}

func TestWorkspaceFillDomain(t *testing.T) {
	w := NewWorkspace(10000)

	w.Fill(rand.New(rand.NewPCG(51, 52)), false)
	for i, a := range w.Angles {
		if a < -math.Pi/2 || a > math.Pi/2 {
			t.Fatalf("default domain: angle[%d] = %v outside [-π/2, π/2]", i, a)
		}
	}

	w.Fill(rand.New(rand.NewPCG(53, 54)), true)
	sawWide := false
	for i, a := range w.Angles {
		if a < -math.Pi || a > math.Pi {
			t.Fatalf("full range: angle[%d] = %v outside [-π, π]", i, a)
		}
		if a > math.Pi/2 || a < -math.Pi/2 {
			sawWide = true
		}
	}
	if !sawWide {
		t.Error("full range: no sample beyond [-π/2, π/2]")
	}
}

func TestWorkspaceFillReduces(t *testing.T) {
	w := NewWorkspace(5000)
	w.Fill(rand.New(rand.NewPCG(55, 56)), true)

	for i := range w.Angles {
		if w.Reduced[i] > math.Pi/4 || w.Reduced[i] < -math.Pi/4 {
			t.Fatalf("reduced[%d] = %v outside [-π/4, π/4]", i, w.Reduced[i])
		}
		got := trig.Reconstruct(w.Reduced[i], w.WantSin[i], w.Positive[i])
		want := math.Sin(w.Angles[i])
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("flags for angle %v do not reconstruct: got %v, want %v",
				w.Angles[i], got, want)
		}
	}
}

func TestWorkspaceFillZeroesOutputs(t *testing.T) {
	w := NewWorkspace(100)
	for i := range w.Ref {
		w.Ref[i], w.Taylor[i], w.Intrin[i], w.Vector[i] = 1, 2, 3, 4
	}

	w.Fill(rand.New(rand.NewPCG(57, 58)), false)
	for i := range w.Ref {
		if w.Ref[i] != 0 || w.Taylor[i] != 0 || w.Intrin[i] != 0 || w.Vector[i] != 0 {
			t.Fatalf("outputs not zeroed at %d", i)
		}
	}
}

func TestWorkspaceOutput(t *testing.T) {
	w := NewWorkspace(4)

	tests := []struct {
		s    Strategy
		want *float64
	}{
		{StrategyReference, &w.Ref[0]},
		{StrategyTaylor, &w.Taylor[0]},
		{StrategyIntrin, &w.Intrin[0]},
		{StrategyVector, &w.Vector[0]},
	}
	for _, tt := range tests {
		out := w.Output(tt.s)
		if len(out) != 4 || &out[0] != tt.want {
			t.Errorf("Output(%v) does not alias its buffer", tt.s)
		}
	}

	if w.Output(Strategy(99)) != nil {
		t.Error("Output(unknown) != nil")
	}
}
