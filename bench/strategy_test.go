package bench

import "testing"

func TestStrategyString(t *testing.T) {
	tests := []struct {
		s    Strategy
		want string
	}{
		{StrategyReference, "Reference"},
		{StrategyTaylor, "Taylor"},
		{StrategyIntrin, "Intrin"},
		{StrategyVector, "Vector"},
		{Strategy(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Strategy(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestStrategiesOrder(t *testing.T) {
	strategies := Strategies()
	if len(strategies) != 4 {
		t.Fatalf("Strategies() returned %d entries, want 4", len(strategies))
	}
	if strategies[0] != StrategyReference {
		t.Errorf("Strategies()[0] = %v, want Reference first", strategies[0])
	}
}

func TestStrategyTextRoundTrip(t *testing.T) {
	for _, s := range Strategies() {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}

		var back Strategy
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != s {
			t.Errorf("round trip of %v gave %v", s, back)
		}
	}

	var s Strategy
	if err := s.UnmarshalText([]byte("Quantum")); err == nil {
		t.Error("UnmarshalText accepted an unknown strategy name")
	}
}

func TestStrategyAccelerated(t *testing.T) {
	if StrategyReference.Accelerated() {
		t.Error("Reference claims acceleration")
	}
	if StrategyTaylor.Accelerated() {
		t.Error("Taylor claims acceleration")
	}
	if !StrategyVector.Accelerated() {
		t.Error("Vector does not claim acceleration")
	}
	// Intrin depends on build tags; just make sure it answers.
	_ = StrategyIntrin.Accelerated()
}
