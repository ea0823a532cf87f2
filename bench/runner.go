package bench

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ajroetker/go-sincos/trig"
)

// Config controls a benchmark run.
type Config struct {
	// N is the number of angles per batch.
	N int `json:"n"`
	// Reps is the number of timed whole-batch evaluations per strategy.
	Reps int `json:"reps"`
	// Seed feeds the PCG generator; runs with equal seeds see equal inputs.
	Seed uint64 `json:"seed"`
	// FullRange samples angles in [-π, π] instead of the default
	// [-π/2, π/2], reducing every input by at least one shift.
	FullRange bool `json:"full_range,omitempty"`
}

// DefaultConfig returns the canonical run: one million angles, 1000
// repetitions.
func DefaultConfig() Config {
	return Config{N: 1_000_000, Reps: 1000, Seed: 1}
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if c.N <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.N)
	}
	if c.Reps <= 0 {
		return fmt.Errorf("repetition count must be positive, got %d", c.Reps)
	}
	return nil
}

// Result is the outcome of timing one strategy.
type Result struct {
	Strategy Strategy `json:"strategy"`
	// Seconds is the wall time for all Reps whole-batch evaluations.
	Seconds float64 `json:"seconds"`
	// MaxError is the maximum absolute difference against the reference
	// output. Zero for the reference itself.
	MaxError float64 `json:"max_error,omitempty"`
}

// Runner times strategies over a shared workspace. Create one with
// NewRunner; the zero value is not usable.
type Runner struct {
	cfg     Config
	ws      *Workspace
	refDone bool
}

// NewRunner validates cfg and prepares a run: it allocates the workspace,
// generates the seeded inputs, and performs the single up-front range
// reduction (untimed, like the rest of the setup).
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ws := NewWorkspace(cfg.N)
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+1))
	ws.Fill(rng, cfg.FullRange)
	return &Runner{cfg: cfg, ws: ws}, nil
}

// Workspace exposes the runner's buffers, mainly for tests.
func (r *Runner) Workspace() *Workspace {
	return r.ws
}

// evaluate performs one whole-batch evaluation of s into its output buffer.
func (r *Runner) evaluate(s Strategy) {
	w := r.ws
	switch s {
	case StrategyReference:
		trig.SinRef(w.Ref, w.Angles)
	case StrategyTaylor:
		trig.SinTaylor(w.Taylor, w.Reduced, w.WantSin, w.Positive)
	case StrategyIntrin:
		trig.SinIntrin(w.Intrin, w.Reduced, w.WantSin, w.Positive)
	case StrategyVector:
		trig.SinVec(w.Vector, w.Reduced, w.WantSin, w.Positive)
	}
}

// Run times Reps whole-batch evaluations of s and, for non-reference
// strategies, computes the maximum absolute error against the reference
// output. If the reference has not run yet its output is computed once,
// untimed, so the error is well defined regardless of call order.
func (r *Runner) Run(s Strategy) Result {
	if s != StrategyReference && !r.refDone {
		r.evaluate(StrategyReference)
		r.refDone = true
	}

	start := time.Now()
	for rep := 0; rep < r.cfg.Reps; rep++ {
		r.evaluate(s)
	}
	seconds := time.Since(start).Seconds()

	res := Result{Strategy: s, Seconds: seconds}
	if s == StrategyReference {
		r.refDone = true
	} else {
		res.MaxError = MaxAbsError(r.ws.Output(s), r.ws.Ref)
	}
	return res
}

// RunAll times every strategy in order, reference first, and assembles
// the report.
func (r *Runner) RunAll() *Report {
	report := &Report{
		Config: r.cfg,
		Env:    CaptureEnvironment(),
	}
	for _, s := range Strategies() {
		report.Results = append(report.Results, r.Run(s))
	}
	return report
}

// Run executes the full benchmark for cfg: every strategy, reference
// first, one shared workspace.
func Run(cfg Config) (*Report, error) {
	r, err := NewRunner(cfg)
	if err != nil {
		return nil, err
	}
	return r.RunAll(), nil
}
