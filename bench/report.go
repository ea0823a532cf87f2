package bench

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/zstd"
	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/ajroetker/go-sincos/vec"
)

// Environment describes the host and dispatch configuration a report was
// produced on, so timings from different machines stay comparable.
type Environment struct {
	Time       time.Time `json:"time"`
	GOOS       string    `json:"goos"`
	GOARCH     string    `json:"goarch"`
	NumCPU     int       `json:"num_cpu"`
	CPUModel   string    `json:"cpu_model,omitempty"`
	Dispatch   string    `json:"dispatch"`
	WidthBytes int       `json:"width_bytes"`
	Lanes      int       `json:"float64_lanes"`
}

// CaptureEnvironment inspects the host. CPU model lookup failure is not an
// error; the field is informational and stays empty.
func CaptureEnvironment() Environment {
	env := Environment{
		Time:       time.Now(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		Dispatch:   vec.CurrentName(),
		WidthBytes: vec.CurrentWidth(),
		Lanes:      vec.MaxLanes[float64](),
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		env.CPUModel = infos[0].ModelName
	}
	return env
}

// Report is the full outcome of a benchmark run.
type Report struct {
	Config  Config      `json:"config"`
	Env     Environment `json:"environment"`
	Results []Result    `json:"results"`
}

// Header is a short environment banner for printing above the timing
// lines.
func (r *Report) Header() string {
	domain := "[-π/2, π/2]"
	if r.Config.FullRange {
		domain = "[-π, π]"
	}
	return fmt.Sprintf("SIMD Level: %s, Width: %d bytes (%d float64 lanes)\n",
		r.Env.Dispatch, r.Env.WidthBytes, r.Env.Lanes) +
		fmt.Sprintf("Angles: %d in %s, Reps: %d, Seed: %d\n\n",
			r.Config.N, domain, r.Config.Reps, r.Config.Seed)
}

// Text renders the results in the classic fixed-width layout:
//
//	Reference time: 1.2345
//	Taylor time:    0.4567      Error: 1.234568e-11
//	Intrin time:    0.1234      Error: 1.234568e-11
//	Vector time:    0.2345      Error: 1.234568e-11
func (r *Report) Text() string {
	var sb strings.Builder
	for _, res := range r.Results {
		label := res.Strategy.String() + " time:"
		if res.Strategy == StrategyReference {
			fmt.Fprintf(&sb, "%-15s %6.4f\n", label, res.Seconds)
		} else {
			fmt.Fprintf(&sb, "%-15s %6.4f      Error: %e\n", label, res.Seconds, res.MaxError)
		}
	}
	return sb.String()
}

// JSON encodes the report, indented for reading.
func (r *Report) JSON() ([]byte, error) {
	return sonic.MarshalIndent(r, "", "  ")
}

// WriteFile writes the JSON report to path. A .zst suffix compresses the
// output with zstd.
func (r *Report) WriteFile(path string) error {
	b, err := r.JSON()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if strings.HasSuffix(path, ".zst") {
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return err
		}
		if _, err := zw.Write(b); err != nil {
			zw.Close()
			f.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}
	} else if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
