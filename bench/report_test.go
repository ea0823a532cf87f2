package bench

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/zstd"
)

// testReport builds a report with pinned values so rendering is
// deterministic.
func testReport() *Report {
	return &Report{
		Config: Config{N: 1000000, Reps: 1000, Seed: 1},
		Env: Environment{
			Time:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			GOOS:       "linux",
			GOARCH:     "amd64",
			NumCPU:     8,
			Dispatch:   "avx2",
			WidthBytes: 32,
			Lanes:      4,
		},
		Results: []Result{
			{Strategy: StrategyReference, Seconds: 1.2345},
			{Strategy: StrategyTaylor, Seconds: 0.4567, MaxError: 1.234568e-11},
			{Strategy: StrategyIntrin, Seconds: 0.1234, MaxError: 1.234568e-11},
			{Strategy: StrategyVector, Seconds: 0.2345, MaxError: 1.234568e-11},
		},
	}
}

func TestReportText(t *testing.T) {
	text := testReport().Text()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), text)
	}

	want := []string{
		"Reference time: 1.2345",
		"Taylor time:    0.4567      Error: 1.234568e-11",
		"Intrin time:    0.1234      Error: 1.234568e-11",
		"Vector time:    0.2345      Error: 1.234568e-11",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d:\n got %q\nwant %q", i, lines[i], w)
		}
	}
}

func TestReportHeader(t *testing.T) {
	r := testReport()
	h := r.Header()
	if !strings.Contains(h, "avx2") || !strings.Contains(h, "32 bytes") {
		t.Errorf("header missing dispatch info: %q", h)
	}
	if !strings.Contains(h, "[-π/2, π/2]") {
		t.Errorf("header missing default domain: %q", h)
	}

	r.Config.FullRange = true
	if h := r.Header(); !strings.Contains(h, "[-π, π]") {
		t.Errorf("header missing full-range domain: %q", h)
	}
}

func TestReportJSONRoundTrip(t *testing.T) {
	r := testReport()
	b, err := r.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(string(b), `"Taylor"`) {
		t.Errorf("JSON does not name strategies:\n%s", b)
	}

	var back Report
	if err := sonic.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(back.Results) != len(r.Results) {
		t.Fatalf("round trip lost results: %d vs %d", len(back.Results), len(r.Results))
	}
	for i := range r.Results {
		if back.Results[i].Strategy != r.Results[i].Strategy {
			t.Errorf("result %d: strategy %v, want %v",
				i, back.Results[i].Strategy, r.Results[i].Strategy)
		}
		if back.Results[i].Seconds != r.Results[i].Seconds {
			t.Errorf("result %d: seconds %v, want %v",
				i, back.Results[i].Seconds, r.Results[i].Seconds)
		}
	}
	if back.Config != r.Config {
		t.Errorf("config round trip: %+v, want %+v", back.Config, r.Config)
	}
}

func TestReportWriteFile(t *testing.T) {
	dir := t.TempDir()
	r := testReport()

	plain := filepath.Join(dir, "report.json")
	if err := r.WriteFile(plain); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	b, err := os.ReadFile(plain)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var back Report
	if err := sonic.Unmarshal(b, &back); err != nil {
		t.Fatalf("plain report does not parse: %v", err)
	}

	compressed := filepath.Join(dir, "report.json.zst")
	if err := r.WriteFile(compressed); err != nil {
		t.Fatalf("WriteFile(.zst): %v", err)
	}
	f, err := os.Open(compressed)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd.NewReader: %v", err)
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if string(raw) != string(b) {
		t.Error("compressed report differs from plain report")
	}
}

func TestCaptureEnvironment(t *testing.T) {
	env := CaptureEnvironment()
	if env.GOOS == "" || env.GOARCH == "" {
		t.Error("missing GOOS/GOARCH")
	}
	if env.NumCPU <= 0 {
		t.Errorf("NumCPU = %d", env.NumCPU)
	}
	if env.Dispatch == "" {
		t.Error("missing dispatch name")
	}
	if env.WidthBytes < 16 || env.Lanes < 2 {
		t.Errorf("width %d bytes / %d lanes below the scalar baseline",
			env.WidthBytes, env.Lanes)
	}
	if env.Time.IsZero() {
		t.Error("zero timestamp")
	}
}
