package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tuitype/internal/model"
)

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %.1f, got %.1f", i, want[i], got[i])
		}
	}
	same := MovingAverage([]float64{1, 2}, 1)
	if same[0] != 1 || same[1] != 2 {
		t.Fatalf("expected copy for window 1, got %v", same)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 10); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{0, 9}, 0); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{5, 5, 5}, 0); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if got := Sparkline([]float64{100, 0, 9}, 2); got != " @" {
		t.Fatalf("expected trailing values only, got %q", got)
	}
}

func TestSpeedSeriesOldestFirst(t *testing.T) {
	outcomes := []model.TestOutcome{{Speed: 3, Accuracy: 30}, {Speed: 2, Accuracy: 20}, {Speed: 1, Accuracy: 10}}
	speeds := SpeedSeries(outcomes)
	accs := AccuracySeries(outcomes)
	if speeds[0] != 1 || speeds[2] != 3 || accs[0] != 10 || accs[2] != 30 {
		t.Fatalf("unexpected series %v %v", speeds, accs)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[int64]string{0: "0s", -3: "0s", 45: "45s", 125: "2m5s", 3725: "1h2m5s"}
	for in, want := range cases {
		if got := FormatDuration(in); got != want {
			t.Fatalf("FormatDuration(%d): expected %q, got %q", in, want, got)
		}
	}
}

func TestRenderHistory(t *testing.T) {
	now := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
	outcomes := []model.TestOutcome{{
		Timestamp:       now.Add(-3 * time.Hour),
		Mode:            model.ModeMedium,
		Speed:           72.3,
		RawSpeed:        75,
		Accuracy:        98.5,
		Consistency:     81,
		DurationSeconds: 42,
	}}
	var buf bytes.Buffer
	if err := RenderHistory(&buf, outcomes, now); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"When", "3 hours ago", "medium", "72.3", "98.5%", "42s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := RenderHistory(&buf, nil, now); err != nil {
		t.Fatalf("render empty: %v", err)
	}
	if !strings.Contains(buf.String(), "No results yet.") {
		t.Fatalf("unexpected empty output %q", buf.String())
	}
}

func TestRenderReport(t *testing.T) {
	report := Report{
		Summary: model.UserStats{TotalTests: 1200, BestSpeed: 90, AvgSpeed: 60, AvgAccuracy: 97, TotalTimeSeconds: 3600},
		Modes: []model.ModeStats{
			{Mode: model.ModeShort, UserStats: model.UserStats{TotalTests: 1200, BestSpeed: 90, AvgSpeed: 60, AvgAccuracy: 97, TotalTimeSeconds: 3600}},
		},
		Recent: []model.TestOutcome{{Speed: 60, Accuracy: 90}, {Speed: 50, Accuracy: 100}},
	}
	var buf bytes.Buffer
	if err := Render(&buf, report, 1, 40); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Tests: 1,200", "Best WPM: 90.0", "Total Time: 1h0m0s", "By Mode", "short", "Trend", "WPM      "} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, model.UserStats{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "No results yet.\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
