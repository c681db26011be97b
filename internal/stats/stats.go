// Package stats turns stored results into summaries, tables and trends.
package stats

import (
	"math"
	"slices"
	"strings"

	"github.com/verte-zerg/tuitype/internal/model"
)

// sparkChars runs from lowest to highest.
const sparkChars = " .:-=+*#%@"

// MovingAverage smooths values with a trailing window. The first window-1
// points average over what is available so far.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		n := i + 1
		if n > window {
			sum -= values[i-window]
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}

// Sparkline scales values onto sparkChars. A positive width keeps only the
// most recent values that fit; a flat series renders at mid height.
func Sparkline(values []float64, width int) string {
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}
	if len(values) == 0 {
		return ""
	}
	lo, hi := slices.Min(values), slices.Max(values)
	if hi-lo < 1e-9 {
		mid := len(sparkChars) / 2
		return strings.Repeat(sparkChars[mid:mid+1], len(values))
	}
	top := len(sparkChars) - 1
	out := make([]byte, len(values))
	for i, v := range values {
		idx := int(math.Round((v - lo) / (hi - lo) * float64(top)))
		out[i] = sparkChars[min(max(idx, 0), top)]
	}
	return string(out)
}

// SpeedSeries returns outcome speeds oldest first. Outcomes are expected
// newest first, as the store returns them.
func SpeedSeries(outcomes []model.TestOutcome) []float64 {
	return series(outcomes, func(o model.TestOutcome) float64 { return o.Speed })
}

// AccuracySeries returns outcome accuracies oldest first.
func AccuracySeries(outcomes []model.TestOutcome) []float64 {
	return series(outcomes, func(o model.TestOutcome) float64 { return o.Accuracy })
}

func series(outcomes []model.TestOutcome, field func(model.TestOutcome) float64) []float64 {
	out := make([]float64, 0, len(outcomes))
	for i := len(outcomes) - 1; i >= 0; i-- {
		out = append(out, field(outcomes[i]))
	}
	return out
}
