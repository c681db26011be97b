// Package metrics computes typing speed, accuracy and consistency.
package metrics

import "math"

const (
	charsPerWord   = 5.0
	minElapsedSecs = 1.0 / 60.0

	animateStep   = 0.15
	animateJitter = 0.5
)

// Speed returns words per minute for chars typed over elapsedSecs, using
// five characters per word. Every typed character counts, mistakes included.
func Speed(chars int, elapsedSecs float64) float64 {
	if elapsedSecs < minElapsedSecs {
		return 0
	}
	return (float64(chars) / charsPerWord) / (elapsedSecs / 60.0)
}

// RawSpeed is Speed over the total characters typed.
func RawSpeed(totalChars int, elapsedSecs float64) float64 {
	return Speed(totalChars, elapsedSecs)
}

// Accuracy returns the percentage of attempted characters that were correct.
func Accuracy(correct, attempted int) float64 {
	if attempted == 0 {
		return 100
	}
	return float64(correct) / float64(attempted) * 100
}

// CountCorrect counts positions where typed matches passage.
func CountCorrect(typed, passage []rune) int {
	n := len(typed)
	if len(passage) < n {
		n = len(passage)
	}
	correct := 0
	for i := 0; i < n; i++ {
		if typed[i] == passage[i] {
			correct++
		}
	}
	return correct
}

// Consistency scores the dispersion of sampled speeds on a 0-100 scale.
func Consistency(samples []float64) float64 {
	if len(samples) < 2 {
		return 100
	}
	var sum float64
	for _, v := range samples {
		sum += v
	}
	mean := sum / float64(len(samples))
	if mean <= 0 {
		return 0
	}
	var variance float64
	for _, v := range samples {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(samples))
	score := (mean - math.Sqrt(variance)) / mean * 100
	return math.Max(0, math.Min(100, score))
}

// Animate moves a displayed value toward target. lastTarget tracks the
// value last stepped to and is updated in place.
func Animate(current, target float64, lastTarget *float64) float64 {
	if target == 0 {
		*lastTarget = 0
		return 0
	}
	diff := target - *lastTarget
	if math.Abs(diff) < animateJitter {
		return current
	}
	next := current + diff*animateStep
	// Gaps inside the jitter band are never stepped again, so land on the target.
	if math.Abs(target-next) < animateJitter {
		*lastTarget = target
		return target
	}
	*lastTarget = next
	return next
}
