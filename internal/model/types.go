// Package model defines shared data structures.
package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Mode selects passages by length.
type Mode int

// Passage length modes.
const (
	ModeShort Mode = iota
	ModeMedium
	ModeLong
)

// Modes lists every mode in cycling order.
var Modes = []Mode{ModeShort, ModeMedium, ModeLong}

// Next returns the following mode in the Short, Medium, Long cycle.
func (m Mode) Next() Mode {
	switch m {
	case ModeShort:
		return ModeMedium
	case ModeMedium:
		return ModeLong
	default:
		return ModeShort
	}
}

// LengthRange returns the half-open [min, max) passage length bucket.
// Lengths 100 and 300 fall between buckets.
func (m Mode) LengthRange() (int, int) {
	switch m {
	case ModeShort:
		return 0, 100
	case ModeMedium:
		return 101, 300
	default:
		return 301, math.MaxInt
	}
}

// Contains reports whether a passage of the given length belongs to the mode.
func (m Mode) Contains(length int) bool {
	lo, hi := m.LengthRange()
	return length >= lo && length < hi
}

func (m Mode) String() string {
	switch m {
	case ModeShort:
		return "short"
	case ModeMedium:
		return "medium"
	case ModeLong:
		return "long"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short":
		return ModeShort, nil
	case "medium":
		return ModeMedium, nil
	case "long":
		return ModeLong, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want short, medium or long)", s)
	}
}

// Passage is the text the user reproduces.
type Passage struct {
	ID     int
	Text   string
	Source string
	Length int
}

// Config defines practice settings.
type Config struct {
	Mode         Mode
	Theme        string
	ShowKeyboard bool
	QuotesFile   string
	ConfigPath   string
}

// TestOutcome captures a completed typing test.
type TestOutcome struct {
	ID              string
	Timestamp       time.Time
	Mode            Mode
	Speed           float64
	RawSpeed        float64
	Accuracy        float64
	Consistency     float64
	PassageLength   int
	DurationSeconds int64
	Source          string
}

// UserStats aggregates all stored outcomes.
type UserStats struct {
	TotalTests       int64
	BestSpeed        float64
	AvgSpeed         float64
	AvgAccuracy      float64
	TotalTimeSeconds int64
}

// ModeStats aggregates stored outcomes for one mode.
type ModeStats struct {
	Mode Mode
	UserStats
}
