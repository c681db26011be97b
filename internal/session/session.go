// Package session implements a single typing test attempt.
package session

import (
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/verte-zerg/tuitype/internal/metrics"
	"github.com/verte-zerg/tuitype/internal/model"
)

// Sample is one periodic speed reading.
type Sample struct {
	At    time.Time
	Speed float64
}

// Session tracks input against a passage. It goes from not started to in
// progress on the first typed character and to complete when the input
// reaches the passage length and ends with the passage's last character.
// Once complete, every mutation is a no-op until Reset or Restart.
type Session struct {
	now func() time.Time

	passage model.Passage
	target  []rune
	typed   []rune

	startedAt   time.Time
	started     bool
	mistakes    int
	completed   bool
	completedAt time.Time
	samples     []Sample

	finalSpeed    float64
	finalAccuracy float64
	finalDuration time.Duration
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now as the session's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns a session for the passage.
func New(p model.Passage, opts ...Option) *Session {
	s := &Session{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset(p)
	return s
}

// Start records the start time unless already started.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true
	s.startedAt = s.now()
}

// TypeChar appends r to the input and reports whether it completed the test.
func (s *Session) TypeChar(r rune) bool {
	if s.completed {
		return false
	}
	s.Start()
	pos := len(s.typed)
	if pos >= len(s.target) || s.target[pos] != r {
		s.mistakes++
	}
	s.typed = append(s.typed, r)
	if len(s.typed) == len(s.target) && len(s.target) > 0 && r == s.target[len(s.target)-1] {
		s.complete()
		return true
	}
	return false
}

// Backspace removes the last typed character.
func (s *Session) Backspace() {
	if s.completed || len(s.typed) == 0 {
		return
	}
	s.typed = s.typed[:len(s.typed)-1]
}

// DeleteWord removes the trailing run of letters and digits. Whitespace and
// punctuation before it are kept.
func (s *Session) DeleteWord() {
	if s.completed {
		return
	}
	end := len(s.typed)
	for end > 0 {
		r := s.typed[end-1]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		end--
	}
	s.typed = s.typed[:end]
}

func (s *Session) complete() {
	s.completed = true
	s.completedAt = s.now()
	correct := metrics.CountCorrect(s.typed, s.target)
	s.finalAccuracy = metrics.Accuracy(correct, len(s.typed))
	if s.started {
		s.finalDuration = s.completedAt.Sub(s.startedAt)
		s.finalSpeed = metrics.Speed(len(s.typed), s.finalDuration.Seconds())
	}
}

// UpdateMetrics records a speed sample. Callers rate-limit it.
func (s *Session) UpdateMetrics() {
	if s.completed || !s.started {
		return
	}
	now := s.now()
	speed := metrics.Speed(len(s.typed), now.Sub(s.startedAt).Seconds())
	if speed > 0 {
		s.samples = append(s.samples, Sample{At: now, Speed: speed})
	}
}

// Reset replaces the passage and clears all progress.
func (s *Session) Reset(p model.Passage) {
	s.passage = p
	s.target = []rune(p.Text)
	s.Restart()
}

// Restart clears all progress and keeps the passage.
func (s *Session) Restart() {
	s.typed = nil
	s.started = false
	s.startedAt = time.Time{}
	s.mistakes = 0
	s.completed = false
	s.completedAt = time.Time{}
	s.samples = nil
	s.finalSpeed = 0
	s.finalAccuracy = 100
	s.finalDuration = 0
}

// Passage returns the passage being typed.
func (s *Session) Passage() model.Passage {
	return s.passage
}

// Target returns the passage text as runes. Callers must not modify it.
func (s *Session) Target() []rune {
	return s.target
}

// Typed returns the input so far.
func (s *Session) Typed() string {
	return string(s.typed)
}

// TypedRunes returns the input as runes. Callers must not modify it.
func (s *Session) TypedRunes() []rune {
	return s.typed
}

// IsComplete reports whether the test has finished.
func (s *Session) IsComplete() bool {
	return s.completed
}

// Started reports whether any character has been typed since the last reset.
func (s *Session) Started() bool {
	return s.started
}

// Mistakes returns how many typed characters did not match when typed.
// Corrections do not reduce it.
func (s *Session) Mistakes() int {
	return s.mistakes
}

// Samples returns the recorded speed readings.
func (s *Session) Samples() []Sample {
	return s.samples
}

// ExpectedNext returns the passage character at the cursor.
func (s *Session) ExpectedNext() (rune, bool) {
	if s.completed || len(s.typed) >= len(s.target) {
		return 0, false
	}
	return s.target[len(s.typed)], true
}

// Progress returns the typed fraction of the passage in [0, 1].
func (s *Session) Progress() float64 {
	if len(s.target) == 0 {
		return 0
	}
	p := float64(len(s.typed)) / float64(len(s.target))
	if p > 1 {
		return 1
	}
	return p
}

func (s *Session) elapsed() float64 {
	if !s.started {
		return 0
	}
	return s.now().Sub(s.startedAt).Seconds()
}

// Speed returns words per minute, frozen once complete.
func (s *Session) Speed() float64 {
	if s.completed {
		return s.finalSpeed
	}
	if !s.started {
		return 0
	}
	return metrics.Speed(len(s.typed), s.elapsed())
}

// RawSpeed returns words per minute over all typed characters, computed live.
func (s *Session) RawSpeed() float64 {
	if !s.started {
		return 0
	}
	return metrics.RawSpeed(len(s.typed), s.elapsed())
}

// Accuracy returns the percentage of positions matching the passage,
// frozen once complete.
func (s *Session) Accuracy() float64 {
	if s.completed {
		return s.finalAccuracy
	}
	attempted := len(s.typed)
	if attempted < 1 {
		attempted = 1
	}
	return metrics.Accuracy(metrics.CountCorrect(s.typed, s.target), attempted)
}

// Consistency scores the spread of sampled speeds.
func (s *Session) Consistency() float64 {
	speeds := make([]float64, len(s.samples))
	for i, sample := range s.samples {
		speeds[i] = sample.Speed
	}
	return metrics.Consistency(speeds)
}

// Duration returns elapsed test time, frozen once complete.
func (s *Session) Duration() time.Duration {
	if s.completed {
		return s.finalDuration
	}
	if !s.started {
		return 0
	}
	return s.now().Sub(s.startedAt)
}

// Outcome builds the result record of a completed test. wallNow is the
// wall-clock time stamped on the record.
func (s *Session) Outcome(mode model.Mode, wallNow time.Time) (model.TestOutcome, bool) {
	if !s.completed {
		return model.TestOutcome{}, false
	}
	return model.TestOutcome{
		ID:              uuid.NewString(),
		Timestamp:       wallNow.UTC(),
		Mode:            mode,
		Speed:           s.finalSpeed,
		RawSpeed:        metrics.RawSpeed(len(s.typed), s.finalDuration.Seconds()),
		Accuracy:        s.finalAccuracy,
		Consistency:     s.Consistency(),
		PassageLength:   len(s.target),
		DurationSeconds: int64(s.finalDuration / time.Second),
		Source:          s.passage.Source,
	}, true
}
