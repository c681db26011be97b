// Package quotes supplies practice passages bucketed by length.
package quotes

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/tuitype/internal/model"
)

//go:embed data/english.json
var embeddedEnglish []byte

// ErrNoPassage is returned when no passage matches the requested mode.
var ErrNoPassage = errors.New("no passage available")

// Manager picks passages from an in-memory corpus.
type Manager struct {
	quotes []model.Passage
	rnd    *rand.Rand
}

// Option configures a Manager.
type Option func(*Manager)

// WithSeed makes passage selection deterministic.
func WithSeed(seed int64) Option {
	return func(m *Manager) {
		m.rnd = rand.New(rand.NewSource(seed))
	}
}

// NewManager returns a Manager over the given passages.
func NewManager(quotes []model.Passage, opts ...Option) *Manager {
	m := &Manager{
		quotes: quotes,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Embedded returns a Manager over the built-in English corpus.
func Embedded(opts ...Option) (*Manager, error) {
	quotes, err := Parse(embeddedEnglish, ".json", "")
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded quotes: %w", err)
	}
	return NewManager(quotes, opts...), nil
}

// Random returns a uniformly chosen passage whose length falls in the mode's bucket.
func (m *Manager) Random(mode model.Mode) (model.Passage, error) {
	var candidates []int
	for i, q := range m.quotes {
		if mode.Contains(q.Length) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return model.Passage{}, fmt.Errorf("%w for %s mode", ErrNoPassage, mode)
	}
	return m.quotes[candidates[m.rnd.Intn(len(candidates))]], nil
}

// CountByMode returns how many passages belong to each mode.
func (m *Manager) CountByMode() map[model.Mode]int {
	counts := make(map[model.Mode]int, len(model.Modes))
	for _, q := range m.quotes {
		for _, mode := range model.Modes {
			if mode.Contains(q.Length) {
				counts[mode]++
			}
		}
	}
	return counts
}

// ByID looks up a passage by its corpus identifier.
func (m *Manager) ByID(id int) (model.Passage, bool) {
	for _, q := range m.quotes {
		if q.ID == id {
			return q, true
		}
	}
	return model.Passage{}, false
}

// Len returns the corpus size.
func (m *Manager) Len() int {
	return len(m.quotes)
}
