// Package phase tracks which top-level screen the app is showing.
package phase

// Phase is a top-level UI mode.
type Phase int

// Phases.
const (
	Testing Phase = iota
	Results
	History
	Stats
)

func (p Phase) String() string {
	switch p {
	case Testing:
		return "testing"
	case Results:
		return "results"
	case History:
		return "history"
	case Stats:
		return "stats"
	default:
		return "unknown"
	}
}

// Machine holds the current phase and the one before it.
// Any phase may follow any other; key resolution decides what is reachable.
type Machine struct {
	current     Phase
	previous    Phase
	hasPrevious bool
}

// New returns a machine in the Testing phase.
func New() *Machine {
	return &Machine{current: Testing}
}

// Current returns the active phase.
func (m *Machine) Current() Phase {
	return m.current
}

// Previous returns the phase active before the last transition.
func (m *Machine) Previous() (Phase, bool) {
	return m.previous, m.hasPrevious
}

// Transition records the current phase as previous and adopts next.
func (m *Machine) Transition(next Phase) {
	m.previous = m.current
	m.hasPrevious = true
	m.current = next
}
