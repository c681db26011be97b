package input

import (
	"testing"

	"github.com/verte-zerg/tuitype/internal/phase"
)

var allPhases = []phase.Phase{phase.Testing, phase.Results, phase.History, phase.Stats}

var allMods = []Modifiers{0, ModShift, ModCtrl, ModAlt, ModShift | ModCtrl, ModCtrl | ModAlt}

func TestResolveQuitAlwaysWins(t *testing.T) {
	for _, p := range allPhases {
		for _, mods := range allMods {
			for _, complete := range []bool{false, true} {
				got := Resolve(RuneKey('`', mods), p, complete)
				if got.Kind != Quit {
					t.Fatalf("grave in %s mods=%b complete=%v: got %s", p, mods, complete, got)
				}
			}
		}
	}
}

func TestResolveTabCyclesModeEverywhere(t *testing.T) {
	for _, p := range allPhases {
		for _, complete := range []bool{false, true} {
			if got := Resolve(CodeKey(KeyTab, 0), p, complete); got.Kind != CycleMode {
				t.Fatalf("tab in %s: got %s", p, got)
			}
		}
	}
}

func TestResolveControlBindings(t *testing.T) {
	bindings := map[rune]ActionKind{
		't': CycleTheme,
		'f': ToggleKeyboard,
		'n': NewPassage,
		'r': Restart,
		'h': ShowHistory,
		's': ShowStats,
	}
	for r, want := range bindings {
		for _, p := range allPhases {
			for _, complete := range []bool{false, true} {
				if got := Resolve(RuneKey(r, ModCtrl), p, complete); got.Kind != want {
					t.Fatalf("ctrl+%c in %s complete=%v: got %s, want %s", r, p, complete, got, want)
				}
			}
		}
	}
}

func TestResolveTable(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		phase    phase.Phase
		complete bool
		want     Action
	}{
		{"lower letter", RuneKey('a', 0), phase.Testing, false, Type('a')},
		{"shifted letter", RuneKey('a', ModShift), phase.Testing, false, Type('A')},
		{"digit", RuneKey('7', 0), phase.Testing, false, Type('7')},
		{"punctuation", RuneKey(',', 0), phase.Testing, false, Type(',')},
		{"alt letter still types", RuneKey('x', ModAlt), phase.Testing, false, Type('x')},
		{"ctrl unbound letter", RuneKey('a', ModCtrl), phase.Testing, false, Do(None)},
		{"letter after completion", RuneKey('a', 0), phase.Testing, true, Do(None)},
		{"letter in results", RuneKey('a', 0), phase.Results, false, Do(None)},
		{"letter in history", RuneKey('a', 0), phase.History, false, Do(None)},
		{"up in history", CodeKey(KeyUp, 0), phase.History, false, Do(NavigateUp)},
		{"down in stats", CodeKey(KeyDown, 0), phase.Stats, true, Do(NavigateDown)},
		{"up in testing", CodeKey(KeyUp, 0), phase.Testing, false, Do(None)},
		{"down in results", CodeKey(KeyDown, 0), phase.Results, true, Do(None)},
		{"esc in history", CodeKey(KeyEsc, 0), phase.History, false, Do(BackToTesting)},
		{"esc in stats", CodeKey(KeyEsc, 0), phase.Stats, true, Do(BackToTesting)},
		{"esc in testing", CodeKey(KeyEsc, 0), phase.Testing, false, Do(None)},
		{"enter complete testing", CodeKey(KeyEnter, 0), phase.Testing, true, Do(NewPassage)},
		{"enter complete results", CodeKey(KeyEnter, 0), phase.Results, true, Do(NewPassage)},
		{"enter while typing", CodeKey(KeyEnter, 0), phase.Testing, false, Do(Select)},
		{"enter in history", CodeKey(KeyEnter, 0), phase.History, true, Do(Select)},
		{"space while typing", RuneKey(' ', 0), phase.Testing, false, Type(' ')},
		{"space complete testing", RuneKey(' ', 0), phase.Testing, true, Do(Restart)},
		{"space complete results", RuneKey(' ', 0), phase.Results, true, Do(NewPassage)},
		{"space in history", RuneKey(' ', 0), phase.History, false, Do(None)},
		{"space in incomplete results", RuneKey(' ', 0), phase.Results, false, Do(None)},
		{"backspace", CodeKey(KeyBackspace, 0), phase.Testing, false, Do(Backspace)},
		{"alt backspace", CodeKey(KeyBackspace, ModAlt), phase.Testing, false, Do(DeleteWord)},
		{"ctrl backspace", CodeKey(KeyBackspace, ModCtrl), phase.Testing, false, Do(ShowHistory)},
		{"ctrl backspace in stats", CodeKey(KeyBackspace, ModCtrl), phase.Stats, true, Do(ShowHistory)},
		{"backspace after completion", CodeKey(KeyBackspace, 0), phase.Testing, true, Do(None)},
		{"alt backspace after completion", CodeKey(KeyBackspace, ModAlt), phase.Testing, true, Do(None)},
		{"backspace in history", CodeKey(KeyBackspace, 0), phase.History, false, Do(None)},
		{"ctrl c quits", RuneKey('c', ModCtrl), phase.Results, true, Do(Quit)},
		{"unknown key", CodeKey(KeyOther, 0), phase.Testing, false, Do(None)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.key, tt.phase, tt.complete); got != tt.want {
				t.Fatalf("Resolve(%+v, %s, %v) = %s, want %s", tt.key, tt.phase, tt.complete, got, tt.want)
			}
		})
	}
}
