package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFromTea(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []Key
	}{
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("aB")}, []Key{RuneKey('a', 0), RuneKey('B', 0)}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, []Key{{Code: KeySpace, Rune: ' '}}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []Key{CodeKey(KeyEnter, 0)}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []Key{CodeKey(KeyTab, 0)}},
		{"alt backspace", tea.KeyMsg{Type: tea.KeyBackspace, Alt: true}, []Key{CodeKey(KeyBackspace, ModAlt)}},
		{"ctrl h is ctrl backspace", tea.KeyMsg{Type: tea.KeyCtrlH}, []Key{CodeKey(KeyBackspace, ModCtrl)}},
		{"ctrl t", tea.KeyMsg{Type: tea.KeyCtrlT}, []Key{RuneKey('t', ModCtrl)}},
		{"ctrl s", tea.KeyMsg{Type: tea.KeyCtrlS}, []Key{RuneKey('s', ModCtrl)}},
		{"paste ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc"), Paste: true}, nil},
		{"other", tea.KeyMsg{Type: tea.KeyF1}, []Key{CodeKey(KeyOther, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTea(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d keys, got %d (%+v)", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("key %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
