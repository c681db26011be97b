package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/tuitype/internal/phase"
)

// Bindings here only describe keys for the help line; input.Resolve does
// the actual matching.
var (
	keyMode     = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "mode"))
	keyTheme    = key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme"))
	keyKeyboard = key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "keyboard"))
	keyNew      = key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new"))
	keyRestart  = key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart"))
	keyHistory  = key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "history"))
	keyStats    = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "stats"))
	keyQuit     = key.NewBinding(key.WithKeys("`"), key.WithHelp("`", "quit"))
	keyNext     = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "next"))
	keyBack     = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	keyMove     = key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move"))
	keyDetail   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details"))
)

func helpBindings(p phase.Phase, complete bool) []key.Binding {
	switch {
	case p == phase.History:
		return []key.Binding{keyMove, keyDetail, keyBack, keyStats, keyQuit}
	case p == phase.Stats:
		return []key.Binding{keyMove, keyBack, keyHistory, keyQuit}
	case p == phase.Results || complete:
		return []key.Binding{keyNext, keyRestart, keyMode, keyHistory, keyStats, keyQuit}
	default:
		return []key.Binding{keyMode, keyTheme, keyKeyboard, keyNew, keyRestart, keyHistory, keyStats, keyQuit}
	}
}
