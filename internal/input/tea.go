package input

import tea "github.com/charmbracelet/bubbletea"

// FromTea converts a Bubble Tea key message into key presses. Pasted text
// yields nothing so it cannot be used to fill in a passage.
func FromTea(msg tea.KeyMsg) []Key {
	if msg.Paste {
		return nil
	}
	var mods Modifiers
	if msg.Alt {
		mods |= ModAlt
	}
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, RuneKey(r, mods))
		}
		return keys
	case tea.KeySpace:
		return []Key{RuneKey(' ', mods)}
	case tea.KeyEnter:
		return []Key{CodeKey(KeyEnter, mods)}
	case tea.KeyEsc:
		return []Key{CodeKey(KeyEsc, mods)}
	case tea.KeyTab:
		return []Key{CodeKey(KeyTab, mods)}
	case tea.KeyBackspace:
		return []Key{CodeKey(KeyBackspace, mods)}
	case tea.KeyCtrlH:
		return []Key{CodeKey(KeyBackspace, mods|ModCtrl)}
	case tea.KeyUp:
		return []Key{CodeKey(KeyUp, mods)}
	case tea.KeyDown:
		return []Key{CodeKey(KeyDown, mods)}
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := rune('a' + int(msg.Type-tea.KeyCtrlA))
		return []Key{RuneKey(r, mods|ModCtrl)}
	}
	return []Key{CodeKey(KeyOther, mods)}
}
