// Package input maps key presses to semantic actions.
package input

import "fmt"

// ActionKind enumerates everything a key press can ask the app to do.
type ActionKind int

// Action kinds.
const (
	None ActionKind = iota
	Quit
	CycleMode
	CycleTheme
	ToggleKeyboard
	NewPassage
	Restart
	ShowHistory
	ShowStats
	BackToTesting
	TypeChar
	Backspace
	DeleteWord
	NavigateUp
	NavigateDown
	Select
)

var actionNames = [...]string{
	None:           "None",
	Quit:           "Quit",
	CycleMode:      "CycleMode",
	CycleTheme:     "CycleTheme",
	ToggleKeyboard: "ToggleKeyboard",
	NewPassage:     "NewPassage",
	Restart:        "Restart",
	ShowHistory:    "ShowHistory",
	ShowStats:      "ShowStats",
	BackToTesting:  "BackToTesting",
	TypeChar:       "TypeChar",
	Backspace:      "Backspace",
	DeleteWord:     "DeleteWord",
	NavigateUp:     "NavigateUp",
	NavigateDown:   "NavigateDown",
	Select:         "Select",
}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
	return actionNames[k]
}

// Action is the result of resolving one key press. Char is only set for TypeChar.
type Action struct {
	Kind ActionKind
	Char rune
}

// Do returns an action without payload.
func Do(kind ActionKind) Action {
	return Action{Kind: kind}
}

// Type returns a TypeChar action for r.
func Type(r rune) Action {
	return Action{Kind: TypeChar, Char: r}
}

func (a Action) String() string {
	if a.Kind == TypeChar {
		return fmt.Sprintf("TypeChar(%q)", a.Char)
	}
	return a.Kind.String()
}
