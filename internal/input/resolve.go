package input

import (
	"unicode"

	"github.com/verte-zerg/tuitype/internal/phase"
)

const quitRune = '`'

// ctrlActions binds control-modified letters; they fire in every phase.
var ctrlActions = map[rune]ActionKind{
	't': CycleTheme,
	'f': ToggleKeyboard,
	'n': NewPassage,
	'r': Restart,
	'h': ShowHistory,
	's': ShowStats,
	'c': Quit,
}

// Resolve maps a key press to an action given the current phase and whether
// the test is complete. It has no side effects. The first matching case wins.
func Resolve(k Key, p phase.Phase, complete bool) Action {
	browsing := p == phase.History || p == phase.Stats
	typing := p == phase.Testing && !complete
	ctrl := k.Mods.Has(ModCtrl)

	switch {
	case k.Code == KeyRune && k.Rune == quitRune:
		return Do(Quit)
	case k.Code == KeyTab:
		return Do(CycleMode)
	case k.Code == KeyRune && ctrl && ctrlActions[unicode.ToLower(k.Rune)] != None:
		return Do(ctrlActions[unicode.ToLower(k.Rune)])
	case k.Code == KeyEsc && browsing:
		return Do(BackToTesting)
	case k.Code == KeyUp && browsing:
		return Do(NavigateUp)
	case k.Code == KeyDown && browsing:
		return Do(NavigateDown)
	case k.Code == KeyEnter:
		if complete && (p == phase.Testing || p == phase.Results) {
			return Do(NewPassage)
		}
		return Do(Select)
	case k.Code == KeySpace:
		switch {
		case complete && p == phase.Testing:
			return Do(Restart)
		case complete && p == phase.Results:
			return Do(NewPassage)
		case typing:
			return Type(' ')
		}
		return Do(None)
	case k.Code == KeyRune && typing && k.Mods.Has(ModShift) && unicode.IsLetter(k.Rune):
		return Type(unicode.ToUpper(k.Rune))
	case k.Code == KeyRune && typing && !ctrl && unicode.IsPrint(k.Rune):
		return Type(k.Rune)
	case k.Code == KeyBackspace && ctrl:
		// Same action as ctrl+h; terminals commonly send ^H for ctrl+backspace.
		return Do(ShowHistory)
	case k.Code == KeyBackspace && k.Mods.Has(ModAlt) && typing:
		return Do(DeleteWord)
	case k.Code == KeyBackspace && typing:
		return Do(Backspace)
	}
	return Do(None)
}
