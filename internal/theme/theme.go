// Package theme defines the color palettes used by the TUI.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Default is the theme used when a name is unknown.
const Default = "dark"

// Theme is a named palette.
type Theme struct {
	Name         string
	Correct      lipgloss.Color
	Incorrect    lipgloss.Color
	Untyped      lipgloss.Color
	CursorFg     lipgloss.Color
	CursorBg     lipgloss.Color
	Speed        lipgloss.Color
	Accuracy     lipgloss.Color
	Error        lipgloss.Color
	Mode         lipgloss.Color
	Border       lipgloss.Color
	Title        lipgloss.Color
	Success      lipgloss.Color
	Muted        lipgloss.Color
	Key          lipgloss.Color
	KeyText      lipgloss.Color
	KeyHighlight lipgloss.Color
	FingerPinky  lipgloss.Color
	FingerRing   lipgloss.Color
	FingerMiddle lipgloss.Color
	FingerIndex  lipgloss.Color
	FingerThumb  lipgloss.Color
}

var themes = []Theme{
	{
		Name:         "dark",
		Correct:      lipgloss.Color("2"),
		Incorrect:    lipgloss.Color("1"),
		Untyped:      lipgloss.Color("8"),
		CursorFg:     lipgloss.Color("15"),
		CursorBg:     lipgloss.Color("8"),
		Speed:        lipgloss.Color("6"),
		Accuracy:     lipgloss.Color("3"),
		Error:        lipgloss.Color("1"),
		Mode:         lipgloss.Color("5"),
		Border:       lipgloss.Color("6"),
		Title:        lipgloss.Color("6"),
		Success:      lipgloss.Color("2"),
		Muted:        lipgloss.Color("#6E6E6E"),
		Key:          lipgloss.Color("#2D2D2D"),
		KeyText:      lipgloss.Color("15"),
		KeyHighlight: lipgloss.Color("3"),
		FingerPinky:  lipgloss.Color("#FF6464"),
		FingerRing:   lipgloss.Color("#FFB464"),
		FingerMiddle: lipgloss.Color("#64FF64"),
		FingerIndex:  lipgloss.Color("#64B4FF"),
		FingerThumb:  lipgloss.Color("#C864FF"),
	},
	{
		Name:         "light",
		Correct:      lipgloss.Color("2"),
		Incorrect:    lipgloss.Color("1"),
		Untyped:      lipgloss.Color("7"),
		CursorFg:     lipgloss.Color("0"),
		CursorBg:     lipgloss.Color("7"),
		Speed:        lipgloss.Color("4"),
		Accuracy:     lipgloss.Color("5"),
		Error:        lipgloss.Color("1"),
		Mode:         lipgloss.Color("5"),
		Border:       lipgloss.Color("4"),
		Title:        lipgloss.Color("4"),
		Success:      lipgloss.Color("2"),
		Muted:        lipgloss.Color("#8C8C8C"),
		Key:          lipgloss.Color("#DCDCDC"),
		KeyText:      lipgloss.Color("0"),
		KeyHighlight: lipgloss.Color("#FF6400"),
		FingerPinky:  lipgloss.Color("#C85050"),
		FingerRing:   lipgloss.Color("#C88C3C"),
		FingerMiddle: lipgloss.Color("#3CA03C"),
		FingerIndex:  lipgloss.Color("#3C78C8"),
		FingerThumb:  lipgloss.Color("#8C3CB4"),
	},
	{
		Name:         "nord",
		Correct:      lipgloss.Color("#A3BE8C"),
		Incorrect:    lipgloss.Color("#BF616A"),
		Untyped:      lipgloss.Color("#4C566A"),
		CursorFg:     lipgloss.Color("#ECEFF4"),
		CursorBg:     lipgloss.Color("#4C566A"),
		Speed:        lipgloss.Color("#88C0D0"),
		Accuracy:     lipgloss.Color("#EBCB8B"),
		Error:        lipgloss.Color("#BF616A"),
		Mode:         lipgloss.Color("#B48EAD"),
		Border:       lipgloss.Color("#88C0D0"),
		Title:        lipgloss.Color("#88C0D0"),
		Success:      lipgloss.Color("#A3BE8C"),
		Muted:        lipgloss.Color("#616E88"),
		Key:          lipgloss.Color("#434C5E"),
		KeyText:      lipgloss.Color("#D8DEE9"),
		KeyHighlight: lipgloss.Color("#88C0D0"),
		FingerPinky:  lipgloss.Color("#BF616A"),
		FingerRing:   lipgloss.Color("#EBCB8B"),
		FingerMiddle: lipgloss.Color("#A3BE8C"),
		FingerIndex:  lipgloss.Color("#88C0D0"),
		FingerThumb:  lipgloss.Color("#B48EAD"),
	},
	{
		Name:         "dracula",
		Correct:      lipgloss.Color("#50FA7B"),
		Incorrect:    lipgloss.Color("#FF5555"),
		Untyped:      lipgloss.Color("#6272A4"),
		CursorFg:     lipgloss.Color("#F8F8F2"),
		CursorBg:     lipgloss.Color("#44475A"),
		Speed:        lipgloss.Color("#8BE9FD"),
		Accuracy:     lipgloss.Color("#F1FA8C"),
		Error:        lipgloss.Color("#FF5555"),
		Mode:         lipgloss.Color("#FF79C6"),
		Border:       lipgloss.Color("#BD93F9"),
		Title:        lipgloss.Color("#BD93F9"),
		Success:      lipgloss.Color("#50FA7B"),
		Muted:        lipgloss.Color("#6272A4"),
		Key:          lipgloss.Color("#44475A"),
		KeyText:      lipgloss.Color("#F8F8F2"),
		KeyHighlight: lipgloss.Color("#FF79C6"),
		FingerPinky:  lipgloss.Color("#FF5555"),
		FingerRing:   lipgloss.Color("#F1FA8C"),
		FingerMiddle: lipgloss.Color("#50FA7B"),
		FingerIndex:  lipgloss.Color("#8BE9FD"),
		FingerThumb:  lipgloss.Color("#FF79C6"),
	},
	{
		Name:         "solarized",
		Correct:      lipgloss.Color("#859900"),
		Incorrect:    lipgloss.Color("#DC322F"),
		Untyped:      lipgloss.Color("#586E75"),
		CursorFg:     lipgloss.Color("#FDF6E3"),
		CursorBg:     lipgloss.Color("#586E75"),
		Speed:        lipgloss.Color("#2AA198"),
		Accuracy:     lipgloss.Color("#B58900"),
		Error:        lipgloss.Color("#DC322F"),
		Mode:         lipgloss.Color("#D33682"),
		Border:       lipgloss.Color("#268BD2"),
		Title:        lipgloss.Color("#268BD2"),
		Success:      lipgloss.Color("#859900"),
		Muted:        lipgloss.Color("#657B83"),
		Key:          lipgloss.Color("#586E75"),
		KeyText:      lipgloss.Color("#FDF6E3"),
		KeyHighlight: lipgloss.Color("#B58900"),
		FingerPinky:  lipgloss.Color("#DC322F"),
		FingerRing:   lipgloss.Color("#B58900"),
		FingerMiddle: lipgloss.Color("#859900"),
		FingerIndex:  lipgloss.Color("#268BD2"),
		FingerThumb:  lipgloss.Color("#D33682"),
	},
	{
		Name:         "catppuccin-mocha",
		Correct:      lipgloss.Color("#A6E3A1"),
		Incorrect:    lipgloss.Color("#F38BA8"),
		Untyped:      lipgloss.Color("#585B70"),
		CursorFg:     lipgloss.Color("#CDD6F4"),
		CursorBg:     lipgloss.Color("#313244"),
		Speed:        lipgloss.Color("#94E2D5"),
		Accuracy:     lipgloss.Color("#F9E2AF"),
		Error:        lipgloss.Color("#F38BA8"),
		Mode:         lipgloss.Color("#CBA6F7"),
		Border:       lipgloss.Color("#74C7EC"),
		Title:        lipgloss.Color("#B4BEFE"),
		Success:      lipgloss.Color("#A6E3A1"),
		Muted:        lipgloss.Color("#7F849C"),
		Key:          lipgloss.Color("#313244"),
		KeyText:      lipgloss.Color("#CDD6F4"),
		KeyHighlight: lipgloss.Color("#F9E2AF"),
		FingerPinky:  lipgloss.Color("#F38BA8"),
		FingerRing:   lipgloss.Color("#F9E2AF"),
		FingerMiddle: lipgloss.Color("#A6E3A1"),
		FingerIndex:  lipgloss.Color("#89B4FA"),
		FingerThumb:  lipgloss.Color("#CBA6F7"),
	},
}

var aliases = map[string]string{
	"catppuccin": "catppuccin-mocha",
	"mocha":      "catppuccin-mocha",
}

// Names lists the available themes in cycling order.
func Names() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	for _, t := range themes {
		if t.Name == key {
			return t, true
		}
	}
	return Theme{}, false
}

// ByName returns the named theme, falling back to Default.
func ByName(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return themes[0]
}

// Next returns the theme after name in cycling order.
func Next(name string) Theme {
	current := ByName(name).Name
	for i, t := range themes {
		if t.Name == current {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
