package keyboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/verte-zerg/tuitype/internal/theme"
)

const keyGap = " "

// Width returns the rendered width of the widest row.
func Width() int {
	widest := 0
	for _, row := range Rows {
		w := 0
		for i, key := range row {
			if i > 0 {
				w += len(keyGap)
			}
			w += key.Width
		}
		if w > widest {
			widest = w
		}
	}
	return widest
}

// Height returns the number of rendered lines.
func Height() int {
	return len(Rows)
}

// Render draws the keyboard highlighting next and flashing pressed. Zero
// runes disable either highlight. It returns "" when maxWidth is too small.
func Render(th theme.Theme, next, pressed rune, maxWidth int) string {
	width := Width()
	if maxWidth < width {
		return ""
	}
	if next != 0 {
		next = BaseKey(next)
	}
	if pressed != 0 {
		pressed = BaseKey(pressed)
	}

	lines := make([]string, 0, len(Rows))
	for _, row := range Rows {
		cells := make([]string, 0, len(row)*2)
		for i, key := range row {
			if i > 0 {
				cells = append(cells, keyGap)
			}
			cells = append(cells, renderKey(th, key, next, pressed))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
	}
	return strings.Join(lines, "\n")
}

func renderKey(th theme.Theme, key KeyDef, next, pressed rune) string {
	finger := fingerColor(th, key.Finger)
	style := lipgloss.NewStyle().
		Width(key.Width).
		Align(lipgloss.Center).
		Bold(true).
		Background(th.Key).
		Foreground(finger)

	isCurrent := key.Char != 0 && key.Char == next
	isPressed := !isCurrent && key.Char != 0 && key.Char == pressed
	switch {
	case isCurrent:
		style = style.Background(th.KeyHighlight).Foreground(th.Key)
	case isPressed:
		style = style.Background(finger).Foreground(th.KeyText)
	}
	if homeRow[key.Char] {
		style = style.Underline(true)
	}
	return style.Render(key.Label)
}

func fingerColor(th theme.Theme, f Finger) lipgloss.Color {
	switch f {
	case Pinky:
		return th.FingerPinky
	case Ring:
		return th.FingerRing
	case Middle:
		return th.FingerMiddle
	case IndexLeft, IndexRight:
		return th.FingerIndex
	default:
		return th.FingerThumb
	}
}
