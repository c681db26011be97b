package tui

import (
	"strings"

	"github.com/verte-zerg/tuitype/internal/wrap"
)

// renderPassage draws target wrapped to width with typed progress applied,
// showing at most height rows (all rows when height <= 0) scrolled so the
// cursor row stays centered.
func renderPassage(st styles, target, typed []rune, complete bool, width, height int) string {
	// Leave one column for the whitespace that trails each row. CursorRow
	// only tracks rows from width 2, so never wrap narrower than that.
	wrapWidth := max(width-1, 2)
	lines := wrap.Layout(target, wrapWidth)
	first, last := 0, len(lines)
	if height > 0 && len(lines) > height {
		row := wrap.CursorRow(target, len(typed), wrapWidth)
		first = wrap.ScrollOffset(row, height)
		if first > len(lines)-height {
			first = len(lines) - height
		}
		last = first + height
	}

	out := make([]string, 0, last-first)
	for _, line := range lines[first:last] {
		var b strings.Builder
		for i := line.Start; i < line.Next; i++ {
			b.WriteString(renderRune(st, target, typed, i, complete))
		}
		out = append(out, b.String())
	}
	if len(typed) > len(target) && last == len(lines) && len(out) > 0 {
		out[len(out)-1] += st.incorrect.Render(string(typed[len(target):]))
	}
	return strings.Join(out, "\n")
}

func renderRune(st styles, target, typed []rune, i int, complete bool) string {
	expected := target[i]
	shown := expected
	style := st.untyped
	if i < len(typed) {
		got := typed[i]
		switch {
		case got == expected:
			style = st.correct
		case expected == ' ':
			// A wrong key over a space would be invisible; show what was typed.
			shown = got
			style = st.incorrect
		default:
			style = st.incorrect
		}
	}
	if i == len(typed) && !complete {
		style = st.cursor
	}
	return style.Render(string(shown))
}
