// Package wrap implements the greedy word wrap shared by the passage
// renderer and the cursor row tracker, so both agree on line breaks.
package wrap

import "github.com/mattn/go-runewidth"

// Line is one wrapped row. Runes [Start, End) hold the row's words and
// [End, Next) the whitespace that follows them.
type Line struct {
	Start int
	End   int
	Next  int
}

type placedWord struct {
	start int
	end   int
	row   int
}

// placeWords assigns every word (maximal run of non-space runes) to a row.
// A word moves to a new row when the current row is non-empty and the word
// plus one separating space would exceed width. width <= 0 disables wrapping.
func placeWords(text []rune, width int) []placedWord {
	var words []placedWord
	row := 0
	lineWidth := 0
	for i := 0; i < len(text); {
		if text[i] == ' ' {
			i++
			continue
		}
		start := i
		wordWidth := 0
		for i < len(text) && text[i] != ' ' {
			wordWidth += runewidth.RuneWidth(text[i])
			i++
		}
		if width > 0 && lineWidth > 0 && lineWidth+1+wordWidth > width {
			row++
			lineWidth = 0
		}
		if lineWidth > 0 {
			lineWidth++
		}
		lineWidth += wordWidth
		words = append(words, placedWord{start: start, end: i, row: row})
	}
	return words
}

// Layout splits text into rows no wider than width, except for single words
// that are wider than width on their own.
func Layout(text []rune, width int) []Line {
	words := placeWords(text, width)
	if len(words) == 0 {
		return []Line{{Start: 0, End: 0, Next: len(text)}}
	}
	lines := []Line{{Start: 0, End: words[0].end}}
	for _, w := range words[1:] {
		last := &lines[len(lines)-1]
		if w.row == len(lines)-1 {
			last.End = w.end
			continue
		}
		last.Next = w.start
		lines = append(lines, Line{Start: w.start, End: w.end})
	}
	lines[len(lines)-1].Next = len(text)
	return lines
}

// CursorRow returns the zero-based row holding the cursor. A cursor inside a
// word or at its end belongs to that word's row; a cursor in the whitespace
// after a word, up to and including the next word's start, belongs to the
// earlier word's row.
func CursorRow(text []rune, cursor, width int) int {
	if width < 2 {
		return 0
	}
	words := placeWords(text, width)
	if len(words) == 0 || cursor < words[0].start {
		return 0
	}
	for i, w := range words {
		if cursor >= w.start && cursor <= w.end {
			return w.row
		}
		next := len(text)
		if i+1 < len(words) {
			next = words[i+1].start
		}
		if cursor > w.end && cursor <= next {
			return w.row
		}
	}
	return words[len(words)-1].row
}

// ScrollOffset returns the first visible row that keeps row vertically
// centered in a viewport of the given height.
func ScrollOffset(row, height int) int {
	half := height / 2
	if row > half {
		return row - half
	}
	return 0
}
