package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/tuitype/internal/theme"
	"github.com/verte-zerg/tuitype/internal/wrap"
)

func trimmedLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func TestRenderPassageWraps(t *testing.T) {
	st := newStyles(theme.ByName("dark"))
	out := renderPassage(st, []rune("the quick brown fox"), nil, false, 11, 0)
	got := trimmedLines(out)
	want := []string{"the quick", "brown fox"}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRenderPassageScrollsToCursor(t *testing.T) {
	st := newStyles(theme.ByName("dark"))
	target := []rune("a b c d e f")
	out := renderPassage(st, target, []rune("a b c d"), false, 3, 2)
	got := trimmedLines(out)
	if len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Fatalf("unexpected window %q", got)
	}

	out = renderPassage(st, target, []rune("a b c d e "), false, 3, 2)
	got = trimmedLines(out)
	if len(got) != 2 || got[0] != "d" || got[1] != "e" {
		t.Fatalf("unexpected window %q", got)
	}
}

func TestRenderPassageLastPageStaysFull(t *testing.T) {
	st := newStyles(theme.ByName("dark"))
	// Cursor on the last row; centering would start at row 4 of 6.
	out := renderPassage(st, []rune("a b c d e f"), []rune("a b c d e f"), false, 3, 3)
	got := trimmedLines(out)
	if len(got) != 3 || got[0] != "d" || got[1] != "e" || got[2] != "f" {
		t.Fatalf("last page should stay full, got %q", got)
	}
}

// A cursor on the first rune of a word still counts as the previous word's
// row, so at a small height that rune can be just below the window.
func TestRenderPassageCursorAtWordStartStaysOnPreviousRow(t *testing.T) {
	st := newStyles(theme.ByName("dark"))
	target := []rune("a b c d e f")
	typed := []rune("a b c d e ")
	if row := wrap.CursorRow(target, len(typed), 2); row != 4 {
		t.Fatalf("expected cursor row 4, got %d", row)
	}
	out := renderPassage(st, target, typed, false, 3, 1)
	if got := trimmedLines(out); len(got) != 1 || got[0] != "e" {
		t.Fatalf("expected the previous word's row, got %q", got)
	}
}

func TestRenderPassageNarrowWidthTracksCursor(t *testing.T) {
	st := newStyles(theme.ByName("dark"))
	target := []rune("aa bb cc dd ee ff")
	out := renderPassage(st, target, []rune("aa bb cc dd e"), false, 2, 1)
	if got := trimmedLines(out); len(got) != 1 || got[0] != "ee" {
		t.Fatalf("expected the cursor row, got %q", got)
	}
}

func TestRenderPassageShowsMistakes(t *testing.T) {
	st := newStyles(theme.ByName("dark"))
	out := renderPassage(st, []rune("a b"), []rune("ax"), false, 20, 0)
	if strings.TrimRight(out, " ") != "axb" {
		t.Fatalf("wrong key over a space should be shown, got %q", out)
	}

	out = renderPassage(st, []rune("ab"), []rune("abxy"), false, 20, 0)
	if out != "abxy" {
		t.Fatalf("overflow input should be appended, got %q", out)
	}
}

func TestFitColumns(t *testing.T) {
	cols := fitColumns([]string{"Mode", "WPM"}, [][]string{{"medium", "42.0"}, {"short", "108.5"}})
	if len(cols) != 2 || cols[0].Width != 6 || cols[1].Width != 5 {
		t.Fatalf("unexpected columns %+v", cols)
	}
	if cols[0].Title != "Mode" {
		t.Fatalf("unexpected title %q", cols[0].Title)
	}
}
