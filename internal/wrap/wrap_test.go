package wrap

import (
	"reflect"
	"testing"
)

func TestLayoutBreaksBetweenWords(t *testing.T) {
	text := []rune("the quick brown fox")
	got := Layout(text, 10)
	want := []Line{
		{Start: 0, End: 9, Next: 10},
		{Start: 10, End: 19, Next: 19},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected layout: %+v", got)
	}
}

func TestLayoutNoWrapWhenWidthDisabled(t *testing.T) {
	text := []rune("one two three")
	got := Layout(text, 0)
	if len(got) != 1 || got[0].End != len(text) {
		t.Fatalf("expected a single line, got %+v", got)
	}
}

func TestLayoutEmptyAndBlank(t *testing.T) {
	if got := Layout(nil, 10); !reflect.DeepEqual(got, []Line{{}}) {
		t.Fatalf("unexpected layout for empty text: %+v", got)
	}
	got := Layout([]rune("   "), 10)
	if len(got) != 1 || got[0].Next != 3 {
		t.Fatalf("unexpected layout for blank text: %+v", got)
	}
}

func TestLayoutOverlongWordGetsOwnLine(t *testing.T) {
	text := []rune("a bbbbbbbbbbbb c")
	got := Layout(text, 5)
	want := []Line{
		{Start: 0, End: 1, Next: 2},
		{Start: 2, End: 14, Next: 15},
		{Start: 15, End: 16, Next: 16},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected layout: %+v", got)
	}
}

func TestCursorRow(t *testing.T) {
	text := []rune("the quick brown fox")
	tests := []struct {
		cursor int
		want   int
	}{
		{0, 0},
		{5, 0},
		{9, 0},
		// The next word's start still counts as trailing space of "quick".
		{10, 0},
		{11, 1},
		{19, 1},
		{40, 1},
	}
	for _, tt := range tests {
		if got := CursorRow(text, tt.cursor, 10); got != tt.want {
			t.Fatalf("CursorRow(cursor=%d) = %d, want %d", tt.cursor, got, tt.want)
		}
	}
}

func TestCursorRowAgreesWithLayout(t *testing.T) {
	text := []rune("lorem ipsum dolor sit amet consectetur adipiscing elit sed do")
	for _, width := range []int{4, 8, 12, 20, 80} {
		lines := Layout(text, width)
		for row, line := range lines {
			for cursor := line.Start + 1; cursor <= line.End; cursor++ {
				if got := CursorRow(text, cursor, width); got != row {
					t.Fatalf("width %d cursor %d: row %d, layout row %d", width, cursor, got, row)
				}
			}
		}
	}
}

func TestCursorRowEdgeCases(t *testing.T) {
	if got := CursorRow([]rune("a b c"), 4, 1); got != 0 {
		t.Fatalf("expected row 0 for narrow width, got %d", got)
	}
	if got := CursorRow(nil, 0, 10); got != 0 {
		t.Fatalf("expected row 0 for empty text, got %d", got)
	}
	if got := CursorRow([]rune("  ab"), 1, 10); got != 0 {
		t.Fatalf("expected row 0 in leading spaces, got %d", got)
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		row, height, want int
	}{
		{0, 10, 0},
		{5, 10, 0},
		{7, 10, 2},
		{3, 1, 3},
		{2, 0, 2},
	}
	for _, tt := range tests {
		if got := ScrollOffset(tt.row, tt.height); got != tt.want {
			t.Fatalf("ScrollOffset(%d, %d) = %d, want %d", tt.row, tt.height, got, tt.want)
		}
	}
}
