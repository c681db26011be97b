package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatTable lays out rows under headers with every column padded to its
// widest cell. Columns from numericFrom on are right aligned.
func formatTable(headers []string, rows [][]string, numericFrom int) []string {
	widths := columnWidths(headers, rows)
	if len(widths) == 0 {
		return nil
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, joinCells(headers, widths, numericFrom))
	for _, row := range rows {
		lines = append(lines, joinCells(row, widths, numericFrom))
	}
	return lines
}

func columnWidths(headers []string, rows [][]string) []int {
	var widths []int
	grow := func(cells []string) {
		for i, cell := range cells {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	grow(headers)
	for _, row := range rows {
		grow(row)
	}
	return widths
}

func joinCells(cells []string, widths []int, numericFrom int) string {
	padded := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if i >= numericFrom {
			padded[i] = runewidth.FillLeft(cell, w)
		} else {
			padded[i] = runewidth.FillRight(cell, w)
		}
	}
	return strings.Join(padded, " ")
}
