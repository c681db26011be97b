package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuitype/internal/theme"
)

type styles struct {
	correct   lipgloss.Style
	incorrect lipgloss.Style
	untyped   lipgloss.Style
	cursor    lipgloss.Style
	title     lipgloss.Style
	mode      lipgloss.Style
	speed     lipgloss.Style
	accuracy  lipgloss.Style
	errorText lipgloss.Style
	success   lipgloss.Style
	muted     lipgloss.Style
	key       lipgloss.Style
	label     lipgloss.Style
	box       lipgloss.Style
	table     table.Styles
}

func newStyles(th theme.Theme) styles {
	base := lipgloss.NewStyle()
	tbl := table.DefaultStyles()
	tbl.Header = tbl.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(th.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(th.Title)
	tbl.Selected = tbl.Selected.
		Foreground(th.CursorFg).
		Background(th.CursorBg).
		Bold(true)

	return styles{
		correct:   base.Foreground(th.Correct),
		incorrect: base.Foreground(th.Incorrect).Bold(true),
		untyped:   base.Foreground(th.Untyped),
		cursor:    base.Foreground(th.CursorFg).Background(th.CursorBg).Bold(true).Underline(true),
		title:     base.Foreground(th.Title).Bold(true),
		mode:      base.Foreground(th.Mode).Bold(true),
		speed:     base.Foreground(th.Speed).Bold(true),
		accuracy:  base.Foreground(th.Accuracy).Bold(true),
		errorText: base.Foreground(th.Error),
		success:   base.Foreground(th.Success).Bold(true),
		muted:     base.Foreground(th.Muted),
		key:       base.Foreground(th.Title),
		label:     base.Foreground(th.Muted).Width(14),
		box: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Border).
			Padding(0, 1),
		table: tbl,
	}
}
