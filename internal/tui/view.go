package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/verte-zerg/tuitype/internal/keyboard"
	"github.com/verte-zerg/tuitype/internal/phase"
	"github.com/verte-zerg/tuitype/internal/stats"
)

const (
	defaultWidth    = 80
	minContentWidth = 20
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch {
	case m.phases.Current() == phase.History:
		body = m.historyView()
	case m.phases.Current() == phase.Stats:
		body = m.statsView()
	case m.phases.Current() == phase.Results || m.sess.IsComplete():
		body = m.resultsView()
	default:
		body = m.typingView()
	}
	footer := m.footerView()
	if m.width == 0 || m.height == 0 {
		return body + "\n\n" + footer
	}
	bodyHeight := m.height - lipgloss.Height(footer)
	if bodyHeight < 1 {
		return body
	}
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	return placed + "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
}

func (m *Model) contentWidth() int {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	w := int(float64(width) * 0.70)
	if w < minContentWidth {
		w = minContentWidth
	}
	return w
}

func (m *Model) typingView() string {
	width := m.contentWidth()
	header := strings.Join([]string{
		m.styles.title.Render("tuitype"),
		m.styles.mode.Render("[" + strings.ToUpper(m.mode.String()) + "]"),
		m.styles.speed.Render(fmt.Sprintf("WPM %5.1f", m.animated)),
		m.styles.accuracy.Render(fmt.Sprintf("Acc %5.1f%%", m.sess.Accuracy())),
		m.styles.errorText.Render(fmt.Sprintf("Errors %d", m.sess.Mistakes())),
	}, "   ")

	// Border and padding take two columns on each side.
	text := renderPassage(m.styles, m.sess.Target(), m.sess.TypedRunes(), m.sess.IsComplete(), width-4, m.passageRows())
	box := m.styles.box.Width(width - 2).Render(text)

	parts := []string{
		header,
		m.progressBar.ViewAs(m.sess.Progress()),
		box,
		m.sourceLine(width),
	}
	if m.showKeyboard {
		next, _ := m.sess.ExpectedNext()
		if kb := keyboard.Render(m.theme, next, m.pressed, m.keyboardWidth()); kb != "" {
			parts = append(parts, "", kb)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// passageRows is the number of passage rows that fit around the other
// typing view elements; 0 means unlimited.
func (m *Model) passageRows() int {
	if m.height <= 0 {
		return 0
	}
	// header, progress, box border, source, footer lines
	reserved := 1 + 1 + 2 + 1 + 3
	if m.showKeyboard && m.keyboardWidth() >= keyboard.Width() {
		reserved += keyboard.Height() + 1
	}
	rows := m.height - reserved
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *Model) keyboardWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m *Model) sourceLine(width int) string {
	source := m.sess.Passage().Source
	if source == "" {
		return ""
	}
	line := truncate.StringWithTail("source: "+source, uint(width), "…")
	return m.styles.muted.Render(line)
}

func (m *Model) resultsView() string {
	s := m.sess
	raw := s.RawSpeed()
	if m.lastOutcome != nil {
		raw = m.lastOutcome.RawSpeed
	}
	rows := [][2]string{
		{"WPM", fmt.Sprintf("%.1f", s.Speed())},
		{"Raw WPM", fmt.Sprintf("%.1f", raw)},
		{"Accuracy", fmt.Sprintf("%.1f%%", s.Accuracy())},
		{"Consistency", fmt.Sprintf("%.1f%%", s.Consistency())},
		{"Time", fmt.Sprintf("%.2fs", s.Duration().Seconds())},
		{"Mistakes", fmt.Sprintf("%d", s.Mistakes())},
		{"Mode", m.mode.String()},
	}
	lines := []string{m.styles.success.Render("TEST COMPLETE"), ""}
	for _, row := range rows {
		value := m.styles.speed.Render(row[1])
		if row[0] == "Accuracy" {
			value = m.styles.accuracy.Render(row[1])
		}
		lines = append(lines, m.styles.label.Render(row[0])+value)
	}
	if src := m.sourceLine(m.contentWidth()); src != "" {
		lines = append(lines, "", src)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.box.Render(content)
}

func (m *Model) historyView() string {
	title := m.styles.title.Render(fmt.Sprintf("History (last %d)", historyLimit))
	if len(m.history) == 0 {
		return lipgloss.JoinVertical(lipgloss.Center, title, "", m.styles.muted.Render("No results yet."))
	}
	parts := []string{title, "", m.historyTbl.View()}
	if m.showDetail {
		if detail := m.historyDetail(); detail != "" {
			parts = append(parts, "", detail)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) historyDetail() string {
	idx := m.historyTbl.Cursor()
	if idx < 0 || idx >= len(m.history) {
		return ""
	}
	o := m.history[idx]
	lines := []string{
		m.styles.label.Render("Taken") + o.Timestamp.Local().Format("2006-01-02 15:04:05"),
		m.styles.label.Render("Length") + fmt.Sprintf("%d chars", o.PassageLength),
	}
	if o.Source != "" {
		src := truncate.StringWithTail(o.Source, uint(m.contentWidth()), "…")
		lines = append(lines, m.styles.label.Render("Source")+src)
	}
	return m.styles.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) statsView() string {
	title := m.styles.title.Render("Statistics")
	if m.report.Summary.TotalTests == 0 {
		return lipgloss.JoinVertical(lipgloss.Center, title, "", m.styles.muted.Render("No results yet. Complete a test to see statistics."))
	}
	summary := make([]string, 0, 5)
	for _, line := range stats.SummaryLines(m.report.Summary) {
		summary = append(summary, m.styles.label.Render(line[0])+m.styles.speed.Render(line[1]))
	}
	parts := []string{
		title,
		"",
		lipgloss.JoinVertical(lipgloss.Left, summary...),
		"",
		m.modeTbl.View(),
	}
	if len(m.report.Recent) > 1 {
		width := m.contentWidth() - 14
		spark := stats.Sparkline(stats.SpeedSeries(m.report.Recent), width)
		parts = append(parts, "", m.styles.label.Render("Recent WPM")+m.styles.speed.Render(spark))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) footerView() string {
	help := m.help.ShortHelpView(helpBindings(m.phases.Current(), m.sess.IsComplete()))
	if m.status == "" {
		return help
	}
	style := m.styles.muted
	if m.statusIsErr {
		style = m.styles.errorText
	}
	return lipgloss.JoinVertical(lipgloss.Center, style.Render(m.status), help)
}

// fitColumns sizes each column to its widest cell.
func fitColumns(headers []string, rows [][]string) []table.Column {
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		w := runewidth.StringWidth(h)
		for _, row := range rows {
			if i < len(row) {
				if cw := runewidth.StringWidth(row[i]); cw > w {
					w = cw
				}
			}
		}
		cols[i] = table.Column{Title: h, Width: w}
	}
	return cols
}

func toRows(rows [][]string) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row(r)
	}
	return out
}
