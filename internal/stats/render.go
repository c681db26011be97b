package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/verte-zerg/tuitype/internal/model"
)

// HistoryHeaders names the columns produced by HistoryRows.
var HistoryHeaders = []string{"When", "Mode", "WPM", "Raw", "Accuracy", "Consistency", "Time"}

// FormatDuration renders whole seconds as a compact duration.
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "0s"
	}
	return (time.Duration(seconds) * time.Second).String()
}

// HistoryRows formats outcomes as table rows with times relative to now.
func HistoryRows(outcomes []model.TestOutcome, now time.Time) [][]string {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, []string{
			humanize.RelTime(o.Timestamp, now, "ago", "from now"),
			o.Mode.String(),
			fmt.Sprintf("%.1f", o.Speed),
			fmt.Sprintf("%.1f", o.RawSpeed),
			fmt.Sprintf("%.1f%%", o.Accuracy),
			fmt.Sprintf("%.1f%%", o.Consistency),
			FormatDuration(o.DurationSeconds),
		})
	}
	return rows
}

// SummaryLines formats aggregate stats as label/value pairs.
func SummaryLines(st model.UserStats) [][2]string {
	return [][2]string{
		{"Tests", humanize.Comma(st.TotalTests)},
		{"Best WPM", fmt.Sprintf("%.1f", st.BestSpeed)},
		{"Avg WPM", fmt.Sprintf("%.1f", st.AvgSpeed)},
		{"Avg Accuracy", fmt.Sprintf("%.1f%%", st.AvgAccuracy)},
		{"Total Time", FormatDuration(st.TotalTimeSeconds)},
	}
}

// RenderSummary prints aggregate stats.
func RenderSummary(w io.Writer, st model.UserStats) error {
	if st.TotalTests == 0 {
		_, err := fmt.Fprintln(w, "No results yet.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	for _, line := range SummaryLines(st) {
		if _, err := fmt.Fprintf(w, "%s: %s\n", line[0], line[1]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// ModeHeaders names the columns produced by ModeRows.
var ModeHeaders = []string{"Mode", "Tests", "Best WPM", "Avg WPM", "Avg Accuracy", "Time"}

// ModeRows formats per-mode aggregates as table rows.
func ModeRows(modes []model.ModeStats) [][]string {
	rows := make([][]string, 0, len(modes))
	for _, m := range modes {
		rows = append(rows, []string{
			m.Mode.String(),
			humanize.Comma(m.TotalTests),
			fmt.Sprintf("%.1f", m.BestSpeed),
			fmt.Sprintf("%.1f", m.AvgSpeed),
			fmt.Sprintf("%.1f%%", m.AvgAccuracy),
			FormatDuration(m.TotalTimeSeconds),
		})
	}
	return rows
}

// RenderModes prints a per-mode breakdown.
func RenderModes(w io.Writer, modes []model.ModeStats) error {
	if len(modes) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "By Mode"); err != nil {
		return err
	}
	for _, line := range formatTable(ModeHeaders, ModeRows(modes), 1) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderHistory prints outcomes newest first.
func RenderHistory(w io.Writer, outcomes []model.TestOutcome, now time.Time) error {
	if len(outcomes) == 0 {
		_, err := fmt.Fprintln(w, "No results yet.")
		return err
	}
	for _, line := range formatTable(HistoryHeaders, HistoryRows(outcomes, now), 2) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderTrend prints smoothed speed and accuracy sparklines fitted to width.
func RenderTrend(w io.Writer, outcomes []model.TestOutcome, window, width int) error {
	if len(outcomes) < 2 {
		return nil
	}
	const label = "Accuracy "
	sparkWidth := width - len(label)
	if sparkWidth < 10 {
		sparkWidth = 10
	}
	speeds := MovingAverage(SpeedSeries(outcomes), window)
	accs := MovingAverage(AccuracySeries(outcomes), window)
	if _, err := fmt.Fprintln(w, "Trend"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-*s%s\n", len(label), "WPM", Sparkline(speeds, sparkWidth)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", label, Sparkline(accs, sparkWidth)); err != nil {
		return err
	}
	return nil
}

// Render prints the full stats report.
func Render(w io.Writer, r Report, window, width int) error {
	if err := RenderSummary(w, r.Summary); err != nil {
		return err
	}
	if err := RenderModes(w, r.Modes); err != nil {
		return err
	}
	return RenderTrend(w, r.Recent, window, width)
}
