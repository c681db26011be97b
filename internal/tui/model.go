// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuitype/internal/input"
	"github.com/verte-zerg/tuitype/internal/keyboard"
	"github.com/verte-zerg/tuitype/internal/metrics"
	"github.com/verte-zerg/tuitype/internal/model"
	"github.com/verte-zerg/tuitype/internal/phase"
	"github.com/verte-zerg/tuitype/internal/session"
	"github.com/verte-zerg/tuitype/internal/stats"
	"github.com/verte-zerg/tuitype/internal/theme"
)

const (
	frameInterval  = 16 * time.Millisecond
	sampleInterval = 250 * time.Millisecond
	historyLimit   = 50
)

// PassageSupplier hands out passages for a mode.
type PassageSupplier interface {
	Random(mode model.Mode) (model.Passage, error)
}

// ResultSink persists completed tests.
type ResultSink interface {
	SaveOutcome(ctx context.Context, o model.TestOutcome) error
}

// ResultReader loads stored results for the history and stats views.
type ResultReader interface {
	RecentOutcomes(ctx context.Context, limit int) ([]model.TestOutcome, error)
	UserStats(ctx context.Context) (model.UserStats, error)
	ModeStats(ctx context.Context) ([]model.ModeStats, error)
}

// ResultStore is both sides of result persistence.
type ResultStore interface {
	ResultSink
	ResultReader
}

// SettingsMsg carries settings changed outside the program, such as an
// edited config file. Nil fields are left alone.
type SettingsMsg struct {
	Theme        *string
	ShowKeyboard *bool
}

type tickMsg time.Time

// Option configures a Model.
type Option func(*Model)

// WithClock replaces time.Now for elapsed time and result timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithContext sets the context used for store calls.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// WithThemeSaver persists the theme after it is cycled.
func WithThemeSaver(save func(name string) error) Option {
	return func(m *Model) {
		m.saveTheme = save
	}
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	ctx       context.Context
	now       func() time.Time
	passages  PassageSupplier
	results   ResultStore
	saveTheme func(string) error

	sess   *session.Session
	phases *phase.Machine
	mode   model.Mode

	theme        theme.Theme
	styles       styles
	showKeyboard bool
	flash        keyboard.Flash
	pressed      rune

	animated   float64
	lastTarget float64
	lastSample time.Time

	width  int
	height int

	status      string
	statusIsErr bool

	lastOutcome *model.TestOutcome

	history     []model.TestOutcome
	historyTbl  table.Model
	showDetail  bool
	report      stats.Report
	modeTbl     table.Model
	progressBar progress.Model
	help        help.Model
}

// NewModel constructs a typing TUI model and loads the first passage.
func NewModel(cfg model.Config, passages PassageSupplier, results ResultStore, opts ...Option) (*Model, error) {
	m := &Model{
		ctx:          context.Background(),
		now:          time.Now,
		passages:     passages,
		results:      results,
		phases:       phase.New(),
		mode:         cfg.Mode,
		showKeyboard: cfg.ShowKeyboard,
		help:         help.New(),
		historyTbl:   table.New(table.WithFocused(true)),
		modeTbl:      table.New(table.WithFocused(true)),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.setTheme(theme.ByName(cfg.Theme))

	p, err := passages.Random(m.mode)
	if err != nil {
		return nil, fmt.Errorf("failed to load passage: %w", err)
	}
	m.sess = session.New(p, session.WithClock(m.now))
	m.lastSample = m.now()
	m.resize()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tickMsg:
		m.onTick()
		return m, tick()
	case SettingsMsg:
		m.applySettings(msg)
		return m, nil
	case tea.KeyMsg:
		for _, k := range input.FromTea(msg) {
			action := input.Resolve(k, m.phases.Current(), m.sess.IsComplete())
			if action.Kind == input.Quit {
				return m, tea.Quit
			}
			m.apply(action)
		}
		return m, nil
	default:
		return m, nil
	}
}

// onTick samples speed at most once per sampleInterval, advances the
// animated readout and expires the key flash.
func (m *Model) onTick() {
	now := m.now()
	m.pressed = m.flash.Active(now)
	if m.sess.IsComplete() {
		return
	}
	if now.Sub(m.lastSample) >= sampleInterval {
		m.lastSample = now
		m.sess.UpdateMetrics()
	}
	m.animated = metrics.Animate(m.animated, m.sess.Speed(), &m.lastTarget)
}

func (m *Model) apply(a input.Action) {
	switch a.Kind {
	case input.CycleMode:
		m.newPassage(m.mode.Next())
	case input.NewPassage:
		m.newPassage(m.mode)
	case input.Restart:
		m.sess.Restart()
		m.resetRun()
	case input.CycleTheme:
		m.cycleTheme()
	case input.ToggleKeyboard:
		m.showKeyboard = !m.showKeyboard
	case input.ShowHistory:
		m.loadHistory()
		m.phases.Transition(phase.History)
	case input.ShowStats:
		m.loadStats()
		m.phases.Transition(phase.Stats)
	case input.BackToTesting:
		m.phases.Transition(phase.Testing)
	case input.TypeChar:
		m.flash.Press(a.Char, m.now())
		m.pressed = m.flash.Active(m.now())
		if m.sess.TypeChar(a.Char) {
			m.finishTest()
		}
	case input.Backspace:
		m.sess.Backspace()
	case input.DeleteWord:
		m.sess.DeleteWord()
	case input.NavigateUp:
		m.navigate(-1)
	case input.NavigateDown:
		m.navigate(1)
	case input.Select:
		if m.phases.Current() == phase.History && len(m.history) > 0 {
			m.showDetail = !m.showDetail
		}
	}
}

// newPassage switches to a fresh passage of mode. When none is available the
// current session and mode stay in place and the error is surfaced.
func (m *Model) newPassage(mode model.Mode) {
	p, err := m.passages.Random(mode)
	if err != nil {
		slog.Warn("passage unavailable", "mode", mode.String(), "err", err)
		m.setError(err.Error())
		return
	}
	m.mode = mode
	m.sess.Reset(p)
	m.resetRun()
}

// resetRun clears per-attempt UI state for a fresh or restarted session.
func (m *Model) resetRun() {
	m.animated = 0
	m.lastTarget = 0
	m.lastSample = m.now()
	m.lastOutcome = nil
	m.phases = phase.New()
	m.clearStatus()
}

func (m *Model) finishTest() {
	outcome, ok := m.sess.Outcome(m.mode, m.now())
	if ok {
		m.lastOutcome = &outcome
		if err := m.results.SaveOutcome(m.ctx, outcome); err != nil {
			slog.Error("failed to save result", "mode", m.mode.String(), "err", err)
			m.setError(fmt.Sprintf("failed to save result: %v", err))
		} else {
			slog.Info("test complete", "mode", m.mode.String(), "speed", outcome.Speed, "accuracy", outcome.Accuracy)
		}
	}
	m.animated = m.sess.Speed()
	m.phases.Transition(phase.Results)
}

func (m *Model) cycleTheme() {
	m.setTheme(theme.Next(m.theme.Name))
	if m.saveTheme == nil {
		return
	}
	if err := m.saveTheme(m.theme.Name); err != nil {
		slog.Error("failed to save theme", "theme", m.theme.Name, "err", err)
		m.setError(fmt.Sprintf("failed to save theme: %v", err))
	}
}

func (m *Model) setTheme(th theme.Theme) {
	m.theme = th
	m.styles = newStyles(th)
	m.progressBar = progress.New(
		progress.WithSolidFill(string(th.Speed)),
		progress.WithoutPercentage(),
		progress.WithWidth(m.progressBar.Width),
	)
	m.help.Styles.ShortKey = m.styles.key
	m.help.Styles.ShortDesc = m.styles.muted
	m.help.Styles.ShortSeparator = m.styles.muted
	m.historyTbl.SetStyles(m.styles.table)
	m.modeTbl.SetStyles(m.styles.table)
}

func (m *Model) applySettings(msg SettingsMsg) {
	if msg.Theme != nil {
		if th, ok := theme.Lookup(*msg.Theme); ok && th.Name != m.theme.Name {
			m.setTheme(th)
		}
	}
	if msg.ShowKeyboard != nil {
		m.showKeyboard = *msg.ShowKeyboard
	}
}

func (m *Model) loadHistory() {
	m.showDetail = false
	outcomes, err := m.results.RecentOutcomes(m.ctx, historyLimit)
	if err != nil {
		slog.Error("failed to load history", "err", err)
		m.setError(fmt.Sprintf("failed to load history: %v", err))
		outcomes = nil
	}
	m.history = outcomes
	rows := stats.HistoryRows(outcomes, m.now())
	m.historyTbl.SetColumns(fitColumns(stats.HistoryHeaders, rows))
	m.historyTbl.SetRows(toRows(rows))
	m.historyTbl.SetCursor(0)
	m.resize()
}

func (m *Model) loadStats() {
	report, err := stats.BuildReport(m.ctx, m.results, historyLimit)
	if err != nil {
		slog.Error("failed to load stats", "err", err)
		m.setError(err.Error())
	}
	m.report = report
	rows := stats.ModeRows(report.Modes)
	m.modeTbl.SetColumns(fitColumns(stats.ModeHeaders, rows))
	m.modeTbl.SetRows(toRows(rows))
	m.modeTbl.SetCursor(0)
	m.resize()
}

func (m *Model) navigate(delta int) {
	tbl := &m.historyTbl
	if m.phases.Current() == phase.Stats {
		tbl = &m.modeTbl
	}
	if delta < 0 {
		tbl.MoveUp(-delta)
	} else {
		tbl.MoveDown(delta)
	}
}

func (m *Model) resize() {
	w := m.contentWidth()
	m.progressBar.Width = w
	m.help.Width = m.width
	m.historyTbl.SetWidth(w)
	m.modeTbl.SetWidth(w)
	if m.height > 0 {
		h := m.height - 8
		if h < 3 {
			h = 3
		}
		m.historyTbl.SetHeight(h)
		m.modeTbl.SetHeight(len(model.Modes) + 1)
	}
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusIsErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusIsErr = false
}

// Mode returns the active passage mode.
func (m *Model) Mode() model.Mode {
	return m.mode
}

// Phase returns the active screen.
func (m *Model) Phase() phase.Phase {
	return m.phases.Current()
}

// Session exposes the current typing session for inspection.
func (m *Model) Session() *session.Session {
	return m.sess
}

// ThemeName returns the active theme name.
func (m *Model) ThemeName() string {
	return m.theme.Name
}
