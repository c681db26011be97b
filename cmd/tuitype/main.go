// Package main provides the CLI entrypoint for tuitype.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuitype/internal/config"
	"github.com/verte-zerg/tuitype/internal/model"
	"github.com/verte-zerg/tuitype/internal/quotes"
	"github.com/verte-zerg/tuitype/internal/stats"
	"github.com/verte-zerg/tuitype/internal/store"
	"github.com/verte-zerg/tuitype/internal/theme"
	"github.com/verte-zerg/tuitype/internal/tui"
)

const (
	defaultMode        = "short"
	defaultHistoryLast = 20
	defaultStatsLast   = 50
	defaultTrendWindow = 5
	defaultTermWidth   = 80
)

var (
	practiceMode     string
	practiceTheme    string
	practiceKeyboard bool
	quotesFile       string

	historyLast int

	statsLast   int
	statsWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuitype",
		Short:         "TUI typing speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceMode, "mode", defaultMode, "passage length: short, medium or long")
	rootCmd.Flags().StringVar(&practiceTheme, "theme", theme.Default, "color theme ("+strings.Join(theme.Names(), ", ")+")")
	rootCmd.Flags().BoolVar(&practiceKeyboard, "keyboard", false, "show the on-screen keyboard")
	rootCmd.PersistentFlags().StringVar(&quotesFile, "quotes", "", "custom quote file (.json, .yaml, .txt, optionally .zst)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newQuotesCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	if !isInteractive() {
		return fmt.Errorf("practice needs an interactive terminal; try the history or stats commands")
	}
	cfgPath := config.DefaultConfigPath()
	fileCfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	applyStringConfig(cmd, "theme", &practiceTheme, fileCfg.Practice.Theme)
	applyBoolConfig(cmd, "keyboard", &practiceKeyboard, fileCfg.Practice.Keyboard)
	applyStringConfig(cmd, "quotes", &quotesFile, fileCfg.Practice.QuotesFile)

	cfg, err := buildConfig(practiceMode, practiceTheme, practiceKeyboard, quotesFile)
	if err != nil {
		return err
	}
	cfg.ConfigPath = cfgPath

	closeLog, err := setupLogging(config.DefaultLogPath())
	if err != nil {
		return err
	}
	defer closeLog()

	passages, err := loadQuotes(cfg.QuotesFile)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m, err := tui.NewModel(cfg, passages, st,
		tui.WithContext(ctx),
		tui.WithThemeSaver(func(name string) error {
			return config.SaveTheme(cfgPath, name)
		}),
	)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if watcher, err := watchConfig(cfgPath, fileCfg.Practice, program); err != nil {
		slog.Warn("config live reload disabled", "path", cfgPath, "err", err)
	} else {
		defer func() {
			if cerr := watcher.Close(); cerr != nil {
				// Best-effort watcher shutdown.
				_ = cerr
			}
		}()
	}

	slog.Info("starting practice", "mode", cfg.Mode.String(), "theme", cfg.Theme, "passages", passages.Len())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// buildConfig validates resolved flag values.
func buildConfig(modeName, themeName string, keyboard bool, quotesPath string) (model.Config, error) {
	mode, err := model.ParseMode(modeName)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid --mode: %w", err)
	}
	th, ok := theme.Lookup(themeName)
	if !ok {
		return model.Config{}, fmt.Errorf("unknown theme %q (available: %s)", themeName, strings.Join(theme.Names(), ", "))
	}
	return model.Config{
		Mode:         mode,
		Theme:        th.Name,
		ShowKeyboard: keyboard,
		QuotesFile:   strings.TrimSpace(quotesPath),
	}, nil
}

// setupLogging routes slog to a file so the TUI screen stays clean.
func setupLogging(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "tuitype")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})))
	return func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort log close.
			_ = cerr
		}
	}, nil
}

func loadQuotes(path string) (*quotes.Manager, error) {
	seed := quotes.WithSeed(time.Now().UnixNano())
	if path == "" {
		m, err := quotes.Embedded(seed)
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded quotes: %w", err)
		}
		return m, nil
	}
	passages, err := quotes.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if len(passages) == 0 {
		return nil, fmt.Errorf("quote file %s has no passages", path)
	}
	return quotes.NewManager(passages, seed), nil
}

// watchConfig forwards edits of the config file to the running program.
func watchConfig(path string, initial config.PracticeConfig, program *tea.Program) (*config.Watcher, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config dir: %w", err)
	}
	var mu sync.Mutex
	prev := initial
	return config.Watch(path, func(fc config.FileConfig) {
		mu.Lock()
		msg, changed := settingsDiff(prev, fc.Practice)
		prev = fc.Practice
		mu.Unlock()
		if changed {
			slog.Info("config reloaded", "path", path)
			program.Send(msg)
		}
	}, config.WithErrorHandler(func(err error) {
		slog.Warn("config reload failed", "path", path, "err", err)
	}))
}

// settingsDiff reports the live settings that differ between two reads of
// the config file. Unchanged keys stay nil.
func settingsDiff(prev, next config.PracticeConfig) (tui.SettingsMsg, bool) {
	var msg tui.SettingsMsg
	changed := false
	if next.Theme != nil && (prev.Theme == nil || *prev.Theme != *next.Theme) {
		v := *next.Theme
		msg.Theme = &v
		changed = true
	}
	if next.Keyboard != nil && (prev.Keyboard == nil || *prev.Keyboard != *next.Keyboard) {
		v := *next.Keyboard
		msg.ShowKeyboard = &v
		changed = true
	}
	return msg, changed
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := config.EnsureFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent results",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", defaultHistoryLast, "number of results to show")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLast <= 0 {
		return fmt.Errorf("--last must be > 0")
	}
	return withStore(func(st *store.Store) error {
		outcomes, err := st.RecentOutcomes(cmd.Context(), historyLast)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		return stats.RenderHistory(cmd.OutOrStdout(), outcomes, time.Now())
	})
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsLast, "last", defaultStatsLast, "results used for the trend lines")
	cmd.Flags().IntVar(&statsWindow, "window", defaultTrendWindow, "moving average window")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if statsWindow <= 0 {
		return fmt.Errorf("--window must be > 0")
	}
	return withStore(func(st *store.Store) error {
		report, err := stats.BuildReport(cmd.Context(), st, statsLast)
		if err != nil {
			return err
		}
		return stats.Render(cmd.OutOrStdout(), report, statsWindow, terminalWidth(cmd.OutOrStdout()))
	})
}

func newQuotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quotes",
		Short: "Show passage counts per mode",
		Args:  cobra.NoArgs,
		RunE:  runQuotesCmd,
	}
}

func runQuotesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "quotes", &quotesFile, fileCfg.Practice.QuotesFile)
	m, err := loadQuotes(strings.TrimSpace(quotesFile))
	if err != nil {
		return err
	}
	return writeQuoteCounts(cmd.OutOrStdout(), m.CountByMode(), m.Len())
}

func writeQuoteCounts(w io.Writer, counts map[model.Mode]int, total int) error {
	for _, mode := range model.Modes {
		lo, hi := mode.LengthRange()
		bucket := fmt.Sprintf("%d-%d", lo, hi-1)
		if mode == model.ModeLong {
			bucket = fmt.Sprintf("%d+", lo)
		}
		if _, err := fmt.Fprintf(w, "%-7s %-8s %5d\n", mode.String(), bucket, counts[mode]); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "%-16s %5d\n", "total", total); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func withStore(fn func(st *store.Store) error) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return fn(st)
}

func isInteractive() bool {
	return (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) &&
		(isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
