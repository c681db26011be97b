package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuitype/internal/config"
	"github.com/verte-zerg/tuitype/internal/model"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool     { return &b }

func TestBuildConfig(t *testing.T) {
	cfg, err := buildConfig("Medium", "mocha", true, "  quotes.json ")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if cfg.Mode != model.ModeMedium || cfg.Theme != "catppuccin-mocha" || !cfg.ShowKeyboard || cfg.QuotesFile != "quotes.json" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if _, err := buildConfig("huge", "dark", false, ""); err == nil {
		t.Fatalf("expected mode error")
	}
	if _, err := buildConfig("short", "neon", false, ""); err == nil || !strings.Contains(err.Error(), "neon") {
		t.Fatalf("expected theme error, got %v", err)
	}
}

func TestApplyConfigRespectsFlags(t *testing.T) {
	var mode string
	var keyboard bool
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&mode, "mode", "short", "")
	cmd.Flags().BoolVar(&keyboard, "keyboard", false, "")
	if err := cmd.Flags().Parse([]string{"--mode", "long"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	applyStringConfig(cmd, "mode", &mode, strPtr("medium"))
	applyBoolConfig(cmd, "keyboard", &keyboard, boolPtr(true))
	if mode != "long" {
		t.Fatalf("flag should win over config, got %q", mode)
	}
	if !keyboard {
		t.Fatalf("config should apply when flag unset")
	}

	applyBoolConfig(cmd, "keyboard", &keyboard, nil)
	if !keyboard {
		t.Fatalf("nil config value should leave target alone")
	}
}

func TestSettingsDiff(t *testing.T) {
	prev := config.PracticeConfig{Theme: strPtr("dark"), Keyboard: boolPtr(false)}

	if _, changed := settingsDiff(prev, prev); changed {
		t.Fatalf("identical configs should not produce a change")
	}

	msg, changed := settingsDiff(prev, config.PracticeConfig{Theme: strPtr("nord"), Keyboard: boolPtr(false)})
	if !changed || msg.Theme == nil || *msg.Theme != "nord" || msg.ShowKeyboard != nil {
		t.Fatalf("unexpected theme diff %+v", msg)
	}

	msg, changed = settingsDiff(config.PracticeConfig{}, config.PracticeConfig{Keyboard: boolPtr(true)})
	if !changed || msg.ShowKeyboard == nil || !*msg.ShowKeyboard || msg.Theme != nil {
		t.Fatalf("unexpected keyboard diff %+v", msg)
	}

	if _, changed := settingsDiff(prev, config.PracticeConfig{}); changed {
		t.Fatalf("removed keys should not produce a change")
	}
}

func TestWriteQuoteCounts(t *testing.T) {
	var buf bytes.Buffer
	counts := map[model.Mode]int{model.ModeShort: 3, model.ModeLong: 1}
	if err := writeQuoteCounts(&buf, counts, 4); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "short") || !strings.Contains(lines[0], "0-99") || !strings.HasSuffix(lines[0], "3") {
		t.Fatalf("unexpected short line %q", lines[0])
	}
	if !strings.Contains(lines[1], "101-299") || !strings.HasSuffix(lines[1], "0") {
		t.Fatalf("unexpected medium line %q", lines[1])
	}
	if !strings.Contains(lines[2], "301+") {
		t.Fatalf("unexpected long line %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "total") || !strings.HasSuffix(lines[3], "4") {
		t.Fatalf("unexpected total line %q", lines[3])
	}
}

func TestLoadQuotesFromFile(t *testing.T) {
	if _, err := loadQuotes("/nonexistent/quotes.txt"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	m, err := loadQuotes("")
	if err != nil {
		t.Fatalf("embedded: %v", err)
	}
	if m.Len() == 0 {
		t.Fatalf("expected embedded passages")
	}
}
