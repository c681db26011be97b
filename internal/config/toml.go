// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
}

// PracticeConfig maps practice-related settings. Nil fields were not set.
type PracticeConfig struct {
	Theme      *string `toml:"theme,omitempty"`
	Mode       *string `toml:"mode,omitempty"`
	Keyboard   *bool   `toml:"keyboard,omitempty"`
	QuotesFile *string `toml:"quotes-file,omitempty"`
}

// Template is written when the config command creates a new file.
const Template = `# tuitype configuration

[practice]
# theme = "dark"        # dark, light, nord, dracula, solarized, catppuccin-mocha
# mode = "short"        # short, medium, long
# keyboard = false      # show the on-screen keyboard
# quotes-file = ""      # .json, .yaml, .txt, optionally .zst compressed
`

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path atomically, creating parent directories.
func SaveConfig(path string, cfg FileConfig) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp config: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		if rerr := os.Remove(tmpName); rerr != nil {
			// Best-effort cleanup of the temp file.
			_ = rerr
		}
	}
	if err := toml.NewEncoder(tmp).Encode(cfg); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}

// SaveTheme persists the theme while keeping the other settings.
func SaveTheme(path, theme string) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	cfg.Practice.Theme = &theme
	return SaveConfig(path, cfg)
}

// EnsureFile creates path from Template when it does not exist yet.
func EnsureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return fmt.Errorf("failed to write config template: %w", err)
	}
	return nil
}
