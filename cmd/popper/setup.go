package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-popper/internal/audio"
	"github.com/vovakirdan/tui-popper/internal/config"
	"github.com/vovakirdan/tui-popper/internal/core"
	"github.com/vovakirdan/tui-popper/internal/platform/tui"
	"github.com/vovakirdan/tui-popper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger opens the log file. The terminal belongs to the game, so logs
// never go to stderr while it runs. An empty path discards everything.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	cleanup := func() {}
	if path != "" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "popper",
		Level:           lvl,
	})
	return logger, cleanup, nil
}

// resolveDifficulty picks the preset. A custom config file defaults to
// fixed so its values are used as written; otherwise normal.
func resolveDifficulty(name, configPath string) (config.DifficultyPreset, error) {
	if name == "" {
		if configPath != "" {
			return config.DifficultyFixed, nil
		}
		return config.DifficultyNormal, nil
	}
	return config.ParsePreset(name)
}

// loadGameConfig loads, tunes and validates the game configuration.
func loadGameConfig(difficulty string) (config.PopperConfig, config.DifficultyPreset, error) {
	preset, err := resolveDifficulty(difficulty, flagConfig)
	if err != nil {
		return config.PopperConfig{}, "", err
	}

	cfg, err := config.LoadPopper(flagConfig)
	if err != nil {
		return config.PopperConfig{}, "", err
	}
	config.ApplyPopperPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.PopperConfig{}, "", err
	}
	return cfg, preset, nil
}

// runtimeConfig builds the runtime settings from the terminal and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Failure is logged and play goes on
// without saving.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newSound opens the speaker when sound is enabled. It returns nil when there
// is no sound, and the caller must not treat that as an error.
func newSound(cfg config.AudioConfig, logger *log.Logger) *audio.Manager {
	if !cfg.Enabled {
		return nil
	}
	m := audio.NewManager(cfg.Volume)
	if err := m.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	if flagMute {
		m.ToggleMute()
	}
	return m
}

// soundPlayer converts a possibly nil manager into the model's option.
func soundPlayer(m *audio.Manager) tui.SoundPlayer {
	if m == nil {
		return nil
	}
	return m
}
