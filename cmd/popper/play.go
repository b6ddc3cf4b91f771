package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-popper/internal/audio"
	"github.com/vovakirdan/tui-popper/internal/core"
	"github.com/vovakirdan/tui-popper/internal/games/popper"
	"github.com/vovakirdan/tui-popper/internal/platform/tui"
	"github.com/vovakirdan/tui-popper/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of popper directly, skipping the menu.

Controls:
  A/D, Left/Right    - Rotate aim
  Mouse              - Aim at the pointer
  Space/Enter/Click  - Fire
  P/Esc              - Pause
  R                  - Restart (after game over)
  M                  - Toggle sound
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slow chain, fewer spheres
  normal - Stock chain
  hard   - Fast chain, more spheres
  fixed  - Use the config values as written

Examples:
  popper play
  popper play --difficulty hard
  popper play --seed 42
  popper play --config ./my-popper.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	var sound *audio.Manager
	defer func() {
		if sound != nil {
			sound.Cleanup()
		}
	}()

	gameCfg, preset, err := loadGameConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sound = newSound(gameCfg.Audio, logger)

	game := popper.New(gameCfg, string(preset))
	if err := runGame(game, runtimeConfig(), store, sound, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// runGame plays until the user quits the game screen.
func runGame(game tui.Game, cfg core.RuntimeConfig, store *storage.Store, sound *audio.Manager, logger *log.Logger) error {
	logger.Debug("starting game", "difficulty", game.Difficulty(), "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	return tui.Run(game, cfg, tui.Options{
		Store:  store,
		Sound:  soundPlayer(sound),
		Logger: logger,
	})
}
