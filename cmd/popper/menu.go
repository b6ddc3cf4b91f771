package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-popper/internal/audio"
	"github.com/vovakirdan/tui-popper/internal/games/popper"
	"github.com/vovakirdan/tui-popper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start popper with the title menu",
	Long: `Start popper in interactive menu mode.

Pick a difficulty to play or open the high scores.
After a round you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  popper menu
  popper menu --fps 30
  popper menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Fail early on a broken config or flag instead of after the menu.
	if _, _, err := loadGameConfig(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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

	cfg := runtimeConfig()
	lastDifficulty := flagDifficulty

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, lastDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		lastDifficulty = menuResult.Difficulty
		gameCfg, preset, cfgErr := loadGameConfig(menuResult.Difficulty)
		if cfgErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cfgErr)
			break
		}
		if sound == nil {
			sound = newSound(gameCfg.Audio, logger)
		}

		game := popper.New(gameCfg, string(preset))
		if runErr := runGame(game, cfg, store, sound, logger); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			break
		}
	}
}
