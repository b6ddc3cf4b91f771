// popper is a marble-popping game for the terminal: a chain of coloured
// spheres rolls along a spiral toward a pit and the player shoots spheres
// into it to pop runs of three or more.
//
// Usage:
//
//	popper                   - Start the title menu
//	popper play              - Start a round directly
//	popper scores            - Show high scores
//	popper config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.popper/scores.db)
//	--log-file <path>   - Set log file (default: ~/.popper/popper.log)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "popper",
	Short: "Popper - Pop the marble chain in your terminal",
	Long: `Popper is a terminal marble shooter. A chain of coloured spheres
rolls along a spiral toward the pit in the middle. Shoot spheres into the
chain; three or more of the same colour in a row pop. Clear the chain to
win, let it reach the pit and you lose.

Available commands:
  menu     - Title menu (default)
  play     - Start a round directly
  scores   - View high scores
  config   - Print the default configuration

Examples:
  popper
  popper play --difficulty hard
  popper play --config ./my-popper.yaml --difficulty fixed
  popper scores --difficulty easy`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.popper/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.popper/popper.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Game flags shared by the menu and play
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
