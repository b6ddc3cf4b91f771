package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-popper/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the default configuration as YAML. Save it to
~/.popper/configs/popper.yaml or ./configs/popper.yaml to customise the game.

With --effective, print the configuration after loading files and applying
the difficulty preset instead.

Examples:
  popper config > ~/.popper/configs/popper.yaml
  popper config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the resolved configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigEffective {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, _, err := loadGameConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
