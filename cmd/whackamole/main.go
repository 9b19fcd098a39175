// whackamole runs a 3x3 whack-a-mole cabinet.
//
// Usage:
//
//	whackamole list              - List available boards
//	whackamole play [board]      - Run the cabinet on a board (default from config)
//	whackamole simulate          - Autoplay games on a virtual clock and print the scores
//	whackamole config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.whackamole/config.yaml, ./configs/whackamole.yaml)
//	--seed <value>      - RNG seed for reproducible games
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/whackamole/internal/config"

	// Import boards to register them
	_ "github.com/vovakirdan/whackamole/internal/platform/headless"
	_ "github.com/vovakirdan/whackamole/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "whackamole",
	Short: "Whack-a-mole cabinet",
	Long: `Runs a 3x3 whack-a-mole cabinet: moles light up, hit their key before
they turn red and escape. Ten hits clear a round and speed up the spawns.

Available commands:
  list      - Show all boards
  play      - Run the cabinet
  simulate  - Let the autoplayer play on a virtual clock
  config    - Print the effective configuration

Examples:
  whackamole play
  whackamole play headless --log-level debug
  whackamole simulate --games 50 --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings loads the config file and applies global flag overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}
	if flagSeed != 0 {
		settings.Seed = flagSeed
	}
	if flagLogLevel != "" {
		settings.Log.Level = flagLogLevel
	}
	return settings, settings.Validate()
}

// resolveSeed turns the "0 = random" convention into a concrete seed.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
