package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/whackamole/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Run the cabinet",
	Long: `Start the cabinet on the given board, or on the board named in the config.

Controls (tui board):
  0-8        - Whack the hole with that label (0 is top left)
  Any key    - Start a game from the "Hit a key!" screen
  ?          - Toggle help
  Q/Ctrl+C   - Quit

The tui board logs to ~/.whackamole/whackamole.log unless log.file is set.

Examples:
  whackamole play
  whackamole play tui --seed 42
  whackamole play headless --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	boardID := settings.Board
	if len(args) == 1 {
		boardID = args[0]
	}
	if !registry.Exists(boardID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", boardID)
		fmt.Fprintln(os.Stderr, "Run 'whackamole list' to see available boards.")
		os.Exit(1)
	}

	interactive := boardID == "tui"
	if interactive && !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: the tui board needs a terminal; try 'whackamole play headless'")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(settings, interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	board, err := registry.Create(boardID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating board: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		// A second interrupt kills the process.
		<-ctx.Done()
		stop()
	}()

	seed := resolveSeed(settings.Seed)
	logger.Info("cabinet starting", "board", boardID, "seed", seed)

	result, err := board.Play(ctx, registry.Options{
		Settings: settings,
		Seed:     seed,
		Logger:   logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("cabinet stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", err)
		os.Exit(1)
	}

	logger.Info("cabinet stopped", "games", len(result.Games), "best", result.Best())
	if len(result.Games) > 0 {
		fmt.Printf("Played %d games, best score %d\n", len(result.Games), result.Best())
	}
}
