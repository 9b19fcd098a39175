package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/whackamole/internal/mole"
	"github.com/vovakirdan/whackamole/internal/platform/headless"
	"github.com/vovakirdan/whackamole/internal/registry"
)

var (
	flagGames    int
	flagReaction int
	flagAccuracy float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Autoplay games on a virtual clock",
	Long: `Plays games with the headless autoplayer on a virtual clock, so they
finish instantly, then prints a score table. The same seed always produces
the same games.

Examples:
  whackamole simulate
  whackamole simulate --games 100 --seed 7
  whackamole simulate --reaction 400 --accuracy 0.95`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 0, "Number of games (0 = headless.games from config)")
	simulateCmd.Flags().IntVar(&flagReaction, "reaction", -1, "Autoplayer reaction time in ms (-1 = from config)")
	simulateCmd.Flags().Float64Var(&flagAccuracy, "accuracy", -1, "Autoplayer accuracy 0-1 (-1 = from config)")
}

func runSimulate(cmd *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagGames > 0 {
		settings.Headless.Games = flagGames
	}
	if flagReaction >= 0 {
		settings.Headless.ReactionMS = flagReaction
	}
	if flagAccuracy >= 0 {
		settings.Headless.Accuracy = flagAccuracy
	}
	// Hundreds of virtual games would flood the terminal at info.
	if flagLogLevel == "" {
		settings.Log.Level = "warn"
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(settings, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		// A second interrupt kills the process.
		<-ctx.Done()
		stop()
	}()

	seed := resolveSeed(settings.Seed)
	result, err := headless.Simulate(ctx, registry.Options{
		Settings: settings,
		Seed:     seed,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation interrupted: %v\n", err)
	}

	fmt.Println(scoreTable(result.Games))
	fmt.Println(summary(result.Games, seed))
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("10")).Bold(true)
)

// scoreTable renders one row per game; the best game is highlighted.
func scoreTable(games []mole.GameReport) string {
	best := registry.Result{Games: games}.Best()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Game", "Score", "Round", "Duration", "Session").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(games) && games[row].Score == best:
				return bestStyle
			default:
				return cellStyle
			}
		})

	for i, g := range games {
		t.Row(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", g.Score),
			fmt.Sprintf("%d", g.Rounds),
			g.Duration.Duration().String(),
			shortID(g.Session),
		)
	}
	return t.String()
}

// summary renders the aggregate line printed under the table.
func summary(games []mole.GameReport, seed int64) string {
	if len(games) == 0 {
		return "No games finished."
	}
	var total uint64
	var best uint32
	for _, g := range games {
		total += uint64(g.Score)
		best = max(best, g.Score)
	}
	mean := float64(total) / float64(len(games))
	return fmt.Sprintf("%d games, best %d, mean %.1f (seed %d)", len(games), best, mean, seed)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
