package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/whackamole/internal/config"
	"github.com/vovakirdan/whackamole/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the boards the cabinet can run on",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		settings = config.DefaultSettings()
	}
	fmt.Println(boardTable(registry.List(), settings.Board))
}

// boardTable renders the registered boards, marking the one play starts by default.
func boardTable(boards []registry.BoardInfo, defaultBoard string) string {
	if len(boards) == 0 {
		return "No boards registered."
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("Board", "Description", "").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, b := range boards {
		mark := ""
		if b.ID == defaultBoard {
			mark = "(default)"
		}
		t.Row(b.ID, b.Title, mark)
	}
	return t.String() + "\nStart one with 'whackamole play <board>'."
}
