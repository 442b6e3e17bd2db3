package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-overworld/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in worlds",
	Long:  `Shows the worlds compiled into overworld.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	worlds := registry.List()

	if len(worlds) == 0 {
		fmt.Println("No worlds available.")
		return
	}

	fmt.Println("Available worlds:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, w := range worlds {
		if len(w.ID) > maxIDLen {
			maxIDLen = len(w.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "--", "----", "-----")

	for _, w := range worlds {
		size := "?"
		if m, err := registry.Create(w.ID); err == nil {
			size = fmt.Sprintf("%dx%d", m.Width(), m.Height())
		}
		fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, w.ID, size, w.Title)
	}

	fmt.Println()
	fmt.Println("Run 'overworld play --world <id>' to explore a world.")
}
