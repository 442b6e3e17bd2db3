package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Show the terrain atlas",
	Long: `Lists every tile code in the configured atlas with its name and color.
Codes that are not listed render in the error color.`,
	Args: cobra.NoArgs,
	Run:  runTiles,
}

func runTiles(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	atlas, err := cfg.Atlas()
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println("Terrain atlas:")
	fmt.Println()
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Code", "Swatch", "Color", "Name")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "------", "-----", "----")

	for _, e := range atlas.Entries() {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(e.Color.Hex())).Render("      ")
		fmt.Printf("  %-4s  %s  %-8s  %s\n", e.Code.String(), swatch, e.Color.Hex(), e.Name)
	}

	fmt.Println()
	fmt.Printf("Unknown codes: %s\n", atlas.ErrorColor().Hex())
}
