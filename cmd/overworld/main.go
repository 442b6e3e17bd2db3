// overworld is a terminal tile-world explorer: walk a scrollable map with
// the arrow keys, locally or over SSH, and pick up where you left off.
//
// Usage:
//
//	overworld list              - List built-in worlds
//	overworld tiles             - Show the terrain atlas
//	overworld play              - Explore a world
//	overworld serve             - Start SSH server for remote play
//	overworld position          - Show or reset the saved position
//	overworld snapshot          - Render the current view to a PNG
//
// Global flags:
//
//	--world <id>        - World to load (default from config)
//	--world-file <path> - Load a world from a YAML file instead
//	--config <path>     - Custom config YAML
//	--db <dsn>          - SQLite path or postgres:// URL (default: ~/.overworld/overworld.db)
//	--seed <value>      - Weather RNG seed
//	--fps <rate>        - Weather animation rate
//	--log <path>        - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import worlds to register them
	_ "github.com/vovakirdan/tui-overworld/internal/worlds"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagWorld     string
	flagWorldFile string
	flagLogPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "overworld",
	Short: "Overworld - explore a tile world in your terminal",
	Long: `Overworld renders a scrollable tile map in the terminal with a single
explorer you move one tile at a time. Your position is saved after every
step and restored on the next run.

Available commands:
  list      - Show built-in worlds
  tiles     - Show the terrain atlas
  play      - Explore a world
  serve     - Start SSH server for remote play
  position  - Show or reset the saved position
  snapshot  - Render the current view to a PNG

Examples:
  overworld play
  overworld play --world islet
  overworld play --world-file ./my-world.yaml
  overworld serve --ssh :2222
  overworld position reset`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Weather animation rate (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Weather RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.overworld/overworld.db", "SQLite path or postgres:// URL")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagWorld, "world", "", "World id (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagWorldFile, "world-file", "", "Path to a world definition YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tilesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(positionCmd)
	rootCmd.AddCommand(snapshotCmd)
}
