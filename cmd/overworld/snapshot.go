package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-overworld/internal/platform/tui"
)

var (
	flagOut   string
	flagScale int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the current view to a PNG",
	Long: `Draws one frame at the saved position (or the world spawn) and writes it
as a PNG image, without opening the terminal UI.

Examples:
  overworld snapshot --out view.png
  overworld snapshot --world islet --scale 8 --out islet.png
  overworld snapshot --user alice --out alice.png`,
	Args: cobra.NoArgs,
	Run:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&flagOut, "out", "overworld.png", "Output PNG path")
	snapshotCmd.Flags().IntVar(&flagScale, "scale", 4, "Pixel enlargement factor")
	snapshotCmd.Flags().StringVar(&flagUser, "user", "", "Render an SSH user's position")
}

func runSnapshot(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(io.Discard, "overworld")
	defer closeLog()

	store := openDirectStore()
	defer store.Close()

	env := newEnvironment(store, logger)
	session, err := env.NewSession(positionKey(env.Config.SessionKey), flagSeed)
	if err != nil {
		fatal("%v", err)
	}

	if err := tui.WriteSnapshot(flagOut, session.Surface(), flagScale); err != nil {
		fatal("%v", err)
	}

	pos := session.Position()
	fmt.Printf("Wrote %s (%s at %d,%d)\n", flagOut, env.World.Name, pos.X, pos.Y)
}
