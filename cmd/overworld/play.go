package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-overworld/internal/platform/tui"
	"github.com/vovakirdan/tui-overworld/internal/player"
)

var flagNoSnapshots bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore a world",
	Long: `Open the world in the terminal and explore it.

Controls:
  Arrows / WASD / HJKL  - Move one tile
  Ctrl+S                - Save a PNG snapshot to ~/.overworld/screenshots
  ?                     - Toggle full help
  Q / Ctrl+C            - Quit

Your position is saved after every move.

Examples:
  overworld play
  overworld play --world islet
  overworld play --world-file ./my-world.yaml
  overworld play --config ./rainy.yaml --fps 12`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoSnapshots, "no-snapshots", false, "Disable Ctrl+S snapshots")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The TUI owns the terminal; logs go to --log or nowhere.
	logger, closeLog := newLogger(io.Discard, "overworld")
	defer closeLog()

	store := openStore(logger)
	env := newEnvironment(store, logger)

	// Warn early when the terminal cannot fit the viewport
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW := env.Config.Viewport.Width / env.Config.Display.Scale
		needH := env.Config.Viewport.Height / (2 * env.Config.Display.Scale)
		if w < needW || h < needH {
			logger.Warn("terminal smaller than viewport", "width", w, "height", h, "need_width", needW, "need_height", needH)
		}
	}

	key := env.Config.SessionKey
	if key == "" {
		key = player.DefaultKey
	}
	snapshotDir := tui.DefaultSnapshotDir()
	if flagNoSnapshots {
		snapshotDir = ""
	}

	runErr := tui.Run(env, tui.Options{
		Key:         key,
		Seed:        flagSeed,
		TickRate:    flagFPS,
		SnapshotDir: snapshotDir,
	})

	// Flush pending positions before potential exit
	if err := store.Close(); err != nil {
		logger.Warn("could not save position", "error", err)
	}

	if runErr != nil {
		fatal("%v", runErr)
	}
}
