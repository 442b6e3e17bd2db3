package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-overworld/internal/platform/tui"
	"github.com/vovakirdan/tui-overworld/internal/player"
)

var (
	flagUser string
	flagAll  bool
)

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Show or reset the saved position",
	Long: `Inspect or clear saved explorer positions.

Without --user the local play position is used; --user selects the
position of an SSH user.

Examples:
  overworld position show
  overworld position show --all
  overworld position show --user alice
  overworld position reset`,
}

var positionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved position",
	Args:  cobra.NoArgs,
	Run:   runPositionShow,
}

var positionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved position so the next run starts at the spawn",
	Args:  cobra.NoArgs,
	Run:   runPositionReset,
}

func init() {
	positionCmd.PersistentFlags().StringVar(&flagUser, "user", "", "SSH user name")
	positionShowCmd.Flags().BoolVar(&flagAll, "all", false, "List every saved position")

	positionCmd.AddCommand(positionShowCmd)
	positionCmd.AddCommand(positionResetCmd)
}

// positionKey returns the storage key selected by --user.
func positionKey(localKey string) string {
	if flagUser != "" {
		return tui.SessionKey(flagUser)
	}
	if localKey == "" {
		return player.DefaultKey
	}
	return localKey
}

func runPositionShow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openDirectStore()
	defer store.Close()

	if flagAll {
		entries, err := store.Entries(player.DefaultKey)
		if err != nil {
			fatal("listing positions: %v", err)
		}
		if len(entries) == 0 {
			fmt.Println("No saved positions.")
			return
		}

		fmt.Printf("  %-24s  %-12s  %-10s  %s\n", "Key", "Pixels", "Tile", "Updated")
		fmt.Printf("  %-24s  %-12s  %-10s  %s\n", "---", "------", "----", "-------")
		for _, e := range entries {
			px, tile := "invalid", "-"
			if pos, err := player.DecodePosition(e.Value); err == nil {
				px = fmt.Sprintf("%d,%d", pos.X, pos.Y)
				tile = fmt.Sprintf("%d,%d", pos.X/cfg.TileSize, pos.Y/cfg.TileSize)
			}
			updated := "-"
			if !e.UpdatedAt.IsZero() {
				updated = e.UpdatedAt.Format("2006-01-02 15:04")
			}
			fmt.Printf("  %-24s  %-12s  %-10s  %s\n", displayKey(e.Key), px, tile, updated)
		}
		return
	}

	key := positionKey(cfg.SessionKey)
	raw, ok, err := store.Get(key)
	if err != nil {
		fatal("reading position: %v", err)
	}
	if !ok {
		fmt.Println("No saved position; the next run starts at the world spawn.")
		return
	}

	pos, err := player.DecodePosition(raw)
	if err != nil {
		fmt.Printf("Saved value %q is not a position; the next run starts at the world spawn.\n", raw)
		return
	}
	fmt.Printf("Pixels: %d,%d\n", pos.X, pos.Y)
	fmt.Printf("Tile:   %d,%d\n", pos.X/cfg.TileSize, pos.Y/cfg.TileSize)
}

func runPositionReset(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openDirectStore()
	defer store.Close()

	key := positionKey(cfg.SessionKey)
	if err := store.Delete(key); err != nil {
		fatal("resetting position: %v", err)
	}
	fmt.Printf("Position %s reset.\n", displayKey(key))
}

// displayKey shortens per-user keys to the user name.
func displayKey(key string) string {
	if user, ok := strings.CutPrefix(key, player.DefaultKey+":"); ok {
		return "user " + user
	}
	if key == player.DefaultKey {
		return "local"
	}
	return key
}
