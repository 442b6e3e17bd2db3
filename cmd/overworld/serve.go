package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-overworld/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the overworld SSH server",
	Long: `Start an SSH server that lets users connect and explore the world.

Each SSH connection gets its own independent session. Positions are saved
per SSH user name, so reconnecting resumes where that user left off.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.overworld/host_key

Examples:
  overworld serve                           # Listen on :23235 with auto-generated key
  overworld serve --ssh :2222               # Listen on port 2222
  overworld serve --host-key ./my_host_key  # Use specific host key
  overworld serve --db postgres://localhost/overworld

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(os.Stderr, "overworld-ssh")
	defer closeLog()

	store := openStore(logger)
	env := newEnvironment(store, logger)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, env, logger)
	if err != nil {
		store.Close()
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting overworld SSH server on %s (world %s)\n", cfg.Address, env.World.ID)
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()

	if err := store.Close(); err != nil {
		logger.Warn("could not save positions", "error", err)
	}
	if serveErr != nil {
		fatal("server: %v", serveErr)
	}
}
