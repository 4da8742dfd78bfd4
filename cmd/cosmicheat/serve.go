package main

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmic-heat/internal/config"
	"github.com/vovakirdan/cosmic-heat/internal/games/cosmic"
	"github.com/vovakirdan/cosmic-heat/internal/platform/audio"
	"github.com/vovakirdan/cosmic-heat/internal/platform/tui"
	"github.com/vovakirdan/cosmic-heat/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Cosmic Heat SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the menu and scoreboard.
Scores are stored per-server (all users share the same leaderboard).
Remote sessions are silent.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.cosmic-heat/host_key

Examples:
  cosmicheat serve                           # Listen on :23234 with auto-generated key
  cosmicheat serve --ssh :2222               # Listen on port 2222
  cosmicheat serve --host-key ./my_host_key  # Use specific host key
  cosmicheat serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	p, err := preset(nil)
	if err != nil {
		return err
	}

	logger, done, err := newLogger()
	if err != nil {
		return err
	}
	defer done()
	if logger.GetLevel() > log.InfoLevel {
		logger.SetLevel(log.InfoLevel)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		DefaultMode: cosmic.ModeID(p),
		NewGame:     sessionGame,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Cosmic Heat SSH server on %s\n", cfg.Address)
	if _, port, err := net.SplitHostPort(cfg.Address); err == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// sessionGame builds a silent game for a remote player.
func sessionGame(modeID string, logger *log.Logger) (registry.Game, error) {
	if !registry.Exists(modeID) {
		return nil, fmt.Errorf("unknown mode %q", modeID)
	}
	p, err := config.ParsePreset(strings.TrimPrefix(modeID, "cosmic/"))
	if err != nil {
		return nil, err
	}
	return cosmic.New(p, cosmic.WithAudio(audio.NewMute()), cosmic.WithLogger(logger)), nil
}
