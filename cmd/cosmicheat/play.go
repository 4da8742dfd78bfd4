package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmic-heat/internal/config"
	"github.com/vovakirdan/cosmic-heat/internal/core"
	"github.com/vovakirdan/cosmic-heat/internal/games/cosmic"
	"github.com/vovakirdan/cosmic-heat/internal/platform/tui"
	"github.com/vovakirdan/cosmic-heat/internal/sim"
	"github.com/vovakirdan/cosmic-heat/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a round",
	Long: `Start playing Cosmic Heat.

Controls:
  W/A/S/D, arrows  - Move
  Space/F          - Fire
  P                - Pause
  R                - Skip the game over banner
  M                - Toggle sound
  B/Esc            - Back (while paused or after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Fewer spawns at every score
  normal  - The standard spawn rates
  hard    - More spawns at every score
  fixed   - No progression, rates stay at their base values

Examples:
  cosmicheat play
  cosmicheat play hard
  cosmicheat play --difficulty fixed --seed 42
  cosmicheat play --config ./my-cosmic.yaml --log-file cosmic.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	p, err := preset(args)
	if err != nil {
		return err
	}

	logger, done, err := newLogger()
	if err != nil {
		return err
	}
	defer done()
	logger = quietLogger(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sink, toggler, sound := openSound(logger)
	defer sound.Close()

	_, err = playMode(p, store, runtimeConfig(), sink, toggler, logger)
	return err
}

// playMode runs one mode until the player quits or goes back.
func playMode(p config.DifficultyPreset, store *storage.Store, cfg core.RuntimeConfig, sink sim.AudioSink, toggler tui.SoundToggler, logger *log.Logger) (backToMenu bool, err error) {
	game := cosmic.New(p, cosmic.WithAudio(sink), cosmic.WithLogger(logger))

	opts := []tui.GameOption{tui.WithLogger(logger)}
	if toggler != nil {
		opts = append(opts, tui.WithSound(toggler))
	}

	backToMenu, err = tui.Run(game, store, cfg, opts...)
	if err != nil {
		return false, fmt.Errorf("running game: %w", err)
	}
	return backToMenu, nil
}

// openStore opens the scores database. The game still runs without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
