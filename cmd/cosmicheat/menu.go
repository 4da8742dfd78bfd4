package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmic-heat/internal/config"
	"github.com/vovakirdan/cosmic-heat/internal/games/cosmic"
	"github.com/vovakirdan/cosmic-heat/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start Cosmic Heat in interactive menu mode.

Pick a difficulty with Left/Right, then Play or view the High Scores.
Going back from a paused or finished game returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  cosmicheat menu
  cosmicheat menu --fps 30
  cosmicheat menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	p, err := preset(nil)
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

	cfg := runtimeConfig()
	mode := cosmic.ModeID(p)

	for {
		result, err := tui.RunMenu(store, cfg, mode)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config
		if result.Quit || result.ModeID == "" {
			return nil
		}
		mode = result.ModeID

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, mode)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		selected, err := config.ParsePreset(strings.TrimPrefix(mode, "cosmic/"))
		if err != nil {
			return err
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		backToMenu, err := playMode(selected, store, cfg, sink, toggler, logger)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
