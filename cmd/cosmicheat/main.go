// cosmicheat is a vertical-scrolling space shooter for the terminal.
//
// Usage:
//
//	cosmicheat play [difficulty]    - Play a round
//	cosmicheat menu                 - Start menu to pick difficulty and view scores
//	cosmicheat serve                - Start SSH server for remote play
//	cosmicheat scores [difficulty]  - Show high scores
//	cosmicheat list                 - List playable modes
//	cosmicheat simulate             - Run the autopilot headless
//	cosmicheat config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.cosmic-heat/scores.db)
//	--config <path>      - Load a custom YAML configuration
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cosmic-heat/internal/config"
	"github.com/vovakirdan/cosmic-heat/internal/core"
	"github.com/vovakirdan/cosmic-heat/internal/games/cosmic"
	"github.com/vovakirdan/cosmic-heat/internal/platform/audio"
	"github.com/vovakirdan/cosmic-heat/internal/platform/tui"
	"github.com/vovakirdan/cosmic-heat/internal/sim"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
	flagVolume     float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cosmicheat",
	Short: "Cosmic Heat - a vertical space shooter in your terminal",
	Long: `Cosmic Heat is a vertical-scrolling space shooter. Dodge meteors and
black holes, shoot down enemy ships, collect ammo and health, and beat
three bosses as your score climbs.

Available commands:
  play      - Play a round directly
  menu      - Interactive menu with difficulty picker and scoreboard
  serve     - Start SSH server for remote play
  scores    - View high scores
  list      - Show playable modes
  simulate  - Run the autopilot without a terminal
  config    - Print the effective configuration

Examples:
  cosmicheat play
  cosmicheat play hard
  cosmicheat menu
  cosmicheat serve --ssh :2222
  cosmicheat simulate --ticks 36000 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cosmic.SetConfigPath(flagConfig)
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cosmic-heat/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", string(config.DifficultyNormal), "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", audio.DefaultVolume, "Sound volume from 0 to 1")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger shared by every command. Full-screen commands
// should log to a file so output does not tear the display.
func newLogger() (logger *log.Logger, done func(), err error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	done = func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		done = func() { f.Close() }
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "cosmic-heat",
		Level:           level,
	})
	return logger, done, nil
}

// quietLogger is used by the full-screen commands when no log file is set:
// only errors reach stderr.
func quietLogger(logger *log.Logger) *log.Logger {
	if flagLogFile == "" && logger.GetLevel() < log.ErrorLevel {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger
}

// preset returns the preset chosen by args or --difficulty.
func preset(args []string) (config.DifficultyPreset, error) {
	name := flagDifficulty
	if len(args) > 0 {
		name = args[0]
	}
	return config.ParsePreset(name)
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// keepOpen hides the Close method of a shared sink so a game's engine
// cannot release it.
type keepOpen struct {
	sim.AudioSink
}

// openSound opens the speaker unless muted. The returned toggler is nil
// when no device is in use.
func openSound(logger *log.Logger) (sim.AudioSink, tui.SoundToggler, io.Closer) {
	mute := audio.NewMute()
	if flagMute {
		return mute, nil, mute
	}
	board, err := audio.Open(min(max(flagVolume, 0), 1))
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return mute, nil, mute
	}
	return keepOpen{board}, board, board
}
