package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmic-heat/internal/config"
	"github.com/vovakirdan/cosmic-heat/internal/core"
	"github.com/vovakirdan/cosmic-heat/internal/games/cosmic"
	"github.com/vovakirdan/cosmic-heat/internal/platform/audio"
	"github.com/vovakirdan/cosmic-heat/internal/sim"
)

var (
	flagSimTicks    int
	flagSimRender   int
	flagSimRealtime bool
	flagSimWidth    int
	flagSimHeight   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot without a terminal UI",
	Long: `Run the simulation headless, steered by the built-in autopilot, and
print a summary. The same seed, config and difficulty always produce the
same snapshot hash.

Examples:
  cosmicheat simulate
  cosmicheat simulate --ticks 36000 --seed 7 --difficulty hard
  cosmicheat simulate --render 600 --width 60 --height 30
  cosmicheat simulate --realtime --log-level info`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagSimRender, "render", 0, "Print the playfield every N ticks (0 = never)")
	simulateCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Run at --fps instead of as fast as possible")
	simulateCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Render width in cells")
	simulateCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Render height in cells")
}

// simStats accumulates what happened during a headless run.
type simStats struct {
	events      map[sim.EventKind]int
	finalScores []int
	ticks       int
}

func (s *simStats) observe(res sim.StepResult) {
	s.ticks++
	for _, ev := range res.Events {
		s.events[ev.Kind]++
	}
	if res.Lost {
		s.finalScores = append(s.finalScores, res.FinalScore)
	}
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}
	p, err := preset(nil)
	if err != nil {
		return err
	}

	logger, done, err := newLogger()
	if err != nil {
		return err
	}
	defer done()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, p)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cues := audio.NewMute()
	engine, err := sim.New(cfg,
		sim.WithSeed(seed),
		sim.WithAudio(cues),
		sim.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	stats := &simStats{events: make(map[sim.EventKind]int)}
	loop := &sim.Loop{
		Engine: engine,
		Input:  cosmic.NewAutopilot(engine, flagSimTicks),
		OnTick: stats.observe,
	}
	if flagSimRealtime {
		loop.TickRate = flagFPS
	}

	if flagSimRender > 0 {
		renderer := cosmic.NewRenderer(cfg.Playfield.Width, cfg.Playfield.Height)
		screen := core.NewScreen(flagSimWidth, flagSimHeight)
		loop.Drawer = renderer
		loop.Screen = screen
		loop.OnTick = func(res sim.StepResult) {
			stats.observe(res)
			if stats.ticks%flagSimRender == 0 {
				renderer.DrawHUD(engine, screen)
				fmt.Fprintf(os.Stdout, "--- tick %d ---\n%s\n", res.Tick, screen.String())
			}
		}
	}

	start := time.Now()
	if err := loop.Run(); err != nil {
		return err
	}

	printSummary(os.Stdout, engine, stats, cues, seed, p, time.Since(start))
	return nil
}

func printSummary(w io.Writer, e *sim.Engine, stats *simStats, cues *audio.Mute, seed int64, p config.DifficultyPreset, elapsed time.Duration) {
	snap := e.Snapshot()

	fmt.Fprintf(w, "Cosmic Heat simulation (%s, seed %d)\n\n", p, seed)
	fmt.Fprintf(w, "  Ticks:            %d (%s)\n", stats.ticks, elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  Score:            %d\n", e.Score())
	fmt.Fprintf(w, "  Health / Ammo:    %d / %d\n", e.Health(), e.Ammo())
	fmt.Fprintf(w, "  Rounds lost:      %d %v\n", len(stats.finalScores), stats.finalScores)
	fmt.Fprintf(w, "  Session best:     %d\n", e.HighScore())
	fmt.Fprintf(w, "  Hazards shot:     %d\n", stats.events[sim.EventHazardDestroyed])
	fmt.Fprintf(w, "  Collisions:       %d\n", stats.events[sim.EventHazardCollided]+stats.events[sim.EventPlayerHit])
	fmt.Fprintf(w, "  Pickups:          %d collected / %d dropped\n", stats.events[sim.EventPickupCollected], stats.events[sim.EventPickupDropped])
	fmt.Fprintf(w, "  Bosses defeated:  %d\n", stats.events[sim.EventBossDefeated])
	fmt.Fprintf(w, "  Victories:        %d\n", stats.events[sim.EventVictory])
	fmt.Fprintf(w, "  Sound cues:       %d\n", cues.Total())
	for tier := 1; tier <= len(e.State().Encounters); tier++ {
		b := e.Boss(tier)
		fmt.Fprintf(w, "  Boss %d:           %s", tier, b.State)
		if b.Active {
			fmt.Fprintf(w, " (%d/%d)", b.Health, b.MaxHealth)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "  Snapshot hash:    %016x\n", snap.Hash())
}
