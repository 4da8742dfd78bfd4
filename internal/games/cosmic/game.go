// Package cosmic adapts the Cosmic Heat simulation to the arcade platform.
// It turns platform actions into engine input, shows the defeat and victory
// banners and draws the playfield into a character screen.
package cosmic

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cosmic-heat/internal/config"
	"github.com/vovakirdan/cosmic-heat/internal/core"
	"github.com/vovakirdan/cosmic-heat/internal/registry"
	"github.com/vovakirdan/cosmic-heat/internal/sim"
)

// Banner durations in ticks.
const (
	DefeatTicks  = 240
	VictoryTicks = 60
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// ModeID returns the registry ID of a difficulty preset.
func ModeID(p config.DifficultyPreset) string {
	return "cosmic/" + string(p)
}

// Game implements registry.Game on top of a sim.Engine.
type Game struct {
	preset   config.DifficultyPreset
	cfg      *config.Config // Fixed configuration; nil loads from disk on Reset
	engine   *sim.Engine
	renderer *Renderer
	audio    sim.AudioSink
	logger   *log.Logger
	runtime  core.RuntimeConfig
	banner   banner
}

// Option configures a Game.
type Option func(*Game)

// WithAudio routes sound cues to a.
func WithAudio(a sim.AudioSink) Option {
	return func(g *Game) { g.audio = a }
}

// WithLogger sets the logger handed to the engine.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithConfig uses cfg instead of loading the configuration on Reset.
// The preset is still applied on top of it.
func WithConfig(cfg config.Config) Option {
	return func(g *Game) { g.cfg = &cfg }
}

// New creates a game for the given difficulty preset.
func New(preset config.DifficultyPreset, opts ...Option) *Game {
	g := &Game{
		preset: preset,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return ModeID(g.preset)
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return title(g.preset)
}

func title(p config.DifficultyPreset) string {
	name := string(p)
	if name == "" {
		return "Cosmic Heat"
	}
	return "Cosmic Heat (" + strings.ToUpper(name[:1]) + name[1:] + ")"
}

// Reset starts a new session: configuration is reloaded and the high score cleared.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.banner = banner{}

	cfg := g.loadConfig()
	opts := []sim.Option{
		sim.WithSeed(runtime.Seed),
		sim.WithPresenter(g),
		sim.WithLogger(g.logger),
	}
	if g.audio != nil {
		opts = append(opts, sim.WithAudio(g.audio))
	}

	engine, err := sim.New(cfg, opts...)
	if err != nil {
		g.logger.Error("invalid configuration, using defaults", "err", err)
		cfg = config.DefaultConfig()
		config.ApplyPreset(&cfg, g.preset)
		engine, err = sim.New(cfg, opts...)
		if err != nil {
			g.logger.Error("default configuration rejected", "err", err)
		}
	}
	g.engine = engine
	g.renderer = NewRenderer(cfg.Playfield.Width, cfg.Playfield.Height)
}

func (g *Game) loadConfig() config.Config {
	var cfg config.Config
	if g.cfg != nil {
		cfg = *g.cfg
	} else {
		loaded, err := config.Load(configPath)
		if err != nil {
			g.logger.Warn("failed to load config, using defaults", "err", err)
			loaded = config.DefaultConfig()
		}
		cfg = loaded
	}
	if g.preset != "" {
		config.ApplyPreset(&cfg, g.preset)
	}
	return cfg
}

// Step advances the game by one tick. The simulation is frozen while a
// banner is up; Restart skips the defeat banner.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{}
	}

	if g.banner.active() {
		if g.banner.kind == bannerDefeat && in.Has(core.ActionRestart) {
			g.banner = banner{}
		} else {
			g.banner.tick()
		}
		return core.StepResult{State: g.State()}
	}

	res := g.engine.Step(InputFrom(in))
	out := core.StepResult{State: g.State()}
	if res.Lost {
		out.RoundOver = true
		out.FinalScore = res.FinalScore
	}
	return out
}

// InputFrom converts platform actions into an engine input snapshot.
func InputFrom(in core.InputFrame) sim.Input {
	dx, dy := in.Axis()
	return sim.Input{
		MoveX: dx,
		MoveY: dy,
		Fire:  in.Has(core.ActionFire),
		Pause: in.Has(core.ActionPause),
	}
}

// ShowDefeat puts up the game over banner. It implements sim.Presenter.
func (g *Game) ShowDefeat(score int) {
	g.banner = banner{kind: bannerDefeat, ticks: DefeatTicks, score: score}
}

// ShowVictory puts up the victory banner. It implements sim.Presenter.
func (g *Game) ShowVictory() {
	g.banner = banner{kind: bannerVictory, ticks: VictoryTicks}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	s := g.engine.State()
	g.renderer.DrawBackground(s.Background, dst)
	s.EachActor(func(a sim.Actor) {
		g.renderer.Draw(a, dst)
	})
	g.renderer.DrawHUD(g.engine, dst)

	switch {
	case g.banner.kind == bannerDefeat && g.banner.active():
		g.renderer.DrawBanner(dst, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.banner.score))
	case g.banner.kind == bannerVictory && g.banner.active():
		g.renderer.DrawBanner(dst, core.ColorBrightYellow, "VICTORY", "Every boss is down")
	case g.engine.Paused():
		g.renderer.DrawBanner(dst, core.ColorBrightWhite, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.engine.Score(),
		HighScore: g.engine.HighScore(),
		GameOver:  g.banner.kind == bannerDefeat && g.banner.active(),
		Paused:    g.engine.Paused(),
	}
}

// Engine exposes the simulation, mainly for the autopilot and tests.
func (g *Game) Engine() *sim.Engine {
	return g.engine
}

// Close releases the engine's collaborators. The engine closes its
// presenter too, so the engine is detached before closing it.
func (g *Game) Close() error {
	engine := g.engine
	if engine == nil {
		return nil
	}
	g.engine = nil
	return engine.Close()
}

// Register every difficulty preset as its own mode.
func init() {
	for _, p := range config.Presets {
		registry.Register(ModeID(p), title(p), func() registry.Game {
			return New(p)
		})
	}
}
