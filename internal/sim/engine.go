// Package sim is the Cosmic Heat simulation core: spawning, movement,
// collision resolution, the player economy, score-driven difficulty,
// the three boss encounters and round resets. It is single-threaded and
// pure; rendering, audio and presentation are reached through the
// Drawer, AudioSink and Presenter interfaces.
package sim

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cosmic-heat/internal/config"
)

// Engine runs rounds of the game one tick at a time.
type Engine struct {
	cfg        config.Config
	hazardDefs [NumHazardKinds]config.HazardConfig
	pickupDefs [NumPickupKinds]config.PickupConfig
	scaler     Scaler

	src       Source
	audio     AudioSink
	presenter Presenter
	logger    *log.Logger

	state     *State
	highScore int
	round     int
	paused    bool
	events    []Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource injects the random source.
func WithSource(src Source) Option {
	return func(e *Engine) { e.src = src }
}

// WithSeed uses a deterministic LCG seeded with seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.src = NewLCG(seed) }
}

// WithAudio sets the sink for sound cues.
func WithAudio(a AudioSink) Option {
	return func(e *Engine) { e.audio = a }
}

// WithPresenter sets the defeat and victory presenter.
func WithPresenter(p Presenter) Option {
	return func(e *Engine) { e.presenter = p }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// StepResult reports what a tick did.
type StepResult struct {
	Tick   uint64
	Score  int
	Paused bool
	Events []Event

	// Lost is true on the tick a round ended; FinalScore is its score.
	// The state has already been reset when Step returns.
	Lost       bool
	FinalScore int
}

// BossStatus is the read-only view of one encounter.
type BossStatus struct {
	Tier      int
	State     EncounterState
	Active    bool
	Health    int
	MaxHealth int
}

// New validates cfg and creates an engine with a fresh round.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	e := &Engine{
		cfg:    cfg,
		scaler: NewScaler(cfg.Difficulty),
		hazardDefs: [NumHazardKinds]config.HazardConfig{
			HazardLightEnemy:  cfg.Hazards.LightEnemy,
			HazardHeavyEnemy:  cfg.Hazards.HeavyEnemy,
			HazardMeteorSmall: cfg.Hazards.MeteorSmall,
			HazardMeteorLarge: cfg.Hazards.MeteorLarge,
			HazardBlackHole:   cfg.Hazards.BlackHole,
		},
		pickupDefs: [NumPickupKinds]config.PickupConfig{
			PickupAmmo:   cfg.Pickups.Ammo,
			PickupHealth: cfg.Pickups.Health,
			PickupDual:   cfg.Pickups.Dual,
			PickupScore:  cfg.Pickups.Score,
		},
		src:       NewLCG(1),
		audio:     nopAudio{},
		presenter: nopPresenter{},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = newState(cfg, e.scaler)
	return e, nil
}

// Step advances the simulation by one tick.
func (e *Engine) Step(in Input) StepResult {
	if err := in.Validate(); err != nil {
		e.logger.Debug("ignoring input", "tick", e.state.Tick, "err", err)
		in = Input{}
	}

	if in.Pause {
		e.paused = !e.paused
	}
	if e.paused {
		return StepResult{Tick: e.state.Tick, Score: e.state.Score, Paused: true}
	}

	e.events = nil
	s := e.state
	s.Tick++
	s.Speeds = e.scaler.Speeds(s.Score)

	e.spawn()
	e.update(in)
	e.resolveCollisions()

	if s.Score > e.highScore {
		e.highScore = s.Score
	}

	res := StepResult{Tick: s.Tick}
	if final, lost := e.checkRound(); lost {
		res.Lost = true
		res.FinalScore = final
	}
	res.Score = e.state.Score
	res.Events = e.events
	return res
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

func (e *Engine) play(c Cue) {
	e.audio.Play(c)
}

// State returns the live round state. Callers must treat it as read-only.
func (e *Engine) State() *State {
	return e.state
}

// Config returns the validated configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Score returns the current round score.
func (e *Engine) Score() int {
	return e.state.Score
}

// Health returns the player's health.
func (e *Engine) Health() int {
	return e.state.Economy.Health
}

// Ammo returns the player's ammunition.
func (e *Engine) Ammo() int {
	return e.state.Economy.Ammo
}

// HighScore returns the best score of this session.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Round returns the number of rounds lost so far.
func (e *Engine) Round() int {
	return e.round
}

// Paused reports whether the engine is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// Boss returns the status of the given tier (1-based).
func (e *Engine) Boss(tier int) BossStatus {
	if tier < 1 || tier > len(e.state.Encounters) {
		return BossStatus{Tier: tier}
	}
	enc := e.state.Encounters[tier-1]
	return BossStatus{
		Tier:      enc.Tier,
		State:     enc.State,
		Active:    enc.State == Spawned,
		Health:    enc.Health,
		MaxHealth: enc.MaxHealth,
	}
}

// Close releases collaborators that hold resources.
func (e *Engine) Close() error {
	var errs []error
	if c, ok := e.audio.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if c, ok := e.presenter.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
