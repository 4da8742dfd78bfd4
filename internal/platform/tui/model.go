package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cosmic-heat/internal/core"
	"github.com/vovakirdan/cosmic-heat/internal/registry"
	"github.com/vovakirdan/cosmic-heat/internal/storage"
)

// noticeTicks is how long a status notice stays on screen.
const noticeTicks = 90

// SoundToggler is an audio sink that can be muted while playing.
type SoundToggler interface {
	// ToggleMute flips the mute flag and reports whether sound is now on.
	ToggleMute() bool
}

// GameOption configures a GameModel.
type GameOption func(*GameModel)

// WithSound enables the mute key for s.
func WithSound(s SoundToggler) GameOption {
	return func(m *GameModel) { m.sound = s }
}

// WithLogger sets the logger used for storage failures.
func WithLogger(l *log.Logger) GameOption {
	return func(m *GameModel) { m.logger = l }
}

// GameModel is the Bubble Tea model that plays one mode.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	input      *HeldInput
	sound      SoundToggler
	logger     *log.Logger
	gameState  core.GameState
	notice     string
	noticeLeft int
	saved      int // Rounds written to the store
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		input:     NewHeldInput(),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keyMapper.IsScreenshot(msg):
		m.saveScreenshot()
		return m, nil
	case m.keyMapper.IsMute(msg):
		m.toggleSound()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.gameState.Paused || m.gameState.GameOver {
			m.backToMenu = true
			m.input.Release()
			return m, tea.Quit
		}
		return m, nil
	}

	m.input.Press(action)
	return m, nil
}

// handleTick advances the game one tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Frame())
	m.gameState = result.State

	if result.RoundOver {
		m.saveScore(result.FinalScore)
	}
	if m.noticeLeft > 0 {
		m.noticeLeft--
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished round. Failures only reach the log.
func (m *GameModel) saveScore(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), score); err != nil {
		m.logger.Warn("could not save score", "mode", m.game.ID(), "score", score, "err", err)
		return
	}
	m.saved++
}

func (m *GameModel) toggleSound() {
	if m.sound == nil {
		m.notify("NO AUDIO DEVICE")
		return
	}
	if m.sound.ToggleMute() {
		m.notify("SOUND ON")
	} else {
		m.notify("SOUND OFF")
	}
}

func (m *GameModel) notify(text string) {
	m.notice = text
	m.noticeLeft = noticeTicks
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot resolve home for screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".cosmic-heat", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", filepath.Base(m.game.ID()), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot write screenshot", "path", path, "err", err)
		return
	}
	m.notify("SAVED " + name)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	if m.noticeLeft > 0 && m.screen.Height() > 0 {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.notice, core.ColorBrightYellow)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Game returns the game being played.
func (m GameModel) Game() registry.Game {
	return m.game
}

// closeGame releases the game's resources if it holds any.
func closeGame(g registry.Game, logger *log.Logger) {
	c, ok := g.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warn("closing game failed", "mode", g.ID(), "err", err)
	}
}

// Run plays a single mode until the user quits or goes back, then closes
// the game. Returns true if the user asked for the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, opts...)
	defer closeGame(game, model.logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
