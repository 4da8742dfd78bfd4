package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cosmic-heat/internal/core"
	"github.com/vovakirdan/cosmic-heat/internal/registry"
	"github.com/vovakirdan/cosmic-heat/internal/storage"
)

// MenuEntry is a line of the main menu.
type MenuEntry int

const (
	EntryPlay MenuEntry = iota
	EntryScores
	EntryQuit
)

var entryLabels = [...]string{
	EntryPlay:   "Play",
	EntryScores: "High Scores",
	EntryQuit:   "Quit",
}

func (e MenuEntry) String() string {
	if int(e) < len(entryLabels) {
		return entryLabels[e]
	}
	return "?"
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu. Left and right
// cycle through the registered difficulty modes.
type MenuModel struct {
	modes     []registry.ModeInfo
	mode      int
	cursor    MenuEntry
	best      map[string]int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	chosen    bool
}

// NewMenuModel creates a new menu model with startMode preselected when
// it is registered.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, startMode string) MenuModel {
	m := MenuModel{
		modes:     registry.List(),
		best:      make(map[string]int),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, mode := range m.modes {
		if mode.ID == startMode {
			m.mode = i
		}
	}
	m.loadBest()
	return m
}

// loadBest caches the stored high score of the selected mode.
func (m *MenuModel) loadBest() {
	if m.store == nil || len(m.modes) == 0 {
		return
	}
	id := m.modes[m.mode].ID
	if _, ok := m.best[id]; ok {
		return
	}
	if high, err := m.store.HighScore(id); err == nil {
		m.best[id] = high
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > EntryPlay {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < EntryQuit {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycleMode(-1)

	case MenuActionRight:
		m.cycleMode(1)

	case MenuActionScoreboard:
		m.cursor = EntryScores
		m.chosen = true
		return m, tea.Quit

	case MenuActionSelect:
		if m.cursor == EntryQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if m.cursor == EntryPlay && len(m.modes) == 0 {
			return m, nil
		}
		m.chosen = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) cycleMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.loadBest()
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("C O S M I C   H E A T"), m.width))
	b.WriteString("\n\n")

	if len(m.modes) > 0 {
		mode := m.modes[m.mode]
		b.WriteString(centerText(fmt.Sprintf("<  %s  >", mode.Title), m.width))
		b.WriteString("\n")
		if high, ok := m.best[mode.ID]; ok && high > 0 {
			b.WriteString(centerText(fmt.Sprintf("Best: %d", high), m.width))
		}
		b.WriteString("\n\n")
	}

	for e := EntryPlay; e <= EntryQuit; e++ {
		line := "  " + e.String()
		if e == m.cursor {
			line = menuActiveStyle.Render("> " + e.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// ModeID returns the selected mode, or "" when none is registered.
func (m MenuModel) ModeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// Choice returns the chosen entry and whether the user made a choice.
func (m MenuModel) Choice() (MenuEntry, bool) {
	return m.cursor, m.chosen
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ModeID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// resultOf converts a finished menu into a MenuResult.
func resultOf(m MenuModel) MenuResult {
	result := MenuResult{
		ModeID: m.ModeID(),
		Config: m.Config(),
	}
	entry, chosen := m.Choice()
	switch {
	case m.IsQuitting() || !chosen:
		result.Quit = true
	case entry == EntryScores:
		result.WantsScoreboard = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, startMode string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, startMode)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return resultOf(m), nil
}
