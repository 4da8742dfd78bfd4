package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cosmic-heat/internal/registry"
	"github.com/vovakirdan/cosmic-heat/internal/storage"
)

const (
	boardScores     = 100 // Rows loaded per mode
	minWidthForSide = 70  // Stats panel goes beside the table from this width
	statsWidth      = 24
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("124")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardWarnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

type scoreboardKeys struct {
	Scroll key.Binding
	Mode   key.Binding
	Clear  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Mode, k.Clear, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
		Mode:   key.NewBinding(key.WithKeys("left", "h", "right", "l", "tab", "shift+tab"), key.WithHelp("←/→/tab", "difficulty")),
		Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// modeStep returns the cycling direction of a mode key.
func modeStep(msg tea.KeyMsg) int {
	switch msg.String() {
	case "left", "h", "shift+tab":
		return -1
	default:
		return 1
	}
}

// ScoreboardModel shows the stored rounds of one difficulty at a time,
// with a summary of every round played on it.
type ScoreboardModel struct {
	modes      []registry.ModeInfo
	modeCursor int
	store      *storage.Store
	scores     []storage.ScoreEntry
	stats      *storage.ModeStats

	table  table.Model
	help   help.Model
	keys   scoreboardKeys
	width  int
	height int

	confirmClear bool
	quitting     bool
	goingBack    bool
}

// NewScoreboardModel creates a scoreboard opened on startMode when it is registered.
func NewScoreboardModel(store *storage.Store, width, height int, startMode string) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	for i, mode := range m.modes {
		if mode.ID == startMode {
			m.modeCursor = i
		}
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) newTable() table.Model {
	dateWidth := 14
	if m.width >= minWidthForSide+20 {
		dateWidth = 18
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("124"))

	return table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 10},
			{Title: "Played", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)),
		table.WithStyles(styles),
	)
}

// reload fetches the rows and summary of the selected mode.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if id := m.ModeID(); m.store != nil && id != "" {
		if scores, err := m.store.TopScores(id, boardScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{fmt.Sprint(i + 1), fmt.Sprint(s.Score), s.CreatedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycle(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.modeCursor = (m.modeCursor + delta + len(m.modes)) % len(m.modes)
	m.reload()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Clearing takes a second x; any other key cancels it.
		if m.confirmClear {
			m.confirmClear = false
			if key.Matches(msg, m.keys.Clear) {
				if m.store != nil {
					_ = m.store.ClearScores(m.ModeID())
				}
				m.reload()
				return m, nil
			}
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mode):
			m.cycle(modeStep(msg))
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.confirmClear = len(m.scores) > 0
			return m, nil
		case key.Matches(msg, m.keys.Scroll):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
	}
	return m, nil
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	scores := boardBoxStyle.Render(m.tableView())
	stats := boardBoxStyle.Width(statsWidth).Render(m.statsView())
	if m.width >= minWidthForSide {
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, scores, " ", stats), m.width))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, scores, stats))
	}
	b.WriteString("\n")

	if m.confirmClear {
		b.WriteString(boardWarnStyle.Render(fmt.Sprintf("Press x again to delete every %s score", m.modeName(m.modeCursor))))
	} else {
		b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// modeName is the difficulty part of a mode ID.
func (m ScoreboardModel) modeName(i int) string {
	id := m.modes[i].ID
	if _, name, ok := strings.Cut(id, "/"); ok {
		return name
	}
	return id
}

func (m ScoreboardModel) tabs() string {
	if len(m.modes) == 0 {
		return boardDimStyle.Render("no modes registered")
	}
	tabs := make([]string, len(m.modes))
	for i := range m.modes {
		if i == m.modeCursor {
			tabs[i] = boardActiveTab.Render(strings.ToUpper(m.modeName(i)))
		} else {
			tabs[i] = boardTabStyle.Render(m.modeName(i))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return boardDimStyle.Italic(true).Padding(1, 2).Render("No rounds on this difficulty yet.")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsView() string {
	if m.stats == nil || m.stats.Rounds == 0 {
		return boardDimStyle.Render("Rounds: 0")
	}
	lines := []string{
		fmt.Sprintf("Rounds: %d", m.stats.Rounds),
		fmt.Sprintf("Best: %d", m.stats.HighScore),
		fmt.Sprintf("Average: %.0f", m.stats.AvgScore),
		fmt.Sprintf("Total: %d", m.stats.TotalScore),
	}
	if !m.stats.LastPlayed.IsZero() {
		lines = append(lines, "Last: "+m.stats.LastPlayed.Format("Jan 02 15:04"))
	}
	return strings.Join(lines, "\n")
}

// ModeID returns the mode being shown, or "" when none is registered.
func (m ScoreboardModel) ModeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.modeCursor].ID
}

// Scores returns the rows currently loaded.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// IsGoingBack reports whether the user asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard until the user leaves it.
// It reports whether the user wants the menu back.
func RunScoreboard(store *storage.Store, width, height int, startMode string) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height, startMode), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
