package tui

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cosmic-heat/internal/core"
	"github.com/vovakirdan/cosmic-heat/internal/registry"
)

func init() {
	for _, id := range []string{"cosmic/easy", "cosmic/normal", "cosmic/hard"} {
		registry.Register(id, "Test "+id, func() registry.Game {
			return &scriptedGame{id: id, finalScore: 100}
		})
	}
}

var menuCfg = core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60}

func menuKey(m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuStartsOnRequestedMode(t *testing.T) {
	m := NewMenuModel(nil, menuCfg, "cosmic/normal")
	if m.ModeID() != "cosmic/normal" {
		t.Errorf("ModeID() = %q, expected cosmic/normal", m.ModeID())
	}

	m = NewMenuModel(nil, menuCfg, "unknown")
	if m.ModeID() != "cosmic/easy" {
		t.Errorf("ModeID() = %q, expected the first mode", m.ModeID())
	}
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(nil, menuCfg, "cosmic/easy")

	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, "cosmic/hard"},
		{tea.KeyMsg{Type: tea.KeyRight}, "cosmic/normal"},
		{tea.KeyMsg{Type: tea.KeyRight}, "cosmic/easy"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "cosmic/normal"},
	}
	for i, tt := range tests {
		m, _ = menuKey(m, tt.msg)
		if m.ModeID() != tt.want {
			t.Errorf("step %d: ModeID() = %q, expected %q", i, m.ModeID(), tt.want)
		}
	}
	if !strings.Contains(m.View(), "Test cosmic/normal") {
		t.Error("View() should show the selected mode")
	}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		result MenuResult
	}{
		{"play", []tea.KeyMsg{{Type: tea.KeyEnter}}, MenuResult{ModeID: "cosmic/easy"}},
		{"scores via tab", []tea.KeyMsg{{Type: tea.KeyTab}}, MenuResult{ModeID: "cosmic/easy", WantsScoreboard: true}},
		{"scores via cursor", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuResult{ModeID: "cosmic/easy", WantsScoreboard: true}},
		{"quit entry", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuResult{ModeID: "cosmic/easy", Quit: true}},
		{"q", []tea.KeyMsg{runeKey('q')}, MenuResult{ModeID: "cosmic/easy", Quit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, menuCfg, "cosmic/easy")
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = menuKey(m, k)
			}
			if cmd == nil {
				t.Error("the final key should end the menu")
			}
			got := resultOf(m)
			got.Config = core.RuntimeConfig{}
			if got != tt.result {
				t.Errorf("resultOf() = %+v, expected %+v", got, tt.result)
			}
		})
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openStore(t)
	store.SaveScore("cosmic/hard", 777)

	m := NewMenuModel(store, menuCfg, "cosmic/hard")
	if !strings.Contains(m.View(), "Best: 777") {
		t.Error("View() should show the stored high score")
	}
}

func TestScoreboardCyclesModes(t *testing.T) {
	store := openStore(t)
	store.SaveScore("cosmic/normal", 50)
	store.SaveScore("cosmic/normal", 90)

	b := NewScoreboardModel(store, 100, 30, "cosmic/normal")
	if len(b.Scores()) != 2 || b.Scores()[0].Score != 90 {
		t.Fatalf("Scores() = %v, expected 90 then 50", b.Scores())
	}
	if !strings.Contains(b.View(), "Rounds: 2") {
		t.Error("View() should include the stats line")
	}

	next, _ := b.Update(tea.KeyMsg{Type: tea.KeyTab})
	b = next.(ScoreboardModel)
	if b.ModeID() != "cosmic/easy" || len(b.Scores()) != 0 {
		t.Errorf("after tab: mode %q with %d scores, expected cosmic/easy with none", b.ModeID(), len(b.Scores()))
	}

	next, _ = b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}

func sessionKey(m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	var created []*scriptedGame
	factory := func(id string, _ *log.Logger) (registry.Game, error) {
		g := &scriptedGame{id: id, finalScore: 300}
		created = append(created, g)
		return g, nil
	}
	m := NewSessionModel(store, menuCfg, "cosmic/normal", factory, log.New(io.Discard))

	m, _ = sessionKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame || len(created) != 1 {
		t.Fatal("Enter should start a game")
	}

	m, _ = sessionKey(m, runeKey('r'))
	m, _ = sessionKey(m, TickMsg{})
	m, _ = sessionKey(m, runeKey('p'))
	m, _ = sessionKey(m, TickMsg{})
	m, _ = sessionKey(m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.current != screenMenu {
		t.Fatal("back should return to the menu")
	}
	if created[0].closed != 1 {
		t.Errorf("game closed %d times, expected 1", created[0].closed)
	}
	if high, _ := store.HighScore("cosmic/normal"); high != 300 {
		t.Errorf("HighScore() = %d, expected the finished round", high)
	}

	m, _ = sessionKey(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	m, _ = sessionKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu {
		t.Fatal("esc should leave the scoreboard")
	}

	_, cmd := sessionKey(m, runeKey('q'))
	if cmd == nil {
		t.Error("q should end the session")
	}
}

func TestSessionFactoryError(t *testing.T) {
	factory := func(string, *log.Logger) (registry.Game, error) {
		return nil, errors.New("boom")
	}
	m := NewSessionModel(nil, menuCfg, "cosmic/easy", factory, log.New(io.Discard))

	m, _ = sessionKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenMenu {
		t.Error("a failing factory should keep the menu")
	}
}

func TestScoreboardClearNeedsConfirmation(t *testing.T) {
	store := openStore(t)
	store.SaveScore("cosmic/hard", 300)
	store.SaveScore("cosmic/normal", 40)

	press := func(b ScoreboardModel, r rune) ScoreboardModel {
		next, _ := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		return next.(ScoreboardModel)
	}

	b := NewScoreboardModel(store, 100, 30, "cosmic/hard")
	b = press(b, 'x')
	if !strings.Contains(b.View(), "Press x again") {
		t.Error("View() should ask for confirmation")
	}
	b = press(b, 'j')
	b = press(b, 'x')
	if len(b.Scores()) != 1 {
		t.Fatal("a different key should cancel the clear")
	}

	b = press(b, 'x')
	if len(b.Scores()) != 0 {
		t.Errorf("Scores() = %v after confirming, expected none", b.Scores())
	}
	if best, _ := store.HighScore("cosmic/normal"); best != 40 {
		t.Errorf("cosmic/normal high score = %d, expected other modes untouched", best)
	}
}
