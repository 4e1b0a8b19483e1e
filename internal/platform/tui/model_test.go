package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type fakeClock struct {
	now float64
}

func (c *fakeClock) Now() float64 { return c.now }

type savedScore struct {
	gameID, player string
	score          int
}

type recordingStore struct {
	saved []savedScore
}

func (s *recordingStore) SaveScore(gameID, player string, score int) (int64, error) {
	s.saved = append(s.saved, savedScore{gameID, player, score})
	return int64(len(s.saved)), nil
}

func (s *recordingStore) HighScore(gameID string) (int, error) {
	best := 0
	for _, e := range s.saved {
		if e.gameID == gameID {
			best = max(best, e.score)
		}
	}
	return best, nil
}

// newTestModel creates a model on a terminal big enough for the default layout.
func newTestModel(opts Options) (Model, *fakeClock) {
	clock := &fakeClock{}
	opts.Clock = clock
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.NewRenderer(io.Discard)
	}
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 63, TickRate: 60, Seed: 1}
	return NewModel(config.Default(), rt, opts), clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelKeyLatchesUntilTick(t *testing.T) {
	m, clock := newTestModel(Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if !m.input.Has(core.ActionUp) {
		t.Fatal("up press was not latched")
	}

	// Interval not elapsed: the press must survive the frame.
	m, _ = update(t, m, TickMsg{})
	if !m.input.Has(core.ActionUp) {
		t.Fatal("press was dropped by a frame without a tick")
	}

	clock.now = 0.2
	m, _ = update(t, m, TickMsg{})
	if m.input.Has(core.ActionUp) {
		t.Error("press should be consumed by the tick")
	}
	if got := m.Game().Snake().Direction; got != snake.DirUp {
		t.Errorf("direction = %s, expected up", got)
	}
	if got := m.Game().Snake().Head; got != core.Pt(400, 290) {
		t.Errorf("head = %v, expected (400, 290)", got)
	}
}

func TestModelUnboundKeyIgnored(t *testing.T) {
	m, _ := newTestModel(Options{})

	m, cmd := update(t, m, runeKey('x'))
	if cmd != nil {
		t.Error("unbound key should not return a command")
	}
	if !m.input.Empty() {
		t.Error("unbound key should not be latched")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(Options{})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelGameOverRecordsOnce(t *testing.T) {
	var ended []int
	m, clock := newTestModel(Options{
		OnGameOver: func(score, _ int) { ended = append(ended, score) },
	})

	// Heading left from the centre hits the wall well within 100 ticks.
	for i := 0; i < 100; i++ {
		clock.now += 1
		m, _ = update(t, m, TickMsg{})
	}

	if !m.Game().GameOver() {
		t.Fatal("snake should have hit the left wall")
	}
	if len(ended) != 1 {
		t.Fatalf("game-over hook called %d times, expected 1", len(ended))
	}
	if ended[0] != m.Game().Score() {
		t.Errorf("hook score = %d, expected %d", ended[0], m.Game().Score())
	}
}

func TestModelRestart(t *testing.T) {
	m, clock := newTestModel(Options{})
	for !m.Game().GameOver() {
		clock.now += 1
		m, _ = update(t, m, TickMsg{})
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})

	if m.Game().GameOver() {
		t.Fatal("enter should restart the game")
	}
	if got := m.Game().Snake().Head; got != core.Pt(400, 300) {
		t.Errorf("head = %v after restart, expected (400, 300)", got)
	}
	if !m.input.Empty() {
		t.Error("restart press should be consumed")
	}
}

func TestRecordScore(t *testing.T) {
	store := &recordingStore{}
	var bests []int
	m, _ := newTestModel(Options{
		Store:      store,
		Player:     "alice",
		OnGameOver: func(_, best int) { bests = append(bests, best) },
	})

	m.recordScore(30)
	m.recordScore(0)
	m.recordScore(50)

	want := []savedScore{{snake.ID, "alice", 30}, {snake.ID, "alice", 50}}
	if len(store.saved) != 2 || store.saved[0] != want[0] || store.saved[1] != want[1] {
		t.Errorf("saved = %+v, expected %+v", store.saved, want)
	}
	if len(bests) != 3 || bests[0] != 30 || bests[1] != 30 || bests[2] != 50 {
		t.Errorf("best scores = %v, expected [30 30 50]", bests)
	}
}

func TestRecordScoreWithoutStore(t *testing.T) {
	var got [][2]int
	m, _ := newTestModel(Options{
		OnGameOver: func(score, best int) { got = append(got, [2]int{score, best}) },
	})

	m.recordScore(40)

	if len(got) != 1 || got[0] != [2]int{40, 40} {
		t.Errorf("hook got %v, expected [[40 40]]", got)
	}
}

func TestModelTooSmall(t *testing.T) {
	m, clock := newTestModel(Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	notice := m.View()
	if !strings.Contains(notice, "Window too small") || !strings.Contains(notice, "Need 80x63, have 40x20") {
		t.Errorf("small terminal should show the resize notice, got:\n%s", notice)
	}
	if lines := strings.Split(notice, "\n"); len(lines) != 20 || len([]rune(lines[0])) != 40 {
		t.Errorf("notice should fill the 40x20 terminal, got %d lines", len(lines))
	}
	if m.help.Width != 40 {
		t.Errorf("help width = %d, expected 40", m.help.Width)
	}

	clock.now = 1
	m, _ = update(t, m, TickMsg{})
	if got := m.Game().Snake().Head; got != core.Pt(400, 300) {
		t.Errorf("game advanced while hidden: head = %v", got)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 63})
	if strings.Contains(m.View(), "Window too small") {
		t.Error("notice should go away once the terminal is large enough")
	}
	if m.help.Width != 80 {
		t.Errorf("help width = %d, expected the play-field width 80", m.help.Width)
	}
}

func TestModelDebugLine(t *testing.T) {
	m, _ := newTestModel(Options{Debug: true})

	// The debug block needs three more rows than the default terminal has.
	if !strings.Contains(m.View(), "Need 80x66") {
		t.Fatal("debug view should require room for the debug block")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 66})
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 66 {
		t.Fatalf("view has %d lines, expected 66", len(lines))
	}
	if !strings.HasPrefix(lines[63], "Tick: 0, Score: 0, Phase: playing") {
		t.Errorf("debug line = %q", lines[63])
	}
	if !strings.Contains(lines[65], "Head: (400, 300)") {
		t.Errorf("debug head line = %q", lines[65])
	}
}

func TestModelView(t *testing.T) {
	m, clock := newTestModel(Options{})

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 63 {
		t.Fatalf("view has %d lines, expected 62 rows plus help", len(lines))
	}
	if !strings.Contains(lines[0], "Score: 0") {
		t.Errorf("first row = %q, expected the score", lines[0])
	}
	if !strings.Contains(lines[62], "quit") {
		t.Errorf("help line = %q", lines[62])
	}

	for !m.Game().GameOver() {
		clock.now += 1
		m, _ = update(t, m, TickMsg{})
	}
	view = m.View()
	if !strings.Contains(view, "GAME OVER.") || !strings.Contains(view, "Press [Enter] to play again.") {
		t.Error("game-over view is missing the message")
	}
}

func TestPainterPlainProfile(t *testing.T) {
	screen := core.NewScreen(5, 2)
	screen.FillRect(core.NewRect(0, 0, 5, 1), core.ColorRed)
	screen.DrawText(1, 1, "abc", core.ColorGreen)

	p := NewPainter(lipgloss.NewRenderer(io.Discard))
	if got, want := p.RenderScreen(screen), screen.String(); got != want {
		t.Errorf("RenderScreen = %q, expected %q without colour support", got, want)
	}
}
