package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ScoreRecorder persists final scores. *storage.Store satisfies it.
type ScoreRecorder interface {
	SaveScore(gameID, player string, score int) (int64, error)
	HighScore(gameID string) (int, error)
}

// Options customise a Model. The zero value runs a local game without a score log.
type Options struct {
	Store      ScoreRecorder         // nil disables the score log
	Player     string                // recorded with each score
	Renderer   *lipgloss.Renderer    // nil uses the default renderer
	Clock      snake.Clock           // nil uses the wall clock
	OnGameOver func(score, best int) // called once per finished game
	Debug      bool                  // show the game state under the help line
}

// debugLines is the height of the debug block.
const debugLines = 3

// Model is the Bubble Tea model running one snake game.
type Model struct {
	game    *snake.Game
	layout  config.WindowConfig
	screen  *core.Screen
	notice  *core.Screen // resize notice, sized to the terminal
	canvas  *ScreenCanvas
	painter *Painter
	keys    KeyMap
	help    help.Model
	opts    Options
	config  core.RuntimeConfig
	input   core.InputFrame

	tooSmall bool
	quitting bool
}

// NewModel creates a Bubble Tea model for a game with the given configuration.
func NewModel(cfg config.Config, rt core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.NewWallClock()
	}

	screen := core.NewScreen(cfg.Window.CellsW, cfg.Window.CellsH)
	m := Model{
		game:    snake.New(cfg, clock, rand.New(rand.NewSource(rt.Seed))),
		layout:  cfg.Window,
		screen:  screen,
		notice:  core.NewScreen(max(rt.ScreenW, 1), max(rt.ScreenH, 1)),
		canvas:  NewScreenCanvas(screen, cfg.Window.Square),
		painter: NewPainter(opts.Renderer),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		opts:    opts,
		config:  rt,
		input:   core.NewInputFrame(),
	}
	m.help.Width = core.Clamp(rt.ScreenW, 0, cfg.Window.CellsW)
	m.tooSmall = m.checkTooSmall()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = core.Clamp(msg.Width, 0, m.layout.CellsW)
		m.notice.Resize(max(msg.Width, 1), max(msg.Height, 1))
		m.tooSmall = m.checkTooSmall()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey latches the key's action until the game consumes it.
// Terminals report presses rather than held keys, so a press counts as held
// until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.input.Set(action)
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The game cannot be seen, so it does not advance.
	if m.tooSmall {
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.game.GameOver()
	res := m.game.Frame(m.input)
	if res.Ticked || wasOver {
		m.input.Clear()
	}

	if res.Ended {
		m.recordScore(res.Score)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordScore saves a finished game and notifies the game-over hook with the
// score and the best score on record. Without a store the best is this score.
func (m Model) recordScore(score int) {
	best := score
	if m.opts.Store != nil {
		if score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.opts.Store.SaveScore(snake.ID, m.opts.Player, score)
		}
		if high, err := m.opts.Store.HighScore(snake.ID); err == nil {
			best = max(best, high)
		}
	}
	if m.opts.OnGameOver != nil {
		m.opts.OnGameOver(score, best)
	}
}

// checkTooSmall reports whether the terminal cannot show the whole window
// plus the help line.
func (m Model) checkTooSmall() bool {
	return m.config.ScreenW < m.layout.CellsW || m.config.ScreenH < m.requiredHeight()
}

// requiredHeight is the number of terminal rows the view needs.
func (m Model) requiredHeight() int {
	h := m.layout.CellsH + 1
	if m.opts.Debug {
		h += debugLines
	}
	return h
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall {
		return m.viewTooSmall()
	}

	m.game.Render(m.canvas)
	view := m.painter.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
	if m.opts.Debug {
		view += "\n" + strings.TrimSuffix(m.game.DebugState(), "\n")
	}
	return view
}

// viewTooSmall draws a notice asking for a bigger terminal.
func (m Model) viewTooSmall() string {
	s := m.notice
	s.Clear()
	s.DrawBox(s.Bounds())

	_, cy := s.Bounds().Center()
	need := fmt.Sprintf("Need %dx%d, have %dx%d", m.layout.CellsW, m.requiredHeight(), s.Width(), s.Height())
	s.DrawTextCentered(cy-1, "Window too small", core.ColorWhite)
	s.DrawTextCentered(cy, need, core.ColorWhite)
	s.DrawTextCentered(cy+1, "Resize to continue", core.ColorWhite)
	return m.painter.RenderScreen(s)
}

// Game returns the running game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg config.Config, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rt, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
