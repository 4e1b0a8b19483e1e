// Package window hosts the snake game in a native raylib window.
package window

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ScoreRecorder persists final scores. *storage.Store satisfies it.
type ScoreRecorder interface {
	SaveScore(gameID, player string, score int) (int64, error)
	HighScore(gameID string) (int, error)
}

// Options customise Run.
type Options struct {
	Store  ScoreRecorder // nil disables the score log
	Player string
	FPS    int
	Seed   int64 // 0 seeds from the clock
	Logger *log.Logger
}

// clock reads raylib's timer, which starts at InitWindow.
type clock struct{}

func (clock) Now() float64 { return rl.GetTime() }

// Run opens the window and plays until it is closed with Esc or the close button.
func Run(cfg config.Config, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-window",
		})
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	w := cfg.Window
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w.Width()), int32(w.Height()), w.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))

	game := snake.New(cfg, clock{}, rand.New(rand.NewSource(opts.Seed)))
	canvas := Canvas{}
	input := core.NewInputFrame()

	logger.Info("window opened", "width", w.Width(), "height", w.Height(), "fps", opts.FPS, "seed", opts.Seed)

	for !rl.WindowShouldClose() {
		pollInput(&input, rl.IsKeyDown)

		res := game.Frame(input)
		if res.Ended {
			recordScore(logger, opts, res.Score)
		}

		rl.BeginDrawing()
		game.Render(canvas)
		rl.EndDrawing()
	}

	logger.Info("window closed", "score", game.Score())
	return nil
}

// recordScore logs a finished game and saves it when a store is set.
func recordScore(logger *log.Logger, opts Options, score int) {
	if opts.Store == nil {
		logger.Info("game over", "score", score)
		return
	}
	if score > 0 {
		if _, err := opts.Store.SaveScore(snake.ID, opts.Player, score); err != nil {
			logger.Warn("could not save score", "error", err)
		}
	}
	best, err := opts.Store.HighScore(snake.ID)
	if err != nil {
		logger.Warn("could not load high score", "error", err)
	}
	logger.Info("game over", "score", score, "best", max(best, score))
}
