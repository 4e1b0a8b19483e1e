package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Canvas is the 2D drawing surface a host provides. Coordinates are pixels;
// text is positioned by the top-left corner of its first line.
type Canvas interface {
	Clear(bg core.Color)
	FillRect(r core.Rect, c core.Color)
	DrawText(text string, x, y, size int, c core.Color)
	MeasureText(text string, size int) (w, h int)
}

const (
	scoreFontSize   = 25
	messageFontSize = 30
	scoreX          = 15
	scoreY          = 2
)

// gameOverMessage is drawn centred on the map, one entry per line.
var gameOverMessage = []string{
	"GAME OVER.",
	"Press [Enter] to play again.",
}

// Render draws the current state. It does not mutate the game.
func (g *Game) Render(dst Canvas) {
	if g.phase == PhaseGameOver {
		g.renderGameOver(dst)
		return
	}

	sq := g.layout.Square
	dst.Clear(core.ColorLightGray)
	dst.FillRect(g.layout.Field(), core.ColorBlack)
	dst.FillRect(core.NewRect(g.food.X, g.food.Y, sq, sq), core.ColorGold)

	head := g.snake.Head
	dst.FillRect(core.NewRect(head.X, head.Y, sq, sq), core.ColorGreen)
	for _, seg := range g.snake.Body.All() {
		dst.FillRect(core.NewRect(seg.X, seg.Y, sq, sq), core.ColorDarkGreen)
	}

	g.renderScore(dst)
}

// renderGameOver draws the red game-over screen with the final score.
func (g *Game) renderGameOver(dst Canvas) {
	dst.Clear(core.ColorRed)
	dst.FillRect(g.layout.Field(), core.ColorBlack)

	type line struct {
		text string
		w, h int
	}
	lines := make([]line, 0, len(gameOverMessage))
	total := 0
	for _, text := range gameOverMessage {
		w, h := dst.MeasureText(text, messageFontSize)
		lines = append(lines, line{text: text, w: w, h: h})
		total += h
	}

	y := g.layout.MapHeight()/2 - total/2
	for _, l := range lines {
		x := g.layout.MapWidth()/2 - l.w/2
		dst.DrawText(l.text, x, y, messageFontSize, core.ColorRed)
		y += l.h
	}

	g.renderScore(dst)
}

// renderScore draws the score in the top-left corner.
func (g *Game) renderScore(dst Canvas) {
	dst.DrawText(fmt.Sprintf("Score: %d", g.snake.Score()), scoreX, scoreY, scoreFontSize, core.ColorBlack)
}
