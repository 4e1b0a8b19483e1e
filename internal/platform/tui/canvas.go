package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ScreenCanvas draws the game's pixel coordinates onto a character screen,
// one character per grid square. Font sizes are ignored; every line of text
// is one row tall.
type ScreenCanvas struct {
	screen *core.Screen
	square int
}

// NewScreenCanvas creates a canvas drawing into screen with the given grid square in pixels.
func NewScreenCanvas(screen *core.Screen, square int) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, square: max(square, 1)}
}

// Clear fills the whole screen with background bg.
func (c *ScreenCanvas) Clear(bg core.Color) {
	c.screen.Fill(core.Cell{Rune: ' ', BG: bg})
}

// FillRect paints every cell the pixel rectangle covers.
func (c *ScreenCanvas) FillRect(r core.Rect, col core.Color) {
	x0 := floorDiv(r.X, c.square)
	y0 := floorDiv(r.Y, c.square)
	x1 := ceilDiv(r.Right(), c.square)
	y1 := ceilDiv(r.Bottom(), c.square)
	c.screen.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), col)
}

// DrawText writes text at the cell containing (x, y).
func (c *ScreenCanvas) DrawText(text string, x, y, _ int, col core.Color) {
	c.screen.DrawText(floorDiv(x, c.square), floorDiv(y, c.square), text, col)
}

// MeasureText returns the pixel size text occupies on the screen.
func (c *ScreenCanvas) MeasureText(text string, _ int) (int, int) {
	return len([]rune(text)) * c.square, c.square
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
