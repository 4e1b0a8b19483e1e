package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps core.Color to raylib's named colours.
var palette = map[core.Color]rl.Color{
	core.ColorBlack:     rl.Black,
	core.ColorLightGray: rl.LightGray,
	core.ColorGold:      rl.Gold,
	core.ColorGreen:     rl.Green,
	core.ColorDarkGreen: rl.DarkGreen,
	core.ColorRed:       rl.Red,
	core.ColorWhite:     rl.White,
}

// toRL converts a core colour, falling back to black for ColorDefault.
func toRL(c core.Color) rl.Color {
	if col, ok := palette[c]; ok {
		return col
	}
	return rl.Black
}

// Canvas draws with raylib's immediate-mode API. It must be used between
// rl.BeginDrawing and rl.EndDrawing.
type Canvas struct{}

// Clear fills the window with bg.
func (Canvas) Clear(bg core.Color) {
	rl.ClearBackground(toRL(bg))
}

// FillRect draws a filled rectangle.
func (Canvas) FillRect(r core.Rect, c core.Color) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), toRL(c))
}

// DrawText draws text with the default font.
func (Canvas) DrawText(text string, x, y, size int, c core.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), toRL(c))
}

// MeasureText returns the width raylib reports and the font size as height.
func (Canvas) MeasureText(text string, size int) (int, int) {
	return int(rl.MeasureText(text, int32(size))), size
}
