package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestScreenCanvasFillRectScalesToCells(t *testing.T) {
	screen := core.NewScreen(80, 62)
	c := NewScreenCanvas(screen, 10)

	c.FillRect(core.NewRect(10, 30, 780, 580), core.ColorBlack)

	tests := []struct {
		x, y int
		want bool
	}{
		{1, 3, true},
		{78, 60, true},
		{0, 3, false},
		{1, 2, false},
		{79, 60, false},
		{78, 61, false},
	}
	for _, tt := range tests {
		if got := screen.GetCell(tt.x, tt.y).BG == core.ColorBlack; got != tt.want {
			t.Errorf("cell (%d, %d) black = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScreenCanvasFillRectCoversPartialCells(t *testing.T) {
	screen := core.NewScreen(4, 4)
	c := NewScreenCanvas(screen, 10)

	c.FillRect(core.NewRect(5, 5, 10, 10), core.ColorGold)

	for y := range 4 {
		for x := range 4 {
			want := x < 2 && y < 2
			if got := screen.GetCell(x, y).BG == core.ColorGold; got != want {
				t.Errorf("cell (%d, %d) gold = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestScreenCanvasClear(t *testing.T) {
	screen := core.NewScreen(3, 2)
	c := NewScreenCanvas(screen, 10)
	screen.Set(1, 1, 'x')

	c.Clear(core.ColorRed)

	for y := range 2 {
		for x := range 3 {
			if cell := screen.GetCell(x, y); cell != (core.Cell{Rune: ' ', BG: core.ColorRed}) {
				t.Errorf("cell (%d, %d) = %+v after Clear", x, y, cell)
			}
		}
	}
}

func TestScreenCanvasText(t *testing.T) {
	screen := core.NewScreen(20, 3)
	c := NewScreenCanvas(screen, 10)
	c.FillRect(core.NewRect(0, 0, 200, 10), core.ColorLightGray)

	c.DrawText("Score: 0", 15, 2, 25, core.ColorBlack)

	if got := strings.Split(screen.String(), "\n")[0]; got != " Score: 0           " {
		t.Errorf("row 0 = %q", got)
	}
	if cell := screen.GetCell(1, 0); cell.FG != core.ColorBlack || cell.BG != core.ColorLightGray {
		t.Errorf("text cell colours = %+v, expected black on light gray", cell)
	}

	w, h := c.MeasureText("GAME OVER.", 30)
	if w != 100 || h != 10 {
		t.Errorf("MeasureText = (%d, %d), expected (100, 10)", w, h)
	}
}

func TestDivRounding(t *testing.T) {
	tests := []struct {
		a, b        int
		floor, ceil int
	}{
		{0, 10, 0, 0},
		{15, 10, 1, 2},
		{20, 10, 2, 2},
		{-1, 10, -1, 0},
		{-11, 10, -2, -1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.floor {
			t.Errorf("floorDiv(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.floor)
		}
		if got := ceilDiv(tt.a, tt.b); got != tt.ceil {
			t.Errorf("ceilDiv(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.ceil)
		}
	}
}
