package core

import (
	"strings"
)

// Cell is a single character position of a Screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing the game to draw
// using simple cell operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a rectangle at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with uncoloured spaces.
func (s *Screen) Clear() {
	s.Fill(blankCell)
}

// Fill sets every cell of the screen to c.
func (s *Screen) Fill(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set places a rune at the given position, keeping the cell colours.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell replaces the cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.Bounds().Contains(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y) in colour fg.
// Background colours already on the screen are kept.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	bounds := s.Bounds()
	i := 0
	for _, r := range text {
		if bounds.Contains(x+i, y) {
			cell := &s.cells[y][x+i]
			cell.Rune = r
			cell.FG = fg
		}
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, fg)
}

// FillRect paints a rectangular area with spaces on background bg.
func (s *Screen) FillRect(r Rect, bg Color) {
	area := r.Intersect(s.Bounds())
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			s.cells[y][x] = Cell{Rune: ' ', BG: bg}
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	// Corners
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// String converts the screen buffer to plain text without colours.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}
