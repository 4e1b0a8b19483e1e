package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ansiColors maps core.Color to ANSI 256-colour codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:     lipgloss.Color("16"),
	core.ColorLightGray: lipgloss.Color("250"),
	core.ColorGold:      lipgloss.Color("220"),
	core.ColorGreen:     lipgloss.Color("40"),
	core.ColorDarkGreen: lipgloss.Color("22"),
	core.ColorRed:       lipgloss.Color("160"),
	core.ColorWhite:     lipgloss.Color("15"),
}

type colorPair struct {
	fg, bg core.Color
}

// Painter converts Screen buffers to styled strings for one lipgloss
// renderer. SSH sessions each get their own renderer so colour support is
// detected per client.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewPainter creates a painter for renderer, or for the default renderer if nil.
func NewPainter(renderer *lipgloss.Renderer) *Painter {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: renderer,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

// style returns the cached style for a colour pair.
func (p *Painter) style(pair colorPair) lipgloss.Style {
	if st, ok := p.styles[pair]; ok {
		return st
	}
	st := p.renderer.NewStyle()
	if c, ok := ansiColors[pair.fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := ansiColors[pair.bg]; ok {
		st = st.Background(c)
	}
	p.styles[pair] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (p *Painter) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{fg: cell.FG, bg: cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != pair.fg || cell.BG != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if pair == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(pair).Render(run.String()))
		}
	}
	return sb.String()
}
