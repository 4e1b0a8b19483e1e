package core

// Color is a logical palette entry. Frontends map it to ANSI codes or RGBA.
type Color uint8

// Palette used by the snake renderer.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorLightGray
	ColorGold
	ColorGreen
	ColorDarkGreen
	ColorRed
	ColorWhite
)

// String returns the palette name.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorLightGray:
		return "lightgray"
	case ColorGold:
		return "gold"
	case ColorGreen:
		return "green"
	case ColorDarkGreen:
		return "darkgreen"
	case ColorRed:
		return "red"
	case ColorWhite:
		return "white"
	default:
		return "default"
	}
}
