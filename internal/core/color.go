package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorPink
	ColorGold
	ColorGray
)

// RGB returns the 24-bit color used by graphical adapters.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed, ColorBrightRed:
		return 0xFF, 0x00, 0x00
	case ColorGreen, ColorBrightGreen:
		return 0x4C, 0xAF, 0x50
	case ColorYellow, ColorBrightYellow:
		return 0xFF, 0xEB, 0x3B
	case ColorBlue:
		return 0x21, 0x96, 0xF3
	case ColorMagenta:
		return 0xE0, 0x40, 0xFB
	case ColorCyan, ColorBrightCyan:
		return 0x00, 0xFF, 0xFF
	case ColorOrange:
		return 0xFF, 0x57, 0x22
	case ColorPink:
		return 0xFF, 0xC0, 0xCB
	case ColorGold:
		return 0xFF, 0xD7, 0x00
	case ColorGray:
		return 0x9E, 0x9E, 0x9E
	case ColorWhite, ColorBrightWhite:
		return 0xFF, 0xFF, 0xFF
	default:
		return 0x00, 0x00, 0x00
	}
}
