package core

// Color is a terminal colour understood by lipgloss: a hex string such as
// "#ff004d" or an ANSI 256 index such as "208". The empty Color leaves the
// terminal default in place.
type Color string

// Fallback colours used when a level palette leaves a slot empty.
const (
	ColorDefault Color = ""
	ColorRed     Color = "9"
	ColorGreen   Color = "10"
	ColorYellow  Color = "11"
	ColorCyan    Color = "14"
	ColorWhite   Color = "15"
	ColorOrange  Color = "208"
	ColorGray    Color = "245"
)

// Or returns c, or fallback when c is empty.
func (c Color) Or(fallback Color) Color {
	if c == ColorDefault {
		return fallback
	}
	return c
}

// Cell is one character of a Screen with its colours.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

var blank = Cell{Rune: ' '}
