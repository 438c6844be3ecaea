package core

// Color is the logical color of a screen cell. The tui package turns it
// into a lipgloss style; games only pick from the names below.
type Color uint8

const (
	ColorDefault      Color = iota // Borders and plain text
	ColorRed                       // Regular bricks
	ColorYellow                    // Ball
	ColorCyan                      // Score
	ColorWhite                     // Paddle
	ColorBrightRed                 // Lost round headline
	ColorBrightYellow              // Panel text
	ColorOrange                    // Special bricks
	ColorGray                      // Damaged bricks
	ColorDim                       // Last round's score
)
