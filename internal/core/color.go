package core

import "fmt"

// Color identifies a foreground color for a screen cell. The platform layer
// maps each value to a concrete style; ColorDefault resolves to the theme's
// accent color (the complement of the background).
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorGreen
	ColorBlue
	ColorViolet
)

// RGB is a 24-bit color triple used for theme backgrounds and accents.
type RGB struct {
	R, G, B uint8
}

// Complement returns the channel-wise complement of the color (255 - value).
// HUD text and the play-area separator are drawn in the complement of the
// configured background.
func (c RGB) Complement() RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Hex returns the color as a "#rrggbb" string for terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
