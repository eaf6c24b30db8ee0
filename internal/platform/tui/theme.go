package tui

import (
	"fmt"

	"github.com/arcade-tui/arkanoid/internal/core"
)

// Theme pairs a background color with the accent derived from it. The accent
// is the channel-wise complement, so text stays readable on any of the
// supported backgrounds.
type Theme struct {
	Name       string
	Background core.RGB
	Accent     core.RGB
}

var backgrounds = map[string]core.RGB{
	"black":    {R: 0, G: 0, B: 0},
	"white":    {R: 255, G: 255, B: 255},
	"darkcyan": {R: 32, G: 88, B: 110},
}

// ThemeByName resolves a background name from config or CLI flags.
func ThemeByName(name string) (Theme, error) {
	bg, ok := backgrounds[name]
	if !ok {
		return Theme{}, fmt.Errorf("tui: unknown background %q (choose black, white or darkcyan)", name)
	}
	return Theme{Name: name, Background: bg, Accent: bg.Complement()}, nil
}

// ThemeNames lists the accepted background names for CLI help text.
func ThemeNames() []string {
	return []string{"black", "white", "darkcyan"}
}
