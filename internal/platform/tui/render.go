package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcade-tui/arkanoid/internal/core"
)

// blockPalette maps the block colors to their terminal colors.
var blockPalette = map[core.Color]string{
	core.ColorRed:    "#ff0000",
	core.ColorYellow: "#ffc800",
	core.ColorGreen:  "#008000",
	core.ColorBlue:   "#0000ff",
	core.ColorViolet: "#8000c8",
}

// Renderer turns a screen buffer into styled terminal output for one theme.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewRenderer builds the per-color styles for the given theme. Every style
// carries the theme background so the whole frame is filled uniformly.
func NewRenderer(theme Theme) *Renderer {
	bg := lipgloss.Color(theme.Background.Hex())

	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent.Hex())).
			Background(bg),
	}
	for c, hex := range blockPalette {
		styles[c] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(hex)).
			Background(bg)
	}

	return &Renderer{styles: styles}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := r.styles[startColor]
			if !ok {
				style = r.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
