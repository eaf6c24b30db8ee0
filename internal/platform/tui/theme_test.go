package tui

import (
	"testing"

	"github.com/arcade-tui/arkanoid/internal/core"
)

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name       string
		background core.RGB
		accent     core.RGB
	}{
		{"black", core.RGB{R: 0, G: 0, B: 0}, core.RGB{R: 255, G: 255, B: 255}},
		{"white", core.RGB{R: 255, G: 255, B: 255}, core.RGB{R: 0, G: 0, B: 0}},
		{"darkcyan", core.RGB{R: 32, G: 88, B: 110}, core.RGB{R: 223, G: 167, B: 145}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := ThemeByName(tt.name)
			if err != nil {
				t.Fatalf("ThemeByName(%q) failed: %v", tt.name, err)
			}
			if theme.Background != tt.background {
				t.Errorf("background = %+v, expected %+v", theme.Background, tt.background)
			}
			if theme.Accent != tt.accent {
				t.Errorf("accent = %+v, expected %+v", theme.Accent, tt.accent)
			}
		})
	}
}

func TestThemeByNameUnknown(t *testing.T) {
	if _, err := ThemeByName("magenta"); err == nil {
		t.Error("expected an error for an unknown background name")
	}
}

func TestRenderScreenKeepsLayout(t *testing.T) {
	theme, err := ThemeByName("black")
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(theme)

	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "Score: 0")
	s.SetColored(4, 1, '█', core.ColorRed)
	s.SetColored(5, 1, '█', core.ColorGreen)

	out := r.RenderScreen(s)

	lines := 1
	for _, c := range out {
		if c == '\n' {
			lines++
		}
	}
	if lines != 3 {
		t.Errorf("rendered %d lines, expected 3", lines)
	}

	for _, want := range []string{"Score: 0", "█"} {
		if !containsPlain(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

// containsPlain reports whether the styled output contains the given text,
// ignoring ANSI escape sequences.
func containsPlain(styled, want string) bool {
	plain := make([]rune, 0, len(styled))
	inEscape := false
	for _, r := range styled {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			plain = append(plain, r)
		}
	}
	return len(want) > 0 && containsRunes(plain, []rune(want))
}

func containsRunes(haystack, needle []rune) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
