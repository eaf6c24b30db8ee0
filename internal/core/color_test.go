package core

import "testing"

func TestRGBComplement(t *testing.T) {
	tests := []struct {
		name     string
		in       RGB
		expected RGB
	}{
		{"black to white", RGB{0, 0, 0}, RGB{255, 255, 255}},
		{"white to black", RGB{255, 255, 255}, RGB{0, 0, 0}},
		{"darkcyan", RGB{32, 88, 110}, RGB{223, 167, 145}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Complement(); got != tc.expected {
				t.Errorf("Complement() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRGBComplementInvolution(t *testing.T) {
	c := RGB{12, 200, 77}
	if c.Complement().Complement() != c {
		t.Error("Complement applied twice should return the original color")
	}
}

func TestRGBHex(t *testing.T) {
	if got := (RGB{255, 0, 16}).Hex(); got != "#ff0010" {
		t.Errorf("Hex() = %q, expected %q", got, "#ff0010")
	}
}
