package textimg

import (
	"image/color"
	"testing"
)

func TestRGBAColor(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 1}.Color()
	nrgba, ok := c.(color.NRGBA)
	if !ok {
		t.Fatalf("Color() returned %T, want color.NRGBA", c)
	}
	if nrgba.R != 255 || nrgba.B != 0 || nrgba.A != 255 {
		t.Errorf("NRGBA = %v", nrgba)
	}
	if nrgba.G < 127 || nrgba.G > 128 {
		t.Errorf("G = %d, want ~127", nrgba.G)
	}
}

func TestRGBALerp(t *testing.T) {
	black := RGBA{A: 1}
	white := RGBA{R: 1, G: 1, B: 1, A: 1}

	tests := []struct {
		t    float64
		want RGBA
	}{
		{0, black},
		{1, white},
		{0.5, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}},
	}
	for _, tt := range tests {
		if got := black.Lerp(white, tt.t); !colorsEqual(got, tt.want, 1e-9) {
			t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestRGBAWithAlpha(t *testing.T) {
	c := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}.WithAlpha(0.25)
	if c.A != 0.25 || c.R != 0.2 {
		t.Errorf("WithAlpha = %v", c)
	}
}

func TestRGBRoundTrip(t *testing.T) {
	tests := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{18, 52, 86},
		{255, 0, 128},
	}
	for _, c := range tests {
		if got := ParseHex(c.Hex()); got != c {
			t.Errorf("ParseHex(%q) = %v, want %v", c.Hex(), got, c)
		}
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{18, 52, 86}).Hex(); got != "#123456" {
		t.Errorf("Hex = %q, want #123456", got)
	}
	if got := (RGB{255, 0, 128}).Hex(); got != "#ff0080" {
		t.Errorf("Hex = %q, want #ff0080", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#ff0080", RGB{255, 0, 128}},
		{"ff0080", RGB{255, 0, 128}},
		{"#FF0080", RGB{255, 0, 128}},
		{"#000000", RGB{}},
		// Malformed input falls back to black.
		{"", RGB{}},
		{"#fff", RGB{}},
		{"#zzzzzz", RGB{}},
		{"#12345", RGB{}},
	}
	for _, tt := range tests {
		if got := ParseHex(tt.in); got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRGBToRGBA(t *testing.T) {
	c := RGB{255, 0, 51}.RGBA()
	if c.R != 1 || c.G != 0 || c.A != 1 {
		t.Errorf("RGBA = %v", c)
	}
	if c.B < 0.19 || c.B > 0.21 {
		t.Errorf("B = %v, want 0.2", c.B)
	}
}
