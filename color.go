package textimg

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Alpha is straight, not
// premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// WithAlpha returns the color with its alpha replaced by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Lerp performs linear interpolation between two colors.
// Interpolation is a straight per-channel lerp in sRGB space.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// RGB is an 8-bit sRGB color triple as it appears in a Style.
// It serializes to and from "#RRGGBB" hex strings in presets.
type RGB struct {
	R, G, B uint8
}

// RGBA converts the triple to a fully opaque RGBA.
func (c RGB) RGBA() RGBA {
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: 1,
	}
}

// Hex returns the "#RRGGBB" representation of the color.
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	return string([]byte{
		'#',
		digits[c.R>>4], digits[c.R&0xf],
		digits[c.G>>4], digits[c.G&0xf],
		digits[c.B>>4], digits[c.B&0xf],
	})
}

// ParseHex parses a "#RRGGBB" or "RRGGBB" hex string.
// Malformed input yields black, matching the tolerant behavior expected
// when loading hand-edited presets.
func ParseHex(hex string) RGB {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return RGB{}
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return RGB{}
		}
		v[i] = hi<<4 | lo
	}
	return RGB{R: v[0], G: v[1], B: v[2]}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
