package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	textimg "github.com/Space-Cadet-Stuff/Custom-Text-as-Images"
)

// styleOpts holds the command-line flags that map onto a style. The
// defaults mirror the library defaults so a bare invocation renders the
// sample text.
type styleOpts struct {
	text         string
	font         string
	size         int
	color        string
	color2       string
	gradient     string
	angle        float64
	spread       int
	outlineColor string
	outline      int
	glowColor    string
	glowIntens   int
	glowRadius   int
	bgColor      string
	bgColor2     string
	bgGradient   string
	bgAngle      float64
	bgSpread     int
	bgOpacity    int
	align        string
	width        int
	height       int
	margin       int
}

func (o *styleOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.text, "text", "t", "Sample Text", "text to render, \\n separates lines")
	f.StringVar(&o.font, "font", "", "font name or path to a .ttf/.otf file")
	f.IntVar(&o.size, "size", 48, "font size in points (8-200)")
	f.StringVar(&o.color, "color", "#000000", "text color")
	f.StringVar(&o.color2, "color2", "#ffffff", "second text color for gradient fills")
	f.StringVar(&o.gradient, "gradient", "None", "text fill mode: None, Linear, Radial, Circular")
	f.Float64Var(&o.angle, "angle", 0, "text gradient angle in degrees")
	f.IntVar(&o.spread, "spread", 100, "text gradient spread percent (1-100)")
	f.StringVar(&o.outlineColor, "outline-color", "#ffffff", "outline color")
	f.IntVar(&o.outline, "outline", 0, "outline thickness in pixels (0-10, 0 disables)")
	f.StringVar(&o.glowColor, "glow-color", "#0000ff", "glow color")
	f.IntVar(&o.glowIntens, "glow-intensity", 0, "glow intensity percent (0-100, 0 disables)")
	f.IntVar(&o.glowRadius, "glow-radius", 5, "glow blur radius in pixels (0-20)")
	f.StringVar(&o.bgColor, "bg-color", "#ffffff", "background color")
	f.StringVar(&o.bgColor2, "bg-color2", "#000000", "second background color for gradient fills")
	f.StringVar(&o.bgGradient, "bg-gradient", "None", "background fill mode")
	f.Float64Var(&o.bgAngle, "bg-angle", 0, "background gradient angle in degrees")
	f.IntVar(&o.bgSpread, "bg-spread", 100, "background gradient spread percent")
	f.IntVar(&o.bgOpacity, "bg-opacity", 100, "background opacity percent (0 = transparent)")
	f.StringVar(&o.align, "align", "center", "alignment: nw n ne w center e sw s se")
	f.IntVarP(&o.width, "width", "W", 800, "canvas width in pixels")
	f.IntVarP(&o.height, "height", "H", 400, "canvas height in pixels")
	f.IntVar(&o.margin, "margin", 0, "margin on all sides in pixels")
}

// apply overrides fields of style with every flag the user set
// explicitly. Starting from a loaded preset, untouched flags keep the
// preset's values.
func (o *styleOpts) apply(cmd *cobra.Command, style *textimg.Style) error {
	f := cmd.Flags()

	set := func(name string, fn func()) {
		if f.Changed(name) {
			fn()
		}
	}

	set("text", func() { style.Text = splitLines(o.text) })
	set("font", func() { style.Font = o.font })
	set("size", func() { style.SizePt = o.size })
	set("color", func() { style.TextFill.ColorA = textimg.ParseHex(o.color) })
	set("color2", func() {
		c := textimg.ParseHex(o.color2)
		style.TextFill.ColorB = &c
	})
	set("gradient", func() { style.TextFill.Mode = textimg.FillMode(o.gradient) })
	set("angle", func() { style.TextFill.AngleDeg = o.angle })
	set("spread", func() { style.TextFill.SpreadPct = o.spread })
	set("outline-color", func() { style.Outline.Color = textimg.ParseHex(o.outlineColor) })
	set("outline", func() { style.Outline.ThicknessPx = o.outline })
	set("glow-color", func() { style.Glow.Color = textimg.ParseHex(o.glowColor) })
	set("glow-intensity", func() { style.Glow.IntensityPct = o.glowIntens })
	set("glow-radius", func() { style.Glow.RadiusPx = o.glowRadius })
	set("bg-color", func() { style.Background.Fill.ColorA = textimg.ParseHex(o.bgColor) })
	set("bg-color2", func() {
		c := textimg.ParseHex(o.bgColor2)
		style.Background.Fill.ColorB = &c
	})
	set("bg-gradient", func() { style.Background.Fill.Mode = textimg.FillMode(o.bgGradient) })
	set("bg-angle", func() { style.Background.Fill.AngleDeg = o.bgAngle })
	set("bg-spread", func() { style.Background.Fill.SpreadPct = o.bgSpread })
	set("bg-opacity", func() { style.Background.OpacityPct = o.bgOpacity })
	set("align", func() { style.Align = textimg.Alignment(o.align) })
	set("width", func() { style.Canvas.WidthPx = o.width })
	set("height", func() { style.Canvas.HeightPx = o.height })
	set("margin", func() {
		style.Margins = textimg.Margins{
			Left: o.margin, Right: o.margin, Top: o.margin, Bottom: o.margin,
		}
	})

	// Gradient modes need a second color even when the flag was left at
	// its default.
	if style.TextFill.Mode != textimg.FillSolid && style.TextFill.ColorB == nil {
		c := textimg.ParseHex(o.color2)
		style.TextFill.ColorB = &c
	}
	if style.Background.Fill.Mode != textimg.FillSolid && style.Background.Fill.ColorB == nil {
		c := textimg.ParseHex(o.bgColor2)
		style.Background.Fill.ColorB = &c
	}

	if err := style.Validate(); err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}
	return nil
}

func splitLines(s string) []string {
	// The shell delivers "\n" as two characters.
	s = strings.ReplaceAll(s, `\n`, "\n")
	return strings.Split(s, "\n")
}
