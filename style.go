package textimg

import "math"

// FillMode selects how a region is filled: a single color or one of the
// gradient types. The string values match the original preset format.
type FillMode string

const (
	// FillSolid fills with ColorA only.
	FillSolid FillMode = "None"
	// FillLinear interpolates ColorA to ColorB along the AngleDeg axis.
	FillLinear FillMode = "Linear"
	// FillRadial interpolates ColorA (center) to ColorB (edge) by distance.
	FillRadial FillMode = "Radial"
	// FillCircular is FillRadial wrapped through a repeat period, producing
	// concentric bands. With the default single band it matches FillRadial.
	FillCircular FillMode = "Circular"
)

// valid reports whether m is one of the defined fill modes.
func (m FillMode) valid() bool {
	switch m {
	case FillSolid, FillLinear, FillRadial, FillCircular:
		return true
	}
	return false
}

// FillSpec describes a solid or gradient fill for a rectangular region.
type FillSpec struct {
	Mode   FillMode
	ColorA RGB
	// ColorB is required for the gradient modes and ignored for FillSolid.
	ColorB *RGB
	// AngleDeg is the gradient axis for FillLinear, in degrees. 0 runs
	// left to right, 90 top to bottom. Normalized to [0, 360).
	AngleDeg float64
	// SpreadPct compresses the gradient ramp symmetrically around its
	// midpoint. 100 is the full ramp; smaller values push more of the
	// region to the pure end colors. 0 means unset and is treated as 100.
	SpreadPct int
}

// Solid returns a solid fill of the given color.
func Solid(c RGB) FillSpec {
	return FillSpec{Mode: FillSolid, ColorA: c}
}

// validate checks mode and color requirements.
func (s FillSpec) validate() error {
	if !s.Mode.valid() {
		return &SpecError{Reason: "unknown fill mode " + string(s.Mode)}
	}
	if s.Mode != FillSolid && s.ColorB == nil {
		return &SpecError{Reason: string(s.Mode) + " gradient requires a second color"}
	}
	return nil
}

// spread returns the effective SpreadPct clamped to [1, 100].
func (s FillSpec) spread() float64 {
	if s.SpreadPct <= 0 {
		return 1
	}
	if s.SpreadPct > 100 {
		return 1
	}
	return float64(s.SpreadPct) / 100
}

// Outline describes the text outline effect. Thickness 0 disables it.
type Outline struct {
	Color       RGB
	ThicknessPx int
}

// Enabled reports whether the outline layer will be drawn.
func (o Outline) Enabled() bool { return o.ThicknessPx > 0 }

// Glow describes the text glow effect. Intensity 0 or radius 0 disables it.
type Glow struct {
	Color        RGB
	IntensityPct int
	RadiusPx     int
}

// Enabled reports whether the glow layer will be drawn.
func (g Glow) Enabled() bool { return g.IntensityPct > 0 && g.RadiusPx > 0 }

// Background describes the bottom layer: a fill whose alpha is scaled by
// OpacityPct. 0 yields a fully transparent background.
type Background struct {
	Fill       FillSpec
	OpacityPct int
}

// Canvas holds the output dimensions in pixels.
type Canvas struct {
	WidthPx  int
	HeightPx int
}

// Margins inset the region the text block is aligned within.
type Margins struct {
	Left, Right, Top, Bottom int
}

// MaxCanvasPixels bounds the canvas area to cap render memory.
// 10000x10000 straight-alpha RGBA is 400 MB.
const MaxCanvasPixels = 10000 * 10000

// Size limits for the validated Style fields.
const (
	MinSizePt       = 8
	MaxSizePt       = 200
	MaxOutlinePx    = 10
	MaxGlowRadiusPx = 20
)

// Style is the immutable configuration for one render. It is constructed
// by the control surface (or loaded from a preset), validated once at the
// pipeline boundary, and never mutated by the pipeline.
type Style struct {
	// Text holds the lines to render, stacked top to bottom. Empty text
	// produces a background-only canvas.
	Text []string
	// Font is a registry name or a path to a .ttf/.otf file.
	Font   string
	SizePt int

	TextFill   FillSpec
	Outline    Outline
	Glow       Glow
	Background Background

	Align   Alignment
	Margins Margins
	Canvas  Canvas
}

// DefaultStyle returns the style the desktop application starts with.
func DefaultStyle() Style {
	return Style{
		Text:   []string{"Sample Text"},
		SizePt: 48,
		TextFill: FillSpec{
			Mode:      FillSolid,
			ColorA:    RGB{0, 0, 0},
			SpreadPct: 100,
		},
		Outline: Outline{Color: RGB{255, 255, 255}, ThicknessPx: 2},
		Glow:    Glow{Color: RGB{0, 0, 255}, IntensityPct: 19, RadiusPx: 5},
		Background: Background{
			Fill:       FillSpec{Mode: FillSolid, ColorA: RGB{255, 255, 255}, SpreadPct: 100},
			OpacityPct: 100,
		},
		Align:   AlignCenter,
		Margins: Margins{},
		Canvas:  Canvas{WidthPx: 800, HeightPx: 400},
	}
}

// Normalized returns a copy with gradient angles wrapped into [0, 360).
// Angle normalization is not an error condition.
func (s Style) Normalized() Style {
	s.TextFill.AngleDeg = normalizeAngle(s.TextFill.AngleDeg)
	s.Background.Fill.AngleDeg = normalizeAngle(s.Background.Fill.AngleDeg)
	return s
}

func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Validate checks every field against its documented range. It returns a
// *ValidationError for out-of-range fields and a *SpecError for malformed
// fills. A nil return means the style is safe to render.
func (s Style) Validate() error {
	if s.SizePt < MinSizePt || s.SizePt > MaxSizePt {
		return &ValidationError{Field: "sizePt", Reason: "must be between 8 and 200"}
	}
	if s.Outline.ThicknessPx < 0 || s.Outline.ThicknessPx > MaxOutlinePx {
		return &ValidationError{Field: "outline.thicknessPx", Reason: "must be between 0 and 10"}
	}
	if s.Glow.IntensityPct < 0 || s.Glow.IntensityPct > 100 {
		return &ValidationError{Field: "glow.intensityPct", Reason: "must be between 0 and 100"}
	}
	if s.Glow.RadiusPx < 0 || s.Glow.RadiusPx > MaxGlowRadiusPx {
		return &ValidationError{Field: "glow.radiusPx", Reason: "must be between 0 and 20"}
	}
	if s.Background.OpacityPct < 0 || s.Background.OpacityPct > 100 {
		return &ValidationError{Field: "background.opacityPct", Reason: "must be between 0 and 100"}
	}
	if s.TextFill.SpreadPct < 0 || s.TextFill.SpreadPct > 100 {
		return &ValidationError{Field: "textFill.spreadPct", Reason: "must be between 0 and 100"}
	}
	if s.Background.Fill.SpreadPct < 0 || s.Background.Fill.SpreadPct > 100 {
		return &ValidationError{Field: "background.fill.spreadPct", Reason: "must be between 0 and 100"}
	}
	if s.Canvas.WidthPx < 1 {
		return &ValidationError{Field: "canvas.widthPx", Reason: "must be at least 1"}
	}
	if s.Canvas.HeightPx < 1 {
		return &ValidationError{Field: "canvas.heightPx", Reason: "must be at least 1"}
	}
	if s.Margins.Left < 0 || s.Margins.Right < 0 || s.Margins.Top < 0 || s.Margins.Bottom < 0 {
		return &ValidationError{Field: "margins", Reason: "must not be negative"}
	}
	if !s.Align.Valid() {
		return &ValidationError{Field: "align", Reason: "unknown alignment " + string(s.Align)}
	}
	if err := s.TextFill.validate(); err != nil {
		return err
	}
	if err := s.Background.Fill.validate(); err != nil {
		return err
	}
	return nil
}
