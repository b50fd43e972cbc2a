package textimg

import (
	"context"
	"image"

	"github.com/Space-Cadet-Stuff/Custom-Text-as-Images/text"
)

// RenderResult is the output of one render: the composed canvas plus the
// placement data tests and callers use to reason about it.
type RenderResult struct {
	// Pixmap is the straight-alpha RGBA canvas, exactly
	// Canvas.WidthPx x Canvas.HeightPx.
	Pixmap *Pixmap

	// TextBounds is the canvas-space rectangle the glyph mask was placed
	// at, before effect expansion. Zero for empty text.
	TextBounds image.Rectangle

	// FallbackUsed reports that the requested font could not be resolved
	// and the bundled face was substituted.
	FallbackUsed bool
}

// Renderer runs the compositing pipeline. It holds only the font
// registry; every Render call is a pure function of its Style.
//
// Renderer is safe for concurrent use.
type Renderer struct {
	fonts *text.Registry
}

// NewRenderer creates a Renderer resolving fonts through reg.
// A nil registry is replaced with an empty one, which serves only the
// bundled fallback face.
func NewRenderer(reg *text.Registry) *Renderer {
	if reg == nil {
		reg = text.NewRegistry()
	}
	return &Renderer{fonts: reg}
}

// Fonts returns the renderer's font registry.
func (r *Renderer) Fonts() *text.Registry { return r.fonts }

// Render composes style into a canvas.
//
// The style is validated first; no partial canvas is ever returned on
// error. Layers are composited back to front: background scaled by its
// opacity, glow, outline, then the fill-painted glyph mask. Text that
// does not fit the canvas is clipped at the canvas edges.
//
// Cancellation is cooperative and checked between major stages. A
// canceled context returns ctx.Err().
func (r *Renderer) Render(ctx context.Context, style Style) (*RenderResult, error) {
	style = style.Normalized()
	if err := style.Validate(); err != nil {
		return nil, err
	}
	// Division instead of multiplication: the product overflows int for
	// absurd dimensions and a negative area would slip past the guard.
	if style.Canvas.WidthPx > MaxCanvasPixels/style.Canvas.HeightPx {
		return nil, ErrCanvasTooLarge
	}

	log := Logger()

	// Stage 1: glyph mask.
	var (
		mask     *Mask
		fallback bool
	)
	if hasText(style.Text) {
		face, fb, err := r.fonts.Face(style.Font, float64(style.SizePt))
		if err != nil {
			return nil, err
		}
		if fb {
			log.Warn("font not found, using bundled fallback", "font", style.Font)
		}
		fallback = fb

		alpha, _ := text.BuildMask(style.Text, face)
		mask = NewMaskFromAlpha(alpha)
		log.Debug("glyph mask built",
			"lines", len(style.Text), "w", mask.Width(), "h", mask.Height())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: effect masks.
	var outlineMask, glowMask *Mask
	if mask != nil && !mask.Empty() {
		if style.Outline.Enabled() {
			outlineMask = Dilate(mask, style.Outline.ThicknessPx)
		}
		if style.Glow.Enabled() {
			glowMask = Blur(mask, GlowSigma(style.Glow.RadiusPx))
			ScaleCoverage(glowMask, glowGain(style.Glow.IntensityPct))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: composite.
	canvas := NewPixmap(style.Canvas.WidthPx, style.Canvas.HeightPx)
	canvas.Clear(RGBA{})

	if err := drawBackground(canvas, style.Background); err != nil {
		return nil, err
	}

	result := &RenderResult{Pixmap: canvas, FallbackUsed: fallback}
	if mask == nil || mask.Empty() {
		return result, nil
	}

	// The glyph box anchors within the margin-inset canvas region; effect
	// bleed extends past it and is clipped only by the canvas edges.
	region := contentRegion(style.Canvas, style.Margins)
	origin := style.Align.Anchor(region, image.Pt(mask.Width(), mask.Height()))
	result.TextBounds = image.Rectangle{Min: origin, Max: origin.Add(image.Pt(mask.Width(), mask.Height()))}

	if glowMask != nil {
		reach := kernelReach(GlowSigma(style.Glow.RadiusPx))
		stampMask(canvas, glowMask, origin.Sub(image.Pt(reach, reach)),
			solidPaint{color: style.Glow.Color.RGBA()})
	}
	if outlineMask != nil {
		th := style.Outline.ThicknessPx
		stampMask(canvas, outlineMask, origin.Sub(image.Pt(th, th)),
			solidPaint{color: style.Outline.Color.RGBA()})
	}

	fillPaint, err := NewPaint(style.TextFill, result.TextBounds)
	if err != nil {
		return nil, err
	}
	stampMask(canvas, mask, origin, fillPaint)

	log.Debug("composite done",
		"w", canvas.Width(), "h", canvas.Height(), "text_bounds", result.TextBounds)
	return result, nil
}

func hasText(lines []string) bool {
	for _, line := range lines {
		if line != "" {
			return true
		}
	}
	return false
}

// glowGain converts the glow intensity percentage to a coverage
// multiplier. 25% restores the blurred falloff; higher values push the
// halo toward full opacity near the glyph.
func glowGain(intensityPct int) float64 {
	return float64(intensityPct) * 4 / 100
}

// drawBackground fills the whole canvas with the background paint, its
// alpha scaled by the opacity percentage. The canvas is transparent at
// this point, so pixels are written directly.
func drawBackground(canvas *Pixmap, bg Background) error {
	opacity := float64(bg.OpacityPct) / 100
	if opacity == 0 {
		return nil
	}

	paint, err := NewPaint(bg.Fill, canvas.Bounds())
	if err != nil {
		return err
	}

	w, h := canvas.Width(), canvas.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := paint.ColorAt(float64(x)+0.5, float64(y)+0.5)
			canvas.SetPixel(x, y, c.WithAlpha(c.A*opacity))
		}
	}
	return nil
}

// stampMask source-over blends the paint onto the canvas wherever the
// mask has coverage. origin is the canvas position of the mask's (0, 0);
// mask pixels outside the canvas are clipped.
func stampMask(canvas *Pixmap, mask *Mask, origin image.Point, paint Paint) {
	mw, mh := mask.Width(), mask.Height()
	cw, ch := canvas.Width(), canvas.Height()

	for my := 0; my < mh; my++ {
		cy := origin.Y + my
		if cy < 0 || cy >= ch {
			continue
		}
		row := mask.Data()[my*mw : (my+1)*mw]
		for mx := 0; mx < mw; mx++ {
			cov := row[mx]
			if cov == 0 {
				continue
			}
			cx := origin.X + mx
			if cx < 0 || cx >= cw {
				continue
			}
			c := paint.ColorAt(float64(cx)+0.5, float64(cy)+0.5)
			canvas.BlendPixel(cx, cy, c.WithAlpha(c.A*float64(cov)/255))
		}
	}
}
