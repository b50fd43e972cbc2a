package textimg

import (
	"image"
	"math"
)

// circularRings is the number of full color cycles a Circular fill makes
// between the region center and its corners.
const circularRings = 1

// Paint produces the fill color for a pixel position. Implementations are
// pure functions of position and safe for concurrent use.
type Paint interface {
	// ColorAt returns the color at pixel (x, y) in canvas coordinates.
	ColorAt(x, y float64) RGBA
}

// NewPaint builds a Paint for the given fill over the given region.
// The region anchors gradient geometry: linear gradients project across it,
// radial and circular gradients emanate from its center. A nil error is
// returned for every spec that passes validation.
func NewPaint(spec FillSpec, region image.Rectangle) (Paint, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	cx := float64(region.Min.X) + float64(region.Dx())/2
	cy := float64(region.Min.Y) + float64(region.Dy())/2

	switch spec.Mode {
	case FillSolid:
		return solidPaint{color: spec.ColorA.RGBA()}, nil

	case FillLinear:
		rad := spec.AngleDeg * math.Pi / 180
		sin, cos := math.Sincos(rad)
		hw := float64(region.Dx()) / 2
		hh := float64(region.Dy()) / 2
		maxProj := math.Abs(hw*cos) + math.Abs(hh*sin)
		return &linearPaint{
			cx: cx, cy: cy,
			cos: cos, sin: sin,
			maxProj: maxProj,
			ramp:    newRamp(spec),
		}, nil

	case FillRadial:
		return &radialPaint{
			cx: cx, cy: cy,
			radius: halfDiagonal(region),
			ramp:   newRamp(spec),
		}, nil

	case FillCircular:
		period := halfDiagonal(region) / circularRings
		return &circularPaint{
			cx: cx, cy: cy,
			period: period,
			ramp:   newRamp(spec),
		}, nil
	}

	return nil, &SpecError{Reason: "unknown fill mode " + string(spec.Mode)}
}

// halfDiagonal returns half the diagonal length of r, with a floor that
// keeps later divisions finite for degenerate regions.
func halfDiagonal(r image.Rectangle) float64 {
	w := float64(r.Dx())
	h := float64(r.Dy())
	d := math.Sqrt(w*w+h*h) / 2
	if d < 1 {
		return 1
	}
	return d
}

// solidPaint fills every pixel with one color.
type solidPaint struct {
	color RGBA
}

func (p solidPaint) ColorAt(x, y float64) RGBA { return p.color }

// ramp maps a normalized gradient factor in [0, 1] to a color, applying
// spread compression around the midpoint before interpolating.
type ramp struct {
	a, b   RGBA
	spread float64
}

func newRamp(spec FillSpec) ramp {
	r := ramp{a: spec.ColorA.RGBA(), spread: spec.spread()}
	if spec.ColorB != nil {
		r.b = spec.ColorB.RGBA()
	}
	return r
}

// at compresses the transition band around t=0.5 to the spread fraction
// and interpolates. spread=1 is the identity; smaller values harden the
// boundary between the two colors.
func (r ramp) at(t float64) RGBA {
	t = clamp01(t)
	if r.spread < 1 {
		half := r.spread / 2
		switch {
		case t < 0.5-half:
			t = 0
		case t > 0.5+half:
			t = 1
		default:
			t = (t - (0.5 - half)) / r.spread
		}
	}
	return r.a.Lerp(r.b, t)
}

// linearPaint projects each pixel onto the gradient axis through the
// region center and normalizes by the region's maximum projection, so the
// full color range spans the region at any angle.
type linearPaint struct {
	cx, cy   float64
	cos, sin float64
	maxProj  float64
	ramp     ramp
}

func (p *linearPaint) ColorAt(x, y float64) RGBA {
	proj := (x-p.cx)*p.cos + (y-p.cy)*p.sin
	t := (proj + p.maxProj) / (2 * p.maxProj)
	return p.ramp.at(t)
}

// radialPaint maps distance from the region center, normalized by the
// half-diagonal so corners reach the end color exactly.
type radialPaint struct {
	cx, cy float64
	radius float64
	ramp   ramp
}

func (p *radialPaint) ColorAt(x, y float64) RGBA {
	dx := x - p.cx
	dy := y - p.cy
	t := math.Sqrt(dx*dx+dy*dy) / p.radius
	return p.ramp.at(t)
}

// circularPaint is a radial gradient wrapped through a repeat period,
// producing concentric rings. With circularRings=1 the visible result
// matches radialPaint except that distances beyond the period wrap
// instead of clamping.
type circularPaint struct {
	cx, cy float64
	period float64
	ramp   ramp
}

func (p *circularPaint) ColorAt(x, y float64) RGBA {
	dx := x - p.cx
	dy := y - p.cy
	dist := math.Sqrt(dx*dx + dy*dy)
	t := dist / p.period
	t -= math.Floor(t)
	return p.ramp.at(t)
}
