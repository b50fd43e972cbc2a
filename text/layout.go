package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// BuildMask rasterizes lines into an anti-aliased coverage mask.
//
// Lines are stacked top to bottom in input order, left-aligned, with the
// face's recommended line height between baselines. Input is normalized
// to NFC before measurement so decomposed sequences rasterize the same
// as their composed equivalents.
//
// The returned mask is sized to the tight ink bounding box of the whole
// block; its bounds start at (0, 0). The returned rectangle is that same
// ink box in text-local coordinates, where (0, 0) is the first line's
// baseline origin. Empty or whitespace-only input yields a zero-area
// mask and a zero rectangle; callers treat that as "no text layer".
func BuildMask(lines []string, face *Face) (*image.Alpha, image.Rectangle) {
	face.mu.Lock()
	defer face.mu.Unlock()

	normalized := make([]string, len(lines))
	for i, line := range lines {
		normalized[i] = norm.NFC.String(line)
	}

	lineHeight := face.inner.Metrics().Height

	// Measure the ink box of every line at its dot and take the union.
	var union fixed.Rectangle26_6
	empty := true
	for i, line := range normalized {
		if line == "" {
			continue
		}
		b, _ := font.BoundString(face.inner, line)
		if b.Empty() {
			continue
		}
		dotY := lineHeight * fixed.Int26_6(i)
		b.Min.Y += dotY
		b.Max.Y += dotY
		if empty {
			union = b
			empty = false
		} else {
			union = union.Union(b)
		}
	}
	if empty {
		return image.NewAlpha(image.Rectangle{}), image.Rectangle{}
	}

	bbox := image.Rect(
		union.Min.X.Floor(), union.Min.Y.Floor(),
		union.Max.X.Ceil(), union.Max.Y.Ceil(),
	)

	mask := image.NewAlpha(image.Rect(0, 0, bbox.Dx(), bbox.Dy()))
	drawer := font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face.inner,
	}
	for i, line := range normalized {
		if line == "" {
			continue
		}
		drawer.Dot = fixed.Point26_6{
			X: -fixed.I(bbox.Min.X),
			Y: lineHeight*fixed.Int26_6(i) - fixed.I(bbox.Min.Y),
		}
		drawer.DrawString(line)
	}

	return mask, bbox
}

// MeasureString returns the ink bounds and advance of a single line at
// this face, in pixels. Useful for layout previews that do not need the
// rasterized mask.
func (f *Face) MeasureString(s string) (width, height float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, _ := font.BoundString(f.inner, norm.NFC.String(s))
	if b.Empty() {
		return 0, 0
	}
	return fixedToFloat64(b.Max.X - b.Min.X), fixedToFloat64(b.Max.Y - b.Min.Y)
}

func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
