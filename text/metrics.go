package text

import "golang.org/x/image/font"

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font
	// (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	Descent float64

	// LineGap is the extra gap the font recommends between lines, beyond
	// ascent + descent.
	LineGap float64
}

// LineHeight returns the recommended vertical distance between baselines
// of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

func metricsOf(f font.Face) Metrics {
	fm := f.Metrics()
	ascent := fixedToFloat64(fm.Ascent)
	descent := fixedToFloat64(fm.Descent)
	gap := fixedToFloat64(fm.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: gap,
	}
}
