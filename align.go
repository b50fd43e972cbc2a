package textimg

import "image"

// Alignment is one of the nine anchor positions for the text block within
// the canvas. The compass-point string values match the original preset
// format.
type Alignment string

const (
	AlignTopLeft     Alignment = "nw"
	AlignTop         Alignment = "n"
	AlignTopRight    Alignment = "ne"
	AlignLeft        Alignment = "w"
	AlignCenter      Alignment = "center"
	AlignRight       Alignment = "e"
	AlignBottomLeft  Alignment = "sw"
	AlignBottom      Alignment = "s"
	AlignBottomRight Alignment = "se"
)

// Valid reports whether a is one of the nine defined alignments.
func (a Alignment) Valid() bool {
	switch a {
	case AlignTopLeft, AlignTop, AlignTopRight,
		AlignLeft, AlignCenter, AlignRight,
		AlignBottomLeft, AlignBottom, AlignBottomRight:
		return true
	}
	return false
}

// Anchor returns the top-left position of a box of the given size placed
// within region according to the alignment. Boxes larger than the region
// overflow symmetrically for centered alignments and past the far edge
// otherwise; clipping is left to the compositor.
func (a Alignment) Anchor(region image.Rectangle, size image.Point) image.Point {
	var x, y int

	switch a {
	case AlignTopLeft, AlignLeft, AlignBottomLeft:
		x = region.Min.X
	case AlignTop, AlignCenter, AlignBottom:
		x = region.Min.X + (region.Dx()-size.X)/2
	case AlignTopRight, AlignRight, AlignBottomRight:
		x = region.Max.X - size.X
	}

	switch a {
	case AlignTopLeft, AlignTop, AlignTopRight:
		y = region.Min.Y
	case AlignLeft, AlignCenter, AlignRight:
		y = region.Min.Y + (region.Dy()-size.Y)/2
	case AlignBottomLeft, AlignBottom, AlignBottomRight:
		y = region.Max.Y - size.Y
	}

	return image.Point{X: x, Y: y}
}

// contentRegion returns the canvas rectangle inset by the margins.
func contentRegion(c Canvas, m Margins) image.Rectangle {
	return image.Rect(m.Left, m.Top, c.WidthPx-m.Right, c.HeightPx-m.Bottom)
}
