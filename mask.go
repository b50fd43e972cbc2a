package textimg

import "image"

// Mask represents a single-channel coverage buffer. Values range from 0
// (not covered) to 255 (fully covered); intermediate values carry the
// anti-aliasing weight of rasterized shapes.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMaskFromAlpha creates a mask from an image's alpha channel.
// This is the bridge from the text package, whose glyph rasterizer
// produces *image.Alpha coverage.
func NewMaskFromAlpha(img *image.Alpha) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask(w, h)
	for y := 0; y < h; y++ {
		off := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(mask.data[y*w:(y+1)*w], img.Pix[off:off+w])
	}
	return mask
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the coverage value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the coverage value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Empty reports whether the mask has zero area.
func (m *Mask) Empty() bool {
	return m.width <= 0 || m.height <= 0
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying coverage data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}
