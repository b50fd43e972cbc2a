package textimg

import (
	"image"
	"image/color"
)

// Pixmap represents a rectangular pixel buffer in straight-alpha RGBA
// format, 4 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new, fully transparent pixmap with the given
// dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (straight-alpha RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the pixmap are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
// Returns transparent black for coordinates outside the pixmap.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return RGBA{}
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// BlendPixel composites c over the existing pixel at (x, y) using
// source-over blending on straight alpha. Coordinates outside the pixmap
// are ignored.
func (p *Pixmap) BlendPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	if c.A <= 0 {
		return
	}
	if c.A >= 1 {
		p.SetPixel(x, y, c)
		return
	}
	i := (y*p.width + x) * 4
	dstA := float64(p.data[i+3]) / 255
	outA := c.A + dstA*(1-c.A)
	if outA <= 0 {
		p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = 0, 0, 0, 0
		return
	}
	blend := func(src float64, dst uint8) uint8 {
		d := float64(dst) / 255
		out := (src*c.A + d*dstA*(1-c.A)) / outA
		return uint8(clamp255(out * 255))
	}
	p.data[i+0] = blend(c.R, p.data[i+0])
	p.data[i+1] = blend(c.G, p.data[i+1])
	p.data[i+2] = blend(c.B, p.data[i+2])
	p.data[i+3] = uint8(clamp255(outA * 255))
}

// Clone creates a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// ToImage converts the pixmap to an image.NRGBA. The straight-alpha byte
// layout matches NRGBA exactly, so this is a plain copy.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
