package textimg

import (
	"image"
	"testing"
)

func TestPixmapSetGet(t *testing.T) {
	p := NewPixmap(4, 3)

	c := RGBA{R: 1, G: 0.5, B: 0.25, A: 1}
	p.SetPixel(2, 1, c)

	if got := p.GetPixel(2, 1); !colorsEqual(got, c, 0.01) {
		t.Errorf("GetPixel = %v, want %v", got, c)
	}

	// Out of bounds reads are transparent, writes are ignored.
	if got := p.GetPixel(-1, 0); got != (RGBA{}) {
		t.Errorf("out-of-bounds GetPixel = %v, want zero", got)
	}
	p.SetPixel(10, 10, c) // must not panic
}

func TestPixmapClear(t *testing.T) {
	p := NewPixmap(3, 3)
	p.Clear(RGBA{R: 1, A: 1})

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := p.GetPixel(x, y); !colorsEqual(got, RGBA{R: 1, A: 1}, 0.01) {
				t.Fatalf("pixel (%d,%d) = %v after Clear", x, y, got)
			}
		}
	}
}

func TestBlendPixelOverOpaque(t *testing.T) {
	p := NewPixmap(1, 1)
	p.SetPixel(0, 0, RGBA{R: 1, G: 1, B: 1, A: 1})

	// 50% black over white is mid gray, output stays opaque.
	p.BlendPixel(0, 0, RGBA{A: 0.5})

	got := p.GetPixel(0, 0)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if !colorsEqual(got, want, 0.01) {
		t.Errorf("blend = %v, want %v", got, want)
	}
}

func TestBlendPixelOverTransparent(t *testing.T) {
	p := NewPixmap(1, 1)

	// Source over nothing is the source.
	c := RGBA{R: 0.8, G: 0.2, B: 0.4, A: 0.6}
	p.BlendPixel(0, 0, c)

	if got := p.GetPixel(0, 0); !colorsEqual(got, c, 0.01) {
		t.Errorf("blend over transparent = %v, want %v", got, c)
	}
}

func TestBlendPixelFullyTransparentSource(t *testing.T) {
	p := NewPixmap(1, 1)
	base := RGBA{R: 0.3, G: 0.6, B: 0.9, A: 1}
	p.SetPixel(0, 0, base)

	p.BlendPixel(0, 0, RGBA{R: 1, A: 0})

	if got := p.GetPixel(0, 0); !colorsEqual(got, base, 0.01) {
		t.Errorf("zero-alpha blend changed pixel: %v", got)
	}
}

func TestBlendPixelOpaqueSourceReplaces(t *testing.T) {
	p := NewPixmap(1, 1)
	p.SetPixel(0, 0, RGBA{R: 1, G: 1, B: 1, A: 1})

	c := RGBA{R: 0.1, G: 0.2, B: 0.3, A: 1}
	p.BlendPixel(0, 0, c)

	if got := p.GetPixel(0, 0); !colorsEqual(got, c, 0.01) {
		t.Errorf("opaque blend = %v, want %v", got, c)
	}
}

func TestBlendPixelAccumulatesAlpha(t *testing.T) {
	p := NewPixmap(1, 1)

	p.BlendPixel(0, 0, RGBA{R: 1, A: 0.5})
	p.BlendPixel(0, 0, RGBA{R: 1, A: 0.5})

	// outA = 0.5 + 0.5*0.5 = 0.75
	got := p.GetPixel(0, 0)
	if got.A < 0.73 || got.A > 0.77 {
		t.Errorf("accumulated alpha = %v, want ~0.75", got.A)
	}
}

func TestPixmapClone(t *testing.T) {
	p := NewPixmap(2, 2)
	p.SetPixel(0, 0, RGBA{R: 1, A: 1})

	c := p.Clone()
	c.SetPixel(0, 0, RGBA{G: 1, A: 1})

	if got := p.GetPixel(0, 0); got.G > 0.01 {
		t.Error("Clone aliases the original buffer")
	}
}

func TestPixmapToImage(t *testing.T) {
	p := NewPixmap(2, 1)
	p.SetPixel(0, 0, RGBA{R: 1, A: 0.5})

	img := p.ToImage()
	if img.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Errorf("bounds = %v", img.Bounds())
	}

	// Straight alpha carries through unchanged.
	c := img.NRGBAAt(0, 0)
	if c.R != 255 {
		t.Errorf("R = %d, want 255 (not premultiplied)", c.R)
	}
	if c.A < 126 || c.A > 128 {
		t.Errorf("A = %d, want ~127", c.A)
	}
}
