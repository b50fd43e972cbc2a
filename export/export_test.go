package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

// testImage returns a 4x2 image with one semi-transparent red pixel.
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 128})
	return img
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.png", PNG},
		{"out.PNG", PNG},
		{"out.jpg", JPEG},
		{"out.jpeg", JPEG},
		{"out.bmp", BMP},
		{"out.tif", TIFF},
		{"out.tiff", TIFF},
		{"dir.v2/out.png", PNG},
	}
	for _, tt := range tests {
		got, err := FormatForPath(tt.path)
		if err != nil {
			t.Errorf("FormatForPath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	for _, path := range []string{"out.gif", "out", "out."} {
		if _, err := FormatForPath(path); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("FormatForPath(%q) err = %v, want ErrUnknownFormat", path, err)
		}
	}
}

func TestKeepsAlpha(t *testing.T) {
	if !PNG.KeepsAlpha() || !TIFF.KeepsAlpha() {
		t.Error("PNG and TIFF must keep alpha")
	}
	if JPEG.KeepsAlpha() || BMP.KeepsAlpha() {
		t.Error("JPEG and BMP cannot keep alpha")
	}
}

func TestEncodePNGPreservesAlpha(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), PNG); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	_, _, _, a := decoded.At(1, 1).RGBA()
	if a == 0 || a == 0xffff {
		t.Errorf("alpha = %#x, want semi-transparent", a)
	}
}

func TestEncodeAllFormats(t *testing.T) {
	for _, f := range []Format{PNG, JPEG, BMP, TIFF} {
		var buf bytes.Buffer
		if err := Encode(&buf, testImage(), f); err != nil {
			t.Errorf("Encode(%v): %v", f, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Encode(%v) wrote nothing", f)
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), Format("gif")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown format err = %v", err)
	}
}

func TestFlatten(t *testing.T) {
	out := Flatten(testImage(), color.White)

	// Untouched pixels become the matte.
	if c := out.RGBAAt(0, 0); c.R != 255 || c.G != 255 || c.B != 255 || c.A != 255 {
		t.Errorf("matte pixel = %v, want opaque white", c)
	}

	// The semi-transparent red pixel blends toward white and is opaque.
	c := out.RGBAAt(1, 1)
	if c.A != 255 {
		t.Errorf("flattened alpha = %d, want 255", c.A)
	}
	if c.R < 250 {
		t.Errorf("R = %d, want near 255", c.R)
	}
	if c.G < 120 || c.G > 135 {
		t.Errorf("G = %d, want ~127 (half blended)", c.G)
	}
}

func TestEncodeDIB(t *testing.T) {
	var full bytes.Buffer
	if err := bmp.Encode(&full, Flatten(testImage(), color.White)); err != nil {
		t.Fatal(err)
	}

	var dib bytes.Buffer
	if err := EncodeDIB(&dib, testImage()); err != nil {
		t.Fatalf("EncodeDIB: %v", err)
	}

	// The DIB payload is the BMP stream minus its 14-byte file header.
	if got, want := dib.Len(), full.Len()-bmpFileHeaderSize; got != want {
		t.Fatalf("dib length = %d, want %d", got, want)
	}
	if !bytes.Equal(dib.Bytes(), full.Bytes()[bmpFileHeaderSize:]) {
		t.Error("dib payload differs from headerless bmp stream")
	}

	// A BITMAPINFOHEADER starts with its own size, 40.
	if dib.Bytes()[0] != 40 {
		t.Errorf("info header size byte = %d, want 40", dib.Bytes()[0])
	}
}
