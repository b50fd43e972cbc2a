// Package export encodes render results into image files.
//
// PNG and TIFF keep the alpha channel. JPEG and BMP cannot carry alpha,
// so the encoder flattens the image against an opaque matte first; the
// render pipeline itself never flattens. EncodeDIB produces the
// clipboard payload Windows expects (a BMP stream without its file
// header).
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an output encoding.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ErrUnknownFormat is wrapped by errors for unrecognized formats or
// extensions.
var ErrUnknownFormat = errors.New("export: unknown format")

// FormatForPath picks a Format from a file extension.
func FormatForPath(path string) (Format, error) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	switch strings.ToLower(path[i+1:]) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path[i+1:])
}

// KeepsAlpha reports whether the format can store transparency.
func (f Format) KeepsAlpha() bool {
	return f == PNG || f == TIFF
}

// JPEGQuality is the quality used for JPEG encoding.
const JPEGQuality = 95

// Encode writes img to w in the given format. For formats without an
// alpha channel the image is flattened against a white matte.
func Encode(w io.Writer, img image.Image, format Format) error {
	if !format.KeepsAlpha() {
		img = Flatten(img, color.White)
	}

	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("export: encoding %s: %w", format, err)
	}
	return nil
}

// Flatten composites img over an opaque matte color and returns the
// result as an opaque RGBA image.
func Flatten(img image.Image, matte color.Color) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(matte), image.Point{}, draw.Src)
	draw.Draw(out, bounds, img, bounds.Min, draw.Over)
	return out
}

// bmpFileHeaderSize is the size of the BITMAPFILEHEADER that precedes
// the DIB data in a .bmp file. Clipboard DIB payloads omit it.
const bmpFileHeaderSize = 14

// EncodeDIB writes the image as a device-independent bitmap: the BMP
// encoding with its 14-byte file header stripped. This is the payload
// for the CF_DIB clipboard format.
func EncodeDIB(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := Encode(&buf, img, BMP); err != nil {
		return err
	}
	data := buf.Bytes()
	if len(data) <= bmpFileHeaderSize {
		return errors.New("export: bmp stream too short")
	}
	if _, err := w.Write(data[bmpFileHeaderSize:]); err != nil {
		return fmt.Errorf("export: writing dib: %w", err)
	}
	return nil
}
