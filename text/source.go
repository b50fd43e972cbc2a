package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file (TTF or OTF).
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application;
// the Registry does exactly that.
//
// FontSource is safe for concurrent use and must not be copied after
// creation.
type FontSource struct {
	// addr is used for copy protection. It must point to the FontSource
	// itself.
	addr *FontSource

	font *sfnt.Font
	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{font: parsed}
	s.addr = s

	if name, err := parsed.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data)
}

// Name returns the font family name, or "" if the font does not carry one.
func (s *FontSource) Name() string {
	return s.name
}

func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: illegal use of non-zero FontSource copied by value")
	}
}

// Face creates a Face at the specified size in points (72 DPI).
// Panics if s is nil (e.g. when a constructor error was ignored).
func (s *FontSource) Face(sizePt float64) (*Face, error) {
	if s == nil {
		panic("text: FontSource is nil")
	}
	s.copyCheck()

	inner, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	f := &Face{
		inner:  inner,
		source: s,
		sizePt: sizePt,
	}
	f.metrics = metricsOf(inner)
	return f, nil
}

// Face is a FontSource instantiated at a specific size. It wraps the
// rasterizing face behind a mutex because the underlying glyph renderer
// is not safe for concurrent use.
type Face struct {
	mu      sync.Mutex
	inner   font.Face
	source  *FontSource
	sizePt  float64
	metrics Metrics
}

// SizePt returns the face size in points.
func (f *Face) SizePt() float64 { return f.sizePt }

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Metrics returns the font metrics scaled to this face's size.
func (f *Face) Metrics() Metrics { return f.metrics }
