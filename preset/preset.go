// Package preset persists styles as named JSON files.
//
// The on-disk format is a single flat object whose snake_case keys map
// 1:1 to style fields. Missing keys take documented defaults so presets
// saved by older versions keep loading; two legacy spellings are
// upgraded on read (bg_transparency for bg_opacity, and glow intensity
// on the old 0-400 scale).
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	textimg "github.com/Space-Cadet-Stuff/Custom-Text-as-Images"
)

// ErrNotFound is returned when a named preset does not exist.
var ErrNotFound = errors.New("preset: not found")

// ErrBadName is returned for preset names that cannot be used as file
// stems.
var ErrBadName = errors.New("preset: invalid name")

// payload is the flat JSON shape of a preset file.
//
// The gradient angle keys are whole degrees, so fractional AngleDeg
// values round down through a save/load cycle. glow_enabled mirrors
// whether the intensity is nonzero; a zero glow radius is stored as-is
// and simply renders no glow.
type payload struct {
	Text              string `json:"text"`
	FontSize          int    `json:"font_size"`
	Font              string `json:"font"`
	TextColor         string `json:"text_color"`
	TextColor2        string `json:"text_color2"`
	TextOutlineColor  string `json:"text_outline_color"`
	TextGlowColor     string `json:"text_glow_color"`
	GlowIntensity     int    `json:"glow_intensity"`
	GlowRadius        int    `json:"glow_radius"`
	GlowEnabled       bool   `json:"glow_enabled"`
	OutlineThickness  int    `json:"outline_thickness"`
	TextGradient      string `json:"text_gradient"`
	TextGradientAngle int    `json:"text_gradient_angle"`
	TextGradientSize  int    `json:"text_gradient_size"`
	BgColor           string `json:"bg_color"`
	BgColor2          string `json:"bg_color2"`
	BgGradient        string `json:"bg_gradient"`
	BgGradientAngle   int    `json:"bg_gradient_angle"`
	BgGradientSize    int    `json:"bg_gradient_size"`
	ImageWidth        int    `json:"image_width"`
	ImageHeight       int    `json:"image_height"`
	MarginLeft        int    `json:"margin_left"`
	MarginRight       int    `json:"margin_right"`
	MarginTop         int    `json:"margin_top"`
	MarginBottom      int    `json:"margin_bottom"`
	Alignment         string `json:"alignment"`

	// Opacity keys carry presence information: bg_transparency is the
	// legacy spelling and loses to bg_opacity when both appear.
	BgOpacity      *int `json:"bg_opacity,omitempty"`
	BgTransparency *int `json:"bg_transparency,omitempty"`
}

// defaultPayload holds the documented value for every missing key.
// Unmarshaling over it leaves absent keys at these values.
func defaultPayload() payload {
	return payload{
		Text:             "Sample Text",
		FontSize:         48,
		TextColor:        "#000000",
		TextColor2:       "#ffffff",
		TextOutlineColor: "#ffffff",
		TextGlowColor:    "#0000ff",
		GlowIntensity:    50,
		GlowRadius:       3,
		GlowEnabled:      true,
		OutlineThickness: 2,
		TextGradient:     string(textimg.FillSolid),
		TextGradientSize: 100,
		BgColor:          "#ffffff",
		BgColor2:         "#000000",
		BgGradient:       string(textimg.FillSolid),
		BgGradientSize:   100,
		ImageWidth:       800,
		ImageHeight:      400,
		MarginLeft:       10,
		MarginRight:      10,
		MarginTop:        10,
		MarginBottom:     10,
		Alignment:        string(textimg.AlignCenter),
	}
}

// fromStyle flattens a style into the on-disk shape.
func fromStyle(s textimg.Style) payload {
	p := payload{
		Text:              strings.Join(s.Text, "\n"),
		FontSize:          s.SizePt,
		Font:              s.Font,
		TextColor:         s.TextFill.ColorA.Hex(),
		TextColor2:        "#ffffff",
		TextOutlineColor:  s.Outline.Color.Hex(),
		TextGlowColor:     s.Glow.Color.Hex(),
		GlowIntensity:     s.Glow.IntensityPct,
		GlowRadius:        s.Glow.RadiusPx,
		GlowEnabled:       s.Glow.IntensityPct > 0,
		OutlineThickness:  s.Outline.ThicknessPx,
		TextGradient:      string(s.TextFill.Mode),
		TextGradientAngle: int(s.TextFill.AngleDeg),
		TextGradientSize:  s.TextFill.SpreadPct,
		BgColor:           s.Background.Fill.ColorA.Hex(),
		BgColor2:          "#000000",
		BgGradient:        string(s.Background.Fill.Mode),
		BgGradientAngle:   int(s.Background.Fill.AngleDeg),
		BgGradientSize:    s.Background.Fill.SpreadPct,
		ImageWidth:        s.Canvas.WidthPx,
		ImageHeight:       s.Canvas.HeightPx,
		MarginLeft:        s.Margins.Left,
		MarginRight:       s.Margins.Right,
		MarginTop:         s.Margins.Top,
		MarginBottom:      s.Margins.Bottom,
		Alignment:         string(s.Align),
	}
	opacity := s.Background.OpacityPct
	p.BgOpacity = &opacity
	if s.TextFill.ColorB != nil {
		p.TextColor2 = s.TextFill.ColorB.Hex()
	}
	if s.Background.Fill.ColorB != nil {
		p.BgColor2 = s.Background.Fill.ColorB.Hex()
	}
	return p
}

// toStyle expands the on-disk shape back into a style, upgrading legacy
// values.
func (p payload) toStyle() textimg.Style {
	var lines []string
	if p.Text != "" {
		lines = strings.Split(p.Text, "\n")
	}

	// The old scale stored intensity as 0-400; anything above 100 is a
	// legacy value.
	intensity := p.GlowIntensity
	if intensity > 100 {
		intensity = intensity / 4
		if intensity > 100 {
			intensity = 100
		}
	}
	if !p.GlowEnabled {
		intensity = 0
	}

	opacity := 100
	switch {
	case p.BgOpacity != nil:
		opacity = *p.BgOpacity
	case p.BgTransparency != nil:
		opacity = *p.BgTransparency
	}

	textColor2 := textimg.ParseHex(p.TextColor2)
	bgColor2 := textimg.ParseHex(p.BgColor2)

	s := textimg.Style{
		Text:   lines,
		Font:   p.Font,
		SizePt: p.FontSize,
		TextFill: textimg.FillSpec{
			Mode:      textimg.FillMode(p.TextGradient),
			ColorA:    textimg.ParseHex(p.TextColor),
			AngleDeg:  float64(p.TextGradientAngle),
			SpreadPct: p.TextGradientSize,
		},
		Outline: textimg.Outline{
			Color:       textimg.ParseHex(p.TextOutlineColor),
			ThicknessPx: p.OutlineThickness,
		},
		Glow: textimg.Glow{
			Color:        textimg.ParseHex(p.TextGlowColor),
			IntensityPct: intensity,
			RadiusPx:     p.GlowRadius,
		},
		Background: textimg.Background{
			Fill: textimg.FillSpec{
				Mode:      textimg.FillMode(p.BgGradient),
				ColorA:    textimg.ParseHex(p.BgColor),
				AngleDeg:  float64(p.BgGradientAngle),
				SpreadPct: p.BgGradientSize,
			},
			OpacityPct: opacity,
		},
		Align: textimg.Alignment(p.Alignment),
		Margins: textimg.Margins{
			Left:   p.MarginLeft,
			Right:  p.MarginRight,
			Top:    p.MarginTop,
			Bottom: p.MarginBottom,
		},
		Canvas: textimg.Canvas{WidthPx: p.ImageWidth, HeightPx: p.ImageHeight},
	}
	if s.TextFill.Mode != textimg.FillSolid {
		s.TextFill.ColorB = &textColor2
	}
	if s.Background.Fill.Mode != textimg.FillSolid {
		s.Background.Fill.ColorB = &bgColor2
	}
	return s
}

// Store reads and writes presets in a single directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating the directory if
// needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("preset: creating store dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store directory.
func (st *Store) Dir() string { return st.dir }

// Save writes style under name, overwriting any existing preset.
func (st *Store) Save(name string, style textimg.Style) error {
	path, err := st.path(name)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(fromStyle(style), "", "  ")
	if err != nil {
		return fmt.Errorf("preset: encoding %q: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("preset: writing %q: %w", name, err)
	}
	return nil
}

// Load reads the named preset. Unknown keys in the file are ignored and
// missing keys take their defaults.
func (st *Store) Load(name string) (textimg.Style, error) {
	path, err := st.path(name)
	if err != nil {
		return textimg.Style{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return textimg.Style{}, fmt.Errorf("preset: %q: %w", name, ErrNotFound)
		}
		return textimg.Style{}, fmt.Errorf("preset: reading %q: %w", name, err)
	}

	p := defaultPayload()
	if err := json.Unmarshal(data, &p); err != nil {
		return textimg.Style{}, fmt.Errorf("preset: decoding %q: %w", name, err)
	}
	return p.toStyle(), nil
}

// List returns the names of all presets in the store, sorted.
func (st *Store) List() ([]string, error) {
	entries, err := os.ReadDir(st.dir)
	if err != nil {
		return nil, fmt.Errorf("preset: listing store: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the named preset.
func (st *Store) Delete(name string) error {
	path, err := st.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("preset: %q: %w", name, ErrNotFound)
		}
		return fmt.Errorf("preset: deleting %q: %w", name, err)
	}
	return nil
}

func (st *Store) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return filepath.Join(st.dir, name+".json"), nil
}
