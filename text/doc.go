// Package text loads fonts and rasterizes text into coverage masks.
//
// FontSource parses a TTF/OTF file; Face instantiates it at a size;
// BuildMask turns lines of text into an anti-aliased alpha mask sized to
// the block's ink bounding box. Registry resolves font names through
// user directories, system fonts, and a bundled fallback, caching parsed
// sources and sized faces.
//
// The package does no complex shaping: glyphs are positioned by advance
// and kerning as provided by the font backend.
package text
