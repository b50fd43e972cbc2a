// Package textimg renders styled text onto a raster canvas.
//
// A single immutable Style describes everything about one image: the text
// lines, font and size, solid or gradient fills for text and background,
// outline and glow effects, alignment, margins, and canvas dimensions.
// Renderer.Render turns a Style into a RenderResult holding the finished
// RGBA pixel buffer. The pipeline is a pure function of its input: no state
// is carried between renders apart from cached font resources.
//
// The layer order, back to front, is background, glow, outline, text fill.
// All buffers use straight (non-premultiplied) alpha.
//
// Subpackages provide the external collaborators: text (font loading,
// glyph mask construction, font registry), preset (named Style files),
// export (bitmap encoding), and cache (the shared LRU used for fonts).
//
// By default the package produces no log output; see SetLogger.
package textimg
