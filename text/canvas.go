package text

// Canvas is the drawing side a Font renders into: a pen position plus a
// sink for shaped glyph runs. The root barfont.Context implements it.
//
// Coordinates are in pixels with y pointing down.
type Canvas interface {
	// CurrentPoint returns the pen position.
	CurrentPoint() (x, y float64)

	// MoveTo sets the pen position.
	MoveTo(x, y float64)

	// RelMoveTo moves the pen by (dx, dy).
	RelMoveTo(dx, dy float64)

	// DrawGlyphRun draws run with its origin at run.X, run.Y.
	// It does not move the pen.
	DrawGlyphRun(run GlyphRun)
}

// GlyphRun is a shaped run ready to be drawn.
type GlyphRun struct {
	// Face provides the glyph outlines. It may be nil for fonts that draw
	// without outlines, in which case canvases skip the run.
	Face *Face

	// X, Y is the baseline origin of the run.
	X, Y float64

	// Glyphs are positioned relative to the origin.
	Glyphs []ShapedGlyph

	// Advance is the total horizontal advance of the run.
	Advance float64

	// Text is the source text of the run.
	Text []byte
}
