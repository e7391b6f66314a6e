// Package text renders text blocks with a cascade of fallback fonts.
//
// No single font covers everything a status bar shows: Latin labels, CJK
// window titles, icon glyphs from a private-use block, emoji. A Cascade
// holds the fonts in the order they should be tried and Render draws a
// block in two passes:
//
//   - Filter asks each font for coverage (a cmap lookup) and cuts out the
//     scalars no font maps at all, logging each one.
//   - The drawing pass shapes the remaining text. The first font that
//     shapes a non-empty prefix draws it; the cascade is then tried again
//     from the front for the rest. Text no font can shape is dropped.
//
// Coverage and shaping are separate questions: a font can map every rune
// of a run and still fail to produce glyphs for it in context.
//
// # Fonts
//
//   - FontSource: a parsed font file (go-text/typesetting for cmap and
//     shaping, golang.org/x/image for metrics and outlines)
//   - Face: a FontSource at one pixel size and baseline offset; a Font
//   - FilteredFont: a Font limited to some Unicode ranges
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("DejaVuSans.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face, _ := source.Face(14, text.WithOffset(1), text.WithOwnedSource())
//
//	cascade := text.NewCascade(face)
//	defer cascade.Close()
//
//	// canvas implements text.Canvas, e.g. *barfont.Context
//	canvas.MoveTo(4, barHeight/2)
//	report, err := text.Render(canvas, cascade, text.Block("12:30", 0))
package text
