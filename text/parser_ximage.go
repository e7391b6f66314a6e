package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageFont wraps the golang.org/x/image view of a font file.
// It answers metrics, names and outlines; glyph coverage and shaping go
// through go-text/typesetting.
type ximageFont struct {
	font *opentype.Font
}

// parseXImage parses font data with golang.org/x/image/font/opentype.
func parseXImage(data []byte) (*ximageFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageFont{font: f}, nil
}

// name returns the family name, falling back to the full name.
func (f *ximageFont) name(buf *sfnt.Buffer) string {
	if s, err := f.font.Name(buf, sfnt.NameIDFamily); err == nil && s != "" {
		return s
	}
	if s, err := f.font.Name(buf, sfnt.NameIDFull); err == nil && s != "" {
		return s
	}
	return ""
}

// metrics returns the font metrics at ppem pixels per em.
func (f *ximageFont) metrics(buf *sfnt.Buffer, ppem float64, h Hinting) Metrics {
	m, err := f.font.Metrics(buf, floatToFixed(ppem), mapHinting(h))
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	gap := fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}

	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   gap,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
