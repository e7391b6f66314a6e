package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper provides HarfBuzz-level shaping using go-text/typesetting.
// Ligatures, kerning and mark positioning are applied, which is why a run
// whose every rune has a glyph can still fail to shape in context.
//
// GoTextShaper is safe for concurrent use. HarfbuzzShaper instances carry
// a mutable buffer, so they are pooled rather than shared.
type GoTextShaper struct {
	pool sync.Pool
}

// NewGoTextShaper creates a new GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(runes []rune, face *font.Face, size float64, lang language.Language) ShapedRun {
	if len(runes) == 0 || face == nil {
		return ShapedRun{}
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  lang,
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	return ShapedRun{
		Glyphs:  convertGlyphs(output.Glyphs),
		Advance: fixedToFloat(output.Advance),
	}
}

// detectScript returns the script of the first non-space rune.
// Status bar blocks are short and rarely mix scripts inside one block.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text glyphs to ShapedGlyphs with pen positions
// accumulated from the advances. Y is flipped to point down.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))

	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph ids are 16 bit
			Cluster:  g.TextIndex(),
			Runes:    g.RuneCount,
			X:        x + fixedToFloat(g.XOffset),
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}

	return result
}

// shapedPrefix returns how many leading runes are fully drawable: it walks
// the glyphs in order and stops at the first missing glyph, cutting back
// to the start of that glyph's cluster.
func shapedPrefix(glyphs []ShapedGlyph) int {
	n := 0
	for _, g := range glyphs {
		if g.GID == 0 {
			if g.Cluster < n {
				n = g.Cluster
			}
			return n
		}
		if end := g.Cluster + g.Runes; end > n {
			n = end
		}
	}
	return n
}
