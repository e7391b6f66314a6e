package text

import (
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
)

// ShapedGlyph is one positioned glyph produced by a Shaper.
type ShapedGlyph struct {
	// GID is the glyph index in the font. Zero means the font could not
	// produce a glyph for its cluster.
	GID GlyphID

	// Cluster is the index of the first rune of the glyph's cluster.
	Cluster int

	// Runes is the number of runes in the cluster.
	Runes int

	// X is the horizontal position relative to the run origin.
	X float64

	// Y is the vertical position relative to the baseline, y pointing down.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}

// ShapedRun is the output of shaping one rune slice with one face.
type ShapedRun struct {
	Glyphs  []ShapedGlyph
	Advance float64
}

// Shaper converts runes to positioned glyphs for a single face.
type Shaper interface {
	// Shape shapes runes with face at size pixels per em.
	Shape(runes []rune, face *font.Face, size float64, lang language.Language) ShapedRun
}

// library is the process-wide shaping state. It is set up once, on the
// first face that needs it, and lives until the process exits.
var library struct {
	once   sync.Once
	shaper Shaper
}

// defaultShaper returns the process-wide shaper.
func defaultShaper() Shaper {
	library.once.Do(func() {
		library.shaper = NewGoTextShaper()
	})
	return library.shaper
}
