package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// GlyphID is a glyph index within one font. Zero is the missing glyph.
type GlyphID uint16

// Hinting specifies font hinting mode used for metrics.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// Rect is an axis aligned rectangle in pixels, y pointing down.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// TextBlock is one run of text handed over by the markup parser.
type TextBlock struct {
	// Content is the raw text of the block.
	Content []byte

	// Font is the 1-based index of the preferred cascade font.
	// Zero means no preference.
	Font int
}

// Block is a convenience constructor for a TextBlock.
func Block(s string, font int) TextBlock {
	return TextBlock{Content: []byte(s), Font: font}
}
