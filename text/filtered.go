package text

import (
	"io"

	"github.com/gogpu/barfont/text/ucs"
)

// UnicodeRange represents a contiguous range of code points.
type UnicodeRange struct {
	Start rune
	End   rune
}

// Contains reports whether v is in the range.
func (ur UnicodeRange) Contains(v uint32) bool {
	return v >= uint32(ur.Start) && v <= uint32(ur.End) //nolint:gosec // ranges are non-negative
}

// Common Unicode ranges for filtering fonts.
var (
	// Latin Scripts
	RangeBasicLatin = UnicodeRange{0x0000, 0x007F} // ASCII
	RangeLatin1Sup  = UnicodeRange{0x0080, 0x00FF} // Latin-1 Supplement
	RangeLatinExtA  = UnicodeRange{0x0100, 0x017F} // Latin Extended-A

	// Cyrillic and Greek
	RangeCyrillic = UnicodeRange{0x0400, 0x04FF}
	RangeGreek    = UnicodeRange{0x0370, 0x03FF}

	// CJK Scripts
	RangeCJKUnified = UnicodeRange{0x4E00, 0x9FFF}
	RangeHiragana   = UnicodeRange{0x3040, 0x309F}
	RangeKatakana   = UnicodeRange{0x30A0, 0x30FF}

	// RangePrivateUse is where icon fonts (Font Awesome, Nerd Fonts,
	// Material Icons) put their glyphs.
	RangePrivateUse = UnicodeRange{0xE000, 0xF8FF}

	// Emoji
	RangeEmoji     = UnicodeRange{0x1F600, 0x1F64F} // Emoticons
	RangeEmojiMisc = UnicodeRange{0x1F300, 0x1F5FF} // Miscellaneous Symbols and Pictographs
)

// FilteredFont restricts a Font to specific Unicode ranges.
// Scalars outside the ranges are neither covered nor drawn by it, so the
// cascade hands them to the next font.
type FilteredFont struct {
	font   Font
	ranges []UnicodeRange
}

var _ Font = (*FilteredFont)(nil)

// NewFilteredFont creates a FilteredFont.
// If no ranges are specified, all scalars are allowed (no filtering).
func NewFilteredFont(f Font, ranges ...UnicodeRange) *FilteredFont {
	return &FilteredFont{
		font:   f,
		ranges: ranges,
	}
}

// Name implements Font.
func (f *FilteredFont) Name() string {
	return f.font.Name()
}

// Coverage implements Font.
func (f *FilteredFont) Coverage(seq ucs.Sequence) int {
	n := f.allowed(seq)
	if n == 0 {
		return 0
	}
	return f.font.Coverage(seq[:n])
}

// ShapeAndDraw implements Font.
// Only the longest prefix of text inside the ranges is shaped.
func (f *FilteredFont) ShapeAndDraw(text []byte, c Canvas) int {
	seq, err := ucs.Decode(text)
	if err != nil {
		return 0
	}
	n := f.allowed(seq)
	if n == 0 {
		return 0
	}
	return f.font.ShapeAndDraw(text[:seq[n-1].End()], c)
}

// Unwrap returns the filtered font.
func (f *FilteredFont) Unwrap() Font {
	return f.font
}

// Close closes the wrapped font if it is an io.Closer.
func (f *FilteredFont) Close() error {
	if c, ok := f.font.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// allowed returns the number of leading scalars inside the ranges.
func (f *FilteredFont) allowed(seq ucs.Sequence) int {
	if len(f.ranges) == 0 {
		return len(seq)
	}
	for i, s := range seq {
		if !f.inRanges(s.Value) {
			return i
		}
	}
	return len(seq)
}

// inRanges reports whether v is in any of the allowed ranges.
func (f *FilteredFont) inRanges(v uint32) bool {
	for _, ur := range f.ranges {
		if ur.Contains(v) {
			return true
		}
	}
	return false
}
