package text

import (
	"errors"
	"testing"
)

func TestUnicodeRangeContains(t *testing.T) {
	tests := []struct {
		name     string
		ur       UnicodeRange
		v        uint32
		expected bool
	}{
		{"start boundary", UnicodeRange{0x0000, 0x007F}, 0x0000, true},
		{"end boundary", UnicodeRange{0x0000, 0x007F}, 0x007F, true},
		{"inside range", UnicodeRange{0x0000, 0x007F}, 0x0041, true},
		{"after range", UnicodeRange{0x0000, 0x007F}, 0xFFFF, false},
		{"before range", UnicodeRange{0x0100, 0x017F}, 0x0050, false},
		{"beyond unicode", RangePrivateUse, 0x7FFFFFFF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ur.Contains(tt.v); got != tt.expected {
				t.Errorf("Contains(%#x): expected %v, got %v", tt.v, tt.expected, got)
			}
		})
	}
}

func TestCommonUnicodeRanges(t *testing.T) {
	tests := []struct {
		name string
		ur   UnicodeRange
		r    rune
		want bool
	}{
		{"BasicLatin A", RangeBasicLatin, 'A', true},
		{"BasicLatin beyond", RangeBasicLatin, 0x0080, false},
		{"Latin-1 é", RangeLatin1Sup, 'é', true},
		{"Cyrillic Ж", RangeCyrillic, 'Ж', true},
		{"Greek α", RangeGreek, 'α', true},
		{"CJK 世", RangeCJKUnified, '世', true},
		{"Hiragana あ", RangeHiragana, 'あ', true},
		{"Katakana ア", RangeKatakana, 'ア', true},
		{"PrivateUse icon", RangePrivateUse, 0xF001, true},
		{"Emoji smile", RangeEmoji, '😀', true},
		{"Emoji misc rocket", RangeEmojiMisc, '🌍', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ur.Contains(uint32(tt.r)); got != tt.want {
				t.Errorf("%s: Contains(%U) = %v, want %v", tt.name, tt.r, got, tt.want)
			}
		})
	}
}

func TestFilteredFontCoverage(t *testing.T) {
	inner := newFake("inner", coversAll)

	tests := []struct {
		name   string
		ranges []UnicodeRange
		text   string
		want   int
	}{
		{"no ranges passes through", nil, "abc世", 4},
		{"stops at first excluded", []UnicodeRange{RangeBasicLatin}, "ab世c", 2},
		{"excluded first", []UnicodeRange{RangeBasicLatin}, "世ab", 0},
		{"multiple ranges", []UnicodeRange{RangeBasicLatin, RangeCJKUnified}, "a世b😀", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ff := NewFilteredFont(inner, tt.ranges...)
			if got := ff.Coverage(mustDecode(t, tt.text)); got != tt.want {
				t.Errorf("Coverage(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestFilteredFontCoverageLimitedByInner(t *testing.T) {
	ff := NewFilteredFont(newFake("upper", coversUpper), RangeBasicLatin)
	if got := ff.Coverage(mustDecode(t, "ABc")); got != 2 {
		t.Errorf("Coverage = %d, want 2", got)
	}
}

func TestFilteredFontShapeAndDraw(t *testing.T) {
	inner := newFake("inner", coversAll)
	ff := NewFilteredFont(inner, RangePrivateUse)
	canvas := &recordingCanvas{}

	icons := "\uf001\uf002"
	if n := ff.ShapeAndDraw([]byte(icons+" 42%"), canvas); n != len(icons) {
		t.Fatalf("ShapeAndDraw = %d, want %d", n, len(icons))
	}
	if len(inner.drawn) != 1 || inner.drawn[0] != icons {
		t.Errorf("inner font was handed %q, want only the icons", inner.drawn)
	}

	if n := ff.ShapeAndDraw([]byte("42%"), canvas); n != 0 {
		t.Errorf("ShapeAndDraw outside the ranges = %d, want 0", n)
	}
	if inner.calls != 1 {
		t.Errorf("inner font called %d times, want 1", inner.calls)
	}
	if n := ff.ShapeAndDraw([]byte{0xC0}, canvas); n != 0 {
		t.Errorf("ShapeAndDraw(malformed) = %d, want 0", n)
	}
}

func TestFilteredFontNameAndUnwrap(t *testing.T) {
	inner := newFake("inner", coversAll)
	ff := NewFilteredFont(inner)

	if ff.Name() != "inner" {
		t.Errorf("Name() = %q, want %q", ff.Name(), "inner")
	}
	if ff.Unwrap() != Font(inner) {
		t.Error("Unwrap() does not return the wrapped font")
	}
}

type closingFont struct {
	*fakeFont
	closed int
	err    error
}

func (c *closingFont) Close() error {
	c.closed++
	return c.err
}

func TestFilteredFontClose(t *testing.T) {
	inner := &closingFont{fakeFont: newFake("c", coversAll), err: errors.New("boom")}
	if err := NewFilteredFont(inner).Close(); err == nil || inner.closed != 1 {
		t.Errorf("Close() = %v, closed %d times", err, inner.closed)
	}

	// A wrapped font without Close is fine.
	if err := NewFilteredFont(newFake("plain", coversAll)).Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
