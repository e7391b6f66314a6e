package text

// glyphSet memoizes cmap lookups of one face.
// It uses 2 bits per rune, (checked, hasGlyph), in 256-rune blocks that
// are allocated on first access. Icon fonts and CJK fonts are queried in
// narrow bands of the code space, so the blocks stay few.
//
// glyphSet is not safe for concurrent use; Face guards it with its mutex.
type glyphSet struct {
	blocks map[uint32]*glyphBlock
}

// glyphBlock holds 256 runes × 2 bits.
type glyphBlock struct {
	bits [8]uint64
}

func newGlyphSet() *glyphSet {
	return &glyphSet{blocks: make(map[uint32]*glyphBlock)}
}

// lookup returns (hasGlyph, checked).
func (s *glyphSet) lookup(v uint32) (hasGlyph, checked bool) {
	b, ok := s.blocks[v>>8]
	if !ok {
		return false, false
	}

	bit := (v & 0xff) * 2
	word := b.bits[bit/64] >> (bit % 64)
	return word&2 != 0, word&1 != 0
}

// store records whether v has a glyph.
func (s *glyphSet) store(v uint32, hasGlyph bool) {
	b, ok := s.blocks[v>>8]
	if !ok {
		b = &glyphBlock{}
		s.blocks[v>>8] = b
	}

	bit := (v & 0xff) * 2
	w := &b.bits[bit/64]
	*w |= 1 << (bit % 64)
	if hasGlyph {
		*w |= 1 << (bit%64 + 1)
	} else {
		*w &^= 1 << (bit%64 + 1)
	}
}
