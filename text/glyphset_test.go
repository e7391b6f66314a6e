package text

import "testing"

func TestGlyphSet(t *testing.T) {
	s := newGlyphSet()

	if _, checked := s.lookup('a'); checked {
		t.Fatal("empty set reports a checked rune")
	}

	s.store('a', true)
	s.store('b', false)
	s.store(0x1F600, true)

	tests := []struct {
		v                uint32
		wantHas, checked bool
	}{
		{'a', true, true},
		{'b', false, true},
		{'c', false, false},
		{0x1F600, true, true},
		{0x1F601, false, false},
	}
	for _, tt := range tests {
		has, checked := s.lookup(tt.v)
		if has != tt.wantHas || checked != tt.checked {
			t.Errorf("lookup(%#x) = (%v, %v), want (%v, %v)", tt.v, has, checked, tt.wantHas, tt.checked)
		}
	}

	s.store('a', false)
	if has, _ := s.lookup('a'); has {
		t.Error("store did not overwrite the previous answer")
	}
	if len(s.blocks) != 2 {
		t.Errorf("allocated %d blocks, want 2", len(s.blocks))
	}
}

func TestGlyphSet_BlockEdges(t *testing.T) {
	s := newGlyphSet()
	for _, v := range []uint32{0xFF, 0x100, 0x13F, 0x140} {
		s.store(v, true)
	}
	for _, v := range []uint32{0xFF, 0x100, 0x13F, 0x140} {
		if has, checked := s.lookup(v); !has || !checked {
			t.Errorf("lookup(%#x) = (%v, %v)", v, has, checked)
		}
	}
	if _, checked := s.lookup(0xFE); checked {
		t.Error("neighbor of a stored rune reports checked")
	}
}
