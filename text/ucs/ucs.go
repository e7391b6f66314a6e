// Package ucs decodes byte strings into Unicode scalar values that keep
// track of the bytes they came from.
//
// The decoder is intentionally more permissive than unicode/utf8: a
// truncated multi-byte sequence still yields a scalar built from the bytes
// that were present, so a text block with a damaged tail keeps its valid
// head. Only a lead byte that matches no sequence class fails the decode.
package ucs

import "fmt"

// Scalar is one decoded code point together with its byte span in the
// original text.
type Scalar struct {
	// Value is the decoded code point.
	Value uint32

	// Offset is the byte position of the scalar in the decoded text.
	Offset int

	// Length is the number of bytes the scalar occupies (1..4).
	Length int
}

// End returns the byte position just past the scalar.
func (s Scalar) End() int {
	return s.Offset + s.Length
}

// Rune returns the scalar value as a rune.
func (s Scalar) Rune() rune {
	return rune(s.Value) //nolint:gosec // decoded values never exceed 21 bits
}

// String returns the diagnostic form of the scalar, e.g. "U+0058".
func (s Scalar) String() string {
	return Format(s.Value)
}

// Sequence is an ordered list of scalars in text order.
type Sequence []Scalar

// Len returns the number of scalars.
func (q Sequence) Len() int {
	return len(q)
}

// ByteLen returns the total number of bytes covered by the sequence.
func (q Sequence) ByteLen() int {
	n := 0
	for _, s := range q {
		n += s.Length
	}
	return n
}

// Runes returns the scalar values as runes.
func (q Sequence) Runes() []rune {
	runes := make([]rune, len(q))
	for i, s := range q {
		runes[i] = s.Rune()
	}
	return runes
}

// Shift adds delta to the offset of every scalar in q.
// Removing a scalar of length n from the text is followed by
// q[i+1:].Shift(-n) to keep the remaining offsets valid.
func (q Sequence) Shift(delta int) {
	for i := range q {
		q[i].Offset += delta
	}
}

// Format renders a code point the way diagnostics print it.
func Format(v uint32) string {
	return fmt.Sprintf("U+%04X", v)
}
