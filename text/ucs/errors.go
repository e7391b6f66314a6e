package ucs

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every *DecodeError.
var ErrMalformed = errors.New("ucs: malformed input")

// DecodeError reports a lead byte that starts no known sequence.
type DecodeError struct {
	// Offset is the byte position of the offending lead byte.
	Offset int

	// Byte is the offending lead byte.
	Byte byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ucs: invalid lead byte 0x%02X at offset %d", e.Byte, e.Offset)
}

// Unwrap returns ErrMalformed.
func (e *DecodeError) Unwrap() error {
	return ErrMalformed
}
