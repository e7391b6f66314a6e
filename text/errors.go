package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilFont is returned when a nil Font is added to a Cascade.
	ErrNilFont = errors.New("text: nil font")

	// ErrFontIndex is returned for an insert position outside the cascade.
	ErrFontIndex = errors.New("text: font index out of range")

	// ErrClosed is returned when a closed FontSource is used to create a Face.
	ErrClosed = errors.New("text: font source closed")
)

// BlockError is returned when a text block cannot be rendered at all.
// Nothing of the block has been drawn when it is returned.
type BlockError struct {
	// Content is the raw block text.
	Content []byte

	// Err is the underlying cause, typically a *ucs.DecodeError.
	Err error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("text: block %q not rendered: %v", e.Content, e.Err)
}

// Unwrap returns the underlying cause.
func (e *BlockError) Unwrap() error {
	return e.Err
}
