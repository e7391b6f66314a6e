package text

import (
	"errors"
	"io"
	"iter"
	"slices"
)

// Cascade is the ordered list of fallback fonts of one drawing context.
// Registration order is the default try order.
//
// Cascade is not safe for concurrent use.
type Cascade struct {
	fonts []Font
}

// NewCascade creates a cascade from fonts in try order.
// Nil fonts are skipped.
func NewCascade(fonts ...Font) *Cascade {
	c := &Cascade{fonts: make([]Font, 0, len(fonts))}
	for _, f := range fonts {
		if f != nil {
			c.fonts = append(c.fonts, f)
		}
	}
	return c
}

// Add appends f as the last fallback.
func (c *Cascade) Add(f Font) error {
	if f == nil {
		return ErrNilFont
	}
	c.fonts = append(c.fonts, f)
	return nil
}

// Insert places f at the 0-based position i, shifting later fonts back.
// i == Len() appends.
func (c *Cascade) Insert(i int, f Font) error {
	if f == nil {
		return ErrNilFont
	}
	if i < 0 || i > len(c.fonts) {
		return ErrFontIndex
	}
	c.fonts = slices.Insert(c.fonts, i, f)
	return nil
}

// Len returns the number of registered fonts.
func (c *Cascade) Len() int {
	return len(c.fonts)
}

// Fonts returns the fonts in registration order.
func (c *Cascade) Fonts() []Font {
	return slices.Clone(c.fonts)
}

// OrderedFor returns the try order for a block preferring the font at the
// 1-based index preferred. Zero, or an index past the end, means no
// preference. The registration order is not changed.
func (c *Cascade) OrderedFor(preferred int) Order {
	o := Order{fonts: c.Fonts(), first: -1}
	if preferred > 0 && preferred <= len(o.fonts) {
		o.first = preferred - 1
	}
	return o
}

// Close closes every font that implements io.Closer and empties the
// cascade. Errors are joined.
func (c *Cascade) Close() error {
	var errs []error
	for _, f := range c.fonts {
		if cl, ok := f.(io.Closer); ok {
			if err := cl.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	c.fonts = nil
	return errors.Join(errs...)
}

// Order is a view of a cascade with one font moved to the front.
// It holds its own snapshot of the fonts.
type Order struct {
	fonts []Font
	first int // index into fonts, -1 for registration order
}

// Len returns the number of fonts in the order.
func (o Order) Len() int {
	return len(o.fonts)
}

// All yields the fonts in try order.
func (o Order) All() iter.Seq[Font] {
	return func(yield func(Font) bool) {
		if o.first >= 0 && !yield(o.fonts[o.first]) {
			return
		}
		for i, f := range o.fonts {
			if i == o.first {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// Fonts returns the fonts in try order.
func (o Order) Fonts() []Font {
	return slices.Collect(o.All())
}
