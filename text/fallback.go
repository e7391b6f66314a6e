package text

import (
	"context"
	"log/slog"
	"slices"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/barfont/text/ucs"
)

// renderState is the phase of a block render.
type renderState int

const (
	// stateFiltering removes scalars no font covers.
	stateFiltering renderState = iota
	// stateDrawing shapes and draws the filtered text.
	stateDrawing
	// stateDone is terminal.
	stateDone
)

// String returns the string representation of the state.
func (s renderState) String() string {
	switch s {
	case stateFiltering:
		return "Filtering"
	case stateDrawing:
		return "Drawing"
	case stateDone:
		return "Done"
	default:
		return unknownStr
	}
}

// Report summarizes what happened to one text block.
type Report struct {
	// Dropped lists the scalars no font covered, with offsets into the
	// original block text.
	Dropped []ucs.Scalar

	// Undrawn is the remainder of the filtered text that no font could
	// shape. It is nil when the whole filtered text was drawn.
	Undrawn []byte

	// Drawn is the number of bytes drawn.
	Drawn int

	// Runs is the number of glyph runs drawn.
	Runs int
}

// Render draws block onto c using the cascade.
//
// The pen of c marks the block origin: its x is where the first glyph
// starts, its y is the strip's vertical middle each face centers itself
// on. Scalars no font covers are dropped one at a time; if at some point
// no font can shape the rest of the filtered text, that rest is dropped.
// Both losses are logged and listed in the Report. On return the pen sits
// after the last drawn glyph, at the original y.
//
// A block that does not decode returns a *BlockError and draws nothing.
func Render(c Canvas, cascade *Cascade, block TextBlock) (Report, error) {
	var rep Report

	seq, err := ucs.Decode(block.Content)
	if err != nil {
		return rep, &BlockError{Content: block.Content, Err: err}
	}

	order := cascade.OrderedFor(block.Font)

	var filtered []byte
	state := stateFiltering
	for state != stateDone {
		switch state {
		case stateFiltering:
			filtered, rep.Dropped = Filter(block.Content, seq, order)
			state = stateDrawing
		case stateDrawing:
			rep.Drawn, rep.Runs, rep.Undrawn = drawFiltered(c, filtered, order)
			state = stateDone
		}
	}

	return rep, nil
}

// Filter returns text without the scalars no font in order covers, and
// the dropped scalars. seq must be the decoded form of text; it is not
// modified.
//
// At each position the first font reporting coverage claims its whole
// covered run. When no font covers the scalar at the position, that one
// scalar is cut from the text and the scan continues after it.
func Filter(text []byte, seq ucs.Sequence, order Order) ([]byte, []ucs.Scalar) {
	out := slices.Clone(text)
	rest := slices.Clone(seq)

	var dropped []ucs.Scalar
	orig := 0 // number of bytes dropped so far, maps rest offsets back to text

	for len(rest) > 0 {
		k := 0
		for f := range order.All() {
			if k = f.Coverage(rest); k > 0 {
				break
			}
		}
		if k > 0 {
			rest = rest[min(k, len(rest)):]
			continue
		}

		s := rest[0]
		logDropped(s)
		dropped = append(dropped, ucs.Scalar{Value: s.Value, Offset: s.Offset + orig, Length: s.Length})

		out = slices.Delete(out, s.Offset, s.End())
		rest = rest[1:]
		rest.Shift(-s.Length)
		orig += s.Length
	}

	return out, dropped
}

// drawFiltered shapes and draws text, restarting from the first font of
// order after every drawn run so the preferred font takes back the text
// as soon as it can. It returns the bytes drawn, the number of runs and
// the undrawable remainder.
func drawFiltered(c Canvas, text []byte, order Order) (drawn, runs int, undrawn []byte) {
	baseX, baseY := c.CurrentPoint()

	for len(text) > 0 {
		consumed := 0
		for f := range order.All() {
			c.MoveTo(baseX, baseY)
			if n := f.ShapeAndDraw(text, c); n > 0 {
				consumed = min(n, len(text))
				logRun(f, text[:consumed])
				break
			}
		}

		if consumed == 0 {
			undrawn = slices.Clone(text)
			logger := Logger()
			if logger.Enabled(context.Background(), slog.LevelWarn) {
				logger.Warn("text: dropping unmatched characters",
					"text", string(text))
			}
			break
		}

		drawn += consumed
		runs++
		text = text[consumed:]
		baseX, _ = c.CurrentPoint()
	}

	c.MoveTo(baseX, baseY)
	return drawn, runs, undrawn
}

func logDropped(s ucs.Scalar) {
	logger := Logger()
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		return
	}
	logger.Warn("text: dropping unmatched character",
		"char", string(ucs.Encode(s.Value)),
		"codepoint", ucs.Format(s.Value),
		"name", runenames.Name(s.Rune()))
}

func logRun(f Font, run []byte) {
	logger := Logger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug("text: drew run", "font", f.Name(), "bytes", len(run), "text", string(run))
}
