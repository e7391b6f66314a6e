package text

import (
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/barfont/text/ucs"
)

// Font is one entry of a fallback Cascade.
type Font interface {
	// Name identifies the font in diagnostics.
	Name() string

	// Coverage returns how many leading scalars of seq the font maps to a
	// glyph. It stops at the first unmapped scalar and draws nothing.
	Coverage(seq ucs.Sequence) int

	// ShapeAndDraw shapes text, draws the longest prefix the font turns
	// into real glyphs at the pen of c, advances the pen by the drawn
	// width and returns the number of bytes drawn. It returns 0 when the
	// first glyph already fails.
	ShapeAndDraw(text []byte, c Canvas) int
}

// Face is a FontSource at one pixel size with one baseline offset.
// It is the Font implementation backed by a real font file.
//
// Face is safe for concurrent use, but the shaping handle behind it is
// not reentrant: every query holds the face for its duration.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig
	lang   language.Language
	shaper Shaper

	mu         sync.Mutex
	handle     *font.Face // lazily created, not safe for concurrent use
	buf        sfnt.Buffer
	glyphs     *glyphSet
	metrics    Metrics
	hasMetrics bool
	closed     bool
}

var _ Font = (*Face)(nil)

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// BaselineShift returns the distance from the strip's vertical middle down
// to this font's baseline, before the configured face offset.
func (m Metrics) BaselineShift() float64 {
	return m.LineHeight()/2 - m.Descent
}

func newFace(s *FontSource, size float64, config faceConfig) *Face {
	return &Face{
		source: s,
		size:   size,
		config: config,
		lang:   language.NewLanguage(config.language),
		shaper: defaultShaper(),
		glyphs: newGlyphSet(),
	}
}

// faceLock is a scoped hold on the face's shaping and outline state.
type faceLock struct {
	f      *Face
	handle *font.Face
	outln  *ximageFont
}

// acquire locks the face and returns its handles. ok is false when the
// face or its source is closed; the face is then already unlocked.
func (f *Face) acquire() (lk faceLock, ok bool) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return faceLock{}, false
	}

	shaped, outln, ok := f.source.tables()
	if !ok {
		f.mu.Unlock()
		return faceLock{}, false
	}
	if f.handle == nil {
		f.handle = font.NewFace(shaped)
	}

	return faceLock{f: f, handle: f.handle, outln: outln}, true
}

func (lk faceLock) release() {
	lk.f.mu.Unlock()
}

// Name returns the font name of the underlying source.
func (f *Face) Name() string {
	return f.source.Name()
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the size of this face in pixels per em.
func (f *Face) Size() float64 {
	return f.size
}

// Offset returns the configured vertical baseline offset.
func (f *Face) Offset() float64 {
	return f.config.offset
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	lk, ok := f.acquire()
	if !ok {
		return Metrics{}
	}
	defer lk.release()
	return f.metricsLocked(lk)
}

func (f *Face) metricsLocked(lk faceLock) Metrics {
	if !f.hasMetrics {
		f.metrics = lk.outln.metrics(&f.buf, f.size, f.config.hinting)
		f.hasMetrics = true
	}
	return f.metrics
}

// HasGlyph reports whether the font maps v to a glyph.
func (f *Face) HasGlyph(v uint32) bool {
	lk, ok := f.acquire()
	if !ok {
		return false
	}
	defer lk.release()
	return f.hasGlyphLocked(lk, v)
}

func (f *Face) hasGlyphLocked(lk faceLock, v uint32) bool {
	if has, checked := f.glyphs.lookup(v); checked {
		return has
	}
	gid, ok := lk.handle.NominalGlyph(rune(v)) //nolint:gosec // values above MaxRune simply miss
	has := ok && gid != 0
	f.glyphs.store(v, has)
	return has
}

// Coverage implements Font.
func (f *Face) Coverage(seq ucs.Sequence) int {
	lk, ok := f.acquire()
	if !ok {
		return 0
	}
	defer lk.release()

	n := 0
	for _, s := range seq {
		if !f.hasGlyphLocked(lk, s.Value) {
			break
		}
		n++
	}
	return n
}

// ShapeAndDraw implements Font.
//
// The pen is expected at the block origin on the strip's vertical middle.
// The run is drawn on this face's baseline, BaselineShift() + Offset()
// below the pen, and the pen ends at the end of the run on that baseline.
// The pen is not moved when nothing is drawn.
func (f *Face) ShapeAndDraw(text []byte, c Canvas) int {
	if len(text) == 0 {
		return 0
	}

	seq, err := ucs.Decode(text)
	if err != nil {
		return 0
	}

	lk, ok := f.acquire()
	if !ok {
		return 0
	}

	m := f.metricsLocked(lk)
	x, y := c.CurrentPoint()
	y += m.BaselineShift() + f.config.offset

	runes := seq.Runes()
	run := f.shaper.Shape(runes, lk.handle, f.size, f.lang)
	n := min(shapedPrefix(run.Glyphs), len(runes))
	if n == 0 {
		lk.release()
		return 0
	}
	if n < len(runes) {
		run = f.shaper.Shape(runes[:n], lk.handle, f.size, f.lang)
	}
	lk.release()

	consumed := seq[n-1].End()
	c.DrawGlyphRun(GlyphRun{
		Face:    f,
		X:       x,
		Y:       y,
		Glyphs:  run.Glyphs,
		Advance: run.Advance,
		Text:    text[:consumed],
	})
	c.MoveTo(x+run.Advance, y)

	return consumed
}

// Outline returns the outline of gid scaled to the face size.
func (f *Face) Outline(gid GlyphID) (*GlyphOutline, error) {
	lk, ok := f.acquire()
	if !ok {
		return nil, ErrClosed
	}
	defer lk.release()
	return lk.outln.loadOutline(&f.buf, gid, f.size)
}

// Close releases the face's shaping handle. The FontSource is closed too
// when the face was created with WithOwnedSource.
// Close is idempotent.
func (f *Face) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	f.handle = nil
	f.glyphs = newGlyphSet()
	f.mu.Unlock()

	if f.config.ownedSource {
		return f.source.Close()
	}
	return nil
}
