package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes and
// offsets. FontSource is heavyweight and should be shared.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	mu     sync.RWMutex
	data   []byte
	shaped *font.Font // go-text view: cmap and shaping tables, read-only
	outln  *ximageFont
	name   string
	closed bool
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font tables: %w", err)
	}

	outln, err := parseXImage(dataCopy)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:   dataCopy,
		shaped: face.Font,
		outln:  outln,
	}
	s.addr = s

	s.name = config.name
	if s.name == "" {
		var buf sfnt.Buffer
		s.name = outln.name(&buf)
	}
	if s.name == "" {
		s.name = "Unknown Font"
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a Face at the given size in pixels.
// Panics if s is nil (e.g. when the NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) (*Face, error) {
	if s == nil {
		panic("text: FontSource is nil, check the error from NewFontSourceFromFile")
	}
	s.copyCheck()

	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return nil, ErrClosed
	}

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return newFace(s, size, config), nil
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Close releases the font data.
// Faces created from a closed source stop covering or drawing anything.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.closed = true

	return nil
}

// tables returns the parsed views of the font, or ok=false after Close.
func (s *FontSource) tables() (shaped *font.Font, outln *ximageFont, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, nil, false
	}
	return s.shaped, s.outln, true
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
