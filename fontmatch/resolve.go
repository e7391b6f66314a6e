package fontmatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flopp/go-findfont"

	"github.com/gogpu/barfont/internal/cache"
	"github.com/gogpu/barfont/text"
)

// ErrNotFound is returned when no font file matches a pattern.
var ErrNotFound = errors.New("fontmatch: font not found")

// Finder locates a font file by name, the way findfont.Find does.
type Finder func(name string) (path string, err error)

// Resolver turns patterns into font files and faces.
// Resolved family paths are remembered, since searching the font
// directories walks the file system.
//
// Resolver is safe for concurrent use.
type Resolver struct {
	find  Finder
	paths *cache.Cache[string, string]
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFinder replaces the system font search.
func WithFinder(f Finder) Option {
	return func(r *Resolver) {
		r.find = f
	}
}

// WithCacheSize sets how many resolved families are remembered.
func WithCacheSize(n int) Option {
	return func(r *Resolver) {
		r.paths = cache.New[string, string](n)
	}
}

// NewResolver creates a Resolver searching the system font directories.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		find:  findfont.Find,
		paths: cache.New[string, string](64),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver()

// Open parses pattern and opens a face for it with the default Resolver.
func Open(pattern string) (*text.Face, error) {
	p, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return defaultResolver.Open(p)
}

// Resolve returns the font file for p. An explicit file wins; otherwise
// the families are tried in order.
func (r *Resolver) Resolve(p Pattern) (string, error) {
	if p.File != "" {
		return p.File, nil
	}
	for _, family := range p.Families {
		path, err := r.paths.GetOrCreate(family, func() (string, error) {
			return r.lookup(family)
		})
		if err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, p)
}

// lookup tries the name variants of family with the finder.
func (r *Resolver) lookup(family string) (string, error) {
	for _, name := range candidates(family) {
		path, err := r.find(name)
		if err == nil && path != "" {
			text.Logger().Debug("fontmatch: resolved", "family", family, "name", name, "path", path)
			return path, nil
		}
	}
	return "", ErrNotFound
}

// candidates lists the names a family is searched under, e.g. for
// "DejaVu Sans": "DejaVu Sans", "DejaVuSans", "DejaVuSans.ttf",
// "DejaVuSans.otf", "DejaVu Sans.ttf", "DejaVu Sans.otf".
func candidates(family string) []string {
	squashed := strings.ReplaceAll(family, " ", "")
	names := []string{family}
	if squashed != family {
		names = append(names, squashed)
	}
	names = append(names, squashed+".ttf", squashed+".otf")
	if squashed != family {
		names = append(names, family+".ttf", family+".otf")
	}
	return names
}

// Open resolves p and opens a face at its pixel size and offset. The face
// owns its FontSource.
func (r *Resolver) Open(p Pattern) (*text.Face, error) {
	path, err := r.Resolve(p)
	if err != nil {
		return nil, err
	}

	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontmatch: open %s: %w", p, err)
	}

	opts := []text.FaceOption{text.WithOffset(p.Offset), text.WithOwnedSource()}
	if p.Lang != "" {
		opts = append(opts, text.WithLanguage(p.Lang))
	}

	face, err := source.Face(p.PixelSize(), opts...)
	if err != nil {
		_ = source.Close()
		return nil, err
	}
	return face, nil
}
