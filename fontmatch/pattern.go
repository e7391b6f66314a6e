package fontmatch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPixelSize is the size of a pattern that names none.
const DefaultPixelSize = 12

// ErrBadPattern is wrapped by every Parse error.
var ErrBadPattern = errors.New("fontmatch: malformed font pattern")

// Pattern is a parsed font pattern of the form
//
//	Family[,Family...][:key=value...][;offset]
//
// for example "DejaVu Sans Mono:size=10;1" or "Font Awesome:pixelsize=12;2".
// Recognized keys are size, pixelsize, file and lang; other properties are
// accepted and ignored.
type Pattern struct {
	// Families are the family names in preference order.
	Families []string

	// Size is the requested size, used as pixels per em.
	Size float64

	// Pixels is the requested pixel size. It wins over Size.
	Pixels float64

	// File is an explicit font file path. It wins over the families.
	File string

	// Lang is the language tag handed to the shaper.
	Lang string

	// Offset moves the font's baseline down by this many pixels.
	Offset float64
}

// Parse parses a font pattern.
func Parse(s string) (Pattern, error) {
	var p Pattern

	rest := strings.TrimSpace(s)
	if i := strings.LastIndexByte(rest, ';'); i >= 0 {
		off, err := strconv.ParseFloat(strings.TrimSpace(rest[i+1:]), 64)
		if err != nil {
			return p, fmt.Errorf("%w: bad offset in %q", ErrBadPattern, s)
		}
		p.Offset = off
		rest = rest[:i]
	}

	fields := strings.Split(rest, ":")
	if !strings.Contains(fields[0], "=") {
		for _, fam := range strings.Split(fields[0], ",") {
			if fam = strings.TrimSpace(fam); fam != "" {
				p.Families = append(p.Families, fam)
			}
		}
		fields = fields[1:]
	}

	for _, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue // style constants such as "bold"
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch key {
		case "size", "pixelsize":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil || v <= 0 {
				return p, fmt.Errorf("%w: bad %s %q in %q", ErrBadPattern, key, value, s)
			}
			if key == "size" {
				p.Size = v
			} else {
				p.Pixels = v
			}
		case "file":
			p.File = value
		case "lang":
			p.Lang = value
		}
	}

	if len(p.Families) == 0 && p.File == "" {
		return p, fmt.Errorf("%w: no family or file in %q", ErrBadPattern, s)
	}
	return p, nil
}

// PixelSize returns the size to open the font at: the pixel size rounded
// to whole pixels if given, else the size, else DefaultPixelSize.
func (p Pattern) PixelSize() float64 {
	switch {
	case p.Pixels > 0:
		return math.Round(p.Pixels)
	case p.Size > 0:
		return p.Size
	default:
		return DefaultPixelSize
	}
}

// String formats the pattern back into its textual form.
func (p Pattern) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(p.Families, ","))
	if p.Pixels > 0 {
		fmt.Fprintf(&b, ":pixelsize=%g", p.Pixels)
	}
	if p.Size > 0 {
		fmt.Fprintf(&b, ":size=%g", p.Size)
	}
	if p.File != "" {
		b.WriteString(":file=" + p.File)
	}
	if p.Lang != "" {
		b.WriteString(":lang=" + p.Lang)
	}
	if p.Offset != 0 {
		fmt.Fprintf(&b, ";%g", p.Offset)
	}
	return b.String()
}
