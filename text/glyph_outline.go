package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlinePoint is a point of a glyph outline in pixels relative to the
// glyph origin, y pointing down.
type OutlinePoint struct {
	X, Y float32
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return unknownStr
	}
}

// OutlineSegment is one path segment of a glyph outline.
//   - MoveTo, LineTo: Points[0] is the target
//   - QuadTo: Points[0] is the control, Points[1] the target
//   - CubicTo: Points[0], Points[1] are controls, Points[2] the target
type OutlineSegment struct {
	Op     OutlineOp
	Points [3]OutlinePoint
}

// GlyphOutline is the vector outline of a glyph scaled to a face size.
type GlyphOutline struct {
	Segments []OutlineSegment

	// Bounds is the bounding box of all segment points.
	Bounds Rect

	GID GlyphID
}

// IsEmpty returns true if the outline has no segments (e.g. a space).
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// loadOutline extracts the outline of gid at ppem pixels per em.
func (f *ximageFont) loadOutline(buf *sfnt.Buffer, gid GlyphID, ppem float64) (*GlyphOutline, error) {
	segments, err := f.font.LoadGlyph(buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), nil)
	if err != nil {
		return nil, err
	}

	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segments)),
		GID:      gid,
	}
	if len(segments) == 0 {
		return outline, nil
	}

	minX, minY := 1e10, 1e10
	maxX, maxY := -1e10, -1e10
	track := func(p OutlinePoint) {
		minX = min(minX, float64(p.X))
		minY = min(minY, float64(p.Y))
		maxX = max(maxX, float64(p.X))
		maxY = max(maxY, float64(p.Y))
	}

	for _, seg := range segments {
		var out OutlineSegment
		n := 0

		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op, n = OutlineOpMoveTo, 1
		case sfnt.SegmentOpLineTo:
			out.Op, n = OutlineOpLineTo, 1
		case sfnt.SegmentOpQuadTo:
			out.Op, n = OutlineOpQuadTo, 2
		case sfnt.SegmentOpCubeTo:
			out.Op, n = OutlineOpCubicTo, 3
		}

		for i := 0; i < n; i++ {
			out.Points[i] = fixedPointToOutline(seg.Args[i])
			track(out.Points[i])
		}
		outline.Segments = append(outline.Segments, out)
	}

	outline.Bounds = Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	return outline, nil
}

// fixedPointToOutline converts a fixed.Point26_6 to OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: float32(p.Y) / 64.0,
	}
}
