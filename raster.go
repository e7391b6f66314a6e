package barfont

import (
	"image"
	"math"

	"github.com/gogpu/barfont/text"
)

// DrawGlyphRun implements text.Canvas. Every glyph outline of the run is
// rasterized with anti-aliasing and composited over the pixmap in the
// current color. Runs without a face are skipped.
func (c *Context) DrawGlyphRun(run text.GlyphRun) {
	if run.Face == nil || len(run.Glyphs) == 0 {
		return
	}

	src := image.NewUniform(c.foreground)
	for _, g := range run.Glyphs {
		outline, err := run.Face.Outline(g.GID)
		if err != nil {
			Logger().Debug("barfont: glyph outline", "font", run.Face.Name(),
				"gid", g.GID, "err", err)
			continue
		}
		if outline.IsEmpty() {
			continue
		}
		c.fillOutline(outline, run.X+g.X, run.Y+g.Y, src)
	}
}

// fillOutline fills outline with its origin at (ox, oy).
func (c *Context) fillOutline(outline *text.GlyphOutline, ox, oy float64, src image.Image) {
	b := outline.Bounds
	glyph := image.Rect(
		int(math.Floor(ox+b.MinX)), int(math.Floor(oy+b.MinY)),
		int(math.Ceil(ox+b.MaxX)), int(math.Ceil(oy+b.MaxY)),
	)
	r := glyph.Intersect(c.pixmap.Bounds())
	if r.Empty() {
		return
	}

	// The rasterizer covers only the visible part; its origin is r.Min.
	dx := float32(ox) - float32(r.Min.X)
	dy := float32(oy) - float32(r.Min.Y)

	z := c.raster
	z.Reset(r.Dx(), r.Dy())
	open := false
	for _, seg := range outline.Segments {
		p := seg.Points
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(p[0].X+dx, p[0].Y+dy)
			open = true
		case text.OutlineOpLineTo:
			z.LineTo(p[0].X+dx, p[0].Y+dy)
		case text.OutlineOpQuadTo:
			z.QuadTo(p[0].X+dx, p[0].Y+dy, p[1].X+dx, p[1].Y+dy)
		case text.OutlineOpCubicTo:
			z.CubeTo(p[0].X+dx, p[0].Y+dy, p[1].X+dx, p[1].Y+dy, p[2].X+dx, p[2].Y+dy)
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(c.pixmap.img, r, src, image.Point{})
}
