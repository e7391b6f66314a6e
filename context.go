package barfont

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"
	"sync/atomic"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"

	"github.com/gogpu/barfont/text"
)

// ErrClosed is returned when a closed Context is drawn on.
var ErrClosed = errors.New("barfont: context closed")

// Context is the drawing context of one bar: a pixmap, a pen, the text
// color and the fallback font cascade.
// Context implements text.Canvas and io.Closer.
//
// Drawing methods are not safe for concurrent use. Frame holds the
// context for a whole redraw.
type Context struct {
	mu sync.Mutex

	pixmap     *Pixmap
	background RGBA
	foreground RGBA
	baseline   float64

	// Pen
	x, y float64

	cascade *text.Cascade
	raster  *vector.Rasterizer // reused across glyphs

	closed atomic.Bool
}

var (
	_ text.Canvas = (*Context)(nil)
	_ io.Closer   = (*Context)(nil)
)

// NewContext creates a drawing context for a bar of the given size.
// The pen starts at the left edge on the baseline, which defaults to the
// vertical middle of the bar.
//
//	dc := barfont.NewContext(1280, 24, barfont.WithFonts(face))
//	defer dc.Close()
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}

	baseline := float64(pixmap.Height()) / 2
	if options.hasBaseline {
		baseline = options.baseline
	}

	return &Context{
		pixmap:     pixmap,
		background: options.background,
		foreground: options.foreground,
		baseline:   baseline,
		y:          baseline,
		cascade:    text.NewCascade(options.fonts...),
		raster:     vector.NewRasterizer(0, 0),
	}
}

// Frame runs fn with the context held, so a whole redraw is not
// interleaved with another goroutine's.
func (c *Context) Frame(fn func(*Context) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Load() {
		return ErrClosed
	}
	return fn(c)
}

// Width returns the width of the context.
func (c *Context) Width() int {
	return c.pixmap.Width()
}

// Height returns the height of the context.
func (c *Context) Height() int {
	return c.pixmap.Height()
}

// Baseline returns the y every text block is drawn on.
func (c *Context) Baseline() float64 {
	return c.baseline
}

// Pixmap returns the surface the context draws into.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// MoveTo sets the pen position.
func (c *Context) MoveTo(x, y float64) {
	c.x, c.y = x, y
}

// RelMoveTo moves the pen by (dx, dy).
func (c *Context) RelMoveTo(dx, dy float64) {
	c.x += dx
	c.y += dy
}

// CurrentPoint returns the pen position.
func (c *Context) CurrentPoint() (x, y float64) {
	return c.x, c.y
}

// SetColor sets the text and fill color.
func (c *Context) SetColor(col color.Color) {
	c.foreground = FromColor(col)
}

// SetHexColor sets the text and fill color from a bar color string.
// Malformed strings select opaque black.
func (c *Context) SetHexColor(hex string) {
	c.foreground = Hex(hex)
}

// Color returns the text and fill color.
func (c *Context) Color() RGBA {
	return c.foreground
}

// Clear fills the bar with the background color and returns the pen to
// the start of the baseline.
func (c *Context) Clear() {
	c.pixmap.Clear(c.background)
	c.MoveTo(0, c.baseline)
}

// FillRect fills a rectangle with the current color.
// It is used for underlines and block backgrounds.
func (c *Context) FillRect(x, y, w, h float64) {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h))
	c.pixmap.FillRect(r, c.foreground)
}

// AddFont appends f to the fallback cascade.
func (c *Context) AddFont(f text.Font) error {
	return c.cascade.Add(f)
}

// InsertFont places f at the 0-based position i of the fallback cascade.
func (c *Context) InsertFont(i int, f text.Font) error {
	return c.cascade.Insert(i, f)
}

// Cascade returns the fallback cascade.
func (c *Context) Cascade() *text.Cascade {
	return c.cascade
}

// DrawText draws one text block at the pen with the fallback cascade and
// leaves the pen after it on the baseline.
//
// The pen's y is moved to the baseline first, so blocks always line up no
// matter where earlier drawing left it.
func (c *Context) DrawText(block text.TextBlock) (text.Report, error) {
	if c.closed.Load() {
		return text.Report{}, ErrClosed
	}
	c.y = c.baseline
	return text.Render(c, c.cascade, block)
}

// Image returns a copy of the bar image.
func (c *Context) Image() image.Image {
	return c.pixmap.ToImage()
}

// EncodePNG writes the bar image to w in PNG format.
func (c *Context) EncodePNG(w io.Writer) error {
	return c.pixmap.EncodePNG(w)
}

// SavePNG saves the bar image to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// Save saves the bar image with the format chosen by the file
// extension (png, jpg, gif, tif, bmp).
func (c *Context) Save(path string) error {
	if err := imaging.Save(c.pixmap.img, path); err != nil {
		return fmt.Errorf("barfont: save %s: %w", path, err)
	}
	Logger().Debug("barfont: saved frame", "path", path,
		"width", c.Width(), "height", c.Height())
	return nil
}

// Close closes the fallback cascade and with it every registered face.
// It waits for a running Frame to finish. Close is idempotent.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Swap(true) {
		return nil
	}
	return c.cascade.Close()
}
