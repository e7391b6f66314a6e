package barfont

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Pixmap is the bar surface: a premultiplied RGBA pixel buffer.
type Pixmap struct {
	img *image.RGBA
}

var _ xdraw.Image = (*Pixmap)(nil)

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (premultiplied RGBA, 4 bytes per pixel).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	p.img.Set(x, y, c)
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}.In(p.img.Rect)) {
		return Transparent
	}
	return FromColor(p.img.RGBAAt(x, y))
}

// Clear fills the entire pixmap with a color, replacing what was there.
func (p *Pixmap) Clear(c RGBA) {
	xdraw.Draw(p.img, p.img.Rect, image.NewUniform(c), image.Point{}, xdraw.Src)
}

// FillRect composites c over the rectangle r, clipped to the pixmap.
func (p *Pixmap) FillRect(r image.Rectangle, c RGBA) {
	r = r.Intersect(p.img.Rect)
	if r.Empty() {
		return
	}
	xdraw.Draw(p.img, r, image.NewUniform(c), image.Point{}, xdraw.Over)
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	xdraw.Draw(pm.img, pm.img.Rect, img, b.Min, xdraw.Src)
	return pm
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.img.Set(x, y, c)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
