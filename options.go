package barfont

import "github.com/gogpu/barfont/text"

// ContextOption configures a Context during creation.
//
// Example:
//
//	dc := barfont.NewContext(1280, 24,
//	    barfont.WithBackground(barfont.Hex("#222")),
//	    barfont.WithForeground(barfont.Hex("#dfdfdf")),
//	    barfont.WithFonts(textFace, iconFace))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	pixmap      *Pixmap
	background  RGBA
	foreground  RGBA
	baseline    float64
	hasBaseline bool
	fonts       []text.Font
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		background: Transparent,
		foreground: White,
	}
}

// WithPixmap draws into pm instead of a new pixmap.
// The context takes its size from pm.
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// WithBackground sets the color Clear fills the bar with.
func WithBackground(c RGBA) ContextOption {
	return func(o *contextOptions) {
		o.background = c
	}
}

// WithForeground sets the initial text color.
func WithForeground(c RGBA) ContextOption {
	return func(o *contextOptions) {
		o.foreground = c
	}
}

// WithBaseline sets the y the pen returns to for every text block.
// The default is the vertical middle of the bar.
func WithBaseline(y float64) ContextOption {
	return func(o *contextOptions) {
		o.baseline = y
		o.hasBaseline = true
	}
}

// WithFonts registers fonts in fallback order.
func WithFonts(fonts ...text.Font) ContextOption {
	return func(o *contextOptions) {
		o.fonts = append(o.fonts, fonts...)
	}
}
