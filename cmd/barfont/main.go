// Command barfont renders one status bar frame from markup to an image.
//
//	barfont -font "Go Mono:pixelsize=12;1" -font "Font Awesome:size=11;2" \
//	    -bg "#222" -fg "#dfdfdf" -o bar.png 'cpu 12% %{T2}mem%{T-} 12:30'
//
// Fonts follow "Family:size=N;offset" patterns and form the fallback
// cascade in flag order; %{Tn} in the text prefers font n. Without -font
// the built-in Go Regular face is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/barfont"
	"github.com/gogpu/barfont/fontmatch"
	"github.com/gogpu/barfont/text"
)

// patterns collects repeated -font flags.
type patterns []string

func (p *patterns) String() string { return strings.Join(*p, ", ") }

func (p *patterns) Set(s string) error {
	*p = append(*p, s)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("barfont: %v", err)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("barfont", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var fonts patterns
	fs.Var(&fonts, "font", "font pattern, repeat for fallback fonts")
	var (
		width   = fs.Int("width", 800, "bar width")
		height  = fs.Int("height", 24, "bar height")
		bg      = fs.String("bg", "#222", "background color")
		fg      = fs.String("fg", "#dfdfdf", "text color")
		output  = fs.String("o", "bar.png", "output file, format by extension")
		scale   = fs.Int("scale", 1, "integer upscale factor of the output")
		verbose = fs.Bool("v", false, "log the font of every drawn run")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	barfont.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer barfont.SetLogger(nil)

	background, err := barfont.ParseHex(*bg)
	if err != nil {
		return err
	}
	foreground, err := barfont.ParseHex(*fg)
	if err != nil {
		return err
	}
	if *width <= 0 || *height <= 0 || *scale < 1 {
		return fmt.Errorf("bad size %dx%d scale %d", *width, *height, *scale)
	}

	faces, err := openFonts(fonts)
	if err != nil {
		return err
	}

	dc := barfont.NewContext(*width, *height,
		barfont.WithBackground(background),
		barfont.WithForeground(foreground),
		barfont.WithFonts(faces...))
	defer func() { _ = dc.Close() }()

	markup := strings.Join(fs.Args(), " ")
	err = dc.Frame(func(dc *barfont.Context) error {
		dc.Clear()
		for _, block := range parseMarkup(markup) {
			_, err := dc.DrawText(block)
			var be *text.BlockError
			if errors.As(err, &be) {
				barfont.Logger().Warn("barfont: skipping block", "err", be)
				continue
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if *scale == 1 {
		return dc.Save(*output)
	}
	w, h := *width*(*scale), *height*(*scale)
	img := imaging.Resize(dc.Image(), w, h, imaging.NearestNeighbor)
	if err := imaging.Save(img, *output); err != nil {
		return fmt.Errorf("save %s: %w", *output, err)
	}
	return nil
}

// openFonts opens the faces of the -font patterns in order, or the
// built-in face when there are none.
func openFonts(list []string) ([]text.Font, error) {
	if len(list) == 0 {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, err
		}
		face, err := source.Face(fontmatch.DefaultPixelSize, text.WithOwnedSource())
		if err != nil {
			return nil, err
		}
		return []text.Font{face}, nil
	}

	fonts := make([]text.Font, 0, len(list))
	for _, pattern := range list {
		face, err := fontmatch.Open(pattern)
		if err != nil {
			for _, f := range fonts {
				_ = f.(*text.Face).Close()
			}
			return nil, err
		}
		fonts = append(fonts, face)
	}
	return fonts, nil
}
