// Package barfont draws status bar text with font fallback.
//
// # Overview
//
// A bar is a fixed-height strip. Its text arrives as blocks produced by a
// markup parser, each with an optional preferred font. barfont draws a
// block with a cascade of fonts: characters no font has are dropped and
// logged, and every run goes to the first font that can shape it.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/barfont"
//	    "github.com/gogpu/barfont/fontmatch"
//	    "github.com/gogpu/barfont/text"
//	)
//
//	face, err := fontmatch.Open("DejaVu Sans:size=11;1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dc := barfont.NewContext(1280, 24,
//	    barfont.WithBackground(barfont.Hex("#222")),
//	    barfont.WithFonts(face))
//	defer dc.Close()
//
//	dc.Clear()
//	dc.DrawText(text.Block(" 87%  12:30", 0))
//	dc.Save("bar.png")
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - The pen's y is the bar baseline, by default its vertical middle;
//     each face moves its glyphs down from there so that fonts of different
//     sizes center on the strip
//
// # Packages
//
//   - text: fonts, faces, the cascade and the fallback renderer
//   - text/ucs: the UTF-8 codec the renderer works on
//   - fontmatch: font patterns ("Family:size=N;offset") to faces
package barfont

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
