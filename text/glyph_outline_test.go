package text

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestOutlineOp_String(t *testing.T) {
	tests := []struct {
		op   OutlineOp
		want string
	}{
		{OutlineOpMoveTo, "MoveTo"},
		{OutlineOpLineTo, "LineTo"},
		{OutlineOpQuadTo, "QuadTo"},
		{OutlineOpCubicTo, "CubicTo"},
		{OutlineOp(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("OutlineOp.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGlyphOutline_IsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		outline *GlyphOutline
		want    bool
	}{
		{"nil outline", nil, true},
		{"nil segments", &GlyphOutline{Segments: nil}, true},
		{"empty segments", &GlyphOutline{Segments: []OutlineSegment{}}, true},
		{
			"has segments",
			&GlyphOutline{Segments: []OutlineSegment{
				{Op: OutlineOpMoveTo, Points: [3]OutlinePoint{{X: 0, Y: 0}}},
			}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outline.IsEmpty(); got != tt.want {
				t.Errorf("GlyphOutline.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFixedPointToOutline(t *testing.T) {
	p := fixedPointToOutline(fixed.Point26_6{X: 96, Y: -32})
	if p.X != 1.5 || p.Y != -0.5 {
		t.Errorf("fixedPointToOutline = %+v, want {1.5 -0.5}", p)
	}
}

func TestLoadOutline(t *testing.T) {
	source := loadTestFont(t)
	face, _ := source.Face(16)
	canvas := &recordingCanvas{}
	face.ShapeAndDraw([]byte("o"), canvas)
	gid := canvas.runs[0].Glyphs[0].GID

	small, err := face.Outline(gid)
	if err != nil {
		t.Fatal(err)
	}
	large, err := testFace(t, 32).Outline(gid)
	if err != nil {
		t.Fatal(err)
	}

	if small.GID != gid || len(small.Segments) != len(large.Segments) {
		t.Fatalf("outlines differ in shape: %d vs %d segments", len(small.Segments), len(large.Segments))
	}
	// 'o' is two closed contours.
	moves := 0
	for _, s := range small.Segments {
		if s.Op == OutlineOpMoveTo {
			moves++
		}
	}
	if moves != 2 {
		t.Errorf("'o' has %d contours, want 2", moves)
	}
	if r := large.Bounds.Height() / small.Bounds.Height(); r < 1.9 || r > 2.1 {
		t.Errorf("32px outline is %.2fx the 16px one, want about 2x", r)
	}
}

func TestLoadOutlineBadGlyph(t *testing.T) {
	if _, err := testFace(t, 16).Outline(GlyphID(0xFFFF)); err == nil {
		t.Error("Outline of an out-of-range glyph succeeded")
	}
}
