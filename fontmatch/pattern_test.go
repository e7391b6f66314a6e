package fontmatch

import (
	"errors"
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Pattern
	}{
		{"DejaVu Sans", Pattern{Families: []string{"DejaVu Sans"}}},
		{"DejaVu Sans Mono:size=10;1", Pattern{Families: []string{"DejaVu Sans Mono"}, Size: 10, Offset: 1}},
		{"Font Awesome:pixelsize=12;-2", Pattern{Families: []string{"Font Awesome"}, Pixels: 12, Offset: -2}},
		{"Noto Sans CJK JP, Noto Sans:size=11:lang=ja", Pattern{Families: []string{"Noto Sans CJK JP", "Noto Sans"}, Size: 11, Lang: "ja"}},
		{"file=/usr/share/fonts/go.ttf:size=9", Pattern{File: "/usr/share/fonts/go.ttf", Size: 9}},
		{"Terminus:bold:antialias=false:pixelsize=10.6", Pattern{Families: []string{"Terminus"}, Pixels: 10.6}},
		{"  Go ; 0.5 ", Pattern{Families: []string{"Go"}, Offset: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if !slices.Equal(got.Families, tt.want.Families) ||
				got.Size != tt.want.Size || got.Pixels != tt.want.Pixels ||
				got.File != tt.want.File || got.Lang != tt.want.Lang ||
				got.Offset != tt.want.Offset {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		";1",
		"Go;x",
		"Go:size=big",
		"Go:pixelsize=-3",
		"Go:size=0",
		":size=10",
	}

	for _, in := range tests {
		if _, err := Parse(in); !errors.Is(err, ErrBadPattern) {
			t.Errorf("Parse(%q) error = %v, want ErrBadPattern", in, err)
		}
	}
}

func TestPatternPixelSize(t *testing.T) {
	tests := []struct {
		p    Pattern
		want float64
	}{
		{Pattern{}, DefaultPixelSize},
		{Pattern{Size: 10.5}, 10.5},
		{Pattern{Pixels: 10.6}, 11},
		{Pattern{Pixels: 10.4, Size: 20}, 10},
	}
	for _, tt := range tests {
		if got := tt.p.PixelSize(); got != tt.want {
			t.Errorf("%+v.PixelSize() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPatternStringRoundTrip(t *testing.T) {
	for _, in := range []string{
		"DejaVu Sans Mono:size=10;1",
		"A,B:pixelsize=12:lang=ja;-2",
		"Go",
	} {
		p, err := Parse(in)
		if err != nil {
			t.Fatal(err)
		}
		again, err := Parse(p.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", p.String(), err)
		}
		if again.String() != p.String() {
			t.Errorf("String() not stable: %q then %q", p.String(), again.String())
		}
	}
}
