package barfont

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(7, 3)
	if pm.Width() != 7 || pm.Height() != 3 || len(pm.Data()) != 7*3*4 {
		t.Fatalf("NewPixmap(7, 3): %dx%d, %d bytes", pm.Width(), pm.Height(), len(pm.Data()))
	}
	if pm.GetPixel(0, 0) != Transparent {
		t.Error("new pixmap is not transparent")
	}

	if empty := NewPixmap(-1, 5); empty.Width() != 0 {
		t.Errorf("negative width kept: %d", empty.Width())
	}
}

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 2, Red)

	if got := pm.GetPixel(1, 2); got != Red {
		t.Errorf("GetPixel(1, 2) = %+v, want red", got)
	}

	// Out-of-bounds access is ignored.
	pm.SetPixel(-1, 0, Red)
	pm.SetPixel(4, 4, Red)
	if got := pm.GetPixel(9, 9); got != Transparent {
		t.Errorf("GetPixel out of bounds = %+v", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.Clear(Blue)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if pm.GetPixel(x, y) != Blue {
				t.Fatalf("pixel (%d, %d) = %+v after Clear(Blue)", x, y, pm.GetPixel(x, y))
			}
		}
	}

	// Clear replaces, it does not blend.
	pm.Clear(Transparent)
	if pm.GetPixel(0, 0) != Transparent {
		t.Error("Clear(Transparent) blended over the old content")
	}
}

func TestPixmapFillRect(t *testing.T) {
	pm := NewPixmap(10, 4)
	pm.Clear(Black)
	pm.FillRect(image.Rect(8, 1, 20, 3), White)

	if pm.GetPixel(9, 1) != White || pm.GetPixel(8, 2) != White {
		t.Error("FillRect missed its clipped area")
	}
	if pm.GetPixel(7, 1) != Black || pm.GetPixel(9, 3) != Black {
		t.Error("FillRect painted outside its rectangle")
	}

	// Fully outside is a no-op.
	pm.FillRect(image.Rect(20, 20, 30, 30), Red)
}

func TestPixmapImageRoundTrip(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.Clear(Green)
	pm.SetPixel(2, 2, Red)

	img := pm.ToImage()
	img.Set(0, 0, color.Black) // a copy, must not reach pm
	if pm.GetPixel(0, 0) != Green {
		t.Error("ToImage shares pixels with the pixmap")
	}

	back := FromImage(img)
	if back.GetPixel(2, 2) != Red || back.GetPixel(0, 0) != Black {
		t.Error("FromImage lost pixels")
	}
}

func TestPixmapPNG(t *testing.T) {
	pm := NewPixmap(6, 2)
	pm.Clear(Red)

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 2 {
		t.Errorf("decoded size %v", img.Bounds())
	}

	path := filepath.Join(t.TempDir(), "bar.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "bar.png")); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}
