package core

import (
	"bytes"
	"image/png"
	"testing"
)

var (
	red  = RGB(0xff, 0, 0)
	blue = RGB(0, 0, 0xff)
)

func TestNewSurface(t *testing.T) {
	s := NewSurface(16, 8)

	if s.Width() != 16 {
		t.Errorf("Width() = %d, expected 16", s.Width())
	}
	if s.Height() != 8 {
		t.Errorf("Height() = %d, expected 8", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.At(x, y) != ColorBlack {
				t.Fatalf("New surface should be black, got %v at (%d, %d)", s.At(x, y), x, y)
			}
		}
	}
}

func TestSurfaceSetAt(t *testing.T) {
	s := NewSurface(10, 10)

	s.Set(5, 5, red)
	if s.At(5, 5) != red {
		t.Errorf("At(5, 5) = %v, expected %v", s.At(5, 5), red)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, red)
	s.Set(100, 0, red)
	s.Set(0, -1, red)
	s.Set(0, 100, red)

	if s.At(-1, 0) != ColorBlack {
		t.Error("Out of bounds At should return black")
	}
}

func TestSurfaceFillRect(t *testing.T) {
	s := NewSurface(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), red)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			if inside && s.At(x, y) != red {
				t.Errorf("FillRect: expected red at (%d, %d)", x, y)
			}
			if !inside && s.At(x, y) != ColorBlack {
				t.Errorf("FillRect should not affect (%d, %d)", x, y)
			}
		}
	}
}

func TestSurfaceFillRectClipped(t *testing.T) {
	s := NewSurface(4, 4)
	s.FillRect(NewRect(-2, -2, 4, 4), red) // Should not panic

	if s.At(0, 0) != red || s.At(1, 1) != red {
		t.Error("Visible part of a straddling rect should be filled")
	}
	if s.At(2, 2) != ColorBlack {
		t.Error("FillRect leaked past its rectangle")
	}
}

func TestSurfaceDrawRect(t *testing.T) {
	s := NewSurface(10, 10)
	s.DrawRect(NewRect(1, 1, 5, 4), blue)

	// Corners and edges
	for _, p := range []Point{{1, 1}, {5, 1}, {1, 4}, {5, 4}, {3, 1}, {3, 4}, {1, 2}, {5, 3}} {
		if s.At(p.X, p.Y) != blue {
			t.Errorf("Outline missing at (%d, %d)", p.X, p.Y)
		}
	}
	// Interior untouched
	if s.At(3, 2) != ColorBlack {
		t.Error("DrawRect should not fill the interior")
	}
}

func TestSurfaceBlit(t *testing.T) {
	src := NewSurface(3, 2)
	src.Fill(red)
	src.Set(2, 1, blue)

	dst := NewSurface(5, 5)
	dst.Blit(src, 1, 2)

	if dst.At(1, 2) != red || dst.At(3, 2) != red {
		t.Error("Blit should copy the first row")
	}
	if dst.At(3, 3) != blue {
		t.Errorf("Blit lost pixel detail, got %v", dst.At(3, 3))
	}
	if dst.At(0, 2) != ColorBlack || dst.At(4, 3) != ColorBlack {
		t.Error("Blit wrote outside the source footprint")
	}
}

func TestSurfaceBlitClipped(t *testing.T) {
	src := NewSurface(4, 4)
	src.Fill(red)
	src.Set(3, 3, blue)

	dst := NewSurface(4, 4)
	dst.Blit(src, -2, -2)
	if dst.At(1, 1) != blue {
		t.Errorf("Negative-offset blit misaligned, got %v at (1, 1)", dst.At(1, 1))
	}
	if dst.At(2, 2) != ColorBlack {
		t.Error("Negative-offset blit leaked")
	}

	dst = NewSurface(4, 4)
	dst.Blit(src, 3, 3)
	if dst.At(3, 3) != red {
		t.Error("Positive-offset blit should draw the visible corner")
	}

	dst.Blit(src, 10, 10) // Entirely outside, should not panic
}

func TestSurfaceImage(t *testing.T) {
	s := NewSurface(2, 1)
	s.Set(1, 0, red)

	img := s.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Image bounds = %v", img.Bounds())
	}
	if c := img.RGBAAt(1, 0); c.R != 0xff || c.G != 0 || c.A != 0xff {
		t.Errorf("Image pixel = %+v, expected opaque red", c)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#7cfc00", RGB(0x7c, 0xfc, 0x00), false},
		{"1e90ff", RGB(0x1e, 0x90, 0xff), false},
		{"#fff", ColorWhite, false},
		{"#12345", Color{}, true},
		{"#zzzzzz", Color{}, true},
		{"", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}

	if h := RGB(0xde, 0xb8, 0x87).Hex(); h != "#deb887" {
		t.Errorf("Hex() = %q, expected #deb887", h)
	}
}

func TestSurfaceScaled(t *testing.T) {
	s := NewSurface(2, 1)
	s.Set(1, 0, ColorWhite)

	big := s.Scaled(3)
	if big.Width() != 6 || big.Height() != 3 {
		t.Fatalf("Scaled(3) size = %dx%d, expected 6x3", big.Width(), big.Height())
	}
	if big.At(2, 2) != ColorBlack || big.At(3, 0) != ColorWhite || big.At(5, 2) != ColorWhite {
		t.Error("Scaled(3) did not repeat pixels")
	}

	same := s.Scaled(1)
	same.Set(0, 0, ColorMagenta)
	if s.At(0, 0) != ColorBlack {
		t.Error("Scaled(1) should return a copy")
	}
}

func TestSurfaceWritePNG(t *testing.T) {
	s := NewSurface(3, 2)
	s.Set(2, 1, RGB(0x12, 0x34, 0x56))

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("decoded size = %dx%d, expected 3x2", b.Dx(), b.Dy())
	}
	r, g, b, _ := img.At(2, 1).RGBA()
	if r>>8 != 0x12 || g>>8 != 0x34 || b>>8 != 0x56 {
		t.Errorf("decoded pixel = %x %x %x", r>>8, g>>8, b>>8)
	}
}
