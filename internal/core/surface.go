package core

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Surface is a 2D pixel buffer for rendering.
// The platform layer decides how pixels reach the terminal.
type Surface struct {
	width  int
	height int
	pixels []Color // row-major, index = y*width + x
}

// NewSurface creates a new surface with the given dimensions, filled black.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Surface{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Bounds returns the surface rectangle anchored at the origin.
func (s *Surface) Bounds() Rect {
	return Rect{W: s.width, H: s.height}
}

// Fill paints the entire surface with one color.
func (s *Surface) Fill(c Color) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// Set paints a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = c
}

// At returns the pixel at the given position.
// Returns black for out-of-bounds coordinates.
func (s *Surface) At(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ColorBlack
	}
	return s.pixels[y*s.width+x]
}

// FillRect fills a rectangular area, clipped to the surface.
func (s *Surface) FillRect(r Rect, c Color) {
	clip := r.Intersect(s.Bounds())
	for y := clip.Y; y < clip.Bottom(); y++ {
		row := s.pixels[y*s.width : (y+1)*s.width]
		for x := clip.X; x < clip.Right(); x++ {
			row[x] = c
		}
	}
}

// DrawRect draws a one-pixel rectangle outline.
func (s *Surface) DrawRect(r Rect, c Color) {
	if r.Empty() {
		return
	}
	s.FillRect(Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, c)
	s.FillRect(Rect{X: r.X, Y: r.Bottom() - 1, W: r.W, H: 1}, c)
	s.FillRect(Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c)
	s.FillRect(Rect{X: r.Right() - 1, Y: r.Y, W: 1, H: r.H}, c)
}

// Blit copies src onto the surface with its top-left corner at (dx, dy).
// Parts that fall outside the surface are clipped.
func (s *Surface) Blit(src *Surface, dx, dy int) {
	dst := Rect{X: dx, Y: dy, W: src.width, H: src.height}.Intersect(s.Bounds())
	if dst.Empty() {
		return
	}
	for y := dst.Y; y < dst.Bottom(); y++ {
		sy := y - dy
		sx := dst.X - dx
		copy(s.pixels[y*s.width+dst.X:y*s.width+dst.Right()],
			src.pixels[sy*src.width+sx:sy*src.width+sx+dst.W])
	}
}

// Image converts the surface to an RGBA image, for PNG export.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.pixels[y*s.width+x]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return img
}

// Scaled returns a copy enlarged n times with nearest-neighbor sampling.
func (s *Surface) Scaled(n int) *Surface {
	if n <= 1 {
		out := NewSurface(s.width, s.height)
		copy(out.pixels, s.pixels)
		return out
	}
	out := NewSurface(s.width*n, s.height*n)
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			out.pixels[y*out.width+x] = s.pixels[(y/n)*s.width+x/n]
		}
	}
	return out
}

// WritePNG encodes the surface as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}
