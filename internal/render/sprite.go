package render

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

// ErrEmptySprite is returned for a sprite without pixels.
var ErrEmptySprite = errors.New("render: sprite has no pixels")

// Sprite is a small immutable grid of palette indices.
// Cells holding the transparent index are skipped when drawing.
type Sprite struct {
	grid        [][]rune
	palette     map[rune]core.Color
	transparent rune
	pixelSize   int
}

// NewSprite validates and builds a sprite.
// Every row must be the same length and every non-transparent index must be
// in the palette. pixelSize is the edge of one sprite pixel in world pixels.
func NewSprite(rows []string, palette map[rune]core.Color, transparent rune, pixelSize int) (*Sprite, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptySprite
	}
	if pixelSize <= 0 {
		pixelSize = 1
	}

	width := utf8.RuneCountInString(rows[0])
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		r := []rune(row)
		if len(r) != width {
			return nil, fmt.Errorf("render: sprite row %d has %d pixels, expected %d", y, len(r), width)
		}
		for x, idx := range r {
			if idx == transparent {
				continue
			}
			if _, ok := palette[idx]; !ok {
				return nil, fmt.Errorf("render: sprite pixel (%d, %d) uses unknown palette index %q", x, y, idx)
			}
		}
		grid[y] = r
	}

	pal := make(map[rune]core.Color, len(palette))
	for k, v := range palette {
		pal[k] = v
	}

	return &Sprite{
		grid:        grid,
		palette:     pal,
		transparent: transparent,
		pixelSize:   pixelSize,
	}, nil
}

// Size returns the sprite footprint in world pixels.
func (s *Sprite) Size() core.Size {
	return core.Size{
		W: len(s.grid[0]) * s.pixelSize,
		H: len(s.grid) * s.pixelSize,
	}
}

// Draw composites the sprite onto dst with its top-left corner at 'at'.
func (s *Sprite) Draw(dst *core.Surface, at core.Point) {
	for y, row := range s.grid {
		for x, idx := range row {
			if idx == s.transparent {
				continue
			}
			dst.FillRect(core.Rect{
				X: at.X + x*s.pixelSize,
				Y: at.Y + y*s.pixelSize,
				W: s.pixelSize,
				H: s.pixelSize,
			}, s.palette[idx])
		}
	}
}
