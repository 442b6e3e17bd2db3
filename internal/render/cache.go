package render

import (
	"sync"

	"github.com/vovakirdan/tui-overworld/internal/core"
	"github.com/vovakirdan/tui-overworld/internal/world"
)

// ColorSource resolves tile codes to fill colors. *world.Atlas implements it.
type ColorSource interface {
	Color(c world.Code) core.Color
}

// TileCache memoizes one rendered surface per tile code.
// Entries are never evicted or invalidated; the atlas is immutable.
type TileCache struct {
	mu        sync.Mutex
	tileSize  int
	colors    ColorSource
	surfaces  map[world.Code]*core.Surface
	syntheses int
}

// NewTileCache creates an empty cache for tiles of tileSize x tileSize pixels.
func NewTileCache(colors ColorSource, tileSize int) *TileCache {
	return &TileCache{
		tileSize: tileSize,
		colors:   colors,
		surfaces: make(map[world.Code]*core.Surface),
	}
}

// SurfaceFor returns the cached surface for a code, synthesizing it on first use.
// Callers must treat the returned surface as read-only.
func (c *TileCache) SurfaceFor(code world.Code) *core.Surface {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.surfaces[code]; ok {
		return s
	}

	s := core.NewSurface(c.tileSize, c.tileSize)
	s.Fill(c.colors.Color(code))
	c.surfaces[code] = s
	c.syntheses++
	return s
}

// Warm synthesizes surfaces for the given codes up front.
func (c *TileCache) Warm(codes []world.Code) {
	for _, code := range codes {
		c.SurfaceFor(code)
	}
}

// Len returns the number of cached surfaces.
func (c *TileCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.surfaces)
}

// Syntheses returns how many surfaces have been built so far.
func (c *TileCache) Syntheses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.syntheses
}
