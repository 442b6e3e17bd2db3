// Package render draws the visible part of the world into a core.Surface:
// camera culling, the tile raster cache, sprite compositing and overlays.
package render

import "github.com/vovakirdan/tui-overworld/internal/core"

// Camera maps world pixel-space onto a fixed-size viewport.
type Camera struct {
	TileSize  int // World pixels per tile
	ViewportW int // Viewport width in pixels
	ViewportH int // Viewport height in pixels
}

// VisibleRect returns the world rectangle shown for a player at pos on a
// map of mapW x mapH pixels.
//
// The viewport is centered half a tile past pos so the player sits mid-cell,
// then each axis is clamped to [0, mapExtent-viewportExtent]. When the map is
// smaller than the viewport on an axis that range is empty and the axis
// clamps to 0.
func (c Camera) VisibleRect(pos core.Point, mapW, mapH int) core.Rect {
	half := c.TileSize / 2
	x := pos.X + half - c.ViewportW/2
	y := pos.Y + half - c.ViewportH/2

	return core.Rect{
		X: clampAxis(x, mapW, c.ViewportW),
		Y: clampAxis(y, mapH, c.ViewportH),
		W: c.ViewportW,
		H: c.ViewportH,
	}
}

func clampAxis(v, extent, view int) int {
	hi := extent - view
	if hi < 0 {
		return 0
	}
	return core.Clamp(v, 0, hi)
}
