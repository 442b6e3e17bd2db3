package render

import (
	"github.com/vovakirdan/tui-overworld/internal/core"
	"github.com/vovakirdan/tui-overworld/internal/world"
)

// TileSource provides tile codes by cell. *world.Map implements it.
type TileSource interface {
	TileAt(col, row int) world.Code
}

// SurfaceSource provides pre-rendered tile surfaces. *TileCache implements it.
type SurfaceSource interface {
	SurfaceFor(code world.Code) *core.Surface
}

// Overlay is drawn last, over tiles and sprite, in viewport coordinates.
type Overlay interface {
	Draw(dst *core.Surface, cam core.Rect)
}

// Pipeline draws one frame in a fixed order:
// background, visible tiles, player sprite, overlay.
// It only reads the map, cache, sprite and position it is given.
type Pipeline struct {
	TileSize   int
	Background core.Color
	Overlay    Overlay // optional
}

// Frame redraws dst for the camera rectangle cam.
func (p *Pipeline) Frame(dst *core.Surface, cam core.Rect, tiles TileSource, cache SurfaceSource, sprite *Sprite, pos core.Point) {
	// 1. Background
	dst.FillRect(dst.Bounds(), p.Background)

	// 2. Visible tiles
	p.drawTiles(dst, cam, tiles, cache)

	// 3. Sprite
	if sprite != nil {
		sprite.Draw(dst, pos.Sub(cam.Origin()))
	}

	// 4. Overlay
	if p.Overlay != nil {
		p.Overlay.Draw(dst, cam)
	}
}

// VisibleCells returns the inclusive cell window covering cam.
// The end is startCol + ceil(viewportW / tileSize); it is inclusive so the
// partially visible cell at the far edge is drawn when the camera origin is
// not tile aligned.
func (p *Pipeline) VisibleCells(cam core.Rect) (startCol, startRow, endCol, endRow int) {
	ts := p.TileSize
	startCol = core.FloorDiv(cam.X, ts)
	startRow = core.FloorDiv(cam.Y, ts)
	endCol = startCol + core.CeilDiv(cam.W, ts)
	endRow = startRow + core.CeilDiv(cam.H, ts)
	return startCol, startRow, endCol, endRow
}

func (p *Pipeline) drawTiles(dst *core.Surface, cam core.Rect, tiles TileSource, cache SurfaceSource) {
	if p.TileSize <= 0 {
		return
	}
	startCol, startRow, endCol, endRow := p.VisibleCells(cam)

	for row := startRow; row <= endRow; row++ {
		y := row*p.TileSize - cam.Y
		for col := startCol; col <= endCol; col++ {
			x := col*p.TileSize - cam.X
			dst.Blit(cache.SurfaceFor(tiles.TileAt(col, row)), x, y)
		}
	}
}
