// Package overworld ties the world, player and render packages into one
// explorable session and dispatches directional input to it.
package overworld

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-overworld/internal/core"
	"github.com/vovakirdan/tui-overworld/internal/player"
	"github.com/vovakirdan/tui-overworld/internal/render"
	"github.com/vovakirdan/tui-overworld/internal/world"
)

var (
	ErrNoMap       = errors.New("overworld: no map")
	ErrNoAtlas     = errors.New("overworld: no atlas")
	ErrNoSprite    = errors.New("overworld: no sprite")
	ErrBadTile     = errors.New("overworld: tile size must be positive")
	ErrBadViewport = errors.New("overworld: viewport must be positive")
)

// Options configures a Session.
type Options struct {
	Map      *world.Map
	Atlas    *world.Atlas
	Sprite   *render.Sprite
	Cache    *render.TileCache // optional; sessions may share one
	TileSize int

	ViewportW, ViewportH int // pixels

	Background core.Color
	Overlay    render.Overlay // optional

	Store  player.Store // optional; nil disables persistence
	Key    string       // storage key, defaults to player.DefaultKey
	Start  player.Position
	Logger *log.Logger
}

// Session is the owned state of one explorer: map, atlas, tile cache,
// player, camera and the surface frames are drawn into.
// It is not safe for concurrent use; the tile cache is.
type Session struct {
	world    *world.Map
	atlas    *world.Atlas
	cache    *render.TileCache
	sprite   *render.Sprite
	player   *player.State
	camera   render.Camera
	pipeline *render.Pipeline
	surface  *core.Surface
	view     core.Rect
	frames   int
}

// NewSession validates opts, restores the player position and draws the
// first frame.
func NewSession(opts Options) (*Session, error) {
	switch {
	case opts.Map == nil:
		return nil, ErrNoMap
	case opts.Atlas == nil:
		return nil, ErrNoAtlas
	case opts.Sprite == nil:
		return nil, ErrNoSprite
	case opts.TileSize <= 0:
		return nil, fmt.Errorf("%w: %d", ErrBadTile, opts.TileSize)
	case opts.ViewportW <= 0 || opts.ViewportH <= 0:
		return nil, fmt.Errorf("%w: %dx%d", ErrBadViewport, opts.ViewportW, opts.ViewportH)
	}

	cache := opts.Cache
	if cache == nil {
		cache = render.NewTileCache(opts.Atlas, opts.TileSize)
	}
	key := opts.Key
	if key == "" {
		key = player.DefaultKey
	}

	ts := opts.TileSize
	size := opts.Sprite.Size()
	bounds := player.Bounds{
		MapW:    opts.Map.Width() * ts,
		MapH:    opts.Map.Height() * ts,
		EntityW: size.W,
		EntityH: size.H,
		Step:    ts,
	}

	s := &Session{
		world:  opts.Map,
		atlas:  opts.Atlas,
		cache:  cache,
		sprite: opts.Sprite,
		player: player.Load(opts.Store, key, player.Config{
			Bounds: bounds,
			Start:  opts.Start,
			Logger: opts.Logger,
		}),
		camera: render.Camera{TileSize: ts, ViewportW: opts.ViewportW, ViewportH: opts.ViewportH},
		pipeline: &render.Pipeline{
			TileSize:   ts,
			Background: opts.Background,
			Overlay:    opts.Overlay,
		},
		surface: core.NewSurface(opts.ViewportW, opts.ViewportH),
	}

	s.Frame()
	return s, nil
}

// Frame recomputes the camera and redraws the surface.
func (s *Session) Frame() *core.Surface {
	pos := s.player.Position()
	s.view = s.camera.VisibleRect(pos, s.world.Width()*s.camera.TileSize, s.world.Height()*s.camera.TileSize)
	s.pipeline.Frame(s.surface, s.view, s.world, s.cache, s.sprite, pos)
	s.frames++
	return s.surface
}

// Move attempts one step in dir and redraws.
func (s *Session) Move(dir player.Direction) player.Position {
	pos := s.player.AttemptMove(dir)
	s.Frame()
	return pos
}

// Reset moves the player to pos and redraws.
func (s *Session) Reset(pos player.Position) player.Position {
	pos = s.player.Reset(pos)
	s.Frame()
	return pos
}

// Surface returns the last drawn frame.
func (s *Session) Surface() *core.Surface { return s.surface }

// View returns the camera rectangle of the last frame.
func (s *Session) View() core.Rect { return s.view }

// Frames returns how many frames have been drawn.
func (s *Session) Frames() int { return s.frames }

// Position returns the player position in world pixels.
func (s *Session) Position() player.Position { return s.player.Position() }

// Map returns the session's world map.
func (s *Session) Map() *world.Map { return s.world }

// Cache returns the tile cache used for drawing.
func (s *Session) Cache() *render.TileCache { return s.cache }

// Terrain describes the tile under the player.
type Terrain struct {
	Col, Row int
	Code     world.Code
	Name     string
}

// Terrain returns the tile under the player's top-left corner.
func (s *Session) Terrain() Terrain {
	col, row := s.player.Tile()
	code := s.world.TileAt(col, row)
	return Terrain{Col: col, Row: row, Code: code, Name: s.atlas.Name(code)}
}
