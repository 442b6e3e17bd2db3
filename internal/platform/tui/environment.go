package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-overworld/internal/config"
	"github.com/vovakirdan/tui-overworld/internal/core"
	"github.com/vovakirdan/tui-overworld/internal/overworld"
	"github.com/vovakirdan/tui-overworld/internal/player"
	"github.com/vovakirdan/tui-overworld/internal/render"
	"github.com/vovakirdan/tui-overworld/internal/world"
)

// Environment holds what every session of one world shares: configuration,
// map, atlas, sprite, tile cache and the position store.
type Environment struct {
	Config config.Config
	World  world.Definition
	Map    *world.Map
	Atlas  *world.Atlas
	Sprite *render.Sprite
	Cache  *render.TileCache
	Store  player.Store // may be nil
	Logger *log.Logger

	background core.Color
}

// NewEnvironment builds the map for def and the render assets from cfg.
func NewEnvironment(cfg config.Config, def world.Definition, store player.Store, logger *log.Logger) (*Environment, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m, err := def.Build()
	if err != nil {
		return nil, err
	}
	atlas, err := cfg.Atlas()
	if err != nil {
		return nil, err
	}
	sprite, err := cfg.BuildSprite()
	if err != nil {
		return nil, err
	}
	bg, err := cfg.Background()
	if err != nil {
		return nil, err
	}

	cache := render.NewTileCache(atlas, cfg.TileSize)
	cache.Warm(m.Codes())

	for _, code := range m.Codes() {
		if !atlas.Has(code) {
			logger.Warn("map uses a code missing from the atlas", "world", def.ID, "code", code.String())
		}
	}

	return &Environment{
		Config:     cfg,
		World:      def,
		Map:        m,
		Atlas:      atlas,
		Sprite:     sprite,
		Cache:      cache,
		Store:      store,
		Logger:     logger,
		background: bg,
	}, nil
}

// Spawn returns the world's start position in pixels.
func (e *Environment) Spawn() player.Position {
	ts := e.Config.TileSize
	return player.Position{X: e.World.Spawn.Col * ts, Y: e.World.Spawn.Row * ts}
}

// NewSession starts a session whose position is stored under key.
// seed drives the weather overlay.
func (e *Environment) NewSession(key string, seed int64) (*overworld.Session, error) {
	opts := overworld.Options{
		Map:        e.Map,
		Atlas:      e.Atlas,
		Sprite:     e.Sprite,
		Cache:      e.Cache,
		TileSize:   e.Config.TileSize,
		ViewportW:  e.Config.Viewport.Width,
		ViewportH:  e.Config.Viewport.Height,
		Background: e.background,
		Store:      e.Store,
		Key:        key,
		Start:      e.Spawn(),
		Logger:     e.Logger,
	}

	weather, err := e.Config.BuildWeather(seed)
	if err != nil {
		return nil, err
	}
	if weather != nil {
		opts.Overlay = weather
	}

	s, err := overworld.NewSession(opts)
	if err != nil {
		return nil, fmt.Errorf("world %s: %w", e.World.ID, err)
	}
	return s, nil
}
