package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-overworld/internal/core"
	"github.com/vovakirdan/tui-overworld/internal/render"
	"github.com/vovakirdan/tui-overworld/internal/world"
)

var (
	ErrTileSize = errors.New("config: tile_size must be positive")
	ErrViewport = errors.New("config: viewport must be positive")
	ErrScale    = errors.New("config: display scale must be positive")
	ErrTileCode = errors.New("config: tile code must be a single character")
)

// Validate checks every field that would fail later when building the
// atlas, sprite or weather overlay.
func (c Config) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: %d", ErrTileSize, c.TileSize)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrViewport, c.Viewport.Width, c.Viewport.Height)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("%w: %d", ErrScale, c.Display.Scale)
	}
	if _, err := c.Background(); err != nil {
		return err
	}
	if _, err := c.Atlas(); err != nil {
		return err
	}
	if _, err := c.BuildSprite(); err != nil {
		return err
	}
	if _, err := c.BuildWeather(0); err != nil {
		return err
	}
	return nil
}

// Background returns the parsed background color.
func (c Config) Background() (core.Color, error) {
	return parseColor("colors.background", c.Colors.Background)
}

// Atlas builds the tile atlas.
func (c Config) Atlas() (*world.Atlas, error) {
	errColor, err := parseColor("colors.error", c.Colors.Error)
	if err != nil {
		return nil, err
	}
	voidColor, err := parseColor("colors.void", c.Colors.Void)
	if err != nil {
		return nil, err
	}

	entries := make([]world.AtlasEntry, 0, len(c.Tiles))
	for i, t := range c.Tiles {
		if utf8.RuneCountInString(t.Code) != 1 {
			return nil, fmt.Errorf("%w: tiles[%d] %q", ErrTileCode, i, t.Code)
		}
		color, err := parseColor(fmt.Sprintf("tiles[%d]", i), t.Color)
		if err != nil {
			return nil, err
		}
		code, _ := utf8.DecodeRuneInString(t.Code)
		entries = append(entries, world.AtlasEntry{
			Code:  world.Code(code),
			Name:  t.Name,
			Color: color,
		})
	}

	atlas, err := world.NewAtlas(entries, errColor, voidColor)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return atlas, nil
}

// BuildSprite builds the player sprite.
func (c Config) BuildSprite() (*render.Sprite, error) {
	sc := c.Sprite
	if utf8.RuneCountInString(sc.Transparent) > 1 {
		return nil, fmt.Errorf("config: sprite transparent index %q must be a single character", sc.Transparent)
	}
	transparent, _ := utf8.DecodeRuneInString(sc.Transparent)
	if sc.Transparent == "" {
		transparent = '.'
	}

	palette := make(map[rune]core.Color, len(sc.Palette))
	for idx, hex := range sc.Palette {
		if utf8.RuneCountInString(idx) != 1 {
			return nil, fmt.Errorf("config: sprite palette index %q must be a single character", idx)
		}
		color, err := parseColor("sprite.palette."+idx, hex)
		if err != nil {
			return nil, err
		}
		r, _ := utf8.DecodeRuneInString(idx)
		palette[r] = color
	}

	sprite, err := render.NewSprite(sc.Pixels, palette, transparent, sc.PixelSize)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return sprite, nil
}

// BuildWeather builds the weather overlay, or returns nil for no weather.
func (c Config) BuildWeather(seed int64) (*render.Weather, error) {
	kind, err := render.ParseWeatherKind(c.Weather.Kind)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if kind == render.WeatherNone {
		return nil, nil
	}
	color, err := parseColor("weather.color", c.Weather.Color)
	if err != nil {
		return nil, err
	}
	return render.NewWeather(kind, c.Weather.Particles, c.Weather.Length, color, seed), nil
}

// TickRate returns the animation frame rate, or 0 when animation is off.
func (c Config) TickRate() int {
	if !c.Weather.Animate || c.Weather.Kind == "" || c.Weather.Kind == string(render.WeatherNone) {
		return 0
	}
	if c.Weather.FPS <= 0 {
		return DefaultConfig().Weather.FPS
	}
	return c.Weather.FPS
}

func parseColor(field, hex string) (core.Color, error) {
	color, err := core.ParseColor(hex)
	if err != nil {
		return core.Color{}, fmt.Errorf("config: %s: %w", field, err)
	}
	return color, nil
}
