// Package config provides YAML-based configuration for the overworld:
// tile atlas, player sprite, viewport, presentation and weather.
package config

// Config contains all configuration for an overworld session.
type Config struct {
	World      string        `yaml:"world"`       // Registered world id
	TileSize   int           `yaml:"tile_size"`   // World pixels per tile
	SessionKey string        `yaml:"session_key"` // Storage key for the local player
	Viewport   Viewport      `yaml:"viewport"`
	Display    Display       `yaml:"display"`
	Colors     Colors        `yaml:"colors"`
	Tiles      []Tile        `yaml:"tiles"`
	Sprite     SpriteConfig  `yaml:"sprite"`
	Weather    WeatherConfig `yaml:"weather"`
}

// Viewport is the visible window in world pixels.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Display controls terminal presentation. Each terminal cell shows two
// vertically stacked samples; Scale is the pixel stride between samples.
type Display struct {
	Scale   int  `yaml:"scale"`
	ShowHUD bool `yaml:"show_hud"`
}

// Colors holds the fixed colors, as #rrggbb.
type Colors struct {
	Background string `yaml:"background"` // Cleared behind tiles every frame
	Error      string `yaml:"error"`      // Tiles with codes missing from the atlas
	Void       string `yaml:"void"`       // Cells outside the map
}

// Tile is one atlas entry.
type Tile struct {
	Code  string `yaml:"code"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// SpriteConfig describes the player sprite as rows of palette indices.
type SpriteConfig struct {
	Pixels      []string          `yaml:"pixels"`
	Palette     map[string]string `yaml:"palette"`
	Transparent string            `yaml:"transparent"`
	PixelSize   int               `yaml:"pixel_size"`
}

// WeatherConfig configures the particle overlay.
type WeatherConfig struct {
	Kind      string `yaml:"kind"` // none, rain or snow
	Particles int    `yaml:"particles"`
	Length    int    `yaml:"length"`
	Color     string `yaml:"color"`
	Animate   bool   `yaml:"animate"` // Redraw on a timer, not only on input
	FPS       int    `yaml:"fps"`
}
