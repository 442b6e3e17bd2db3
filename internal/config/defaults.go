package config

import (
	_ "embed"
)

//go:embed defaults/overworld.yaml
var defaultOverworldYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		World:      "overworld",
		TileSize:   4,
		SessionKey: "player.position",
		Viewport: Viewport{
			Width:  80,
			Height: 44,
		},
		Display: Display{
			Scale:   1,
			ShowHUD: true,
		},
		Colors: Colors{
			Background: "#000000",
			Error:      "#ff00ff",
			Void:       "#000000",
		},
		Tiles: []Tile{
			{Code: "G", Name: "grass", Color: "#7cfc00"},
			{Code: "W", Name: "water", Color: "#1e90ff"},
			{Code: "M", Name: "mountain", Color: "#a9a9a9"},
			{Code: "D", Name: "desert", Color: "#deb887"},
			{Code: "S", Name: "snow", Color: "#ffffff"},
			{Code: "I", Name: "ice", Color: "#b0e0e6"},
			{Code: "R", Name: "rocky", Color: "#808080"},
			{Code: "T", Name: "forest", Color: "#228b22"},
			{Code: "J", Name: "jungle", Color: "#006400"},
			{Code: "C", Name: "cave", Color: "#2f4f4f"},
			{Code: "H", Name: "town", Color: "#ffe4b5"},
			{Code: "B", Name: "harbor city", Color: "#e9967a"},
			{Code: "P", Name: "route path", Color: "#cd853f"},
			{Code: "E", Name: "tall grass", Color: "#006400"},
		},
		Sprite: SpriteConfig{
			Pixels: []string{
				".rr.",
				"rssr",
				".bb.",
				"b..b",
			},
			Palette: map[string]string{
				"r": "#d62828",
				"s": "#f4c095",
				"b": "#1d3557",
			},
			Transparent: ".",
			PixelSize:   1,
		},
		Weather: WeatherConfig{
			Kind:      "none",
			Particles: 24,
			Length:    3,
			Color:     "#c8d8ff",
			Animate:   false,
			FPS:       8,
		},
	}
}
