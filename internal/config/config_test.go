package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-overworld/internal/core"
	"github.com/vovakirdan/tui-overworld/internal/world"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() failed: %v", err)
	}
}

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	cfg, err := Parse(defaultOverworldYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultConfig()

	if cfg.TileSize != def.TileSize || cfg.Viewport != def.Viewport || cfg.Display != def.Display {
		t.Errorf("embedded layout %+v/%+v/%+v differs from DefaultConfig", cfg.TileSize, cfg.Viewport, cfg.Display)
	}
	if len(cfg.Tiles) != len(def.Tiles) {
		t.Fatalf("embedded has %d tiles, DefaultConfig %d", len(cfg.Tiles), len(def.Tiles))
	}
	for i := range cfg.Tiles {
		if cfg.Tiles[i] != def.Tiles[i] {
			t.Errorf("tiles[%d] = %+v, want %+v", i, cfg.Tiles[i], def.Tiles[i])
		}
	}
	if cfg.Weather != def.Weather {
		t.Errorf("weather = %+v, want %+v", cfg.Weather, def.Weather)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("tile_size: 8\nworld: islet\nweather:\n  kind: snow\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TileSize != 8 || cfg.World != "islet" || cfg.Weather.Kind != "snow" {
		t.Errorf("Load() = tile %d world %q weather %q", cfg.TileSize, cfg.World, cfg.Weather.Kind)
	}
	// Unset keys keep their defaults.
	if cfg.Viewport != DefaultConfig().Viewport {
		t.Errorf("Viewport = %+v, want default", cfg.Viewport)
	}
	if len(cfg.Tiles) != len(DefaultConfig().Tiles) {
		t.Errorf("Tiles has %d entries, want default list", len(cfg.Tiles))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("tile_size: [1, 2"), 0o600)
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	zero := filepath.Join(dir, "zero.yaml")
	os.WriteFile(zero, []byte("tile_size: 0\n"), 0o600)
	if _, err := Load(zero); !errors.Is(err, ErrTileSize) {
		t.Errorf("Load() error = %v, want ErrTileSize", err)
	}
}

func TestParseReplacesTileList(t *testing.T) {
	cfg, err := Parse([]byte(`
tiles:
  - { code: X, name: lava, color: "#ff4500" }
`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(cfg.Tiles) != 1 || cfg.Tiles[0].Code != "X" {
		t.Errorf("Tiles = %+v, want only lava", cfg.Tiles)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"zero tile size", func(c *Config) { c.TileSize = 0 }, ErrTileSize},
		{"negative viewport", func(c *Config) { c.Viewport.Width = -1 }, ErrViewport},
		{"zero scale", func(c *Config) { c.Display.Scale = 0 }, ErrScale},
		{"bad background", func(c *Config) { c.Colors.Background = "nope" }, core.ErrBadColor},
		{"bad tile color", func(c *Config) { c.Tiles[0].Color = "#12" }, core.ErrBadColor},
		{"long tile code", func(c *Config) { c.Tiles[0].Code = "GG" }, ErrTileCode},
		{"empty tile code", func(c *Config) { c.Tiles[0].Code = "" }, ErrTileCode},
		{"bad weather color", func(c *Config) {
			c.Weather.Kind = "rain"
			c.Weather.Color = "zzz"
		}, core.ErrBadColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRejectsOtherMistakes(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"duplicate tile", func(c *Config) { c.Tiles = append(c.Tiles, c.Tiles[0]) }},
		{"empty sprite", func(c *Config) { c.Sprite.Pixels = nil }},
		{"unknown palette index", func(c *Config) { c.Sprite.Pixels = []string{"zz"} }},
		{"unknown weather", func(c *Config) { c.Weather.Kind = "hail" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestAtlasFromDefaults(t *testing.T) {
	atlas, err := DefaultConfig().Atlas()
	if err != nil {
		t.Fatalf("Atlas() failed: %v", err)
	}

	if got := atlas.Color('W'); got != core.MustParseColor("#1e90ff") {
		t.Errorf("Color('W') = %v", got)
	}
	if got := atlas.Name('B'); got != "harbor city" {
		t.Errorf("Name('B') = %q", got)
	}
	if got := atlas.Color('X'); got != core.ColorMagenta {
		t.Errorf("Color('X') = %v, want error color", got)
	}
	if got := atlas.Color(world.Blank); got != core.ColorBlack {
		t.Errorf("Color(Blank) = %v, want void color", got)
	}
}

func TestBuildSpriteAndWeather(t *testing.T) {
	cfg := DefaultConfig()

	sprite, err := cfg.BuildSprite()
	if err != nil {
		t.Fatalf("BuildSprite() failed: %v", err)
	}
	if got := sprite.Size(); got != (core.Size{W: 4, H: 4}) {
		t.Errorf("sprite Size() = %v, want 4x4", got)
	}

	w, err := cfg.BuildWeather(1)
	if err != nil || w != nil {
		t.Errorf("BuildWeather(none) = %v, %v; want nil, nil", w, err)
	}

	cfg.Weather.Kind = "rain"
	w, err = cfg.BuildWeather(1)
	if err != nil || w == nil {
		t.Fatalf("BuildWeather(rain) = %v, %v", w, err)
	}
}

func TestTickRate(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickRate(); got != 0 {
		t.Errorf("TickRate() without weather = %d, want 0", got)
	}

	cfg.Weather.Kind = "snow"
	if got := cfg.TickRate(); got != 0 {
		t.Errorf("TickRate() without animate = %d, want 0", got)
	}

	cfg.Weather.Animate = true
	cfg.Weather.FPS = 12
	if got := cfg.TickRate(); got != 12 {
		t.Errorf("TickRate() = %d, want 12", got)
	}

	cfg.Weather.FPS = 0
	if got := cfg.TickRate(); got != DefaultConfig().Weather.FPS {
		t.Errorf("TickRate() with fps 0 = %d, want default", got)
	}
}
