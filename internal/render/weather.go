package render

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

// WeatherKind selects the overlay effect.
type WeatherKind string

const (
	WeatherNone WeatherKind = "none"
	WeatherRain WeatherKind = "rain"
	WeatherSnow WeatherKind = "snow"
)

// ParseWeatherKind converts a config string to a WeatherKind.
// The empty string means no weather.
func ParseWeatherKind(s string) (WeatherKind, error) {
	switch WeatherKind(s) {
	case "", WeatherNone:
		return WeatherNone, nil
	case WeatherRain, WeatherSnow:
		return WeatherKind(s), nil
	default:
		return WeatherNone, fmt.Errorf("render: unknown weather %q", s)
	}
}

// Weather scatters random particle strokes over the viewport.
// Particles are regenerated on every draw; nothing carries over between frames.
type Weather struct {
	Kind      WeatherKind
	Particles int        // Strokes per frame
	Length    int        // Rain stroke length in pixels
	Color     core.Color // Particle color

	rng *rand.Rand
}

// NewWeather creates an overlay with its own seeded random source.
func NewWeather(kind WeatherKind, particles, length int, color core.Color, seed int64) *Weather {
	if length <= 0 {
		length = 1
	}
	return &Weather{
		Kind:      kind,
		Particles: particles,
		Length:    length,
		Color:     color,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Draw paints one frame of particles in viewport coordinates.
func (w *Weather) Draw(dst *core.Surface, _ core.Rect) {
	if w == nil || w.Kind == WeatherNone || w.Particles <= 0 {
		return
	}
	width, height := dst.Width(), dst.Height()
	if width == 0 || height == 0 {
		return
	}

	for i := 0; i < w.Particles; i++ {
		x := w.rng.Intn(width)
		y := w.rng.Intn(height)

		switch w.Kind {
		case WeatherRain:
			// Slanted stroke, one pixel left every second pixel down
			for k := 0; k < w.Length; k++ {
				dst.FillRect(core.Rect{X: x - k/2, Y: y + k, W: 1, H: 1}, w.Color)
			}
		case WeatherSnow:
			size := 1 + w.rng.Intn(2)
			dst.FillRect(core.Rect{X: x, Y: y, W: size, H: size}, w.Color)
		}
	}
}
