package world

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML form of a world.
// A world is given either as explicit rows or as a base fill painted over
// by an ordered list of rectangular regions.
type Definition struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Width   int      `yaml:"width,omitempty"`
	Height  int      `yaml:"height,omitempty"`
	Spawn   Spawn    `yaml:"spawn,omitempty"`
	Rows    []string `yaml:"rows,omitempty"`
	Fill    string   `yaml:"fill,omitempty"`
	Regions []Region `yaml:"regions,omitempty"`
}

// Spawn is the default player tile for a world.
type Spawn struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Region is one rectangular paint operation, half-open on x2/y2.
type Region struct {
	Name string `yaml:"name,omitempty"`
	Code string `yaml:"code"`
	X1   int    `yaml:"x1"`
	Y1   int    `yaml:"y1"`
	X2   int    `yaml:"x2"`
	Y2   int    `yaml:"y2"`
}

// ParseDefinition parses a YAML world file.
func ParseDefinition(data []byte) (Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("world: yaml unmarshal: %w", err)
	}
	if d.ID == "" {
		return Definition{}, fmt.Errorf("world: definition has no id")
	}
	if d.Name == "" {
		d.Name = d.ID
	}
	return d, nil
}

// Build turns the definition into an immutable map.
func (d Definition) Build() (*Map, error) {
	if len(d.Rows) > 0 {
		m, err := NewMap(d.Rows)
		if err != nil {
			return nil, fmt.Errorf("world %s: %w", d.ID, err)
		}
		if (d.Width != 0 && d.Width != m.Width()) || (d.Height != 0 && d.Height != m.Height()) {
			return nil, fmt.Errorf("world %s: declared size %dx%d does not match rows %dx%d",
				d.ID, d.Width, d.Height, m.Width(), m.Height())
		}
		return m, nil
	}

	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("world %s: %w", d.ID, ErrEmptyMap)
	}
	fill, err := parseCode(d.Fill)
	if err != nil {
		return nil, fmt.Errorf("world %s: fill: %w", d.ID, err)
	}

	b := NewBuilder(d.Width, d.Height, fill)
	for i, r := range d.Regions {
		code, err := parseCode(r.Code)
		if err != nil {
			return nil, fmt.Errorf("world %s: region %d: %w", d.ID, i, err)
		}
		b.Fill(code, r.X1, r.Y1, r.X2, r.Y2)
	}
	return b.Build()
}

func parseCode(s string) (Code, error) {
	if utf8.RuneCountInString(s) != 1 {
		return Blank, fmt.Errorf("tile code %q must be exactly one character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Code(r), nil
}
