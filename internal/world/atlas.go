// Package world holds the static terrain data of the overworld: tile codes,
// the atlas that colors them, and the immutable map grid.
package world

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

// Code is a single-character terrain identifier.
type Code rune

// Blank is returned for coordinates outside the map.
const Blank Code = ' '

// String returns the code as a one-character string.
func (c Code) String() string {
	return string(rune(c))
}

// AtlasEntry describes how one terrain type is drawn.
type AtlasEntry struct {
	Code  Code
	Name  string
	Color core.Color
}

// Atlas is a closed lookup table from tile code to color.
// Unknown codes resolve to the error color instead of failing.
type Atlas struct {
	entries    map[Code]AtlasEntry
	errorColor core.Color
	voidColor  core.Color
}

// NewAtlas builds an atlas. Duplicate codes are a configuration error.
func NewAtlas(entries []AtlasEntry, errorColor, voidColor core.Color) (*Atlas, error) {
	a := &Atlas{
		entries:    make(map[Code]AtlasEntry, len(entries)),
		errorColor: errorColor,
		voidColor:  voidColor,
	}
	for _, e := range entries {
		if e.Code == Blank {
			return nil, fmt.Errorf("atlas: code %q is reserved for out-of-map tiles", e.Code)
		}
		if _, dup := a.entries[e.Code]; dup {
			return nil, fmt.Errorf("atlas: duplicate code %q", e.Code)
		}
		a.entries[e.Code] = e
	}
	return a, nil
}

// Color returns the fill color for a code.
// Blank maps to the void color, any other unknown code to the error color.
func (a *Atlas) Color(c Code) core.Color {
	if e, ok := a.entries[c]; ok {
		return e.Color
	}
	if c == Blank {
		return a.voidColor
	}
	return a.errorColor
}

// Name returns the terrain name for a code, or "unknown".
func (a *Atlas) Name(c Code) string {
	if e, ok := a.entries[c]; ok {
		return e.Name
	}
	if c == Blank {
		return "void"
	}
	return "unknown"
}

// Has reports whether the code has an explicit entry.
func (a *Atlas) Has(c Code) bool {
	_, ok := a.entries[c]
	return ok
}

// ErrorColor returns the color used for unmapped codes.
func (a *Atlas) ErrorColor() core.Color {
	return a.errorColor
}

// Entries returns all entries sorted by code.
func (a *Atlas) Entries() []AtlasEntry {
	result := make([]AtlasEntry, 0, len(a.entries))
	for _, e := range a.entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Code < result[j].Code
	})
	return result
}

// Codes returns every mapped code, sorted.
func (a *Atlas) Codes() []Code {
	entries := a.Entries()
	codes := make([]Code, len(entries))
	for i, e := range entries {
		codes[i] = e.Code
	}
	return codes
}
