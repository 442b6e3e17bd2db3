package world

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrRaggedRows is returned when map rows differ in length.
var ErrRaggedRows = errors.New("world: map rows have different lengths")

// ErrEmptyMap is returned for a map with no rows or no columns.
var ErrEmptyMap = errors.New("world: map is empty")

// Map is an immutable grid of tile codes.
// Cells are stored in row-major order: index = row*Width + col.
type Map struct {
	width  int
	height int
	cells  []Code
}

// NewMap builds a map from rows of single-character codes.
// Every row must have the same length; a ragged map is rejected at load time.
func NewMap(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, ErrEmptyMap
	}

	m := &Map{
		width:  width,
		height: len(rows),
		cells:  make([]Code, 0, width*len(rows)),
	}
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrRaggedRows, i, n, width)
		}
		for _, r := range row {
			m.cells = append(m.cells, Code(r))
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return m.height
}

// InBounds reports whether (col, row) lies on the map.
func (m *Map) InBounds(col, row int) bool {
	return col >= 0 && col < m.width && row >= 0 && row < m.height
}

// TileAt returns the code at (col, row), or Blank outside the map.
// The renderer probes windows that can straddle the map edge, so this never panics.
func (m *Map) TileAt(col, row int) Code {
	if !m.InBounds(col, row) {
		return Blank
	}
	return m.cells[row*m.width+col]
}

// Rows returns the map as strings, one per row.
func (m *Map) Rows() []string {
	rows := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		rows[y] = string(runes(m.cells[y*m.width : (y+1)*m.width]))
	}
	return rows
}

// Codes returns the distinct codes used by the map, in first-seen order.
func (m *Map) Codes() []Code {
	seen := make(map[Code]bool)
	var codes []Code
	for _, c := range m.cells {
		if !seen[c] {
			seen[c] = true
			codes = append(codes, c)
		}
	}
	return codes
}

func runes(codes []Code) []rune {
	out := make([]rune, len(codes))
	for i, c := range codes {
		out[i] = rune(c)
	}
	return out
}
