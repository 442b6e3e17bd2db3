package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

// upperHalf draws the top sample in the foreground and the bottom one in
// the background, so one cell shows two pixels.
const upperHalf = "▀"

// cell is one terminal cell: two vertically stacked samples.
type cell struct {
	top, bottom core.Color
}

// sampleCells maps the surface onto terminal cells. With scale n each cell
// covers n columns and 2n rows of pixels and samples the top-left pixel of
// each half. A missing bottom row samples black.
func sampleCells(s *core.Surface, scale int) [][]cell {
	if scale < 1 {
		scale = 1
	}
	cols := s.Width() / scale
	rows := core.CeilDiv(s.Height(), 2*scale)

	out := make([][]cell, rows)
	for y := 0; y < rows; y++ {
		line := make([]cell, cols)
		py := y * 2 * scale
		for x := 0; x < cols; x++ {
			px := x * scale
			line[x] = cell{top: s.At(px, py), bottom: s.At(px, py+scale)}
		}
		out[y] = line
	}
	return out
}

// RenderSurface converts a surface to styled half-block text for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// A nil renderer uses lipgloss's default.
func RenderSurface(r *lipgloss.Renderer, s *core.Surface, scale int) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[cell]lipgloss.Style)
	styleFor := func(c cell) lipgloss.Style {
		st, ok := styles[c]
		if !ok {
			st = r.NewStyle().
				Foreground(lipgloss.Color(c.top.Hex())).
				Background(lipgloss.Color(c.bottom.Hex()))
			styles[c] = st
		}
		return st
	}

	cells := sampleCells(s, scale)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	if len(cells) > 0 {
		sb.Grow(len(cells) * len(cells[0]) * 8)
	}

	for y, line := range cells {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < len(line) {
			start := line[x]
			n := 0
			for x < len(line) && line[x] == start {
				n++
				x++
			}
			sb.WriteString(styleFor(start).Render(strings.Repeat(upperHalf, n)))
		}
	}
	return sb.String()
}
