package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-overworld/internal/overworld"
)

// hudStyles holds the styles for the status line under the map.
type hudStyles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	status lipgloss.Style
}

func newHUDStyles(r *lipgloss.Renderer) hudStyles {
	return hudStyles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700")),
		label:  r.NewStyle().Foreground(lipgloss.Color("245")),
		value:  r.NewStyle().Foreground(lipgloss.Color("15")),
		status: r.NewStyle().Italic(true).Foreground(lipgloss.Color("10")),
	}
}

// renderHUD formats the world name, player position and terrain.
func renderHUD(st hudStyles, title string, s *overworld.Session, status string) string {
	pos := s.Position()
	terrain := s.Terrain()

	line := st.title.Render(title) + "  " +
		st.label.Render("pos ") + st.value.Render(fmt.Sprintf("%d,%d", pos.X, pos.Y)) + "  " +
		st.label.Render("tile ") + st.value.Render(fmt.Sprintf("%d,%d", terrain.Col, terrain.Row)) + "  " +
		st.value.Render(terrain.Name)

	if status != "" {
		line += "  " + st.status.Render(status)
	}
	return line
}
