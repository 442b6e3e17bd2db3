package worlds

import (
	"testing"

	"github.com/vovakirdan/tui-overworld/internal/registry"
)

func TestBuiltinWorldsBuild(t *testing.T) {
	tests := []struct {
		id            string
		width, height int
	}{
		{"overworld", 200, 200},
		{"islet", 20, 20},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			m, err := registry.Create(tc.id)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tc.id, err)
			}
			if m.Width() != tc.width || m.Height() != tc.height {
				t.Errorf("Size = %dx%d, expected %dx%d", m.Width(), m.Height(), tc.width, tc.height)
			}
		})
	}
}

func TestOverworldRegions(t *testing.T) {
	m, err := registry.Create("overworld")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	tests := []struct {
		name     string
		col, row int
		code     rune
	}{
		{"snow", 5, 5, 'S'},
		{"ice over snow", 35, 15, 'I'},
		{"lake", 10, 60, 'W'},
		{"town", 12, 32, 'H'},
		{"route leaves town", 20, 35, 'P'},
		{"route end", 169, 36, 'P'},
		{"tall grass", 30, 34, 'E'},
		{"cave", 155, 155, 'C'},
		{"grass default", 195, 195, 'G'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.TileAt(tc.col, tc.row); rune(got) != tc.code {
				t.Errorf("TileAt(%d, %d) = %q, expected %q", tc.col, tc.row, got, tc.code)
			}
		})
	}
}
