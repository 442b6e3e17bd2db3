// Package worlds registers the built-in world definitions.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/tui-overworld/internal/worlds"
package worlds

import (
	"embed"
	"fmt"
	"path"

	"github.com/vovakirdan/tui-overworld/internal/registry"
	"github.com/vovakirdan/tui-overworld/internal/world"
)

//go:embed data/*.yaml
var files embed.FS

func init() {
	entries, err := files.ReadDir("data")
	if err != nil {
		panic(fmt.Sprintf("worlds: %v", err))
	}
	for _, e := range entries {
		data, err := files.ReadFile(path.Join("data", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("worlds: %v", err))
		}
		d, err := world.ParseDefinition(data)
		if err != nil {
			panic(fmt.Sprintf("worlds: %s: %v", e.Name(), err))
		}
		registry.Register(d)
	}
}
