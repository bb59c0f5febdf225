// internal/level/level.go
package level

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danvargg/tower-defense/pkg/grid"
)

//go:embed demo.json
var builtinFS embed.FS

// Level is the on-disk representation of a map. Tiles is a flat row-major
// array of grid.Kind values; Orientations, when present, must be the same
// length and holds 90 degree steps for decor tiles.
type Level struct {
	Name         string `json:"name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Tiles        []int  `json:"tiles"`
	Orientations []int  `json:"orientations,omitempty"`
}

// FromMap captures a grid into a serializable level.
func FromMap(name string, m *grid.Map) *Level {
	lvl := &Level{
		Name:   name,
		Width:  m.Width,
		Height: m.Height,
		Tiles:  make([]int, m.Width*m.Height),
	}
	hasOrientation := false
	orientations := make([]int, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.At(grid.Point{X: x, Y: y})
			idx := y*m.Width + x
			lvl.Tiles[idx] = int(t.Kind)
			orientations[idx] = t.Orientation
			if t.Orientation != 0 {
				hasOrientation = true
			}
		}
	}
	if hasOrientation {
		lvl.Orientations = orientations
	}
	return lvl
}

// Validate checks dimensions and tile values.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid level dimensions: %dx%d", l.Width, l.Height)
	}
	if len(l.Tiles) != l.Width*l.Height {
		return fmt.Errorf("tile layer has %d entries, want %d", len(l.Tiles), l.Width*l.Height)
	}
	if l.Orientations != nil && len(l.Orientations) != len(l.Tiles) {
		return fmt.Errorf("orientation layer has %d entries, want %d", len(l.Orientations), len(l.Tiles))
	}
	for i, v := range l.Tiles {
		if v < 0 || !grid.Kind(v).Valid() {
			return fmt.Errorf("tile %d holds unknown kind %d", i, v)
		}
	}
	return nil
}

// ToMap expands the level into a playable grid.
func (l *Level) ToMap() (*grid.Map, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	m := grid.NewMap(l.Width, l.Height)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			idx := y*l.Width + x
			t := grid.Tile{Kind: grid.Kind(l.Tiles[idx])}
			if l.Orientations != nil {
				t.Orientation = l.Orientations[idx]
			}
			m.Set(grid.Point{X: x, Y: y}, t)
		}
	}
	return m, nil
}

// Load reads and validates a level from path.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	return parse(data, path)
}

// LoadBuiltin returns the demo level compiled into the binary. It is the
// fallback when the levels directory has nothing to offer.
func LoadBuiltin() (*Level, error) {
	data, err := builtinFS.ReadFile("demo.json")
	if err != nil {
		return nil, fmt.Errorf("read builtin level: %w", err)
	}
	return parse(data, "builtin demo.json")
}

func parse(data []byte, origin string) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", origin, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", origin, err)
	}
	return &lvl, nil
}

// Save writes the level as indented JSON to dir/name, creating dir if
// needed.
func (l *Level) Save(dir, name string) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create levels dir %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal level: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write level %s: %w", path, err)
	}
	return nil
}

// LoadOrBuiltin loads dir/name, falling back to the embedded demo level
// when the file does not exist.
func LoadOrBuiltin(dir, name string) (*Level, error) {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	return LoadBuiltin()
}
