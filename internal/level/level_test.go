package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danvargg/tower-defense/pkg/grid"
)

func sampleMap() *grid.Map {
	m := grid.NewMap(6, 4)
	m.Set(grid.Point{X: 0, Y: 1}, grid.Tile{Kind: grid.KindSpawn})
	m.Set(grid.Point{X: 1, Y: 1}, grid.Tile{Kind: grid.KindRoad})
	m.Set(grid.Point{X: 2, Y: 1}, grid.Tile{Kind: grid.KindRoad})
	m.Set(grid.Point{X: 3, Y: 1}, grid.Tile{Kind: grid.KindExit})
	m.Set(grid.Point{X: 4, Y: 2}, grid.Tile{Kind: grid.KindTree, Orientation: 2})
	return m
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	m := sampleMap()

	lvl := FromMap("roundtrip", m)
	if err := lvl.Save(dir, "roundtrip.json"); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(filepath.Join(dir, "roundtrip.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != "roundtrip" {
		t.Errorf("name = %q", loaded.Name)
	}

	back, err := loaded.ToMap()
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if back.At(p) != m.At(p) {
				t.Fatalf("tile %v differs after roundtrip: %+v vs %+v", p, back.At(p), m.At(p))
			}
		}
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "levels")
	lvl := FromMap("x", sampleMap())
	if err := lvl.Save(dir, "x.json"); err != nil {
		t.Fatalf("save into missing dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "x.json")); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestValidateRejectsBadLevels(t *testing.T) {
	cases := []struct {
		name string
		lvl  Level
		want string
	}{
		{"zero size", Level{Width: 0, Height: 3, Tiles: nil}, "dimensions"},
		{"short layer", Level{Width: 2, Height: 2, Tiles: []int{0, 0}}, "entries"},
		{"unknown kind", Level{Width: 1, Height: 1, Tiles: []int{99}}, "unknown kind"},
		{"negative kind", Level{Width: 1, Height: 1, Tiles: []int{-1}}, "unknown kind"},
		{
			"orientation mismatch",
			Level{Width: 1, Height: 1, Tiles: []int{0}, Orientations: []int{0, 0}},
			"orientation",
		},
	}
	for _, c := range cases {
		err := c.lvl.Validate()
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.want)
		}
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed json")
	}
}

func TestLoadBuiltinDemo(t *testing.T) {
	lvl, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin: %v", err)
	}
	m, err := lvl.ToMap()
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	spawns, exits := m.Portals()
	if len(spawns) == 0 || len(exits) == 0 {
		t.Fatalf("demo level needs portals, got %d spawns %d exits", len(spawns), len(exits))
	}
	// The shipped level must actually be playable.
	if path := m.Route(spawns[0], nil); path == nil {
		t.Error("demo level has no route from spawn to exit")
	}
}

func TestLoadOrBuiltinFallsBack(t *testing.T) {
	lvl, err := LoadOrBuiltin(t.TempDir(), "missing.json")
	if err != nil {
		t.Fatalf("LoadOrBuiltin: %v", err)
	}
	if lvl.Name != "demo" {
		t.Errorf("fallback level = %q, want demo", lvl.Name)
	}
}
