// pkg/grid/grid.go
package grid

// Kind enumerates everything a tile can hold. Road, spawn and exit tiles
// form the surface enemies walk on; grass is where turrets may be built;
// rocks, trees and shrubs are decor that blocks building.
type Kind uint8

const (
	KindGrass Kind = iota
	KindRoad
	KindSpawn
	KindExit
	KindRock
	KindTree
	KindShrub
	kindCount
)

var kindNames = [...]string{"grass", "road", "spawn", "exit", "rock", "tree", "shrub"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k names a real tile kind.
func (k Kind) Valid() bool {
	return k < kindCount
}

// Walkable reports whether enemies may traverse the tile.
func (k Kind) Walkable() bool {
	return k == KindRoad || k == KindSpawn || k == KindExit
}

// Buildable reports whether a turret may be placed on the tile.
func (k Kind) Buildable() bool {
	return k == KindGrass
}

// Decor reports whether the tile holds a purely graphical asset.
func (k Kind) Decor() bool {
	return k == KindRock || k == KindTree || k == KindShrub
}

// Point is a tile coordinate on the grid.
type Point struct {
	X, Y int
}

// Tile is one cell of the map. Orientation is in 90 degree steps and only
// affects how decor is drawn.
type Tile struct {
	Kind        Kind
	Orientation int
}

// Map is a dense rectangular tile grid.
type Map struct {
	Width  int
	Height int
	Tiles  [][]Tile // indexed [y][x]
}

// NewMap returns an all-grass map of the given dimensions.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

// Contains reports whether p lies inside the map bounds.
func (m *Map) Contains(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// At returns the tile at p. Out-of-bounds reads return a grass tile.
func (m *Map) At(p Point) Tile {
	if !m.Contains(p) {
		return Tile{}
	}
	return m.Tiles[p.Y][p.X]
}

// Set replaces the tile at p. Out-of-bounds writes are ignored.
func (m *Map) Set(p Point, t Tile) {
	if !m.Contains(p) {
		return
	}
	m.Tiles[p.Y][p.X] = t
}

// Walkable reports whether enemies may traverse the tile at p.
func (m *Map) Walkable(p Point) bool {
	return m.Contains(p) && m.Tiles[p.Y][p.X].Kind.Walkable()
}

// Portals walks the map tile by tile and records all spawn and exit
// positions.
func (m *Map) Portals() (spawns, exits []Point) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			switch m.Tiles[y][x].Kind {
			case KindSpawn:
				spawns = append(spawns, Point{x, y})
			case KindExit:
				exits = append(exits, Point{x, y})
			}
		}
	}
	return spawns, exits
}

// ExitSet returns the exit positions as a set for path searches.
func (m *Map) ExitSet() map[Point]bool {
	_, exits := m.Portals()
	set := make(map[Point]bool, len(exits))
	for _, e := range exits {
		set[e] = true
	}
	return set
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := NewMap(m.Width, m.Height)
	for y := range m.Tiles {
		copy(c.Tiles[y], m.Tiles[y])
	}
	return c
}
