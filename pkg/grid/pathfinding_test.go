package grid

import (
	"math/rand"
	"testing"
)

// buildRoad lays a road along the given points, marking the first as spawn
// and the last as exit.
func buildRoad(m *Map, points ...Point) {
	for i, p := range points {
		kind := KindRoad
		if i == 0 {
			kind = KindSpawn
		} else if i == len(points)-1 {
			kind = KindExit
		}
		m.Set(p, Tile{Kind: kind})
	}
}

func TestPortals(t *testing.T) {
	m := NewMap(8, 8)
	buildRoad(m, Point{0, 0}, Point{1, 0}, Point{2, 0})
	spawns, exits := m.Portals()
	if len(spawns) != 1 || spawns[0] != (Point{0, 0}) {
		t.Errorf("spawns = %v", spawns)
	}
	if len(exits) != 1 || exits[0] != (Point{2, 0}) {
		t.Errorf("exits = %v", exits)
	}
}

func TestBuildGraphConnectsCardinalNeighbors(t *testing.T) {
	m := NewMap(4, 4)
	buildRoad(m, Point{0, 1}, Point{1, 1}, Point{2, 1})
	root, nodes := m.BuildGraph(Point{0, 1})
	if root == nil {
		t.Fatal("expected a root node on a walkable tile")
	}
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	if root.East == nil || root.East.Pos != (Point{1, 1}) {
		t.Error("root should connect east to (1,1)")
	}
	if root.West != nil || root.North != nil || root.South != nil {
		t.Error("root should have no other connections")
	}
	if nodes[Point{1, 1}].East.Pos != (Point{2, 1}) {
		t.Error("(1,1) should connect east to (2,1)")
	}
}

func TestBuildGraphNonWalkableStart(t *testing.T) {
	m := NewMap(4, 4)
	root, nodes := m.BuildGraph(Point{0, 0})
	if root != nil || len(nodes) != 0 {
		t.Error("grass start should yield an empty graph")
	}
}

func TestFindPathStraightLine(t *testing.T) {
	m := NewMap(8, 8)
	buildRoad(m, Point{0, 3}, Point{1, 3}, Point{2, 3}, Point{3, 3}, Point{4, 3})
	path := m.Route(Point{0, 3}, nil)
	if path == nil {
		t.Fatal("expected a path")
	}
	if path[0] != (Point{0, 3}) {
		t.Errorf("path starts at %v, want spawn", path[0])
	}
	if path[len(path)-1] != (Point{4, 3}) {
		t.Errorf("path ends at %v, want exit", path[len(path)-1])
	}
	if len(path) != 5 {
		t.Errorf("straight line path length = %d, want 5", len(path))
	}
}

func TestFindPathNoExit(t *testing.T) {
	m := NewMap(8, 8)
	m.Set(Point{0, 0}, Tile{Kind: KindSpawn})
	m.Set(Point{1, 0}, Tile{Kind: KindRoad})
	if path := m.Route(Point{0, 0}, nil); path != nil {
		t.Errorf("expected nil path with no exit, got %v", path)
	}
}

func TestFindPathDisconnectedIslands(t *testing.T) {
	m := NewMap(8, 8)
	// Spawn island.
	m.Set(Point{0, 0}, Tile{Kind: KindSpawn})
	m.Set(Point{1, 0}, Tile{Kind: KindRoad})
	// Exit island, not connected to the spawn island.
	m.Set(Point{5, 5}, Tile{Kind: KindRoad})
	m.Set(Point{6, 5}, Tile{Kind: KindExit})
	if path := m.Route(Point{0, 0}, nil); path != nil {
		t.Errorf("expected nil path across islands, got %v", path)
	}
}

func TestFindPathRandomWalkStillReachesExit(t *testing.T) {
	// A ring offers two routes; the shuffled walk must find one of them
	// every time, whichever way it wanders.
	m := NewMap(8, 8)
	ring := []Point{
		{1, 1}, {2, 1}, {3, 1},
		{3, 2}, {3, 3},
		{2, 3}, {1, 3},
		{1, 2},
	}
	for _, p := range ring {
		m.Set(p, Tile{Kind: KindRoad})
	}
	m.Set(Point{1, 1}, Tile{Kind: KindSpawn})
	m.Set(Point{3, 3}, Tile{Kind: KindExit})

	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		path := m.Route(Point{1, 1}, rng)
		if path == nil {
			t.Fatalf("seed %d: no path found on ring", seed)
		}
		if path[len(path)-1] != (Point{3, 3}) {
			t.Fatalf("seed %d: path ends at %v, want exit", seed, path[len(path)-1])
		}
		// Consecutive waypoints must stay cardinally adjacent.
		for i := 1; i < len(path); i++ {
			dx := path[i].X - path[i-1].X
			dy := path[i].Y - path[i-1].Y
			if dx*dx+dy*dy != 1 {
				t.Fatalf("seed %d: non-adjacent step %v -> %v", seed, path[i-1], path[i])
			}
		}
	}
}

func TestFindPathVisitsTilesOnce(t *testing.T) {
	m := NewMap(6, 6)
	buildRoad(m, Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{2, 1}, Point{2, 2})
	path := m.Route(Point{0, 0}, rand.New(rand.NewSource(1)))
	seen := make(map[Point]bool)
	for _, p := range path {
		if seen[p] {
			t.Fatalf("tile %v appears twice in path", p)
		}
		seen[p] = true
	}
}

func TestNearestWalkable(t *testing.T) {
	m := NewMap(8, 8)
	buildRoad(m, Point{4, 4}, Point{5, 4}, Point{6, 4})

	// Already walkable stays put.
	if p, ok := m.NearestWalkable(Point{5, 4}); !ok || p != (Point{5, 4}) {
		t.Errorf("NearestWalkable on road = %v,%v", p, ok)
	}
	// A grass tile snaps to the closest road tile.
	if p, ok := m.NearestWalkable(Point{4, 6}); !ok || p != (Point{4, 4}) {
		t.Errorf("NearestWalkable(4,6) = %v,%v, want (4,4)", p, ok)
	}
	// Off-map clicks clamp and still snap.
	if p, ok := m.NearestWalkable(Point{-3, 4}); !ok || p != (Point{4, 4}) {
		t.Errorf("NearestWalkable off-map = %v,%v, want (4,4)", p, ok)
	}
}

func TestNearestWalkableNoRoads(t *testing.T) {
	m := NewMap(4, 4)
	if _, ok := m.NearestWalkable(Point{1, 1}); ok {
		t.Error("expected no walkable tile on an all-grass map")
	}
}

func TestTileCoords(t *testing.T) {
	cx, cy := TileCenter(Point{2, 1}, 60)
	if cx != 150 || cy != 90 {
		t.Errorf("TileCenter = (%v, %v), want (150, 90)", cx, cy)
	}
	if p := TileAt(151, 89, 60); p != (Point{2, 1}) {
		t.Errorf("TileAt(151,89) = %v, want (2,1)", p)
	}
	if p := TileAt(-1, 5, 60); p != (Point{-1, 0}) {
		t.Errorf("TileAt(-1,5) = %v, want (-1,0)", p)
	}
	// Exact negative multiples land on the tile's own left edge.
	if p := TileAt(-60, -120, 60); p != (Point{-1, -2}) {
		t.Errorf("TileAt(-60,-120) = %v, want (-1,-2)", p)
	}
	if p := TileAt(0, 0, 60); p != (Point{0, 0}) {
		t.Errorf("TileAt(0,0) = %v, want (0,0)", p)
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := NewMap(4, 4)
	m.Set(Point{1, 1}, Tile{Kind: KindRoad})
	c := m.Clone()
	c.Set(Point{1, 1}, Tile{Kind: KindRock})
	if m.At(Point{1, 1}).Kind != KindRoad {
		t.Error("mutating the clone changed the original")
	}
}
