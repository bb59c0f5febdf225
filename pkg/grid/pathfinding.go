// pkg/grid/pathfinding.go
package grid

import "math/rand"

// Node is one vertex of the walkable-surface graph. Each cardinal direction
// is set if, and only if, the adjacent tile is walkable too.
type Node struct {
	Pos                      Point
	North, South, East, West *Node
}

// BuildGraph recursively walks the map from start, one tile at a time, and
// builds a graph of connected walkable tiles. The returned map holds every
// node reachable from start, keyed by position; the start node itself is
// returned separately. A non-walkable start yields nil.
func (m *Map) BuildGraph(start Point) (*Node, map[Point]*Node) {
	visited := make(map[Point]*Node)
	root := m.walk(start, visited)
	return root, visited
}

func (m *Map) walk(p Point, visited map[Point]*Node) *Node {
	if !m.Walkable(p) {
		return nil
	}
	if n, ok := visited[p]; ok {
		return n
	}
	n := &Node{Pos: p}
	visited[p] = n
	n.East = m.walk(Point{p.X + 1, p.Y}, visited)
	n.West = m.walk(Point{p.X - 1, p.Y}, visited)
	n.North = m.walk(Point{p.X, p.Y - 1}, visited)
	n.South = m.walk(Point{p.X, p.Y + 1}, visited)
	return n
}

// FindPath searches from start for *a* path to any of the exit positions
// using a randomized depth-first walk. This is deliberately not a
// shortest-path algorithm: shuffling the cardinal directions makes enemies
// wander toward the goal instead of always filing down the optimal lane.
// Pass a nil rng for a deterministic walk. Returns nil when no exit is
// reachable. Every tile is visited at most once, so the search always
// terminates.
func FindPath(start *Node, exits map[Point]bool, rng *rand.Rand) []Point {
	if start == nil || len(exits) == 0 {
		return nil
	}
	visited := make(map[Point]bool)

	var walk func(path []Point, current *Node) []Point
	walk = func(path []Point, current *Node) []Point {
		if current == nil || visited[current.Pos] {
			return nil
		}
		visited[current.Pos] = true
		if exits[current.Pos] {
			return append(append([]Point{}, path...), current.Pos)
		}
		directions := []*Node{current.East, current.West, current.North, current.South}
		if rng != nil {
			rng.Shuffle(len(directions), func(i, j int) {
				directions[i], directions[j] = directions[j], directions[i]
			})
		}
		next := append(path, current.Pos)
		for _, dir := range directions {
			if sub := walk(next, dir); sub != nil {
				return sub
			}
		}
		return nil
	}

	return walk(nil, start)
}

// Route builds the walkable graph from start and finds a path to any exit
// on the map. It is the one-call entry point used when spawning enemies.
func (m *Map) Route(start Point, rng *rand.Rand) []Point {
	root, _ := m.BuildGraph(start)
	return FindPath(root, m.ExitSet(), rng)
}

// NearestWalkable returns the walkable tile closest to p, searching outward
// breadth-first over the whole grid. Used by the editor to snap a freshly
// placed enemy onto the road network.
func (m *Map) NearestWalkable(p Point) (Point, bool) {
	if m.Walkable(p) {
		return p, true
	}
	if !m.Contains(p) {
		// Clamp so off-map clicks still snap somewhere sensible.
		if p.X < 0 {
			p.X = 0
		} else if p.X >= m.Width {
			p.X = m.Width - 1
		}
		if p.Y < 0 {
			p.Y = 0
		} else if p.Y >= m.Height {
			p.Y = m.Height - 1
		}
	}
	visited := map[Point]bool{p: true}
	queue := []Point{p}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range [4]Point{
			{current.X + 1, current.Y},
			{current.X - 1, current.Y},
			{current.X, current.Y - 1},
			{current.X, current.Y + 1},
		} {
			if !m.Contains(next) || visited[next] {
				continue
			}
			if m.Walkable(next) {
				return next, true
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return Point{}, false
}
