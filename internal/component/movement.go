// internal/component/movement.go
package component

// Position is a pixel position.
type Position struct {
	X, Y float64
}

// Velocity carries the movement speed in pixels per second.
type Velocity struct {
	Speed float64
}

// Waypoint is one pixel position along an enemy path.
type Waypoint struct {
	X, Y float64
}

// Path is the waypoint list an enemy follows from spawn to exit.
type Path struct {
	Waypoints    []Waypoint
	CurrentIndex int
}

// Done reports whether every waypoint has been reached.
func (p *Path) Done() bool {
	return p.CurrentIndex >= len(p.Waypoints)
}
