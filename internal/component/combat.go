// internal/component/combat.go
package component

import (
	"github.com/danvargg/tower-defense/internal/types"
	"github.com/danvargg/tower-defense/pkg/grid"
)

// Health is the remaining hit points of an entity.
type Health struct {
	Value int
	Max   int
}

// Turret is a player-placed defensive unit. Facing is the center of its
// sweep arc; the head angle chases CurrentAngle toward the target while
// facing only changes when the player rotates the turret.
type Turret struct {
	DefID        string
	Cell         grid.Point
	Facing       float64 // radians, center of the sweep arc
	Arc          float64 // radians, total arc width
	Range        float64 // pixels
	FireRate     float64 // shots per second
	Cooldown     float64 // seconds until the next shot is allowed
	CurrentAngle float64 // radians, where the head points right now
	TurnSpeed    float64 // radians per second
	TargetID     types.EntityID
}

// Enemy marks an entity as hostile. Reward is the kill credit toward the
// turret quota.
type Enemy struct {
	DefID      string
	Reward     int
	Heading    float64 // radians, current travel direction
	ReachedEnd bool
}

// Projectile is a shot in flight toward a target entity.
type Projectile struct {
	TargetID  types.EntityID
	Speed     float64
	Damage    int
	Direction float64 // radians
}
