// internal/system/movement.go
package system

import (
	"math"

	"github.com/danvargg/tower-defense/internal/entity"
)

// MovementSystem advances entities along their waypoint paths.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasVel || !hasPath || path.Done() {
			continue
		}

		remaining := vel.Speed * deltaTime
		// Consume the full frame distance even when it spans several
		// waypoints, otherwise fast enemies stall on dense paths.
		for remaining > 0 && !path.Done() {
			target := path.Waypoints[path.CurrentIndex]
			dx := target.X - pos.X
			dy := target.Y - pos.Y
			dist := math.Hypot(dx, dy)

			if dist > 0 {
				if enemy, ok := s.ecs.Enemies[id]; ok {
					enemy.Heading = math.Atan2(dy, dx)
				}
			}

			if dist <= remaining {
				pos.X = target.X
				pos.Y = target.Y
				path.CurrentIndex++
				remaining -= dist
				continue
			}
			pos.X += (dx / dist) * remaining
			pos.Y += (dy / dist) * remaining
			remaining = 0
		}

		if path.Done() {
			if enemy, ok := s.ecs.Enemies[id]; ok {
				enemy.ReachedEnd = true
			}
		}
	}
}
