// internal/system/projectile.go
package system

import (
	"math"

	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/internal/entity"
	"github.com/danvargg/tower-defense/internal/event"
	"github.com/danvargg/tower-defense/internal/types"
)

// ProjectileSystem flies projectiles at their targets and applies damage
// on impact. Projectiles home: the direction is recomputed each frame
// while the target is alive, otherwise they continue on the last heading
// and expire off screen.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	var expired []types.EntityID

	for id, proj := range s.ecs.Projectiles {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			expired = append(expired, id)
			continue
		}

		step := proj.Speed * deltaTime

		targetPos, targetAlive := s.ecs.Positions[proj.TargetID]
		if targetAlive {
			dx := targetPos.X - pos.X
			dy := targetPos.Y - pos.Y
			dist := math.Hypot(dx, dy)
			proj.Direction = math.Atan2(dy, dx)

			if dist <= step || dist < config.HitRadius {
				s.hit(proj.TargetID, proj.Damage)
				expired = append(expired, id)
				continue
			}
		}

		pos.X += math.Cos(proj.Direction) * step
		pos.Y += math.Sin(proj.Direction) * step

		if pos.X < -config.TileSize || pos.X > config.ScreenWidth+config.TileSize ||
			pos.Y < -config.TileSize || pos.Y > config.ScreenHeight+config.TileSize {
			expired = append(expired, id)
		}
	}

	for _, id := range expired {
		s.ecs.RemoveEntity(id)
	}
}

func (s *ProjectileSystem) hit(targetID types.EntityID, damage int) {
	health, ok := s.ecs.Healths[targetID]
	if !ok {
		return
	}
	health.Value -= damage
	if health.Value > 0 {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: targetID})
	s.ecs.RemoveEntity(targetID)
}
