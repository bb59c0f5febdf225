// internal/system/turret.go
package system

import (
	"math"

	"github.com/danvargg/tower-defense/internal/component"
	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/internal/defs"
	"github.com/danvargg/tower-defense/internal/entity"
	"github.com/danvargg/tower-defense/internal/event"
	"github.com/danvargg/tower-defense/internal/types"
	"github.com/danvargg/tower-defense/internal/utils"
)

// TurretSystem aims turret heads and fires projectiles. A turret only
// engages enemies inside its range and inside the sweep arc centered on
// its facing direction.
type TurretSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewTurretSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *TurretSystem {
	return &TurretSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *TurretSystem) Update(deltaTime float64) {
	for id, turret := range s.ecs.Turrets {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		if turret.Cooldown > 0 {
			turret.Cooldown -= deltaTime
		}

		targetID, targetAngle, found := s.acquireTarget(pos, turret)
		turret.TargetID = targetID

		if found {
			// Track the target at the turn rate, TurnSpeed rad/s.
			offset := utils.NormalizeAngle(targetAngle - turret.CurrentAngle)
			moved, _ := utils.StepToward(0, offset, turret.TurnSpeed*deltaTime)
			turret.CurrentAngle = utils.NormalizeAngle(turret.CurrentAngle + moved)
		} else {
			// Ease back to the sweep rest angle between engagements.
			turret.CurrentAngle = utils.LerpAngle(turret.CurrentAngle, turret.Facing,
				clamp01(turret.TurnSpeed*deltaTime))
		}

		if !found || turret.Cooldown > 0 {
			continue
		}
		// Hold fire until the head has swung close to the target.
		if utils.AngleBetween(turret.CurrentAngle, targetAngle) > 0.2 {
			continue
		}
		s.fire(id, pos, turret, targetID, targetAngle)
	}
}

// acquireTarget returns the nearest enemy within range and inside the
// sweep arc.
func (s *TurretSystem) acquireTarget(pos *component.Position, turret *component.Turret) (types.EntityID, float64, bool) {
	var (
		bestID    types.EntityID
		bestDist  = math.MaxFloat64
		bestAngle float64
	)
	for enemyID := range s.ecs.Enemies {
		enemyPos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		dx := enemyPos.X - pos.X
		dy := enemyPos.Y - pos.Y
		dist := math.Hypot(dx, dy)
		if dist > turret.Range || dist >= bestDist {
			continue
		}
		angle := math.Atan2(dy, dx)
		if utils.AngleBetween(angle, turret.Facing) > turret.Arc/2 {
			continue
		}
		bestID = enemyID
		bestDist = dist
		bestAngle = angle
	}
	return bestID, bestAngle, bestID != 0
}

func (s *TurretSystem) fire(turretID types.EntityID, pos *component.Position, turret *component.Turret, targetID types.EntityID, angle float64) {
	turret.Cooldown = 1.0 / turret.FireRate

	def, hasDef := turretDef(turret.DefID)
	speed := config.ProjectileSpeed
	damage := config.ProjectileDamage
	if hasDef {
		speed = def.ProjectileSpeed
		damage = def.Damage
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Projectiles[id] = &component.Projectile{
		TargetID:  targetID,
		Speed:     speed,
		Damage:    damage,
		Direction: angle,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
		Layer:  component.LayerProjectile,
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.TurretFired, Data: turretID})
}

func turretDef(id string) (defs.TurretDefinition, bool) {
	def, ok := defs.TurretLibrary[id]
	return def, ok
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
