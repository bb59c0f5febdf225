// internal/app/game.go
package app

import (
	"math"

	"github.com/danvargg/tower-defense/internal/audio"
	"github.com/danvargg/tower-defense/internal/component"
	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/internal/defs"
	"github.com/danvargg/tower-defense/internal/entity"
	"github.com/danvargg/tower-defense/internal/event"
	"github.com/danvargg/tower-defense/internal/system"
	"github.com/danvargg/tower-defense/internal/types"
	"github.com/danvargg/tower-defense/internal/utils"
	"github.com/danvargg/tower-defense/pkg/grid"
)

// Game owns the simulation: the ECS, every system, and the run stats.
// States drive it with Update and read it for drawing and the HUD.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Sound           *audio.SoundManager

	MovementSystem   *system.MovementSystem
	TurretSystem     *system.TurretSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	RenderSystem     *system.RenderSystem

	tileMap *grid.Map

	score      int
	kills      int
	baseHealth int
	gameOver   bool
}

func NewGame(tileMap *grid.Map, rng *utils.PRNGService, sound *audio.SoundManager) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
		Sound:           sound,
		tileMap:         tileMap,
		baseHealth:      config.BaseHealth,
	}

	g.MovementSystem = system.NewMovementSystem(ecs)
	g.TurretSystem = system.NewTurretSystem(ecs, dispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, dispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, dispatcher, rng, tileMap)
	g.RenderSystem = system.NewRenderSystem(ecs, tileMap)

	dispatcher.Subscribe(event.EnemyKilled, g)
	dispatcher.Subscribe(event.EnemyReachedExit, g)
	dispatcher.Subscribe(event.TurretFired, g)
	dispatcher.Subscribe(event.LevelLoaded, g)

	return g
}

func (g *Game) Update(deltaTime float64) {
	if g.gameOver {
		return
	}
	g.ECS.GameTime += deltaTime

	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.TurretSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)

	g.collectLeaks()
}

// collectLeaks retires enemies that walked off the end of their path.
func (g *Game) collectLeaks() {
	var leaked []types.EntityID
	for id, enemy := range g.ECS.Enemies {
		if enemy.ReachedEnd {
			leaked = append(leaked, id)
		}
	}
	for _, id := range leaked {
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedExit, Data: id})
		g.ECS.RemoveEntity(id)
	}
}

func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		g.kills++
		reward := 1
		if id, ok := e.Data.(types.EntityID); ok {
			if enemy, ok := g.ECS.Enemies[id]; ok {
				reward = enemy.Reward
			}
		}
		g.score += config.ScorePerKill * reward
		g.Sound.Play(audio.EffectKill)
	case event.EnemyReachedExit:
		g.baseHealth -= config.DamagePerLeak
		g.Sound.Play(audio.EffectLeak)
		if g.baseHealth <= 0 {
			g.baseHealth = 0
			g.gameOver = true
			g.Sound.Play(audio.EffectGameOver)
			g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.score})
		}
	case event.TurretFired:
		g.Sound.Play(audio.EffectShot)
	case event.LevelLoaded:
		if m, ok := e.Data.(*grid.Map); ok {
			g.SetMap(m)
			g.Sound.Play(audio.EffectPlace)
		}
	}
}

// SetMap swaps the tile map after an editor save or a hot reload.
func (g *Game) SetMap(m *grid.Map) {
	g.tileMap = m
	g.WaveSystem.SetMap(m)
	g.RenderSystem.SetMap(m)
}

func (g *Game) Map() *grid.Map { return g.tileMap }

// TurretAt returns the turret entity occupying the given cell.
func (g *Game) TurretAt(cell grid.Point) (types.EntityID, bool) {
	for id, turret := range g.ECS.Turrets {
		if turret.Cell == cell {
			return id, true
		}
	}
	return 0, false
}

// CanPlaceTurret reports whether a turret may go on the given cell:
// buildable ground, cell free, quota not exhausted.
func (g *Game) CanPlaceTurret(cell grid.Point) bool {
	if !g.tileMap.At(cell).Kind.Buildable() {
		return false
	}
	if _, occupied := g.TurretAt(cell); occupied {
		return false
	}
	return len(g.ECS.Turrets) < g.TurretQuota()
}

// PlaceTurret places the default turret on the cell. The initial facing
// points at the nearest road tile so the sweep arc covers traffic.
func (g *Game) PlaceTurret(cell grid.Point) bool {
	if g.gameOver || !g.CanPlaceTurret(cell) {
		g.Sound.Play(audio.EffectDeny)
		return false
	}

	def, ok := defs.TurretLibrary["TURRET_BASIC"]
	if !ok {
		return false
	}

	cx, cy := grid.TileCenter(cell, config.TileSize)
	facing := g.initialFacing(cell)

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: cx, Y: cy}
	g.ECS.Turrets[id] = &component.Turret{
		DefID:        def.ID,
		Cell:         cell,
		Facing:       facing,
		CurrentAngle: facing,
		Arc:          def.ArcDegrees * math.Pi / 180,
		Range:        def.Range,
		FireRate:     def.FireRate,
		TurnSpeed:    def.TurnSpeed,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.RGBA(),
		Radius: float32(def.Visuals.RadiusPx),
		Layer:  component.LayerTurret,
	}

	g.Sound.Play(audio.EffectPlace)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TurretPlaced, Data: id})
	return true
}

// initialFacing aims a fresh turret at the closest road tile, falling
// back to pointing right when the map has no roads.
func (g *Game) initialFacing(cell grid.Point) float64 {
	cx, cy := grid.TileCenter(cell, config.TileSize)
	best := math.MaxFloat64
	facing := 0.0
	for y := 0; y < g.tileMap.Height; y++ {
		for x := 0; x < g.tileMap.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if !g.tileMap.Walkable(p) {
				continue
			}
			px, py := grid.TileCenter(p, config.TileSize)
			d := math.Hypot(px-cx, py-cy)
			if d < best {
				best = d
				facing = utils.AngleTo(cx, cy, px, py)
			}
		}
	}
	return facing
}

// RemoveTurret deletes the turret on the cell, if any.
func (g *Game) RemoveTurret(cell grid.Point) bool {
	id, ok := g.TurretAt(cell)
	if !ok {
		return false
	}
	g.ECS.RemoveEntity(id)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TurretRemoved, Data: id})
	return true
}

// RotateTurretAt turns the sweep arc of the turret on the cell by one
// step in the given direction (+1 clockwise, -1 counterclockwise).
func (g *Game) RotateTurretAt(cell grid.Point, direction int) bool {
	id, ok := g.TurretAt(cell)
	if !ok {
		return false
	}
	turret := g.ECS.Turrets[id]
	step := config.TurretRotateStep * math.Pi / 180
	turret.Facing = utils.NormalizeAngle(turret.Facing + float64(direction)*step)
	return true
}

func (g *Game) Score() int       { return g.score }
func (g *Game) Kills() int       { return g.kills }
func (g *Game) BaseHealth() int  { return g.baseHealth }
func (g *Game) Wave() int        { return g.WaveSystem.Wave() }
func (g *Game) GameOver() bool   { return g.gameOver }
func (g *Game) TurretCount() int { return len(g.ECS.Turrets) }

func (g *Game) TurretQuota() int { return config.TurretQuota(g.kills) }
