// internal/system/spawn.go
package system

import (
	"log"

	"github.com/danvargg/tower-defense/internal/component"
	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/internal/defs"
	"github.com/danvargg/tower-defense/internal/entity"
	"github.com/danvargg/tower-defense/internal/event"
	"github.com/danvargg/tower-defense/internal/utils"
	"github.com/danvargg/tower-defense/pkg/grid"
)

// WaveSystem schedules waves and spawns enemies at the spawn portals.
// Each enemy gets its own randomized route through the road network, so
// a wave fans out instead of marching in a single file.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	tileMap         *grid.Map

	wave          int
	remaining     int
	active        int
	spawnTimer    float64
	spawnInterval float64
	enemyID       string
	pause         float64
	running       bool
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, tileMap *grid.Map) *WaveSystem {
	s := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		tileMap:         tileMap,
		pause:           config.WavePause / 2,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	eventDispatcher.Subscribe(event.EnemyReachedExit, s)
	return s
}

// SetMap swaps the tile map used for routing. New routes take effect on
// the next spawn; enemies already on the field keep their old path.
func (s *WaveSystem) SetMap(m *grid.Map) {
	s.tileMap = m
}

// Wave returns the current wave number, 0 before the first wave starts.
func (s *WaveSystem) Wave() int {
	return s.wave
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.EnemyReachedExit:
		if s.active > 0 {
			s.active--
		}
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	if !s.running {
		s.pause -= deltaTime
		if s.pause <= 0 {
			s.startNextWave()
		}
		return
	}

	if s.remaining > 0 {
		s.spawnTimer -= deltaTime
		if s.spawnTimer <= 0 {
			s.spawnTimer = s.spawnInterval
			if s.spawnEnemy() {
				s.remaining--
			} else {
				s.remaining = 0
			}
		}
	}

	if s.remaining == 0 && s.active == 0 {
		s.running = false
		s.pause = config.WavePause
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: s.wave})
	}
}

func (s *WaveSystem) startNextWave() {
	s.wave++
	def, ok := defs.WaveFor(s.wave)
	if !ok {
		log.Printf("no wave pattern for wave %d", s.wave)
		s.wave--
		s.pause = config.WavePause
		return
	}
	s.enemyID = def.EnemyID
	s.remaining = def.Count
	s.spawnInterval = def.SpawnInterval
	s.spawnTimer = 0
	s.running = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: s.wave})
}

func (s *WaveSystem) spawnEnemy() bool {
	spawns, _ := s.tileMap.Portals()
	if len(spawns) == 0 {
		log.Printf("map has no spawn portal, wave %d aborted", s.wave)
		return false
	}
	start := spawns[s.rng.Intn(len(spawns))]

	route := s.tileMap.Route(start, s.rng.Rand())
	if route == nil {
		log.Printf("no route from spawn %v to an exit, wave %d aborted", start, s.wave)
		return false
	}

	def, ok := defs.EnemyLibrary[s.enemyID]
	if !ok {
		log.Printf("unknown enemy definition %q", s.enemyID)
		return false
	}

	centers := make([][2]float64, len(route))
	for i, p := range route {
		cx, cy := grid.TileCenter(p, config.TileSize)
		centers[i] = [2]float64{cx, cy}
	}
	// Jitter every interpolated point, not just the tile centers, so the
	// walk wobbles within the road instead of cutting straight lines.
	points := utils.Interpolate(centers, 2)
	waypoints := make([]component.Waypoint, len(points))
	for i, pt := range points {
		waypoints[i] = component.Waypoint{
			X: pt[0] + s.rng.Jitter(config.SpawnJitter),
			Y: pt[1] + s.rng.Jitter(config.SpawnJitter),
		}
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: waypoints[0].X, Y: waypoints[0].Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Paths[id] = &component.Path{Waypoints: waypoints}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{DefID: def.ID, Reward: def.Reward}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.RGBA(),
		Radius:    float32(def.Visuals.RadiusPx),
		HasStroke: def.Visuals.StrokeWidth > 0,
		Layer:     component.LayerEnemy,
	}

	s.active++
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	return true
}
