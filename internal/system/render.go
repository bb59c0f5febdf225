// internal/system/render.go
package system

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/internal/entity"
	"github.com/danvargg/tower-defense/internal/types"
	"github.com/danvargg/tower-defense/pkg/grid"
)

// RenderSystem draws every renderable entity in layer order on top of
// the already-drawn tile map. Debug overlays are toggled from the play
// state.
type RenderSystem struct {
	ecs     *entity.ECS
	tileMap *grid.Map

	ShowPaths     bool
	ShowCollision bool
}

func NewRenderSystem(ecs *entity.ECS, tileMap *grid.Map) *RenderSystem {
	return &RenderSystem{ecs: ecs, tileMap: tileMap}
}

func (s *RenderSystem) SetMap(m *grid.Map) {
	s.tileMap = m
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	ids := make([]types.EntityID, 0, len(s.ecs.Renderables))
	for id := range s.ecs.Renderables {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ri, rj := s.ecs.Renderables[ids[i]], s.ecs.Renderables[ids[j]]
		if ri.Layer != rj.Layer {
			return ri.Layer < rj.Layer
		}
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		s.drawEntity(screen, id)
	}

	if s.ShowPaths {
		s.drawPathOverlay(screen)
	}
	if s.ShowCollision {
		s.drawCollisionOverlay(screen)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id types.EntityID) {
	r := s.ecs.Renderables[id]
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)

	vector.DrawFilledCircle(screen, x, y, r.Radius, r.Color, true)
	if r.HasStroke {
		vector.StrokeCircle(screen, x, y, r.Radius, 2, config.EnemyStrokeColor, true)
	}

	if enemy, ok := s.ecs.Enemies[id]; ok {
		// Nose marker so the travel direction reads at a glance.
		nx := x + float32(math.Cos(enemy.Heading))*r.Radius
		ny := y + float32(math.Sin(enemy.Heading))*r.Radius
		vector.StrokeLine(screen, x, y, nx, ny, 2, config.EnemyStrokeColor, true)
	}

	if turret, ok := s.ecs.Turrets[id]; ok {
		bx := x + float32(math.Cos(turret.CurrentAngle))*r.Radius*1.4
		by := y + float32(math.Sin(turret.CurrentAngle))*r.Radius*1.4
		vector.StrokeLine(screen, x, y, bx, by, 4, config.TurretBarrel, true)
	}
}

func (s *RenderSystem) drawPathOverlay(screen *ebiten.Image) {
	s.drawWalkGraph(screen)

	for id, path := range s.ecs.Paths {
		pos, ok := s.ecs.Positions[id]
		if !ok || path.Done() {
			continue
		}
		px, py := float32(pos.X), float32(pos.Y)
		for i := path.CurrentIndex; i < len(path.Waypoints); i++ {
			wx, wy := float32(path.Waypoints[i].X), float32(path.Waypoints[i].Y)
			vector.StrokeLine(screen, px, py, wx, wy, 1, config.PathOverlayColor, true)
			px, py = wx, wy
		}
	}
}

// drawWalkGraph shows the connectivity of the road network: an edge
// between every pair of adjacent walkable tiles.
func (s *RenderSystem) drawWalkGraph(screen *ebiten.Image) {
	if s.tileMap == nil {
		return
	}
	for y := 0; y < s.tileMap.Height; y++ {
		for x := 0; x < s.tileMap.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if !s.tileMap.Walkable(p) {
				continue
			}
			cx, cy := grid.TileCenter(p, config.TileSize)
			for _, n := range []grid.Point{{X: x + 1, Y: y}, {X: x, Y: y + 1}} {
				if !s.tileMap.Walkable(n) {
					continue
				}
				nx, ny := grid.TileCenter(n, config.TileSize)
				vector.StrokeLine(screen,
					float32(cx), float32(cy), float32(nx), float32(ny),
					1, config.GraphOverlayColor, true)
			}
		}
	}
}

func (s *RenderSystem) drawCollisionOverlay(screen *ebiten.Image) {
	for id := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y),
			config.HitRadius, 1, config.MaskOverlayColor, true)
	}

	for id, turret := range s.ecs.Turrets {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)
		vector.StrokeCircle(screen, x, y, float32(turret.Range), 1, config.RangeOverlayColor, true)
		for _, edge := range []float64{turret.Facing - turret.Arc/2, turret.Facing + turret.Arc/2} {
			ex := x + float32(math.Cos(edge)*turret.Range)
			ey := y + float32(math.Sin(edge)*turret.Range)
			vector.StrokeLine(screen, x, y, ex, ey, 1, config.RangeOverlayColor, true)
		}
	}
}
