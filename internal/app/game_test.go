// internal/app/game_test.go
package app

import (
	"testing"

	"github.com/danvargg/tower-defense/internal/audio"
	"github.com/danvargg/tower-defense/internal/component"
	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/internal/defs"
	"github.com/danvargg/tower-defense/internal/event"
	"github.com/danvargg/tower-defense/internal/types"
	"github.com/danvargg/tower-defense/internal/utils"
	"github.com/danvargg/tower-defense/pkg/grid"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	if err := defs.LoadEmbedded(); err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	m := grid.NewMap(6, 4)
	m.Set(grid.Point{X: 0, Y: 1}, grid.Tile{Kind: grid.KindSpawn})
	for x := 1; x < 5; x++ {
		m.Set(grid.Point{X: x, Y: 1}, grid.Tile{Kind: grid.KindRoad})
	}
	m.Set(grid.Point{X: 5, Y: 1}, grid.Tile{Kind: grid.KindExit})

	sound := audio.NewSoundManager(0, true)
	return NewGame(m, utils.NewPRNGService(42), sound)
}

func TestPlaceTurretOnGrass(t *testing.T) {
	g := newTestGame(t)
	cell := grid.Point{X: 2, Y: 3}
	if !g.PlaceTurret(cell) {
		t.Fatal("placement on free grass rejected")
	}
	if g.TurretCount() != 1 {
		t.Fatalf("TurretCount = %d, want 1", g.TurretCount())
	}
	if _, ok := g.TurretAt(cell); !ok {
		t.Fatal("TurretAt does not find the placed turret")
	}
}

func TestPlaceTurretRejectsRoadAndOccupied(t *testing.T) {
	g := newTestGame(t)
	if g.PlaceTurret(grid.Point{X: 2, Y: 1}) {
		t.Fatal("placement on a road tile accepted")
	}
	cell := grid.Point{X: 2, Y: 3}
	g.PlaceTurret(cell)
	if g.PlaceTurret(cell) {
		t.Fatal("placement on an occupied cell accepted")
	}
}

func TestTurretQuotaEnforced(t *testing.T) {
	g := newTestGame(t)
	placed := 0
	for x := 0; x < 6; x++ {
		for y := 2; y < 4; y++ {
			if g.PlaceTurret(grid.Point{X: x, Y: y}) {
				placed++
			}
		}
	}
	if placed != config.InitialTurrets {
		t.Fatalf("placed %d turrets, want the initial quota %d", placed, config.InitialTurrets)
	}

	// Enough kills unlock one more slot.
	for i := 0; i < config.KillsPerTurret; i++ {
		g.OnEvent(event.Event{Type: event.EnemyKilled})
	}
	if !g.PlaceTurret(grid.Point{X: 5, Y: 3}) {
		t.Fatal("placement rejected after the quota grew")
	}
}

func TestRotateTurret(t *testing.T) {
	g := newTestGame(t)
	cell := grid.Point{X: 2, Y: 3}
	g.PlaceTurret(cell)
	id, _ := g.TurretAt(cell)
	before := g.ECS.Turrets[id].Facing

	if !g.RotateTurretAt(cell, 1) {
		t.Fatal("rotate on an occupied cell failed")
	}
	if g.ECS.Turrets[id].Facing == before {
		t.Fatal("facing unchanged after rotate")
	}
	if g.RotateTurretAt(grid.Point{X: 0, Y: 3}, 1) {
		t.Fatal("rotate on an empty cell succeeded")
	}
}

func TestRemoveTurret(t *testing.T) {
	g := newTestGame(t)
	cell := grid.Point{X: 2, Y: 3}
	g.PlaceTurret(cell)
	if !g.RemoveTurret(cell) {
		t.Fatal("remove failed")
	}
	if g.TurretCount() != 0 {
		t.Fatal("turret still present after remove")
	}
	if g.RemoveTurret(cell) {
		t.Fatal("removing an empty cell succeeded")
	}
}

func TestKillAwardsScore(t *testing.T) {
	g := newTestGame(t)
	id := g.ECS.NewEntity()
	g.ECS.Enemies[id] = &component.Enemy{DefID: "ENEMY_WALKER", Reward: 2}

	g.OnEvent(event.Event{Type: event.EnemyKilled, Data: id})
	if g.Kills() != 1 {
		t.Fatalf("Kills = %d, want 1", g.Kills())
	}
	if want := 2 * config.ScorePerKill; g.Score() != want {
		t.Fatalf("Score = %d, want %d", g.Score(), want)
	}
}

func TestLeakDamagesBaseUntilGameOver(t *testing.T) {
	g := newTestGame(t)
	rec := 0
	leaks := config.BaseHealth / config.DamagePerLeak
	for i := 0; i < leaks; i++ {
		g.OnEvent(event.Event{Type: event.EnemyReachedExit, Data: types.EntityID(0)})
		rec++
	}
	if g.BaseHealth() != 0 {
		t.Fatalf("BaseHealth = %d after %d leaks, want 0", g.BaseHealth(), rec)
	}
	if !g.GameOver() {
		t.Fatal("game not over at zero base health")
	}
}

func TestLevelLoadedEventSwapsMap(t *testing.T) {
	g := newTestGame(t)
	replacement := grid.NewMap(8, 5)
	replacement.Set(grid.Point{X: 0, Y: 2}, grid.Tile{Kind: grid.KindSpawn})
	replacement.Set(grid.Point{X: 7, Y: 2}, grid.Tile{Kind: grid.KindExit})

	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelLoaded, Data: replacement})
	if g.Map() != replacement {
		t.Fatal("LevelLoaded did not swap the game map")
	}

	// Malformed payloads must leave the current map alone.
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelLoaded, Data: "demo.json"})
	if g.Map() != replacement {
		t.Fatal("LevelLoaded with a non-map payload replaced the map")
	}
}

func TestCollectLeaksRetiresFinishedEnemies(t *testing.T) {
	g := newTestGame(t)
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: 330, Y: 90}
	g.ECS.Enemies[id] = &component.Enemy{DefID: "ENEMY_WALKER", ReachedEnd: true}

	before := g.BaseHealth()
	g.Update(0.001)
	if _, alive := g.ECS.Enemies[id]; alive {
		t.Fatal("finished enemy not removed")
	}
	if g.BaseHealth() != before-config.DamagePerLeak {
		t.Fatalf("BaseHealth = %d, want %d", g.BaseHealth(), before-config.DamagePerLeak)
	}
}
