// internal/state/play_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/danvargg/tower-defense/internal/app"
	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/internal/event"
	"github.com/danvargg/tower-defense/internal/level"
	"github.com/danvargg/tower-defense/internal/ui"
	"github.com/danvargg/tower-defense/pkg/grid"
	"github.com/danvargg/tower-defense/pkg/render"
)

// PlayState runs a combat session on the configured level.
type PlayState struct {
	ctx  *Context
	game *app.Game

	mapRenderer *render.MapRenderer
	hud         *ui.HUD
	watcher     *level.Watcher

	elapsed   float64
	lastClick float64
}

func NewPlayState(ctx *Context) *PlayState {
	return &PlayState{ctx: ctx}
}

func (p *PlayState) Enter() {
	lvl, err := level.LoadOrBuiltin(p.ctx.Settings.LevelsDir, p.ctx.Settings.Level)
	if err != nil {
		log.Printf("level load failed: %v", err)
		return
	}
	tileMap, err := lvl.ToMap()
	if err != nil {
		log.Printf("level %q is invalid: %v", lvl.Name, err)
		return
	}

	p.game = app.NewGame(tileMap, p.ctx.Rng, p.ctx.Sound)
	p.mapRenderer = render.NewMapRenderer(tileMap, config.ScreenWidth, config.ScreenHeight)
	p.hud = ui.NewHUD(p.game)

	w, err := level.NewWatcher(p.ctx.Settings.LevelsDir)
	if err != nil {
		log.Printf("level watch disabled: %v", err)
	} else {
		p.watcher = w
	}
}

func (p *PlayState) Update(deltaTime float64) {
	if p.game == nil {
		p.ctx.Machine.SetState(NewMenuState(p.ctx))
		return
	}
	p.elapsed += deltaTime

	p.drainWatcher()
	p.handleInput()

	p.game.Update(deltaTime)

	if p.game.GameOver() {
		p.ctx.Machine.SetState(NewGameOverState(p.ctx, p.game.Score(), p.game.Wave()))
	}
}

func (p *PlayState) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.ctx.Machine.SetState(NewMenuState(p.ctx))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		p.game.RenderSystem.ShowPaths = !p.game.RenderSystem.ShowPaths
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		p.game.RenderSystem.ShowCollision = !p.game.RenderSystem.ShowCollision
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		p.ctx.Sound.SetMuted(!p.ctx.Sound.Muted())
	}

	cell := p.cursorCell()
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		p.game.RotateTurretAt(cell, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		p.game.RotateTurretAt(cell, 1)
	}

	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		p.game.PlaceTurret(cell)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && p.clickReady() {
		p.game.PlaceTurret(cell)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && p.clickReady() {
		p.game.RemoveTurret(cell)
	}
}

// clickReady suppresses accidental double placements.
func (p *PlayState) clickReady() bool {
	if p.elapsed-p.lastClick < config.ClickCooldown/1000.0 {
		return false
	}
	p.lastClick = p.elapsed
	return true
}

func (p *PlayState) cursorCell() grid.Point {
	mx, my := ebiten.CursorPosition()
	return grid.TileAt(float64(mx), float64(my), config.TileSize)
}

// drainWatcher reloads the level when the file changes on disk.
func (p *PlayState) drainWatcher() {
	if p.watcher == nil {
		return
	}
	select {
	case path := <-p.watcher.Events:
		lvl, err := level.Load(path)
		if err != nil {
			log.Printf("reload of %s failed: %v", path, err)
			return
		}
		tileMap, err := lvl.ToMap()
		if err != nil {
			log.Printf("reloaded level is invalid: %v", err)
			return
		}
		p.game.EventDispatcher.Dispatch(event.Event{Type: event.LevelLoaded, Data: tileMap})
		p.mapRenderer.SetMap(tileMap)
		log.Printf("level %s reloaded", path)
	case err := <-p.watcher.Errors:
		log.Printf("level watch error: %v", err)
	default:
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	if p.game == nil {
		return
	}
	p.mapRenderer.Draw(screen)
	p.drawCursor(screen)
	p.game.RenderSystem.Draw(screen)
	p.hud.Draw(screen)
}

func (p *PlayState) drawCursor(screen *ebiten.Image) {
	cell := p.cursorCell()
	clr := config.CursorBadColor
	if p.game.CanPlaceTurret(cell) {
		clr = config.CursorOKColor
	}
	ts := float32(config.TileSize)
	vector.StrokeRect(screen, float32(cell.X)*ts, float32(cell.Y)*ts, ts, ts, 2, clr, false)
}

func (p *PlayState) Exit() {
	if p.watcher != nil {
		p.watcher.Close()
		p.watcher = nil
	}
}
