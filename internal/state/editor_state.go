// internal/state/editor_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/danvargg/tower-defense/internal/component"
	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/internal/defs"
	"github.com/danvargg/tower-defense/internal/entity"
	"github.com/danvargg/tower-defense/internal/level"
	"github.com/danvargg/tower-defense/internal/system"
	"github.com/danvargg/tower-defense/internal/ui"
	"github.com/danvargg/tower-defense/pkg/grid"
	"github.com/danvargg/tower-defense/pkg/render"
)

// toolEnemy is the palette slot that drops preview walkers instead of
// painting tiles.
const toolEnemy = -1

var paletteKinds = []grid.Kind{
	grid.KindGrass,
	grid.KindRoad,
	grid.KindSpawn,
	grid.KindExit,
	grid.KindRock,
	grid.KindTree,
	grid.KindShrub,
}

// EditorState lets the player paint levels and test enemy routes on the
// spot. Preview walkers run through a private ECS so editing never
// touches a live game.
type EditorState struct {
	ctx      *Context
	tileMap  *grid.Map
	baseline *grid.Map

	mapRenderer *render.MapRenderer
	watcher     *level.Watcher

	previewECS      *entity.ECS
	previewMovement *system.MovementSystem
	previewRender   *system.RenderSystem

	tool        int // index into paletteKinds, or toolEnemy
	orientation int
	dirty       bool
}

func NewEditorState(ctx *Context) *EditorState {
	return &EditorState{ctx: ctx, tool: 1}
}

func (e *EditorState) Enter() {
	e.loadFromDisk()

	e.previewECS = entity.NewECS()
	e.previewMovement = system.NewMovementSystem(e.previewECS)
	e.previewRender = system.NewRenderSystem(e.previewECS, e.tileMap)
	e.previewRender.ShowPaths = true

	w, err := level.NewWatcher(e.ctx.Settings.LevelsDir)
	if err != nil {
		log.Printf("level watch disabled: %v", err)
	} else {
		e.watcher = w
	}
}

func (e *EditorState) loadFromDisk() {
	lvl, err := level.LoadOrBuiltin(e.ctx.Settings.LevelsDir, e.ctx.Settings.Level)
	if err != nil {
		log.Printf("level load failed: %v", err)
		e.tileMap = grid.NewMap(config.TilesX, config.TilesY)
	} else if m, err := lvl.ToMap(); err != nil {
		log.Printf("level %q is invalid: %v", lvl.Name, err)
		e.tileMap = grid.NewMap(config.TilesX, config.TilesY)
	} else {
		e.tileMap = m
	}

	if e.mapRenderer == nil {
		e.mapRenderer = render.NewMapRenderer(e.tileMap, config.ScreenWidth, config.ScreenHeight)
	} else {
		e.mapRenderer.SetMap(e.tileMap)
	}
	if e.previewRender != nil {
		e.previewRender.SetMap(e.tileMap)
	}
	e.baseline = e.tileMap.Clone()
	e.dirty = false
}

// revert throws away unsaved edits, restoring the last saved or loaded
// version of the map.
func (e *EditorState) revert() {
	if !e.dirty {
		return
	}
	e.tileMap = e.baseline.Clone()
	e.mapRenderer.SetMap(e.tileMap)
	e.previewRender.SetMap(e.tileMap)
	e.dirty = false
}

func (e *EditorState) Update(deltaTime float64) {
	e.drainWatcher()
	e.handleInput()
	e.previewMovement.Update(deltaTime)
	e.retireFinishedWalkers()
}

func (e *EditorState) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		e.ctx.Machine.SetState(NewMenuState(e.ctx))
		return
	}

	e.cycleTool()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		e.tool = e.paletteIndex(grid.KindRock)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		e.tool = e.paletteIndex(grid.KindTree)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		e.tool = e.paletteIndex(grid.KindShrub)
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		e.tool = e.paletteIndex(grid.KindRoad)
	case inpututil.IsKeyJustPressed(ebiten.Key5):
		e.tool = toolEnemy
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		e.orientation = (e.orientation + 3) % 4
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		e.orientation = (e.orientation + 1) % 4
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		e.previewRender.ShowPaths = !e.previewRender.ShowPaths
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		e.previewRender.ShowCollision = !e.previewRender.ShowCollision
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		e.save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		e.loadFromDisk()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		e.revert()
	}

	cell := e.cursorCell()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		e.applyTool(cell)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		e.clearAt(cell)
	}
}

// cycleTool steps the palette with the mouse wheel.
func (e *EditorState) cycleTool() {
	_, wheel := ebiten.Wheel()
	if wheel == 0 {
		return
	}
	step := 1
	if wheel < 0 {
		step = -1
	}
	if e.tool == toolEnemy {
		e.tool = 0
		return
	}
	e.tool += step
	if e.tool < 0 {
		e.tool = len(paletteKinds) - 1
	}
	if e.tool >= len(paletteKinds) {
		e.tool = 0
	}
}

func (e *EditorState) paletteIndex(k grid.Kind) int {
	for i, kind := range paletteKinds {
		if kind == k {
			return i
		}
	}
	return 0
}

func (e *EditorState) applyTool(cell grid.Point) {
	if e.tool == toolEnemy {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			e.dropWalker(cell)
		}
		return
	}

	kind := paletteKinds[e.tool]
	tile := e.tileMap.At(cell)
	if tile.Kind == kind && tile.Orientation == e.orientation {
		return
	}
	e.tileMap.Set(cell, grid.Tile{Kind: kind, Orientation: e.orientation})
	e.mapRenderer.Invalidate()
	e.dirty = true
}

// clearAt erases a painted tile back to grass, or removes preview
// walkers when the enemy tool is selected.
func (e *EditorState) clearAt(cell grid.Point) {
	if e.tool == toolEnemy {
		for id := range e.previewECS.Enemies {
			e.previewECS.RemoveEntity(id)
		}
		return
	}
	if e.tileMap.At(cell).Kind != grid.KindGrass {
		e.tileMap.Set(cell, grid.Tile{Kind: grid.KindGrass})
		e.mapRenderer.Invalidate()
		e.dirty = true
	}
}

// dropWalker snaps the cursor to the nearest road tile and sends a
// preview enemy down a freshly rolled route.
func (e *EditorState) dropWalker(cell grid.Point) {
	start, ok := e.tileMap.NearestWalkable(cell)
	if !ok {
		return
	}
	route := e.tileMap.Route(start, e.ctx.Rng.Rand())
	if route == nil {
		log.Printf("no route from %v to an exit", start)
		return
	}

	def, ok := defs.EnemyLibrary["ENEMY_WALKER"]
	if !ok {
		return
	}

	waypoints := make([]component.Waypoint, len(route))
	for i, p := range route {
		cx, cy := grid.TileCenter(p, config.TileSize)
		waypoints[i] = component.Waypoint{X: cx, Y: cy}
	}

	id := e.previewECS.NewEntity()
	e.previewECS.Positions[id] = &component.Position{X: waypoints[0].X, Y: waypoints[0].Y}
	e.previewECS.Velocities[id] = &component.Velocity{Speed: def.Speed}
	e.previewECS.Paths[id] = &component.Path{Waypoints: waypoints}
	e.previewECS.Enemies[id] = &component.Enemy{DefID: def.ID}
	e.previewECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.RGBA(),
		Radius:    float32(def.Visuals.RadiusPx),
		HasStroke: true,
		Layer:     component.LayerEnemy,
	}
}

func (e *EditorState) retireFinishedWalkers() {
	for id, enemy := range e.previewECS.Enemies {
		if enemy.ReachedEnd {
			e.previewECS.RemoveEntity(id)
		}
	}
}

func (e *EditorState) save() {
	lvl := level.FromMap(e.ctx.Settings.Level, e.tileMap)
	if err := lvl.Save(e.ctx.Settings.LevelsDir, e.ctx.Settings.Level); err != nil {
		log.Printf("save failed: %v", err)
		return
	}
	e.baseline = e.tileMap.Clone()
	e.dirty = false
	log.Printf("level saved to %s/%s", e.ctx.Settings.LevelsDir, e.ctx.Settings.Level)
}

func (e *EditorState) drainWatcher() {
	if e.watcher == nil {
		return
	}
	select {
	case path := <-e.watcher.Events:
		// Ignore our own saves; only pick up external edits.
		if e.dirty {
			log.Printf("external change to %s ignored, unsaved edits present", path)
			return
		}
		e.loadFromDisk()
	case err := <-e.watcher.Errors:
		log.Printf("level watch error: %v", err)
	default:
	}
}

func (e *EditorState) cursorCell() grid.Point {
	mx, my := ebiten.CursorPosition()
	return grid.TileAt(float64(mx), float64(my), config.TileSize)
}

func (e *EditorState) Draw(screen *ebiten.Image) {
	e.mapRenderer.Draw(screen)
	e.previewRender.Draw(screen)
	e.drawCursor(screen)
	e.drawStatus(screen)
}

func (e *EditorState) drawCursor(screen *ebiten.Image) {
	cell := e.cursorCell()
	ts := float32(config.TileSize)
	clr := config.CursorOKColor
	if e.tool == toolEnemy {
		if _, ok := e.tileMap.NearestWalkable(cell); !ok {
			clr = config.CursorBadColor
		}
	}
	vector.StrokeRect(screen, float32(cell.X)*ts, float32(cell.Y)*ts, ts, ts, 2, clr, false)
}

func (e *EditorState) drawStatus(screen *ebiten.Image) {
	name := "ENEMY"
	if e.tool != toolEnemy {
		name = paletteKinds[e.tool].String()
	}
	marker := ""
	if e.dirty {
		marker = "  *unsaved*"
	}
	ui.DrawShadowed(screen, fmt.Sprintf("EDITOR  TOOL %s  ROT %d%s", name, e.orientation*90, marker), 8, 16)
	ui.DrawShadowed(screen, "WHEEL tool  1-4 kinds  5 enemy  Q/E rotate  Z revert  F5 save  F9 load  ESC menu", 8, 32)
}

func (e *EditorState) Exit() {
	if e.watcher != nil {
		e.watcher.Close()
		e.watcher = nil
	}
}
