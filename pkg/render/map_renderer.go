// pkg/render/map_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/pkg/grid"
)

// MapRenderer draws the static tile background. The full map is rendered
// once into an offscreen image and blitted each frame; Invalidate forces
// a re-render after the map changes (editor paints, hot reload).
type MapRenderer struct {
	tileMap  *grid.Map
	tileSize float64
	mapImage *ebiten.Image
	dirty    bool
}

func NewMapRenderer(tileMap *grid.Map, screenWidth, screenHeight int) *MapRenderer {
	r := &MapRenderer{
		tileMap:  tileMap,
		tileSize: config.TileSize,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
		dirty:    true,
	}
	return r
}

func (r *MapRenderer) SetMap(m *grid.Map) {
	r.tileMap = m
	r.dirty = true
}

// Invalidate marks the cached background stale.
func (r *MapRenderer) Invalidate() {
	r.dirty = true
}

func (r *MapRenderer) Draw(screen *ebiten.Image) {
	if r.dirty {
		r.renderMapImage()
		r.dirty = false
	}
	screen.DrawImage(r.mapImage, nil)
}

func (r *MapRenderer) renderMapImage() {
	r.mapImage.Fill(config.BackgroundColor)
	if r.tileMap == nil {
		return
	}

	ts := float32(r.tileSize)
	for y := 0; y < r.tileMap.Height; y++ {
		for x := 0; x < r.tileMap.Width; x++ {
			tile := r.tileMap.At(grid.Point{X: x, Y: y})
			px, py := float32(x)*ts, float32(y)*ts

			vector.DrawFilledRect(r.mapImage, px, py, ts, ts, baseColor(tile.Kind), false)
			if tile.Kind.Decor() {
				r.drawDecor(grid.Point{X: x, Y: y}, tile)
			}
			if tile.Kind == grid.KindSpawn || tile.Kind == grid.KindExit {
				cx, cy := grid.TileCenter(grid.Point{X: x, Y: y}, r.tileSize)
				vector.StrokeCircle(r.mapImage, float32(cx), float32(cy), ts*0.3, 3,
					config.GridLineColor, true)
			}
		}
	}

	for x := 0; x <= r.tileMap.Width; x++ {
		px := float32(x) * ts
		vector.StrokeLine(r.mapImage, px, 0, px, float32(r.tileMap.Height)*ts, 1,
			config.GridLineColor, false)
	}
	for y := 0; y <= r.tileMap.Height; y++ {
		py := float32(y) * ts
		vector.StrokeLine(r.mapImage, 0, py, float32(r.tileMap.Width)*ts, py, 1,
			config.GridLineColor, false)
	}
}

func (r *MapRenderer) drawDecor(p grid.Point, tile grid.Tile) {
	cx64, cy64 := grid.TileCenter(p, r.tileSize)
	cx, cy := float32(cx64), float32(cy64)
	ts := float32(r.tileSize)

	switch tile.Kind {
	case grid.KindRock:
		vector.DrawFilledCircle(r.mapImage, cx, cy, ts*0.3, config.RockColor, true)
	case grid.KindTree:
		vector.DrawFilledCircle(r.mapImage, cx, cy, ts*0.35, config.TreeColor, true)
		// Trunk direction follows the painted orientation.
		angle := float64(tile.Orientation) * math.Pi / 2
		tx := cx + float32(math.Cos(angle))*ts*0.35
		ty := cy + float32(math.Sin(angle))*ts*0.35
		vector.StrokeLine(r.mapImage, cx, cy, tx, ty, 3, config.RoadColor, true)
	case grid.KindShrub:
		vector.DrawFilledCircle(r.mapImage, cx, cy, ts*0.18, config.ShrubColor, true)
	}
}

func baseColor(k grid.Kind) color.RGBA {
	switch k {
	case grid.KindRoad:
		return config.RoadColor
	case grid.KindSpawn:
		return config.SpawnColor
	case grid.KindExit:
		return config.ExitColor
	default:
		return config.GrassColor
	}
}
