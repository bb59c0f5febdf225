// internal/state/menu_state.go
package state

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/internal/ui"
)

// MenuState is the title screen with a slowly rotating turret emblem.
type MenuState struct {
	ctx   *Context
	angle float64
}

func NewMenuState(ctx *Context) *MenuState {
	return &MenuState{ctx: ctx}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.angle += deltaTime * 0.8

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsKeyJustPressed(ebiten.Key1):
		m.ctx.Machine.SetState(NewPlayState(m.ctx))
	case inpututil.IsKeyJustPressed(ebiten.Key2),
		inpututil.IsKeyJustPressed(ebiten.KeyE):
		m.ctx.Machine.SetState(NewEditorState(m.ctx))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		m.ctx.Quit = true
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	cx := float32(config.ScreenWidth) / 2
	cy := float32(config.ScreenHeight)/2 - 40
	vector.DrawFilledCircle(screen, cx, cy, 36, config.TurretColor, true)
	bx := cx + float32(math.Cos(m.angle))*52
	by := cy + float32(math.Sin(m.angle))*52
	vector.StrokeLine(screen, cx, cy, bx, by, 8, config.TurretBarrel, true)

	ui.DrawCentered(screen, "TOWER DEFENSE", int(cy)+90, config.HUDTextColor)
	ui.DrawCentered(screen, "SPACE  PLAY", int(cy)+120, config.HUDTextColor)
	ui.DrawCentered(screen, "E      EDITOR", int(cy)+140, config.HUDTextColor)
	ui.DrawCentered(screen, "ESC    QUIT", int(cy)+160, config.HUDTextColor)
}

func (m *MenuState) Exit() {}
