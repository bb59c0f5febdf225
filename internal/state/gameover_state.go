// internal/state/gameover_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/danvargg/tower-defense/internal/config"
	"github.com/danvargg/tower-defense/internal/ui"
)

// GameOverState shows the final score and offers a restart.
type GameOverState struct {
	ctx   *Context
	score int
	wave  int
}

func NewGameOverState(ctx *Context, score, wave int) *GameOverState {
	return &GameOverState{ctx: ctx, score: score, wave: wave}
}

func (g *GameOverState) Enter() {}

func (g *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR),
		inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.ctx.Machine.SetState(NewPlayState(g.ctx))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.ctx.Machine.SetState(NewMenuState(g.ctx))
	}
}

func (g *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	cy := config.ScreenHeight / 2
	ui.DrawCentered(screen, "GAME OVER", cy-40, config.ExitColor)
	ui.DrawCentered(screen, fmt.Sprintf("SCORE %d   WAVE %d", g.score, g.wave), cy, config.HUDTextColor)
	ui.DrawCentered(screen, "R    RESTART", cy+40, config.HUDTextColor)
	ui.DrawCentered(screen, "ESC  MENU", cy+60, config.HUDTextColor)
}

func (g *GameOverState) Exit() {}
