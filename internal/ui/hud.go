// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/danvargg/tower-defense/internal/app"
	"github.com/danvargg/tower-defense/internal/config"
)

// Face is the bitmap face used for all HUD and menu text.
var Face font.Face = basicfont.Face7x13

// HUD draws the run stats along the top edge of the screen.
type HUD struct {
	game *app.Game
}

func NewHUD(game *app.Game) *HUD {
	return &HUD{game: game}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	line := fmt.Sprintf("WAVE %d   BASE %d   SCORE %d   KILLS %d   TURRETS %d/%d",
		h.game.Wave(), h.game.BaseHealth(), h.game.Score(), h.game.Kills(),
		h.game.TurretCount(), h.game.TurretQuota())
	DrawShadowed(screen, line, 8, 16)
}

// DrawShadowed renders text with a one pixel drop shadow so it stays
// readable over any tile color.
func DrawShadowed(screen *ebiten.Image, s string, x, y int) {
	text.Draw(screen, s, Face, x+1, y+1, config.HUDShadowColor)
	text.Draw(screen, s, Face, x, y, config.HUDTextColor)
}

// DrawCentered renders text horizontally centered at the given baseline.
func DrawCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	bounds := text.BoundString(Face, s)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	shadow := config.HUDShadowColor
	text.Draw(screen, s, Face, x+1, y+1, shadow)
	text.Draw(screen, s, Face, x, y, clr)
}
