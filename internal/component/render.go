// internal/component/render.go
package component

import "image/color"

// Layer controls draw order: lower layers are drawn before higher ones.
type Layer int

const (
	LayerBackground Layer = iota
	LayerDecal
	LayerTurret
	LayerTurretSights
	LayerShrub
	LayerEnemy
	LayerProjectile
	LayerHUD
)

// Renderable describes how an entity is drawn.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
	Layer     Layer
}
