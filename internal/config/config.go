// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 540
	DesiredTPS   = 60
	MaxDeltaTime = 0.06

	TileSize = 60
	TilesX   = ScreenWidth / TileSize
	TilesY   = ScreenHeight / TileSize

	BaseHealth     = 100
	DamagePerLeak  = 10
	ScorePerKill   = 25
	InitialTurrets = 3
	// One extra turret slot for every KillsPerTurret enemy kills.
	KillsPerTurret = 5

	EnemySpeed  = 60.0
	EnemyHealth = 100
	EnemyRadius = 12.0
	EnemyReward = 1
	SpawnJitter = 10.0
	WavePause   = 4.0

	TurretRange      = 150.0
	TurretArc        = 90.0 // degrees, centered on the facing direction
	TurretFireRate   = 1.5  // shots per second
	TurretTurnSpeed  = 5.0  // radians per second
	TurretRadius     = 16.0
	TurretRotateStep = 45.0 // degrees per Q/E press

	ProjectileSpeed  = 300.0
	ProjectileRadius = 4.0
	ProjectileDamage = 34
	HitRadius        = 10.0

	ClickCooldown = 200 // milliseconds

	LevelsDir    = "assets/levels"
	DefaultLevel = "demo.json"
)

var (
	BackgroundColor = color.RGBA{34, 40, 28, 255}
	GrassColor      = color.RGBA{74, 103, 65, 255}
	RoadColor       = color.RGBA{148, 128, 94, 255}
	SpawnColor      = color.RGBA{70, 130, 180, 255}
	ExitColor       = color.RGBA{178, 58, 58, 255}
	RockColor       = color.RGBA{120, 120, 126, 255}
	TreeColor       = color.RGBA{36, 72, 40, 255}
	ShrubColor      = color.RGBA{92, 128, 58, 255}
	GridLineColor   = color.RGBA{0, 0, 0, 40}

	EnemyColor       = color.RGBA{30, 30, 30, 255}
	EnemyStrokeColor = color.RGBA{220, 220, 220, 255}
	TurretColor      = color.RGBA{200, 180, 60, 255}
	TurretBarrel     = color.RGBA{240, 240, 240, 255}
	ProjectileColor  = color.RGBA{255, 240, 180, 255}

	HUDTextColor   = color.RGBA{240, 240, 240, 255}
	HUDShadowColor = color.RGBA{20, 20, 30, 200}
	CursorOKColor  = color.RGBA{80, 220, 80, 140}
	CursorBadColor = color.RGBA{220, 80, 80, 140}

	PathOverlayColor  = color.RGBA{80, 180, 255, 200}
	GraphOverlayColor = color.RGBA{255, 255, 255, 70}
	MaskOverlayColor  = color.RGBA{255, 80, 200, 160}
	RangeOverlayColor = color.RGBA{255, 215, 0, 90}
)

// TurretQuota returns how many turrets the player may have placed for the
// given kill count.
func TurretQuota(kills int) int {
	return InitialTurrets + kills/KillsPerTurret
}
