// internal/defs/types.go
package defs

import "image/color"

// Visuals describes how a definition is drawn. Color is RGBA bytes so the
// JSON stays readable.
type Visuals struct {
	Color       [4]uint8 `json:"color"`
	RadiusPx    float64  `json:"radius_px"`
	StrokeWidth float64  `json:"stroke_width"`
}

// RGBA converts the JSON color array to a color.RGBA.
func (v Visuals) RGBA() color.RGBA {
	return color.RGBA{v.Color[0], v.Color[1], v.Color[2], v.Color[3]}
}

// TurretDefinition is one entry of turrets.json.
type TurretDefinition struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	FireRate        float64 `json:"fire_rate"` // shots per second
	Range           float64 `json:"range"`     // pixels
	ArcDegrees      float64 `json:"arc_degrees"`
	TurnSpeed       float64 `json:"turn_speed"` // radians per second
	Damage          int     `json:"damage"`
	ProjectileSpeed float64 `json:"projectile_speed"`
	Visuals         Visuals `json:"visuals"`
}

// EnemyDefinition is one entry of enemies.json.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Speed   float64 `json:"speed"` // pixels per second
	Health  int     `json:"health"`
	Reward  int     `json:"reward"`
	Visuals Visuals `json:"visuals"`
}

// WaveDefinition is one entry of waves.json. Waves past the last defined
// one repeat the final entry with scaled counts.
type WaveDefinition struct {
	Number        int     `json:"number"`
	EnemyID       string  `json:"enemy_id"`
	Count         int     `json:"count"`
	SpawnInterval float64 `json:"spawn_interval"` // seconds between spawns
}
