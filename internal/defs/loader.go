// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed data/*.json
var dataFS embed.FS

// TurretLibrary holds all turret definitions, keyed by ID.
var TurretLibrary map[string]TurretDefinition

// EnemyLibrary holds all enemy definitions, keyed by ID.
var EnemyLibrary map[string]EnemyDefinition

// WavePatterns holds the wave definitions, keyed by wave number.
var WavePatterns map[int]WaveDefinition

// LoadEmbedded populates the libraries from the JSON files compiled into
// the binary. It is the default path taken at startup.
func LoadEmbedded() error {
	if err := loadTurrets(read(dataFS, "data/turrets.json")); err != nil {
		return err
	}
	if err := loadEnemies(read(dataFS, "data/enemies.json")); err != nil {
		return err
	}
	return loadWaves(read(dataFS, "data/waves.json"))
}

// LoadFromDir overrides the embedded libraries with JSON files from dir.
// Files that do not exist in dir keep their embedded contents.
func LoadFromDir(dir string) error {
	for _, f := range []struct {
		name string
		load func([]byte, error) error
	}{
		{"turrets.json", loadTurrets},
		{"enemies.json", loadEnemies},
		{"waves.json", loadWaves},
	} {
		path := filepath.Join(dir, f.name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err := f.load(data, err); err != nil {
			return err
		}
	}
	return nil
}

func read(fsys embed.FS, name string) ([]byte, error) {
	return fsys.ReadFile(name)
}

func loadTurrets(data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("read turret definitions: %w", err)
	}
	var turretDefs []TurretDefinition
	if err := json.Unmarshal(data, &turretDefs); err != nil {
		return fmt.Errorf("unmarshal turret definitions: %w", err)
	}
	TurretLibrary = make(map[string]TurretDefinition, len(turretDefs))
	for _, def := range turretDefs {
		TurretLibrary[def.ID] = def
	}
	return nil
}

func loadEnemies(data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("read enemy definitions: %w", err)
	}
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return fmt.Errorf("unmarshal enemy definitions: %w", err)
	}
	EnemyLibrary = make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}
	return nil
}

func loadWaves(data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("read wave definitions: %w", err)
	}
	var waveDefs []WaveDefinition
	if err := json.Unmarshal(data, &waveDefs); err != nil {
		return fmt.Errorf("unmarshal wave definitions: %w", err)
	}
	WavePatterns = make(map[int]WaveDefinition, len(waveDefs))
	for _, def := range waveDefs {
		WavePatterns[def.Number] = def
	}
	return nil
}

// WaveFor returns the pattern for waveNumber. Waves beyond the last defined
// entry reuse it with the enemy count scaled up by how far past the end we
// are, so the game keeps escalating.
func WaveFor(waveNumber int) (WaveDefinition, bool) {
	if len(WavePatterns) == 0 {
		return WaveDefinition{}, false
	}
	if def, ok := WavePatterns[waveNumber]; ok {
		return def, true
	}
	last := 0
	for n := range WavePatterns {
		if n > last {
			last = n
		}
	}
	def := WavePatterns[last]
	extra := waveNumber - last
	if extra < 0 {
		return WaveDefinition{}, false
	}
	def.Number = waveNumber
	def.Count += extra * 2
	interval := def.SpawnInterval - 0.05*float64(extra)
	if interval < 0.3 {
		interval = 0.3
	}
	def.SpawnInterval = interval
	return def, true
}
