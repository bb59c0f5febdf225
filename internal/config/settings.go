// internal/config/settings.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the user-tunable options read from settings.yaml. Everything
// has a sensible default so the file is optional.
type Settings struct {
	WindowScale float64 `yaml:"window_scale"`
	Fullscreen  bool    `yaml:"fullscreen"`
	Volume      float64 `yaml:"volume"`
	Mute        bool    `yaml:"mute"`
	Seed        int64   `yaml:"seed"`
	LevelsDir   string  `yaml:"levels_dir"`
	Level       string  `yaml:"level"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		WindowScale: 1.0,
		Fullscreen:  false,
		Volume:      1.0,
		Mute:        false,
		Seed:        0,
		LevelsDir:   LevelsDir,
		Level:       DefaultLevel,
	}
}

// LoadSettings reads settings from path, falling back to defaults for any
// field the file omits. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("unmarshal settings %s: %w", path, err)
	}
	if s.WindowScale <= 0 {
		s.WindowScale = 1.0
	}
	if s.Volume < 0 {
		s.Volume = 0
	} else if s.Volume > 1 {
		s.Volume = 1
	}
	if s.LevelsDir == "" {
		s.LevelsDir = LevelsDir
	}
	if s.Level == "" {
		s.Level = DefaultLevel
	}
	return s, nil
}
