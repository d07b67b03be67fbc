package utils

import (
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ResolutionConfig struct {
	X, Y int
}

type UIConfig struct {
	Resolution ResolutionConfig
}

type MathConfig struct {
	Float64EqualityThreshold float64
}

// Config covers the host window only. Gameplay constants are compile-time
// and live in the world package.
type Config struct {
	UI   UIConfig
	Math MathConfig
}

// DefaultConfig matches the logical resolution of the playfield.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Resolution: ResolutionConfig{X: 640, Y: 480},
		},
		Math: MathConfig{
			Float64EqualityThreshold: 1e-9,
		},
	}
}

func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := toml.Unmarshal(file, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func AlmostEqual(a, b, threshold float64) bool {
	return math.Abs(a-b) <= threshold
}
