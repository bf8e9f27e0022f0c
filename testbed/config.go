// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package testbed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SoftbearStudios/blast2d/world"
	"gopkg.in/yaml.v3"
)

const (
	ExplosionRaycast   = "raycast"
	ExplosionProximity = "proximity"
)

var ErrInvalidConfig = errors.New("invalid config")

type (
	// Config is everything the testbed reads at startup.
	Config struct {
		Port           int             `json:"port" yaml:"port"`
		MaxConnections int             `json:"maxConnections" yaml:"max_connections"`
		TickRate       int             `json:"tickRate" yaml:"tick_rate"` // ticks per second
		LogLevel       string          `json:"logLevel" yaml:"log_level"`
		Scene          SceneConfig     `json:"scene" yaml:"scene"`
		Explosion      ExplosionConfig `json:"explosion" yaml:"explosion"`
		Draw           DrawConfig      `json:"draw" yaml:"draw"`
	}

	// SceneConfig describes the generated debris field.
	SceneConfig struct {
		Name        string  `json:"name" yaml:"name"`
		Seed        int64   `json:"seed,omitempty" yaml:"seed,omitempty"` // zero derives the seed from Name
		DebrisCount int     `json:"debrisCount" yaml:"debris_count"`
		Spacing     float32 `json:"spacing" yaml:"spacing"`
		NoiseScale  float32 `json:"noiseScale" yaml:"noise_scale"`
	}

	ExplosionConfig struct {
		Kind      string      `json:"kind" yaml:"kind"`
		Rays      int         `json:"rays" yaml:"rays"`
		Distance  float32     `json:"distance" yaml:"distance"`
		Power     float32     `json:"power" yaml:"power"`
		Period    int         `json:"period" yaml:"period"` // ticks between detonations
		Epicentre world.Vec2f `json:"epicentre" yaml:"epicentre"`
	}

	// DrawConfig toggles what frames include.
	DrawConfig struct {
		Shapes   bool `json:"shapes" yaml:"shapes"`
		AABBs    bool `json:"aabbs" yaml:"aabbs"`
		Rays     bool `json:"rays" yaml:"rays"`
		Contacts bool `json:"contacts" yaml:"contacts"`
	}
)

func DefaultConfig() Config {
	return Config{
		Port:           8192,
		MaxConnections: 256,
		TickRate:       30,
		LogLevel:       "info",
		Scene: SceneConfig{
			Name:        "explosion particles",
			DebrisCount: 120,
			Spacing:     4,
			NoiseScale:  0.15,
		},
		Explosion: ExplosionConfig{
			Kind:      ExplosionRaycast,
			Rays:      180,
			Distance:  40,
			Power:     400,
			Period:    90,
			Epicentre: world.Vec2f{X: 0, Y: 10},
		},
		Draw: DrawConfig{
			Shapes:   true,
			Rays:     true,
			Contacts: true,
		},
	}
}

// LoadConfig reads YAML from path over DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig reads YAML from r over DefaultConfig and validates it.
func DecodeConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (config *Config) Validate() error {
	switch {
	case config.MaxConnections <= 0:
		return fmt.Errorf("%w: max connections %d", ErrInvalidConfig, config.MaxConnections)
	case config.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, config.TickRate)
	case config.Scene.DebrisCount < 0:
		return fmt.Errorf("%w: debris count %d", ErrInvalidConfig, config.Scene.DebrisCount)
	case config.Scene.Spacing <= 0:
		return fmt.Errorf("%w: spacing %f", ErrInvalidConfig, config.Scene.Spacing)
	case config.Explosion.Kind != ExplosionRaycast && config.Explosion.Kind != ExplosionProximity:
		return fmt.Errorf("%w: explosion kind %q", ErrInvalidConfig, config.Explosion.Kind)
	case config.Explosion.Rays < 0:
		return fmt.Errorf("%w: rays %d", ErrInvalidConfig, config.Explosion.Rays)
	case config.Explosion.Distance <= 0:
		return fmt.Errorf("%w: distance %f", ErrInvalidConfig, config.Explosion.Distance)
	case config.Explosion.Period <= 0:
		return fmt.Errorf("%w: period %d", ErrInvalidConfig, config.Explosion.Period)
	}

	if _, err := parseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
