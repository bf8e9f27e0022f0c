// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package testbed

import (
	"fmt"

	"github.com/SoftbearStudios/blast2d/world"
	"github.com/SoftbearStudios/blast2d/world/sector"
	"github.com/aquilax/go-perlin"
	"github.com/cespare/xxhash/v2"
)

const (
	groundHalfHeight = 2
	// Debris is placed where the noise exceeds this
	debrisThreshold = -0.1
	// Candidate cells per debris before giving up
	debrisAttempts = 8
	debrisMaxSize  = 1.5
	debrisMinSize  = 0.4
)

// SceneSeed is the seed of the scene's noise.
func SceneSeed(config SceneConfig) int64 {
	if config.Seed != 0 {
		return config.Seed
	}
	return int64(xxhash.Sum64String(config.Name))
}

// BuildScene creates a static ground with a field of circles and boxes above it.
// Placement follows perlin noise so the same config always creates the same scene.
// Debris never overlaps other bodies when placed.
func BuildScene(config SceneConfig) (*sector.World, error) {
	seed := SceneSeed(config)
	shapeNoise := perlin.NewPerlin(2, 2, 3, seed)
	sizeNoise := perlin.NewPerlin(1.5, 2, 2, seed+1)

	columns := 1
	for columns*columns < config.DebrisCount {
		columns++
	}
	halfWidth := float32(columns) * config.Spacing / 2

	w := sector.New(float32(columns*debrisAttempts)*config.Spacing, sector.DefaultSize)

	ground, err := world.NewBody(world.NewBox(halfWidth+config.Spacing, groundHalfHeight), 0, -groundHalfHeight)
	if err != nil {
		return nil, fmt.Errorf("ground: %w", err)
	}
	ground.SetStatic()
	w.Add(ground)

	var nearby []*world.Body
	placed := 0
	for cell := 0; placed < config.DebrisCount && cell < config.DebrisCount*debrisAttempts; cell++ {
		column := cell % columns
		row := cell / columns
		x := (float32(column)+0.5)*config.Spacing - halfWidth
		y := (float32(row) + 0.5) * config.Spacing

		nx := float64(float32(column) * config.NoiseScale)
		ny := float64(float32(row) * config.NoiseScale)
		n := shapeNoise.Noise2D(nx, ny)
		if n < debrisThreshold {
			continue
		}

		size := debrisMinSize + (debrisMaxSize-debrisMinSize)*clamp01(float32(sizeNoise.Noise2D(nx, ny))+0.5)
		size = min(size, config.Spacing/2)

		var shape world.Shape
		if n > 0.15 {
			shape = world.NewCircle(size)
		} else {
			shape = world.NewBox(size, size*0.6)
		}

		body, err := world.NewBody(shape, x, y+groundHalfHeight)
		if err != nil {
			return nil, fmt.Errorf("debris %d: %w", placed, err)
		}
		body.SetOrientation(world.Angle(n) * world.Pi)

		nearby = w.BodiesInRadius(body.Position(), size*2, nearby[:0])
		if overlapsAny(body, nearby) {
			continue
		}

		w.Add(body)
		placed++
	}

	return w, nil
}

func overlapsAny(body *world.Body, others []*world.Body) bool {
	for _, other := range others {
		if world.Overlaps(body, other) {
			return true
		}
	}
	return false
}

func clamp01(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

