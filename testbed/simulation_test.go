// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package testbed

import (
	"testing"

	"github.com/SoftbearStudios/blast2d/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig(kind string) Config {
	config := DefaultConfig()
	config.Scene.DebrisCount = 30
	config.Explosion.Kind = kind
	config.Explosion.Period = 5
	config.Explosion.Epicentre = world.Vec2f{X: 0, Y: 8}
	config.Draw.AABBs = true
	return config
}

func TestSimulation_Detonates(t *testing.T) {
	for _, kind := range []string{ExplosionRaycast, ExplosionProximity} {
		t.Run(kind, func(t *testing.T) {
			sim, err := NewSimulation(testConfig(kind), zaptest.NewLogger(t))
			require.NoError(t, err)

			assert.False(t, sim.Explosion().Evaluated())
			for i := 0; i < 5; i++ {
				require.NoError(t, sim.Step(1.0/30))
			}
			assert.Equal(t, 5, sim.Tick())
			assert.True(t, sim.Explosion().Evaluated())

			affected := sim.Explosion().Affected()
			require.NotEmpty(t, affected)

			moving := 0
			for _, body := range affected {
				if body.Velocity != (world.Vec2f{}) {
					moving++
				}
			}
			assert.Greater(t, moving, 0)

			// Bodies move on the next step
			before := make([]world.Vec2f, len(affected))
			for i, body := range affected {
				before[i] = body.Position()
			}
			require.NoError(t, sim.Step(1.0/30))
			moved := 0
			for i, body := range affected {
				if body.Position() != before[i] {
					moved++
				}
			}
			assert.Equal(t, moving, moved)
		})
	}
}

func TestSimulation_GroundStays(t *testing.T) {
	sim, err := NewSimulation(testConfig(ExplosionProximity), nil)
	require.NoError(t, err)

	ground := sim.World().Bodies()[0]
	position := ground.Position()
	for i := 0; i < 20; i++ {
		require.NoError(t, sim.Step(1.0/30))
	}
	assert.Equal(t, position, ground.Position())
	assert.Equal(t, world.Vec2f{}, ground.Velocity)
}

func TestSimulation_SetEpicentre(t *testing.T) {
	sim, err := NewSimulation(testConfig(ExplosionRaycast), nil)
	require.NoError(t, err)

	require.NoError(t, sim.Detonate())
	assert.True(t, sim.Explosion().Evaluated())

	sim.SetEpicentre(world.Vec2f{X: 1000, Y: 1000})
	assert.False(t, sim.Explosion().Evaluated())

	// Nothing is in reach of the new epicentre
	require.NoError(t, sim.Detonate())
	assert.Empty(t, sim.Explosion().Affected())
}

func TestSimulation_Frame(t *testing.T) {
	sim, err := NewSimulation(testConfig(ExplosionRaycast), nil)
	require.NoError(t, err)

	frame := sim.Frame()
	assert.Equal(t, sim.World().Count(), len(frame.Bodies))
	assert.Empty(t, frame.Rays)
	assert.Empty(t, frame.Affected)

	require.NoError(t, sim.Detonate())
	frame = sim.Frame()
	assert.Len(t, frame.Rays, sim.config.Explosion.Rays)
	assert.NotEmpty(t, frame.Contacts)
	assert.NotEmpty(t, frame.Affected)

	for _, b := range frame.Bodies {
		require.NotNil(t, b.AABB)
		assert.True(t, b.Radius > 0 || len(b.Vertices) > 0)
	}

	sim.config.Draw = DrawConfig{}
	frame = sim.Frame()
	assert.Empty(t, frame.Rays)
	assert.Empty(t, frame.Contacts)
	for _, b := range frame.Bodies {
		assert.Nil(t, b.AABB)
		assert.Empty(t, b.Vertices)
	}
}

func TestNewSimulation_Invalid(t *testing.T) {
	config := DefaultConfig()
	config.Explosion.Kind = "confetti"
	_, err := NewSimulation(config, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
