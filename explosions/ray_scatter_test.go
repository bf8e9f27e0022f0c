// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package explosions

import (
	"testing"

	"github.com/SoftbearStudios/blast2d/world"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayScatter_CastRays(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 64, 360} {
		scatter := NewRayScatter(world.Vec2f{X: 3, Y: -2})
		require.NoError(t, scatter.CastRays(n, 10))

		rs := scatter.Rays()
		require.Len(t, rs, n)
		assert.Equal(t, n, scatter.Len())

		assert.InDelta(t, 1, rs[0].Direction().X, 1e-5)
		assert.InDelta(t, 0, rs[0].Direction().Y, 1e-5)

		spacing := 2 * math32.Pi / float32(n)
		for i, ray := range rs {
			assert.Equal(t, world.Vec2f{X: 3, Y: -2}, ray.Start())
			assert.Equal(t, float32(10), ray.Distance())

			if n == 1 {
				continue
			}
			next := rs[(i+1)%n]
			diff := next.Direction().Angle().Diff(ray.Direction().Angle())
			if n == 2 {
				// Opposite directions are ±π apart
				diff = diff.Abs()
			}
			assert.InDelta(t, spacing, diff.Float(), 1e-4, "n %d ray %d", n, i)
		}
	}
}

func TestRayScatter_CastRaysEdgeCases(t *testing.T) {
	scatter := NewRayScatter(world.Vec2f{})
	require.NoError(t, scatter.CastRays(0, 10))
	assert.Zero(t, scatter.Len())
	assert.Empty(t, scatter.Rays())

	assert.ErrorIs(t, scatter.CastRays(-1, 10), ErrNegativeRayCount)

	// Replaces instead of appending
	require.NoError(t, scatter.CastRays(5, 10))
	require.NoError(t, scatter.CastRays(3, 10))
	assert.Equal(t, 3, scatter.Len())
}

func TestRayScatter_SetEpicentre(t *testing.T) {
	scatter := NewRayScatter(world.Vec2f{})
	require.NoError(t, scatter.CastRays(16, 25))
	before := scatter.Rays()

	epicentre := world.Vec2f{X: -7, Y: 4}
	scatter.SetEpicentre(epicentre)
	assert.Equal(t, epicentre, scatter.Epicentre())

	after := scatter.Rays()
	require.Len(t, after, len(before))
	for i := range after {
		assert.Equal(t, epicentre, after[i].Start())
		assert.Equal(t, before[i].Direction(), after[i].Direction())
		assert.Equal(t, before[i].Distance(), after[i].Distance())
	}
}

func TestRayScatter_UpdateRays(t *testing.T) {
	body, err := world.NewBody(world.NewCircle(2), 10, 0)
	require.NoError(t, err)

	scatter := NewRayScatter(world.Vec2f{})
	require.NoError(t, scatter.CastRays(4, 20))
	scatter.UpdateRays([]*world.Body{body})

	hits := scatter.Hits(nil)
	require.Len(t, hits, 1)
	assert.Same(t, body, hits[0].Body())
	assert.InDelta(t, 8, hits[0].Point().X, 1e-4)

	// Moving clears the hits until the next update
	scatter.SetEpicentre(world.Vec2f{Y: 100})
	assert.Empty(t, scatter.Hits(nil))
}
