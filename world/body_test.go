// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// enclosesShape checks that aabb contains every extreme point of the body's shape.
func enclosesShape(t *testing.T, body *Body) {
	t.Helper()
	aabb := body.AABB()

	switch s := body.Shape().(type) {
	case *Circle:
		c := s.Center()
		for _, dir := range []Vec2f{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			assert.True(t, aabb.Expand(1e-4).ContainsPoint(c.AddScaled(dir, s.Radius())), "circle extent %v outside %v", dir, aabb)
		}
	case *Polygon:
		for _, v := range s.WorldVertices() {
			assert.True(t, aabb.Expand(1e-4).ContainsPoint(v), "vertex %v outside %v", v, aabb)
		}
	}
}

func TestNewBody(t *testing.T) {
	t.Run("circle", func(t *testing.T) {
		circle := NewCircle(1)
		body, err := NewBody(circle, 3, 4)
		require.NoError(t, err)

		require.Same(t, body, circle.Body())
		require.Equal(t, Identity, circle.Orientation())
		require.Equal(t, Angle(0), body.Orientation())
		require.Equal(t, AABB{Min: Vec2f{X: 2, Y: 3}, Max: Vec2f{X: 4, Y: 5}}, body.AABB())
		require.Equal(t, Vec2f{X: 3, Y: 4}, body.Position())
		enclosesShape(t, body)
	})

	t.Run("polygon", func(t *testing.T) {
		box := NewBox(2, 1)
		body, err := NewBody(box, -1, 1)
		require.NoError(t, err)

		require.Same(t, body, box.Body())
		require.Equal(t, AABB{Min: Vec2f{X: -3, Y: 0}, Max: Vec2f{X: 1, Y: 2}}, body.AABB())
		enclosesShape(t, body)
	})

	t.Run("defaults", func(t *testing.T) {
		body, err := NewBody(NewCircle(1), 0, 0)
		require.NoError(t, err)

		assert.Equal(t, float32(DefaultStaticFriction), body.StaticFriction)
		assert.Equal(t, float32(DefaultDynamicFriction), body.DynamicFriction)
		assert.InDelta(t, math32.Pi, body.Mass.Mass, 1e-4)
		assert.False(t, body.Static())
	})

	t.Run("rejects bound shape", func(t *testing.T) {
		circle := NewCircle(1)
		first, err := NewBody(circle, 0, 0)
		require.NoError(t, err)

		second, err := NewBody(circle, 5, 5)
		require.ErrorIs(t, err, ErrShapeBound)
		require.Nil(t, second)
		require.Same(t, first, circle.Body())
		require.Equal(t, Vec2f{}, first.AABB().Center())
	})

	t.Run("rejects nil shape", func(t *testing.T) {
		_, err := NewBody(nil, 0, 0)
		require.ErrorIs(t, err, ErrNilShape)
	})
}

func TestBody_SetOrientation(t *testing.T) {
	bodies := []*Body{
		mustBody(t, NewBox(3, 0.5), 10, -4),
		mustBody(t, NewRegularPolygon(2, 5), 0, 0),
		mustBody(t, NewCircle(1.5), -2, 2),
		mustBody(t, NewPolygon(Vec2f{X: 0, Y: 0}, Vec2f{X: 4, Y: 0}, Vec2f{X: 0, Y: 1}), 1, 1),
	}

	for _, body := range bodies {
		for a := float32(-7); a < 7; a += 0.3 {
			body.SetOrientation(ToAngle(a))

			assert.True(t, approx(0, ToAngle(a).Diff(body.Shape().Orientation().Angle()).Float()), "%s: shape orientation not synced", body)
			assert.Equal(t, body.Shape().CreateAABB(), body.AABB(), "%s: stale aabb", body)
			enclosesShape(t, body)
		}
	}
}

func TestBody_SetPosition(t *testing.T) {
	body := mustBody(t, NewBox(1, 1), 0, 0)
	body.SetOrientation(Pi / 4)

	body.SetPosition(Vec2f{X: 10, Y: 10})
	assert.True(t, approxVec(body.AABB().Center(), Vec2f{X: 10, Y: 10}))
	enclosesShape(t, body)

	body.SetTransform(Vec2f{X: -5, Y: 0}, 0)
	assert.Equal(t, AABB{Min: Vec2f{X: -6, Y: -1}, Max: Vec2f{X: -4, Y: 1}}, body.AABB())
	assert.Equal(t, Transform{Position: Vec2f{X: -5}, Rotation: Identity}, body.Transform())
}

func TestShape_CalcMass(t *testing.T) {
	t.Run("circle", func(t *testing.T) {
		mass, err := NewCircle(2).CalcMass(3)
		require.NoError(t, err)
		assert.InDelta(t, 12*math32.Pi, mass.Mass, 1e-3)
		assert.InDelta(t, 1/(12*math32.Pi), mass.InvMass, 1e-6)
		assert.InDelta(t, 48*math32.Pi, mass.Inertia, 1e-2)
	})

	t.Run("box", func(t *testing.T) {
		mass, err := NewBox(1, 1).CalcMass(1)
		require.NoError(t, err)
		assert.InDelta(t, 4, mass.Mass, 1e-4)
		assert.InDelta(t, 8.0/3.0, mass.Inertia, 1e-4)
		assert.InDelta(t, 0, mass.Centroid.Length(), 1e-4)
	})

	t.Run("offset triangle centroid", func(t *testing.T) {
		mass, err := NewPolygon(Vec2f{X: 0, Y: 0}, Vec2f{X: 3, Y: 0}, Vec2f{X: 0, Y: 3}).CalcMass(2)
		require.NoError(t, err)
		assert.InDelta(t, 9, mass.Mass, 1e-4)
		assert.InDelta(t, 1, mass.Centroid.X, 1e-4)
		assert.InDelta(t, 1, mass.Centroid.Y, 1e-4)
	})

	t.Run("degenerate", func(t *testing.T) {
		mass, err := NewPolygon(Vec2f{X: 0, Y: 0}, Vec2f{X: 1, Y: 1}, Vec2f{X: 2, Y: 2}).CalcMass(1)
		require.NoError(t, err)
		assert.Equal(t, MassData{}, mass)

		mass, err = NewCircle(0).CalcMass(1)
		require.NoError(t, err)
		assert.Equal(t, float32(0), mass.InvMass)
	})

	t.Run("invalid density", func(t *testing.T) {
		for _, density := range []float32{0, -1, math32.NaN(), math32.Inf(1)} {
			_, err := NewCircle(1).CalcMass(density)
			assert.ErrorIs(t, err, ErrInvalidDensity, "density %f", density)

			_, err = NewBox(1, 1).CalcMass(density)
			assert.ErrorIs(t, err, ErrInvalidDensity, "density %f", density)
		}

		body := mustBody(t, NewCircle(1), 0, 0)
		before := body.Mass
		require.ErrorIs(t, body.SetDensity(0), ErrInvalidDensity)
		require.Equal(t, before, body.Mass)
	})
}

func TestShape_IsPointInside(t *testing.T) {
	box := mustBody(t, NewBox(1, 1), 0, 0)
	assert.True(t, box.Shape().IsPointInside(Vec2f{X: 0.9, Y: 0.9}))
	assert.True(t, box.Shape().IsPointInside(Vec2f{X: 1, Y: 0}))
	assert.False(t, box.Shape().IsPointInside(Vec2f{X: 1.3, Y: 0}))

	box.SetOrientation(Pi / 4)
	assert.True(t, box.Shape().IsPointInside(Vec2f{X: 1.3, Y: 0}))
	assert.False(t, box.Shape().IsPointInside(Vec2f{X: 0.9, Y: 0.9}))

	circle := mustBody(t, NewCircle(2), 5, 5)
	assert.True(t, circle.Shape().IsPointInside(Vec2f{X: 6, Y: 6}))
	assert.True(t, circle.Shape().IsPointInside(Vec2f{X: 7, Y: 5}))
	assert.False(t, circle.Shape().IsPointInside(Vec2f{X: 7, Y: 7}))

	line := mustBody(t, NewPolygon(Vec2f{X: -1}, Vec2f{X: 1}), 0, 0)
	assert.False(t, line.Shape().IsPointInside(Vec2f{}))

	// No area, not even the centre
	dot := mustBody(t, NewCircle(0), 3, 3)
	assert.False(t, dot.Shape().IsPointInside(Vec2f{X: 3, Y: 3}))
}

func TestCircle_Radius(t *testing.T) {
	circle := NewCircle(2)
	body := mustBody(t, circle, 1, 1)
	assert.Equal(t, float32(2), circle.Radius())
	assert.Equal(t, circle.CreateAABB(), body.AABB())
	enclosesShape(t, body)

	assert.Zero(t, NewCircle(-3).Radius())
}

func TestNewPolygon(t *testing.T) {
	polygon := NewPolygon(
		Vec2f{X: 1, Y: 1},
		Vec2f{X: -1, Y: -1},
		Vec2f{X: 0, Y: 0}, // interior
		Vec2f{X: 1, Y: -1},
		Vec2f{X: -1, Y: 1},
		Vec2f{X: 1, Y: 1}, // duplicate
		Vec2f{X: 1, Y: 0}, // collinear
	)

	vertices := polygon.Vertices()
	require.Len(t, vertices, 4)
	require.Len(t, polygon.Normals(), 4)

	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		after := vertices[(i+2)%len(vertices)]

		// Counterclockwise
		assert.Greater(t, next.Sub(v).Cross(after.Sub(next)), float32(0))

		// Outward
		normal := polygon.Normals()[i]
		assert.InDelta(t, 1, normal.Length(), 1e-5)
		assert.Greater(t, normal.Dot(v), float32(0))
	}

	assert.Len(t, NewRegularPolygon(1, 7).Vertices(), 7)
	assert.Len(t, NewRegularPolygon(1, 1).Vertices(), 3)
	assert.Len(t, NewPolygon(Vec2f{}, Vec2f{X: 1}, Vec2f{X: 2}).Vertices(), 2)
	assert.Empty(t, NewPolygon().Vertices())
}

func TestMotion_ApplyImpulse(t *testing.T) {
	body := mustBody(t, NewBox(1, 1), 0, 0)
	mass := body.Mass

	body.ApplyImpulse(Vec2f{Y: 4}, Vec2f{X: 1})
	assert.InDelta(t, 4*mass.InvMass, body.Velocity.Y, 1e-5)
	assert.InDelta(t, 4*mass.InvInertia, body.AngularVelocity, 1e-5)

	body.ApplyImpulseToCentre(Vec2f{X: 2})
	assert.InDelta(t, 2*mass.InvMass, body.Velocity.X, 1e-5)
	assert.InDelta(t, 4*mass.InvInertia, body.AngularVelocity, 1e-5)

	body.SetStatic()
	require.True(t, body.Static())
	body.ApplyImpulse(Vec2f{X: 100, Y: 100}, Vec2f{X: 1})
	assert.Equal(t, Vec2f{}, body.Velocity)
	assert.Equal(t, float32(0), body.AngularVelocity)
}

func mustBody(t testing.TB, shape Shape, x, y float32) *Body {
	t.Helper()
	body, err := NewBody(shape, x, y)
	require.NoError(t, err)
	return body
}
