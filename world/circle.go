// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"github.com/chewxy/math32"
)

// Circle is a Shape centered on its body's position.
type Circle struct {
	shapeBase
	radius float32
}

var _ = Shape(&Circle{})

// NewCircle creates a Circle. Negative radii are treated as zero.
func NewCircle(radius float32) *Circle {
	return &Circle{
		shapeBase: shapeBase{orientation: Identity},
		radius:    max(radius, 0),
	}
}

func (circle *Circle) Radius() float32 {
	return circle.radius
}

// Center is the circle's world position.
func (circle *Circle) Center() Vec2f {
	return circle.transform().Position
}

func (circle *Circle) CalcMass(density float32) (MassData, error) {
	if err := checkDensity(density); err != nil {
		return MassData{}, err
	}
	r2 := square(circle.radius)
	mass := math32.Pi * r2 * density
	return massData(mass, mass*r2, Vec2f{}), nil
}

func (circle *Circle) CreateAABB() AABB {
	center := circle.Center()
	r := Vec2f{X: circle.radius, Y: circle.radius}
	return AABB{Min: center.Sub(r), Max: center.Add(r)}
}

// IsPointInside is always false for a zero radius circle, which has no area.
func (circle *Circle) IsPointInside(point Vec2f) bool {
	if circle.radius == 0 {
		return false
	}
	return point.DistanceSquared(circle.Center()) <= square(circle.radius)
}
