// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"errors"
)

var (
	ErrShapeBound     = errors.New("shape is already bound to a body")
	ErrNilShape       = errors.New("nil shape")
	ErrInvalidDensity = errors.New("density must be positive and finite")
)

// Shape is the geometry of a Body.
// The set of shapes is closed: Circle and Polygon.
type Shape interface {
	// Body returns the body owning the shape, or nil before NewBody.
	Body() *Body

	// Orientation is the rotation of the owning body.
	Orientation() Mat2

	// CalcMass returns the mass properties at a given density.
	CalcMass(density float32) (MassData, error)

	// CreateAABB returns a box enclosing the shape in its current transform.
	CreateAABB() AABB

	// IsPointInside returns if a world point is inside or on the shape.
	IsPointInside(point Vec2f) bool

	base() *shapeBase
}

// MassData is computed from a Shape and a density.
type MassData struct {
	Mass       float32 `json:"mass"`
	InvMass    float32 `json:"-"`
	Inertia    float32 `json:"inertia"`
	InvInertia float32 `json:"-"`
	// Centroid relative to the body position in local space.
	Centroid Vec2f `json:"centroid"`
}

func massData(mass, inertia float32, centroid Vec2f) MassData {
	data := MassData{Mass: mass, Inertia: inertia, Centroid: centroid}
	if mass > 0 {
		data.InvMass = 1 / mass
	}
	if inertia > 0 {
		data.InvInertia = 1 / inertia
	}
	return data
}

func checkDensity(density float32) error {
	if !finite(density) || density <= 0 {
		return ErrInvalidDensity
	}
	return nil
}

// shapeBase is embedded in every Shape.
type shapeBase struct {
	body        *Body // owner, never reassigned once set
	orientation Mat2
}

func (s *shapeBase) base() *shapeBase {
	return s
}

func (s *shapeBase) Body() *Body {
	return s.body
}

func (s *shapeBase) Orientation() Mat2 {
	return s.orientation
}

// transform of the shape; an unbound shape sits unrotated at the origin.
func (s *shapeBase) transform() Transform {
	if s.body == nil {
		return Transform{Rotation: Identity}
	}
	return Transform{Position: s.body.position, Rotation: s.orientation}
}

func (s *shapeBase) bind(body *Body) error {
	if s.body != nil {
		return ErrShapeBound
	}
	s.body = body
	return nil
}
