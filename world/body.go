// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"fmt"
)

const (
	DefaultDensity         = 1.0
	DefaultStaticFriction  = 0.2
	DefaultDynamicFriction = 0.5
)

// Body couples a Shape to a position and orientation and caches its AABB.
// Every mutator of the transform recomputes the shape orientation and AABB before returning,
// so a Body never exposes a stale AABB.
type Body struct {
	Motion

	StaticFriction  float32 `json:"staticFriction"`
	DynamicFriction float32 `json:"dynamicFriction"`

	shape       Shape
	position    Vec2f
	orientation Angle
	aabb        AABB
}

// NewBody binds shape to a new body at (x, y) with orientation 0.
// Fails with ErrShapeBound if shape belongs to another body.
func NewBody(shape Shape, x, y float32) (*Body, error) {
	if shape == nil {
		return nil, ErrNilShape
	}

	mass, err := shape.CalcMass(DefaultDensity)
	if err != nil {
		return nil, fmt.Errorf("new body: %w", err)
	}

	body := &Body{
		Motion:          Motion{Mass: mass},
		StaticFriction:  DefaultStaticFriction,
		DynamicFriction: DefaultDynamicFriction,
		shape:           shape,
		position:        Vec2f{X: x, Y: y},
	}

	if err := shape.base().bind(body); err != nil {
		return nil, err
	}
	body.sync()
	return body, nil
}

// sync recomputes derived state from the transform.
func (body *Body) sync() {
	body.shape.base().orientation.Set(body.orientation)
	body.aabb = body.shape.CreateAABB()
}

func (body *Body) Shape() Shape {
	return body.shape
}

func (body *Body) Position() Vec2f {
	return body.position
}

func (body *Body) Orientation() Angle {
	return body.orientation
}

// AABB is the cached bounding box of the shape in its current transform.
func (body *Body) AABB() AABB {
	return body.aabb
}

// Transform of the body's shape.
func (body *Body) Transform() Transform {
	return body.shape.base().transform()
}

// SetOrientation rotates the body and resynchronizes the shape orientation and AABB.
func (body *Body) SetOrientation(orientation Angle) {
	body.orientation = orientation
	body.sync()
}

// SetPosition moves the body and recomputes its AABB.
func (body *Body) SetPosition(position Vec2f) {
	body.position = position
	body.sync()
}

// SetTransform sets position and orientation with a single resynchronization.
func (body *Body) SetTransform(position Vec2f, orientation Angle) {
	body.position = position
	body.orientation = orientation
	body.sync()
}

// SetDensity recomputes mass from the shape.
func (body *Body) SetDensity(density float32) error {
	mass, err := body.shape.CalcMass(density)
	if err != nil {
		return err
	}
	body.Mass = mass
	return nil
}

// SetStatic gives the body infinite mass so impulses don't move it.
func (body *Body) SetStatic() {
	body.Mass = MassData{}
	body.Velocity = Vec2f{}
	body.AngularVelocity = 0
}

// Static is true if the body has infinite mass.
func (body *Body) Static() bool {
	return body.Mass.InvMass == 0 && body.Mass.InvInertia == 0
}

func (body *Body) String() string {
	return fmt.Sprintf("body{%T at (%.2f, %.2f) facing %s}", body.shape, body.position.X, body.position.Y, body.orientation)
}
