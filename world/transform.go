// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

// Transform places shape local coordinates in the world.
type Transform struct {
	Position Vec2f `json:"position"`
	Rotation Mat2  `json:"-"`
}

// Apply maps a local point to world space.
func (transform Transform) Apply(local Vec2f) Vec2f {
	return transform.Rotation.Mul(local).Add(transform.Position)
}

// Inverse maps a world point to local space.
func (transform Transform) Inverse(point Vec2f) Vec2f {
	return transform.Rotation.Transpose().Mul(point.Sub(transform.Position))
}
