// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"github.com/chewxy/math32"
)

// Mat2 is a 2x2 rotation matrix in row major order.
// The zero value is not a rotation; use Identity or Rotation.
type Mat2 struct {
	M00, M01 float32
	M10, M11 float32
}

var Identity = Mat2{M00: 1, M11: 1}

// Rotation returns the matrix rotating vectors counterclockwise by angle.
func Rotation(angle Angle) Mat2 {
	var m Mat2
	m.Set(angle)
	return m
}

// Set overwrites m with the rotation by angle.
func (m *Mat2) Set(angle Angle) {
	sin, cos := math32.Sincos(float32(angle))
	m.M00 = cos
	m.M01 = -sin
	m.M10 = sin
	m.M11 = cos
}

// Mul rotates vec.
func (m Mat2) Mul(vec Vec2f) Vec2f {
	return Vec2f{
		X: m.M00*vec.X + m.M01*vec.Y,
		Y: m.M10*vec.X + m.M11*vec.Y,
	}
}

// MulMat composes m after other, such that m.MulMat(other).Mul(v) == m.Mul(other.Mul(v)).
func (m Mat2) MulMat(other Mat2) Mat2 {
	return Mat2{
		M00: m.M00*other.M00 + m.M01*other.M10,
		M01: m.M00*other.M01 + m.M01*other.M11,
		M10: m.M10*other.M00 + m.M11*other.M10,
		M11: m.M10*other.M01 + m.M11*other.M11,
	}
}

// Transpose of a rotation is its inverse.
func (m Mat2) Transpose() Mat2 {
	return Mat2{
		M00: m.M00,
		M01: m.M10,
		M10: m.M01,
		M11: m.M11,
	}
}

// Angle recovers the rotation angle in (-Pi, Pi].
func (m Mat2) Angle() Angle {
	return Angle(math32.Atan2(m.M10, m.M00))
}
