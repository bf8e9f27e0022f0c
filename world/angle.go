// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"fmt"
	"github.com/chewxy/math32"
)

const Pi = Angle(math32.Pi)

// Angle is an orientation in radians, counterclockwise from +X.
type Angle float32

func ToAngle(radians float32) Angle {
	return Angle(radians)
}

// Vec2f returns the unit vector pointing along angle.
func (angle Angle) Vec2f() Vec2f {
	sin, cos := math32.Sincos(float32(angle))
	return Vec2f{
		X: cos,
		Y: sin,
	}
}

// Mat2 returns the rotation matrix of angle.
func (angle Angle) Mat2() Mat2 {
	return Rotation(angle)
}

func (angle Angle) Float() float32 {
	return float32(angle)
}

// Diff returns angle - otherAngle wrapped to [-Pi, Pi).
func (angle Angle) Diff(otherAngle Angle) (difference Angle) {
	difference = angle - otherAngle
	const mod = Angle(math32.Pi * 2)

	// Early check speeds it up from 25ns to 8ns
	if difference >= mod || difference < -mod {
		difference = Angle(math32.Mod(float32(difference), float32(mod)))
	}

	if difference < Angle(-math32.Pi) {
		difference += Angle(math32.Pi * 2)
	} else if difference >= Angle(math32.Pi) {
		difference -= Angle(math32.Pi * 2)
	}
	return
}

func (angle Angle) Abs() Angle {
	return Angle(math32.Abs(float32(angle)))
}

func (angle Angle) String() string {
	return fmt.Sprintf("%.01f degrees", float32(angle)*180/math32.Pi)
}
