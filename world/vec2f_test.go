// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"github.com/chewxy/math32"
	"math/rand"
	"testing"
)

func BenchmarkVec2f_Angle(b *testing.B) {
	const count = 1024
	vectors := make([]Vec2f, count)
	for i := range vectors {
		vectors[i] = Vec2f{X: rand.Float32()*100 - 50, Y: rand.Float32()*100 - 50}
	}
	b.ResetTimer()

	var acc Angle
	for i := 0; i < b.N; i++ {
		v := vectors[i&(count-1)]
		acc += v.Angle()
	}
	_ = acc
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 0.02
}

func approxVec(a, b Vec2f) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func TestVec2f_Angle(t *testing.T) {
	tests := []struct {
		vec Vec2f
		ang Angle
	}{
		{Vec2f{0, 0}, 0},
		{Vec2f{1, 1}, Pi / 4},
		{Vec2f{0, 1}, Pi / 2},
		{Vec2f{0, -1}, Pi / 2 * 3},
	}

	for _, test := range tests {
		if !approx(0, test.ang.Diff(test.vec.Angle()).Float()) {
			t.Errorf("expected %v.Angle(): %s, got %s", test.vec, test.ang, test.vec.Angle())
		}
	}

	for i := float32(-10.0); i < 10; i += 0.25 {
		a := ToAngle(i)
		a2 := a.Vec2f().Angle()
		if !approx(0, a.Diff(a2).Float()) {
			t.Errorf("expected %s got %s", a, a2)
		}
	}
}

func TestVec2f_Norm(t *testing.T) {
	if n := (Vec2f{}).Norm(); n != (Vec2f{}) {
		t.Errorf("expected zero vector to stay zero, got %v", n)
	}

	for i := 0; i < 100; i++ {
		v := Vec2f{X: rand.Float32()*100 - 50, Y: rand.Float32()*100 - 50}
		if v == (Vec2f{}) {
			continue
		}
		if n := v.Norm(); !approx(n.Length(), 1) || !approx(0, n.Angle().Diff(v.Angle()).Float()) {
			t.Errorf("%v.Norm() = %v", v, n)
		}
	}
}

func TestVec2f_Cross(t *testing.T) {
	x := Vec2f{X: 1}
	y := Vec2f{Y: 1}

	if c := x.Cross(y); c != 1 {
		t.Errorf("expected x cross y = 1, got %f", c)
	}
	if c := y.Cross(x); c != -1 {
		t.Errorf("expected y cross x = -1, got %f", c)
	}
	if r := x.Rot90(); r != y {
		t.Errorf("expected x rotated 90 degrees to be y, got %v", r)
	}
	if r := y.RotN90(); r != x {
		t.Errorf("expected y rotated -90 degrees to be x, got %v", r)
	}
}
