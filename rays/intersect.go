// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rays

import (
	"github.com/SoftbearStudios/blast2d/world"
	"github.com/chewxy/math32"
)

const (
	// parallel is the cross product below which a ray and an edge don't intersect.
	parallel = 1e-6
	// slack along an edge so rays through a vertex don't slip between its two edges.
	slack = 1e-5
)

// Intersect finds where ray first crosses the boundary of body's shape within its distance.
// A ray starting inside a shape hits the boundary on its way out.
func Intersect(ray Ray, body *world.Body) (RayInformation, bool) {
	if ray.direction == (world.Vec2f{}) {
		return RayInformation{}, false
	}

	var (
		t     float32
		index int
		ok    bool
	)

	switch shape := body.Shape().(type) {
	case *world.Circle:
		t, ok = intersectCircle(ray, shape)
		index = IndexCircle
	case *world.Polygon:
		t, index, ok = intersectPolygon(ray, shape)
	}

	if !ok {
		return RayInformation{}, false
	}

	return RayInformation{
		body:     body,
		point:    ray.start.AddScaled(ray.direction, t),
		index:    index,
		distance: t,
	}, true
}

// intersectCircle solves |start + t*direction - center| = radius for the smallest t in [0, distance].
// A zero radius circle has no boundary to hit.
func intersectCircle(ray Ray, circle *world.Circle) (float32, bool) {
	radius := circle.Radius()
	if radius == 0 {
		return 0, false
	}

	f := ray.start.Sub(circle.Center())
	b := f.Dot(ray.direction)
	c := f.LengthSquared() - radius*radius

	discriminant := b*b - c
	if discriminant < 0 {
		return 0, false
	}
	root := math32.Sqrt(discriminant)

	t := -b - root
	if t < 0 {
		// Started inside or past the circle
		t = -b + root
	}
	if t < 0 || t > ray.distance {
		return 0, false
	}
	return t, true
}

// intersectPolygon checks every edge and returns the nearest.
// Polygons without area (fewer than 3 hull vertices) are never hit.
func intersectPolygon(ray Ray, polygon *world.Polygon) (nearest float32, index int, ok bool) {
	n := len(polygon.Vertices())
	if n < 3 {
		return
	}

	for i := 0; i < n; i++ {
		a, b := polygon.Edge(i)
		edge := b.Sub(a)

		denominator := ray.direction.Cross(edge)
		if math32.Abs(denominator) < parallel {
			continue
		}

		w := a.Sub(ray.start)
		t := w.Cross(edge) / denominator
		u := w.Cross(ray.direction) / denominator

		if t < 0 || t > ray.distance || u < -slack || u > 1+slack {
			continue
		}

		if !ok || t < nearest {
			nearest = t
			index = i
			ok = true
		}
	}
	return
}
