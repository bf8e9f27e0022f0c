// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rays

import (
	"fmt"
	"github.com/SoftbearStudios/blast2d/world"
)

// Ray is a directed segment from Start to End.
// Changing the start produces a new Ray (see WithStart).
type Ray struct {
	start     world.Vec2f
	direction world.Vec2f // unit length, or zero for a ray that never hits
	distance  float32

	info RayInformation
	hit  bool
}

// New creates a ray of distance along direction, which is normalized.
// A zero direction creates a ray that never hits anything.
func New(start, direction world.Vec2f, distance float32) Ray {
	if distance < 0 {
		distance = 0
	}
	return Ray{
		start:     start,
		direction: direction.Norm(),
		distance:  distance,
	}
}

func (ray Ray) Start() world.Vec2f {
	return ray.start
}

func (ray Ray) Direction() world.Vec2f {
	return ray.direction
}

func (ray Ray) Distance() float32 {
	return ray.distance
}

// End is the far end of the ray's segment.
func (ray Ray) End() world.Vec2f {
	return ray.start.AddScaled(ray.direction, ray.distance)
}

// WithStart returns the ray moved to start with the same direction and distance.
// The recorded intersection is dropped since it belonged to the old segment.
func (ray Ray) WithStart(start world.Vec2f) Ray {
	return Ray{
		start:     start,
		direction: ray.direction,
		distance:  ray.distance,
	}
}

// Project finds the nearest intersection over bodies.
// On equal distances the body iterated first wins.
func (ray Ray) Project(bodies []*world.Body) (nearest RayInformation, ok bool) {
	if ray.direction == (world.Vec2f{}) {
		return
	}

	segment := world.SegmentAABB(ray.start, ray.End())
	for _, body := range bodies {
		if body == nil || !body.AABB().Intersects(segment) {
			continue
		}

		info, hit := Intersect(ray, body)
		if hit && (!ok || info.distance < nearest.distance) {
			nearest = info
			ok = true
		}
	}
	return
}

// UpdateProjection stores the result of Project for Information.
func (ray *Ray) UpdateProjection(bodies []*world.Body) {
	ray.info, ray.hit = ray.Project(bodies)
}

// Information is the intersection recorded by the last UpdateProjection.
func (ray Ray) Information() (RayInformation, bool) {
	return ray.info, ray.hit
}

func (ray Ray) String() string {
	return fmt.Sprintf("ray{(%.2f, %.2f) towards %s for %.2f}", ray.start.X, ray.start.Y, ray.direction.Angle(), ray.distance)
}
