// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package explosions

import (
	"errors"
	"github.com/SoftbearStudios/blast2d/rays"
	"github.com/SoftbearStudios/blast2d/world"
)

var ErrNegativeRayCount = errors.New("negative ray count")

// RayScatter casts rays in every direction from an epicentre.
type RayScatter struct {
	epicentre world.Vec2f
	rays      []rays.Ray
}

func NewRayScatter(epicentre world.Vec2f) *RayScatter {
	return &RayScatter{epicentre: epicentre}
}

// CastRays replaces the rays with n rays of distance, spaced 2π/n apart starting along +X.
// n = 0 leaves no rays.
func (scatter *RayScatter) CastRays(n int, distance float32) error {
	if n < 0 {
		return ErrNegativeRayCount
	}

	scatter.rays = scatter.rays[:0]
	step := 2 * world.Pi / world.Angle(max(n, 1))
	for i := 0; i < n; i++ {
		direction := (step * world.Angle(i)).Vec2f()
		scatter.rays = append(scatter.rays, rays.New(scatter.epicentre, direction, distance))
	}
	return nil
}

// UpdateRays projects every ray against bodies, which are only read.
func (scatter *RayScatter) UpdateRays(bodies []*world.Body) {
	for i := range scatter.rays {
		scatter.rays[i].UpdateProjection(bodies)
	}
}

// Rays returns a copy of the rays.
func (scatter *RayScatter) Rays() []rays.Ray {
	return append([]rays.Ray(nil), scatter.rays...)
}

func (scatter *RayScatter) Len() int {
	return len(scatter.rays)
}

// Hits appends the intersection of every ray that hit something to dst, in ray order.
func (scatter *RayScatter) Hits(dst []rays.RayInformation) []rays.RayInformation {
	for _, ray := range scatter.rays {
		if info, ok := ray.Information(); ok {
			dst = append(dst, info)
		}
	}
	return dst
}

func (scatter *RayScatter) Epicentre() world.Vec2f {
	return scatter.epicentre
}

// SetEpicentre moves every ray to start at epicentre, keeping directions and distances.
// Intersections are cleared until the next UpdateRays.
func (scatter *RayScatter) SetEpicentre(epicentre world.Vec2f) {
	scatter.epicentre = epicentre
	for i, ray := range scatter.rays {
		scatter.rays[i] = ray.WithStart(epicentre)
	}
}

