// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rays

import (
	"github.com/SoftbearStudios/blast2d/world"
)

// IndexCircle is the feature index of a hit on a circle, which has no edges.
const IndexCircle = -1

// RayInformation records where a ray struck a body. It is never modified once created.
type RayInformation struct {
	body     *world.Body
	point    world.Vec2f
	index    int
	distance float32
}

// Body that was struck.
func (info RayInformation) Body() *world.Body {
	return info.body
}

// Point of intersection in world space.
func (info RayInformation) Point() world.Vec2f {
	return info.point
}

// Index of the polygon vertex starting the struck edge, or IndexCircle.
func (info RayInformation) Index() int {
	return info.index
}

// Distance from the ray's start to Point.
func (info RayInformation) Distance() float32 {
	return info.distance
}
