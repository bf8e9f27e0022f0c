// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

// Overlaps does a separating axis test between the shapes of two bodies.
// Touching counts as overlapping.
func Overlaps(a, b *Body) bool {
	// Cheap rejection first
	if !a.aabb.Intersects(b.aabb) {
		return false
	}

	for _, axes := range [2][]Vec2f{separatingAxes(a.shape, b.shape), separatingAxes(b.shape, a.shape)} {
		for _, axis := range axes {
			minimum, maximum := project(a.shape, axis)
			otherMin, otherMax := project(b.shape, axis)

			// Not colliding
			if minimum > otherMax || otherMin > maximum {
				return false
			}
		}
	}

	return true
}

// separatingAxes returns the candidate axes contributed by shape when tested against other.
func separatingAxes(shape, other Shape) []Vec2f {
	switch s := shape.(type) {
	case *Polygon:
		axes := make([]Vec2f, len(s.normals))
		for i, normal := range s.normals {
			axes[i] = s.orientation.Mul(normal)
		}
		return axes
	case *Circle:
		center := s.Center()
		switch o := other.(type) {
		case *Circle:
			return []Vec2f{o.Center().Sub(center).Norm()}
		case *Polygon:
			// Axis towards the nearest vertex covers the voronoi regions of the corners
			vertices := o.WorldVertices()
			if len(vertices) == 0 {
				return nil
			}
			nearest := vertices[0]
			for _, v := range vertices[1:] {
				if v.DistanceSquared(center) < nearest.DistanceSquared(center) {
					nearest = v
				}
			}
			return []Vec2f{nearest.Sub(center).Norm()}
		}
	}
	return nil
}

// project returns the interval covered by shape along axis.
func project(shape Shape, axis Vec2f) (minimum, maximum float32) {
	switch s := shape.(type) {
	case *Circle:
		d := s.Center().Dot(axis)
		return d - s.radius, d + s.radius
	case *Polygon:
		vertices := s.WorldVertices()
		if len(vertices) == 0 {
			d := s.transform().Position.Dot(axis)
			return d, d
		}

		minimum = vertices[0].Dot(axis)
		maximum = minimum
		for _, v := range vertices[1:] {
			d := v.Dot(axis)
			minimum = min(minimum, d)
			maximum = max(maximum, d)
		}
	}
	return
}
