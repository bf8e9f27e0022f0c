// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

// AABB is an axis aligned bounding box given by its minimum and maximum corners.
type AABB struct {
	Min Vec2f `json:"min"`
	Max Vec2f `json:"max"`
}

// AABBFrom corner coordinates and dimensions.
func AABBFrom(x, y, width, height float32) AABB {
	return AABB{
		Min: Vec2f{X: x, Y: y},
		Max: Vec2f{X: x + width, Y: y + height},
	}
}

// SegmentAABB is the smallest AABB containing the segment ab.
func SegmentAABB(a, b Vec2f) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// pointAABB is a zero area AABB around a point, grown by Union.
func pointAABB(point Vec2f) AABB {
	return AABB{Min: point, Max: point}
}

func (a AABB) Width() float32 {
	return a.Max.X - a.Min.X
}

func (a AABB) Height() float32 {
	return a.Max.Y - a.Min.Y
}

func (a AABB) Center() Vec2f {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Intersects a and b are intersecting (touching counts)
func (a AABB) Intersects(b AABB) bool {
	return a.Max.X >= b.Min.X && a.Min.X <= b.Max.X && a.Max.Y >= b.Min.Y && a.Min.Y <= b.Max.Y
}

// Contains a fully contains b
func (a AABB) Contains(b AABB) bool {
	return a.Min.X <= b.Min.X && a.Min.Y <= b.Min.Y && a.Max.X >= b.Max.X && a.Max.Y >= b.Max.Y
}

// ContainsPoint point is inside or on the boundary of a
func (a AABB) ContainsPoint(point Vec2f) bool {
	return point.X >= a.Min.X && point.X <= a.Max.X && point.Y >= a.Min.Y && point.Y <= a.Max.Y
}

// IntersectsCircle a overlaps the circle at center with radius
func (a AABB) IntersectsCircle(center Vec2f, radius float32) bool {
	closest := Vec2f{
		X: clamp(center.X, a.Min.X, a.Max.X),
		Y: clamp(center.Y, a.Min.Y, a.Max.Y),
	}
	return closest.DistanceSquared(center) <= radius*radius
}

// Union smallest AABB containing a and b
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Expand grows a by margin on every side
func (a AABB) Expand(margin float32) AABB {
	m := Vec2f{X: margin, Y: margin}
	return AABB{Min: a.Min.Sub(m), Max: a.Max.Add(m)}
}
