// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"github.com/chewxy/math32"
	"sort"
)

// Polygon is a convex Shape with vertices in counterclockwise order around its body's position.
type Polygon struct {
	shapeBase
	vertices []Vec2f
	normals  []Vec2f // normals[i] is the outward normal of the edge starting at vertices[i]
}

var _ = Shape(&Polygon{})

// NewPolygon creates the convex hull of points.
// Fewer than 3 non collinear points result in a degenerate polygon with no area.
func NewPolygon(points ...Vec2f) *Polygon {
	vertices := convexHull(points)
	return &Polygon{
		shapeBase: shapeBase{orientation: Identity},
		vertices:  vertices,
		normals:   edgeNormals(vertices),
	}
}

// NewBox creates a rectangle from its half extents.
func NewBox(halfWidth, halfHeight float32) *Polygon {
	halfWidth = math32.Abs(halfWidth)
	halfHeight = math32.Abs(halfHeight)
	return NewPolygon(
		Vec2f{X: -halfWidth, Y: -halfHeight},
		Vec2f{X: halfWidth, Y: -halfHeight},
		Vec2f{X: halfWidth, Y: halfHeight},
		Vec2f{X: -halfWidth, Y: halfHeight},
	)
}

// NewRegularPolygon creates a polygon of sides (at least 3) with vertices radius away from its center.
func NewRegularPolygon(radius float32, sides int) *Polygon {
	if sides < 3 {
		sides = 3
	}
	points := make([]Vec2f, sides)
	step := 2 * math32.Pi / float32(sides)
	for i := range points {
		points[i] = Angle(step * (float32(i) + 0.5)).Vec2f().Mul(radius)
	}
	return NewPolygon(points...)
}

// Vertices in local space. Must not be modified.
func (polygon *Polygon) Vertices() []Vec2f {
	return polygon.vertices
}

// Normals in local space. Must not be modified.
func (polygon *Polygon) Normals() []Vec2f {
	return polygon.normals
}

// WorldVertices returns the vertices in world space.
func (polygon *Polygon) WorldVertices() []Vec2f {
	transform := polygon.transform()
	vertices := make([]Vec2f, len(polygon.vertices))
	for i, v := range polygon.vertices {
		vertices[i] = transform.Apply(v)
	}
	return vertices
}

// Edge returns the world space edge starting at vertex i.
func (polygon *Polygon) Edge(i int) (start, end Vec2f) {
	transform := polygon.transform()
	j := i + 1
	if j == len(polygon.vertices) {
		j = 0
	}
	return transform.Apply(polygon.vertices[i]), transform.Apply(polygon.vertices[j])
}

// CalcMass integrates a triangle fan around the local origin.
func (polygon *Polygon) CalcMass(density float32) (MassData, error) {
	if err := checkDensity(density); err != nil {
		return MassData{}, err
	}

	const k = 1.0 / 3.0
	var (
		area     float32
		inertia  float32
		centroid Vec2f
	)

	for i, p1 := range polygon.vertices {
		p2 := polygon.vertices[(i+1)%len(polygon.vertices)]

		d := p1.Cross(p2)
		triangleArea := 0.5 * d
		area += triangleArea

		weight := triangleArea * k
		centroid = centroid.AddScaled(p1.Add(p2), weight)

		intX2 := p1.X*p1.X + p2.X*p1.X + p2.X*p2.X
		intY2 := p1.Y*p1.Y + p2.Y*p1.Y + p2.Y*p2.Y
		inertia += 0.25 * k * d * (intX2 + intY2)
	}

	if area <= epsilon {
		return MassData{}, nil
	}

	return massData(density*area, density*inertia, centroid.Div(area)), nil
}

func (polygon *Polygon) CreateAABB() AABB {
	transform := polygon.transform()
	if len(polygon.vertices) == 0 {
		return pointAABB(transform.Position)
	}

	aabb := pointAABB(transform.Apply(polygon.vertices[0]))
	for _, v := range polygon.vertices[1:] {
		aabb = aabb.Union(pointAABB(transform.Apply(v)))
	}
	return aabb
}

func (polygon *Polygon) IsPointInside(point Vec2f) bool {
	if len(polygon.vertices) < 3 {
		return false
	}

	local := polygon.transform().Inverse(point)
	for i, normal := range polygon.normals {
		if normal.Dot(local.Sub(polygon.vertices[i])) > 0 {
			return false
		}
	}
	return true
}

// convexHull returns the hull of points in counterclockwise order without collinear points.
func convexHull(points []Vec2f) []Vec2f {
	sorted := make([]Vec2f, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	// Remove duplicates
	unique := sorted[:0]
	for i, p := range sorted {
		if i == 0 || p != unique[len(unique)-1] {
			unique = append(unique, p)
		}
	}
	if len(unique) < 3 {
		return unique
	}

	turn := func(o, a, b Vec2f) float32 {
		return a.Sub(o).Cross(b.Sub(o))
	}

	hull := make([]Vec2f, 0, len(unique)*2)

	// Lower hull
	for _, p := range unique {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper hull
	lower := len(hull) + 1
	for i := len(unique) - 2; i >= 0; i-- {
		p := unique[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Last point repeats the first
	return hull[:len(hull)-1]
}

func edgeNormals(vertices []Vec2f) []Vec2f {
	normals := make([]Vec2f, len(vertices))
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		normals[i] = next.Sub(v).RotN90().Norm()
	}
	return normals
}
