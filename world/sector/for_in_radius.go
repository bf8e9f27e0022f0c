// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package sector

import (
	"github.com/SoftbearStudios/blast2d/world"
	"sort"
)

// Iterates all the sectors in a radius and returns if stopped early
func (w *World) forSectorsInRadius(position world.Vec2f, radius float32, callback func(sectorID sectorID, sector *sector) (stop bool)) bool {
	r := world.Vec2f{X: radius, Y: radius}
	minSectorID := w.clamp(vec2fSectorID(position.Sub(r), w.size))
	maxSectorID := w.clamp(vec2fSectorID(position.Add(r), w.size))

	// Iterate y in outer for better locality of reference
	for y := minSectorID.y; y <= maxSectorID.y; y++ {
		for x := minSectorID.x; x <= maxSectorID.x; x++ {
			id := sectorID{x: x, y: y}
			if !w.edge(id) && !id.inRadius(position, radius, w.size) {
				continue
			}

			s := &w.sectors[id.sliceIndex(w.width)]
			if len(s.entries) == 0 {
				continue
			}

			if callback(id, s) {
				return true
			}
		}
	}

	return false
}

// ForBodiesInRadius iterates the bodies whose AABB touches the circle, in insertion order,
// and returns if stopped early.
// For reading only
func (w *World) ForBodiesInRadius(position world.Vec2f, radius float32, callback func(id world.BodyID, body *world.Body) (stop bool)) bool {
	w.stamp++
	if w.stamp == 0 {
		// Wrapped, old stamps could collide
		for i := range w.stamps {
			w.stamps[i] = 0
		}
		w.stamp = 1
	}

	found := w.found[:0]
	w.forSectorsInRadius(position, radius, func(_ sectorID, s *sector) bool {
		// Store entries in local variable so compiler knows it doesn't change
		entries := s.entries
		for _, index := range entries {
			if w.stamps[index] == w.stamp {
				continue
			}
			w.stamps[index] = w.stamp

			body := w.entries[index].body
			if body == nil || !body.AABB().IntersectsCircle(position, radius) {
				continue
			}
			found = append(found, index)
		}
		return false
	})
	w.found = found

	// Sectors visit bodies out of order
	sort.Ints(found)

	for _, index := range found {
		e := &w.entries[index]
		if callback(e.id, e.body) {
			return true
		}
	}
	return false
}

// BodiesInRadius appends the bodies ForBodiesInRadius would iterate to dst.
func (w *World) BodiesInRadius(position world.Vec2f, radius float32, dst []*world.Body) []*world.Body {
	w.ForBodiesInRadius(position, radius, func(_ world.BodyID, body *world.Body) (_ bool) {
		dst = append(dst, body)
		return
	})
	return dst
}
