// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package sector

import (
	"fmt"
	"github.com/SoftbearStudios/blast2d/world"
	"github.com/chewxy/math32"
)

const (
	DefaultSize  = 50        // world units
	maxLength    = 1<<15 - 1 // size units
	minSectorCap = 4         // Capacity to start sectors with
)

type (
	// World divides bodies into square sectors so radius queries only visit nearby bodies.
	// Bodies are bucketed by every sector their AABB overlaps. A body that moves must be
	// followed by Reindex before the next query.
	World struct {
		sectors  []sector             // sectors stores indices of entries in spatial partitions
		entries  []entry              // entries in insertion order, removed entries have a nil body
		bodyIDs  map[world.BodyID]int // bodyIDs stores where to find the entries
		count    int                  // cached number of bodies
		size     float32              // side of a sector
		width    uint16               // width is cross section in sector space
		logWidth uint8                // logWidth is log2(width)
		stamps   []uint32             // stamps dedupe entries spanning multiple sectors
		stamp    uint32               // stamp of the current query
		found    []int                // found is a reused buffer of entry indices
	}

	// sector is one bucket of the World
	sector struct {
		entries []int
	}

	entry struct {
		id   world.BodyID
		body *world.Body
	}
)

// New creates a World covering radius around the origin with sectors of side size.
// Bodies outside the radius are kept in the outermost sectors.
func New(radius, size float32) *World {
	if size <= 0 {
		size = DefaultSize
	}

	w := &World{
		bodyIDs: make(map[world.BodyID]int),
		size:    size,
	}

	// Resize allocates World.sectors
	w.Resize(radius)

	return w
}

func (w *World) Count() int {
	return w.count
}

// Add adds a body to the world and returns its id.
func (w *World) Add(body *world.Body) world.BodyID {
	id := world.AllocateBodyID(func(id world.BodyID) bool {
		_, ok := w.bodyIDs[id]
		return ok
	})

	index := len(w.entries)
	w.entries = append(w.entries, entry{id: id, body: body})
	w.stamps = append(w.stamps, 0)
	w.bodyIDs[id] = index
	w.count++

	w.insert(index)
	return id
}

// Remove removes a body by its id and returns if it was present.
// Its slot is reclaimed by the next Reindex.
func (w *World) Remove(id world.BodyID) bool {
	index, ok := w.bodyIDs[id]
	if !ok {
		return false
	}

	w.entries[index].body = nil
	delete(w.bodyIDs, id)
	w.count--
	return true
}

// Body gets a body by its id or nil.
func (w *World) Body(id world.BodyID) *world.Body {
	index, ok := w.bodyIDs[id]
	if !ok {
		return nil
	}
	return w.entries[index].body
}

// Bodies returns all bodies in insertion order.
func (w *World) Bodies() []*world.Body {
	bodies := make([]*world.Body, 0, w.count)
	w.ForBodies(func(_ world.BodyID, body *world.Body) (_ bool) {
		bodies = append(bodies, body)
		return
	})
	return bodies
}

// ForBodies iterates all bodies in insertion order and returns if stopped early.
func (w *World) ForBodies(callback func(id world.BodyID, body *world.Body) (stop bool)) bool {
	for i := range w.entries {
		e := &w.entries[i]
		if e.body == nil {
			continue
		}
		if callback(e.id, e.body) {
			return true
		}
	}
	return false
}

// Reindex rebuilds sector membership from the current body AABBs and
// compacts removed entries.
func (w *World) Reindex() {
	entries := w.entries[:0]
	for _, e := range w.entries {
		if e.body != nil {
			entries = append(entries, e)
		}
	}
	for i := len(entries); i < len(w.entries); i++ {
		w.entries[i] = entry{}
	}
	w.entries = entries
	w.stamps = make([]uint32, len(entries))
	w.stamp = 0

	for i := range w.sectors {
		w.sectors[i].entries = w.sectors[i].entries[:0]
	}

	for i, e := range w.entries {
		w.bodyIDs[e.id] = i
		w.insert(i)
	}
}

// Resize sets the radius covered by sectors and reindexes all bodies.
func (w *World) Resize(radius float32) {
	if radius < 0 {
		radius = 0
	}
	length := uint16(min(math32.Ceil(2*radius/w.size), maxLength))
	width := nextPowerOf2(max(length, 2))

	if width != w.width {
		w.width = width
		w.logWidth = log2(width)
		w.sectors = make([]sector, int(width)*int(width))
		for i := range w.sectors {
			w.sectors[i].entries = make([]int, 0, minSectorCap)
		}
	}

	w.Reindex()
}

// insert adds the entry to every sector its AABB overlaps.
func (w *World) insert(index int) {
	aabb := w.entries[index].body.AABB()
	minSectorID := w.clamp(vec2fSectorID(aabb.Min, w.size))
	maxSectorID := w.clamp(vec2fSectorID(aabb.Max, w.size))

	for y := minSectorID.y; y <= maxSectorID.y; y++ {
		for x := minSectorID.x; x <= maxSectorID.x; x++ {
			s := &w.sectors[sectorID{x: x, y: y}.sliceIndex(w.width)]
			s.entries = append(s.entries, index)
		}
	}
}

// clamp keeps a sectorID inside the grid.
func (w *World) clamp(id sectorID) sectorID {
	return id.min(-int16(w.width / 2)).max(int16(w.width/2 - 1))
}

// edge is true for the outermost sectors, which also hold everything outside the grid.
func (w *World) edge(id sectorID) bool {
	lo := -int16(w.width / 2)
	hi := int16(w.width/2 - 1)
	return id.x == lo || id.y == lo || id.x == hi || id.y == hi
}

func (w *World) String() string {
	occupied := 0
	busiest := -1
	for i := range w.sectors {
		n := len(w.sectors[i].entries)
		if n == 0 {
			continue
		}
		occupied++
		if busiest == -1 || n > len(w.sectors[busiest].entries) {
			busiest = i
		}
	}

	if busiest == -1 {
		return fmt.Sprintf("sector world: sectors: %d, bodies: %d", len(w.sectors), w.count)
	}
	id := sliceIndexSectorID(busiest, w.width, w.logWidth)
	return fmt.Sprintf("sector world: sectors: %d (%d occupied), bodies: %d, busiest: (%d, %d) with %d",
		len(w.sectors), occupied, w.count, id.x, id.y, len(w.sectors[busiest].entries))
}

