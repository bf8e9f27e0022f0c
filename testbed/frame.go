// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package testbed

import (
	"github.com/SoftbearStudios/blast2d/explosions"
	"github.com/SoftbearStudios/blast2d/world"
)

type (
	// Frame is a snapshot of the simulation for viewers.
	Frame struct {
		Tick      int            `json:"tick"`
		Epicentre world.Vec2f    `json:"epicentre"`
		Bodies    []BodyFrame    `json:"bodies"`
		Rays      []RayFrame     `json:"rays,omitempty"`
		Contacts  []world.Vec2f  `json:"contacts,omitempty"`
		Affected  []world.BodyID `json:"affected,omitempty"`
	}

	BodyFrame struct {
		ID          world.BodyID  `json:"id"`
		Position    world.Vec2f   `json:"position"`
		Orientation world.Angle   `json:"orientation"`
		Static      bool          `json:"static,omitempty"`
		Radius      float32       `json:"radius,omitempty"`
		Vertices    []world.Vec2f `json:"vertices,omitempty"` // world space
		AABB        *world.AABB   `json:"aabb,omitempty"`
	}

	RayFrame struct {
		Start world.Vec2f  `json:"start"`
		End   world.Vec2f  `json:"end"`
		Hit   *world.Vec2f `json:"hit,omitempty"`
	}

	// scatterer is implemented by explosions that cast rays.
	scatterer interface {
		Scatter() *explosions.RayScatter
	}
)

// Frame snapshots the simulation, including what the draw config enables.
func (s *Simulation) Frame() Frame {
	draw := s.config.Draw
	frame := Frame{
		Tick:      s.tick,
		Epicentre: s.explosion.Epicentre(),
		Bodies:    make([]BodyFrame, 0, s.world.Count()),
	}

	ids := make(map[*world.Body]world.BodyID, s.world.Count())
	s.world.ForBodies(func(id world.BodyID, body *world.Body) (_ bool) {
		ids[body] = id

		b := BodyFrame{
			ID:          id,
			Position:    body.Position(),
			Orientation: body.Orientation(),
			Static:      body.Static(),
		}
		if draw.Shapes {
			switch shape := body.Shape().(type) {
			case *world.Circle:
				b.Radius = shape.Radius()
			case *world.Polygon:
				b.Vertices = shape.WorldVertices()
			}
		}
		if draw.AABBs {
			aabb := body.AABB()
			b.AABB = &aabb
		}
		frame.Bodies = append(frame.Bodies, b)
		return
	})

	if !s.explosion.Evaluated() {
		return frame
	}

	for _, body := range s.explosion.Affected() {
		if id, ok := ids[body]; ok {
			frame.Affected = append(frame.Affected, id)
		}
	}

	if sc, ok := s.explosion.(scatterer); ok && (draw.Rays || draw.Contacts) {
		for _, ray := range sc.Scatter().Rays() {
			info, hit := ray.Information()
			if draw.Rays {
				r := RayFrame{Start: ray.Start(), End: ray.End()}
				if hit {
					point := info.Point()
					r.Hit = &point
				}
				frame.Rays = append(frame.Rays, r)
			}
			if draw.Contacts && hit {
				frame.Contacts = append(frame.Contacts, info.Point())
			}
		}
	}

	return frame
}
