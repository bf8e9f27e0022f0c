// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package explosions

import (
	"github.com/SoftbearStudios/blast2d/rays"
	"github.com/SoftbearStudios/blast2d/world"
	"go.uber.org/zap"
)

// RaycastExplosion affects bodies in line of sight of the epicentre.
// Every ray that hits delivers an impulse at the point it hit, so a body
// struck by several rays receives several impulses.
type RaycastExplosion struct {
	scatter   *RayScatter
	hits      []rays.RayInformation
	affected  []*world.Body
	evaluated bool
	options
}

// NewRaycastExplosion creates an idle explosion casting rays of distance.
func NewRaycastExplosion(epicentre world.Vec2f, rayCount int, distance float32, opts ...Option) (*RaycastExplosion, error) {
	scatter := NewRayScatter(epicentre)
	if err := scatter.CastRays(rayCount, distance); err != nil {
		return nil, err
	}
	return &RaycastExplosion{
		scatter: scatter,
		options: newOptions(opts),
	}, nil
}

func (explosion *RaycastExplosion) Update(bodies []*world.Body) {
	explosion.scatter.UpdateRays(bodies)
	explosion.hits = explosion.scatter.Hits(explosion.hits[:0])

	explosion.affected = explosion.affected[:0]
	for _, hit := range explosion.hits {
		explosion.affected = appendUnique(explosion.affected, hit.Body())
	}
	explosion.evaluated = true
}

func (explosion *RaycastExplosion) ApplyBlastImpulse(power float32) error {
	if !explosion.evaluated {
		return ErrNotEvaluated
	}

	epicentre := explosion.scatter.Epicentre()
	for _, hit := range explosion.hits {
		impulse, ok := blastImpulse(epicentre, hit.Point(), power)
		if !ok {
			continue
		}

		body := hit.Body()
		body.ApplyImpulse(impulse, hit.Point().Sub(body.Position()))
		explosion.logger.Debug("blast impulse",
			zap.Stringer("body", body),
			zap.Float32("distance", hit.Distance()),
			zap.Float32("impulse", impulse.Length()),
		)
	}
	return nil
}

func (explosion *RaycastExplosion) SetEpicentre(epicentre world.Vec2f) {
	explosion.scatter.SetEpicentre(epicentre)
	explosion.hits = explosion.hits[:0]
	explosion.affected = explosion.affected[:0]
	explosion.evaluated = false
}

func (explosion *RaycastExplosion) Epicentre() world.Vec2f {
	return explosion.scatter.Epicentre()
}

func (explosion *RaycastExplosion) Evaluated() bool {
	return explosion.evaluated
}

func (explosion *RaycastExplosion) Affected() []*world.Body {
	return append([]*world.Body(nil), explosion.affected...)
}

// Distance is how far the rays reach.
func (explosion *RaycastExplosion) Distance() float32 {
	rs := explosion.scatter.rays
	if len(rs) == 0 {
		return 0
	}
	return rs[0].Distance()
}

// Scatter exposes the rays for drawing. Callers must not cast or move them.
func (explosion *RaycastExplosion) Scatter() *RayScatter {
	return explosion.scatter
}
