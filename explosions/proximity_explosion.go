// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package explosions

import (
	"github.com/SoftbearStudios/blast2d/world"
	"go.uber.org/zap"
)

// ProximityExplosion affects every body whose centre is within proximity of the epicentre,
// regardless of what lies in between.
type ProximityExplosion struct {
	epicentre world.Vec2f
	proximity float32
	affected  []*world.Body
	evaluated bool
	options
}

func NewProximityExplosion(epicentre world.Vec2f, proximity float32, opts ...Option) *ProximityExplosion {
	return &ProximityExplosion{
		epicentre: epicentre,
		proximity: proximity,
		options:   newOptions(opts),
	}
}

func (explosion *ProximityExplosion) Update(bodies []*world.Body) {
	explosion.affected = explosion.affected[:0]
	r2 := explosion.proximity * explosion.proximity
	for _, body := range bodies {
		if body == nil || body.Position().DistanceSquared(explosion.epicentre) > r2 {
			continue
		}
		explosion.affected = appendUnique(explosion.affected, body)
	}
	explosion.evaluated = true
}

func (explosion *ProximityExplosion) ApplyBlastImpulse(power float32) error {
	if !explosion.evaluated {
		return ErrNotEvaluated
	}

	for _, body := range explosion.affected {
		impulse, ok := blastImpulse(explosion.epicentre, body.Position(), power)
		if !ok {
			continue
		}

		body.ApplyImpulseToCentre(impulse)
		explosion.logger.Debug("blast impulse",
			zap.Stringer("body", body),
			zap.Float32("impulse", impulse.Length()),
		)
	}
	return nil
}

func (explosion *ProximityExplosion) SetEpicentre(epicentre world.Vec2f) {
	explosion.epicentre = epicentre
	explosion.affected = explosion.affected[:0]
	explosion.evaluated = false
}

func (explosion *ProximityExplosion) Epicentre() world.Vec2f {
	return explosion.epicentre
}

func (explosion *ProximityExplosion) Evaluated() bool {
	return explosion.evaluated
}

func (explosion *ProximityExplosion) Affected() []*world.Body {
	return append([]*world.Body(nil), explosion.affected...)
}

func (explosion *ProximityExplosion) Proximity() float32 {
	return explosion.proximity
}
