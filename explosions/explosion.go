// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package explosions

import (
	"errors"
	"github.com/SoftbearStudios/blast2d/world"
	"go.uber.org/zap"
)

var ErrNotEvaluated = errors.New("explosion not evaluated since its epicentre was set")

// Explosion pushes bodies away from its epicentre.
// It is idle until Update, and becomes idle again when its epicentre moves.
type Explosion interface {
	// Update finds the affected bodies among bodies, which are only read.
	Update(bodies []*world.Body)
	// ApplyBlastImpulse delivers an impulse scaled by power to every affected body.
	// Returns ErrNotEvaluated while idle.
	ApplyBlastImpulse(power float32) error
	SetEpicentre(epicentre world.Vec2f)
	Epicentre() world.Vec2f
	// Evaluated is true between Update and the next SetEpicentre.
	Evaluated() bool
	// Affected returns the distinct bodies found by the last Update in order of discovery.
	Affected() []*world.Body
}

var (
	_ = Explosion(&RaycastExplosion{})
	_ = Explosion(&ProximityExplosion{})
)

// Option configures an explosion.
type Option func(o *options)

type options struct {
	logger *zap.Logger
}

// WithLogger logs impulses at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// blastImpulse points from epicentre to point and falls off with the inverse of their distance.
// A point at the epicentre has no direction, so it gets nothing.
func blastImpulse(epicentre, point world.Vec2f, power float32) (impulse world.Vec2f, ok bool) {
	delta := point.Sub(epicentre)
	distance := delta.Length()
	if distance == 0 {
		return
	}
	return delta.Mul(power / (distance * distance)), true
}

// appendUnique appends body to bodies if not present.
func appendUnique(bodies []*world.Body, body *world.Body) []*world.Body {
	for _, b := range bodies {
		if b == body {
			return bodies
		}
	}
	return append(bodies, body)
}
