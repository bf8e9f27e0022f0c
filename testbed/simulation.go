// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package testbed

import (
	"fmt"

	"github.com/SoftbearStudios/blast2d/explosions"
	"github.com/SoftbearStudios/blast2d/world"
	"github.com/SoftbearStudios/blast2d/world/sector"
	"go.uber.org/zap"
)

// Simulation moves the bodies of a scene and detonates an explosion periodically.
// Not safe for concurrent use.
type Simulation struct {
	config    Config
	world     *sector.World
	explosion explosions.Explosion
	logger    *zap.Logger

	tick       int
	candidates []*world.Body
}

// NewSimulation builds the scene and explosion described by config.
func NewSimulation(config Config, logger *zap.Logger) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w, err := BuildScene(config.Scene)
	if err != nil {
		return nil, fmt.Errorf("build scene %q: %w", config.Scene.Name, err)
	}

	explosion, err := NewExplosion(config.Explosion, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("scene built",
		zap.String("scene", config.Scene.Name),
		zap.Int64("seed", SceneSeed(config.Scene)),
		zap.Stringer("world", w),
		zap.String("explosion", config.Explosion.Kind),
	)

	return &Simulation{
		config:    config,
		world:     w,
		explosion: explosion,
		logger:    logger,
	}, nil
}

// NewExplosion creates the explosion described by config.
func NewExplosion(config ExplosionConfig, logger *zap.Logger) (explosions.Explosion, error) {
	opt := explosions.WithLogger(logger)
	switch config.Kind {
	case ExplosionRaycast:
		explosion, err := explosions.NewRaycastExplosion(config.Epicentre, config.Rays, config.Distance, opt)
		if err != nil {
			return nil, fmt.Errorf("raycast explosion: %w", err)
		}
		return explosion, nil
	case ExplosionProximity:
		return explosions.NewProximityExplosion(config.Epicentre, config.Distance, opt), nil
	default:
		return nil, fmt.Errorf("%w: explosion kind %q", ErrInvalidConfig, config.Kind)
	}
}

func (s *Simulation) World() *sector.World {
	return s.world
}

func (s *Simulation) Explosion() explosions.Explosion {
	return s.explosion
}

func (s *Simulation) Tick() int {
	return s.tick
}

// SetEpicentre moves the explosion for the next detonation.
func (s *Simulation) SetEpicentre(epicentre world.Vec2f) {
	s.explosion.SetEpicentre(epicentre)
	s.logger.Debug("epicentre moved", zap.Float32("x", epicentre.X), zap.Float32("y", epicentre.Y))
}

// Step advances the simulation by dt seconds.
func (s *Simulation) Step(dt float32) error {
	s.integrate(dt)

	s.tick++
	if s.tick%s.config.Explosion.Period == 0 {
		if err := s.Detonate(); err != nil {
			return fmt.Errorf("tick %d: %w", s.tick, err)
		}
	}
	return nil
}

// integrate moves dynamic bodies by their velocity. Collision response is not simulated.
func (s *Simulation) integrate(dt float32) {
	s.world.ForBodies(func(_ world.BodyID, body *world.Body) (_ bool) {
		if body.Static() {
			return
		}
		position := body.Position().AddScaled(body.Velocity, dt)
		orientation := body.Orientation() + world.Angle(body.AngularVelocity*dt)
		body.SetTransform(position, orientation)
		return
	})
	s.world.Reindex()
}

// Detonate applies the explosion to the bodies within its reach.
func (s *Simulation) Detonate() error {
	explosion := s.explosion
	s.candidates = s.world.BodiesInRadius(explosion.Epicentre(), s.config.Explosion.Distance, s.candidates[:0])

	explosion.Update(s.candidates)
	if err := explosion.ApplyBlastImpulse(s.config.Explosion.Power); err != nil {
		return err
	}

	s.logger.Info("detonated",
		zap.Int("tick", s.tick),
		zap.Int("candidates", len(s.candidates)),
		zap.Int("affected", len(explosion.Affected())),
	)
	return nil
}
