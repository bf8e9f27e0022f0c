// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

// Motion is the dynamic state impulses are delivered to.
// Integrating it over time is left to the simulation.
type Motion struct {
	Velocity        Vec2f    `json:"velocity"`
	AngularVelocity float32  `json:"angularVelocity"`
	Mass            MassData `json:"mass"`
}

// ApplyImpulse changes velocity by impulse applied at contact, an offset from the body position.
func (motion *Motion) ApplyImpulse(impulse, contact Vec2f) {
	motion.Velocity = motion.Velocity.AddScaled(impulse, motion.Mass.InvMass)
	motion.AngularVelocity += motion.Mass.InvInertia * contact.Cross(impulse)
}

// ApplyImpulseToCentre changes only linear velocity.
func (motion *Motion) ApplyImpulseToCentre(impulse Vec2f) {
	motion.Velocity = motion.Velocity.AddScaled(impulse, motion.Mass.InvMass)
}
