// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package testbed

import (
	"github.com/SoftbearStudios/blast2d/world"
)

// Client is a viewer on the Hub.
type Client interface {
	// Init is called once by the hub goroutine when the client is registered.
	Init(hub *Hub)

	// Close is called by (only) the hub goroutine when the client is unregistered.
	Close()

	// Send is how the hub sends an encoded frame to the client. It must not block.
	Send(frame []byte)

	// Destroy marks the client for destruction. It must unregister from the hub only once (no matter how many
	// times it is called; use a sync.Once if necessary). It may be called anywhere.
	Destroy()

	// Session identifies the client in logs.
	Session() string
}

// Inbound is a request from a viewer.
type Inbound struct {
	// Epicentre moves the explosion if set.
	Epicentre *world.Vec2f `json:"epicentre,omitempty"`
	// Detonate triggers a detonation without waiting for the period.
	Detonate bool `json:"detonate,omitempty"`
}

// SignedInbound is an Inbound and the Client that sent it.
type SignedInbound struct {
	Client Client
	Inbound
}
