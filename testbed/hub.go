// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package testbed

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Hub runs a Simulation on a ticker and broadcasts its frames to the registered clients.
type Hub struct {
	sim    *Simulation
	logger *zap.Logger

	clients map[Client]struct{}

	// frameJSON is the latest encoded frame, served atomically by HTTP
	frameJSON atomic.Value

	// Inbound channels
	inbound chan SignedInbound
	// register is unbuffered so a client is in clients once Register returns,
	// ahead of any Unregister it causes
	register   chan Client
	unregister chan Client

	// done is closed when Run returns
	done chan struct{}

	tickPeriod time.Duration
}

func NewHub(sim *Simulation, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		sim:        sim,
		logger:     logger,
		clients:    make(map[Client]struct{}),
		inbound:    make(chan SignedInbound, 16),
		register:   make(chan Client),
		unregister: make(chan Client, 16),
		done:       make(chan struct{}),
		tickPeriod: time.Second / time.Duration(sim.config.TickRate),
	}
}

// Run steps the simulation until ctx is cancelled. It must only be called once.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)

	ticker := time.NewTicker(h.tickPeriod)
	defer ticker.Stop()

	dt := float32(h.tickPeriod.Seconds())
	h.publish()

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				client.Close()
				delete(h.clients, client)
			}
			h.logger.Info("hub stopped", zap.Int("tick", h.sim.Tick()))
			return nil
		case client := <-h.register:
			h.clients[client] = struct{}{}
			client.Init(h)
			h.logger.Info("client registered", zap.String("session", client.Session()), zap.Int("clients", len(h.clients)))

			if buf, ok := h.frameJSON.Load().([]byte); ok {
				client.Send(buf)
			}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; !ok {
				break
			}
			delete(h.clients, client)
			client.Close()
			h.logger.Info("client unregistered", zap.String("session", client.Session()), zap.Int("clients", len(h.clients)))
		case in := <-h.inbound:
			// Read all messages currently in the channel
			n := len(h.inbound)
			for {
				h.handle(in)
				if n--; n < 0 {
					break
				}
				in = <-h.inbound
			}
		case <-ticker.C:
			if err := h.sim.Step(dt); err != nil {
				h.logger.Error("step", zap.Error(err))
			}
			h.publish()
		}
	}
}

func (h *Hub) handle(in SignedInbound) {
	if _, ok := h.clients[in.Client]; !ok {
		// Old message from an unregistered client
		return
	}

	if in.Epicentre != nil {
		h.sim.SetEpicentre(*in.Epicentre)
	}
	if in.Detonate {
		if err := h.sim.Detonate(); err != nil {
			h.logger.Error("detonate", zap.String("session", in.Client.Session()), zap.Error(err))
		}
	}
}

// publish encodes the current frame and sends it to every client.
func (h *Hub) publish() {
	buf, err := json.Marshal(h.sim.Frame())
	if err != nil {
		h.logger.Error("encode frame", zap.Error(err))
		return
	}
	h.frameJSON.Store(buf)

	for client := range h.clients {
		client.Send(buf)
	}
}

// Register adds a client unless the hub stopped or ctx is done.
// Returns true once the hub goroutine has added the client.
func (h *Hub) Register(ctx context.Context, client Client) bool {
	select {
	case <-h.done:
		return false
	default:
	}

	select {
	case h.register <- client:
		return true
	case <-h.done:
	case <-ctx.Done():
	}
	return false
}

// Unregister removes a client without blocking, even from the hub goroutine.
func (h *Hub) Unregister(client Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	default:
		go func() {
			select {
			case h.unregister <- client:
			case <-h.done:
			}
		}()
	}
}

// Submit queues a request from client unless the hub stopped.
func (h *Hub) Submit(client Client, in Inbound) {
	select {
	case h.inbound <- SignedInbound{Client: client, Inbound: in}:
	case <-h.done:
	}
}
