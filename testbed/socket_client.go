// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package testbed

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 5 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 8) / 10

	// If more than this many frames are queued for sending, the
	// socket is congested and frames may be dropped
	socketCongestionThreshold = 5

	// Allows ~0.5 seconds of frames to backup before close
	socketBufferSize = 16

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	HandshakeTimeout: time.Second,
	ReadBufferSize:   maxMessageSize,
	WriteBufferSize:  4096,
}

// SocketClient is a middleman between the websocket connection and the hub.
type SocketClient struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	once    sync.Once
	counter int // counts up every send
	session string
	logger  *zap.Logger
}

// NewSocketClient creates a SocketClient from a connection with a new session id.
func NewSocketClient(conn *websocket.Conn, logger *zap.Logger) *SocketClient {
	session := uuid.NewString()
	return &SocketClient{
		conn:    conn,
		send:    make(chan []byte, socketBufferSize),
		session: session,
		logger:  logger.With(zap.String("session", session)),
	}
}

func (client *SocketClient) Session() string {
	return client.session
}

func (client *SocketClient) Close() {
	close(client.send)
}

func (client *SocketClient) Destroy() {
	client.once.Do(func() {
		if client.hub != nil {
			client.hub.Unregister(client)
		}
		_ = client.conn.Close()
	})
}

func (client *SocketClient) Init(hub *Hub) {
	client.hub = hub
	go client.writePump()
	go client.readPump()
}

func (client *SocketClient) Send(frame []byte) {
	// How many frames there are in excess of a reasonable amount
	congestion := len(client.send) - socketCongestionThreshold

	// The closer the buffer is to being full, the more frames
	// we drop on the floor (to give the socket a chance to
	// catch up)
	client.counter++
	if congestion > 1 && client.counter%congestion != 0 {
		client.logger.Debug("dropping frame due to congestion", zap.Int("congestion", congestion))
		return
	}

	select {
	case client.send <- frame:
	default:
		client.logger.Warn("socket is not responsive")
		client.Destroy()
	}
}

func (client *SocketClient) readPump() {
	defer client.Destroy()
	client.conn.SetReadLimit(maxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, r, err := client.conn.NextReader()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				client.logger.Warn("close error", zap.Error(err))
			}
			return
		}

		var in Inbound
		if err = json.NewDecoder(r).Decode(&in); err != nil {
			client.logger.Warn("unmarshal error", zap.Error(err))
			return
		}

		client.hub.Submit(client, in)
	}
}

func (client *SocketClient) writePump() {
	pingTicker := time.NewTicker(pingPeriod)

	defer func() {
		pingTicker.Stop()
		client.Destroy()
	}()

	for {
		select {
		case frame, ok := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				_ = client.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			if err := client.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				client.logger.Debug("send error", zap.Error(err))
				return
			}
		case <-pingTicker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
