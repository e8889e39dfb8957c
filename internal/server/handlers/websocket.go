// internal/server/handlers/websocket.go

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
)

// calendarClient bridges calendar NATS events to one WebSocket connection
type calendarClient struct {
	conn          *websocket.Conn
	send          chan []byte
	logger        *slog.Logger
	subscriptions []*nats.Subscription
	closeOnce     sync.Once
}

// WebSocketConfig contains configuration for WebSocket connections
type WebSocketConfig struct {
	// Time allowed to write a message to the peer
	WriteWait time.Duration

	// Time allowed to read the next pong message from the peer
	PongWait time.Duration

	// Send pings to peer with this period
	PingPeriod time.Duration

	// Maximum message size allowed from peer
	MaxMessageSize int64
}

// DefaultWebSocketConfig returns the default WebSocket configuration
func DefaultWebSocketConfig() WebSocketConfig {
	return WebSocketConfig{
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		PingPeriod:     (60 * time.Second * 9) / 10,
		MaxMessageSize: 64 * 1024,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, this should be more restrictive
		return true
	},
}

// CalendarWebSocketHandler streams calendar lifecycle events (generated
// calendars, status changes, engagement updates) to dashboard clients.
func CalendarWebSocketHandler(natsConn *nats.Conn, eventsTopic string, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("failed to upgrade to WebSocket", "error", err)
			return
		}

		client := &calendarClient{
			conn:   conn,
			send:   make(chan []byte, 256),
			logger: logger,
		}

		// Subscribe before the pumps start so teardown never races an
		// in-flight append to the subscription list.
		if err := client.subscribe(natsConn, eventsTopic); err != nil {
			logger.Warn("failed to subscribe to calendar events", "error", err)
			client.close()
			return
		}

		go client.writePump()
		go client.readPump()

		welcome, _ := json.Marshal(map[string]interface{}{
			"type": "welcome",
			"time": time.Now(),
		})
		client.send <- welcome

		logger.Info("new calendar WebSocket connection", "remote", r.RemoteAddr)
	}
}

// subscribe wires all calendar event topics into the send channel
func (c *calendarClient) subscribe(natsConn *nats.Conn, eventsTopic string) error {
	sub, err := natsConn.Subscribe(fmt.Sprintf("%s.>", eventsTopic), func(msg *nats.Msg) {
		select {
		case c.send <- msg.Data:
		default:
			// Slow consumer; drop the event rather than block NATS delivery.
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to calendar events: %w", err)
	}

	c.subscriptions = append(c.subscriptions, sub)
	return nil
}

// readPump consumes control frames; clients do not send calendar data
func (c *calendarClient) readPump() {
	config := DefaultWebSocketConfig()

	defer c.close()

	c.conn.SetReadLimit(config.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(config.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(config.PongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("WebSocket error", "error", err)
			}
			break
		}
	}
}

// writePump pumps events from the send channel to the WebSocket connection
func (c *calendarClient) writePump() {
	config := DefaultWebSocketConfig()
	ticker := time.NewTicker(config.PingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// close unsubscribes from NATS and closes the connection. Both pumps defer
// it, so the teardown runs exactly once.
func (c *calendarClient) close() {
	c.closeOnce.Do(func() {
		for _, sub := range c.subscriptions {
			sub.Unsubscribe()
		}
		c.subscriptions = nil

		c.conn.Close()
	})
}
