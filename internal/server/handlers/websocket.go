package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// wsConfig contains timing configuration for WebSocket connections.
type wsConfig struct {
	writeWait      time.Duration
	pongWait       time.Duration
	pingPeriod     time.Duration
	maxMessageSize int64
}

func defaultWSConfig() wsConfig {
	return wsConfig{
		writeWait:      10 * time.Second,
		pongWait:       60 * time.Second,
		pingPeriod:     (60 * time.Second * 9) / 10,
		maxMessageSize: 64 * 1024,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin checks are enforced by the CORS layer in front.
		return true
	},
}

// wsClient is one connected prediction-stream subscriber.
type wsClient struct {
	conn   *websocket.Conn
	send   chan []byte
	sub    *nats.Subscription
	logger *zap.Logger
}

// TrendStreamHandler upgrades the connection and forwards prediction
// events for the requested user from NATS to the client. The stream is
// push-only; incoming frames beyond control messages are discarded.
func TrendStreamHandler(natsConn *nats.Conn, eventsTopic string, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		if userID == "" {
			http.Error(w, "Missing user ID", http.StatusBadRequest)
			return
		}

		if natsConn == nil {
			http.Error(w, "Event stream unavailable", http.StatusServiceUnavailable)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		client := &wsClient{
			conn:   conn,
			send:   make(chan []byte, 64),
			logger: logger,
		}

		subject := fmt.Sprintf("%s.predictions.%s", eventsTopic, userID)
		sub, err := natsConn.Subscribe(subject, func(msg *nats.Msg) {
			select {
			case client.send <- msg.Data:
			default:
				// Slow consumer; drop rather than block the NATS callback.
			}
		})
		if err != nil {
			logger.Warn("failed to subscribe to prediction events",
				zap.String("subject", subject),
				zap.Error(err),
			)
			conn.Close()
			return
		}
		client.sub = sub

		logger.Info("prediction stream opened", zap.String("user_id", userID))

		go client.writePump()
		go client.readPump()
	}
}

// readPump consumes control frames and detects disconnects.
func (c *wsClient) readPump() {
	config := defaultWSConfig()

	defer c.close()

	c.conn.SetReadLimit(config.maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(config.pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(config.pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}
	}
}

// writePump forwards queued events to the peer and keeps it alive with
// pings.
func (c *wsClient) writePump() {
	config := defaultWSConfig()
	ticker := time.NewTicker(config.pingPeriod)

	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(config.writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(config.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// close unsubscribes from NATS and closes the connection. Safe to call
// from both pumps.
func (c *wsClient) close() {
	if c.sub != nil {
		c.sub.Unsubscribe()
		c.sub = nil
	}
	c.conn.Close()
}
