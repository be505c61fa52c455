package ws

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"scoreboard-service/internal/logging"
)

const (
	// Time allowed to write an update to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to the peer with this period (must be less than pongWait).
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from a peer; subscribers only listen.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Scoreboard updates are public reads; any origin may subscribe.
		return true
	},
}

// Handler upgrades HTTP connections and streams hub updates to them. Hub
// shutdown closes every subscription channel, which unwinds the write pumps.
type Handler struct {
	hub    *Hub
	logger *slog.Logger
}

// NewHandler constructs a websocket Handler.
func NewHandler(hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

// ServeHTTP upgrades the connection and starts the read/write pumps.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn(h.logger, "ws upgrade failed", slog.Any("err", err))
		return
	}

	sub := h.hub.Subscribe()
	logging.Info(h.logger, "ws connection established", slog.String("subscriber", sub.ID))

	go h.writePump(conn, sub)
	go h.readPump(conn, sub)
}

// writePump pushes hub updates and pings to the peer until the subscription
// closes or a write fails.
func (h *Handler) writePump(conn *websocket.Conn, sub *Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case update, ok := <-sub.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(update); err != nil {
				logging.Warn(h.logger, "ws write failed", slog.String("subscriber", sub.ID), slog.Any("err", err))
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection to process control frames and detect closes.
func (h *Handler) readPump(conn *websocket.Conn, sub *Subscription) {
	defer func() {
		h.hub.Unsubscribe(sub)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warn(h.logger, "ws unexpected close", slog.String("subscriber", sub.ID), slog.Any("err", err))
			}
			return
		}
	}
}
