package ws

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"scoreboard-service/internal/logging"
	"scoreboard-service/internal/metrics"
	"scoreboard-service/internal/scoreboard"
)

const (
	// Buffer size for outbound updates per subscriber. Slow subscribers drop
	// updates rather than block the hub.
	subscriberBuffer = 16
	broadcastBuffer  = 64
)

// Update is the message pushed to websocket subscribers on each refresh.
type Update struct {
	Type       string                `json:"type"`
	Scoreboard scoreboard.Scoreboard `json:"scoreboard"`
	Timestamp  time.Time             `json:"timestamp"`
}

// Subscription is one subscriber's handle on the hub.
type Subscription struct {
	ID string
	C  chan Update
}

// Hub maintains the set of active subscribers and fans scoreboard updates out
// to them. All subscriber bookkeeping happens on the Run goroutine.
type Hub struct {
	logger  *slog.Logger
	metrics *metrics.Recorder

	subscribers map[string]*Subscription
	count       atomic.Int64
	register    chan *Subscription
	unregister  chan *Subscription
	broadcast   chan Update
	done        chan struct{}
	now         func() time.Time
}

// NewHub creates a Hub. Run must be started before subscribers attach.
func NewHub(logger *slog.Logger, recorder *metrics.Recorder) *Hub {
	return &Hub{
		logger:      logger,
		metrics:     recorder,
		subscribers: make(map[string]*Subscription),
		register:    make(chan *Subscription),
		unregister:  make(chan *Subscription),
		broadcast:   make(chan Update, broadcastBuffer),
		done:        make(chan struct{}),
		now:         time.Now,
	}
}

// Run processes registrations and broadcasts until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case sub := <-h.register:
			h.subscribers[sub.ID] = sub
			h.count.Store(int64(len(h.subscribers)))
			h.metrics.RecordWSClients(1)
			logging.Info(h.logger, "ws subscriber joined", slog.String("subscriber", sub.ID), slog.Int(logging.FieldCount, len(h.subscribers)))
		case sub := <-h.unregister:
			if _, ok := h.subscribers[sub.ID]; ok {
				delete(h.subscribers, sub.ID)
				h.count.Store(int64(len(h.subscribers)))
				close(sub.C)
				h.metrics.RecordWSClients(-1)
				logging.Info(h.logger, "ws subscriber left", slog.String("subscriber", sub.ID), slog.Int(logging.FieldCount, len(h.subscribers)))
			}
		case update := <-h.broadcast:
			for _, sub := range h.subscribers {
				select {
				case sub.C <- update:
				default:
					// Subscriber buffer full; drop this update for them.
					logging.Warn(h.logger, "ws subscriber lagging, update dropped", slog.String("subscriber", sub.ID))
				}
			}
		}
	}
}

// Subscribe registers a new subscriber and returns its handle.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		ID: uuid.New().String(),
		C:  make(chan Update, subscriberBuffer),
	}
	select {
	case h.register <- sub:
	case <-h.done:
		close(sub.C)
	}
	return sub
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscription) {
	select {
	case h.unregister <- sub:
	case <-h.done:
	}
}

// BroadcastScoreboard queues a scoreboard update for all subscribers. The hub
// drops the update when its broadcast queue is saturated.
func (h *Hub) BroadcastScoreboard(sb scoreboard.Scoreboard) {
	update := Update{
		Type:       "scoreboard",
		Scoreboard: sb,
		Timestamp:  h.now(),
	}
	select {
	case h.broadcast <- update:
	default:
		logging.Warn(h.logger, "ws broadcast queue full, update dropped")
	}
}

// SubscriberCount reports the number of attached subscribers.
func (h *Hub) SubscriberCount() int {
	return int(h.count.Load())
}

func (h *Hub) shutdown() {
	close(h.done)
	for id, sub := range h.subscribers {
		delete(h.subscribers, id)
		close(sub.C)
		h.metrics.RecordWSClients(-1)
	}
	h.count.Store(0)
	logging.Info(h.logger, "ws hub stopped")
}
