// Package notify delivers state-change events to interested users.
// Delivery is best effort and at most once.
package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/abhidesai17/gigflow/internal/model"
)

// Emitter is the collaborator the hire coordinator signals on success.
type Emitter interface {
	Emit(ctx context.Context, event model.HiredEvent)
}

// Hub fans events out to per-user subscriber channels. It is an injected
// collaborator with an explicit lifecycle: Subscribe/Unsubscribe per
// connection, Close on shutdown.
type Hub struct {
	mu      sync.Mutex
	subs    map[uuid.UUID]map[chan model.HiredEvent]struct{}
	closed  bool
	bufSize int
}

func NewHub() *Hub {
	return &Hub{
		subs:    make(map[uuid.UUID]map[chan model.HiredEvent]struct{}),
		bufSize: 8,
	}
}

// Subscribe registers a channel for the user's events. The returned cancel
// func removes the subscription and closes the channel.
func (h *Hub) Subscribe(userID uuid.UUID) (<-chan model.HiredEvent, func()) {
	ch := make(chan model.HiredEvent, h.bufSize)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan model.HiredEvent]struct{})
	}
	h.subs[userID][ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if set, ok := h.subs[userID]; ok {
				if _, ok := set[ch]; ok {
					delete(set, ch)
					close(ch)
				}
				if len(set) == 0 {
					delete(h.subs, userID)
				}
			}
		})
	}
	return ch, cancel
}

// Emit delivers the event to the gig owner's and the hired bidder's
// subscribers. Sends never block; a slow subscriber drops the event.
func (h *Hub) Emit(_ context.Context, event model.HiredEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	for _, userID := range []uuid.UUID{event.OwnerID, event.BidderID} {
		for ch := range h.subs[userID] {
			select {
			case ch <- event:
			default:
			}
		}
	}
}

// Close shuts the hub down and closes every subscriber channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, set := range h.subs {
		for ch := range set {
			close(ch)
		}
	}
	h.subs = make(map[uuid.UUID]map[chan model.HiredEvent]struct{})
}
