// Package sse implements the in-process broker behind the realtime
// notification stream. Each connected client owns a buffered channel;
// publishers never block on slow consumers.
package sse

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Event is a single server-sent event addressed to one user.
type Event struct {
	Type   string          `json:"type"`
	Data   json.RawMessage `json:"data"`
	UserID uuid.UUID       `json:"-"`
}

// subscriberBuffer is the per-client channel depth. A client that falls this
// far behind misses events; the REST listing remains the source of truth.
const subscriberBuffer = 16

// Broker fans events out to the SSE subscribers of each user.
type Broker struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[chan Event]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		clients: make(map[uuid.UUID]map[chan Event]struct{}),
	}
}

// Subscribe registers a new client for userID and returns its event channel.
// The caller must call Unsubscribe with the same channel on teardown.
func (b *Broker) Subscribe(userID uuid.UUID) chan Event {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.clients[userID]; !ok {
		b.clients[userID] = make(map[chan Event]struct{})
	}
	b.clients[userID][ch] = struct{}{}

	slog.Debug("sse subscriber registered", "user_id", userID, "subscribers", len(b.clients[userID]))
	return ch
}

// Unsubscribe removes a client channel and closes it.
func (b *Broker) Unsubscribe(userID uuid.UUID, ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	userClients, ok := b.clients[userID]
	if !ok {
		return
	}
	if _, ok := userClients[ch]; !ok {
		return
	}

	delete(userClients, ch)
	close(ch)
	if len(userClients) == 0 {
		delete(b.clients, userID)
	}

	slog.Debug("sse subscriber removed", "user_id", userID, "subscribers", len(userClients))
}

// Publish delivers an event to every subscriber of the target user. Subscribers
// whose buffers are full are skipped rather than blocking the publisher.
func (b *Broker) Publish(userID uuid.UUID, eventType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal sse payload", "type", eventType, "error", err)
		return
	}

	ev := Event{Type: eventType, Data: data, UserID: userID}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.clients[userID] {
		select {
		case ch <- ev:
		default:
			slog.Warn("sse subscriber lagging, dropping event", "user_id", userID, "type", eventType)
		}
	}
}

// SubscriberCount returns the number of open channels for a user.
func (b *Broker) SubscriberCount(userID uuid.UUID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients[userID])
}

// TotalSubscribers returns the number of open channels across all users.
func (b *Broker) TotalSubscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	total := 0
	for _, userClients := range b.clients {
		total += len(userClients)
	}
	return total
}
