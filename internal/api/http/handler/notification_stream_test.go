package handler

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/proflink/proflink_backend/internal/sse"
)

func TestStreamEventsWritesEventsAndHeartbeats(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	ch := make(chan sse.Event)
	hb := make(chan time.Time)

	done := make(chan struct{})
	go func() {
		defer close(done)
		streamEvents(w, ch, hb)
	}()

	ch <- sse.Event{Type: "notification", Data: json.RawMessage(`{"title":"hello"}`)}
	hb <- time.Time{}
	close(ch)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("streamEvents did not return after channel close")
	}

	out := buf.String()
	if !strings.HasPrefix(out, ": connected\n\n") {
		t.Errorf("missing connected preamble:\n%s", out)
	}
	if !strings.Contains(out, "event: notification\ndata: {\"title\":\"hello\"}\n\n") {
		t.Errorf("missing event frame:\n%s", out)
	}
	if !strings.Contains(out, ": heartbeat\n\n") {
		t.Errorf("missing heartbeat comment:\n%s", out)
	}
}

// brokenWriter accepts a fixed number of bytes and then fails, standing in
// for a peer that closed the connection.
type brokenWriter struct {
	mu      sync.Mutex
	allowed int
	wrote   int
}

func (b *brokenWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wrote+len(p) > b.allowed {
		return 0, errors.New("connection reset by peer")
	}
	b.wrote += len(p)
	return len(p), nil
}

func TestStreamEventsStopsWhenIdleClientDisconnects(t *testing.T) {
	// Enough for the connected preamble, nothing more. The client never
	// receives an event, so only the heartbeat can surface the dead pipe.
	bw := &brokenWriter{allowed: len(": connected\n\n")}
	w := bufio.NewWriter(bw)

	ch := make(chan sse.Event)
	hb := make(chan time.Time, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		streamEvents(w, ch, hb)
	}()

	hb <- time.Time{}

	select {
	case <-done:
		// Loop exited even though ch is still open.
	case <-time.After(2 * time.Second):
		t.Fatal("streamEvents still running after failed heartbeat flush")
	}
}
