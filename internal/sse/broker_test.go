package sse

import (
	"testing"

	"github.com/google/uuid"
)

func TestBrokerPublishDeliversToSubscriber(t *testing.T) {
	b := NewBroker()
	userID := uuid.New()

	ch := b.Subscribe(userID)
	defer b.Unsubscribe(userID, ch)

	b.Publish(userID, "notification", map[string]string{"title": "hello"})

	select {
	case ev := <-ch:
		if ev.Type != "notification" {
			t.Errorf("event type = %q, want %q", ev.Type, "notification")
		}
		if string(ev.Data) != `{"title":"hello"}` {
			t.Errorf("event data = %s", ev.Data)
		}
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestBrokerPublishDoesNotCrossUsers(t *testing.T) {
	b := NewBroker()
	alice := uuid.New()
	bob := uuid.New()

	aliceCh := b.Subscribe(alice)
	bobCh := b.Subscribe(bob)
	defer b.Unsubscribe(alice, aliceCh)
	defer b.Unsubscribe(bob, bobCh)

	b.Publish(alice, "notification", "ping")

	if len(aliceCh) != 1 {
		t.Errorf("alice queued events = %d, want 1", len(aliceCh))
	}
	if len(bobCh) != 0 {
		t.Errorf("bob queued events = %d, want 0", len(bobCh))
	}
}

func TestBrokerPublishDropsWhenBufferFull(t *testing.T) {
	b := NewBroker()
	userID := uuid.New()

	ch := b.Subscribe(userID)
	defer b.Unsubscribe(userID, ch)

	// Overfill the buffer; the publisher must never block.
	for i := 0; i < subscriberBuffer+5; i++ {
		b.Publish(userID, "notification", i)
	}

	if len(ch) != subscriberBuffer {
		t.Errorf("queued events = %d, want %d", len(ch), subscriberBuffer)
	}
}

func TestBrokerUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker()
	userID := uuid.New()

	ch := b.Subscribe(userID)
	if got := b.SubscriberCount(userID); got != 1 {
		t.Fatalf("SubscriberCount() = %d, want 1", got)
	}

	b.Unsubscribe(userID, ch)

	if _, open := <-ch; open {
		t.Error("channel still open after Unsubscribe")
	}
	if got := b.SubscriberCount(userID); got != 0 {
		t.Errorf("SubscriberCount() = %d, want 0", got)
	}

	// Double unsubscribe is a no-op, not a panic.
	b.Unsubscribe(userID, ch)
}

func TestBrokerTotalSubscribers(t *testing.T) {
	b := NewBroker()
	alice := uuid.New()
	bob := uuid.New()

	ch1 := b.Subscribe(alice)
	ch2 := b.Subscribe(alice)
	ch3 := b.Subscribe(bob)

	if got := b.TotalSubscribers(); got != 3 {
		t.Errorf("TotalSubscribers() = %d, want 3", got)
	}

	b.Unsubscribe(alice, ch1)
	b.Unsubscribe(alice, ch2)
	b.Unsubscribe(bob, ch3)

	if got := b.TotalSubscribers(); got != 0 {
		t.Errorf("TotalSubscribers() = %d, want 0", got)
	}
}
