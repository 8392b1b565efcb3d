package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcher_PublishReachesAllSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls []string
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.TicketID)
		return errors.New("handler failure must not stop the chain")
	})
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.TicketID)
		return nil
	})
	d.Subscribe(EventTicketUpdated, func(_ context.Context, _ Event) error {
		calls = append(calls, "wrong-type")
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketCreated, TicketID: "t1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(calls) != 2 || calls[0] != "first:t1" || calls[1] != "second:t1" {
		t.Fatalf("unexpected handler calls: %v", calls)
	}
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventTicketUpdated}); err != nil {
		t.Fatalf("publish without subscribers: %v", err)
	}
}
