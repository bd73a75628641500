package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snipvault/backend/pkg/logging"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []Event
	err  error
}

func (s *recordingSender) Send(ctx context.Context, e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, e)
	return s.err
}

func (s *recordingSender) all() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.sent...)
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDispatcherDeliversPublishedEvents(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, testLogger(), 8)
	d.Start(context.Background())

	d.Publish(Event{Type: EventWelcome, Recipient: "a@x.com"})
	d.Publish(Event{Type: EventApproved, Recipient: "a@x.com", SnippetTitle: "Hello"})
	d.Close()

	sent := sender.all()
	require.Len(t, sent, 2)
	require.Equal(t, EventWelcome, sent[0].Type)
	require.Equal(t, EventApproved, sent[1].Type)
	require.Equal(t, "Hello", sent[1].SnippetTitle)
}

func TestDispatcherSwallowsSenderErrors(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	d := NewDispatcher(sender, testLogger(), 8)
	d.Start(context.Background())

	d.Publish(Event{Type: EventReset, Recipient: "a@x.com"})
	d.Publish(Event{Type: EventRejected, Recipient: "a@x.com"})
	d.Close()

	// Both deliveries were attempted even though the first one failed.
	require.Len(t, sender.all(), 2)
}

func TestDispatcherCloseDrainsQueue(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, testLogger(), 32)
	for i := 0; i < 10; i++ {
		d.Publish(Event{Type: EventWelcome, Recipient: "a@x.com"})
	}
	d.Start(context.Background())
	d.Close()

	require.Len(t, sender.all(), 10)
}

func TestDispatcherCloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(&recordingSender{}, testLogger(), 1)
	d.Start(context.Background())
	d.Close()
	d.Close()
}
