package notify

import (
	"context"
	"sync"

	"github.com/snipvault/backend/pkg/logging"
)

// Dispatcher drains published events into a Sender on a background worker.
// Publish never blocks: when the buffer is full the event is dropped and
// logged, which keeps delivery at-most-once-attempted. Sender failures are
// logged and swallowed; they never reach the publishing operation.
type Dispatcher struct {
	ch     chan Event
	sender Sender
	logger logging.Logger

	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewDispatcher(sender Sender, logger logging.Logger, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 128
	}
	return &Dispatcher{
		ch:     make(chan Event, buffer),
		sender: sender,
		logger: logger.With("component", "notify"),
	}
}

// Start launches the delivery worker. ctx only scopes delivery attempts;
// the worker itself runs until Close.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for e := range d.ch {
			if err := d.sender.Send(ctx, e); err != nil {
				d.logger.Warn(ctx, "notification delivery failed",
					"type", string(e.Type), "recipient", e.Recipient, "error", err.Error())
			}
		}
	}()
}

// Publish enqueues an event, dropping it when the buffer is full.
func (d *Dispatcher) Publish(e Event) {
	select {
	case d.ch <- e:
	default:
		d.logger.Warn(context.Background(), "notification queue full, event dropped",
			"type", string(e.Type), "recipient", e.Recipient)
	}
}

// Close stops accepting events and waits for queued ones to be attempted.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.ch)
	})
	d.wg.Wait()
}
