// Package notify carries outbound notification events from the core to an
// external delivery collaborator (SMTP in production). Dispatch is
// fire-and-forget: the primary operation never waits for, or fails on,
// notification delivery.
package notify

import "context"

// EventType is a closed enumeration of notification kinds.
type EventType string

const (
	EventWelcome  EventType = "welcome"
	EventReset    EventType = "reset"
	EventApproved EventType = "approved"
	EventRejected EventType = "rejected"
)

// Event describes one notification to attempt. Only the fields relevant to
// its type are set.
type Event struct {
	Type      EventType
	Recipient string
	Name      string

	// Reset flow.
	ResetToken string

	// Moderation events.
	SnippetID    string
	SnippetTitle string
	Reason       string
}

// Publisher submits an event for delivery without blocking the caller.
type Publisher interface {
	Publish(e Event)
}

// Sender performs the actual delivery attempt for one event.
type Sender interface {
	Send(ctx context.Context, e Event) error
}
