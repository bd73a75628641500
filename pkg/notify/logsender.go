package notify

import (
	"context"

	"github.com/snipvault/backend/pkg/logging"
)

// LogSender writes events to the log instead of delivering them. Used when
// no SMTP host is configured, so local runs still show what would be sent.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, e Event) error {
	s.logger.Info(ctx, "notification (not delivered, SMTP disabled)",
		"type", string(e.Type), "recipient", e.Recipient, "snippet", e.SnippetTitle)
	return nil
}
