package notify

import (
	"context"

	"mentordash/internal/logger"
)

// LogNotifier writes notifications to the application log instead of
// delivering them. Used in development and tests, when no mail provider
// is configured.
type LogNotifier struct{}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Send records the notification and reports success.
func (n *LogNotifier) Send(_ context.Context, msg Notification) error {
	logger.Get().Infow("notification sent (log mode)",
		"kind", msg.Kind,
		"recipient", msg.Recipient,
		"subject", msg.Subject,
	)
	return nil
}
