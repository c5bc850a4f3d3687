// Package notify delivers user-facing notification intents produced by the
// settlement workflow. The log-backed implementation is the default sink;
// a push or email gateway can replace it behind the same port.
package notify

import (
	"context"
	"log/slog"

	"settlement/internal/core/ports"
)

// SlogNotifier writes every notification intent to the structured log.
// Publishing never fails and never blocks business transactions: intents are
// emitted after commit, and a lost intent does not affect settlement state.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// Publish emits the notification intent.
func (n *SlogNotifier) Publish(ctx context.Context, notification ports.Notification) {
	n.logger.InfoContext(ctx, "notification",
		"user_id", notification.UserID.String(),
		"message", notification.Message,
		"link", notification.Link,
	)
}
