package ports

import (
	"context"

	"settlement/internal/core/domain/model/kernel"
)

// Notification is an outbound notification intent: who should hear about a
// state change, what to tell them, and where to send them. Delivering the
// intent to a human (push, email, websocket) is an external concern; this core
// only emits intents after state-affecting operations.
type Notification struct {
	UserID  kernel.UUID
	Message string
	Link    string
}

// Notifier publishes notification intents to the external delivery component.
// Implementations must be local and non-blocking; publication happens after
// the state change is committed and must never fail the business operation.
type Notifier interface {
	Publish(ctx context.Context, notification Notification)
}
