package commands

import (
	"settlement/internal/core/domain/model/kernel"
)

// TrackingControl starts and stops courier-device location tracking as a
// side effect of custody transitions. Implemented by the tracking manager;
// both methods are local, bounded-time operations.
type TrackingControl interface {
	// StartTracking begins tracking an order on the courier's device context,
	// implicitly stopping whatever that device tracked before.
	StartTracking(courierID, orderID kernel.UUID)

	// StopTracking stops tracking the given order wherever it is tracked.
	// Idempotent; stopping an untracked order is a no-op.
	StopTracking(orderID kernel.UUID)
}
