// Package order provides domain entities and business logic for the order
// fulfillment workflow. It implements the Order aggregate root with lifecycle
// management, actor authorization, and state transitions.
//
// The package includes:
//   - Order: The aggregate root that coordinates buyer, seller, and courier
//   - Status: A state machine that enforces valid fulfillment transitions
//   - Pricing: The immutable monetary breakdown fixed at creation
//   - HistoryEntry: One element of the append-only status/location history
//
// Key business rules:
//   - Orders progress Pending -> ReadyForPickup -> InTransit -> Delivered -> Completed
//   - Cancellation is only possible before physical handoff
//   - A dispute can be opened from any non-terminal state and is only resolved
//     by administrative arbitration
//   - Physical custody transitions are gated by secret codes verified in
//     constant time
//   - Every status change appends a history entry; history is never truncated
//     or reordered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
