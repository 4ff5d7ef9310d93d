// Package order provides domain entities and business logic for order management
// in the candy delivery system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, weight, delivery hours and lifecycle
//   - Assignment: The value object that pairs the holding courier with the round timestamp
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders are imported unassigned with a positive id, region and weight
//   - Order status follows a defined workflow: Created -> Assigned -> Completed
//   - Revalidation may move a pending order back from Assigned to Created
//   - Only the courier holding an order can complete it; repeated completion is a no-op
//   - Orders are never deleted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
