// Package courier provides domain entities and business logic for courier management
// in the candy delivery system. It implements the Courier aggregate root and the
// courier type catalog entry that drives capacity and earnings.
//
// The package includes:
//   - Courier: The aggregate root that manages courier identity, type, regions and working hours
//   - Type: An immutable catalog entry with weight capacity and price coefficient
//   - TypeCode: The closed set of type identifiers and the downgrade transition table
//
// Key business rules:
//   - Couriers are imported with a positive id, a known type, regions and working hours
//   - Capacity and per-order price always come from the courier's current type
//   - A courier without a type has zero capacity and earns nothing per order
//   - Switching car→foot, car→bike or bike→foot is a downgrade that re-checks pending orders
//   - Removing a region releases pending orders in that region
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
