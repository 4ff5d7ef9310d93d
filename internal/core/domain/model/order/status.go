package order

import (
	"fmt"

	"candydelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a small state machine so that every mutation of an order goes
// through an explicit, validated transition.
//
// State transitions:
//
//	Created ──assign──> Assigned ──complete──> Completed
//	   ^                   │
//	   └─────unassign──────┘
//
// Unassign is performed by courier revalidation only. Completed is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the status of an imported order that no courier holds.
	Created

	// Assigned indicates the order is pending: claimed by a courier and not yet delivered.
	Assigned

	// Completed indicates the order has been delivered. No further transitions are allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Assigned:  "Assigned",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is one of Created, Assigned or Completed.
// It is used to reject values coming from external sources such as the database.
func (s Status) Validate() error {
	if s != Created && s != Assigned && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveAssignment validates the consistency between order status and
// the presence of an assignment.
//
// Business Rules:
//   - Created orders must not have an assignment
//   - Assigned orders must have an assignment
//   - Completed orders must have an assignment
//
// Parameters:
//   - assigned: whether the order carries an assignment
//
// Returns:
//   - error: validation error if status and assignment are inconsistent
func (s Status) ValidateCanHaveAssignment(assigned bool) error {
	if assigned && s != Assigned && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !assigned && (s == Assigned || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Assign transitions Created to Assigned.
//
// Returns:
//   - (Assigned, nil) on valid transition
//   - (0, error) if the order is already held by a courier or delivered
func (s Status) Assign() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}

	return Assigned, nil
}

// Unassign transitions Assigned back to Created.
func (s Status) Unassign() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to unassign", s.String()),
		)
	}

	return Created, nil
}

// Complete transitions Assigned to Completed.
//
// Valid transitions:
//   - Assigned -> Completed (order delivered)
//
// Invalid transitions:
//   - Created -> Completed (must be assigned first)
//   - Completed -> Completed (callers treat repeated completion as a no-op before reaching here)
//   - Unknown -> Completed (invalid initial state)
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
