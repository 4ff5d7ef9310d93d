package order

import (
	"errors"
	"time"

	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when a zero-value Assignment is used.
var ErrAssignmentIsNotConstructed = errs.NewValueIsRequiredError(
	"assignment must be created via NewAssignment constructor")

// Assignment is the active claim of an order by a courier: who holds it and since when.
// Courier and assign time only exist together, so an order carries either a whole
// Assignment or none at all.
//
// All orders claimed in one assignment round share the same AssignedAt.
type Assignment struct { //nolint:recvcheck //using for validation
	courierID  int64
	assignedAt time.Time
	guard      guard.ConstructorGuard
}

// NewAssignment creates an assignment of a courier made at assignedAt.
// The time is normalized to UTC and truncated to microseconds, the precision
// the store keeps, so a stored round reads back with the same timestamp.
func NewAssignment(courierID int64, assignedAt time.Time) (Assignment, error) {
	a := Assignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(a.setCourierID(courierID), a.setAssignedAt(assignedAt)); err != nil {
		return Assignment{}, err
	}

	return a, nil
}

// Validate reports whether the assignment was built by NewAssignment.
func (a Assignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// CourierID returns the id of the courier holding the order.
func (a Assignment) CourierID() int64 {
	return a.courierID
}

// storagePrecision is the resolution of a Postgres timestamptz.
const storagePrecision = time.Microsecond

// AssignedAt returns the round timestamp of the claim.
func (a Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// IsEqual compares courier and round time.
func (a Assignment) IsEqual(other Assignment) bool {
	return a.courierID == other.courierID && a.assignedAt.Equal(other.assignedAt)
}

func (a *Assignment) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return errs.NewValueIsOutOfRangeError("courier id", courierID, 1, "max int64")
	}

	a.courierID = courierID
	return nil
}

func (a *Assignment) setAssignedAt(assignedAt time.Time) error {
	if assignedAt.IsZero() {
		return errs.NewValueIsRequiredError("assign time")
	}

	a.assignedAt = assignedAt.UTC().Truncate(storagePrecision)
	return nil
}
