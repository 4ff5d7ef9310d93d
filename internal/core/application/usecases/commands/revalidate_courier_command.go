package commands

import (
	"errors"

	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

var ErrRevalidateCourierCommandIsNotConstructed = errors.New(
	"RevalidateCourierCommand must be created via NewRevalidateCourierCommand constructor",
)

// RevalidateCourierCommand rechecks the pending batch of a courier against its
// current profile without editing it. The periodic sweep issues it for every
// courier holding orders, which repairs batches that no longer fit after the
// courier type catalog changed.
//
// Example:
//
//	cmd, _ := NewRevalidateCourierCommand(courierID)
//	released, err := handler.Handle(ctx, cmd)
type RevalidateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID int64

	guard guard.ConstructorGuard
}

// NewRevalidateCourierCommand creates a revalidation command for one courier.
func NewRevalidateCourierCommand(courierID int64) (RevalidateCourierCommand, error) {
	command := RevalidateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if courierID <= 0 {
		return RevalidateCourierCommand{}, errs.NewValueIsOutOfRangeError("courier id", courierID, 1, "max int64")
	}
	command.courierID = courierID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RevalidateCourierCommand) Validate() error {
	return c.guard.Validate(ErrRevalidateCourierCommandIsNotConstructed)
}

// CourierID returns the courier to recheck.
func (c RevalidateCourierCommand) CourierID() int64 {
	return c.courierID
}
