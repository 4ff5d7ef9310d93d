package commands

import (
	"errors"

	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

var ErrAssignOrdersCommandIsNotConstructed = errors.New(
	"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
)

// AssignOrdersCommand asks for a batch of orders for one courier.
// While the courier still holds undelivered orders the same batch is returned again,
// so repeating the command is safe.
//
// Example:
//
//	cmd, err := NewAssignOrdersCommand(2)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignOrdersCommand struct { //nolint:recvcheck //using for validation
	courierID int64

	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a command to assign orders to the courier.
func NewAssignOrdersCommand(courierID int64) (AssignOrdersCommand, error) {
	command := AssignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return AssignOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrdersCommandIsNotConstructed if validation fails.
func (c AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}

// CourierID returns the courier the orders are assigned to.
func (c AssignOrdersCommand) CourierID() int64 {
	return c.courierID
}

func (c *AssignOrdersCommand) setCourierID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("courier id", id, 1, "max int64")
	}

	c.courierID = id
	return nil
}
