package commands

import (
	"errors"
	"time"

	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand marks an order delivered by the courier that holds it.
// The completion time is supplied by the client and stored as given.
//
// Example:
//
//	cmd, err := NewCompleteOrderCommand(2, 33, completeTime)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	courierID    int64
	orderID      int64
	completeTime time.Time

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a completion command.
// Validates both identifiers and requires a non-zero completion time.
func NewCompleteOrderCommand(courierID, orderID int64, completeTime time.Time) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setOrderID(orderID),
		command.setCompleteTime(completeTime),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// CourierID returns the courier that delivered the order.
func (c CompleteOrderCommand) CourierID() int64 {
	return c.courierID
}

// OrderID returns the delivered order.
func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}

// CompleteTime returns the delivery time reported by the courier.
func (c CompleteOrderCommand) CompleteTime() time.Time {
	return c.completeTime
}

func (c *CompleteOrderCommand) setCourierID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("courier id", id, 1, "max int64")
	}

	c.courierID = id
	return nil
}

func (c *CompleteOrderCommand) setOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", id, 1, "max int64")
	}

	c.orderID = id
	return nil
}

func (c *CompleteOrderCommand) setCompleteTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("complete time")
	}

	c.completeTime = t
	return nil
}
