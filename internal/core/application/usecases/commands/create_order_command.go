package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"candydelivery/internal/core/domain/model/kernel"
	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryHoursAreRequired = errs.NewValueIsRequiredError("delivery hours")
)

// CreateOrderCommand represents one record of an order import batch.
// Encapsulates the identifier supplied by the client, the weight, the region and the
// delivery windows of the order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(1, decimal.RequireFromString("0.23"), 12, []string{"09:00-18:00"})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       int64
	weight        kernel.Weight
	region        int
	deliveryHours []kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to import a new order.
// Validates that the id and region are positive, the weight is in range and every
// delivery window parses. Returns all failures joined.
func NewCreateOrderCommand(
	orderID int64,
	weight decimal.Decimal,
	region int,
	deliveryHours []string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setWeight(weight),
		orderCommand.setRegion(region),
		orderCommand.setDeliveryHours(deliveryHours),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c CreateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Weight returns the order weight in kilograms.
func (c CreateOrderCommand) Weight() kernel.Weight {
	return c.weight
}

// Region returns the delivery region.
func (c CreateOrderCommand) Region() int {
	return c.region
}

// DeliveryHours returns the parsed delivery windows.
func (c CreateOrderCommand) DeliveryHours() []kernel.TimeWindow {
	return c.deliveryHours
}

func (c *CreateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", orderID, 1, "max int64")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setWeight(weight decimal.Decimal) error {
	w, err := kernel.NewWeight(weight)
	if err != nil {
		return err
	}

	c.weight = w
	return nil
}

func (c *CreateOrderCommand) setRegion(region int) error {
	if region <= 0 {
		return errs.NewValueIsOutOfRangeError("region", region, 1, "max int")
	}

	c.region = region
	return nil
}

func (c *CreateOrderCommand) setDeliveryHours(deliveryHours []string) error {
	if len(deliveryHours) == 0 {
		return ErrDeliveryHoursAreRequired
	}

	windows, err := kernel.ParseTimeWindows(deliveryHours)
	if err != nil {
		return err
	}

	c.deliveryHours = windows
	return nil
}
