package commands

import (
	"context"
	"errors"

	"candydelivery/internal/core/domain/model/order"
	"candydelivery/internal/pkg/errs"
)

// CompleteOrderCommandHandler records a delivery.
// The order must be held by the courier; the price is fixed from the courier's
// type at the moment of completion. Completing a delivered order again succeeds
// without touching the stored completion time or price.
//
// Example:
//
//	handler := NewCompleteOrderCommandHandler(uowFactory)
//	cmd, _ := NewCompleteOrderCommand(2, 33, time.Now())
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown courier, unknown order or the order is not the courier's
//	}
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Every kind of miss is reported as an ObjectNotFoundError and changes nothing.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ordersRepo := uow.OrderRepository()

	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	o, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	changed, err := o.Complete(c.ID(), cmd.CompleteTime(), c.OrderPrice())
	if errors.Is(err, order.ErrOrderIsNotAssignedToCourier) {
		return errs.NewObjectNotFoundErrorWithCause("order", cmd.OrderID(), err)
	}
	if err != nil {
		return err
	}

	if !changed {
		return nil
	}

	if err = ordersRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
