package commands

import (
	"context"

	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/core/domain/services"
	"candydelivery/internal/core/ports"
)

// RevalidateCourierCommandHandler reruns the capacity and working hours passes for
// one courier under the courier lock and releases what no longer fits.
type RevalidateCourierCommandHandler struct {
	uowFactory  UoWFactory
	revalidator services.CourierRevalidator
}

// NewRevalidateCourierCommandHandler creates a handler for batch rechecks.
func NewRevalidateCourierCommandHandler(uowFactory UoWFactory) RevalidateCourierCommandHandler {
	return RevalidateCourierCommandHandler{
		uowFactory:  uowFactory,
		revalidator: services.NewCourierRevalidator(),
	}
}

// Handle processes the recheck and returns the ids of the released orders.
func (h RevalidateCourierCommandHandler) Handle(ctx context.Context, cmd RevalidateCourierCommand) ([]int64, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CourierRepository().GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	released, err := revalidate(ctx, uow.OrderRepository(), h.revalidator, c, services.ProfileChange{
		RecheckCapacity: true,
	})
	if err != nil {
		return nil, err
	}

	if len(released) == 0 {
		return released, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return released, nil
}

// revalidate runs the revalidation passes over the pending orders of c and stores
// every released order. Returns the released ids in ascending order.
func revalidate(
	ctx context.Context,
	ordersRepo ports.OrderRepository,
	revalidator services.CourierRevalidator,
	c *courier.Courier,
	change services.ProfileChange,
) ([]int64, error) {
	pending, err := ordersRepo.GetPendingByCourier(ctx, c.ID())
	if err != nil {
		return nil, err
	}

	released, err := revalidator.Revalidate(c, pending, change)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(released))
	for _, o := range released {
		if err = ordersRepo.Update(ctx, o); err != nil {
			return nil, err
		}
		ids = append(ids, o.ID())
	}

	return ids, nil
}
