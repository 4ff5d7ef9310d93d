package commands

import (
	"context"

	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/core/domain/services"
)

// UpdateCourierResult is the stored profile after an edit.
type UpdateCourierResult struct {
	Courier *courier.Courier
	// ReleasedOrderIDs lists the orders returned to the unassigned pool, ascending.
	ReleasedOrderIDs []int64
}

// UpdateCourierCommandHandler applies a profile edit and revalidates the pending batch.
// The courier row stays locked for the whole edit, so no assignment or completion of
// the same courier can interleave with the revalidation.
//
// Revalidation passes run in this order on the survivors of the previous pass:
//  1. orders in removed regions are released
//  2. after a type downgrade, the longest id-ordered prefix that fits is kept
//  3. orders that no working window accepts any more are released
//
// Example:
//
//	handler := NewUpdateCourierCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	log.Printf("released %v", result.ReleasedOrderIDs)
type UpdateCourierCommandHandler struct {
	uowFactory  UoWFactory
	revalidator services.CourierRevalidator
}

// NewUpdateCourierCommandHandler creates a handler for profile edits.
func NewUpdateCourierCommandHandler(uowFactory UoWFactory) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory:  uowFactory,
		revalidator: services.NewCourierRevalidator(),
	}
}

// Handle processes the edit.
// Returns an ObjectNotFoundError for an unknown courier and a validation error for a
// type code missing from the catalog.
func (h UpdateCourierCommandHandler) Handle(ctx context.Context, cmd UpdateCourierCommand) (UpdateCourierResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateCourierResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateCourierResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ordersRepo := uow.OrderRepository()

	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return UpdateCourierResult{}, err
	}

	var change services.ProfileChange

	if code := cmd.CourierType(); code != nil {
		courierType, err := uow.CourierTypeRepository().Get(ctx, *code)
		if err != nil {
			return UpdateCourierResult{}, catalogError(err)
		}
		if change.RecheckCapacity, err = c.ChangeType(courierType); err != nil {
			return UpdateCourierResult{}, err
		}
	}

	if regions := cmd.Regions(); regions != nil {
		if change.RemovedRegions, err = c.ChangeRegions(regions); err != nil {
			return UpdateCourierResult{}, err
		}
	}

	if hours := cmd.WorkingHours(); hours != nil {
		if err = c.ChangeWorkingHours(hours); err != nil {
			return UpdateCourierResult{}, err
		}
	}

	released, err := revalidate(ctx, ordersRepo, h.revalidator, c, change)
	if err != nil {
		return UpdateCourierResult{}, err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return UpdateCourierResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateCourierResult{}, err
	}

	return UpdateCourierResult{
		Courier:          c,
		ReleasedOrderIDs: released,
	}, nil
}
