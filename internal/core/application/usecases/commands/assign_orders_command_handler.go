package commands

import (
	"context"
	"time"

	"candydelivery/internal/core/domain/model/order"
	"candydelivery/internal/core/domain/services"
)

// AssignOrdersResult describes the batch held by the courier after the command.
type AssignOrdersResult struct {
	// OrderIDs lists the pending orders of the courier in ascending order.
	OrderIDs []int64
	// AssignTime is the shared timestamp of the batch; nil when the batch is empty.
	AssignTime *time.Time
}

// AssignOrdersCommandHandler orchestrates one assignment round.
// Locks the courier, replays its current batch if there is one, otherwise claims
// matching unassigned orders one by one with compare-and-set updates.
//
// Example:
//
//	handler := NewAssignOrdersCommandHandler(uowFactory, time.Now)
//	cmd, _ := NewAssignOrdersCommand(courierID)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Unknown courier")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	case len(result.OrderIDs) == 0:
//	    log.Println("Nothing to deliver")
//	}
type AssignOrdersCommandHandler struct {
	uowFactory UoWFactory
	matcher    services.OrderMatcher
	now        func() time.Time
}

// NewAssignOrdersCommandHandler creates a handler for assignment rounds.
// Requires a UoWFactory for coordinating the courier lock with the order claims
// and a clock that stamps new rounds.
func NewAssignOrdersCommandHandler(uowFactory UoWFactory, now func() time.Time) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewOrderMatcher(),
		now:        now,
	}
}

// Handle processes the assignment command.
// Returns an ObjectNotFoundError when the courier does not exist.
// All claims of a round commit together with the round timestamp.
func (h AssignOrdersCommandHandler) Handle(ctx context.Context, cmd AssignOrdersCommand) (AssignOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ordersRepo := uow.OrderRepository()

	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	pending, err := ordersRepo.GetPendingByCourier(ctx, c.ID())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	var candidates []*order.Order
	if len(pending) == 0 && c.Capacity().IsPositive() && len(c.Regions()) > 0 {
		candidates, err = ordersRepo.GetUnassignedInRegions(ctx, c.Regions(), c.Capacity())
		if err != nil {
			return AssignOrdersResult{}, err
		}
	}

	claim := func(o *order.Order, assignment order.Assignment) (bool, error) {
		return ordersRepo.Claim(ctx, o.ID(), assignment)
	}

	round, err := h.matcher.Assign(c, pending, candidates, h.now().UTC(), claim)
	if err != nil {
		return AssignOrdersResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignOrdersResult{}, err
	}

	return AssignOrdersResult{
		OrderIDs:   round.OrderIDs(),
		AssignTime: round.AssignedAt,
	}, nil
}
