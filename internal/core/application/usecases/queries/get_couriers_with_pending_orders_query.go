package queries

import (
	"errors"

	"candydelivery/internal/pkg/guard"
)

var (
	ErrGetCouriersWithPendingOrdersQueryIsNotConstructed = errors.New(
		"GetCouriersWithPendingOrdersQuery must be created via NewGetCouriersWithPendingOrdersQuery constructor",
	)
)

// GetCouriersWithPendingOrdersQuery lists the couriers that currently hold at least
// one undelivered order. The revalidation sweep walks this list.
//
// Example:
//
//	query := NewGetCouriersWithPendingOrdersQuery()
//	handler := NewGetCouriersWithPendingOrdersQueryHandler(db)
//
//	courierIDs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list couriers: %w", err)
//	}
type GetCouriersWithPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCouriersWithPendingOrdersQuery creates the parameterless query.
func NewGetCouriersWithPendingOrdersQuery() GetCouriersWithPendingOrdersQuery {
	return GetCouriersWithPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCouriersWithPendingOrdersQueryIsNotConstructed if validation fails.
func (q GetCouriersWithPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersWithPendingOrdersQueryIsNotConstructed)
}
