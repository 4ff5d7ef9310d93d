// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

var (
	ErrGetCourierQueryIsNotConstructed = errors.New(
		"GetCourierQuery must be created via NewGetCourierQuery constructor",
	)
)

// GetCourierQuery retrieves the profile of one courier together with the figures
// derived from its delivered orders.
//
// Example:
//
//	query, err := NewGetCourierQuery(2)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetCourierQueryHandler(db)
//
//	profile, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // respond with 404
//	}
//
//	if profile.Rating != nil {
//	    fmt.Printf("courier %d rated %.2f, earned %s\n", profile.CourierID, *profile.Rating, profile.Earnings)
//	}
type GetCourierQuery struct {
	courierID int64

	guard guard.ConstructorGuard
}

// NewGetCourierQuery creates a query for the courier with the given id.
// The id must be positive.
func NewGetCourierQuery(courierID int64) (GetCourierQuery, error) {
	if courierID <= 0 {
		return GetCourierQuery{}, errs.NewValueIsOutOfRangeError("courier id", courierID, 1, "max int64")
	}

	return GetCourierQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCourierQueryIsNotConstructed if validation fails.
func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// CourierID returns the id of the requested courier.
func (q GetCourierQuery) CourierID() int64 {
	return q.courierID
}

// GetCourierQueryResponse is the read model of a courier profile.
// CourierType is nil when the catalog entry of the courier was removed.
// Rating is nil until the courier delivers an order.
type GetCourierQueryResponse struct {
	CourierID    int64
	CourierType  *string
	Regions      []int
	WorkingHours []string
	Rating       *float64
	Earnings     decimal.Decimal
}
