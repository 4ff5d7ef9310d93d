package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"candydelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate together with its delivery hours.
	// Returns an ObjectAlreadyExistsError if the id is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, assignment, completion time and price of an existing order.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns an ObjectNotFoundError if there is no such order.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Claim assigns an order only if it is still unassigned and undelivered.
	// It is a single compare-and-set statement: false without error means
	// another operation claimed the order first.
	Claim(ctx context.Context, id int64, assignment order.Assignment) (bool, error)

	// GetPendingByCourier retrieves the undelivered orders held by a courier, ascending by id.
	GetPendingByCourier(ctx context.Context, courierID int64) ([]*order.Order, error)

	// GetDeliveredByCourier retrieves the orders a courier delivered, ascending by id.
	GetDeliveredByCourier(ctx context.Context, courierID int64) ([]*order.Order, error)

	// GetUnassignedInRegions retrieves unassigned undelivered orders whose region is
	// in regions and whose weight does not exceed maxWeight, ascending by id.
	GetUnassignedInRegions(ctx context.Context, regions []int, maxWeight decimal.Decimal) ([]*order.Order, error)
}
