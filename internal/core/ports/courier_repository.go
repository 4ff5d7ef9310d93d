// Package ports defines repository interfaces for the candy delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"candydelivery/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Provides methods for storing and retrieving couriers with their regions and
// working hours.
type CourierRepository interface {
	// Add persists a new courier aggregate together with its regions and working hours.
	// Returns an ObjectAlreadyExistsError if the id is taken.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists the profile of an existing courier: type, regions and working hours.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its identifier.
	// Returns an ObjectNotFoundError if there is no such courier.
	Get(ctx context.Context, id int64) (*courier.Courier, error)

	// GetForUpdate retrieves a courier like Get and locks it until the end of the
	// current transaction. Every operation that touches the orders of a courier
	// takes this lock first, so such operations run one at a time per courier.
	//
	// Example:
	//   c, err := uow.CourierRepository().GetForUpdate(ctx, courierID)
	//   if errors.Is(err, errs.ErrObjectNotFound) {
	//       return err
	//   }
	//   // assign, complete or revalidate while holding the lock
	GetForUpdate(ctx context.Context, id int64) (*courier.Courier, error)
}
