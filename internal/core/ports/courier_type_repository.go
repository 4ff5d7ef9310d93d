package ports

import (
	"context"

	"candydelivery/internal/core/domain/model/courier"
)

// CourierTypeRepository provides read access to the courier type catalog.
// The catalog is seeded by a schema migration and never written by the service.
type CourierTypeRepository interface {
	// Get returns the catalog entry for code.
	// Returns an ObjectNotFoundError if the entry does not exist.
	Get(ctx context.Context, code courier.TypeCode) (courier.Type, error)

	// GetAll returns every catalog entry ordered by capacity.
	GetAll(ctx context.Context) ([]courier.Type, error)
}
