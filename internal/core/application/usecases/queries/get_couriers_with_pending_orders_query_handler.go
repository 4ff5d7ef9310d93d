package queries

import (
	"context"

	"gorm.io/gorm"

	"candydelivery/internal/core/domain/model/order"
)

// GetCouriersWithPendingOrdersQueryHandler reads courier ids from the orders table.
type GetCouriersWithPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCouriersWithPendingOrdersQueryHandler creates the handler.
func NewGetCouriersWithPendingOrdersQueryHandler(db *gorm.DB) GetCouriersWithPendingOrdersQueryHandler {
	return GetCouriersWithPendingOrdersQueryHandler{db: db}
}

// Handle returns the ids in ascending order, an empty slice when nobody holds an order.
func (h GetCouriersWithPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCouriersWithPendingOrdersQuery,
) ([]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids := make([]int64, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT courier_id
		FROM orders
		WHERE status = ? AND courier_id IS NOT NULL
		ORDER BY courier_id
	`, int(order.Assigned)).Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
