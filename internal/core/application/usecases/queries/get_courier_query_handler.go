package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"candydelivery/internal/core/domain/model/kernel"
	"candydelivery/internal/core/domain/model/order"
	"candydelivery/internal/core/domain/services"
	"candydelivery/internal/pkg/errs"
)

// GetCourierQueryHandler builds the courier read model straight from the database.
// Delivered orders are restored as domain orders so the rating follows the same
// rules the domain service enforces.
//
// Example:
//
//	handler := NewGetCourierQueryHandler(db)
//	query, _ := NewGetCourierQuery(courierID)
//
//	profile, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get courier: %w", err)
//	}
type GetCourierQueryHandler struct {
	db     *gorm.DB
	rating services.RatingCalculator
}

// NewGetCourierQueryHandler creates a handler for courier profile queries.
// Requires a GORM database connection for query execution.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{
		db:     db,
		rating: services.NewRatingCalculator(),
	}
}

type courierRow struct {
	ID          int64
	CourierType *string
}

type windowRow struct {
	OwnerID     int64
	StartMinute int
	EndMinute   int
}

type deliveredRow struct {
	ID           int64
	Region       int
	Weight       decimal.Decimal
	AssignTime   time.Time
	CompleteTime time.Time
	Price        decimal.Decimal
}

// Handle executes the query.
// Returns an ObjectNotFoundError if there is no such courier.
func (h GetCourierQueryHandler) Handle(ctx context.Context, query GetCourierQuery) (GetCourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var profile courierRow
	result := db.Raw(`SELECT id, courier_type FROM couriers WHERE id = ?`, query.CourierID()).Scan(&profile)
	if result.Error != nil {
		return GetCourierQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetCourierQueryResponse{}, errs.NewObjectNotFoundError("courier", query.CourierID())
	}

	regions := make([]int, 0)
	err := db.Raw(`
		SELECT region
		FROM courier_regions
		WHERE courier_id = ?
		ORDER BY position
	`, profile.ID).Scan(&regions).Error
	if err != nil {
		return GetCourierQueryResponse{}, err
	}

	var hourRows []windowRow
	err = db.Raw(`
		SELECT courier_id AS owner_id, start_minute, end_minute
		FROM courier_working_hours
		WHERE courier_id = ?
		ORDER BY position
	`, profile.ID).Scan(&hourRows).Error
	if err != nil {
		return GetCourierQueryResponse{}, err
	}

	workingHours, err := toWindows(hourRows)
	if err != nil {
		return GetCourierQueryResponse{}, err
	}

	delivered, err := h.deliveredOrders(db, profile.ID)
	if err != nil {
		return GetCourierQueryResponse{}, err
	}

	return GetCourierQueryResponse{
		CourierID:    profile.ID,
		CourierType:  profile.CourierType,
		Regions:      regions,
		WorkingHours: kernel.FormatTimeWindows(workingHours),
		Rating:       h.rating.Rating(delivered),
		Earnings:     h.rating.Earnings(delivered),
	}, nil
}

func (h GetCourierQueryHandler) deliveredOrders(db *gorm.DB, courierID int64) ([]*order.Order, error) {
	var rows []deliveredRow
	err := db.Raw(`
		SELECT id, region, weight, assign_time, complete_time, price
		FROM orders
		WHERE courier_id = ? AND status = ?
		ORDER BY id
	`, courierID, int(order.Completed)).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []*order.Order{}, nil
	}

	var hourRows []windowRow
	err = db.Raw(`
		SELECT h.order_id AS owner_id, h.start_minute, h.end_minute
		FROM order_delivery_hours h
		JOIN orders o ON o.id = h.order_id
		WHERE o.courier_id = ? AND o.status = ?
		ORDER BY h.order_id, h.position
	`, courierID, int(order.Completed)).Scan(&hourRows).Error
	if err != nil {
		return nil, err
	}

	hoursByOrder := make(map[int64][]windowRow, len(rows))
	for _, r := range hourRows {
		hoursByOrder[r.OwnerID] = append(hoursByOrder[r.OwnerID], r)
	}

	orders := make([]*order.Order, 0, len(rows))
	for _, r := range rows {
		o, restoreErr := restoreDelivered(courierID, r, hoursByOrder[r.ID])
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func restoreDelivered(courierID int64, row deliveredRow, hours []windowRow) (*order.Order, error) {
	weight, err := kernel.NewWeight(row.Weight)
	if err != nil {
		return nil, err
	}

	windows, err := toWindows(hours)
	if err != nil {
		return nil, err
	}

	assignment, err := order.NewAssignment(courierID, row.AssignTime.UTC())
	if err != nil {
		return nil, err
	}

	completedAt := row.CompleteTime.UTC()
	return order.RestoreOrder(
		row.ID,
		row.Region,
		weight,
		windows,
		order.Completed,
		&assignment,
		&completedAt,
		row.Price,
	)
}

func toWindows(rows []windowRow) ([]kernel.TimeWindow, error) {
	windows := make([]kernel.TimeWindow, 0, len(rows))
	for _, r := range rows {
		w, err := kernel.NewTimeWindow(r.StartMinute, r.EndMinute)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}
