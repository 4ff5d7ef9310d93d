package orderrepo

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"candydelivery/internal/adapters/out/postgres/pgerr"
	"candydelivery/internal/core/domain/model/order"
	"candydelivery/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db: db,
	}
}

// Add saves a new order with its delivery hours.
// A taken id is reported as an ObjectAlreadyExistsError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsError("order", aggregate.ID())
		}
		return err
	}

	if len(dto.DeliveryHours) > 0 {
		if err := db.Create(&dto.DeliveryHours).Error; err != nil {
			return err
		}
	}

	return nil
}

// Update saves the lifecycle state of an existing order.
// Region, weight and delivery hours are immutable and never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "courier_id", "assign_time", "complete_time", "price").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.withHours(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Claim assigns the order only if nobody holds it yet.
// Returns false without error when another operation claimed it first.
func (r *GormOrderRepository) Claim(ctx context.Context, id int64, assignment order.Assignment) (bool, error) {
	if err := assignment.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND courier_id IS NULL AND status = ?", id, int(order.Created)).
		Updates(map[string]any{
			"status":      int(order.Assigned),
			"courier_id":  assignment.CourierID(),
			"assign_time": assignment.AssignedAt(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// GetPendingByCourier retrieves the undelivered orders held by a courier, ascending by id.
func (r *GormOrderRepository) GetPendingByCourier(ctx context.Context, courierID int64) ([]*order.Order, error) {
	return r.findByCourier(ctx, courierID, order.Assigned)
}

// GetDeliveredByCourier retrieves the orders a courier delivered, ascending by id.
func (r *GormOrderRepository) GetDeliveredByCourier(ctx context.Context, courierID int64) ([]*order.Order, error) {
	return r.findByCourier(ctx, courierID, order.Completed)
}

// GetUnassignedInRegions retrieves claimable orders of the given regions that weigh
// at most maxWeight, ascending by id.
func (r *GormOrderRepository) GetUnassignedInRegions(
	ctx context.Context,
	regions []int,
	maxWeight decimal.Decimal,
) ([]*order.Order, error) {
	if len(regions) == 0 {
		return []*order.Order{}, nil
	}

	var dtos []OrderDTO
	err := r.withHours(ctx).
		Where("courier_id IS NULL AND status = ? AND region IN ? AND weight <= ?",
			int(order.Created), regions, maxWeight).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) findByCourier(
	ctx context.Context,
	courierID int64,
	status order.Status,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withHours(ctx).
		Where("courier_id = ? AND status = ?", courierID, int(status)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) withHours(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("DeliveryHours", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
