package courierrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"candydelivery/internal/adapters/out/postgres/pgerr"
	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/pkg/errs"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{
		db: db,
	}
}

// Add saves a new courier with its regions and working hours.
// A taken id is reported as an ObjectAlreadyExistsError.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsError("courier", aggregate.ID())
		}
		return err
	}

	if err := r.createChildren(db, dto); err != nil {
		return err
	}

	return nil
}

// Update saves the profile of an existing courier.
// Regions and working hours are replaced as a whole.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&CourierDTO{}).Where("id = ?", dto.ID).Update("courier_type", dto.CourierType)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", dto.ID)
	}

	if err := db.Where("courier_id = ?", dto.ID).Delete(&RegionDTO{}).Error; err != nil {
		return err
	}

	if err := db.Where("courier_id = ?", dto.ID).Delete(&WorkingHoursDTO{}).Error; err != nil {
		return err
	}

	if err := r.createChildren(db, dto); err != nil {
		return err
	}

	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id int64) (*courier.Courier, error) {
	var dto CourierDTO
	err := r.db.WithContext(ctx).
		Preload("Type").
		Preload("Regions", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate locks the courier row until the end of the transaction and then
// retrieves the courier. Outside a transaction the lock is released immediately.
func (r *GormCourierRepository) GetForUpdate(ctx context.Context, id int64) (*courier.Courier, error) {
	var locked CourierDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&locked, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id)
		}
		return nil, err
	}

	return r.Get(ctx, id)
}

func (r *GormCourierRepository) createChildren(db *gorm.DB, dto CourierDTO) error {
	if len(dto.Regions) > 0 {
		if err := db.Create(&dto.Regions).Error; err != nil {
			return err
		}
	}

	if len(dto.WorkingHours) > 0 {
		if err := db.Create(&dto.WorkingHours).Error; err != nil {
			return err
		}
	}

	return nil
}
