package couriertyperepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/pkg/errs"
)

// GormCourierTypeRepository implements CourierTypeRepository using GORM.
type GormCourierTypeRepository struct {
	db *gorm.DB
}

// NewGormCourierTypeRepository creates a new GORM catalog repository.
func NewGormCourierTypeRepository(db *gorm.DB) *GormCourierTypeRepository {
	return &GormCourierTypeRepository{db: db}
}

// Get retrieves the catalog entry for code.
func (r *GormCourierTypeRepository) Get(ctx context.Context, code courier.TypeCode) (courier.Type, error) {
	if err := code.Validate(); err != nil {
		return courier.Type{}, err
	}

	var dto CourierTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return courier.Type{}, errs.NewObjectNotFoundError("courier type", code.String())
		}
		return courier.Type{}, err
	}

	return ToDomain(dto)
}

// GetAll retrieves every catalog entry ordered by capacity.
func (r *GormCourierTypeRepository) GetAll(ctx context.Context) ([]courier.Type, error) {
	var dtos []CourierTypeDTO
	if err := r.db.WithContext(ctx).Order("capacity").Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	types := make([]courier.Type, 0, len(dtos))
	for _, dto := range dtos {
		t, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, nil
}
