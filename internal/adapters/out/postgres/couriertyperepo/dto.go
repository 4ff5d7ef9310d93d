// Package couriertyperepo provides read access to the courier type catalog.
// The catalog rows are seeded by a schema migration; the service never writes them.
package couriertyperepo

import (
	"github.com/shopspring/decimal"

	"candydelivery/internal/core/domain/model/courier"
)

// CourierTypeDTO represents one row of the courier type catalog.
type CourierTypeDTO struct {
	Code        string          `gorm:"type:varchar(16);primaryKey"`
	Capacity    decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Coefficient int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for catalog rows.
func (CourierTypeDTO) TableName() string {
	return "courier_types"
}

// ToDomain converts a catalog row into the courier type value.
// Exported because the courier repository restores the type of a courier from the
// same row.
func ToDomain(dto CourierTypeDTO) (courier.Type, error) {
	code, err := courier.ParseTypeCode(dto.Code)
	if err != nil {
		return courier.Type{}, err
	}

	return courier.NewType(code, dto.Capacity, dto.Coefficient)
}
