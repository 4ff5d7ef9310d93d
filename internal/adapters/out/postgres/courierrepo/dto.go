// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"candydelivery/internal/adapters/out/postgres/couriertyperepo"
	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Regions and working hours live in child tables keyed by position, so their
// declared order survives a round trip.
type CourierDTO struct {
	ID           int64                           `gorm:"primaryKey;autoIncrement:false"`
	CourierType  *string                         `gorm:"type:varchar(16)"`
	Type         *couriertyperepo.CourierTypeDTO `gorm:"foreignKey:CourierType;references:Code"`
	Regions      []RegionDTO                     `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
	WorkingHours []WorkingHoursDTO               `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// RegionDTO is one served region of a courier.
type RegionDTO struct {
	CourierID int64 `gorm:"primaryKey;autoIncrement:false"`
	Position  int   `gorm:"primaryKey;autoIncrement:false"`
	Region    int   `gorm:"not null"`
}

// TableName specifies the database table name for courier regions.
func (RegionDTO) TableName() string {
	return "courier_regions"
}

// WorkingHoursDTO is one working window of a courier in minutes since midnight.
type WorkingHoursDTO struct {
	CourierID   int64 `gorm:"primaryKey;autoIncrement:false"`
	Position    int   `gorm:"primaryKey;autoIncrement:false"`
	StartMinute int   `gorm:"type:smallint;not null"`
	EndMinute   int   `gorm:"type:smallint;not null"`
}

// TableName specifies the database table name for courier working hours.
func (WorkingHoursDTO) TableName() string {
	return "courier_working_hours"
}

// fromDomain converts a courier domain aggregate to its database representation.
// The catalog row itself is never written through a courier, so Type stays nil.
func fromDomain(c *courier.Courier) CourierDTO {
	var courierType *string
	if t := c.Type(); t != nil {
		code := t.Code().String()
		courierType = &code
	}

	regions := make([]RegionDTO, 0, len(c.Regions()))
	for i, region := range c.Regions() {
		regions = append(regions, RegionDTO{
			CourierID: c.ID(),
			Position:  i,
			Region:    region,
		})
	}

	hours := make([]WorkingHoursDTO, 0, len(c.WorkingHours()))
	for i, w := range c.WorkingHours() {
		hours = append(hours, WorkingHoursDTO{
			CourierID:   c.ID(),
			Position:    i,
			StartMinute: w.From(),
			EndMinute:   w.To(),
		})
	}

	return CourierDTO{
		ID:           c.ID(),
		CourierType:  courierType,
		Regions:      regions,
		WorkingHours: hours,
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Children are expected to be loaded ordered by position.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	var courierType *courier.Type
	if dto.Type != nil {
		t, err := couriertyperepo.ToDomain(*dto.Type)
		if err != nil {
			return nil, err
		}
		courierType = &t
	}

	regions := make([]int, 0, len(dto.Regions))
	for _, r := range dto.Regions {
		regions = append(regions, r.Region)
	}

	hours := make([]kernel.TimeWindow, 0, len(dto.WorkingHours))
	for _, h := range dto.WorkingHours {
		w, err := kernel.NewTimeWindow(h.StartMinute, h.EndMinute)
		if err != nil {
			return nil, err
		}
		hours = append(hours, w)
	}

	return courier.RestoreCourier(dto.ID, courierType, regions, hours)
}
