// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"candydelivery/internal/core/domain/model/kernel"
	"candydelivery/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The assignment is stored as two columns that are either both set or both null.
type OrderDTO struct {
	ID            int64              `gorm:"primaryKey;autoIncrement:false"`
	Region        int                `gorm:"not null"`
	Weight        decimal.Decimal    `gorm:"type:numeric(4,2);not null"`
	Status        int                `gorm:"type:smallint;not null"`
	CourierID     *int64             `gorm:"index"`
	AssignTime    *time.Time         `gorm:"type:timestamptz"`
	CompleteTime  *time.Time         `gorm:"type:timestamptz"`
	Price         decimal.Decimal    `gorm:"type:numeric(12,2);not null;default:0"`
	DeliveryHours []DeliveryHoursDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryHoursDTO is one delivery window of an order in minutes since midnight.
type DeliveryHoursDTO struct {
	OrderID     int64 `gorm:"primaryKey;autoIncrement:false"`
	Position    int   `gorm:"primaryKey;autoIncrement:false"`
	StartMinute int   `gorm:"type:smallint;not null"`
	EndMinute   int   `gorm:"type:smallint;not null"`
}

// TableName specifies the database table name for order delivery hours.
func (DeliveryHoursDTO) TableName() string {
	return "order_delivery_hours"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional courier assignment.
func fromDomain(o *order.Order) OrderDTO {
	var courierID *int64
	var assignTime *time.Time
	if a := o.Assignment(); a != nil {
		id := a.CourierID()
		at := a.AssignedAt()
		courierID = &id
		assignTime = &at
	}

	hours := make([]DeliveryHoursDTO, 0, len(o.DeliveryHours()))
	for i, w := range o.DeliveryHours() {
		hours = append(hours, DeliveryHoursDTO{
			OrderID:     o.ID(),
			Position:    i,
			StartMinute: w.From(),
			EndMinute:   w.To(),
		})
	}

	return OrderDTO{
		ID:            o.ID(),
		Region:        o.Region(),
		Weight:        o.Weight().Decimal(),
		Status:        int(o.Status()),
		CourierID:     courierID,
		AssignTime:    assignTime,
		CompleteTime:  o.CompletedAt(),
		Price:         o.Price(),
		DeliveryHours: hours,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and courier assignment using RestoreOrder.
// A row with only one of courier_id and assign_time set is rejected.
func toDomain(dto OrderDTO) (*order.Order, error) {
	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	hours := make([]kernel.TimeWindow, 0, len(dto.DeliveryHours))
	for _, h := range dto.DeliveryHours {
		w, windowErr := kernel.NewTimeWindow(h.StartMinute, h.EndMinute)
		if windowErr != nil {
			return nil, windowErr
		}
		hours = append(hours, w)
	}

	var assignment *order.Assignment
	switch {
	case dto.CourierID != nil && dto.AssignTime != nil:
		a, assignErr := order.NewAssignment(*dto.CourierID, *dto.AssignTime)
		if assignErr != nil {
			return nil, assignErr
		}
		assignment = &a
	case dto.CourierID != nil || dto.AssignTime != nil:
		return nil, order.ErrAssignmentIsNotConstructed
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Region,
		weight,
		hours,
		order.Status(dto.Status),
		assignment,
		dto.CompleteTime,
		dto.Price,
	)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
