package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"candydelivery/internal/core/domain/model/kernel"
	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotAssignedToCourier is returned when a courier acts on an order it does not hold.
	ErrOrderIsNotAssignedToCourier = errors.New("order is not assigned to the courier")
)

// Order represents a delivery order in the system. It is the aggregate root that manages
// the order lifecycle from import through assignment to completion.
//
// Order follows these invariants:
//   - Must have a positive identifier and a positive region
//   - Weight is in (0, 50] with at most two decimal places
//   - Delivery hours keep the order in which they were imported
//   - A Created order has no assignment; Assigned and Completed orders have one
//   - A Completed order has a completion time and a price
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the identifier supplied at import
	id int64

	// region is the district the order is delivered to
	region int

	// weight is the order weight in kilograms
	weight kernel.Weight

	// deliveryHours are the windows the customer accepts delivery in, stored order
	deliveryHours []kernel.TimeWindow

	// status represents the current state in the order lifecycle
	status Status

	// assignment is the active courier claim (nil if unassigned)
	assignment *Assignment

	// completedAt is the delivery time reported by the courier (nil until completed)
	completedAt *time.Time

	// price is what the courier earned for the order, zero until completed
	price decimal.Decimal

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new unassigned Order. This is the only way to create a fresh
// valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Identifier supplied by the client (must be positive)
//   - region: District the order is delivered to (must be positive)
//   - weight: Validated order weight
//   - deliveryHours: Accepted delivery windows; stored order is kept
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation errors for every invalid parameter, joined
//
// Example:
//
//	weight, _ := kernel.ParseWeight("0.23")
//	hours, _ := kernel.ParseTimeWindows([]string{"09:00-18:00"})
//	o, err := order.NewOrder(1, 12, weight, hours)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id int64, region int, weight kernel.Weight, deliveryHours []kernel.TimeWindow) (*Order, error) {
	order := &Order{
		status: Created,
		price:  decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setRegion(region),
		order.setWeight(weight),
		order.setDeliveryHours(deliveryHours),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it accepts any lifecycle state and checks that the stored state
// is self-consistent: status, assignment, completion time and price must agree.
//
// Parameters:
//   - id, region, weight, deliveryHours: as for NewOrder
//   - status: persisted lifecycle state
//   - assignment: active claim, nil for Created orders
//   - completedAt: delivery time, set only for Completed orders
//   - price: courier earnings for the order, zero unless Completed
//
// Returns:
//   - *Order: Restored order aggregate
//   - error: Validation error if the persisted state is inconsistent
func RestoreOrder(
	id int64,
	region int,
	weight kernel.Weight,
	deliveryHours []kernel.TimeWindow,
	status Status,
	assignment *Assignment,
	completedAt *time.Time,
	price decimal.Decimal,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setRegion(region),
		order.setWeight(weight),
		order.setDeliveryHours(deliveryHours),
		order.setStatus(status, assignment),
		order.setCompletion(status, completedAt, price),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Region returns the delivery district.
func (o *Order) Region() int {
	return o.region
}

// Weight returns the order weight.
func (o *Order) Weight() kernel.Weight {
	return o.weight
}

// DeliveryHours returns a copy of the delivery windows in stored order.
func (o *Order) DeliveryHours() []kernel.TimeWindow {
	return slices.Clone(o.deliveryHours)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Assignment returns a copy of the active claim, or nil if unassigned.
func (o *Order) Assignment() *Assignment {
	if o.assignment == nil {
		return nil
	}
	a := *o.assignment
	return &a
}

// CompletedAt returns the delivery time, or nil until the order is completed.
func (o *Order) CompletedAt() *time.Time {
	if o.completedAt == nil {
		return nil
	}
	t := *o.completedAt
	return &t
}

// Price returns the courier earnings for the order, zero until completed.
func (o *Order) Price() decimal.Decimal {
	return o.price
}

// IsDelivered reports whether the order has been completed.
func (o *Order) IsDelivered() bool {
	return o.status == Completed
}

// IsPending reports whether a courier holds the order and has not delivered it yet.
func (o *Order) IsPending() bool {
	return o.status == Assigned
}

// IsAssignedTo reports whether the order is held, or was delivered, by the courier.
func (o *Order) IsAssignedTo(courierID int64) bool {
	return o.assignment != nil && o.assignment.CourierID() == courierID
}

// MatchesWorkingWindow reports whether the working window accepts at least one
// delivery window of the order. Delivery windows are tried in stored order.
func (o *Order) MatchesWorkingWindow(working kernel.TimeWindow) bool {
	return working.FirstMatching(o.deliveryHours) >= 0
}

// MatchesAnyWorkingWindow reports whether any delivery window of the order is accepted
// by any of the working windows.
func (o *Order) MatchesAnyWorkingWindow(working []kernel.TimeWindow) bool {
	return kernel.AnyWindowMatches(working, o.deliveryHours)
}

// Assign attaches a courier claim to an unassigned order.
//
// This method enforces the following business rules:
//   - The assignment must be constructed
//   - The order must be in Created status
//
// Returns:
//   - nil on successful assignment
//   - error if the assignment is invalid or the order is already held or delivered
func (o *Order) Assign(assignment Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignment = &assignment
	return nil
}

// Unassign releases a pending order so that it becomes a candidate again.
// Courier and assign time are cleared together.
func (o *Order) Unassign() error {
	newStatus, err := o.status.Unassign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignment = nil
	return nil
}

// Complete marks the order as delivered by the courier holding it.
//
// This method enforces the following business rules:
//   - The order must be held by courierID
//   - Completing an already delivered order changes nothing and succeeds
//   - completedAt is trusted caller input and stored as given (in UTC)
//   - price is fixed at completion time and never recomputed
//
// Returns:
//   - changed: false when the order was already delivered
//   - error: ErrOrderIsNotAssignedToCourier, or a status transition error
//
// Example:
//
//	changed, err := o.Complete(courierID, completeTime, c.OrderPrice())
//	if err != nil {
//	    // wrong courier or order never assigned
//	}
func (o *Order) Complete(courierID int64, completedAt time.Time, price decimal.Decimal) (bool, error) {
	if !o.IsAssignedTo(courierID) {
		return false, ErrOrderIsNotAssignedToCourier
	}

	if o.status == Completed {
		return false, nil
	}

	if completedAt.IsZero() {
		return false, errs.NewValueIsRequiredError("complete time")
	}

	if price.IsNegative() {
		return false, errs.NewValueIsOutOfRangeError("price", price.String(), 0, "unbounded")
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return false, err
	}

	at := completedAt.UTC()
	o.status = newStatus
	o.completedAt = &at
	o.price = price
	return true, nil
}

// setID validates and sets the order's identifier.
func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", id, 1, "max int64")
	}
	o.id = id
	return nil
}

// setRegion validates and sets the delivery district.
func (o *Order) setRegion(region int) error {
	if region <= 0 {
		return errs.NewValueIsOutOfRangeError("region", region, 1, "max int")
	}
	o.region = region
	return nil
}

// setWeight validates and sets the order weight.
func (o *Order) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	o.weight = weight
	return nil
}

// setDeliveryHours validates every window and keeps a private copy.
func (o *Order) setDeliveryHours(hours []kernel.TimeWindow) error {
	for _, w := range hours {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	o.deliveryHours = slices.Clone(hours)
	return nil
}

// setStatus restores the lifecycle state together with the matching assignment.
func (o *Order) setStatus(status Status, assignment *Assignment) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if err := status.ValidateCanHaveAssignment(assignment != nil); err != nil {
		return err
	}

	if assignment != nil {
		if err := assignment.Validate(); err != nil {
			return err
		}
		a := *assignment
		o.assignment = &a
	}

	o.status = status
	return nil
}

// setCompletion restores completion time and price, which exist only for Completed orders.
func (o *Order) setCompletion(status Status, completedAt *time.Time, price decimal.Decimal) error {
	if status == Completed {
		if completedAt == nil || completedAt.IsZero() {
			return errs.NewValueIsRequiredError("complete time of a completed order")
		}
		if price.IsNegative() {
			return errs.NewValueIsOutOfRangeError("price", price.String(), 0, "unbounded")
		}
		at := completedAt.UTC()
		o.completedAt = &at
		o.price = price
		return nil
	}

	if completedAt != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"complete time",
			fmt.Errorf("%s order cannot have a complete time", status),
		)
	}

	if !price.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s order cannot have a price", status),
		)
	}

	o.price = decimal.Zero
	return nil
}
