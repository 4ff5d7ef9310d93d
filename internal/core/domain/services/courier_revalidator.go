package services

import (
	"slices"

	"github.com/shopspring/decimal"

	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/core/domain/model/order"
)

// ProfileChange describes what a courier profile edit removed.
type ProfileChange struct {
	// RemovedRegions are regions the courier no longer serves.
	RemovedRegions []int
	// RecheckCapacity requests the prefix-keep pass against the current capacity.
	// Set after a type downgrade, and by the periodic sweep.
	RecheckCapacity bool
}

// CourierRevalidator is a domain service that releases pending orders a courier
// can no longer keep after its profile changed.
//
// Passes run in a fixed order, each on the orders the previous one kept, and
// only ever release orders:
//  1. region removal: orders in a removed region are released unconditionally
//  2. capacity: orders are kept in ascending id order while their cumulative
//     weight fits into the capacity; the first overflow and everything after it
//     is released, even if a later, lighter order would still fit
//  3. working hours: orders with no delivery window matching any current working
//     window are released; this pass always runs
//
// Example usage:
//
//	downgraded, _ := c.ChangeType(footType)
//	released, err := services.NewCourierRevalidator().Revalidate(c, pending,
//	    services.ProfileChange{RecheckCapacity: downgraded})
type CourierRevalidator struct{}

// NewCourierRevalidator creates a new CourierRevalidator instance.
func NewCourierRevalidator() CourierRevalidator {
	return CourierRevalidator{}
}

// Revalidate applies the passes to the courier's pending orders.
//
// Parameters:
//   - c: the courier with its profile already changed (must be valid)
//   - pending: the courier's undelivered assigned orders; others are ignored
//   - change: what the edit removed
//
// Returns:
//   - []*order.Order: the released orders, already unassigned, ascending by id
//   - error: validation error or a failed status transition
func (r CourierRevalidator) Revalidate(
	c *courier.Courier,
	pending []*order.Order,
	change ProfileChange,
) ([]*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	kept := make([]*order.Order, 0, len(pending))
	for _, o := range pending {
		if o.IsPending() && o.IsAssignedTo(c.ID()) {
			kept = append(kept, o)
		}
	}
	slices.SortStableFunc(kept, byID)

	var released []*order.Order

	kept, released = partition(kept, released, func(o *order.Order) bool {
		return !slices.Contains(change.RemovedRegions, o.Region())
	})

	if change.RecheckCapacity {
		total := decimal.Zero
		overflow := false
		capacity := c.Capacity()
		kept, released = partition(kept, released, func(o *order.Order) bool {
			if overflow {
				return false
			}
			next := total.Add(o.Weight().Decimal())
			if next.GreaterThan(capacity) {
				overflow = true
				return false
			}
			total = next
			return true
		})
	}

	workingHours := c.WorkingHours()
	_, released = partition(kept, released, func(o *order.Order) bool {
		return o.MatchesAnyWorkingWindow(workingHours)
	})

	for _, o := range released {
		if err := o.Unassign(); err != nil {
			return nil, err
		}
	}

	slices.SortFunc(released, byID)
	return released, nil
}

// partition splits orders by keep, appending the rejected ones to released.
// Iteration order is preserved in both outputs.
func partition(
	orders []*order.Order,
	released []*order.Order,
	keep func(*order.Order) bool,
) ([]*order.Order, []*order.Order) {
	kept := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if keep(o) {
			kept = append(kept, o)
			continue
		}
		released = append(released, o)
	}
	return kept, released
}
