package services

import (
	"cmp"
	"slices"
	"time"

	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/core/domain/model/order"
)

// ClaimFunc atomically records the assignment of an order in storage.
// It returns false, without error, when another operation claimed the order first.
type ClaimFunc func(o *order.Order, assignment order.Assignment) (bool, error)

// AssignmentRound is the outcome of one assign call for a courier.
type AssignmentRound struct {
	// Orders are the courier's pending orders after the call, ascending by id.
	Orders []*order.Order
	// AssignedAt is the shared round timestamp, nil when Orders is empty.
	AssignedAt *time.Time
	// Replayed is true when the courier already had pending orders and nothing was matched.
	Replayed bool
}

// OrderIDs returns the ids of the round's orders, ascending.
func (r AssignmentRound) OrderIDs() []int64 {
	ids := make([]int64, 0, len(r.Orders))
	for _, o := range r.Orders {
		ids = append(ids, o.ID())
	}
	return ids
}

// OrderMatcher is a domain service that builds one assignment round for a courier:
// a greedy, window-major and id-minor claim of unassigned orders under the
// courier's weight capacity.
//
// Key responsibilities:
//   - Replaying the current pending batch instead of matching again
//   - Selecting candidates by region and weight
//   - Walking working windows in declared order and orders in id order
//   - Sharing one weight budget and one timestamp across the whole round
//
// Business rules:
//   - A courier with pending orders gets them back unchanged with their stored assign time
//   - An order is claimed for the first of its delivery windows that the current
//     working window matches
//   - A claim that loses a race is skipped and not retried within the round
//   - A round that claims nothing has no timestamp
//
// Example usage:
//
//	matcher := services.NewOrderMatcher()
//	round, err := matcher.Assign(c, pending, candidates, now, claim)
//	if err != nil {
//	    // Handle storage or validation failure
//	}
//	fmt.Println(round.OrderIDs(), round.AssignedAt)
type OrderMatcher struct{}

// NewOrderMatcher creates a new OrderMatcher instance.
func NewOrderMatcher() OrderMatcher {
	return OrderMatcher{}
}

// Assign produces or replays the assignment round of a courier.
//
// Parameters:
//   - c: the courier (must be valid)
//   - pending: the courier's undelivered assigned orders
//   - candidates: unassigned orders that may be claimed; order of the slice does not matter
//   - roundTime: timestamp shared by every claim of a new round
//   - claim: persists one claim atomically
//
// Returns:
//   - AssignmentRound: pending orders after the call
//   - error: validation error or the first error returned by claim
func (m OrderMatcher) Assign(
	c *courier.Courier,
	pending []*order.Order,
	candidates []*order.Order,
	roundTime time.Time,
	claim ClaimFunc,
) (AssignmentRound, error) {
	if err := c.Validate(); err != nil {
		return AssignmentRound{}, err
	}

	if len(pending) > 0 {
		return m.replay(pending), nil
	}

	assignment, err := order.NewAssignment(c.ID(), roundTime)
	if err != nil {
		return AssignmentRound{}, err
	}

	claimed, err := m.match(c, m.selectCandidates(c, candidates), assignment, claim)
	if err != nil {
		return AssignmentRound{}, err
	}

	if len(claimed) == 0 {
		return AssignmentRound{Orders: claimed}, nil
	}

	slices.SortFunc(claimed, byID)
	at := assignment.AssignedAt()
	return AssignmentRound{Orders: claimed, AssignedAt: &at}, nil
}

// replay returns the current batch sorted by id. All orders of a batch share one
// assign time, so the first one is representative.
func (m OrderMatcher) replay(pending []*order.Order) AssignmentRound {
	orders := slices.Clone(pending)
	slices.SortFunc(orders, byID)

	var at *time.Time
	if a := orders[0].Assignment(); a != nil {
		t := a.AssignedAt()
		at = &t
	}

	return AssignmentRound{Orders: orders, AssignedAt: at, Replayed: true}
}

// selectCandidates keeps unassigned orders in the courier's regions that fit
// into its capacity, ascending by id.
func (m OrderMatcher) selectCandidates(c *courier.Courier, candidates []*order.Order) []*order.Order {
	capacity := c.Capacity()

	selected := make([]*order.Order, 0, len(candidates))
	for _, o := range candidates {
		if o.Status() != order.Created || !c.ServesRegion(o.Region()) || !o.Weight().FitsInto(capacity) {
			continue
		}
		selected = append(selected, o)
	}

	slices.SortStableFunc(selected, byID)
	return selected
}

// match walks working windows in declared order and, for each, candidates in id
// order. The weight budget is shared by the whole round.
func (m OrderMatcher) match(
	c *courier.Courier,
	candidates []*order.Order,
	assignment order.Assignment,
	claim ClaimFunc,
) ([]*order.Order, error) {
	remaining := c.Capacity()
	settled := make(map[int64]bool, len(candidates))
	claimed := make([]*order.Order, 0)

	for _, working := range c.WorkingHours() {
		for _, o := range candidates {
			if settled[o.ID()] || !o.Weight().FitsInto(remaining) {
				continue
			}

			if !o.MatchesWorkingWindow(working) {
				continue
			}

			ok, err := claim(o, assignment)
			if err != nil {
				return nil, err
			}

			// a lost claim is settled as well: it is not retried in this round
			settled[o.ID()] = true
			if !ok {
				continue
			}

			if err := o.Assign(assignment); err != nil {
				return nil, err
			}

			remaining = remaining.Sub(o.Weight().Decimal())
			claimed = append(claimed, o)
		}
	}

	return claimed, nil
}

func byID(a, b *order.Order) int {
	return cmp.Compare(a.ID(), b.ID())
}
