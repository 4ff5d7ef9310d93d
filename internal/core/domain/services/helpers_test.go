package services_test

import (
	"testing"
	"time"

	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/core/domain/model/kernel"
	"candydelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	roundTime    = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	earlierRound = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
)

var catalog = map[courier.TypeCode]struct {
	capacity    int64
	coefficient int
}{
	courier.Foot: {10, 2},
	courier.Bike: {15, 5},
	courier.Car:  {50, 9},
}

func mustType(t *testing.T, code courier.TypeCode) courier.Type {
	t.Helper()
	entry := catalog[code]
	ct, err := courier.NewType(code, decimal.NewFromInt(entry.capacity), entry.coefficient)
	require.NoError(t, err)
	return ct
}

func mustWindows(t *testing.T, ss ...string) []kernel.TimeWindow {
	t.Helper()
	windows, err := kernel.ParseTimeWindows(ss)
	require.NoError(t, err)
	return windows
}

func newCourier(t *testing.T, id int64, code courier.TypeCode, regions []int, hours ...string) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(id, mustType(t, code), regions, mustWindows(t, hours...))
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, id int64, region int, weight string, hours ...string) *order.Order {
	t.Helper()
	w, err := kernel.ParseWeight(weight)
	require.NoError(t, err)
	o, err := order.NewOrder(id, region, w, mustWindows(t, hours...))
	require.NoError(t, err)
	return o
}

func assignTo(t *testing.T, o *order.Order, courierID int64, at time.Time) *order.Order {
	t.Helper()
	a, err := order.NewAssignment(courierID, at)
	require.NoError(t, err)
	require.NoError(t, o.Assign(a))
	return o
}

func deliver(t *testing.T, o *order.Order, courierID int64, assignedAt, completedAt time.Time) *order.Order {
	t.Helper()
	assignTo(t, o, courierID, assignedAt)
	_, err := o.Complete(courierID, completedAt, decimal.NewFromInt(1000))
	require.NoError(t, err)
	return o
}

func ids(orders []*order.Order) []int64 {
	out := make([]int64, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID())
	}
	return out
}

// claimAll accepts every claim and records the order in which they were attempted.
func claimAll(attempts *[]int64) func(*order.Order, order.Assignment) (bool, error) {
	return func(o *order.Order, _ order.Assignment) (bool, error) {
		*attempts = append(*attempts, o.ID())
		return true, nil
	}
}
