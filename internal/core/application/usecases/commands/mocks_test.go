package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"candydelivery/internal/core/application/usecases/commands"
	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/core/domain/model/kernel"
	"candydelivery/internal/core/domain/model/order"
	"candydelivery/internal/core/ports"
)

// Mock implementations for testing.
type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id int64) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetForUpdate(ctx context.Context, id int64) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockCourierTypeRepository struct {
	mock.Mock
}

func (m *MockCourierTypeRepository) Get(ctx context.Context, code courier.TypeCode) (courier.Type, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(courier.Type), args.Error(1)
}

func (m *MockCourierTypeRepository) GetAll(ctx context.Context) ([]courier.Type, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]courier.Type), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Claim(ctx context.Context, id int64, assignment order.Assignment) (bool, error) {
	args := m.Called(ctx, id, assignment)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetPendingByCourier(ctx context.Context, courierID int64) ([]*order.Order, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetDeliveredByCourier(ctx context.Context, courierID int64) ([]*order.Order, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetUnassignedInRegions(
	ctx context.Context,
	regions []int,
	maxWeight decimal.Decimal,
) ([]*order.Order, error) {
	args := m.Called(ctx, regions, maxWeight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// MockUoW implements every unit of work flavour used by the handlers.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) CourierTypeRepository() ports.CourierTypeRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierTypeRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCourierUoWFactory struct {
	mock.Mock
}

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

var (
	fixedNow    = time.Date(2021, time.January, 10, 9, 32, 14, 420000000, time.UTC)
	earlierTime = fixedNow.Add(-time.Hour)
)

func catalogType(t *testing.T, code courier.TypeCode) courier.Type {
	t.Helper()
	capacity := map[courier.TypeCode]int64{courier.Foot: 10, courier.Bike: 15, courier.Car: 50}
	coefficient := map[courier.TypeCode]int{courier.Foot: 2, courier.Bike: 5, courier.Car: 9}
	ct, err := courier.NewType(code, decimal.NewFromInt(capacity[code]), coefficient[code])
	require.NoError(t, err)
	return ct
}

func windows(t *testing.T, ss ...string) []kernel.TimeWindow {
	t.Helper()
	ws, err := kernel.ParseTimeWindows(ss)
	require.NoError(t, err)
	return ws
}

func testCourier(t *testing.T, id int64, code courier.TypeCode, regions []int, hours ...string) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(id, catalogType(t, code), regions, windows(t, hours...))
	require.NoError(t, err)
	return c
}

func testOrder(t *testing.T, id int64, region int, weight string, hours ...string) *order.Order {
	t.Helper()
	w, err := kernel.ParseWeight(weight)
	require.NoError(t, err)
	o, err := order.NewOrder(id, region, w, windows(t, hours...))
	require.NoError(t, err)
	return o
}

func assigned(t *testing.T, o *order.Order, courierID int64, at time.Time) *order.Order {
	t.Helper()
	a, err := order.NewAssignment(courierID, at)
	require.NoError(t, err)
	require.NoError(t, o.Assign(a))
	return o
}
