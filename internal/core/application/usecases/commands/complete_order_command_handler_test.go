package commands_test

import (
	"testing"
	"time"

	"candydelivery/internal/core/application/usecases/commands"
	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/core/domain/model/order"
	"candydelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderCommand(t *testing.T) {
	cmd, err := commands.NewCompleteOrderCommand(2, 33, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cmd.CourierID())
	assert.Equal(t, int64(33), cmd.OrderID())
	assert.Equal(t, fixedNow, cmd.CompleteTime())

	_, err = commands.NewCompleteOrderCommand(0, 0, time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

type completeFixture struct {
	courierRepo *MockCourierRepository
	orderRepo   *MockOrderRepository
	uow         *MockUoW
	factory     *MockUoWFactory
}

func newCompleteFixture(t *testing.T) completeFixture {
	t.Helper()
	f := completeFixture{
		courierRepo: new(MockCourierRepository),
		orderRepo:   new(MockOrderRepository),
		uow:         new(MockUoW),
		factory:     new(MockUoWFactory),
	}
	ctx := t.Context()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("CourierRepository").Return(f.courierRepo).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.factory.On("Create").Return(f.uow).Once()
	return f
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	completeTime := fixedNow.Add(20 * time.Minute)
	cmd, err := commands.NewCompleteOrderCommand(2, 33, completeTime)
	require.NoError(t, err)

	c := testCourier(t, 2, courier.Bike, []int{1}, "09:00-18:00")
	o := assigned(t, testOrder(t, 33, 1, "2", "09:00-18:00"), 2, fixedNow)

	f := newCompleteFixture(t)
	f.courierRepo.On("GetForUpdate", ctx, int64(2)).Return(c, nil).Once()
	f.orderRepo.On("Get", ctx, int64(33)).Return(o, nil).Once()
	f.orderRepo.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	handler := commands.NewCompleteOrderCommandHandler(f.factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, o.IsDelivered())
	require.NotNil(t, o.CompletedAt())
	assert.Equal(t, completeTime, *o.CompletedAt())
	assert.True(t, o.Price().Equal(decimal.NewFromInt(2500)))
	f.uow.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCompleteOrderCommand(2, 33, fixedNow.Add(time.Hour))
	require.NoError(t, err)

	c := testCourier(t, 2, courier.Car, []int{1}, "09:00-18:00")
	o := assigned(t, testOrder(t, 33, 1, "2", "09:00-18:00"), 2, earlierTime)
	_, err = o.Complete(2, fixedNow, decimal.NewFromInt(1000))
	require.NoError(t, err)

	f := newCompleteFixture(t)
	f.courierRepo.On("GetForUpdate", ctx, int64(2)).Return(c, nil).Once()
	f.orderRepo.On("Get", ctx, int64(33)).Return(o, nil).Once()

	handler := commands.NewCompleteOrderCommandHandler(f.factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fixedNow, *o.CompletedAt())
	assert.True(t, o.Price().Equal(decimal.NewFromInt(1000)))
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCompleteOrderCommandHandler_Handle_Misses(t *testing.T) {
	testCases := []struct {
		name  string
		order func(t *testing.T) *order.Order
	}{
		{
			name: "order is held by another courier",
			order: func(t *testing.T) *order.Order {
				return assigned(t, testOrder(t, 33, 1, "2", "09:00-18:00"), 7, fixedNow)
			},
		},
		{
			name: "order was never assigned",
			order: func(t *testing.T) *order.Order {
				return testOrder(t, 33, 1, "2", "09:00-18:00")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctx := t.Context()
			cmd, err := commands.NewCompleteOrderCommand(2, 33, fixedNow)
			require.NoError(t, err)

			c := testCourier(t, 2, courier.Foot, []int{1}, "09:00-18:00")
			o := tc.order(t)
			statusBefore := o.Status()

			f := newCompleteFixture(t)
			f.courierRepo.On("GetForUpdate", ctx, int64(2)).Return(c, nil).Once()
			f.orderRepo.On("Get", ctx, int64(33)).Return(o, nil).Once()

			handler := commands.NewCompleteOrderCommandHandler(f.factory)

			// Act
			err = handler.Handle(ctx, cmd)

			// Assert
			require.ErrorIs(t, err, errs.ErrObjectNotFound)
			assert.Equal(t, statusBefore, o.Status())
			f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.uow.AssertNotCalled(t, "Commit", ctx)
		})
	}
}

func TestCompleteOrderCommandHandler_Handle_UnknownOrder(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCompleteOrderCommand(2, 404, fixedNow)
	require.NoError(t, err)

	c := testCourier(t, 2, courier.Foot, []int{1}, "09:00-18:00")

	f := newCompleteFixture(t)
	f.courierRepo.On("GetForUpdate", ctx, int64(2)).Return(c, nil).Once()
	f.orderRepo.On("Get", ctx, int64(404)).Return(nil, errs.NewObjectNotFoundError("order", int64(404))).Once()

	handler := commands.NewCompleteOrderCommandHandler(f.factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertNotCalled(t, "Commit", ctx)
}
