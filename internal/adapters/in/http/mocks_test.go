package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"candydelivery/internal/core/application/usecases/commands"
	"candydelivery/internal/core/application/usecases/queries"
)

type MockCreateCourierHandler struct {
	mock.Mock
}

func (m *MockCreateCourierHandler) Handle(ctx context.Context, cmd commands.CreateCourierCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCreateOrderHandler struct {
	mock.Mock
}

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockUpdateCourierHandler struct {
	mock.Mock
}

func (m *MockUpdateCourierHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateCourierCommand,
) (commands.UpdateCourierResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.UpdateCourierResult), args.Error(1)
}

type MockAssignOrdersHandler struct {
	mock.Mock
}

func (m *MockAssignOrdersHandler) Handle(
	ctx context.Context,
	cmd commands.AssignOrdersCommand,
) (commands.AssignOrdersResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AssignOrdersResult), args.Error(1)
}

type MockCompleteOrderHandler struct {
	mock.Mock
}

func (m *MockCompleteOrderHandler) Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockGetCourierHandler struct {
	mock.Mock
}

func (m *MockGetCourierHandler) Handle(
	ctx context.Context,
	query queries.GetCourierQuery,
) (queries.GetCourierQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetCourierQueryResponse), args.Error(1)
}
