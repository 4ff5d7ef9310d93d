package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"candydelivery/internal/core/application/usecases/commands"
	"candydelivery/internal/core/application/usecases/queries"
	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/core/domain/model/kernel"
	"candydelivery/internal/generated/servers"
	"candydelivery/internal/pkg/errs"
)

// CreateCourierHandler stores one imported courier.
type CreateCourierHandler interface {
	Handle(ctx context.Context, cmd commands.CreateCourierCommand) error
}

// CreateOrderHandler stores one imported order.
type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
}

// UpdateCourierHandler edits a courier profile.
type UpdateCourierHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateCourierCommand) (commands.UpdateCourierResult, error)
}

// AssignOrdersHandler runs an assignment round.
type AssignOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.AssignOrdersCommand) (commands.AssignOrdersResult, error)
}

// CompleteOrderHandler marks an order delivered.
type CompleteOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error
}

// GetCourierHandler reads a courier profile.
type GetCourierHandler interface {
	Handle(ctx context.Context, query queries.GetCourierQuery) (queries.GetCourierQueryResponse, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCourierHandler CreateCourierHandler
	createOrderHandler   CreateOrderHandler
	updateCourierHandler UpdateCourierHandler
	assignOrdersHandler  AssignOrdersHandler
	completeOrderHandler CompleteOrderHandler

	// Query handlers
	getCourierHandler GetCourierHandler

	validator *SchemaValidator
	logger    *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCourierHandler CreateCourierHandler,
	createOrderHandler CreateOrderHandler,
	updateCourierHandler UpdateCourierHandler,
	assignOrdersHandler AssignOrdersHandler,
	completeOrderHandler CompleteOrderHandler,
	getCourierHandler GetCourierHandler,
	validator *SchemaValidator,
	logger *slog.Logger,
) *Server {
	return &Server{
		createCourierHandler: createCourierHandler,
		createOrderHandler:   createOrderHandler,
		updateCourierHandler: updateCourierHandler,
		assignOrdersHandler:  assignOrdersHandler,
		completeOrderHandler: completeOrderHandler,
		getCourierHandler:    getCourierHandler,
		validator:            validator,
		logger:               logger,
	}
}

// ImportCouriers handles POST /couriers - imports a batch of couriers.
// Every record is stored on its own; rejected ids are reported together with 400
// while the accepted records stay stored.
func (s *Server) ImportCouriers(ctx echo.Context) error {
	var request servers.CouriersImportRequest
	if err := s.validator.DecodeBody(ctx.Request().Body, "CouriersImportRequest", &request); err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	accepted := make([]servers.Id, 0, len(request.Data))
	rejected := make([]servers.Id, 0)

	for _, record := range request.Data {
		id := recordID(record, "courier_id")

		err := s.importCourier(ctx.Request().Context(), record)
		if err == nil {
			accepted = append(accepted, servers.Id{Id: id})
			continue
		}
		if !isRejection(err) {
			return s.fail(ctx, err, http.StatusBadRequest)
		}

		s.logger.InfoContext(ctx.Request().Context(), "courier rejected", "courier_id", id, "error", err)
		rejected = append(rejected, servers.Id{Id: id})
	}

	if len(rejected) > 0 {
		return ctx.JSON(http.StatusBadRequest, servers.CouriersValidationError{
			ValidationError: servers.CouriersIds{Couriers: rejected},
		})
	}

	return ctx.JSON(http.StatusCreated, servers.CouriersIds{Couriers: accepted})
}

func (s *Server) importCourier(ctx context.Context, record map[string]interface{}) error {
	var item servers.CourierItem
	if err := s.validator.DecodeRecord("CourierItem", record, &item); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCourierCommand(item.CourierId, string(item.CourierType), item.Regions, item.WorkingHours)
	if err != nil {
		return err
	}

	return s.createCourierHandler.Handle(ctx, cmd)
}

// GetCourier handles GET /couriers/{courier_id} - returns the profile with rating and earnings.
func (s *Server) GetCourier(ctx echo.Context, courierID int64) error {
	query, err := queries.NewGetCourierQuery(courierID)
	if err != nil {
		// there is no courier with a non-positive id
		return s.fail(ctx, errs.NewObjectNotFoundErrorWithCause("courier", courierID, err), http.StatusNotFound)
	}

	profile, err := s.getCourierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, servers.CourierProfile{
		CourierId:    profile.CourierID,
		CourierType:  profile.CourierType,
		Regions:      profile.Regions,
		WorkingHours: profile.WorkingHours,
		Rating:       profile.Rating,
		Earnings:     profile.Earnings.Round(0).IntPart(),
	})
}

// UpdateCourier handles PATCH /couriers/{courier_id} - changes a courier profile.
// Orders the courier can no longer deliver are released as part of the change.
func (s *Server) UpdateCourier(ctx echo.Context, courierID int64) error {
	var request servers.CourierUpdateRequest
	if err := s.validator.DecodeBody(ctx.Request().Body, "CourierUpdateRequest", &request); err != nil {
		return s.fail(ctx, err, http.StatusNotFound)
	}

	var courierType *string
	if request.CourierType != nil {
		code := string(*request.CourierType)
		courierType = &code
	}

	var regions []int
	if request.Regions != nil {
		regions = *request.Regions
	}

	var workingHours []string
	if request.WorkingHours != nil {
		workingHours = *request.WorkingHours
	}

	cmd, err := commands.NewUpdateCourierCommand(courierID, courierType, regions, workingHours)
	if err != nil {
		return s.fail(ctx, err, http.StatusNotFound)
	}

	result, err := s.updateCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, http.StatusNotFound)
	}

	if len(result.ReleasedOrderIDs) > 0 {
		s.logger.InfoContext(ctx.Request().Context(), "orders released by profile change",
			"courier_id", courierID, "order_ids", result.ReleasedOrderIDs)
	}

	return ctx.JSON(http.StatusOK, toCourierUpdateResponse(result.Courier))
}

// ImportOrders handles POST /orders - imports a batch of orders.
// Rejections are reported the same way as for couriers.
func (s *Server) ImportOrders(ctx echo.Context) error {
	var request servers.OrdersImportRequest
	if err := s.validator.DecodeBody(ctx.Request().Body, "OrdersImportRequest", &request); err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	accepted := make([]servers.Id, 0, len(request.Data))
	rejected := make([]servers.Id, 0)

	for _, record := range request.Data {
		id := recordID(record, "order_id")

		err := s.importOrder(ctx.Request().Context(), record)
		if err == nil {
			accepted = append(accepted, servers.Id{Id: id})
			continue
		}
		if !isRejection(err) {
			return s.fail(ctx, err, http.StatusBadRequest)
		}

		s.logger.InfoContext(ctx.Request().Context(), "order rejected", "order_id", id, "error", err)
		rejected = append(rejected, servers.Id{Id: id})
	}

	if len(rejected) > 0 {
		return ctx.JSON(http.StatusBadRequest, servers.OrdersValidationError{
			ValidationError: servers.OrdersIds{Orders: rejected},
		})
	}

	return ctx.JSON(http.StatusCreated, servers.OrdersIds{Orders: accepted})
}

func (s *Server) importOrder(ctx context.Context, record map[string]interface{}) error {
	var item servers.OrderItem
	if err := s.validator.DecodeRecord("OrderItem", record, &item); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(
		item.OrderId,
		decimal.NewFromFloat(item.Weight),
		item.Region,
		item.DeliveryHours,
	)
	if err != nil {
		return err
	}

	return s.createOrderHandler.Handle(ctx, cmd)
}

// AssignOrders handles POST /orders/assign - hands matching orders to a courier.
// An unknown courier is a client error of the request body and answers 400.
func (s *Server) AssignOrders(ctx echo.Context) error {
	var request servers.OrdersAssignPostRequest
	if err := s.validator.DecodeBody(ctx.Request().Body, "OrdersAssignPostRequest", &request); err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewAssignOrdersCommand(request.CourierId)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	result, err := s.assignOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	orders := make([]servers.Id, 0, len(result.OrderIDs))
	for _, id := range result.OrderIDs {
		orders = append(orders, servers.Id{Id: id})
	}

	return ctx.JSON(http.StatusOK, servers.OrdersAssignPostResponse{
		Orders:     orders,
		AssignTime: result.AssignTime,
	})
}

// CompleteOrder handles POST /orders/complete - marks an order delivered.
// Repeating the call for a delivered order succeeds without changing it.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	var request servers.OrdersCompletePostRequest
	if err := s.validator.DecodeBody(ctx.Request().Body, "OrdersCompletePostRequest", &request); err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewCompleteOrderCommand(request.CourierId, request.OrderId, request.CompleteTime)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, servers.OrdersCompletePostResponse{OrderId: request.OrderId})
}

func toCourierUpdateResponse(c *courier.Courier) servers.CourierUpdateResponse {
	var courierType *string
	if t := c.Type(); t != nil {
		code := t.Code().String()
		courierType = &code
	}

	return servers.CourierUpdateResponse{
		CourierId:    c.ID(),
		CourierType:  courierType,
		Regions:      c.Regions(),
		WorkingHours: kernel.FormatTimeWindows(c.WorkingHours()),
	}
}

// recordID reads the id of a raw import record, 0 when it is missing or not a number.
func recordID(record map[string]interface{}, key string) int64 {
	v, ok := record[key].(float64)
	if !ok {
		return 0
	}
	return int64(v)
}

// isRejection reports whether err rejects a single import record rather than the batch.
func isRejection(err error) bool {
	return errs.IsValidation(err) || errors.Is(err, errs.ErrObjectAlreadyExists)
}
