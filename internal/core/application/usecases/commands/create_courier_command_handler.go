package commands

import (
	"context"
	"errors"

	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/pkg/errs"
)

// CreateCourierCommandHandler handles the import of one courier record.
// Resolves the type against the catalog and persists the courier with its regions
// and working hours in one transaction, so a record is stored whole or not at all.
//
// Example:
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	cmd, _ := NewCreateCourierCommand(1, "foot", []int{1}, []string{"09:00-18:00"})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("courier import failed: %w", err)
//	}
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier imports.
// Requires a CourierUoWFactory for transactional persistence operations.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier creation command.
// A type code missing from the catalog is reported as an invalid value.
// Automatically rolls back on any error to prevent partial data.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierType, err := uow.CourierTypeRepository().Get(ctx, cmd.CourierType())
	if err != nil {
		return catalogError(err)
	}

	courierEntity, err := courier.NewCourier(cmd.CourierID(), courierType, cmd.Regions(), cmd.WorkingHours())
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Add(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// catalogError turns a catalog miss into a validation failure of the request.
func catalogError(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause("courier type", err)
	}
	return err
}
