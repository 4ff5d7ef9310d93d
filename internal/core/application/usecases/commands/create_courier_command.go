package commands

import (
	"errors"

	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/core/domain/model/kernel"
	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents one record of a courier import batch.
// Encapsulates the parsed profile of a courier: type code, regions and working hours.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand(1, "foot", []int{1, 12, 22}, []string{"11:35-14:05", "09:00-11:00"})
//	if err != nil {
//	    // the record is rejected
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID    int64
	courierType  courier.TypeCode
	regions      []int
	workingHours []kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to import a courier.
// Validates the id, the type code and every working hours string; all failures are joined.
func NewCreateCourierCommand(
	courierID int64,
	courierType string,
	regions []int,
	workingHours []string,
) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setCourierType(courierType),
		command.setRegions(regions),
		command.setWorkingHours(workingHours),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the courier id from the command.
func (c CreateCourierCommand) CourierID() int64 {
	return c.courierID
}

// CourierType returns the type code from the command.
func (c CreateCourierCommand) CourierType() courier.TypeCode {
	return c.courierType
}

// Regions returns the regions from the command.
func (c CreateCourierCommand) Regions() []int {
	return c.regions
}

// WorkingHours returns the parsed working hours from the command.
func (c CreateCourierCommand) WorkingHours() []kernel.TimeWindow {
	return c.workingHours
}

func (c *CreateCourierCommand) setCourierID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("courier id", id, 1, "max int64")
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setCourierType(courierType string) error {
	code, err := courier.ParseTypeCode(courierType)
	if err != nil {
		return err
	}

	c.courierType = code
	return nil
}

func (c *CreateCourierCommand) setRegions(regions []int) error {
	if regions == nil {
		return courier.ErrRegionsAreRequired
	}

	c.regions = regions
	return nil
}

func (c *CreateCourierCommand) setWorkingHours(workingHours []string) error {
	if workingHours == nil {
		return courier.ErrWorkingHoursAreRequired
	}

	windows, err := kernel.ParseTimeWindows(workingHours)
	if err != nil {
		return err
	}

	c.workingHours = windows
	return nil
}
