package commands

import (
	"errors"
	"slices"

	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/core/domain/model/kernel"
	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

var ErrUpdateCourierCommandIsNotConstructed = errors.New(
	"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
)

// UpdateCourierCommand is a partial edit of a courier profile.
// A nil argument leaves the field untouched; an empty non-nil slice replaces the
// field with an empty list.
//
// Example:
//
//	bike := "bike"
//	cmd, err := NewUpdateCourierCommand(2, &bike, []int{11, 33, 2}, nil)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type UpdateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID    int64
	courierType  *courier.TypeCode
	regions      []int
	workingHours []kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewUpdateCourierCommand creates a profile edit command.
func NewUpdateCourierCommand(
	courierID int64,
	courierType *string,
	regions []int,
	workingHours []string,
) (UpdateCourierCommand, error) {
	command := UpdateCourierCommand{
		regions: slices.Clone(regions),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setCourierType(courierType),
		command.setWorkingHours(workingHours),
	); err != nil {
		return UpdateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

// CourierID returns the edited courier.
func (c UpdateCourierCommand) CourierID() int64 {
	return c.courierID
}

// CourierType returns the new type code, nil when unchanged.
func (c UpdateCourierCommand) CourierType() *courier.TypeCode {
	return c.courierType
}

// Regions returns the new regions, nil when unchanged.
func (c UpdateCourierCommand) Regions() []int {
	return c.regions
}

// WorkingHours returns the new working hours, nil when unchanged.
func (c UpdateCourierCommand) WorkingHours() []kernel.TimeWindow {
	return c.workingHours
}

func (c *UpdateCourierCommand) setCourierID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("courier id", id, 1, "max int64")
	}

	c.courierID = id
	return nil
}

func (c *UpdateCourierCommand) setCourierType(courierType *string) error {
	if courierType == nil {
		return nil
	}

	code, err := courier.ParseTypeCode(*courierType)
	if err != nil {
		return err
	}

	c.courierType = &code
	return nil
}

func (c *UpdateCourierCommand) setWorkingHours(workingHours []string) error {
	if workingHours == nil {
		return nil
	}

	windows, err := kernel.ParseTimeWindows(workingHours)
	if err != nil {
		return err
	}

	c.workingHours = windows
	return nil
}
