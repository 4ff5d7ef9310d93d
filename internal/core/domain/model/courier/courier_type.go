package courier

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

// TypeCode identifies a courier type in the closed catalog.
type TypeCode string

const (
	// Foot couriers walk.
	Foot TypeCode = "foot"
	// Bike couriers ride a bicycle.
	Bike TypeCode = "bike"
	// Car couriers drive.
	Car TypeCode = "car"
)

// BaseOrderPrice is multiplied by the type coefficient to get the payment for one order.
const BaseOrderPrice = 500

// ErrTypeIsNotConstructed is returned when a zero-value Type is used.
var ErrTypeIsNotConstructed = errs.NewValueIsRequiredError("courier type must be created via NewType constructor")

// downgrades lists, per type, the new types that shrink capacity enough to require
// re-checking pending orders. Every other transition keeps pending orders as they are.
var downgrades = map[TypeCode][]TypeCode{
	Car:  {Foot, Bike},
	Bike: {Foot},
}

// TypeCodes returns every known type code in catalog order.
func TypeCodes() []TypeCode {
	return []TypeCode{Foot, Bike, Car}
}

// ParseTypeCode converts the wire value into a TypeCode.
func ParseTypeCode(s string) (TypeCode, error) {
	code := TypeCode(s)
	if err := code.Validate(); err != nil {
		return "", err
	}
	return code, nil
}

// Validate checks that the code is one of foot, bike or car.
func (c TypeCode) Validate() error {
	if !slices.Contains(TypeCodes(), c) {
		return errs.NewValueIsInvalidErrorWithCause(
			"courier type",
			fmt.Errorf("%q is not one of %v", string(c), TypeCodes()),
		)
	}
	return nil
}

// String returns the wire value.
func (c TypeCode) String() string {
	return string(c)
}

// IsDowngradeTo reports whether switching from c to next requires the pending
// orders of the courier to be re-checked against the new capacity.
//
// Example:
//
//	courier.Car.IsDowngradeTo(courier.Foot)  // true
//	courier.Foot.IsDowngradeTo(courier.Car)  // false
//	courier.Bike.IsDowngradeTo(courier.Bike) // false
func (c TypeCode) IsDowngradeTo(next TypeCode) bool {
	return slices.Contains(downgrades[c], next)
}

// Type is a row of the courier type catalog: how much a courier of this type can
// carry in one round and how much they earn per delivered order.
// Types are immutable catalog entries loaded from storage.
type Type struct { //nolint:recvcheck //using for validation
	code        TypeCode
	capacity    decimal.Decimal
	coefficient int
	guard       guard.ConstructorGuard
}

// NewType creates a catalog entry.
//
// Parameters:
//   - code: one of foot, bike, car
//   - capacity: maximum total weight of pending orders, must be positive
//   - coefficient: earnings multiplier, must not be negative
//
// Returns:
//   - Type: the catalog entry
//   - error: joined validation errors
func NewType(code TypeCode, capacity decimal.Decimal, coefficient int) (Type, error) {
	t := Type{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setCode(code),
		t.setCapacity(capacity),
		t.setCoefficient(coefficient),
	); err != nil {
		return Type{}, err
	}

	return t, nil
}

// Validate reports whether the type was built by NewType.
func (t Type) Validate() error {
	return t.guard.Validate(ErrTypeIsNotConstructed)
}

// Code returns the catalog identifier.
func (t Type) Code() TypeCode {
	return t.code
}

// Capacity returns the weight limit of one assignment round.
func (t Type) Capacity() decimal.Decimal {
	return t.capacity
}

// Coefficient returns the earnings multiplier.
func (t Type) Coefficient() int {
	return t.coefficient
}

// OrderPrice returns what a courier of this type earns for one delivered order.
func (t Type) OrderPrice() decimal.Decimal {
	return decimal.NewFromInt(int64(BaseOrderPrice * t.coefficient))
}

func (t *Type) setCode(code TypeCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	t.code = code
	return nil
}

func (t *Type) setCapacity(capacity decimal.Decimal) error {
	if !capacity.IsPositive() {
		return errs.NewValueIsOutOfRangeError("capacity", capacity.String(), "0 (exclusive)", "unbounded")
	}
	t.capacity = capacity
	return nil
}

func (t *Type) setCoefficient(coefficient int) error {
	if coefficient < 0 {
		return errs.NewValueIsOutOfRangeError("coefficient", coefficient, 0, "unbounded")
	}
	t.coefficient = coefficient
	return nil
}
