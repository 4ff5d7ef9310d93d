package kernel

import (
	"github.com/shopspring/decimal"

	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

// WeightPrecision is the number of decimal places a Weight may carry.
const WeightPrecision = 2

var (
	// WeightMin is the exclusive lower bound of an order weight.
	WeightMin = decimal.Zero
	// WeightMax is the inclusive upper bound of an order weight.
	WeightMax = decimal.NewFromInt(50)
)

// ErrWeightIsNotConstructed is returned when a zero-value Weight is used.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight or ParseWeight")

// Weight is the weight of an order in kilograms.
// It is strictly positive, at most WeightMax and carries at most two decimal places,
// so sums of weights are exact and compare reliably against courier capacity.
//
// Example:
//
//	w, err := kernel.NewWeight(decimal.RequireFromString("0.23"))
//	if err != nil {
//	    // non-positive, too heavy or too precise
//	}
//	fmt.Println(w) // 0.23
type Weight struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewWeight validates value and wraps it.
//
// Parameters:
//   - value: kilograms, in (WeightMin, WeightMax] with at most WeightPrecision decimals
//
// Returns:
//   - Weight: the validated weight
//   - error: ValueIsOutOfRangeError when outside the bounds, ValueIsInvalidError when too precise
func NewWeight(value decimal.Decimal) (Weight, error) {
	w := Weight{
		guard: guard.NewConstructorGuard(),
	}

	if err := w.setValue(value); err != nil {
		return Weight{}, err
	}

	return w, nil
}

// ParseWeight parses a decimal string such as "12.5" into a Weight.
func ParseWeight(s string) (Weight, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	return NewWeight(value)
}

// Validate reports whether the weight was built by a constructor.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Decimal returns the underlying decimal value.
func (w Weight) Decimal() decimal.Decimal {
	return w.value
}

// Float64 returns the weight as a float for wire encoding.
func (w Weight) Float64() float64 {
	return w.value.InexactFloat64()
}

// String returns the shortest decimal representation.
func (w Weight) String() string {
	return w.value.String()
}

// IsEqual compares two weights by value.
func (w Weight) IsEqual(other Weight) bool {
	return w.value.Equal(other.value)
}

// FitsInto reports whether the weight does not exceed remaining capacity.
func (w Weight) FitsInto(remaining decimal.Decimal) bool {
	return w.value.LessThanOrEqual(remaining)
}

func (w *Weight) setValue(value decimal.Decimal) error {
	if value.LessThanOrEqual(WeightMin) || value.GreaterThan(WeightMax) {
		return errs.NewValueIsOutOfRangeError("weight", value.String(), "0 (exclusive)", WeightMax.String())
	}

	if !value.Equal(value.Truncate(WeightPrecision)) {
		return errs.NewValueIsInvalidError("weight has more than two decimal places")
	}

	w.value = value
	return nil
}
