package courier

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"

	"candydelivery/internal/core/domain/model/kernel"
	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrRegionsAreRequired is returned when a list of regions is missing altogether.
	ErrRegionsAreRequired = errs.NewValueIsRequiredError("regions")
	// ErrWorkingHoursAreRequired is returned when a list of working hours is missing altogether.
	ErrWorkingHoursAreRequired = errs.NewValueIsRequiredError("working hours")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root holding the courier profile: type, served regions and
// working hours. Pending and delivered orders are not part of the aggregate; they
// live in the order aggregate and reference the courier by id.
//
// Key responsibilities:
//   - Managing courier identity and profile
//   - Resolving capacity and per-order price from the current type
//   - Reporting what a profile change removes so pending orders can be revalidated
//
// Business rules:
//   - Courier id is positive and immutable
//   - Regions are positive and de-duplicated, first occurrence wins the position
//   - Working hours keep their declared order; that order drives assignment
//   - A courier may lose its type when the catalog entry disappears; such a
//     courier has zero capacity and earns nothing
//
// Example usage:
//
//	footType, _ := courier.NewType(courier.Foot, decimal.NewFromInt(10), 2)
//	hours, _ := kernel.ParseTimeWindows([]string{"11:35-14:05", "09:00-11:00"})
//	c, err := courier.NewCourier(2, footType, []int{22}, hours)
//	if err != nil {
//	    // Handle construction error
//	}
type Courier struct {
	// id uniquely identifies the courier
	id int64
	// courierType is the current catalog entry, nil when it was removed from the catalog
	courierType *Type
	// regions are the districts served, in first-seen order
	regions []int
	// workingHours are the availability windows in declared order
	workingHours []kernel.TimeWindow
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier from an import record.
// This is the only way to create a fresh valid Courier instance.
//
// Parameters:
//   - id: Identifier supplied by the client (must be positive)
//   - courierType: Current catalog entry (must be constructed)
//   - regions: Served districts (must be positive; duplicates are dropped)
//   - workingHours: Availability windows (may be empty)
//
// Returns:
//   - *Courier: A fully initialized courier
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
func NewCourier(id int64, courierType Type, regions []int, workingHours []kernel.TimeWindow) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setType(&courierType),
		courier.setRegions(regions),
		courier.setWorkingHours(workingHours),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// Unlike NewCourier it accepts a missing type, which happens when the catalog
// entry referenced by the courier no longer exists.
func RestoreCourier(
	id int64,
	courierType *Type,
	regions []int,
	workingHours []kernel.TimeWindow,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setType(courierType),
		courier.setRegions(regions),
		courier.setWorkingHours(workingHours),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// IsEqual compares two couriers by identifier.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id == other.id
}

// Validate checks if the Courier was properly constructed.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the identifier of the courier.
func (c *Courier) ID() int64 {
	return c.id
}

// Type returns a copy of the current catalog entry, or nil when the courier has none.
func (c *Courier) Type() *Type {
	if c.courierType == nil {
		return nil
	}
	t := *c.courierType
	return &t
}

// Regions returns a copy of the served districts in stored order.
func (c *Courier) Regions() []int {
	return slices.Clone(c.regions)
}

// WorkingHours returns a copy of the availability windows in declared order.
func (c *Courier) WorkingHours() []kernel.TimeWindow {
	return slices.Clone(c.workingHours)
}

// ServesRegion reports whether the region is in the courier's region set.
func (c *Courier) ServesRegion(region int) bool {
	return slices.Contains(c.regions, region)
}

// Capacity returns the weight limit of one assignment round for the current type.
// A courier without a type has zero capacity.
func (c *Courier) Capacity() decimal.Decimal {
	if c.courierType == nil {
		return decimal.Zero
	}
	return c.courierType.Capacity()
}

// OrderPrice returns what the courier earns for one order delivered now.
// The current type applies even if it changed after the order was assigned.
func (c *Courier) OrderPrice() decimal.Decimal {
	if c.courierType == nil {
		return decimal.Zero
	}
	return c.courierType.OrderPrice()
}

// ChangeType switches the courier to another catalog entry.
//
// Returns:
//   - downgraded: true when the switch is one of car→foot, car→bike or bike→foot,
//     meaning pending orders must be re-checked against the new capacity
//   - error: validation error if the type is not constructed
func (c *Courier) ChangeType(courierType Type) (bool, error) {
	if err := courierType.Validate(); err != nil {
		return false, err
	}

	downgraded := c.courierType != nil && c.courierType.Code().IsDowngradeTo(courierType.Code())
	c.courierType = &courierType
	return downgraded, nil
}

// ChangeRegions replaces the region set.
//
// Returns:
//   - removed: regions served before and not after, in their previous order;
//     pending orders in these regions must be released
//   - error: validation error if a region is not positive
func (c *Courier) ChangeRegions(regions []int) ([]int, error) {
	previous := c.regions
	if err := c.setRegions(regions); err != nil {
		return nil, err
	}

	removed := make([]int, 0)
	for _, r := range previous {
		if !c.ServesRegion(r) {
			removed = append(removed, r)
		}
	}
	return removed, nil
}

// ChangeWorkingHours replaces the working windows. An empty list is allowed and
// leaves the courier unable to keep any pending order.
func (c *Courier) ChangeWorkingHours(workingHours []kernel.TimeWindow) error {
	return c.setWorkingHours(workingHours)
}

// setID sets the courier's identifier with validation.
func (c *Courier) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("courier id", id, 1, "max int64")
	}

	c.id = id
	return nil
}

// setType sets the current catalog entry; nil means the courier has no type.
func (c *Courier) setType(courierType *Type) error {
	if courierType == nil {
		c.courierType = nil
		return nil
	}

	if err := courierType.Validate(); err != nil {
		return err
	}

	t := *courierType
	c.courierType = &t
	return nil
}

// setRegions validates regions and keeps the first occurrence of every duplicate.
func (c *Courier) setRegions(regions []int) error {
	if regions == nil {
		return ErrRegionsAreRequired
	}

	unique := make([]int, 0, len(regions))
	for _, r := range regions {
		if r <= 0 {
			return errs.NewValueIsOutOfRangeError("region", r, 1, "max int")
		}
		if !slices.Contains(unique, r) {
			unique = append(unique, r)
		}
	}

	c.regions = unique
	return nil
}

// setWorkingHours validates every window and keeps a private copy.
func (c *Courier) setWorkingHours(workingHours []kernel.TimeWindow) error {
	if workingHours == nil {
		return ErrWorkingHoursAreRequired
	}

	for _, w := range workingHours {
		if err := w.Validate(); err != nil {
			return err
		}
	}

	c.workingHours = slices.Clone(workingHours)
	return nil
}
