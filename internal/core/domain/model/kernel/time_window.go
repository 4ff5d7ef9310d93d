package kernel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"candydelivery/internal/pkg/errs"
	"candydelivery/internal/pkg/guard"
)

const (
	// MinutesPerDay bounds every TimeWindow: windows never wrap past midnight.
	MinutesPerDay = 24 * 60

	timeOfDayLayout = "15:04"
	windowSeparator = "-"
)

// ErrTimeWindowIsNotConstructed is returned when a zero-value TimeWindow is used.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow or ParseTimeWindow")

// TimeWindow is a same-day time-of-day interval [from, to) expressed in minutes
// since midnight. No timezone and no day wraparound are modelled: from < to always.
//
// The same type describes courier working hours and order delivery hours.
//
// Example:
//
//	w, err := kernel.ParseTimeWindow("09:00-18:00")
//	if err != nil {
//	    // malformed or empty window
//	}
//	fmt.Println(w) // 09:00-18:00
type TimeWindow struct { //nolint:recvcheck //using for validation
	from  int
	to    int
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a window from minute offsets since midnight.
// Both bounds must lie within the day and from must be strictly before to.
func NewTimeWindow(from, to int) (TimeWindow, error) {
	w := TimeWindow{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(w.setFrom(from), w.setTo(to)); err != nil {
		return TimeWindow{}, err
	}

	if w.from >= w.to {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"time window",
			fmt.Errorf("start %s is not before end %s", formatMinutes(from), formatMinutes(to)),
		)
	}

	return w, nil
}

// ParseTimeWindow parses the "HH:MM-HH:MM" wire form.
func ParseTimeWindow(s string) (TimeWindow, error) {
	parts := strings.Split(s, windowSeparator)
	if len(parts) != 2 {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"time window", fmt.Errorf("%q is not in HH:MM-HH:MM form", s))
	}

	from, err := parseMinutes(parts[0])
	if err != nil {
		return TimeWindow{}, err
	}

	to, err := parseMinutes(parts[1])
	if err != nil {
		return TimeWindow{}, err
	}

	return NewTimeWindow(from, to)
}

// ParseTimeWindows parses every element of ss keeping their order.
// All malformed entries are reported together.
func ParseTimeWindows(ss []string) ([]TimeWindow, error) {
	windows := make([]TimeWindow, 0, len(ss))
	var parseErrs []error

	for _, s := range ss {
		w, err := ParseTimeWindow(s)
		if err != nil {
			parseErrs = append(parseErrs, err)
			continue
		}
		windows = append(windows, w)
	}

	if err := errors.Join(parseErrs...); err != nil {
		return nil, err
	}

	return windows, nil
}

// FormatTimeWindows renders windows in their wire form keeping their order.
func FormatTimeWindows(windows []TimeWindow) []string {
	out := make([]string, 0, len(windows))
	for _, w := range windows {
		out = append(out, w.String())
	}
	return out
}

// Validate reports whether the window was built by a constructor.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// From returns the start of the window in minutes since midnight.
func (w TimeWindow) From() int {
	return w.from
}

// To returns the end of the window in minutes since midnight.
func (w TimeWindow) To() int {
	return w.to
}

// String returns the "HH:MM-HH:MM" form.
func (w TimeWindow) String() string {
	return formatMinutes(w.from) + windowSeparator + formatMinutes(w.to)
}

// IsEqual reports whether both windows cover the same interval.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.from == other.from && w.to == other.to
}

// Matches reports whether the delivery window can be served inside this working
// window: the delivery window starts inside it, or ends inside it.
//
//	working.from <= delivery.from < working.to  ||  working.from < delivery.to <= working.to
//
// This is not general interval intersection. A delivery window that starts before
// and ends after the working window does not match.
//
// Example:
//
//	working, _ := kernel.ParseTimeWindow("09:00-18:00")
//	delivery, _ := kernel.ParseTimeWindow("10:00-11:00")
//	working.Matches(delivery) // true
//
//	short, _ := kernel.ParseTimeWindow("10:00-11:00")
//	long, _ := kernel.ParseTimeWindow("09:00-18:00")
//	short.Matches(long) // false, long neither starts nor ends inside short
func (w TimeWindow) Matches(delivery TimeWindow) bool {
	startsInside := w.from <= delivery.from && delivery.from < w.to
	endsInside := w.from < delivery.to && delivery.to <= w.to
	return startsInside || endsInside
}

// FirstMatching returns the index of the first delivery window, in the given order,
// that this working window matches, or -1.
func (w TimeWindow) FirstMatching(delivery []TimeWindow) int {
	for i, d := range delivery {
		if w.Matches(d) {
			return i
		}
	}
	return -1
}

// AnyWindowMatches reports whether any working window matches any delivery window.
func AnyWindowMatches(working []TimeWindow, delivery []TimeWindow) bool {
	for _, w := range working {
		if w.FirstMatching(delivery) >= 0 {
			return true
		}
	}
	return false
}

func (w *TimeWindow) setFrom(from int) error {
	if from < 0 || from >= MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("time window start", from, 0, MinutesPerDay-1)
	}

	w.from = from
	return nil
}

func (w *TimeWindow) setTo(to int) error {
	if to <= 0 || to >= MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("time window end", to, 1, MinutesPerDay-1)
	}

	w.to = to
	return nil
}

func parseMinutes(s string) (int, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
