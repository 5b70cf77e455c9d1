package kernel

import (
	"fmt"
	"time"

	"khasdash/internal/pkg/errs"
)

// TimeWindow represents a named lookback period used to bound the order
// fetch. It is a closed enumeration: the only valid values are the constants
// declared below, and an unrecognized window name fails fast at resolution
// time since it can only come from a programming error.
//
// Each window resolves to an absolute boundary instant at query time via
// Boundary, which is fully deterministic given the supplied clock reading.
type TimeWindow int

const (
	// WindowUnknown represents an invalid or undefined window.
	// This value (0) helps catch uninitialized TimeWindow values.
	WindowUnknown TimeWindow = iota

	// WindowDaily bounds the fetch to orders created since the start of the
	// current day.
	WindowDaily

	// WindowThreeDays bounds the fetch to orders created in the last 3 days.
	WindowThreeDays

	// WindowWeekly bounds the fetch to orders created in the last 7 days.
	WindowWeekly

	// WindowMonthly bounds the fetch to orders created in the last 30 days.
	WindowMonthly
)

// getWindowNames returns the mapping of valid TimeWindow values to their
// presentation names.
func getWindowNames() map[TimeWindow]string {
	return map[TimeWindow]string{
		WindowDaily:     "Daily",
		WindowThreeDays: "3 Days",
		WindowWeekly:    "Weekly",
		WindowMonthly:   "Monthly",
	}
}

// getWindowLookbackDays returns the mapping of valid TimeWindow values to
// their lookback in days.
func getWindowLookbackDays() map[TimeWindow]int {
	return map[TimeWindow]int{
		WindowDaily:     0,
		WindowThreeDays: 3,
		WindowWeekly:    7,
		WindowMonthly:   30,
	}
}

// TimeWindowFromName resolves a presentation name to its TimeWindow.
// Returns a validation error for an unrecognized name.
//
// Example:
//
//	window, err := kernel.TimeWindowFromName("3 Days")
//	if err != nil {
//	    // Unrecognized window name
//	}
func TimeWindowFromName(name string) (TimeWindow, error) {
	for window, windowName := range getWindowNames() {
		if windowName == name {
			return window, nil
		}
	}
	return WindowUnknown, errs.NewValueIsInvalidErrorWithCause(
		"windowName",
		fmt.Errorf("%q is not a known time window", name),
	)
}

// Validate checks if the TimeWindow value is one of the declared constants.
func (w TimeWindow) Validate() error {
	if _, ok := getWindowLookbackDays()[w]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"timeWindow",
			fmt.Errorf("%d is not a valid time window", w),
		)
	}
	return nil
}

// String returns the presentation name of the window, or "Unknown" for
// invalid values. Implements the fmt.Stringer interface.
func (w TimeWindow) String() string {
	if name, ok := getWindowNames()[w]; ok {
		return name
	}
	return "Unknown"
}

// Boundary resolves the window to the absolute "orders created after this
// instant" boundary: the start of the day that is the window's lookback days
// before now, in now's location. WindowDaily (lookback 0) resolves to the
// start of the current day.
//
// Boundary is a pure function: resolving the same window twice with the same
// now yields the same instant.
func (w TimeWindow) Boundary(now time.Time) (time.Time, error) {
	lookback, ok := getWindowLookbackDays()[w]
	if !ok {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
			"timeWindow",
			fmt.Errorf("%d is not a valid time window", w),
		)
	}

	day := now.AddDate(0, 0, -lookback)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location()), nil
}
