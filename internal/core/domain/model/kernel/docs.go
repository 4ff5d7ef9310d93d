// Package kernel provides core domain primitives shared by the courier and order
// aggregates of the candy delivery service.
//
// The package includes:
//   - TimeWindow: a same-day time-of-day interval ("HH:MM-HH:MM") used both for
//     courier working hours and order delivery hours, together with the window
//     overlap rule the assignment and revalidation engines rely on
//   - Weight: a positive decimal order weight with at most two fractional digits
//
// Values in this package are immutable and guarded by guard.ConstructorGuard, so a
// zero value never passes Validate.
package kernel
