// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// CourierRevalidationJob walks every courier that holds undelivered orders and runs
// the capacity and working hours checks against the courier's current profile. Orders
// that no longer fit are released back to the pool, exactly as a profile change
// through the API would release them.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(pendingCouriersHandler, revalidateCourierHandler, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule comes from configuration (REVALIDATION_SCHEDULE) and accepts standard
// five-field cron specs and descriptors like "@every 1m" or "@hourly".
//
// # Error Handling
//
// - A courier that vanished between listing and locking is skipped silently
// - Any other failure is logged and the sweep continues with the next courier
// - A failed start leaves no job running
package jobs
