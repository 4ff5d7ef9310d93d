package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"candydelivery/internal/core/application/usecases/commands"
	"candydelivery/internal/core/application/usecases/queries"
	"candydelivery/internal/pkg/errs"
)

// PendingCouriersHandler lists the couriers holding undelivered orders.
type PendingCouriersHandler interface {
	Handle(ctx context.Context, query queries.GetCouriersWithPendingOrdersQuery) ([]int64, error)
}

// RevalidateCourierHandler re-checks the orders of one courier.
type RevalidateCourierHandler interface {
	Handle(ctx context.Context, cmd commands.RevalidateCourierCommand) ([]int64, error)
}

// CourierRevalidationJob periodically re-checks every courier that holds orders and
// releases the ones its current profile no longer allows, for example after the
// capacity of a courier type was lowered in the catalog.
type CourierRevalidationJob struct {
	pending    PendingCouriersHandler
	revalidate RevalidateCourierHandler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewCourierRevalidationJob creates the sweep job.
// schedule is a standard cron spec or a descriptor such as "@every 1m".
func NewCourierRevalidationJob(
	pending PendingCouriersHandler,
	revalidate RevalidateCourierHandler,
	schedule string,
	logger *slog.Logger,
) *CourierRevalidationJob {
	return &CourierRevalidationJob{
		pending:    pending,
		revalidate: revalidate,
		schedule:   schedule,
		cron:       cron.New(),
		logger:     logger.With("component", "courier_revalidation_job"),
	}
}

// Start schedules the sweep. Runs never overlap: a run that is due while the previous
// one is still going is skipped.
func (j *CourierRevalidationJob) Start() error {
	job := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Courier revalidation sweep failed", "error", err)
		}
	}))

	if _, err := j.cron.AddJob(j.schedule, job); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier revalidation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *CourierRevalidationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Courier revalidation job stopped")
}

// Run performs one sweep. A failure for one courier does not stop the sweep;
// all failures are returned joined.
func (j *CourierRevalidationJob) Run(ctx context.Context) error {
	courierIDs, err := j.pending.Handle(ctx, queries.NewGetCouriersWithPendingOrdersQuery())
	if err != nil {
		return err
	}

	var failures []error
	released := 0

	for _, courierID := range courierIDs {
		cmd, cmdErr := commands.NewRevalidateCourierCommand(courierID)
		if cmdErr != nil {
			failures = append(failures, cmdErr)
			continue
		}

		orderIDs, handleErr := j.revalidate.Handle(ctx, cmd)
		if handleErr != nil {
			// the courier disappeared between listing and locking
			if errors.Is(handleErr, errs.ErrObjectNotFound) {
				continue
			}
			failures = append(failures, handleErr)
			continue
		}

		if len(orderIDs) > 0 {
			released += len(orderIDs)
			j.logger.InfoContext(ctx, "Orders released", "courier_id", courierID, "order_ids", orderIDs)
		}
	}

	j.logger.DebugContext(ctx, "Courier revalidation sweep finished",
		"couriers", len(courierIDs), "released", released)

	return errors.Join(failures...)
}
