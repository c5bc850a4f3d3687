package jobs

import (
	"context"
	"log/slog"
	"time"

	"settlement/internal/core/application/usecases/queries"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleTransitJob watches for orders stuck in transit. Every minute it looks
// for in-transit orders with no state change inside the staleness threshold
// and raises a notification to the arbiter for each one.
type StaleTransitJob struct {
	handler   queries.GetStaleTransitOrdersQueryHandler
	notifier  ports.Notifier
	arbiterID kernel.UUID
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleTransitJob creates a job that flags stalled deliveries.
// The threshold controls how long an in-transit order may sit without any
// position sample or status change before it is reported.
func NewStaleTransitJob(
	handler queries.GetStaleTransitOrdersQueryHandler,
	notifier ports.Notifier,
	arbiterID kernel.UUID,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleTransitJob {
	return &StaleTransitJob{
		handler:   handler,
		notifier:  notifier,
		arbiterID: arbiterID,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_transit_job"),
	}
}

// Start begins the stale transit job to run every minute.
func (j *StaleTransitJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStaleTransitOrdersQuery(time.Now().UTC().Add(-j.threshold))
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stale transit job failed to build query", "error", queryErr)
			return
		}

		stale, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale transit job failed", "error", handleErr)
			return
		}

		for _, o := range stale {
			j.logger.WarnContext(ctx, "Order stalled in transit",
				"order_id", o.ID.String(),
				"courier_id", o.CourierID.String(),
				"last_updated_at", o.LastUpdatedAt,
			)
			j.notifier.Publish(ctx, ports.Notification{
				UserID:  j.arbiterID,
				Message: "Order has had no movement since " + o.LastUpdatedAt.Format(time.RFC3339),
				Link:    "/admin/orders/" + o.ID.String(),
			})
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale transit job started (running every minute)")
	return nil
}

// Stop stops the stale transit job.
func (j *StaleTransitJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale transit job stopped")
}
