package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockJob periodically checks ingredient stock levels and warns about
// ingredients running low. Runs every minute so the kitchen hears about a
// draining ingredient before placements start failing.
type LowStockJob struct {
	handler   queries.LowStockQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockJob creates a new job for monitoring ingredient stock.
// Ingredients with stock below the threshold are reported every minute.
func NewLowStockJob(handler queries.LowStockQueryHandler, threshold int, logger *slog.Logger) *LowStockJob {
	return &LowStockJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_job"),
	}
}

// Start begins the low stock job to run every minute.
func (j *LowStockJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewLowStockQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Low stock job misconfigured", "error", queryErr)
			return
		}

		low, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Low stock job failed", "error", handleErr)
			return
		}

		for _, entry := range low {
			j.logger.WarnContext(ctx, "Ingredient running low",
				"ingredient_id", entry.ID.String(),
				"ingredient", entry.Name,
				"stock", entry.Stock,
				"threshold", j.threshold,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock job started (running every minute)")
	return nil
}

// Stop stops the low stock job.
func (j *LowStockJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock job stopped")
}
