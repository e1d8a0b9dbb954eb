package jobs

import (
	"context"
	"log/slog"
	"time"

	"burgerpos/internal/core/application/usecases/queries"
	"burgerpos/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// ActiveOrdersReader is satisfied by queries.GetActiveOrdersQueryHandler.
type ActiveOrdersReader interface {
	Handle(ctx context.Context, query queries.GetActiveOrdersQuery) (queries.GetActiveOrdersQueryResponse, error)
}

// StaleOrderReportJob warns about submitted orders that have waited on the board
// longer than a threshold.
type StaleOrderReportJob struct {
	reader    ActiveOrdersReader
	threshold time.Duration
	schedule  string
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewStaleOrderReportJob(
	reader ActiveOrdersReader,
	threshold time.Duration,
	schedule string,
	logger *slog.Logger,
) *StaleOrderReportJob {
	return &StaleOrderReportJob{
		reader:    reader,
		threshold: threshold,
		schedule:  schedule,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_order_report_job"),
	}
}

// Start registers the report on the configured schedule.
func (j *StaleOrderReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale order report failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order report job started",
		"schedule", j.schedule, "threshold", j.threshold)
	return nil
}

func (j *StaleOrderReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale order report job stopped")
}

// Run logs one warning per stale order and returns them, oldest first.
func (j *StaleOrderReportJob) Run(ctx context.Context) ([]services.OrderSummary, error) {
	board, err := j.reader.Handle(ctx, queries.NewGetActiveOrdersQuery())
	if err != nil {
		return nil, err
	}

	now := j.now()
	var stale []services.OrderSummary
	for _, o := range board.Orders {
		waiting := now.Sub(o.SubmittedAt)
		if waiting < j.threshold {
			continue
		}
		stale = append(stale, o)
		j.logger.WarnContext(ctx, "Order waiting too long",
			"order_id", o.ID,
			"customer", o.CustomerName,
			"waiting", waiting.Round(time.Second),
		)
	}
	return stale, nil
}
