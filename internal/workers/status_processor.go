// internal/workers/status_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	redis_a "github.com/adesina-labs/pharmhub-be/internal/adapters/redis_adapter"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// StatusProcessor runs the periodic drug status sweep: drugs past their
// expiry date become EXPIRED, drained drugs become OUT_OF_STOCK.
type StatusProcessor struct {
	drugs       ports.DrugRepository
	cache       ports.CacheRepository
	queue       *asynq.Client
	notifyEmail string
	logger      *slog.Logger
}

// NewStatusProcessor creates a new status processor. The asynq client and
// notify email are optional; when set, a digest email task is enqueued
// whenever a sweep changes anything.
func NewStatusProcessor(drugs ports.DrugRepository, cache ports.CacheRepository, queue *asynq.Client, notifyEmail string, logger *slog.Logger) *StatusProcessor {
	return &StatusProcessor{
		drugs:       drugs,
		cache:       cache,
		queue:       queue,
		notifyEmail: notifyEmail,
		logger:      logger.With(slog.String("processor", "status")),
	}
}

// SweepDrugStatus handles drugs:status_sweep tasks
func (p *StatusProcessor) SweepDrugStatus(ctx context.Context, t *asynq.Task) error {
	now := time.Now()

	expired, err := p.drugs.MarkExpired(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to mark expired drugs: %w", err)
	}

	drained, err := p.drugs.MarkOutOfStock(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark out-of-stock drugs: %w", err)
	}

	if expired == 0 && drained == 0 {
		p.logger.DebugContext(ctx, "status sweep found nothing to change")
		return nil
	}

	p.logger.InfoContext(ctx, "drug status sweep completed",
		slog.Int64("marked_expired", expired),
		slog.Int64("marked_out_of_stock", drained))

	if p.cache != nil {
		if err := p.cache.DeletePattern(ctx, string(redis_a.PrefixDashboard)+":*"); err != nil {
			p.logger.WarnContext(ctx, "failed to invalidate dashboard cache",
				slog.String("error", err.Error()))
		}
	}

	p.notifySweep(ctx, expired, drained)
	return nil
}

func (p *StatusProcessor) notifySweep(ctx context.Context, expired, drained int64) {
	if p.queue == nil || p.notifyEmail == "" {
		return
	}

	payload := EmailPayload{
		To:      p.notifyEmail,
		Subject: "Inventory status sweep",
		Body: fmt.Sprintf("Status sweep marked %d drug(s) expired and %d drug(s) out of stock.",
			expired, drained),
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return
	}

	if _, err := p.queue.Enqueue(asynq.NewTask(TypeSendEmail, b), asynq.Queue("low")); err != nil {
		p.logger.WarnContext(ctx, "failed to enqueue sweep notification",
			slog.String("error", err.Error()))
	}
}
