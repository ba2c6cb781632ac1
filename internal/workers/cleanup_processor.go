// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// CleanupProcessor prunes finished async job rows.
type CleanupProcessor struct {
	db     ports.Database
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(db ports.Database, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		db:     db,
		logger: logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupOldJobs handles cleanup:old_jobs tasks. Finished jobs older than
// 30 days are removed, as are jobs stuck in a non-terminal state for over
// a day (their asynq task has long since retried out).
func (p *CleanupProcessor) CleanupOldJobs(ctx context.Context, t *asynq.Task) error {
	query := `
		DELETE FROM async_jobs
		WHERE (completed_at IS NOT NULL AND completed_at < NOW() - INTERVAL '30 days')
		   OR (completed_at IS NULL AND created_at < NOW() - INTERVAL '1 day')`

	result, err := p.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to cleanup async jobs: %w", err)
	}

	p.logger.InfoContext(ctx, "old jobs cleaned up",
		slog.Int64("rows_deleted", result.RowsAffected()))

	return nil
}
