package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

// CleanupService enforces data retention on conversations and resumes.
type CleanupService struct {
	Pool          PgxPool
	RetentionDays int
}

// NewCleanupService creates a cleanup service; retention defaults to 90 days.
func NewCleanupService(pool PgxPool, retentionDays int) *CleanupService {
	if retentionDays <= 0 {
		retentionDays = 90
	}
	return &CleanupService{Pool: pool, RetentionDays: retentionDays}
}

// CleanupOldData removes conversations and resumes older than the
// retention period in one transaction.
func (s *CleanupService) CleanupOldData(ctx context.Context) error {
	cutoff := time.Now().AddDate(0, 0, -s.RetentionDays)

	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("cleanup begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	convTag, err := tx.Exec(ctx, `DELETE FROM conversations WHERE created_at < $1`, cutoff)
	if err != nil {
		return fmt.Errorf("cleanup conversations: %w", err)
	}
	resTag, err := tx.Exec(ctx, `DELETE FROM resumes WHERE created_at < $1`, cutoff)
	if err != nil {
		return fmt.Errorf("cleanup resumes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("cleanup commit: %w", err)
	}
	slog.Info("retention cleanup done",
		slog.Int64("conversations_deleted", convTag.RowsAffected()),
		slog.Int64("resumes_deleted", resTag.RowsAffected()),
		slog.Time("cutoff", cutoff))
	return nil
}

// RunPeriodic runs cleanup on a ticker until ctx is done.
func (s *CleanupService) RunPeriodic(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.CleanupOldData(ctx); err != nil {
				slog.Error("retention cleanup failed", slog.Any("error", err))
			}
		}
	}
}
