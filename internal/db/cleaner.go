package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// StartOrphanCleaner removes expenses whose owning user no longer exists
// with interval. Orphans can appear if the process dies between the
// delete-expenses and delete-user steps of account deletion.
func StartOrphanCleaner(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				res, err := db.ExecContext(ctx, `
                    DELETE FROM expenses
                     WHERE user_id NOT IN (SELECT id FROM users)
                `)
				if err != nil {
					log.Error("failed to clean orphaned expenses", zap.Error(err))
					continue
				}
				if rows, _ := res.RowsAffected(); rows > 0 {
					log.Info("cleaned orphaned expenses", zap.Int64("removed", rows))
				}
			}
		}
	}()
}
