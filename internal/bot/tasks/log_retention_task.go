package tasks

import (
	"context"
	"fmt"
	"time"

	"clinicbot/internal/config"
)

// newLogRetentionTask creates the task that prunes audit records older than
// the configured retention window.
func newLogRetentionTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "log_retention")

	retention := config.DefaultLogRetention
	if tc, ok := deps.Config.Scheduler.Tasks["log_retention"]; ok && tc.Retention > 0 {
		retention = tc.Retention
	}

	return func(ctx context.Context) error {
		cutoff := time.Now().UTC().Add(-retention)
		log.InfoContext(ctx, "Pruning audit records", "cutoff", cutoff)

		deleted, err := deps.Store.PruneActionLogs(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("audit log pruning failed: %w", err)
		}

		log.InfoContext(ctx, "Audit record pruning completed", "deleted", deleted)
		return nil
	}
}
