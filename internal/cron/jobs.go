package cronrunner

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// OrphanPruner removes tags no trade references.
type OrphanPruner interface {
	PruneOrphans(ctx context.Context) (int64, error)
}

// PruneTagsJob wraps pruner as a cron job. Failures are logged and the next
// tick retries.
func PruneTagsJob(pruner OrphanPruner, logger *zap.Logger) func(context.Context) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context) {
		if _, err := pruner.PruneOrphans(ctx); err != nil {
			logger.Warn("tag prune failed", zap.Error(err))
		}
	}
}

// Schedule registers the tag prune job when spec is set. An empty spec
// disables it.
func Schedule(r *Runner, spec string, pruner OrphanPruner, logger *zap.Logger) error {
	spec = strings.TrimSpace(spec)
	if spec == "" || pruner == nil {
		return nil
	}
	_, err := r.Add(spec, PruneTagsJob(pruner, logger))
	return err
}
