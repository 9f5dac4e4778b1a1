package providers

import (
	"context"
	"log/slog"

	"startgg-results/internal/logging"
)

// logWithQuery emits a log entry if a logger is available and always includes the query name.
func logWithQuery(ctx context.Context, logger *slog.Logger, level slog.Level, queryName string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldQuery, queryName))
	logger.Log(ctx, level, msg, args...)
}
