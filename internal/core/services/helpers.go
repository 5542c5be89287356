// internal/core/services/helpers.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// validationFailure folds every violated rule into one message.
func validationFailure[T any](violations []string) ports.Result[T] {
	return ports.Fail[T](ports.CodeValidationFailure, strings.Join(violations, "; "))
}

// bulkApply runs op once per ID, collecting per-ID failures. Succeeded
// items are never rolled back: bulk operations are per-item atomic only.
// Any failure makes the overall result a PartialFailure naming each
// failing ID and its reason.
func bulkApply(ids []int64, op func(id int64) (ports.ErrorCode, string, bool)) ports.Result[ports.Unit] {
	var failures []string
	for _, id := range ids {
		if _, msg, ok := op(id); !ok {
			failures = append(failures, fmt.Sprintf("id %d: %s", id, msg))
		}
	}
	if len(failures) > 0 {
		return ports.Fail[ports.Unit](ports.CodePartialFailure, strings.Join(failures, "; "))
	}
	return ports.OkUnit()
}

// asBulkOp adapts a single-item operation returning Result[U] for bulkApply.
func asBulkOp[U any](op func(id int64) ports.Result[U]) func(id int64) (ports.ErrorCode, string, bool) {
	return func(id int64) (ports.ErrorCode, string, bool) {
		res := op(id)
		return res.ErrorCode, res.ErrorMessage, res.Success
	}
}

// warnStoreMiss logs a cache mutation that found the store out of step
// with the database. Never an operation failure: the database already
// committed and the store self-heals on the next refresh.
func warnStoreMiss(ctx context.Context, logger *slog.Logger, action string, id int64) {
	logger.WarnContext(ctx, "store out of sync with database",
		slog.String("action", action),
		slog.Int64("id", id))
}

// publishInvalidation tells other replicas to refresh their store for
// kind. Best effort; failures are logged and swallowed.
func publishInvalidation(ctx context.Context, logger *slog.Logger, inv ports.StoreInvalidator, kind ports.EntityKind) {
	if inv == nil {
		return
	}
	if err := inv.Publish(ctx, kind); err != nil {
		logger.WarnContext(ctx, "failed to publish store invalidation",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()))
	}
}
