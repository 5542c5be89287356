// internal/core/services/dbop.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/acardosi/stockroom-be/internal/core/ports"
)

// Retry policy for transient persistence failures. Bounded by attempts,
// not by a deadline; the caller's context still applies to each attempt.
const (
	maxAttempts    = 3
	initialBackoff = 50 * time.Millisecond
)

// DBOperation is a deferred persistence call executed through Execute.
type DBOperation[T any] func(ctx context.Context) (T, error)

// Execute runs op, classifying any error into the result taxonomy. It is
// the single chokepoint between persistence and the service layer: no
// raw error crosses it. When enableRetry is set, transient failures
// (connection loss, deadlocks, serialization aborts) are retried with
// jittered exponential backoff; permanent failures fail fast.
func Execute[T any](ctx context.Context, logger *slog.Logger, description string, enableRetry bool, op DBOperation[T]) ports.Result[T] {
	attempts := 1
	if enableRetry {
		attempts = maxAttempts
	}

	var lastErr error
	backoff := initialBackoff

	for attempt := 1; attempt <= attempts; attempt++ {
		data, err := op(ctx)
		if err == nil {
			if attempt > 1 {
				logger.InfoContext(ctx, "operation succeeded after retry",
					slog.String("operation", description),
					slog.Int("attempt", attempt))
			}
			return ports.Ok(data)
		}

		lastErr = err
		code, transient := classifyError(err)

		if !transient || attempt == attempts {
			level := slog.LevelError
			if code == ports.CodeNotFound || code == ports.CodeDuplicateKey {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "operation failed",
				slog.String("operation", description),
				slog.String("code", string(code)),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			return ports.Fail[T](code, operationMessage(description, code, err))
		}

		jitter := time.Duration(rand.Int63n(int64(backoff / 4)))
		logger.WarnContext(ctx, "transient failure, retrying",
			slog.String("operation", description),
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff+jitter),
			slog.String("error", err.Error()))

		select {
		case <-time.After(backoff + jitter):
		case <-ctx.Done():
			return ports.Fail[T](ports.CodeUnexpectedError,
				fmt.Sprintf("%s aborted: %v", description, ctx.Err()))
		}
		backoff *= 2
	}

	// Unreachable, but keeps the compiler satisfied.
	return ports.Fail[T](ports.CodeUnexpectedError, operationMessage(description, ports.CodeUnexpectedError, lastErr))
}

// classifyError maps a persistence error onto the taxonomy and reports
// whether it is worth retrying.
func classifyError(err error) (ports.ErrorCode, bool) {
	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, ports.ErrStockNotFound):
		return ports.CodeNotFound, false
	case errors.Is(err, ports.ErrInsufficientStock):
		return ports.CodeConstraintViolation, false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ports.CodeUnexpectedError, false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ports.CodeDuplicateKey, false
		case "23503":
			return ports.CodeForeignKeyViolation, false
		case "23502", "23514":
			return ports.CodeConstraintViolation, false
		case "40001", "40P01", "55P03":
			// Serialization failure, deadlock, lock unavailable.
			return ports.CodeUnexpectedError, true
		}
		if strings.HasPrefix(pgErr.Code, "08") {
			// Connection exception class.
			return ports.CodeUnexpectedError, true
		}
		return ports.CodeUnexpectedError, false
	}

	if pgconn.SafeToRetry(err) {
		return ports.CodeUnexpectedError, true
	}

	return ports.CodeUnexpectedError, false
}

// operationMessage renders the user-visible message for a failed
// operation without leaking driver internals for expected cases.
func operationMessage(description string, code ports.ErrorCode, err error) string {
	switch code {
	case ports.CodeNotFound:
		return fmt.Sprintf("%s: record not found", description)
	case ports.CodeDuplicateKey:
		return fmt.Sprintf("%s: a record with the same unique value already exists", description)
	case ports.CodeForeignKeyViolation:
		return fmt.Sprintf("%s: operation violates a reference to another record", description)
	case ports.CodeConstraintViolation:
		return fmt.Sprintf("%s: %v", description, err)
	default:
		return fmt.Sprintf("%s: %v", description, err)
	}
}
