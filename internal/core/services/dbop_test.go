// internal/core/services/dbop_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acardosi/stockroom-be/internal/core/ports"
	"github.com/acardosi/stockroom-be/internal/core/services"
	"github.com/acardosi/stockroom-be/test/helpers"
)

func TestExecute_Success(t *testing.T) {
	res := services.Execute(context.Background(), helpers.TestLogger(), "fetch thing", false,
		func(ctx context.Context) (int, error) { return 42, nil })

	require.True(t, res.Success)
	assert.Equal(t, 42, res.Data)
	assert.Empty(t, res.ErrorCode)
}

func TestExecute_Classification(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode ports.ErrorCode
	}{
		{
			name:         "no_rows_maps_to_not_found",
			err:          pgx.ErrNoRows,
			expectedCode: ports.CodeNotFound,
		},
		{
			name:         "stock_not_found_maps_to_not_found",
			err:          ports.ErrStockNotFound,
			expectedCode: ports.CodeNotFound,
		},
		{
			name:         "insufficient_stock_maps_to_constraint",
			err:          ports.ErrInsufficientStock,
			expectedCode: ports.CodeConstraintViolation,
		},
		{
			name:         "unique_violation_maps_to_duplicate_key",
			err:          &pgconn.PgError{Code: "23505", Message: "duplicate key value"},
			expectedCode: ports.CodeDuplicateKey,
		},
		{
			name:         "fk_violation_maps_to_foreign_key",
			err:          &pgconn.PgError{Code: "23503", Message: "violates foreign key"},
			expectedCode: ports.CodeForeignKeyViolation,
		},
		{
			name:         "not_null_maps_to_constraint",
			err:          &pgconn.PgError{Code: "23502", Message: "null value in column"},
			expectedCode: ports.CodeConstraintViolation,
		},
		{
			name:         "check_violation_maps_to_constraint",
			err:          &pgconn.PgError{Code: "23514", Message: "violates check constraint"},
			expectedCode: ports.CodeConstraintViolation,
		},
		{
			name:         "plain_error_maps_to_unexpected",
			err:          errors.New("something broke"),
			expectedCode: ports.CodeUnexpectedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := services.Execute(context.Background(), helpers.TestLogger(), "op", false,
				func(ctx context.Context) (struct{}, error) { return struct{}{}, tt.err })

			require.False(t, res.Success)
			assert.Equal(t, tt.expectedCode, res.ErrorCode)
			assert.NotEmpty(t, res.ErrorMessage)
		})
	}
}

func TestExecute_RetriesTransientFailures(t *testing.T) {
	calls := 0
	res := services.Execute(context.Background(), helpers.TestLogger(), "flaky op", true,
		func(ctx context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", &pgconn.PgError{Code: "40001", Message: "serialization failure"}
			}
			return "ok", nil
		})

	require.True(t, res.Success)
	assert.Equal(t, "ok", res.Data)
	assert.Equal(t, 3, calls)
}

func TestExecute_GivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	res := services.Execute(context.Background(), helpers.TestLogger(), "dead op", true,
		func(ctx context.Context) (string, error) {
			calls++
			return "", &pgconn.PgError{Code: "40P01", Message: "deadlock detected"}
		})

	require.False(t, res.Success)
	assert.Equal(t, ports.CodeUnexpectedError, res.ErrorCode)
	assert.Equal(t, 3, calls)
}

func TestExecute_PermanentFailureNeverRetries(t *testing.T) {
	calls := 0
	res := services.Execute(context.Background(), helpers.TestLogger(), "dup op", true,
		func(ctx context.Context) (string, error) {
			calls++
			return "", &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
		})

	require.False(t, res.Success)
	assert.Equal(t, ports.CodeDuplicateKey, res.ErrorCode)
	assert.Equal(t, 1, calls, "permanent failures must fail fast even with retry enabled")
}

func TestExecute_RetryDisabledFailsFast(t *testing.T) {
	calls := 0
	res := services.Execute(context.Background(), helpers.TestLogger(), "single shot", false,
		func(ctx context.Context) (string, error) {
			calls++
			return "", &pgconn.PgError{Code: "40001", Message: "serialization failure"}
		})

	require.False(t, res.Success)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancellationDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	res := services.Execute(ctx, helpers.TestLogger(), "cancelled op", true,
		func(ctx context.Context) (string, error) {
			calls++
			cancel()
			return "", &pgconn.PgError{Code: "40001", Message: "serialization failure"}
		})

	require.False(t, res.Success)
	assert.Equal(t, ports.CodeUnexpectedError, res.ErrorCode)
	assert.Equal(t, 1, calls, "cancellation must stop the retry loop")
	assert.Contains(t, res.ErrorMessage, "aborted")
}
