// internal/core/ports/result.go
package ports

// ErrorCode is the failure taxonomy carried on every failed Result.
type ErrorCode string

// Error code constants
const (
	CodeInvalidInput        ErrorCode = "invalid_input"
	CodeNotFound            ErrorCode = "not_found"
	CodeValidationFailure   ErrorCode = "validation_failure"
	CodeDuplicateKey        ErrorCode = "duplicate_key"
	CodeForeignKeyViolation ErrorCode = "foreign_key_violation"
	CodeConstraintViolation ErrorCode = "constraint_violation"
	CodePartialFailure      ErrorCode = "partial_failure"
	CodeUnexpectedError     ErrorCode = "unexpected_error"
)

// Result is the success/failure envelope returned by every service
// operation that can fail. Errors never cross the service boundary as
// raw Go errors; they are classified into an ErrorCode here.
type Result[T any] struct {
	Success      bool      `json:"success"`
	Data         T         `json:"data,omitempty"`
	ErrorCode    ErrorCode `json:"error_code,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// Ok builds a successful result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail builds a failed result with a code and message.
func Fail[T any](code ErrorCode, message string) Result[T] {
	return Result[T]{Success: false, ErrorCode: code, ErrorMessage: message}
}

// FailFrom carries the code and message of another failed result across a
// type boundary, e.g. when a facade aggregates sub-operation failures.
func FailFrom[T, U any](other Result[U]) Result[T] {
	return Result[T]{Success: false, ErrorCode: other.ErrorCode, ErrorMessage: other.ErrorMessage}
}

// Unit is the data type for results that carry no payload.
type Unit struct{}

// OkUnit is a successful payload-free result.
func OkUnit() Result[Unit] {
	return Ok(Unit{})
}
