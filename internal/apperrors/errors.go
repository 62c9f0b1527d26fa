package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that a resource already exists where creation did
// not ask for replacement.
var ErrConflict = errors.New("resource already exists")

// ErrSerialization indicates a round-trip or internal-consistency failure
// while converting a session to or from its persisted record. Fatal for that
// record only; never crashes the process.
var ErrSerialization = errors.New("serialization error")

// ErrStorage indicates the durable store was unavailable, timed out, or
// rejected a write.
var ErrStorage = errors.New("storage error")

// AppError carries an HTTP-ish status code, a message, and an optional
// wrapped cause, classified under one of the sentinel errors above.
type AppError struct {
	Code    int
	Message string
	Err     error
	kind    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against its sentinel classification.
func (e *AppError) Is(target error) bool {
	return e.kind == target
}

// NewAppError creates a generic application error with no sentinel kind.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404-equivalent error.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, kind: ErrNotFound}
}

// NewConflictError creates a 409-equivalent error.
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, kind: ErrConflict}
}

// NewValidationFailedError creates a 400-equivalent error.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, kind: ErrValidation}
}

// NewSerializationError creates an error for a record that cannot be
// serialized or deserialized.
func NewSerializationError(message string, err error) *AppError {
	return &AppError{Code: 500, Message: message, Err: err, kind: ErrSerialization}
}

// NewStorageError creates an error for a failed or timed-out durable store
// operation.
func NewStorageError(message string, err error) *AppError {
	return &AppError{Code: 503, Message: message, Err: err, kind: ErrStorage}
}
