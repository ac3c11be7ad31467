package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds dùng chung cho mọi domain.
// Domain sentinel errors wrap một trong các kind này để handler layer
// có thể map sang HTTP status bằng errors.Is mà không cần biết domain cụ thể.
var (
	// Entity lookup by identifier failed
	ErrNotFound = errors.New("not found")

	// Duplicate unique field on create/update
	ErrConflict = errors.New("conflict")

	// Failed login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Missing or malformed input
	ErrValidation = errors.New("validation failed")
)

// Error là domain error gắn với một kind.
// Error() chỉ trả về message nên có thể hiển thị thẳng cho user.
type Error struct {
	kind error
	msg  string
}

// New tạo domain sentinel error thuộc kind
func New(kind error, msg string) error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

// ValidationError giữ nguyên lỗi gốc (thường là validation.Errors của ozzo)
// để handler có thể trả về chi tiết từng field.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrValidation.Error(), e.Err)
}

// Unwrap returns both the kind and the underlying error,
// so errors.Is(err, ErrValidation) and errors.As(err, &validation.Errors{}) both work.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

// Validation wraps err as a ValidationError. Returns nil for nil input.
func Validation(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}

// Kind trả về error kind gốc của err, hoặc nil nếu err không thuộc taxonomy.
func Kind(err error) error {
	for _, kind := range []error{ErrNotFound, ErrConflict, ErrInvalidCredentials, ErrValidation} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// HTTPStatus map error kind sang HTTP status code
func HTTPStatus(err error) int {
	switch Kind(err) {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	case ErrValidation:
		return http.StatusBadRequest
	case ErrInvalidCredentials:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
