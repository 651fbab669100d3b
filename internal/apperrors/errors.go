// Package apperrors defines the failure taxonomy shared by services and handlers.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Sentinel errors
var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidID         = errors.New("invalid ID format")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidCredential = errors.New("invalid email or password")
)

// ErrDuplicateBrandEmail is returned when a brand already uses the submitted email
var ErrDuplicateBrandEmail = &PreconditionError{Message: "Brand with this email already exists!"}

// ValidationError maps form fields to human-readable messages.
// It blocks a submission entirely.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// UploadError aborts a create flow. Files uploaded before it are left staged.
type UploadError struct {
	File string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("Failed to upload %s: %v", e.File, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// PreconditionError blocks a flow before any write happens.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }

// StoreWriteError wraps a failed document store write.
type StoreWriteError struct {
	Op               string
	PermissionDenied bool
	Err              error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

// AncillaryWriteError is a failed best-effort write. It is logged, never surfaced.
type AncillaryWriteError struct {
	Op  string
	Err error
}

func (e *AncillaryWriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AncillaryWriteError) Unwrap() error { return e.Err }

// HTTPStatus converts an error into the status code and single user-facing
// message returned by the API.
func HTTPStatus(err error) (int, string) {
	var (
		validationErr   *ValidationError
		uploadErr       *UploadError
		preconditionErr *PreconditionError
		storeErr        *StoreWriteError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "Please correct the highlighted fields"
	case errors.As(err, &uploadErr):
		return http.StatusBadGateway, "Upload failed: " + uploadErr.Error()
	case errors.As(err, &preconditionErr):
		return http.StatusConflict, preconditionErr.Message
	case errors.As(err, &storeErr):
		if storeErr.PermissionDenied {
			return http.StatusForbidden, "Permission denied. Please check database access rules."
		}
		return http.StatusInternalServerError, "Failed to " + storeErr.Error()
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrInvalidCredential):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	default:
		return http.StatusInternalServerError, "Something went wrong, please try again."
	}
}
