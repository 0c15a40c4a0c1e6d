package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aoideee/book-catalog/internal/data"
)

// ErrEmptyBody is returned when a create or update request carries no body.
var ErrEmptyBody = errors.New("no JSON data provided")

// ValidationError carries field-level problems with a request payload, keyed
// by JSON field name. Problems with the body as a whole use the key "body".
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	return "validation error"
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Details: map[string]string{field: message}}
}

// unavailableOps report a lost database connection as 503. Reads and
// deletes report every store failure as 500.
var unavailableOps = map[string]bool{"create": true, "update": true, "prepare": true}

// errorResponse maps err onto a status code and error body. Store failures
// are logged; client mistakes are not.
func (h *Handlers) errorResponse(ctx context.Context, op string, err error) Response {
	var (
		validationErr *ValidationError
		dbErr         *data.DBError
	)

	switch {
	case errors.Is(err, ErrEmptyBody):
		return ErrorResponse(http.StatusBadRequest, "No JSON data provided", nil)
	case errors.As(err, &validationErr):
		return ErrorResponse(http.StatusBadRequest, "Validation error", validationErr.Details)
	case errors.Is(err, data.ErrRecordNotFound):
		return ErrorResponse(http.StatusNotFound, "Book not found", nil)
	case errors.Is(err, data.ErrDuplicateBook):
		h.logError(ctx, op, err)
		return ErrorResponse(http.StatusConflict, "Database integrity error", err.Error())
	case errors.Is(err, data.ErrConnection) && unavailableOps[op]:
		h.logError(ctx, op, err)
		return ErrorResponse(http.StatusServiceUnavailable, "Database connection error", err.Error())
	case errors.Is(err, data.ErrConnection):
		h.logError(ctx, op, err)
		return ErrorResponse(http.StatusInternalServerError, "Database error", err.Error())
	case errors.As(err, &dbErr):
		h.logError(ctx, op, err)
		return ErrorResponse(http.StatusInternalServerError, "Database error", dbErr.Err.Error())
	default:
		h.logError(ctx, op, err)
		return ErrorResponse(http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

// PrepareError maps a failure to prepare the store, such as a schema
// bootstrap that could not reach the database, onto a response.
func (h *Handlers) PrepareError(ctx context.Context, err error) Response {
	return h.errorResponse(ctx, "prepare", err)
}

func (h *Handlers) logError(ctx context.Context, op string, err error) {
	h.logger.ErrorContext(ctx, err.Error(), slog.String("operation", op))
}
