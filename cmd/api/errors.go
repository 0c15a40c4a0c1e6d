// cmd/api/errors.go
// This file contains the error responses raised by the HTTP layer itself:
// unknown routes, wrong methods, unreadable bodies, rate limiting and panics.
// Errors raised by book operations are mapped inside internal/catalog.
package main

import (
	"log/slog"
	"net/http"

	"github.com/aoideee/book-catalog/internal/catalog"
)

// logError logs an internal error at ERROR level with the request method and URL for context.
func (app *applicationDependencies) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(),
		slog.String("request_method", r.Method),
		slog.String("request_url", r.URL.String()),
	)
}

// errorResponse sends a JSON error envelope with the given status code and message.
// It is the low-level building block used by all the specific error helpers below.
func (app *applicationDependencies) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string, details any) {
	app.writeResponse(w, r, catalog.ErrorResponse(status, message, details))
}

// serverErrorResponse logs an unexpected failure and returns it to the client
// as a 500, raw message included.
func (app *applicationDependencies) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, "Internal server error", err.Error())
}

// notFoundResponse sends a 404 Not Found error for unknown routes.
func (app *applicationDependencies) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found", nil)
}

// methodNotAllowedResponse sends a 405 Method Not Allowed error.
func (app *applicationDependencies) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := "the " + r.Method + " method is not supported for this resource"
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message, nil)
}

// badRequestResponse sends a 400 Bad Request error with the error message from the caller.
func (app *applicationDependencies) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, "Validation error", map[string]string{"body": err.Error()})
}

// rateLimitExceededResponse sends a 429 Too Many Requests error.
func (app *applicationDependencies) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded", nil)
}
