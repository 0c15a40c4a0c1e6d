// Package catalog implements the book CRUD request contract. Each operation
// maps a request payload to a Response and holds no state beyond the injected
// BookStore, so the same handlers back both the long-running HTTP server and
// the per-operation Lambda functions.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aoideee/book-catalog/internal/data"
	"github.com/aoideee/book-catalog/internal/validator"
)

// BookStore is the persistence contract the handlers depend on.
// data.BookModel is the PostgreSQL implementation.
type BookStore interface {
	Insert(ctx context.Context, book *data.Book) error
	Get(ctx context.Context, id string) (*data.Book, error)
	GetAll(ctx context.Context) ([]*data.Book, error)
	Update(ctx context.Context, id string, book *data.Book) (*data.Book, error)
	Delete(ctx context.Context, id string) (bool, error)
	Ping(ctx context.Context) error
}

// Handlers bundles the dependencies shared by every operation.
type Handlers struct {
	books  BookStore
	logger *slog.Logger
	now    func() time.Time
}

// New returns Handlers backed by books.
func New(books BookStore, logger *slog.Logger) *Handlers {
	return &Handlers{books: books, logger: logger, now: time.Now}
}

// CreateBook handles POST /books.
func (h *Handlers) CreateBook(ctx context.Context, body []byte) Response {
	var input data.CreateBookInput
	if err := decodeJSON(body, &input); err != nil {
		return h.errorResponse(ctx, "create", err)
	}

	v := validator.New()
	if data.ValidateCreateBookInput(v, input); !v.Valid() {
		return h.errorResponse(ctx, "create", &ValidationError{Details: v.Errors})
	}

	book := input.Book()
	if err := h.books.Insert(ctx, book); err != nil {
		return h.errorResponse(ctx, "create", err)
	}

	return jsonResponse(http.StatusCreated, book)
}

// ShowBook handles GET /books/{id}.
func (h *Handlers) ShowBook(ctx context.Context, id string) Response {
	book, err := h.books.Get(ctx, id)
	if err != nil {
		return h.errorResponse(ctx, "show", err)
	}
	return jsonResponse(http.StatusOK, book)
}

// ListBooks handles GET /books.
func (h *Handlers) ListBooks(ctx context.Context) Response {
	books, err := h.books.GetAll(ctx)
	if err != nil {
		return h.errorResponse(ctx, "list", err)
	}
	if books == nil {
		books = []*data.Book{}
	}
	return jsonResponse(http.StatusOK, books)
}

// UpdateBook handles PUT /books/{id}. Only the fields present in the body
// change; book_id, created_at and updated_at in the body are ignored.
func (h *Handlers) UpdateBook(ctx context.Context, id string, body []byte) Response {
	var input data.UpdateBookInput
	if err := decodeJSON(body, &input); err != nil {
		return h.errorResponse(ctx, "update", err)
	}

	v := validator.New()
	if data.ValidateUpdateBookInput(v, input); !v.Valid() {
		return h.errorResponse(ctx, "update", &ValidationError{Details: v.Errors})
	}

	book, err := h.books.Get(ctx, id)
	if err != nil {
		return h.errorResponse(ctx, "update", err)
	}

	input.Apply(book)

	updated, err := h.books.Update(ctx, id, book)
	if err != nil {
		return h.errorResponse(ctx, "update", err)
	}

	return jsonResponse(http.StatusOK, updated)
}

// DeleteBook handles DELETE /books/{id}.
func (h *Handlers) DeleteBook(ctx context.Context, id string) Response {
	deleted, err := h.books.Delete(ctx, id)
	if err != nil {
		return h.errorResponse(ctx, "delete", err)
	}
	if !deleted {
		return h.errorResponse(ctx, "delete", data.ErrRecordNotFound)
	}
	return noContent()
}

// Health handles GET /health. The database probe is best effort: a failure
// is reported in the body but the status stays 200.
func (h *Handlers) Health(ctx context.Context) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.ErrorContext(ctx, "health check failed", slog.Any("panic", r))
			resp = jsonResponse(http.StatusServiceUnavailable, envelope{
				"status":    "unhealthy",
				"timestamp": unixSeconds(h.now()),
				"error":     fmt.Sprint(r),
			})
		}
	}()

	body := envelope{
		"status":    "healthy",
		"timestamp": unixSeconds(h.now()),
		"app":       "running",
	}

	if err := h.books.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "health check: database unreachable", slog.String("error", err.Error()))
		body["database"] = "disconnected"
		body["db_error"] = err.Error()
	} else {
		body["database"] = "connected"
	}

	return jsonResponse(http.StatusOK, body)
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
