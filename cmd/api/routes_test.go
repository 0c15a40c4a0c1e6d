package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoideee/book-catalog/internal/catalog"
	"github.com/aoideee/book-catalog/internal/config"
	"github.com/aoideee/book-catalog/internal/data"
)

// mapStore is a minimal in-memory catalog.BookStore.
type mapStore struct {
	mu    sync.Mutex
	books map[string]data.Book
	seq   int
	clock time.Time
}

func (s *mapStore) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

func (s *mapStore) Insert(_ context.Context, b *data.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	b.ID = "book-" + strconv.Itoa(s.seq)
	b.CreatedAt = s.tick()
	b.UpdatedAt = b.CreatedAt
	s.books[b.ID] = *b
	return nil
}

func (s *mapStore) Get(_ context.Context, id string) (*data.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return nil, data.ErrRecordNotFound
	}
	return &b, nil
}

func (s *mapStore) GetAll(context.Context) ([]*data.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	books := []*data.Book{}
	for _, b := range s.books {
		b := b
		books = append(books, &b)
	}
	return books, nil
}

func (s *mapStore) Update(_ context.Context, id string, b *data.Book) (*data.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.books[id]
	if !ok {
		return nil, data.ErrRecordNotFound
	}
	b.CreatedAt = old.CreatedAt
	b.UpdatedAt = s.tick()
	s.books[id] = *b
	return b, nil
}

func (s *mapStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.books[id]
	delete(s.books, id)
	return ok, nil
}

func (s *mapStore) Ping(context.Context) error { return nil }

func newTestApp(t *testing.T, limiter bool) *applicationDependencies {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := &mapStore{books: make(map[string]data.Book), clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

	var cfg config.Config
	cfg.Limiter.Enabled = limiter
	cfg.Limiter.RPS = 1
	cfg.Limiter.Burst = 1

	return &applicationDependencies{
		config:  cfg,
		logger:  logger,
		catalog: catalog.New(store, logger),
	}
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRoutes_CRUDCycle(t *testing.T) {
	h := newTestApp(t, false).routes()

	rr := do(t, h, http.MethodPost, "/books", `{"title":"Dune","author":"Frank Herbert","year":1965}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	var created data.Book
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "available", created.Status)
	assert.Equal(t, "medium", created.Rating)
	assert.Equal(t, []string{}, created.Tags)

	rr = do(t, h, http.MethodGet, "/books/"+created.ID, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/books", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	var list []data.Book
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rr = do(t, h, http.MethodPut, "/books/"+created.ID, `{"status":"borrowed"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var updated data.Book
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "borrowed", updated.Status)
	assert.Equal(t, "Dune", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	rr = do(t, h, http.MethodDelete, "/books/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))

	rr = do(t, h, http.MethodDelete, "/books/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodGet, "/books/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Book not found"}`, rr.Body.String())
}

func TestRoutes_EmptyList(t *testing.T) {
	h := newTestApp(t, false).routes()

	rr := do(t, h, http.MethodGet, "/books", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestRoutes_CreateValidation(t *testing.T) {
	h := newTestApp(t, false).routes()

	rr := do(t, h, http.MethodPost, "/books", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Validation error","details":{"title":"must be provided","author":"must be provided"}}`, rr.Body.String())
}

func TestRoutes_Preflight(t *testing.T) {
	h := newTestApp(t, false).routes()

	for _, target := range []string{"/books", "/books/anything"} {
		rr := do(t, h, http.MethodOptions, target, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Content-Type,x-api-key", rr.Header().Get("Access-Control-Allow-Headers"))
	}
}

func TestRoutes_Health(t *testing.T) {
	h := newTestApp(t, false).routes()

	rr := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"database": "connected"`)
}

func TestRoutes_UnknownRouteAndMethod(t *testing.T) {
	h := newTestApp(t, false).routes()

	rr := do(t, h, http.MethodGet, "/authors", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "could not be found")

	rr = do(t, h, http.MethodPatch, "/books/abc", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRoutes_OversizedBody(t *testing.T) {
	h := newTestApp(t, false).routes()

	body := `{"title":"` + strings.Repeat("a", catalog.MaxBodyBytes) + `","author":"A"}`
	rr := do(t, h, http.MethodPost, "/books", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "must not be larger than")
}

func TestRateLimit(t *testing.T) {
	h := newTestApp(t, true).routes()

	rr := do(t, h, http.MethodGet, "/books", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/books", "")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestRecoverPanic(t *testing.T) {
	app := newTestApp(t, false)
	h := app.recoverPanic(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rr := do(t, h, http.MethodGet, "/books", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "close", rr.Header().Get("Connection"))
	assert.JSONEq(t, `{"error":"Internal server error","details":"kaboom"}`, rr.Body.String())
}

func TestServer_UsesConfiguredTimeouts(t *testing.T) {
	app := newTestApp(t, false)
	app.config.Port = 8081
	app.config.Server.ReadTimeout = 3 * time.Second
	app.config.Server.WriteTimeout = 7 * time.Second
	app.config.Server.IdleTimeout = time.Minute

	srv := app.server()
	assert.Equal(t, ":8081", srv.Addr)
	assert.Equal(t, 3*time.Second, srv.ReadTimeout)
	assert.Equal(t, 7*time.Second, srv.WriteTimeout)
	assert.Equal(t, time.Minute, srv.IdleTimeout)
	assert.NotNil(t, srv.ErrorLog)
}
