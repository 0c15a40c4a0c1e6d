// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router wrapped
// in the middleware chain.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → logRequest → rateLimit → router
//
// Current endpoints:
//
//	POST    /books       – create a new book
//	GET     /books       – list all books, newest first
//	GET     /books/:id   – retrieve a single book by ID
//	PUT     /books/:id   – update an existing book
//	DELETE  /books/:id   – delete a book by ID
//	OPTIONS /books       – CORS preflight
//	OPTIONS /books/:id   – CORS preflight
//	GET     /health      – liveness and database reachability
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)
	// OPTIONS routes are registered explicitly below.
	router.HandleOPTIONS = false

	router.HandlerFunc(http.MethodPost, "/books", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/books/:id", app.showBookHandler)
	router.HandlerFunc(http.MethodPut, "/books/:id", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/books/:id", app.deleteBookHandler)
	router.HandlerFunc(http.MethodOptions, "/books", app.preflightHandler)
	router.HandlerFunc(http.MethodOptions, "/books/:id", app.preflightHandler)

	router.HandlerFunc(http.MethodGet, "/health", app.healthHandler)

	return app.recoverPanic(app.logRequest(app.rateLimit(router)))
}
