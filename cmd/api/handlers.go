// cmd/api/handlers.go
// This file adapts the catalog operations to httprouter handlers. The
// operations themselves live in internal/catalog so the Lambda functions can
// share them; these methods only move bytes between net/http and catalog.
package main

import (
	"net/http"

	"github.com/aoideee/book-catalog/internal/catalog"
)

// createBookHandler handles POST /books.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	body, err := app.readBody(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.writeResponse(w, r, app.catalog.CreateBook(r.Context(), body))
}

// showBookHandler handles GET /books/:id.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	app.writeResponse(w, r, app.catalog.ShowBook(r.Context(), app.readIDParam(r)))
}

// listBooksHandler handles GET /books.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	app.writeResponse(w, r, app.catalog.ListBooks(r.Context()))
}

// updateBookHandler handles PUT /books/:id.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	body, err := app.readBody(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.writeResponse(w, r, app.catalog.UpdateBook(r.Context(), app.readIDParam(r), body))
}

// deleteBookHandler handles DELETE /books/:id.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	app.writeResponse(w, r, app.catalog.DeleteBook(r.Context(), app.readIDParam(r)))
}

// healthHandler handles GET /health.
func (app *applicationDependencies) healthHandler(w http.ResponseWriter, r *http.Request) {
	app.writeResponse(w, r, app.catalog.Health(r.Context()))
}

// preflightHandler handles OPTIONS /books and OPTIONS /books/:id.
func (app *applicationDependencies) preflightHandler(w http.ResponseWriter, r *http.Request) {
	app.writeResponse(w, r, catalog.Preflight())
}
