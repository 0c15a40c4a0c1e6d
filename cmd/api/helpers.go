// cmd/api/helpers.go
// This file contains general-purpose helper functions for the application.
// Error-response helpers live in errors.go; only non-error utilities are here.
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/aoideee/book-catalog/internal/catalog"
)

// readIDParam extracts the ":id" URL parameter added by httprouter. Book ids
// are opaque strings; an id that matches no row is reported as 404 by the
// catalog rather than rejected here.
func (app *applicationDependencies) readIDParam(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName("id")
}

// readBody reads the whole request body, capped at catalog.MaxBodyBytes.
// Decoding and validation happen in the catalog.
func (app *applicationDependencies) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, catalog.MaxBodyBytes)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return nil, fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		}
		return nil, err
	}
	return body, nil
}

// writeResponse copies a catalog response onto w.
func (app *applicationDependencies) writeResponse(w http.ResponseWriter, r *http.Request, resp catalog.Response) {
	for key, value := range resp.Header {
		w.Header()[key] = value
	}

	w.WriteHeader(resp.Status)
	if len(resp.Body) == 0 {
		return
	}
	if _, err := w.Write(resp.Body); err != nil {
		app.logError(r, err)
	}
}
