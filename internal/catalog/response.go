package catalog

import (
	"encoding/json"
	"net/http"
)

// envelope is the JSON object used for error, health and preflight bodies.
// Book payloads are written bare: a record for single-book operations and an
// array for the listing.
type envelope map[string]any

// Response is the transport-neutral result of a handler. The HTTP server
// copies it onto an http.ResponseWriter; the Lambda adapter turns it into an
// API Gateway proxy response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// corsHeader returns the permissive cross-origin headers sent with every
// response.
func corsHeader() http.Header {
	h := make(http.Header)
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "Content-Type,x-api-key")
	h.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
	return h
}

// jsonResponse marshals data to indented JSON with the CORS headers applied.
func jsonResponse(status int, data any) Response {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		status = http.StatusInternalServerError
		js = []byte(`{"error": "Internal server error", "details": "response could not be encoded"}`)
	}
	js = append(js, '\n') // Trailing newline makes curl output nicer.

	h := corsHeader()
	h.Set("Content-Type", "application/json")
	return Response{Status: status, Header: h, Body: js}
}

// noContent is the bodiless response used for a successful delete.
func noContent() Response {
	return Response{Status: http.StatusNoContent, Header: corsHeader()}
}

// ErrorResponse builds a {"error": message, "details": details} body. details
// is omitted when nil.
func ErrorResponse(status int, message string, details any) Response {
	body := envelope{"error": message}
	if details != nil {
		body["details"] = details
	}
	return jsonResponse(status, body)
}

// Preflight answers CORS preflight requests.
func Preflight() Response {
	return jsonResponse(http.StatusOK, envelope{"status": "ok"})
}
