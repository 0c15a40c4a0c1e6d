// Package gateway adapts the catalog handlers to AWS Lambda functions invoked
// through API Gateway proxy integrations, one function per operation.
package gateway

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/aoideee/book-catalog/internal/catalog"
)

// Func is the signature the Lambda runtime invokes.
type Func func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Route builds the Func for one operation out of the catalog handlers.
type Route func(h *catalog.Handlers) Func

// CreateBook serves POST /books.
func CreateBook(h *catalog.Handlers) Func {
	return only(http.MethodPost, func(ctx context.Context, req events.APIGatewayProxyRequest) catalog.Response {
		body, resp, ok := requestBody(req)
		if !ok {
			return resp
		}
		return h.CreateBook(ctx, body)
	})
}

// ListBooks serves GET /books.
func ListBooks(h *catalog.Handlers) Func {
	return only(http.MethodGet, func(ctx context.Context, _ events.APIGatewayProxyRequest) catalog.Response {
		return h.ListBooks(ctx)
	})
}

// ShowBook serves GET /books/{id}.
func ShowBook(h *catalog.Handlers) Func {
	return only(http.MethodGet, withID(func(ctx context.Context, id string, _ events.APIGatewayProxyRequest) catalog.Response {
		return h.ShowBook(ctx, id)
	}))
}

// UpdateBook serves PUT /books/{id}.
func UpdateBook(h *catalog.Handlers) Func {
	return only(http.MethodPut, withID(func(ctx context.Context, id string, req events.APIGatewayProxyRequest) catalog.Response {
		body, resp, ok := requestBody(req)
		if !ok {
			return resp
		}
		return h.UpdateBook(ctx, id, body)
	}))
}

// DeleteBook serves DELETE /books/{id}.
func DeleteBook(h *catalog.Handlers) Func {
	return only(http.MethodDelete, withID(func(ctx context.Context, id string, _ events.APIGatewayProxyRequest) catalog.Response {
		return h.DeleteBook(ctx, id)
	}))
}

// Health serves GET /health.
func Health(h *catalog.Handlers) Func {
	return only(http.MethodGet, func(ctx context.Context, _ events.APIGatewayProxyRequest) catalog.Response {
		return h.Health(ctx)
	})
}

type handlerFunc func(ctx context.Context, req events.APIGatewayProxyRequest) catalog.Response

// only answers CORS preflights, rejects every method other than method with
// 405 and passes the rest to next. Errors are always reported through the
// response, never through the Lambda error channel, so API Gateway forwards
// the status code to the client.
func only(method string, next handlerFunc) Func {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		switch req.HTTPMethod {
		case http.MethodOptions:
			return toProxyResponse(catalog.Preflight()), nil
		case method:
			return toProxyResponse(next(ctx, req)), nil
		default:
			return toProxyResponse(catalog.ErrorResponse(http.StatusMethodNotAllowed, "Method not allowed", nil)), nil
		}
	}
}

func withID(next func(ctx context.Context, id string, req events.APIGatewayProxyRequest) catalog.Response) handlerFunc {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) catalog.Response {
		id := req.PathParameters["id"]
		if id == "" {
			return catalog.ErrorResponse(http.StatusBadRequest, "Book ID is required", nil)
		}
		return next(ctx, id, req)
	}
}

// requestBody returns the raw request body, decoding it first when API
// Gateway delivered it base64-encoded.
func requestBody(req events.APIGatewayProxyRequest) ([]byte, catalog.Response, bool) {
	if !req.IsBase64Encoded {
		return []byte(req.Body), catalog.Response{}, true
	}
	body, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return nil, catalog.ErrorResponse(http.StatusBadRequest, "Invalid request body", err.Error()), false
	}
	return body, catalog.Response{}, true
}

func toProxyResponse(r catalog.Response) events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(r.Header))
	for key := range r.Header {
		headers[key] = r.Header.Get(key)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: r.Status,
		Headers:    headers,
		Body:       string(r.Body),
	}
}
