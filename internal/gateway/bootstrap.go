package gateway

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/aoideee/book-catalog/internal/catalog"
	"github.com/aoideee/book-catalog/internal/config"
	"github.com/aoideee/book-catalog/internal/data"
)

// Start is the body of every CRUD Lambda main: it loads configuration, builds
// the connection pool once per cold start and hands route's Func to the
// Lambda runtime. The pool connects on first use and the books table is
// ensured on the first invocation, so an unreachable database is answered
// with a JSON error instead of a failed cold start. It does not return.
func Start(route Route) {
	logger, models := bootstrap()
	h := catalog.New(models.Books, logger)

	logger.Info("lambda function ready")
	lambda.Start(withSchema(h, models.Books.EnsureSchema, route(h)))
}

// StartHealth is Start for the health function, which never touches the
// schema: reporting an unreachable database is its whole job.
func StartHealth() {
	logger, models := bootstrap()

	logger.Info("lambda function ready")
	lambda.Start(Health(catalog.New(models.Books, logger)))
}

func bootstrap() (*slog.Logger, data.Models) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	db, err := data.Connect(cfg)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	return logger, data.NewModels(db)
}

// schemaGate runs ensure until it succeeds once.
type schemaGate struct {
	mu     sync.Mutex
	done   bool
	ensure func(context.Context) error
}

func (g *schemaGate) run(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.done {
		return nil
	}
	if err := g.ensure(ctx); err != nil {
		return err
	}
	g.done = true
	return nil
}

// withSchema makes sure ensure has succeeded before next serves a request.
// Preflight requests skip the check.
func withSchema(h *catalog.Handlers, ensure func(context.Context) error, next Func) Func {
	gate := &schemaGate{ensure: ensure}
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		if req.HTTPMethod != http.MethodOptions {
			if err := gate.run(ctx); err != nil {
				return toProxyResponse(h.PrepareError(ctx, err)), nil
			}
		}
		return next(ctx, req)
	}
}
