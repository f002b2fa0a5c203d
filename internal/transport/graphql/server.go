package graphql

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	gql "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"

	"github.com/heartmarshall/cellar-backend/pkg/ctxutil"
)

// Request is a decoded GraphQL-over-HTTP request body.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Response is the body written back to the client.
type Response = gql.Response

// Server executes operations against a parsed schema bound to a root resolver.
type Server struct {
	schema    *gql.Schema
	presenter ErrorPresenter
	log       *slog.Logger
}

// NewServer parses sdl and binds it to root. Every Query and Mutation field in
// sdl must have a matching method on root. Introspection is disabled and
// operations nested deeper than maxDepth are rejected before execution.
func NewServer(log *slog.Logger, sdl string, root any, presenter ErrorPresenter, maxDepth int) (*Server, error) {
	log = log.With("service", "graphql")

	schema, err := gql.ParseSchema(sdl, root,
		gql.UseStringDescriptions(),
		gql.UseFieldResolvers(),
		gql.MaxDepth(maxDepth),
		gql.DisableIntrospection(),
		gql.Logger(panicLogger{log: log}),
		gql.PanicHandler(panicHandler{}),
	)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	return &Server{schema: schema, presenter: presenter, log: log}, nil
}

// Exec runs req and passes every error through the presenter.
func (s *Server) Exec(ctx context.Context, req Request) *Response {
	resp := s.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	for i, qe := range resp.Errors {
		resp.Errors[i] = s.presenter(ctx, qe)
	}
	return resp
}

// panicLogger records recovered resolver panics with the request id.
type panicLogger struct {
	log *slog.Logger
}

func (l panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.log.ErrorContext(ctx, "resolver panic recovered",
		slog.Any("panic", value),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		slog.String("stack", string(debug.Stack())),
	)
}

// panicHandler hides the panic value from the client.
type panicHandler struct{}

func (panicHandler) MakePanicError(_ context.Context, _ interface{}) *gqlerrors.QueryError {
	return &gqlerrors.QueryError{
		Message:    "internal error",
		Extensions: map[string]interface{}{"code": CodeInternal},
	}
}
