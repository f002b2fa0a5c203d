package graphql

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	gqlerrors "github.com/graph-gophers/graphql-go/errors"

	"github.com/heartmarshall/cellar-backend/internal/domain"
	"github.com/heartmarshall/cellar-backend/pkg/ctxutil"
)

// Error codes placed in extensions.code.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeAlreadyExists    = "ALREADY_EXISTS"
	CodeValidation       = "VALIDATION"
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodeForbidden        = "FORBIDDEN"
	CodeConflict         = "CONFLICT"
	CodeInternal         = "INTERNAL"
	CodeGraphQLFailed    = "GRAPHQL_VALIDATION_FAILED"
	CodeBadUserInput     = "BAD_USER_INPUT"
	CodeOperationInvalid = "OPERATION_RESOLUTION_FAILURE"
)

// ErrorPresenter turns an execution error into the error sent to the client.
type ErrorPresenter func(ctx context.Context, qe *gqlerrors.QueryError) *gqlerrors.QueryError

// NewErrorPresenter returns a presenter that maps domain errors to GraphQL
// error codes. Unexpected errors are logged and masked as "internal error".
func NewErrorPresenter(log *slog.Logger) ErrorPresenter {
	return func(ctx context.Context, qe *gqlerrors.QueryError) *gqlerrors.QueryError {
		if _, ok := qe.Extensions["code"]; ok {
			return qe
		}

		err := qe.ResolverError
		if err == nil {
			return presentRequestError(ctx, log, qe)
		}

		switch {
		case errors.Is(err, domain.ErrNotFound):
			qe.Extensions = map[string]interface{}{"code": CodeNotFound}

		case errors.Is(err, domain.ErrAlreadyExists):
			qe.Extensions = map[string]interface{}{"code": CodeAlreadyExists}

		case errors.Is(err, domain.ErrValidation):
			qe.Extensions = map[string]interface{}{"code": CodeValidation}
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				qe.Extensions["fields"] = ve.Errors
			}

		case errors.Is(err, domain.ErrUnauthorized):
			qe.Extensions = map[string]interface{}{"code": CodeUnauthenticated}

		case errors.Is(err, domain.ErrForbidden):
			qe.Extensions = map[string]interface{}{"code": CodeForbidden}

		case errors.Is(err, domain.ErrConflict):
			qe.Extensions = map[string]interface{}{"code": CodeConflict}

		default:
			logInternal(ctx, log, err.Error())
			qe.Message = "internal error"
			qe.Extensions = map[string]interface{}{"code": CodeInternal}
		}

		return qe
	}
}

// presentRequestError classifies errors raised by the engine itself rather
// than by a resolver.
func presentRequestError(ctx context.Context, log *slog.Logger, qe *gqlerrors.QueryError) *gqlerrors.QueryError {
	switch {
	case qe.Path != nil:
		// A result that broke the schema, such as null for a non-null field.
		logInternal(ctx, log, qe.Message)
		qe.Message = "internal error"
		qe.Extensions = map[string]interface{}{"code": CodeInternal}

	case qe.Rule != "" || len(qe.Locations) > 0 || strings.HasPrefix(qe.Message, "syntax error"):
		qe.Extensions = map[string]interface{}{"code": CodeGraphQLFailed}

	case isOperationError(qe.Message):
		qe.Extensions = map[string]interface{}{"code": CodeOperationInvalid}

	default:
		// Argument coercion, such as a malformed UUID literal.
		qe.Extensions = map[string]interface{}{"code": CodeBadUserInput}
	}
	return qe
}

func isOperationError(msg string) bool {
	return strings.HasPrefix(msg, "no operation") ||
		strings.HasPrefix(msg, "more than one operation") ||
		strings.HasPrefix(msg, "no mutations")
}

func logInternal(ctx context.Context, log *slog.Logger, msg string) {
	log.ErrorContext(ctx, "unexpected GraphQL error",
		slog.String("error", msg),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)
}
