package graphql

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	gqlerrors "github.com/graph-gophers/graphql-go/errors"
)

// Handler serves GraphQL-over-HTTP POST requests with JSON bodies.
type Handler struct {
	server       *Server
	maxBodyBytes int64
	log          *slog.Logger
}

// NewHandler creates a Handler. Bodies larger than maxBodyBytes are rejected
// with 413.
func NewHandler(log *slog.Logger, server *Server, maxBodyBytes int64) *Handler {
	return &Handler{
		server:       server,
		maxBodyBytes: maxBodyBytes,
		log:          log.With("service", "graphql_http"),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "only POST is supported")
		return
	}
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))

	var req Request
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	resp := h.server.Exec(r.Context(), req)
	if len(resp.Errors) > 0 {
		h.log.DebugContext(r.Context(), "graphql errors",
			slog.String("operation", req.OperationName),
			slog.Int("count", len(resp.Errors)),
		)
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Response{Errors: []*gqlerrors.QueryError{{
		Message:    msg,
		Extensions: map[string]interface{}{"code": CodeBadUserInput},
	}}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
