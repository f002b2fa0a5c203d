package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// schemaVersioner reports the applied migration version.
type schemaVersioner interface {
	GetDBVersion(ctx context.Context) (int64, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	schema  schemaVersioner
	version string
	clock   clockwork.Clock
}

// NewHealthHandler creates a HealthHandler. schema may be nil, in which case
// /health omits the schema component.
func NewHealthHandler(db dbPinger, schema schemaVersioner, version string, clock clockwork.Clock) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version, clock: clock}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now()})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.clock.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now()})
}

// Health reports the database with its ping latency and the applied schema
// version. Any component down makes the response 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	overall := "ok"

	start := h.clock.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		overall = "down"
	} else {
		components["database"] = CompStatus{Status: "ok", Latency: h.clock.Since(start).String()}
	}

	if h.schema != nil {
		v, err := h.schema.GetDBVersion(ctx)
		if err != nil {
			components["schema"] = CompStatus{Status: "down"}
			overall = "down"
		} else {
			components["schema"] = CompStatus{Status: "ok", Detail: "version " + strconv.FormatInt(v, 10)}
		}
	}

	status := http.StatusOK
	if overall != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.clock.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
