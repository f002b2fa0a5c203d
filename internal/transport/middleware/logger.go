package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/cellar-backend/pkg/ctxutil"
)

// Logger logs each HTTP request with its status, duration, response size and
// the request and owner ids.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(sw.ctx(r))),
			}
			if ownerID, ok := ctxutil.OwnerIDFromCtx(sw.ctx(r)); ok {
				attrs = append(attrs, slog.String("owner_id", ownerID.String()))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter captures the status code and size of the response, and the
// request context as seen by inner middleware.
type statusWriter struct {
	http.ResponseWriter
	status      int
	written     int
	wroteHeader bool
	inner       context.Context
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// ctx returns the context recorded by an inner middleware, falling back to
// the outer request.
func (w *statusWriter) ctx(r *http.Request) context.Context {
	if w.inner != nil {
		return w.inner
	}
	return r.Context()
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// recordContext lets middleware that runs inside Logger expose its enriched
// request context to the request log.
func recordContext(w http.ResponseWriter, ctx context.Context) {
	if sw, ok := w.(*statusWriter); ok {
		sw.inner = ctx
	}
}
