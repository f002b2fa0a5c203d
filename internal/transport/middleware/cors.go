package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/cellar-backend/internal/config"
)

// originMatcher reports whether an Origin header value is allowed. Entries
// are exact origins, "*" for any origin, or a scheme plus "*." host prefix
// such as "https://*.cellar.example" for any subdomain.
type originMatcher struct {
	any      bool
	exact    map[string]struct{}
	suffixes []string
}

func newOriginMatcher(list string) originMatcher {
	m := originMatcher{exact: make(map[string]struct{})}
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		switch {
		case o == "":
		case o == "*":
			m.any = true
		case strings.Contains(o, "://*."):
			scheme, host, _ := strings.Cut(o, "://*")
			m.suffixes = append(m.suffixes, scheme+"://|"+host)
		default:
			m.exact[o] = struct{}{}
		}
	}
	return m
}

func (m originMatcher) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if m.any {
		return true
	}
	if _, ok := m.exact[origin]; ok {
		return true
	}
	for _, s := range m.suffixes {
		scheme, suffix, _ := strings.Cut(s, "|")
		if rest, ok := strings.CutPrefix(origin, scheme); ok && len(rest) > len(suffix) && strings.HasSuffix(rest, suffix) {
			return true
		}
	}
	return false
}

// CORS answers OPTIONS requests itself and echoes allowed origins back. The
// request id header is exposed so browser clients can quote it in reports.
func CORS(cfg config.CORSConfig) Middleware {
	origins := newOriginMatcher(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			if origin := r.Header.Get("Origin"); origins.allows(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
			}

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")
			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
