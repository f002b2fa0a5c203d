package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/cellar-backend/pkg/ctxutil"
)

// bucketIdleTTL is how long an unused bucket is kept before cleanup drops it.
const bucketIdleTTL = 10 * time.Minute

// RateLimiter is a token bucket limiter keyed by owner id for authenticated
// requests and by client IP otherwise.
type RateLimiter struct {
	clock   clockwork.Clock
	buckets sync.Map // map[string]*bucket
	stop    chan struct{}
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	perSecond  float64
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter whose idle buckets are swept every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(clock clockwork.Clock, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{clock: clock, stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit allows maxPerMinute requests per key, with bursts up to the same
// amount. maxPerMinute <= 0 disables limiting and returns nil, which Chain
// skips.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	if maxPerMinute <= 0 {
		return nil
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.bucketFor(limitKey(r), maxPerMinute).take(rl.clock.Now()) {
				w.Header().Set("Retry-After", strconv.Itoa(60/maxPerMinute+1))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func limitKey(r *http.Request) string {
	if ownerID, ok := ctxutil.OwnerIDFromCtx(r.Context()); ok {
		return "owner:" + ownerID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (rl *RateLimiter) bucketFor(key string, maxPerMinute int) *bucket {
	if b, ok := rl.buckets.Load(key); ok {
		return b.(*bucket)
	}
	capacity := float64(maxPerMinute)
	b, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     capacity,
		capacity:   capacity,
		perSecond:  capacity / 60,
		lastRefill: rl.clock.Now(),
	})
	return b.(*bucket)
}

func (b *bucket) take(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.perSecond)
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastRefill)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := rl.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.Chan():
			rl.sweep()
		}
	}
}

// sweep drops buckets that have been idle longer than bucketIdleTTL.
func (rl *RateLimiter) sweep() {
	now := rl.clock.Now()
	rl.buckets.Range(func(key, value any) bool {
		if value.(*bucket).idleSince(now) > bucketIdleTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}
