package middleware

import (
	"bowling_backend/pkg/resp"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// cleanupThreshold is the map size above which idle clients are pruned.
	cleanupThreshold = 500
	// maxIdleAge is how long a client may stay silent before it is pruned.
	maxIdleAge = 10 * time.Minute
)

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ThrowLimiter hands out one token bucket per client address.
type ThrowLimiter struct {
	mtx     sync.Mutex
	clients map[string]*clientEntry
	r       rate.Limit
	b       int
	now     func() time.Time
}

// NewThrowLimiter allows r throws per second per client with bursts of b.
func NewThrowLimiter(r rate.Limit, b int) *ThrowLimiter {
	return &ThrowLimiter{
		clients: make(map[string]*clientEntry),
		r:       r,
		b:       b,
		now:     time.Now,
	}
}

func (l *ThrowLimiter) limiter(client string) *rate.Limiter {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	now := l.now()
	if len(l.clients) > cleanupThreshold {
		cutoff := now.Add(-maxIdleAge)
		for k, e := range l.clients {
			if e.lastSeen.Before(cutoff) {
				delete(l.clients, k)
			}
		}
	}

	e, ok := l.clients[client]
	if !ok {
		e = &clientEntry{limiter: rate.NewLimiter(l.r, l.b)}
		l.clients[client] = e
	}
	e.lastSeen = now
	return e.limiter
}

// RateLimit rejects requests over the client's budget with 429.
func RateLimit(l *ThrowLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				client = r.RemoteAddr
			}

			if !l.limiter(client).Allow() {
				resp.WriteError(w, http.StatusTooManyRequests, "too many throws")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
