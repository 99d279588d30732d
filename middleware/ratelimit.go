package middleware

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles an endpoint per client IP. Used on the
// guide endpoint so one visitor cannot burn the model budget.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	visitors map[string]*visitorEntry
	rps      rate.Limit
	burst    int
	stop     chan struct{}
	stopOnce sync.Once
}

type visitorEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimitMiddleware allows roughly requestsPerMinute sustained
// requests per IP with a burst of the same size.
func NewRateLimitMiddleware(requestsPerMinute int) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		visitors: make(map[string]*visitorEntry),
		rps:      rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:    requestsPerMinute,
		stop:     make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

// Stop ends the background cleanup goroutine. Safe to call more than once.
func (m *RateLimitMiddleware) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

// WithRateLimit wraps a handler with the per-IP limiter.
func (m *RateLimitMiddleware) WithRateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !m.limiterFor(ip).Allow() {
			log.Printf("⚠️ Rate limit exceeded for %s", ip)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			if err := json.NewEncoder(w).Encode(map[string]string{
				"error": "You have reached the request limit. Please try again in a minute.",
			}); err != nil {
				log.Printf("❌ Failed to encode rate limit response: %v", err)
			}
			return
		}
		next(w, r)
	}
}

func (m *RateLimitMiddleware) limiterFor(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.visitors[ip]
	if !ok {
		entry = &visitorEntry{limiter: rate.NewLimiter(m.rps, m.burst)}
		m.visitors[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (m *RateLimitMiddleware) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.mu.Lock()
			for ip, entry := range m.visitors {
				if time.Since(entry.lastSeen) > 10*time.Minute {
					delete(m.visitors, ip)
				}
			}
			m.mu.Unlock()
		}
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// First hop is the client
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
