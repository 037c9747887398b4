package ratelimit

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// record tracks request counts for one client key inside the current
// fixed window.
type record struct {
	count     int
	resetTime time.Time
}

// Store is an in-memory fixed-window request counter. It is safe for
// concurrent use; every increment-and-compare happens under the mutex so
// concurrent bursts from the same key cannot undercount. Single-process
// only; swap the store for an external cache if the API ever runs on
// more than one instance.
type Store struct {
	mu      sync.Mutex
	records map[string]record
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]record),
		now:     time.Now,
	}
}

// Limited counts a request for key and reports whether the key exceeded
// maxRequests within the current window. The first request of a window
// (or any request after the previous window expired) reinitializes the
// record, so window boundaries are abrupt. A burst straddling the
// boundary can see up to 2*maxRequests requests; that is the accepted
// tradeoff of fixed windows, not a bug.
func (s *Store) Limited(key string, maxRequests int, window time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec, ok := s.records[key]
	if !ok || now.After(rec.resetTime) {
		s.records[key] = record{count: 1, resetTime: now.Add(window)}
		return false
	}

	rec.count++
	s.records[key] = rec
	return rec.count > maxRequests
}

// Clear drops all records. Test/reset hook.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]record)
}

// Sweep removes records whose window expired more than age ago and
// returns how many were dropped. Window rollover already overwrites
// stale records on the next request from the same key; the sweep only
// keeps keys that never come back from accumulating forever.
func (s *Store) Sweep(age time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-age)
	removed := 0
	for key, rec := range s.records {
		if rec.resetTime.Before(cutoff) {
			delete(s.records, key)
			removed++
		}
	}
	return removed
}

// StartSweeping runs Sweep on the given interval until the returned stop
// function is called.
func (s *Store) StartSweeping(interval, age time.Duration) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep(age)
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

// ClientKey derives the rate-limit bucket key for a request: the first
// X-Forwarded-For entry, then X-Real-IP, then the literal "unknown".
// All clients without forwarding headers share the "unknown" bucket; an
// accepted limitation of running behind a proxy that always sets them.
func ClientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := xff
		if idx := strings.Index(xff, ","); idx != -1 {
			first = xff[:idx]
		}
		// A malformed header like ", 1.2.3.4" must not collapse every
		// caller into one empty-string bucket.
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	return "unknown"
}
