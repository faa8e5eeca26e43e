// Package ratelimit implements the per-client sliding-window admission
// check used by the HTTP layer.
package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindow tracks recent request timestamps per client and admits a
// request only while the client stays under the quota within the window.
// One mutex guards the whole structure: purge, check and record happen as
// a single critical section, which keeps the admit decision atomic under
// concurrent handlers. Cost is O(window size) per call.
type SlidingWindow struct {
	maxRequests int
	window      time.Duration
	now         func() time.Time

	mu       sync.Mutex
	requests map[string][]time.Time
}

// NewSlidingWindow creates a limiter admitting maxRequests per client per
// window.
func NewSlidingWindow(maxRequests int, window time.Duration) *SlidingWindow {
	if maxRequests <= 0 {
		maxRequests = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return &SlidingWindow{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		requests:    make(map[string][]time.Time),
	}
}

// Admit reports whether the client may proceed, recording the request
// timestamp when it may. Entries older than the window are purged first.
func (l *SlidingWindow) Admit(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.requests[clientID][:0]
	for _, t := range l.requests[clientID] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.maxRequests {
		l.requests[clientID] = recent
		return false
	}

	l.requests[clientID] = append(recent, now)
	return true
}

// Pending returns the number of live entries for a client. Used by tests
// and debug endpoints.
func (l *SlidingWindow) Pending(clientID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	n := 0
	for _, t := range l.requests[clientID] {
		if t.After(cutoff) {
			n++
		}
	}
	return n
}
