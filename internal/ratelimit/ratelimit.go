// Package ratelimit implements a process-local fixed-window counter keyed by
// an arbitrary string (user ID, client IP). It is approximate across
// instances; its purpose is abuse dampening, not quota enforcement.
package ratelimit

import (
	"sync"
	"time"
)

// Decision is the outcome of a Check.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration // zero when Allowed
}

// Limiter allows at most Limit events per key per Window.
type Limiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	windows sync.Map // map[string]*counter
	stop    chan struct{}
	once    sync.Once
}

type counter struct {
	mu      sync.Mutex
	start   time.Time
	count   int
	lastHit time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithNow overrides the time source.
func WithNow(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New creates a limiter with background cleanup of idle keys.
// Call Stop() on shutdown. A non-positive cleanupInterval disables cleanup.
func New(limit int, window, cleanupInterval time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	for _, o := range opts {
		o(l)
	}
	if cleanupInterval > 0 {
		go l.cleanup(cleanupInterval)
	}
	return l
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

// Check records one event for key and reports whether it is within the limit.
// Denied events are not counted.
func (l *Limiter) Check(key string) Decision {
	now := l.now()

	val, _ := l.windows.LoadOrStore(key, &counter{start: now})
	c := val.(*counter)

	c.mu.Lock()
	defer c.mu.Unlock()

	if now.Sub(c.start) >= l.window {
		c.start = now
		c.count = 0
	}
	c.lastHit = now

	if c.count >= l.limit {
		return Decision{RetryAfter: c.start.Add(l.window).Sub(now)}
	}
	c.count++
	return Decision{Allowed: true, Remaining: l.limit - c.count}
}

func (l *Limiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

// sweep drops keys whose window has fully elapsed.
func (l *Limiter) sweep() {
	now := l.now()
	l.windows.Range(func(key, value any) bool {
		c := value.(*counter)
		c.mu.Lock()
		expired := now.Sub(c.start) >= l.window
		c.mu.Unlock()
		if expired {
			l.windows.Delete(key)
		}
		return true
	})
}
