package http

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wealth-planner/repository"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

// Limiter decides whether a client may make another request.
type Limiter interface {
	Allow(ctx context.Context, client string) bool
}

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is an in-process token bucket per client, refilled in full
// once refillDur has elapsed.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	refillDur   time.Duration
	now         func() time.Time
	clients     map[string]*clientBucket
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := newRateLimiter(capacity, refillDur, time.Now)
	go rl.cleanupLoop()
	return rl
}

func newRateLimiter(capacity int, refillDur time.Duration, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		capacity:    capacity,
		refillDur:   refillDur,
		now:         now,
		clients:     make(map[string]*clientBucket),
		stopCleanup: make(chan struct{}),
	}
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for ip, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > bucketCleanupThreshold {
			delete(r.clients, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *RateLimiter) Allow(_ context.Context, ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[ip]

	if !exists {
		r.clients[ip] = &clientBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.refillDur {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}

// WindowLimiter counts requests per fixed window in a shared counter store,
// so several instances behind a balancer enforce one limit.
type WindowLimiter struct {
	counter  repository.CounterRepository
	capacity int64
	window   time.Duration
	logger   *slog.Logger
}

func NewWindowLimiter(counter repository.CounterRepository, capacity int, window time.Duration, logger *slog.Logger) *WindowLimiter {
	return &WindowLimiter{
		counter:  counter,
		capacity: int64(capacity),
		window:   window,
		logger:   logger.With("component", "rate_limiter"),
	}
}

// Allow fails open when the counter store is unreachable.
func (l *WindowLimiter) Allow(ctx context.Context, client string) bool {
	count, err := l.counter.Incr(ctx, client, l.window)
	if err != nil {
		l.logger.Warn("rate limit counter unavailable", "client", client, "error", err)
		return true
	}
	return count <= l.capacity
}
