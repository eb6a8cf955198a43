package repository

import (
	"context"
	"time"
)

// CounterRepository counts hits per key inside a fixed window.
type CounterRepository interface {
	// Incr adds one hit to key and returns the count for the current window.
	// The window starts with the first hit and lasts for window.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}
