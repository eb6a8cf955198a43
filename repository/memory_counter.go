package repository

import (
	"context"
	"sync"
	"time"
)

type memoryWindow struct {
	count   int64
	expires time.Time
}

// MemoryCounter is an in-process CounterRepository, used in tests and when
// no Redis address is configured.
type MemoryCounter struct {
	mu      sync.Mutex
	now     func() time.Time
	windows map[string]*memoryWindow
}

func NewMemoryCounter() *MemoryCounter {
	return NewMemoryCounterWithClock(time.Now)
}

func NewMemoryCounterWithClock(now func() time.Time) *MemoryCounter {
	return &MemoryCounter{
		now:     now,
		windows: make(map[string]*memoryWindow),
	}
}

func (m *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.windows[key]
	if !ok || !now.Before(w.expires) {
		w = &memoryWindow{expires: now.Add(window)}
		m.windows[key] = w
	}
	w.count++
	return w.count, nil
}
