package clock

import (
	"context"
	"sync"
	"time"
)

// FixedClock returns a preset instant. Intended for deterministic tests.
type FixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFixed(t time.Time) *FixedClock {
	return &FixedClock{t: t.UTC()}
}

func (c *FixedClock) Now(_ context.Context) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
