package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock for the ledger engine.
type Time struct {
	mu      sync.Mutex
	current time.Time
}

func NewTime() *Time {
	return &Time{
		current: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
}

func (t *Time) Advance(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = t.current.Add(d)
}
