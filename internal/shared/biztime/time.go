// Package biztime centralizes the wall clock. All storage and transport use UTC.
package biztime

import (
	"sync"
	"time"
)

var (
	nowMu   sync.RWMutex
	nowFunc = time.Now
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	nowMu.RLock()
	defer nowMu.RUnlock()
	return nowFunc().UTC()
}

// SetClock replaces the clock and returns a function restoring the previous one.
// Intended for tests.
func SetClock(fn func() time.Time) (restore func()) {
	nowMu.Lock()
	prev := nowFunc
	nowFunc = fn
	nowMu.Unlock()
	return func() {
		nowMu.Lock()
		nowFunc = prev
		nowMu.Unlock()
	}
}
