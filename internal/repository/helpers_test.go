package repository

import (
	"testing"
	"time"

	"example/storefront/internal/kvstore"
	"example/storefront/internal/logger"
)

func init() {
	// Initialize logger for tests
	logger.InitLoggerDev()
}

// setupTestStore creates a store over an in-memory SQLite database
func setupTestStore(t *testing.T) *kvstore.Store {
	t.Helper()
	s, err := kvstore.Open("sqlite3", ":memory:", "test")
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// stepClock makes now return start, start+step, start+2*step, ... for the
// rest of the test
func stepClock(t *testing.T, start time.Time, step time.Duration) {
	t.Helper()
	saved := now
	next := start
	now = func() time.Time {
		current := next
		next = next.Add(step)
		return current
	}
	t.Cleanup(func() { now = saved })
}

// frozenClock makes now always return at
func frozenClock(t *testing.T, at time.Time) {
	t.Helper()
	saved := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = saved })
}

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
