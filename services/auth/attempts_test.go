package auth

import (
	"testing"
	"time"
)

// fixedClock lets tests drive the store's notion of time.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time        { return c.t }
func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore() (*AttemptStore, *fixedClock) {
	clock := &fixedClock{t: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
	s := NewAttemptStore()
	s.now = clock.now
	return s, clock
}

func TestCheck_AllowsFirstAttempts(t *testing.T) {
	s, clock := newTestStore()

	for i := 1; i <= 4; i++ {
		d := s.Check("1.2.3.4")
		if !d.Allowed {
			t.Fatalf("attempt %d should be allowed", i)
		}
		clock.advance(time.Second)
	}
}

func TestCheck_FifthAttemptDenied(t *testing.T) {
	s, clock := newTestStore()

	for i := 1; i <= 4; i++ {
		s.Check("1.2.3.4")
		clock.advance(time.Second)
	}

	d := s.Check("1.2.3.4")
	if d.Allowed {
		t.Fatal("5th rapid attempt should be denied")
	}
	if d.RetryAfter != warnRetry {
		t.Fatalf("expected retry after %v, got %v", warnRetry, d.RetryAfter)
	}
}

func TestCheck_TenthAttemptBlocksFiveMinutes(t *testing.T) {
	s, clock := newTestStore()

	var d Decision
	for i := 1; i <= 10; i++ {
		d = s.Check("1.2.3.4")
		clock.advance(time.Second)
	}
	if d.Allowed {
		t.Fatal("10th attempt should be denied")
	}
	if d.RetryAfter < softBlock-time.Minute {
		t.Fatalf("10th attempt should trigger a block of about %v, got %v", softBlock, d.RetryAfter)
	}
}

func TestCheck_FifteenthAttemptBlocksThirtyMinutes(t *testing.T) {
	s, clock := newTestStore()

	var d Decision
	for i := 1; i <= 15; i++ {
		d = s.Check("1.2.3.4")
		clock.advance(time.Second)
	}
	if d.Allowed {
		t.Fatal("15th attempt should be denied")
	}
	if d.RetryAfter < hardBlock-time.Minute {
		t.Fatalf("15th attempt should trigger a block of about %v, got %v", hardBlock, d.RetryAfter)
	}
}

func TestCheck_BlockedKeyReportsRemaining(t *testing.T) {
	s, clock := newTestStore()

	for i := 1; i <= 10; i++ {
		s.Check("1.2.3.4")
	}

	clock.advance(2 * time.Minute)
	d := s.Check("1.2.3.4")
	if d.Allowed {
		t.Fatal("key should still be blocked")
	}
	if d.RetryAfter <= 0 {
		t.Fatal("blocked key should report remaining wait")
	}
}

func TestCheck_ResetAfterInactivity(t *testing.T) {
	s, clock := newTestStore()

	for i := 1; i <= 10; i++ {
		s.Check("1.2.3.4")
	}
	if d := s.Check("1.2.3.4"); d.Allowed {
		t.Fatal("key should be blocked before the quiet period")
	}

	clock.advance(16 * time.Minute)
	if d := s.Check("1.2.3.4"); !d.Allowed {
		t.Fatalf("key should be allowed again after 15+ minutes of inactivity, retry %v", d.RetryAfter)
	}
}

func TestCheck_KeysAreIndependent(t *testing.T) {
	s, _ := newTestStore()

	for i := 1; i <= 10; i++ {
		s.Check("10.0.0.1")
	}
	if d := s.Check("10.0.0.2"); !d.Allowed {
		t.Fatal("a different key should not inherit the block")
	}
}

func TestSweep_EvictsStaleEntries(t *testing.T) {
	s, clock := newTestStore()

	s.Check("1.2.3.4")
	s.Check("5.6.7.8")
	clock.advance(30 * time.Minute)
	s.Check("5.6.7.8")

	clock.advance(45 * time.Minute)
	evicted := s.sweep()
	if evicted != 1 {
		t.Fatalf("expected 1 eviction, got %d", evicted)
	}
	if _, ok := s.entries["1.2.3.4"]; ok {
		t.Fatal("stale entry should have been evicted")
	}
	if _, ok := s.entries["5.6.7.8"]; !ok {
		t.Fatal("fresh entry should have survived the sweep")
	}
}
