package auth

import (
	"context"
	"sync"
	"time"

	"atelier/utils"

	"go.uber.org/zap"
)

// Progressive backoff thresholds, evaluated per client key.
const (
	warnThreshold = 5
	softThreshold = 10
	hardThreshold = 15

	warnRetry = 60 * time.Second
	softBlock = 5 * time.Minute
	hardBlock = 30 * time.Minute

	resetAfter    = 15 * time.Minute
	evictAfter    = time.Hour
	sweepInterval = time.Hour
)

type attemptRecord struct {
	count        int
	lastAttempt  time.Time
	blockedUntil time.Time
}

// Decision is the outcome of a rate-limit check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// AttemptStore tracks login attempts per client key in process memory.
// State is lost on restart and not shared across instances; that is an
// accepted limitation of the single-process deployment.
type AttemptStore struct {
	mu      sync.Mutex
	entries map[string]*attemptRecord
	now     func() time.Time
}

// NewAttemptStore creates an empty attempt store.
func NewAttemptStore() *AttemptStore {
	return &AttemptStore{
		entries: make(map[string]*attemptRecord),
		now:     time.Now,
	}
}

// Check records an attempt for the key and decides whether it may proceed.
// Attempts made while a block is active still count, so a sustained burst
// escalates from the 5-minute block to the 30-minute block.
func (s *AttemptStore) Check(key string) Decision {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[key]
	if !ok {
		s.entries[key] = &attemptRecord{count: 1, lastAttempt: now}
		return Decision{Allowed: true}
	}

	// A quiet key starts over, expired blocks included.
	if now.Sub(rec.lastAttempt) > resetAfter {
		rec.count = 1
		rec.lastAttempt = now
		rec.blockedUntil = time.Time{}
		return Decision{Allowed: true}
	}

	rec.count++
	rec.lastAttempt = now

	switch {
	case rec.count >= hardThreshold:
		if until := now.Add(hardBlock); until.After(rec.blockedUntil) {
			rec.blockedUntil = until
		}
	case rec.count >= softThreshold:
		if until := now.Add(softBlock); until.After(rec.blockedUntil) {
			rec.blockedUntil = until
		}
	}

	if rec.blockedUntil.After(now) {
		return Decision{RetryAfter: rec.blockedUntil.Sub(now)}
	}
	if rec.count >= warnThreshold {
		return Decision{RetryAfter: warnRetry}
	}
	return Decision{Allowed: true}
}

// StartSweeper evicts stale entries on an hourly tick until ctx is done.
// Runs off the request path.
func (s *AttemptStore) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				utils.GetLogger().Info("attempt sweeper shutting down")
				return
			case <-ticker.C:
				evicted := s.sweep()
				if evicted > 0 {
					utils.GetLogger().Debug("evicted stale attempt records", zap.Int("count", evicted))
				}
			}
		}
	}()
}

func (s *AttemptStore) sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, rec := range s.entries {
		if now.Sub(rec.lastAttempt) > evictAfter {
			delete(s.entries, key)
			evicted++
		}
	}
	return evicted
}
