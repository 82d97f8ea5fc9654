// Package ratelimit provides a per-key minimum-interval rate limiter.
// A key's request is accepted only when enough time has passed since the
// previous accepted request for that key.
package ratelimit

import (
	"sync"
	"time"
)

// KeyedConfig configures a KeyedInterval instance.
type KeyedConfig struct {
	// Name identifies this limiter for metrics (e.g., "chat")
	Name string

	// MinInterval is the minimum time between two accepted requests for
	// the same key.
	MinInterval time.Duration

	// CleanupPeriod controls how often idle entries are evicted.
	CleanupPeriod time.Duration

	// OnDrop is called whenever a request is rejected (optional).
	OnDrop func(name string)
}

// KeyedInterval tracks the last accepted request per key (e.g., user ID)
// and rejects requests arriving within MinInterval of it. Rejected
// requests do not refresh the timestamp. Idle entries are cleaned up by a
// background loop.
type KeyedInterval struct {
	mu      sync.RWMutex
	entries map[string]*intervalEntry
	config  KeyedConfig
	stopCh  chan struct{}

	// now is the clock source, replaceable in tests.
	now func() time.Time
}

// intervalEntry holds per-key state behind its own lock so a check-then-set
// for one key never blocks other keys.
type intervalEntry struct {
	mu           sync.Mutex
	lastAccepted time.Time
}

// NewKeyedInterval creates a new per-key interval limiter.
//
// Example:
//
//	limiter := ratelimit.NewKeyedInterval(ratelimit.KeyedConfig{
//	    Name:          "chat",
//	    MinInterval:   2 * time.Second,
//	    CleanupPeriod: 5 * time.Minute,
//	})
//	defer limiter.Stop()
//
//	if limiter.Allow("user123") {
//	    // Process request
//	}
func NewKeyedInterval(cfg KeyedConfig) *KeyedInterval {
	kl := &KeyedInterval{
		entries: make(map[string]*intervalEntry),
		config:  cfg,
		stopCh:  make(chan struct{}),
		now:     time.Now,
	}

	go kl.cleanupLoop()

	return kl
}

// Allow checks if a request for the given key is accepted.
// Empty keys are always accepted.
func (kl *KeyedInterval) Allow(key string) bool {
	if key == "" {
		return true
	}

	e := kl.getOrCreateEntry(key)

	e.mu.Lock()
	defer e.mu.Unlock()

	now := kl.now()
	if !e.lastAccepted.IsZero() && now.Sub(e.lastAccepted) < kl.config.MinInterval {
		if kl.config.OnDrop != nil {
			kl.config.OnDrop(kl.config.Name)
		}
		return false
	}

	e.lastAccepted = now
	return true
}

// ActiveCount returns the number of tracked keys.
func (kl *KeyedInterval) ActiveCount() int {
	kl.mu.RLock()
	defer kl.mu.RUnlock()
	return len(kl.entries)
}

// getOrCreateEntry returns the entry for a key, creating it if needed.
func (kl *KeyedInterval) getOrCreateEntry(key string) *intervalEntry {
	kl.mu.RLock()
	e, exists := kl.entries[key]
	kl.mu.RUnlock()

	if exists {
		return e
	}

	kl.mu.Lock()
	defer kl.mu.Unlock()

	// Double-check after acquiring write lock
	e, exists = kl.entries[key]
	if exists {
		return e
	}

	e = &intervalEntry{}
	kl.entries[key] = e
	return e
}

// cleanupLoop periodically removes entries idle for longer than the
// cleanup period. An evicted key's next request is always accepted, which
// matches interval semantics since eviction implies the interval elapsed.
func (kl *KeyedInterval) cleanupLoop() {
	if kl.config.CleanupPeriod <= 0 {
		return
	}
	ticker := time.NewTicker(kl.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-kl.stopCh:
			return
		case <-ticker.C:
			cutoff := kl.now().Add(-kl.config.CleanupPeriod)
			kl.mu.Lock()
			for key, e := range kl.entries {
				e.mu.Lock()
				idle := e.lastAccepted.Before(cutoff)
				e.mu.Unlock()
				if idle {
					delete(kl.entries, key)
				}
			}
			kl.mu.Unlock()
		}
	}
}

// Stop gracefully stops the cleanup goroutine.
// Safe to call multiple times.
func (kl *KeyedInterval) Stop() {
	select {
	case <-kl.stopCh:
		// Already stopped
	default:
		close(kl.stopCh)
	}
}
