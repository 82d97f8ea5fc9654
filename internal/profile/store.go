// Package profile provides the in-memory per-user dialogue state store.
// Profiles are created lazily on first contact and live for the process
// lifetime. Mutations for the same user are serialized behind a per-key
// lock; different users never block each other.
package profile

import (
	"sync"
	"time"

	"golang.org/x/text/language"
)

// State is the stage of conversation a user is in.
type State int

const (
	// StateAwaitingLanguage gates every other intent until the user picks
	// a language.
	StateAwaitingLanguage State = iota

	// StateNormal is the regular conversation stage.
	StateNormal
)

// String returns a log-friendly state name.
func (s State) String() string {
	switch s {
	case StateAwaitingLanguage:
		return "awaiting_language"
	case StateNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// HistoryEntry records one processed message.
type HistoryEntry struct {
	Timestamp time.Time
	Message   string
	Intent    string
}

// Profile is the durable per-user record. Scratch is the ephemeral
// conversation context that handlers may set and clear independently of
// the rest of the profile.
type Profile struct {
	Language         language.Tag // language.Und until resolved
	State            State
	FallbackAttempts int
	MessageCount     int
	LastInteraction  time.Time

	LastRoomViewed    string
	PreferredRoomType string
	BookingHistory    []string

	History []HistoryEntry
	Scratch map[string]string
}

// HasLanguage reports whether the user has chosen a language.
func (p *Profile) HasLanguage() bool {
	return p.Language != language.Und
}

// LogInteraction appends a history entry (capped at maxHistory, oldest
// dropped first) and bumps the interaction counters.
func (p *Profile) LogInteraction(message, intent string, maxHistory int) {
	now := time.Now()
	p.History = append(p.History, HistoryEntry{
		Timestamp: now,
		Message:   message,
		Intent:    intent,
	})
	if maxHistory > 0 && len(p.History) > maxHistory {
		p.History = p.History[len(p.History)-maxHistory:]
	}
	p.MessageCount++
	p.LastInteraction = now
}

// entry holds one user's profile behind its own lock.
type entry struct {
	mu      sync.Mutex
	profile Profile
}

// Store is the process-wide profile store.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewStore creates an empty profile store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]*entry),
	}
}

// Update runs fn with exclusive access to the user's profile, creating the
// profile with defaults on first access. All read-modify-write cycles for a
// turn happen inside fn, so concurrent calls for the same user serialize
// while distinct users proceed in parallel.
func (s *Store) Update(userID string, fn func(*Profile)) {
	e := s.getOrCreateEntry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.profile)
}

// Snapshot returns a deep copy of the user's profile and whether it exists.
// Reading through Snapshot never creates a profile.
func (s *Store) Snapshot(userID string) (Profile, bool) {
	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok {
		return Profile{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.profile
	p.History = append([]HistoryEntry(nil), e.profile.History...)
	p.BookingHistory = append([]string(nil), e.profile.BookingHistory...)
	if e.profile.Scratch != nil {
		p.Scratch = make(map[string]string, len(e.profile.Scratch))
		for k, v := range e.profile.Scratch {
			p.Scratch[k] = v
		}
	}
	return p, true
}

// ClearScratch drops the user's ephemeral conversation context. The durable
// profile fields are untouched. Clearing an unknown user is a no-op.
func (s *Store) ClearScratch(userID string) {
	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.profile.Scratch = nil
}

// Len returns the number of known profiles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// getOrCreateEntry returns the entry for a user, creating it if needed.
func (s *Store) getOrCreateEntry(userID string) *entry {
	s.mu.RLock()
	e, exists := s.entries[userID]
	s.mu.RUnlock()

	if exists {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	e, exists = s.entries[userID]
	if exists {
		return e
	}

	e = &entry{
		profile: Profile{
			Language: language.Und,
			State:    StateAwaitingLanguage,
		},
	}
	s.entries[userID] = e
	return e
}
