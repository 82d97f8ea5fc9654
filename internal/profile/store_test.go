package profile

import (
	"fmt"
	"sync"
	"testing"

	"golang.org/x/text/language"
)

func TestUpdateCreatesProfileWithDefaults(t *testing.T) {
	t.Parallel()

	store := NewStore()

	store.Update("user1", func(p *Profile) {
		if p.Language != language.Und {
			t.Errorf("new profile language = %v, want Und", p.Language)
		}
		if p.State != StateAwaitingLanguage {
			t.Errorf("new profile state = %v, want awaiting_language", p.State)
		}
		if p.FallbackAttempts != 0 {
			t.Errorf("new profile fallback attempts = %d, want 0", p.FallbackAttempts)
		}
	})

	if store.Len() != 1 {
		t.Errorf("store.Len() = %d, want 1", store.Len())
	}
}

func TestUpdatePersistsMutations(t *testing.T) {
	t.Parallel()

	store := NewStore()

	store.Update("user1", func(p *Profile) {
		p.Language = language.English
		p.State = StateNormal
	})

	p, ok := store.Snapshot("user1")
	if !ok {
		t.Fatal("expected profile to exist")
	}
	if p.Language != language.English {
		t.Errorf("language = %v, want English", p.Language)
	}
	if p.State != StateNormal {
		t.Errorf("state = %v, want normal", p.State)
	}
}

func TestSnapshotDoesNotCreate(t *testing.T) {
	t.Parallel()

	store := NewStore()

	if _, ok := store.Snapshot("ghost"); ok {
		t.Error("Snapshot should not report an unknown user as existing")
	}
	if store.Len() != 0 {
		t.Errorf("Snapshot must not create profiles, Len() = %d", store.Len())
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Update("user1", func(p *Profile) {
		p.Scratch = map[string]string{"last_room": "Deluxe Room"}
		p.History = []HistoryEntry{{Message: "hi", Intent: "greetings"}}
	})

	snap, _ := store.Snapshot("user1")
	snap.Scratch["last_room"] = "changed"
	snap.History[0].Message = "changed"

	p, _ := store.Snapshot("user1")
	if p.Scratch["last_room"] != "Deluxe Room" {
		t.Error("mutating a snapshot's scratch leaked into the store")
	}
	if p.History[0].Message != "hi" {
		t.Error("mutating a snapshot's history leaked into the store")
	}
}

func TestClearScratch(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Update("user1", func(p *Profile) {
		p.Language = language.English
		p.Scratch = map[string]string{"last_room": "VIP/Suite Room"}
	})

	store.ClearScratch("user1")

	p, _ := store.Snapshot("user1")
	if p.Scratch != nil {
		t.Errorf("scratch should be cleared, got %v", p.Scratch)
	}
	if p.Language != language.English {
		t.Error("ClearScratch must not touch durable fields")
	}

	// Unknown users are a no-op, not a creation.
	store.ClearScratch("ghost")
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestLogInteractionCapsHistory(t *testing.T) {
	t.Parallel()

	p := &Profile{}
	for i := 0; i < 10; i++ {
		p.LogInteraction(fmt.Sprintf("message %d", i), "test", 3)
	}

	if len(p.History) != 3 {
		t.Fatalf("history length = %d, want 3", len(p.History))
	}
	// Oldest entries dropped first.
	if p.History[0].Message != "message 7" {
		t.Errorf("oldest kept entry = %q, want %q", p.History[0].Message, "message 7")
	}
	if p.History[2].Message != "message 9" {
		t.Errorf("newest entry = %q, want %q", p.History[2].Message, "message 9")
	}
	if p.MessageCount != 10 {
		t.Errorf("message count = %d, want 10", p.MessageCount)
	}
}

func TestUpdateSerializesSameUser(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update("user1", func(p *Profile) {
				p.FallbackAttempts++
			})
		}()
	}
	wg.Wait()

	p, _ := store.Snapshot("user1")
	if p.FallbackAttempts != 100 {
		t.Errorf("fallback attempts = %d, want 100 (lost updates)", p.FallbackAttempts)
	}
}

func TestUpdateConcurrentDistinctUsers(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			userID := fmt.Sprintf("user%d", i)
			store.Update(userID, func(p *Profile) {
				p.MessageCount++
			})
		}()
	}
	wg.Wait()

	if store.Len() != 50 {
		t.Errorf("Len() = %d, want 50", store.Len())
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	if StateAwaitingLanguage.String() != "awaiting_language" {
		t.Error("unexpected name for awaiting language state")
	}
	if StateNormal.String() != "normal" {
		t.Error("unexpected name for normal state")
	}
	if State(99).String() != "unknown" {
		t.Error("unexpected name for invalid state")
	}
}
