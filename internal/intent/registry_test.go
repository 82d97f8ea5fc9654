package intent

import (
	"testing"

	"github.com/jeeshotel/hotelbot/internal/profile"
)

func handlerReturning(reply string) HandlerFunc {
	return func(_ string, _ *profile.Profile) (string, error) {
		return reply, nil
	}
}

func TestMatchTokenPatterns(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("amenities", []string{"amenities", "hotel facilities"}, handlerReturning("a"), 1, nil)

	if name, _, ok := r.Match("amenities please", nil); !ok || name != "amenities" {
		t.Errorf("single-token pattern: got (%q, %v)", name, ok)
	}

	// Multi-token patterns require every token, in any order.
	if name, _, ok := r.Match("facilities of the hotel", nil); !ok || name != "amenities" {
		t.Errorf("multi-token pattern: got (%q, %v)", name, ok)
	}
	if _, _, ok := r.Match("facilities", nil); ok {
		t.Error("partial multi-token pattern should not match")
	}
}

func TestMatchNoHandler(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("thanks", []string{"thanks"}, handlerReturning("t"), 1, nil)

	if name, handler, ok := r.Match("completely unrelated", nil); ok || name != "" || handler != nil {
		t.Errorf("expected no match, got (%q, %v)", name, ok)
	}
}

func TestMatchPriorityOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("low", []string{"question"}, handlerReturning("low"), 1, nil)
	r.Register("high", []string{"question"}, handlerReturning("high"), 9, nil)

	name, _, ok := r.Match("question", nil)
	if !ok || name != "high" {
		t.Errorf("higher priority should win, got (%q, %v)", name, ok)
	}
}

func TestMatchEqualPriorityKeepsRegistrationOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("first", []string{"question"}, handlerReturning("1"), 5, nil)
	r.Register("second", []string{"question"}, handlerReturning("2"), 5, nil)
	r.Register("third", []string{"question"}, handlerReturning("3"), 5, nil)

	name, _, ok := r.Match("question", nil)
	if !ok || name != "first" {
		t.Errorf("equal priorities should keep registration order, got (%q, %v)", name, ok)
	}
}

func TestMatchContextPassBeatsPriority(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("generic", []string{"price"}, handlerReturning("g"), 9, nil)
	r.Register("followup", []string{"price"}, handlerReturning("f"), 1, []string{"last_room"})

	// Without context the context-gated handler is skipped in pass one,
	// but "generic" satisfies trivially and wins there.
	name, _, ok := r.Match("price", nil)
	if !ok || name != "generic" {
		t.Errorf("without context: got (%q, %v)", name, ok)
	}

	// With context both qualify in pass one and priority decides.
	name, _, ok = r.Match("price", map[string]string{"last_room": "Deluxe Room"})
	if !ok || name != "generic" {
		t.Errorf("with context, priority still decides pass one: got (%q, %v)", name, ok)
	}
}

func TestMatchSecondPassIgnoresContext(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("followup", []string{"price"}, handlerReturning("f"), 1, []string{"last_room"})

	// Only a context-gated handler matches the message: pass one skips
	// it, pass two picks it up.
	name, _, ok := r.Match("price", nil)
	if !ok || name != "followup" {
		t.Errorf("second pass should ignore context requirements, got (%q, %v)", name, ok)
	}
}

func TestMatchContextSatisfiedBeatsHigherPriorityUnsatisfied(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("gated_high", []string{"price"}, handlerReturning("h"), 9, []string{"booking_stage"})
	r.Register("gated_low", []string{"price"}, handlerReturning("l"), 1, []string{"last_room"})

	// Only the low-priority handler's context is satisfied; it must win
	// despite the priority gap.
	name, _, ok := r.Match("price", map[string]string{"last_room": "Triple Room"})
	if !ok || name != "gated_low" {
		t.Errorf("satisfied context should beat unsatisfied priority, got (%q, %v)", name, ok)
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("contact", []string{"Contact Us"}, handlerReturning("c"), 1, nil)

	if name, _, ok := r.Match("CONTACT us NOW", nil); !ok || name != "contact" {
		t.Errorf("matching should be case-insensitive, got (%q, %v)", name, ok)
	}
}
