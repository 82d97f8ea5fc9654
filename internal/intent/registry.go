// Package intent provides a priority-ordered, context-gated dispatch table
// mapping token patterns to handler functions. It extends the dialogue
// engine's fixed priority ladder with pluggable handlers.
package intent

import (
	"sort"
	"strings"

	"github.com/jeeshotel/hotelbot/internal/profile"
)

// HandlerFunc produces a reply for a matched message. It runs under the
// user's profile lock, so it may mutate the profile directly.
type HandlerFunc func(message string, p *profile.Profile) (string, error)

// registration is one immutable handler entry.
type registration struct {
	name        string
	patterns    [][]string
	handler     HandlerFunc
	priority    int
	contextReqs []string
	seq         int
}

// Registry holds registered handlers in a priority-sorted list.
// Registration is not safe for concurrent use with Match; register
// everything during startup.
type Registry struct {
	regs []registration
	seq  int
}

// NewRegistry creates an empty dispatch table.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a handler under the given trigger phrases. Each phrase is
// lowercased and whitespace-split into a token pattern; the handler matches
// a message when ANY one pattern has ALL of its tokens present in the
// message. Higher priority wins; equal priorities keep registration order.
// contextReqs name scratch keys that must be non-empty for the handler to
// qualify in the context-aware pass.
func (r *Registry) Register(name string, phrases []string, handler HandlerFunc, priority int, contextReqs []string) {
	patterns := make([][]string, 0, len(phrases))
	for _, phrase := range phrases {
		patterns = append(patterns, strings.Fields(strings.ToLower(phrase)))
	}
	r.regs = append(r.regs, registration{
		name:        name,
		patterns:    patterns,
		handler:     handler,
		priority:    priority,
		contextReqs: contextReqs,
		seq:         r.seq,
	})
	r.seq++

	// Descending priority; stable on registration order.
	sort.SliceStable(r.regs, func(i, j int) bool {
		return r.regs[i].priority > r.regs[j].priority
	})
}

// Match finds the handler for a message in two ordered passes over the
// priority-sorted list: the first pass only considers handlers whose
// context requirements are all satisfied by the scratch map, the second
// ignores context requirements entirely. A context-satisfying match
// therefore always beats a context-free one, even one of higher priority.
// Returns the handler name and function, or ok=false when nothing matches.
func (r *Registry) Match(message string, scratch map[string]string) (string, HandlerFunc, bool) {
	tokens := strings.Fields(strings.ToLower(message))

	for _, reg := range r.regs {
		if !contextSatisfied(reg.contextReqs, scratch) {
			continue
		}
		if matchesAny(reg.patterns, tokens) {
			return reg.name, reg.handler, true
		}
	}

	for _, reg := range r.regs {
		if matchesAny(reg.patterns, tokens) {
			return reg.name, reg.handler, true
		}
	}

	return "", nil, false
}

// contextSatisfied reports whether every required scratch key is truthy.
func contextSatisfied(reqs []string, scratch map[string]string) bool {
	for _, req := range reqs {
		if scratch[req] == "" {
			return false
		}
	}
	return true
}

// matchesAny reports whether any pattern has all its tokens in the message.
func matchesAny(patterns [][]string, tokens []string) bool {
	for _, pattern := range patterns {
		if len(pattern) == 0 {
			continue
		}
		if containsAll(tokens, pattern) {
			return true
		}
	}
	return false
}

func containsAll(tokens, pattern []string) bool {
	for _, want := range pattern {
		found := false
		for _, tok := range tokens {
			if tok == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
