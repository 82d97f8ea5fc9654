// Package dialogue implements the conversation engine: it takes one user
// message, runs it through the language gate, the priority intent ladder,
// the pluggable dispatch table, and the fallback escalation tiers, and
// produces the reply text.
package dialogue

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/jeeshotel/hotelbot/internal/catalog"
	"github.com/jeeshotel/hotelbot/internal/config"
	"github.com/jeeshotel/hotelbot/internal/ctxutil"
	domerrors "github.com/jeeshotel/hotelbot/internal/errors"
	"github.com/jeeshotel/hotelbot/internal/hotel"
	"github.com/jeeshotel/hotelbot/internal/intent"
	"github.com/jeeshotel/hotelbot/internal/logger"
	"github.com/jeeshotel/hotelbot/internal/metrics"
	"github.com/jeeshotel/hotelbot/internal/nlp"
	"github.com/jeeshotel/hotelbot/internal/profile"
	"github.com/jeeshotel/hotelbot/internal/ratelimit"
)

// Scratch keys written by the built-in handlers.
const (
	// scratchLastRoom remembers the most recently viewed room type so
	// follow-up questions ("how much is it?") resolve against it.
	scratchLastRoom = "last_room"
)

// Intent names reported in logs and metrics.
const (
	intentLanguagePrompt   = "language_prompt"
	intentLanguageSelected = "language_selected"
	intentGreetings        = "greetings"
	intentRoomDetails      = "room_details"
	intentRoomList         = "rooms"
	intentBooking          = "booking"
	intentLocation         = "location"
	intentLiveAgent        = "live_agent"
	intentFallback         = "fallback"
)

// Deps bundles the collaborators a Responder needs.
type Deps struct {
	Config  config.BotConfig
	Hotel   *hotel.Info
	Store   *profile.Store
	Catalog *catalog.Catalog
	Canon   *nlp.Canonicalizer
	Limiter *ratelimit.KeyedInterval
	Metrics *metrics.Metrics
	Logger  *logger.Logger
}

// Responder is the conversation engine. One instance serves all users;
// per-user turns are serialized by the profile store while distinct users
// proceed in parallel.
type Responder struct {
	cfg      config.BotConfig
	hotel    *hotel.Info
	store    *profile.Store
	catalog  *catalog.Catalog
	canon    *nlp.Canonicalizer
	limiter  *ratelimit.KeyedInterval
	metrics  *metrics.Metrics
	registry *intent.Registry
	log      *logger.Logger
}

// New creates a Responder and registers the built-in intent handlers.
// Limiter and Metrics may be nil (disabled).
func New(d Deps) *Responder {
	log := d.Logger
	if log == nil {
		log = logger.New("info")
	}
	r := &Responder{
		cfg:      d.Config,
		hotel:    d.Hotel,
		store:    d.Store,
		catalog:  d.Catalog,
		canon:    d.Canon,
		limiter:  d.Limiter,
		metrics:  d.Metrics,
		registry: intent.NewRegistry(),
		log:      log.WithModule("dialogue"),
	}
	r.registerDefaults()
	return r
}

// Registry exposes the dispatch table so callers can register additional
// handlers before serving traffic.
func (r *Responder) Registry() *intent.Registry {
	return r.registry
}

// Respond processes one chat message and returns the reply text.
//
// A rate-limited turn returns the localized "slow down" reply together
// with ErrRateLimited so transports can map it to their own status code.
// Validation failures return a *errors.ValidationError. A template
// rendering failure is a configuration bug and propagates as a
// *errors.TemplateError.
func (r *Responder) Respond(ctx context.Context, userID, message string) (string, error) {
	start := time.Now()

	if userID == "" {
		return "", domerrors.NewValidationError("user_id", "must not be empty")
	}
	if len(message) > r.cfg.MaxMessageLength {
		return "", domerrors.NewValidationError("message", "exceeds maximum length")
	}
	// Empty and whitespace-only messages are processed normally: the gate
	// re-prompts, and afterwards the empty token set matches nothing and
	// lands in fallback.
	trimmed := strings.TrimSpace(message)

	log := r.log.WithUserID(userID)
	if reqID := ctxutil.GetRequestID(ctx); reqID != "" {
		log = log.WithRequestID(reqID)
	}

	if r.limiter != nil && !r.limiter.Allow(userID) {
		lang := r.languageOf(userID)
		reply, err := r.catalog.Render(lang, catalog.CategoryRateLimited, nil)
		if err != nil {
			return "", err
		}
		r.countMessage("rate_limited", "rejected", lang)
		log.Warnf("message rejected by rate limiter")
		return reply, domerrors.ErrRateLimited
	}

	var (
		reply      string
		intentName string
		turnErr    error
		lang       language.Tag
	)
	r.store.Update(userID, func(p *profile.Profile) {
		reply, intentName, turnErr = r.turn(trimmed, p)
		if turnErr == nil {
			p.LogInteraction(trimmed, intentName, r.cfg.MaxHistory)
		}
		lang = p.Language
	})

	if r.metrics != nil {
		r.metrics.ActiveProfiles.Set(float64(r.store.Len()))
	}

	if turnErr != nil {
		r.countMessage(intentName, "error", lang)
		log.WithError(turnErr).Errorf("message handling failed")
		return "", turnErr
	}

	r.countMessage(intentName, "ok", lang)
	if r.metrics != nil {
		r.metrics.ResponseDuration.WithLabelValues(intentName).Observe(time.Since(start).Seconds())
	}
	log.WithField("intent", intentName).Debugf("message handled")
	return reply, nil
}

// ForgetContext drops the user's ephemeral conversation context.
func (r *Responder) ForgetContext(userID string) {
	r.store.ClearScratch(userID)
}

// turn runs one dialogue turn under the user's profile lock.
func (r *Responder) turn(message string, p *profile.Profile) (string, string, error) {
	if !p.HasLanguage() {
		return r.selectLanguage(message, p)
	}

	lower := strings.ToLower(message)
	tokens := r.canon.Canonicalize(message)

	// Fixed priority ladder: greetings, then booking/rooms, then location.
	switch {
	case tokens.Has(nlp.TokenGreetings):
		p.FallbackAttempts = 0
		reply, err := r.catalog.Render(p.Language, catalog.CategoryGreetings, nil)
		return reply, intentGreetings, err

	case tokens.Has(nlp.TokenBook) || tokens.Has(nlp.TokenRoom):
		p.FallbackAttempts = 0
		return r.roomsReply(lower, tokens, p)

	case tokens.Has(nlp.TokenLocation):
		p.FallbackAttempts = 0
		reply, err := r.catalog.Render(p.Language, catalog.CategoryAddress, nil)
		return reply, intentLocation, err
	}

	// Live-agent triggers match the raw message, not the canonical
	// tokens: "support" must work even when fuzzy matching would bend
	// it elsewhere.
	for _, phrase := range r.cfg.LiveAgentPhrases {
		if phrase != "" && strings.Contains(lower, strings.ToLower(phrase)) {
			p.FallbackAttempts = 0
			reply, err := r.catalog.Render(p.Language, catalog.CategoryLiveAgent, nil)
			return reply, intentLiveAgent, err
		}
	}

	if name, handler, ok := r.registry.Match(canonicalMessage(tokens), p.Scratch); ok {
		p.FallbackAttempts = 0
		reply, err := handler(message, p)
		return reply, name, err
	}

	return r.fallbackReply(p)
}

// selectLanguage handles the language gate. The gate is idempotent: any
// message that is not a recognized choice re-issues the prompt without
// touching the fallback counter.
func (r *Responder) selectLanguage(message string, p *profile.Profile) (string, string, error) {
	switch strings.ToLower(strings.TrimSpace(message)) {
	case "en", "english", "1":
		p.Language = catalog.English
	case "so", "somali", "soomaali", "2":
		p.Language = catalog.Somali
	default:
		reply, err := r.catalog.Render(catalog.English, catalog.CategoryLanguagePrompt, nil)
		return reply, intentLanguagePrompt, err
	}

	p.State = profile.StateNormal
	reply, err := r.catalog.Render(p.Language, catalog.CategoryGreetings, nil)
	return reply, intentLanguageSelected, err
}

// roomsReply answers booking/room messages. Naming a specific room type
// yields its details and records it as the conversation's room context;
// otherwise a booking message gets the portal link and a room message
// gets the list.
func (r *Responder) roomsReply(lower string, tokens nlp.TokenSet, p *profile.Profile) (string, string, error) {
	if room := r.hotel.FindRoom(lower); room != nil {
		rememberRoom(p, room)
		reply, err := r.catalog.Render(p.Language, catalog.CategoryRoomDetails, roomVars(room))
		return reply, intentRoomDetails, err
	}

	if tokens.Has(nlp.TokenBook) {
		reply, err := r.catalog.Render(p.Language, catalog.CategoryBookingRedirect, nil)
		return reply, intentBooking, err
	}

	reply, err := r.catalog.Render(p.Language, catalog.CategoryRoomList, nil)
	return reply, intentRoomList, err
}

// fallbackReply escalates through the three fallback tiers: a topic menu,
// then a rephrasing nudge with a live-agent offer, then an unconditional
// live-agent handoff.
func (r *Responder) fallbackReply(p *profile.Profile) (string, string, error) {
	p.FallbackAttempts++

	var category, tier string
	switch {
	case p.FallbackAttempts >= r.cfg.EscalationThreshold:
		category, tier = catalog.CategoryEscalation, "3"
	case p.FallbackAttempts == 1:
		category, tier = catalog.CategoryFallbackMenu, "1"
	default:
		category, tier = catalog.CategoryFallbackNudge, "2"
	}

	if r.metrics != nil {
		r.metrics.FallbacksTotal.WithLabelValues(tier).Inc()
	}

	reply, err := r.catalog.Render(p.Language, category, nil)
	return reply, intentFallback, err
}

// languageOf returns the user's chosen language, or English before the
// choice is made.
func (r *Responder) languageOf(userID string) language.Tag {
	if p, ok := r.store.Snapshot(userID); ok && p.HasLanguage() {
		return p.Language
	}
	return catalog.English
}

func (r *Responder) countMessage(intentName, status string, lang language.Tag) {
	if r.metrics == nil {
		return
	}
	r.metrics.MessagesTotal.WithLabelValues(intentName, status, lang.String()).Inc()
}

// canonicalMessage flattens a token set back into a stable string for the
// dispatch table. Order is sorted so matching is deterministic.
func canonicalMessage(tokens nlp.TokenSet) string {
	words := make([]string, 0, len(tokens))
	for token := range tokens {
		words = append(words, token)
	}
	sort.Strings(words)
	return strings.Join(words, " ")
}
