package dialogue

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/jeeshotel/hotelbot/internal/catalog"
	"github.com/jeeshotel/hotelbot/internal/hotel"
	"github.com/jeeshotel/hotelbot/internal/intent"
	"github.com/jeeshotel/hotelbot/internal/nlp"
	"github.com/jeeshotel/hotelbot/internal/profile"
)

// registerDefaults wires the built-in intent handlers into the dispatch
// table. The fixed ladder in turn() outranks all of these; among them,
// priority then registration order decides.
func (r *Responder) registerDefaults() {
	reg := r.registry

	// Follow-up questions about the room the user just viewed. The
	// context requirement makes this beat everything else while a room
	// is in scratch; without one it still answers with the room list.
	reg.Register("room_followup",
		[]string{"price", "cost", "size", "qiimaha"},
		r.roomFollowup, 8, []string{scratchLastRoom})

	reg.Register("change_language",
		[]string{nlp.TokenLanguage},
		r.changeLanguage, 7, nil)

	reg.Register("thanks",
		[]string{nlp.TokenThanks},
		r.simple(catalog.CategoryThanks), 6, nil)

	reg.Register("amenities",
		[]string{nlp.TokenAmenities},
		r.simple(catalog.CategoryAmenities), 5, nil)

	reg.Register("check_times",
		[]string{nlp.TokenCheckTime},
		r.simple(catalog.CategoryCheckTimes), 5, nil)

	reg.Register("contact",
		[]string{nlp.TokenContact},
		r.simple(catalog.CategoryContact), 5, nil)

	reg.Register("special_offers",
		[]string{nlp.TokenOffers},
		r.simple(catalog.CategoryOffers), 5, nil)

	reg.Register("policies",
		[]string{nlp.TokenPolicies},
		r.simple(catalog.CategoryPolicies), 5, nil)

	reg.Register("help",
		[]string{nlp.TokenHelp},
		r.simple(catalog.CategoryHelp), 4, nil)

	reg.Register("farewell",
		[]string{nlp.TokenFarewell},
		r.farewell, 4, nil)
}

// simple returns a handler that renders a single catalog category in the
// user's language.
func (r *Responder) simple(category string) intent.HandlerFunc {
	return func(_ string, p *profile.Profile) (string, error) {
		return r.catalog.Render(p.Language, category, nil)
	}
}

// roomFollowup answers price/size questions against the room recorded in
// scratch. When no room context exists (the context-free second matching
// pass) it degrades to the room list.
func (r *Responder) roomFollowup(_ string, p *profile.Profile) (string, error) {
	roomType := ""
	if p.Scratch != nil {
		roomType = p.Scratch[scratchLastRoom]
	}
	if roomType == "" {
		return r.catalog.Render(p.Language, catalog.CategoryRoomList, nil)
	}

	room := r.hotel.FindRoom(strings.ToLower(roomType))
	if room == nil {
		return r.catalog.Render(p.Language, catalog.CategoryRoomNotFound, nil)
	}
	return r.catalog.Render(p.Language, catalog.CategoryRoomDetails, roomVars(room))
}

// changeLanguage sends the user back through the language gate.
func (r *Responder) changeLanguage(_ string, p *profile.Profile) (string, error) {
	p.Language = language.Und
	p.State = profile.StateAwaitingLanguage
	return r.catalog.Render(catalog.English, catalog.CategoryLanguagePrompt, nil)
}

// farewell closes the conversation and drops its ephemeral context. The
// durable profile (language, history) survives for the next visit.
func (r *Responder) farewell(_ string, p *profile.Profile) (string, error) {
	p.Scratch = nil
	return r.catalog.Render(p.Language, catalog.CategoryFarewells, nil)
}

// rememberRoom records the viewed room as conversation context and as the
// user's durable preference.
func rememberRoom(p *profile.Profile, room *hotel.Room) {
	if p.Scratch == nil {
		p.Scratch = make(map[string]string)
	}
	p.Scratch[scratchLastRoom] = room.Type
	p.LastRoomViewed = room.Type
	p.PreferredRoomType = room.Type
}

// roomVars builds the placeholder values for a room details template.
func roomVars(room *hotel.Room) map[string]string {
	return map[string]string{
		"room_type": room.Type,
		"price":     room.Price,
		"size":      room.Size,
		"beds":      strconv.Itoa(room.Beds),
		"bathrooms": strconv.Itoa(room.Bathrooms),
	}
}
