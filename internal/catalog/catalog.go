// Package catalog holds the language-keyed response templates and renders
// them with placeholder substitution. The catalog is static configuration:
// a missing template or placeholder is a configuration bug and surfaces as
// an error instead of an empty reply.
package catalog

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	domerrors "github.com/jeeshotel/hotelbot/internal/errors"
	"github.com/jeeshotel/hotelbot/internal/hotel"
	"golang.org/x/text/language"
)

// Supported languages. Und marks a profile whose language is not yet chosen.
var (
	English = language.English
	Somali  = language.Make("so")
)

// Response categories.
const (
	CategoryGreetings       = "greetings"
	CategoryFarewells       = "farewells"
	CategoryThanks          = "thanks"
	CategoryLanguagePrompt  = "language_prompt"
	CategoryRoomList        = "room_list"
	CategoryRoomDetails     = "room_details"
	CategoryRoomNotFound    = "room_not_found"
	CategoryBookingRedirect = "booking_redirect"
	CategoryAddress         = "address"
	CategoryAmenities       = "amenities"
	CategoryCheckTimes      = "check_times"
	CategoryContact         = "contact"
	CategoryOffers          = "special_offers"
	CategoryPolicies        = "policies"
	CategoryHelp            = "help"
	CategoryLiveAgent       = "live_agent"
	CategoryFallbackMenu    = "fallback_menu"
	CategoryFallbackNudge   = "fallback_nudge"
	CategoryEscalation      = "escalation"
	CategoryRateLimited     = "rate_limited"
)

// placeholderRe matches {placeholder} tokens inside templates.
var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// Catalog maps language → category → templates. Categories with multiple
// templates are selected via the pick function (uniform random by default,
// injectable for deterministic tests).
type Catalog struct {
	entries map[language.Tag]map[string][]string
	info    *hotel.Info
	pick    func(n int) int
}

// New creates a catalog with the built-in English/Somali templates bound to
// the given hotel record.
func New(info *hotel.Info) *Catalog {
	return &Catalog{
		entries: defaultEntries(),
		info:    info,
		pick:    rand.Intn,
	}
}

// SetSelector replaces the random template selector.
// Tests use this to pin which template a multi-template category yields.
func (c *Catalog) SetSelector(pick func(n int) int) {
	c.pick = pick
}

// Languages returns the languages the catalog carries templates for.
func (c *Catalog) Languages() []language.Tag {
	tags := make([]language.Tag, 0, len(c.entries))
	for tag := range c.entries {
		tags = append(tags, tag)
	}
	return tags
}

// Validate checks the catalog is complete: every language carries the same
// non-empty category set. Run at startup so an incomplete catalog fails
// fast instead of surfacing mid-conversation.
func (c *Catalog) Validate() error {
	categories := make(map[string]struct{})
	for _, templates := range c.entries {
		for category := range templates {
			categories[category] = struct{}{}
		}
	}
	for lang, templates := range c.entries {
		for category := range categories {
			candidates, ok := templates[category]
			if !ok || len(candidates) == 0 {
				return domerrors.NewTemplateError(lang.String(), category, domerrors.ErrTemplateNotFound)
			}
			for _, template := range candidates {
				if strings.TrimSpace(template) == "" {
					return domerrors.NewTemplateError(lang.String(), category, domerrors.ErrTemplateNotFound)
				}
			}
		}
	}
	return nil
}

// Has reports whether a template exists for the language and category.
func (c *Catalog) Has(lang language.Tag, category string) bool {
	templates, ok := c.entries[lang]
	if !ok {
		return false
	}
	_, ok = templates[category]
	return ok
}

// Render selects a template for (lang, category) and substitutes its
// placeholders from the hotel record plus the handler-supplied vars.
// Handler vars win on key collision. An unknown (lang, category) pair or an
// unresolved placeholder returns a TemplateError.
func (c *Catalog) Render(lang language.Tag, category string, vars map[string]string) (string, error) {
	templates, ok := c.entries[lang]
	if !ok {
		return "", domerrors.NewTemplateError(lang.String(), category, domerrors.ErrTemplateNotFound)
	}
	candidates, ok := templates[category]
	if !ok || len(candidates) == 0 {
		return "", domerrors.NewTemplateError(lang.String(), category, domerrors.ErrTemplateNotFound)
	}

	template := candidates[0]
	if len(candidates) > 1 {
		template = candidates[c.pick(len(candidates))]
	}

	merged := c.info.Vars()
	for k, v := range vars {
		merged[k] = v
	}

	var missing []string
	rendered := placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.Trim(match, "{}")
		value, ok := merged[key]
		if !ok {
			missing = append(missing, key)
			return match
		}
		return value
	})
	if len(missing) > 0 {
		return "", domerrors.NewTemplateError(lang.String(), category,
			fmt.Errorf("%w: %s", domerrors.ErrMissingPlaceholder, strings.Join(missing, ", ")))
	}

	return rendered, nil
}
