package nlp

// Canonical intent keywords recognized by the dialogue engine.
const (
	TokenBook      = "book"
	TokenRoom      = "room"
	TokenThanks    = "thanks"
	TokenGreetings = "greetings"
	TokenLocation  = "location"
	TokenAmenities = "amenities"
	TokenContact   = "contact"
	TokenCheckTime = "checktime"
	TokenOffers    = "offers"
	TokenPolicies  = "policies"
	TokenHelp      = "help"
	TokenFarewell  = "farewell"
	TokenLanguage  = "language"
)

// DefaultGroups is the built-in synonym table. Entries span English and
// Somali surface forms; order matters (earlier groups win score ties).
func DefaultGroups() []Group {
	return []Group{
		{Canonical: TokenBook, Synonyms: []string{
			"book", "reserve", "schedule", "arrange", "prebook",
			"secure a reservation", "fix a booking", "organize a stay",
			"make a reservation", "plan my stay", "i qabo qol", "booking",
			"reserve a room",
		}},
		{Canonical: TokenRoom, Synonyms: []string{
			"room", "suite", "accommodation", "bedroom", "lodging",
			"quarters", "living space", "chamber", "hotel room",
			"place to stay", "deluxe", "super deluxe", "triple bed",
			"double bed", "vip", "qol", "qolal",
		}},
		{Canonical: TokenThanks, Synonyms: []string{
			"thanks", "thank you", "much obliged", "cheers",
			"i appreciate it", "gracias", "shukran", "mahadsanid",
			"waad mahadsantay", "ad u mahadsantay", "thankful",
		}},
		{Canonical: TokenGreetings, Synonyms: []string{
			"hello", "hi", "hey", "good morning", "good evening",
			"good afternoon", "good day", "howdy", "salaam", "hiya",
			"greetings", "asc", "asalm alaikum",
		}},
		{Canonical: TokenLocation, Synonyms: []string{
			"location", "where are you", "address", "directions", "place",
			"position", "area", "map location", "wa xage meeshu",
			"meshu xagay ku taal", "meesha",
		}},
		{Canonical: TokenAmenities, Synonyms: []string{
			"amenities", "amenity", "facilities", "facility", "services",
			"service", "wifi", "parking", "gym", "restaurant", "adeegyada",
			"adeeg",
		}},
		{Canonical: TokenContact, Synonyms: []string{
			"contact", "phone", "call", "email", "whatsapp", "reach",
			"telephone", "number", "xiriir", "lambarka", "taleefan",
		}},
		{Canonical: TokenCheckTime, Synonyms: []string{
			"checkin", "check-in", "checkout", "check-out", "arrival",
			"departure", "times", "waqtiga", "goorma", "timing",
		}},
		{Canonical: TokenOffers, Synonyms: []string{
			"offers", "offer", "discount", "discounts", "deal", "deals",
			"promotion", "promotions", "special", "dalacsiin", "qiimo dhimis",
		}},
		{Canonical: TokenPolicies, Synonyms: []string{
			"policy", "policies", "rules", "rule", "smoking", "pets",
			"guidelines", "qaanuun", "qaanuunnada", "shuruudaha",
		}},
		{Canonical: TokenHelp, Synonyms: []string{
			"help", "assist", "assistance", "confused", "guide", "caawimaad",
			"caawi", "i caawi", "what can you do", "options",
		}},
		{Canonical: TokenFarewell, Synonyms: []string{
			"bye", "goodbye", "farewell", "see you", "later", "nabadgelyo",
			"nabad gelyo", "macasalaama", "good night", "take care",
		}},
		{Canonical: TokenLanguage, Synonyms: []string{
			"language", "luqad", "luqadda", "change language",
			"beddel luqadda", "switch language", "af", "english please",
			"somali please", "luqada",
		}},
	}
}
