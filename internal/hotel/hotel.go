// Package hotel holds the static hotel information consumed by the response
// catalog and the dialogue handlers. The data is configuration supplied at
// startup and treated as immutable for the process lifetime.
package hotel

import (
	"fmt"
	"strings"
)

// Room describes one bookable room type.
type Room struct {
	Type      string
	Price     string
	Size      string
	Beds      int
	Bathrooms int
}

// Info is the static hotel record. Placeholder values for response templates
// are drawn from it via Vars().
type Info struct {
	Name       string
	Address    string
	Phone      string
	Email      string
	WhatsApp   string
	BookingURL string
	CheckIn    string
	CheckOut   string

	Rooms         []Room
	Amenities     []string
	SpecialOffers []string
	Policies      []string
}

// Default returns the Jees Hotel record.
func Default() *Info {
	return &Info{
		Name:       "Jees Hotel",
		Address:    "Sha'ab Area, Hargeisa, Somaliland",
		Phone:      "+252 63 8533333",
		Email:      "info@jeeshotel.com",
		WhatsApp:   "https://wa.me/252638533333",
		BookingURL: "https://live.ipms247.com/booking/book-rooms-jeeshotel",
		CheckIn:    "1:00 PM",
		CheckOut:   "12:00 PM",
		Rooms: []Room{
			{Type: "Deluxe Room", Price: "$49/night", Size: "24.20 m²", Beds: 1, Bathrooms: 1},
			{Type: "Super Deluxe Room", Price: "$59/night", Size: "26.30 m²", Beds: 1, Bathrooms: 1},
			{Type: "Twin/Double Room", Price: "$79/night", Size: "26.30 m²", Beds: 2, Bathrooms: 1},
			{Type: "Triple Room", Price: "$105/night", Size: "50 m²", Beds: 3, Bathrooms: 1},
			{Type: "VIP/Suite Room", Price: "$83/night", Size: "50 m²", Beds: 1, Bathrooms: 1},
		},
		Amenities: []string{
			"Complimentary Wi-Fi",
			"Free Parking",
			"Fitness Center",
			"Rooftop Restaurant",
			"Complimentary Airport Transfer",
			"Laundry Service",
			"On-site ATMs",
		},
		SpecialOffers: []string{
			"Free airport transfer for ALL rooms.",
			"20% discount on extended stays during off-peak seasons.",
			"Complimentary breakfast for reservations made 30 days in advance.",
		},
		Policies: []string{
			"Pets are not allowed on the premises.",
			"No smoking is permitted in any indoor areas.",
			"Guests must adhere to the designated check-in/check-out times.",
			"Any damage to hotel property will be charged to the guest.",
		},
	}
}

// RoomList returns one line per configured room, "- {type} ({price})",
// in declaration order.
func (i *Info) RoomList() string {
	lines := make([]string, 0, len(i.Rooms))
	for _, room := range i.Rooms {
		lines = append(lines, fmt.Sprintf("- %s (%s)", room.Type, room.Price))
	}
	return strings.Join(lines, "\n")
}

// FindRoom returns the configured room whose type appears in the message
// (case-insensitive), or nil when none is named. When several types match,
// the longest name wins: "super deluxe room" must not resolve to the
// "Deluxe Room" it contains as a substring.
func (i *Info) FindRoom(message string) *Room {
	lower := strings.ToLower(message)
	var best *Room
	bestLen := 0
	for idx := range i.Rooms {
		name := strings.ToLower(i.Rooms[idx].Type)
		if strings.Contains(lower, name) && len(name) > bestLen {
			best = &i.Rooms[idx]
			bestLen = len(name)
		}
	}
	return best
}

// Vars returns the placeholder values shared by every template render.
func (i *Info) Vars() map[string]string {
	return map[string]string{
		"name":        i.Name,
		"address":     i.Address,
		"phone":       i.Phone,
		"email":       i.Email,
		"whatsapp":    i.WhatsApp,
		"booking_url": i.BookingURL,
		"check_in":    i.CheckIn,
		"check_out":   i.CheckOut,
		"room_list":   i.RoomList(),
		"amenities":   bulleted(i.Amenities),
		"offers":      bulleted(i.SpecialOffers),
		"policies":    bulleted(i.Policies),
	}
}

func bulleted(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
