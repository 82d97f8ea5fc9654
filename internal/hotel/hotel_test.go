package hotel

import (
	"strings"
	"testing"
)

func TestRoomListFormat(t *testing.T) {
	t.Parallel()

	info := Default()
	list := info.RoomList()

	lines := strings.Split(list, "\n")
	if len(lines) != len(info.Rooms) {
		t.Fatalf("room list has %d lines, want %d", len(lines), len(info.Rooms))
	}
	if lines[0] != "- Deluxe Room ($49/night)" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[len(lines)-1] != "- VIP/Suite Room ($83/night)" {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}
}

func TestFindRoom(t *testing.T) {
	t.Parallel()

	info := Default()

	cases := []struct {
		message string
		want    string
	}{
		{"tell me about the deluxe room", "Deluxe Room"},
		{"TELL ME ABOUT THE SUPER DELUXE ROOM", "Super Deluxe Room"},
		{"how big is the triple room?", "Triple Room"},
		{"vip/suite room please", "VIP/Suite Room"},
	}
	for _, tc := range cases {
		room := info.FindRoom(tc.message)
		if room == nil {
			t.Errorf("FindRoom(%q) = nil, want %q", tc.message, tc.want)
			continue
		}
		if room.Type != tc.want {
			t.Errorf("FindRoom(%q) = %q, want %q", tc.message, room.Type, tc.want)
		}
	}

	if room := info.FindRoom("do you have a presidential suite"); room != nil {
		t.Errorf("FindRoom should not match unknown room types, got %q", room.Type)
	}
}

func TestVarsCoversTemplatePlaceholders(t *testing.T) {
	t.Parallel()

	vars := Default().Vars()

	for _, key := range []string{
		"name", "address", "phone", "email", "whatsapp", "booking_url",
		"check_in", "check_out", "room_list", "amenities", "offers", "policies",
	} {
		if vars[key] == "" {
			t.Errorf("Vars() missing %q", key)
		}
	}

	if !strings.HasPrefix(vars["amenities"], "- ") {
		t.Errorf("amenities should be bulleted, got %q", vars["amenities"])
	}
}
