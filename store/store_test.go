package store

import (
	"testing"

	"hotel-desk/models"
)

func TestSequencesStartAtSeeds(t *testing.T) {
	s := New()

	if got := s.NextGuestID(); got != 1001 {
		t.Errorf("first guest ID = %d, want 1001", got)
	}
	if got := s.NextBookingID(); got != 5001 {
		t.Errorf("first booking ID = %d, want 5001", got)
	}
	if got := s.NextStaffID(); got != 2001 {
		t.Errorf("first staff ID = %d, want 2001", got)
	}
	if got := s.NextServiceID(); got != 3001 {
		t.Errorf("first service ID = %d, want 3001", got)
	}
}

func TestSequencesAdvanceIndependently(t *testing.T) {
	s := New()

	s.NextGuestID()
	s.NextGuestID()
	if got := s.NextGuestID(); got != 1003 {
		t.Errorf("third guest ID = %d, want 1003", got)
	}
	// other sequences untouched
	if got := s.NextBookingID(); got != 5001 {
		t.Errorf("booking sequence moved to %d, want 5001", got)
	}
}

func TestLookupByKey(t *testing.T) {
	s := New()
	s.AddRoom(&models.Room{RoomNumber: "101", Type: models.RoomStandard, Status: models.RoomAvailable})
	s.AddGuest(&models.Guest{ID: s.NextGuestID(), Name: "Asha Rao"})
	s.AddBooking(&models.Booking{ID: s.NextBookingID(), GuestID: 1001, RoomNumber: "101", Status: models.BookingConfirmed})

	if s.RoomByNumber("101") == nil {
		t.Error("room 101 not found")
	}
	if s.RoomByNumber("999") != nil {
		t.Error("unknown room number matched")
	}
	if s.GuestByID(1001) == nil {
		t.Error("guest 1001 not found")
	}
	if s.BookingByID(5001) == nil {
		t.Error("booking 5001 not found")
	}
	if s.BookingByID(5002) != nil {
		t.Error("unknown booking ID matched")
	}
}

func TestActiveBookingForGuest(t *testing.T) {
	s := New()
	gid := s.NextGuestID()
	s.AddGuest(&models.Guest{ID: gid})

	s.AddBooking(&models.Booking{ID: s.NextBookingID(), GuestID: gid, Status: models.BookingCheckedOut})
	if s.ActiveBookingForGuest(gid) != nil {
		t.Error("terminal booking reported as active")
	}

	active := &models.Booking{ID: s.NextBookingID(), GuestID: gid, Status: models.BookingCheckedIn}
	s.AddBooking(active)
	if got := s.ActiveBookingForGuest(gid); got != active {
		t.Errorf("active booking = %v, want booking %d", got, active.ID)
	}
}

func TestSeededStore(t *testing.T) {
	s := NewSeeded()

	if got := len(s.Rooms()); got != 10 {
		t.Errorf("seeded rooms = %d, want 10", got)
	}
	if got := len(s.Services()); got != 8 {
		t.Errorf("seeded services = %d, want 8", got)
	}
	if got := len(s.StaffList()); got != 5 {
		t.Errorf("seeded staff = %d, want 5", got)
	}

	for _, r := range s.Rooms() {
		if r.Status != models.RoomAvailable {
			t.Errorf("seed room %s status = %s, want AVAILABLE", r.RoomNumber, r.Status)
		}
		if !r.Type.IsValid() {
			t.Errorf("seed room %s has invalid type %q", r.RoomNumber, r.Type)
		}
	}

	if r := s.RoomByNumber("101"); r == nil || r.Price != 2500 {
		t.Errorf("seed room 101 = %+v, want price 2500", r)
	}
	if r := s.RoomByNumber("401"); r == nil || r.Type != models.RoomPresidential {
		t.Errorf("seed room 401 = %+v, want Presidential", r)
	}

	// seed consumed the staff and service sequences
	if got := s.NextStaffID(); got != 2006 {
		t.Errorf("staff sequence after seed = %d, want 2006", got)
	}
	if got := s.NextServiceID(); got != 3009 {
		t.Errorf("service sequence after seed = %d, want 3009", got)
	}
}
