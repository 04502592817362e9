package services

import (
	"errors"
	"path/filepath"
	"testing"

	"hotel-desk/models"
	"hotel-desk/store"
)

func newGuestService(t *testing.T) (*GuestService, *store.Store) {
	t.Helper()
	st := store.New()
	sn := store.NewSnapshot(filepath.Join(t.TempDir(), "hotel_data.json"))
	return NewGuestService(st, sn), st
}

func TestRegisterGuest(t *testing.T) {
	svc, _ := newGuestService(t)

	g := svc.Register("  Asha Rao ", "9812345678", " asha@example.com", "12 MG Road", "Passport", "P1234567")

	if g.ID != 1001 {
		t.Errorf("first guest ID = %d, want 1001", g.ID)
	}
	if g.Name != "Asha Rao" || g.Email != "asha@example.com" {
		t.Errorf("whitespace not trimmed: %+v", g)
	}
	if g.VIP || g.TotalStays != 0 || g.TotalSpent != 0 {
		t.Errorf("new guest counters not zeroed: %+v", g)
	}
	if g.RegisteredAt.IsZero() {
		t.Error("registered_at not set")
	}

	if g2 := svc.Register("Vikram Mehta", "", "", "", "", ""); g2.ID != 1002 {
		t.Errorf("second guest ID = %d, want 1002", g2.ID)
	}
}

func TestUpdateGuest(t *testing.T) {
	svc, _ := newGuestService(t)
	g := svc.Register("Asha Rao", "9812345678", "asha@example.com", "12 MG Road", "", "")

	phone := "9000000000"
	got, err := svc.Update(g.ID, GuestUpdate{Phone: &phone})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got.Phone != phone {
		t.Errorf("phone = %q, want %q", got.Phone, phone)
	}
	// fields left nil keep their values
	if got.Email != "asha@example.com" || got.Address != "12 MG Road" {
		t.Errorf("untouched fields changed: %+v", got)
	}

	if _, err := svc.Update(9999, GuestUpdate{Phone: &phone}); !errors.Is(err, ErrGuestNotFound) {
		t.Errorf("unknown guest err = %v, want ErrGuestNotFound", err)
	}
}

func TestSetVIPManually(t *testing.T) {
	svc, _ := newGuestService(t)
	g := svc.Register("Asha Rao", "", "", "", "", "")

	got, err := svc.SetVIP(g.ID, true)
	if err != nil || !got.VIP {
		t.Fatalf("SetVIP(true) = %+v, %v", got, err)
	}
	got, err = svc.SetVIP(g.ID, false)
	if err != nil || got.VIP {
		t.Fatalf("SetVIP(false) = %+v, %v", got, err)
	}
}

func TestSearchGuests(t *testing.T) {
	svc, _ := newGuestService(t)
	svc.Register("Asha Rao", "", "", "", "", "")
	svc.Register("Rahul Sharma", "", "", "", "", "")
	svc.Register("Priya Sharma", "", "", "", "", "")

	if got := svc.Search("1001"); len(got) != 1 || got[0].Name != "Asha Rao" {
		t.Errorf("Search by ID = %v, want Asha Rao", got)
	}
	if got := svc.Search("sharma"); len(got) != 2 {
		t.Errorf("Search(%q) matched %d guests, want 2", "sharma", len(got))
	}
	if got := svc.Search("nobody"); len(got) != 0 {
		t.Errorf("Search with no match returned %d guests", len(got))
	}
}

func TestGuestHistory(t *testing.T) {
	svc, st := newGuestService(t)
	g := svc.Register("Asha Rao", "", "", "", "", "")
	other := svc.Register("Rahul Sharma", "", "", "", "", "")

	st.AddBooking(&models.Booking{ID: st.NextBookingID(), GuestID: g.ID, Status: models.BookingCheckedOut})
	st.AddBooking(&models.Booking{ID: st.NextBookingID(), GuestID: other.ID, Status: models.BookingConfirmed})
	st.AddBooking(&models.Booking{ID: st.NextBookingID(), GuestID: g.ID, Status: models.BookingCancelled})

	hist, err := svc.History(g.ID)
	if err != nil {
		t.Fatalf("History() error: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("history = %d bookings, want 2", len(hist))
	}
	// creation order, terminal bookings included
	if hist[0].ID != 5001 || hist[1].ID != 5003 {
		t.Errorf("history IDs = %d, %d, want 5001, 5003", hist[0].ID, hist[1].ID)
	}

	if _, err := svc.History(9999); !errors.Is(err, ErrGuestNotFound) {
		t.Errorf("unknown guest err = %v, want ErrGuestNotFound", err)
	}
}
