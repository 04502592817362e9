package store

import (
	"sync"

	"hotel-desk/models"
)

// Seed values for the four ID sequences. A sequence only moves forward:
// an ID issued for an entity that is later voided is never handed out again.
const (
	guestIDSeed   = 1001
	staffIDSeed   = 2001
	serviceIDSeed = 3001
	bookingIDSeed = 5001
)

// Store owns the authoritative entity collections and the ID sequences.
// One instance is constructed per process and threaded explicitly into the
// services; there is no package-level handle.
//
// The invariants the reservation engine maintains span several entities, so
// every engine operation runs under Lock/Unlock as a single critical section.
type Store struct {
	mu sync.Mutex

	rooms    []*models.Room
	guests   []*models.Guest
	bookings []*models.Booking
	staff    []*models.Staff
	services []*models.Service

	nextGuestID   int64
	nextBookingID int64
	nextStaffID   int64
	nextServiceID int64
}

// New returns an empty store with the sequences at their seed values.
func New() *Store {
	return &Store{
		nextGuestID:   guestIDSeed,
		nextBookingID: bookingIDSeed,
		nextStaffID:   staffIDSeed,
		nextServiceID: serviceIDSeed,
	}
}

func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

// NextGuestID issues the next guest ID and advances the sequence.
func (s *Store) NextGuestID() int64 {
	id := s.nextGuestID
	s.nextGuestID++
	return id
}

func (s *Store) NextBookingID() int64 {
	id := s.nextBookingID
	s.nextBookingID++
	return id
}

func (s *Store) NextStaffID() int64 {
	id := s.nextStaffID
	s.nextStaffID++
	return id
}

func (s *Store) NextServiceID() int64 {
	id := s.nextServiceID
	s.nextServiceID++
	return id
}

func (s *Store) AddRoom(r *models.Room)       { s.rooms = append(s.rooms, r) }
func (s *Store) AddGuest(g *models.Guest)     { s.guests = append(s.guests, g) }
func (s *Store) AddBooking(b *models.Booking) { s.bookings = append(s.bookings, b) }
func (s *Store) AddStaff(st *models.Staff)    { s.staff = append(s.staff, st) }
func (s *Store) AddService(sv *models.Service) {
	s.services = append(s.services, sv)
}

// RoomByNumber returns nil when no room carries the number.
func (s *Store) RoomByNumber(number string) *models.Room {
	for _, r := range s.rooms {
		if r.RoomNumber == number {
			return r
		}
	}
	return nil
}

func (s *Store) GuestByID(id int64) *models.Guest {
	for _, g := range s.guests {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func (s *Store) BookingByID(id int64) *models.Booking {
	for _, b := range s.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (s *Store) StaffByID(id int64) *models.Staff {
	for _, st := range s.staff {
		if st.ID == id {
			return st
		}
	}
	return nil
}

func (s *Store) ServiceByID(id int64) *models.Service {
	for _, sv := range s.services {
		if sv.ID == id {
			return sv
		}
	}
	return nil
}

// ActiveBookingForGuest returns the guest's single CONFIRMED or CHECKED_IN
// booking, or nil.
func (s *Store) ActiveBookingForGuest(guestID int64) *models.Booking {
	for _, b := range s.bookings {
		if b.GuestID == guestID && b.Status.Active() {
			return b
		}
	}
	return nil
}

// The list accessors return the backing slices in insertion order. Callers
// outside the engine's critical sections must treat them as read-only.

func (s *Store) Rooms() []*models.Room        { return s.rooms }
func (s *Store) Guests() []*models.Guest      { return s.guests }
func (s *Store) Bookings() []*models.Booking  { return s.bookings }
func (s *Store) StaffList() []*models.Staff   { return s.staff }
func (s *Store) Services() []*models.Service  { return s.services }
