package services

import (
	"log"
	"strings"
	"time"

	"hotel-desk/models"
	"hotel-desk/store"
)

// RoomService manages the room inventory and read-side views over it.
// Status transitions stay with the reservation engine; this service touches
// only the descriptive attributes.
type RoomService struct {
	store    *store.Store
	snapshot *store.Snapshot
}

func NewRoomService(st *store.Store, sn *store.Snapshot) *RoomService {
	return &RoomService{store: st, snapshot: sn}
}

func (s *RoomService) persist() {
	if err := s.snapshot.Save(s.store); err != nil {
		log.Printf("warning: snapshot save failed after room mutation: %v", err)
	}
}

// RoomView is a room with its occupant details resolved from the active
// booking back-reference. The occupant fields are empty unless the room is
// BOOKED or OCCUPIED. The embedded room is a copy taken under the lock.
type RoomView struct {
	models.Room
	CurrentGuest string     `json:"current_guest,omitempty"`
	CheckIn      *time.Time `json:"check_in,omitempty"`
	CheckOut     *time.Time `json:"check_out,omitempty"`
}

func (s *RoomService) view(room *models.Room) RoomView {
	v := RoomView{Room: *room}
	if room.ActiveBookingID == nil {
		return v
	}
	booking := s.store.BookingByID(*room.ActiveBookingID)
	if booking == nil {
		return v
	}
	if guest := s.store.GuestByID(booking.GuestID); guest != nil {
		v.CurrentGuest = guest.Name
	}
	ci, co := booking.CheckIn, booking.CheckOut
	v.CheckIn, v.CheckOut = &ci, &co
	return v
}

func (s *RoomService) List() []RoomView {
	s.store.Lock()
	defer s.store.Unlock()

	rooms := s.store.Rooms()
	out := make([]RoomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, s.view(r))
	}
	return out
}

func (s *RoomService) Get(number string) (RoomView, error) {
	s.store.Lock()
	defer s.store.Unlock()

	room := s.store.RoomByNumber(number)
	if room == nil {
		return RoomView{}, ErrRoomNotFound
	}
	return s.view(room), nil
}

// Add registers a new room as AVAILABLE. Room numbers are unique and never
// reused.
func (s *RoomService) Add(number string, roomType models.RoomType, price float64, capacity int, amenities []string) (*models.Room, error) {
	s.store.Lock()
	defer s.store.Unlock()

	number = strings.TrimSpace(number)
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}
	if s.store.RoomByNumber(number) != nil {
		return nil, ErrDuplicateRoom
	}

	room := &models.Room{
		RoomNumber: number,
		Type:       roomType,
		Price:      price,
		Capacity:   capacity,
		Amenities:  amenities,
		Status:     models.RoomAvailable,
	}
	s.store.AddRoom(room)

	s.persist()
	cp := *room
	return &cp, nil
}

// RoomUpdate carries the optional descriptive fields; nil means keep current.
type RoomUpdate struct {
	Price     *float64 `json:"price"`
	Capacity  *int     `json:"capacity"`
	Amenities []string `json:"amenities"`
}

func (s *RoomService) Update(number string, upd RoomUpdate) (*models.Room, error) {
	s.store.Lock()
	defer s.store.Unlock()

	room := s.store.RoomByNumber(number)
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if upd.Price != nil {
		room.Price = *upd.Price
	}
	if upd.Capacity != nil {
		room.Capacity = *upd.Capacity
	}
	if upd.Amenities != nil {
		room.Amenities = upd.Amenities
	}

	s.persist()
	cp := *room
	return &cp, nil
}

// RoomFilter narrows the available-room search. Zero values mean "any".
type RoomFilter struct {
	Type     models.RoomType
	MinPrice float64
	MaxPrice float64
	Capacity int
	Amenity  string
}

// SearchAvailable returns AVAILABLE rooms matching every set criterion.
func (s *RoomService) SearchAvailable(f RoomFilter) []*models.Room {
	s.store.Lock()
	defer s.store.Unlock()

	var out []*models.Room
	for _, r := range s.store.Rooms() {
		if r.Status != models.RoomAvailable {
			continue
		}
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		if f.MinPrice > 0 && r.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && r.Price > f.MaxPrice {
			continue
		}
		if f.Capacity > 0 && r.Capacity < f.Capacity {
			continue
		}
		if f.Amenity != "" && !hasAmenity(r.Amenities, f.Amenity) {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out
}

func hasAmenity(amenities []string, want string) bool {
	want = strings.ToLower(want)
	for _, a := range amenities {
		if strings.Contains(strings.ToLower(a), want) {
			return true
		}
	}
	return false
}
