package services

import (
	"log"
	"strconv"
	"strings"
	"time"

	"hotel-desk/models"
	"hotel-desk/store"
)

// GuestService covers guest registration and profile upkeep. Stay counters
// and automatic VIP promotion belong to the reservation engine; this service
// only handles the profile fields and the manual VIP flag. Returned entities
// are copies taken under the lock.
type GuestService struct {
	store    *store.Store
	snapshot *store.Snapshot
}

func NewGuestService(st *store.Store, sn *store.Snapshot) *GuestService {
	return &GuestService{store: st, snapshot: sn}
}

func (s *GuestService) persist() {
	if err := s.snapshot.Save(s.store); err != nil {
		log.Printf("warning: snapshot save failed after guest mutation: %v", err)
	}
}

// Register creates a guest profile. Arguments arrive already validated by
// the caller; only structural defaults are applied here.
func (s *GuestService) Register(name, phone, email, address, idProof, idNumber string) *models.Guest {
	s.store.Lock()
	defer s.store.Unlock()

	guest := &models.Guest{
		ID:           s.store.NextGuestID(),
		Name:         strings.TrimSpace(name),
		Phone:        strings.TrimSpace(phone),
		Email:        strings.TrimSpace(email),
		Address:      strings.TrimSpace(address),
		IDProof:      idProof,
		IDNumber:     idNumber,
		RegisteredAt: time.Now().UTC(),
	}
	s.store.AddGuest(guest)

	s.persist()
	cp := *guest
	return &cp
}

// GuestUpdate carries the optional contact fields; nil means keep current.
type GuestUpdate struct {
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (s *GuestService) Update(guestID int64, upd GuestUpdate) (*models.Guest, error) {
	s.store.Lock()
	defer s.store.Unlock()

	guest := s.store.GuestByID(guestID)
	if guest == nil {
		return nil, ErrGuestNotFound
	}

	if upd.Phone != nil {
		guest.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.Email != nil {
		guest.Email = strings.TrimSpace(*upd.Email)
	}
	if upd.Address != nil {
		guest.Address = strings.TrimSpace(*upd.Address)
	}

	s.persist()
	cp := *guest
	return &cp, nil
}

// SetVIP grants or revokes the flag manually. Revocation is the only way a
// guest loses VIP; check-out promotion never reverses itself.
func (s *GuestService) SetVIP(guestID int64, vip bool) (*models.Guest, error) {
	s.store.Lock()
	defer s.store.Unlock()

	guest := s.store.GuestByID(guestID)
	if guest == nil {
		return nil, ErrGuestNotFound
	}
	guest.VIP = vip

	s.persist()
	cp := *guest
	return &cp, nil
}

func (s *GuestService) Get(guestID int64) (*models.Guest, error) {
	s.store.Lock()
	defer s.store.Unlock()

	guest := s.store.GuestByID(guestID)
	if guest == nil {
		return nil, ErrGuestNotFound
	}
	cp := *guest
	return &cp, nil
}

func (s *GuestService) List() []*models.Guest {
	s.store.Lock()
	defer s.store.Unlock()

	out := make([]*models.Guest, 0, len(s.store.Guests()))
	for _, g := range s.store.Guests() {
		cp := *g
		out = append(out, &cp)
	}
	return out
}

// Search matches an exact guest ID or a case-insensitive name substring.
func (s *GuestService) Search(term string) []*models.Guest {
	s.store.Lock()
	defer s.store.Unlock()

	term = strings.TrimSpace(term)
	id, _ := strconv.ParseInt(term, 10, 64)
	lower := strings.ToLower(term)

	var out []*models.Guest
	for _, g := range s.store.Guests() {
		if g.ID == id || (lower != "" && strings.Contains(strings.ToLower(g.Name), lower)) {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out
}

// History returns the guest's bookings in creation order.
func (s *GuestService) History(guestID int64) ([]*models.Booking, error) {
	s.store.Lock()
	defer s.store.Unlock()

	if s.store.GuestByID(guestID) == nil {
		return nil, ErrGuestNotFound
	}
	var out []*models.Booking
	for _, b := range s.store.Bookings() {
		if b.GuestID == guestID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}
