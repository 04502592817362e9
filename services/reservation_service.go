package services

import (
	"fmt"
	"log"
	"time"

	"github.com/jinzhu/now"

	"hotel-desk/models"
	"hotel-desk/store"
	"hotel-desk/utils"
)

const (
	// Cumulative spend above which a guest is promoted to VIP at check-out.
	// Promotion is one-way; there is no automatic demotion.
	vipSpendThreshold = 50000

	vipDiscountRate = 0.10
)

// ReservationService is the state-machine core. It is the only component
// that mutates bookings, the only one that moves rooms between statuses, and
// the only one allowed to touch guest counters. Each operation runs as one
// critical section over the store and writes through to the snapshot on
// success. Entities cross the service boundary as copies taken under the
// lock, so rendering them afterwards never observes a concurrent mutation.
type ReservationService struct {
	store    *store.Store
	snapshot *store.Snapshot

	saveErr error
}

func NewReservationService(st *store.Store, sn *store.Snapshot) *ReservationService {
	return &ReservationService{store: st, snapshot: sn}
}

// persist writes the snapshot after a successful mutation. A failed write is
// reported but never rolls back the in-memory state; the operator can retry
// through SaveNow.
func (s *ReservationService) persist() {
	s.saveErr = s.snapshot.Save(s.store)
	if s.saveErr != nil {
		log.Printf("warning: snapshot save failed, in-memory state kept: %v", s.saveErr)
	}
}

// SaveError reports the outcome of the most recent write-through.
func (s *ReservationService) SaveError() error {
	s.store.Lock()
	defer s.store.Unlock()
	return s.saveErr
}

// SaveNow retries the snapshot write on operator request.
func (s *ReservationService) SaveNow() error {
	s.store.Lock()
	defer s.store.Unlock()
	s.persist()
	return s.saveErr
}

// CreateBooking reserves an AVAILABLE room for an existing guest. Dates are
// taken at day precision; the stay must be at least one night. VIP guests
// get a 10% discount computed off the nightly total, so re-displaying the
// amount always recomputes to the same value.
func (s *ReservationService) CreateBooking(
	guestID int64,
	roomNumber string,
	checkIn, checkOut time.Time,
	adults, children int,
	specialRequests string,
) (*models.Booking, error) {
	s.store.Lock()
	defer s.store.Unlock()

	guest := s.store.GuestByID(guestID)
	if guest == nil {
		return nil, ErrGuestNotFound
	}
	room := s.store.RoomByNumber(roomNumber)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.Status != models.RoomAvailable {
		return nil, ErrRoomUnavailable
	}

	ci := now.With(checkIn).BeginningOfDay()
	co := now.With(checkOut).BeginningOfDay()
	nights := int(co.Sub(ci).Hours() / 24)
	if nights < 1 {
		return nil, ErrInvalidDateRange
	}

	if adults <= 0 {
		adults = 1
	}
	if children < 0 {
		children = 0
	}

	total := room.Price * float64(nights)
	if guest.VIP {
		total -= total * vipDiscountRate
	}

	ref, err := utils.NewReferenceCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reference code: %w", err)
	}

	booking := &models.Booking{
		ID:              s.store.NextBookingID(),
		ReferenceCode:   ref,
		GuestID:         guest.ID,
		RoomNumber:      room.RoomNumber,
		CheckIn:         ci,
		CheckOut:        co,
		Adults:          adults,
		Children:        children,
		TotalAmount:     total,
		BookedAt:        time.Now().UTC(),
		Status:          models.BookingConfirmed,
		PaymentStatus:   models.PaymentPending,
		SpecialRequests: specialRequests,
	}

	s.store.AddBooking(booking)
	room.Status = models.RoomBooked
	room.ActiveBookingID = &booking.ID

	s.persist()
	cp := *booking
	return &cp, nil
}

// CheckIn moves a CONFIRMED booking to CHECKED_IN and its room to OCCUPIED.
func (s *ReservationService) CheckIn(bookingID int64) (*models.Booking, error) {
	s.store.Lock()
	defer s.store.Unlock()

	booking := s.store.BookingByID(bookingID)
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != models.BookingConfirmed {
		return nil, ErrInvalidStateTransition
	}
	room := s.store.RoomByNumber(booking.RoomNumber)
	if room == nil {
		return nil, ErrRoomNotFound
	}

	booking.Status = models.BookingCheckedIn
	room.Status = models.RoomOccupied

	s.persist()
	cp := *booking
	return &cp, nil
}

// CheckoutResult reports what a check-out did beyond the status change:
// whether payment had to be collected at the desk, and whether the guest
// crossed the VIP threshold.
type CheckoutResult struct {
	Booking          *models.Booking `json:"booking"`
	Guest            *models.Guest   `json:"guest"`
	PaymentCollected bool            `json:"payment_collected_at_checkout"`
	VIPPromoted      bool            `json:"vip_promoted"`
}

// CheckOut completes a CHECKED_IN stay: the room returns to AVAILABLE with
// its booking reference cleared, the guest's counters absorb the booking
// total, and a still-pending payment is collected before the operation
// completes (Cash when no method is supplied).
func (s *ReservationService) CheckOut(bookingID int64, method models.PaymentMethod) (*CheckoutResult, error) {
	s.store.Lock()
	defer s.store.Unlock()

	booking := s.store.BookingByID(bookingID)
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != models.BookingCheckedIn {
		return nil, ErrInvalidStateTransition
	}
	room := s.store.RoomByNumber(booking.RoomNumber)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	guest := s.store.GuestByID(booking.GuestID)
	if guest == nil {
		return nil, ErrGuestNotFound
	}

	booking.Status = models.BookingCheckedOut
	room.Status = models.RoomAvailable
	room.ActiveBookingID = nil

	guest.TotalStays++
	guest.TotalSpent += booking.TotalAmount

	res := &CheckoutResult{}

	if guest.TotalSpent > vipSpendThreshold && !guest.VIP {
		guest.VIP = true
		res.VIPPromoted = true
		log.Printf("guest %d (%s) promoted to VIP", guest.ID, guest.Name)
	}

	if booking.PaymentStatus != models.PaymentPaid {
		if !method.IsValid() {
			method = models.PayCash
		}
		booking.PaymentStatus = models.PaymentPaid
		booking.PaymentMethod = method
		res.PaymentCollected = true
		log.Printf("booking %d: payment pending at check-out, collected via %s", booking.ID, method)
	}

	s.persist()
	bcp, gcp := *booking, *guest
	res.Booking, res.Guest = &bcp, &gcp
	return res, nil
}

// CancelBooking voids an active booking and frees its room, whether the stay
// had begun or not. A collected payment is marked REFUNDED; a payment that
// was never collected becomes VOID, since nothing is owed back.
func (s *ReservationService) CancelBooking(bookingID int64) (*models.Booking, error) {
	s.store.Lock()
	defer s.store.Unlock()

	booking := s.store.BookingByID(bookingID)
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !booking.Status.Active() {
		return nil, ErrBookingNotCancellable
	}

	booking.Status = models.BookingCancelled
	if booking.PaymentStatus == models.PaymentPaid {
		booking.PaymentStatus = models.PaymentRefunded
	} else {
		booking.PaymentStatus = models.PaymentVoid
	}

	if room := s.store.RoomByNumber(booking.RoomNumber); room != nil {
		room.Status = models.RoomAvailable
		room.ActiveBookingID = nil
	}

	s.persist()
	cp := *booking
	return &cp, nil
}

// SettlePayment records payment for a booking. Settling an already-paid
// booking is a no-op and reports alreadyPaid instead of erroring.
func (s *ReservationService) SettlePayment(bookingID int64, method models.PaymentMethod) (booking *models.Booking, alreadyPaid bool, err error) {
	s.store.Lock()
	defer s.store.Unlock()

	live := s.store.BookingByID(bookingID)
	if live == nil {
		return nil, false, ErrBookingNotFound
	}
	if live.PaymentStatus == models.PaymentPaid {
		cp := *live
		return &cp, true, nil
	}
	if !method.IsValid() {
		return nil, false, ErrInvalidPaymentMethod
	}

	live.PaymentStatus = models.PaymentPaid
	live.PaymentMethod = method

	s.persist()
	cp := *live
	return &cp, false, nil
}

// AddServiceCharge bills a catalog service onto the guest's active booking.
func (s *ReservationService) AddServiceCharge(guestID, serviceID int64) (*models.Booking, error) {
	s.store.Lock()
	defer s.store.Unlock()

	if s.store.GuestByID(guestID) == nil {
		return nil, ErrGuestNotFound
	}
	svc := s.store.ServiceByID(serviceID)
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	booking := s.store.ActiveBookingForGuest(guestID)
	if booking == nil {
		return nil, ErrNoActiveBooking
	}

	booking.TotalAmount += svc.Price

	s.persist()
	cp := *booking
	return &cp, nil
}

// SetMaintenance toggles a room between AVAILABLE and MAINTENANCE. No other
// status may enter or leave maintenance.
func (s *ReservationService) SetMaintenance(roomNumber string, on bool) (*models.Room, error) {
	s.store.Lock()
	defer s.store.Unlock()

	room := s.store.RoomByNumber(roomNumber)
	if room == nil {
		return nil, ErrRoomNotFound
	}

	target := models.RoomAvailable
	if on {
		target = models.RoomMaintenance
	}
	if room.Status == target {
		cp := *room
		return &cp, nil
	}
	if !room.Status.CanTransition(target) ||
		(room.Status != models.RoomAvailable && room.Status != models.RoomMaintenance) {
		return nil, ErrInvalidStateTransition
	}

	room.Status = target

	s.persist()
	cp := *room
	return &cp, nil
}

// Booking returns a single booking by ID.
func (s *ReservationService) Booking(bookingID int64) (*models.Booking, error) {
	s.store.Lock()
	defer s.store.Unlock()

	booking := s.store.BookingByID(bookingID)
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	cp := *booking
	return &cp, nil
}

// Bookings lists every booking in creation order.
func (s *ReservationService) Bookings() []*models.Booking {
	s.store.Lock()
	defer s.store.Unlock()

	out := make([]*models.Booking, 0, len(s.store.Bookings()))
	for _, b := range s.store.Bookings() {
		cp := *b
		out = append(out, &cp)
	}
	return out
}
