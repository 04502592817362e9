package models

import "time"

type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// Active reports whether the booking still holds its room.
func (s BookingStatus) Active() bool {
	return s == BookingConfirmed || s == BookingCheckedIn
}

func (s BookingStatus) Terminal() bool {
	return s == BookingCheckedOut || s == BookingCancelled
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
	// PaymentVoid is the terminal state for a cancelled booking whose
	// payment was never collected; nothing is owed in either direction.
	PaymentVoid PaymentStatus = "VOID"
)

type PaymentMethod string

const (
	PayCreditCard PaymentMethod = "Credit Card"
	PayDebitCard  PaymentMethod = "Debit Card"
	PayNetBanking PaymentMethod = "Net Banking"
	PayUPI        PaymentMethod = "UPI"
	PayCash       PaymentMethod = "Cash"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PayCreditCard, PayDebitCard, PayNetBanking, PayUPI, PayCash:
		return true
	default:
		return false
	}
}

// Booking links one guest to one room over a date range. Guest and room are
// referenced by ID and number only; the booking never owns either record.
type Booking struct {
	ID            int64  `json:"booking_id"`
	ReferenceCode string `json:"reference_code"`
	GuestID       int64  `json:"guest_id"`
	RoomNumber    string `json:"room_number"`

	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Adults   int       `json:"adults"`
	Children int       `json:"children"`

	TotalAmount float64   `json:"total_amount"`
	BookedAt    time.Time `json:"booked_at"`

	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentMethod   PaymentMethod `json:"payment_method,omitempty"`
	SpecialRequests string        `json:"special_requests,omitempty"`
}

// Nights is the whole-day span of the stay. Check-in and check-out are
// stored at day precision, so this is exact for any created booking.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
