package services

import "errors"

// Failure conditions surfaced to the caller. Every operation either applies
// its full set of entity mutations or none of them; these errors are always
// returned before any state has changed.
var (
	ErrGuestNotFound   = errors.New("guest_not_found")
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrStaffNotFound   = errors.New("staff_not_found")
	ErrServiceNotFound = errors.New("service_not_found")

	ErrRoomUnavailable        = errors.New("room_unavailable")
	ErrInvalidDateRange       = errors.New("invalid_date_range")
	ErrInvalidStateTransition = errors.New("invalid_state_transition")
	ErrBookingNotCancellable  = errors.New("booking_not_cancellable")
	ErrNoActiveBooking        = errors.New("no_active_booking")
	ErrInvalidPaymentMethod   = errors.New("invalid_payment_method")
	ErrInvalidRoomType        = errors.New("invalid_room_type")
	ErrDuplicateRoom          = errors.New("room_number_taken")
)
