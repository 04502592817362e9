package controllers

import (
	"errors"
	"net/http"
	"time"

	"hotel-desk/services"
)

// statusFor maps the engine's sentinel failures onto HTTP codes: missing
// entities are 404, illegal lifecycle moves are 409, bad arguments are 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrStaffNotFound),
		errors.Is(err, services.ErrServiceNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrInvalidStateTransition),
		errors.Is(err, services.ErrBookingNotCancellable),
		errors.Is(err, services.ErrNoActiveBooking),
		errors.Is(err, services.ErrDuplicateRoom):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidPaymentMethod),
		errors.Is(err, services.ErrInvalidRoomType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseDate accepts the date-only form the desk uses, with RFC 3339 as a
// fallback for API clients that send full timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
