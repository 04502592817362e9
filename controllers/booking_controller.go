package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-desk/models"
	"hotel-desk/services"
	"hotel-desk/utils"
)

type BookingController struct {
	svc *services.ReservationService
}

func NewBookingController(svc *services.ReservationService) *BookingController {
	return &BookingController{svc: svc}
}

func (bc *BookingController) bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return 0, false
	}
	return id, true
}

type createBookingRequest struct {
	GuestID         int64  `json:"guest_id" binding:"required"`
	RoomNumber      string `json:"room_number" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	SpecialRequests string `json:"special_requests"`
}

// CreateBooking handles POST /api/bookings.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in format")
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out format")
		return
	}

	booking, err := bc.svc.CreateBooking(
		req.GuestID, req.RoomNumber,
		checkIn, checkOut,
		req.Adults, req.Children,
		req.SpecialRequests,
	)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONMutation(c, http.StatusCreated, booking, bc.svc.SaveError() == nil)
}

// GetBookings handles GET /api/bookings.
func (bc *BookingController) GetBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, bc.svc.Bookings())
}

// GetBooking handles GET /api/bookings/:id.
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := bc.bookingID(c)
	if !ok {
		return
	}
	booking, err := bc.svc.Booking(id)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CheckIn handles POST /api/bookings/:id/checkin.
func (bc *BookingController) CheckIn(c *gin.Context) {
	id, ok := bc.bookingID(c)
	if !ok {
		return
	}
	booking, err := bc.svc.CheckIn(id)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONMutation(c, http.StatusOK, booking, bc.svc.SaveError() == nil)
}

type checkOutRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method"`
}

// CheckOut handles POST /api/bookings/:id/checkout. The body is optional
// and only consulted when payment is still pending at the desk.
func (bc *BookingController) CheckOut(c *gin.Context) {
	id, ok := bc.bookingID(c)
	if !ok {
		return
	}
	var req checkOutRequest
	_ = c.ShouldBindJSON(&req)

	res, err := bc.svc.CheckOut(id, req.PaymentMethod)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONMutation(c, http.StatusOK, res, bc.svc.SaveError() == nil)
}

// Cancel handles POST /api/bookings/:id/cancel.
func (bc *BookingController) Cancel(c *gin.Context) {
	id, ok := bc.bookingID(c)
	if !ok {
		return
	}
	booking, err := bc.svc.CancelBooking(id)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONMutation(c, http.StatusOK, booking, bc.svc.SaveError() == nil)
}

type settlePaymentRequest struct {
	Method models.PaymentMethod `json:"method" binding:"required"`
}

// SettlePayment handles POST /api/bookings/:id/payment.
func (bc *BookingController) SettlePayment(c *gin.Context) {
	id, ok := bc.bookingID(c)
	if !ok {
		return
	}
	var req settlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking, alreadyPaid, err := bc.svc.SettlePayment(id, req.Method)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	if alreadyPaid {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    booking,
			"message": "payment already completed",
		})
		return
	}
	utils.JSONMutation(c, http.StatusOK, booking, bc.svc.SaveError() == nil)
}

// SaveSnapshot handles POST /api/snapshot, the operator's retry path after
// a reported write-through failure.
func (bc *BookingController) SaveSnapshot(c *gin.Context) {
	if err := bc.svc.SaveNow(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"saved": true})
}
