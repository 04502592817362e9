package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-desk/services"
	"hotel-desk/utils"
)

type GuestController struct {
	svc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{svc: svc}
}

func (gc *GuestController) guestID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest id")
		return 0, false
	}
	return id, true
}

type registerGuestRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Address  string `json:"address"`
	IDProof  string `json:"id_proof"`
	IDNumber string `json:"id_number"`
}

// CreateGuest handles POST /api/guests.
func (gc *GuestController) CreateGuest(c *gin.Context) {
	var req registerGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	guest := gc.svc.Register(req.Name, req.Phone, req.Email, req.Address, req.IDProof, req.IDNumber)
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

// GetGuests handles GET /api/guests; ?q= switches to search by ID or name.
func (gc *GuestController) GetGuests(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		utils.JSONSuccess(c, http.StatusOK, gc.svc.Search(q))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gc.svc.List())
}

// GetGuest handles GET /api/guests/:id.
func (gc *GuestController) GetGuest(c *gin.Context) {
	id, ok := gc.guestID(c)
	if !ok {
		return
	}
	guest, err := gc.svc.Get(id)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// UpdateGuest handles PATCH /api/guests/:id.
func (gc *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := gc.guestID(c)
	if !ok {
		return
	}
	var upd services.GuestUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	guest, err := gc.svc.Update(id, upd)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

type vipRequest struct {
	VIP *bool `json:"vip" binding:"required"`
}

// SetVIP handles PUT /api/guests/:id/vip, the manual grant/revoke path.
func (gc *GuestController) SetVIP(c *gin.Context) {
	id, ok := gc.guestID(c)
	if !ok {
		return
	}
	var req vipRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VIP == nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	guest, err := gc.svc.SetVIP(id, *req.VIP)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// GetGuestBookings handles GET /api/guests/:id/bookings.
func (gc *GuestController) GetGuestBookings(c *gin.Context) {
	id, ok := gc.guestID(c)
	if !ok {
		return
	}
	bookings, err := gc.svc.History(id)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
