package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-desk/models"
	"hotel-desk/services"
	"hotel-desk/utils"
)

type RoomController struct {
	svc    *services.RoomService
	engine *services.ReservationService
}

func NewRoomController(svc *services.RoomService, engine *services.ReservationService) *RoomController {
	return &RoomController{svc: svc, engine: engine}
}

// GetRooms handles GET /api/rooms.
func (rc *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.svc.List())
}

// GetRoom handles GET /api/rooms/:number.
func (rc *RoomController) GetRoom(c *gin.Context) {
	room, err := rc.svc.Get(c.Param("number"))
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// SearchRooms handles GET /api/rooms/search over AVAILABLE rooms only.
func (rc *RoomController) SearchRooms(c *gin.Context) {
	var f services.RoomFilter
	f.Type = models.RoomType(c.Query("type"))
	f.Amenity = c.Query("amenity")
	if v := c.Query("min_price"); v != "" {
		f.MinPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("max_price"); v != "" {
		f.MaxPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("capacity"); v != "" {
		f.Capacity, _ = strconv.Atoi(v)
	}
	utils.JSONSuccess(c, http.StatusOK, rc.svc.SearchAvailable(f))
}

type createRoomRequest struct {
	RoomNumber string          `json:"room_number" binding:"required"`
	Type       models.RoomType `json:"room_type" binding:"required"`
	Price      float64         `json:"price" binding:"min=0"`
	Capacity   int             `json:"capacity" binding:"min=1"`
	Amenities  []string        `json:"amenities"`
}

// CreateRoom handles POST /api/rooms.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	room, err := rc.svc.Add(req.RoomNumber, req.Type, req.Price, req.Capacity, req.Amenities)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom handles PATCH /api/rooms/:number.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	var upd services.RoomUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	room, err := rc.svc.Update(c.Param("number"), upd)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

type maintenanceRequest struct {
	On *bool `json:"on" binding:"required"`
}

// SetMaintenance handles POST /api/rooms/:number/maintenance.
func (rc *RoomController) SetMaintenance(c *gin.Context) {
	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.On == nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	room, err := rc.engine.SetMaintenance(c.Param("number"), *req.On)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONMutation(c, http.StatusOK, room, rc.engine.SaveError() == nil)
}
