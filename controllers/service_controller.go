package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-desk/services"
	"hotel-desk/utils"
)

type ServiceController struct {
	catalog *services.CatalogService
	engine  *services.ReservationService
}

func NewServiceController(catalog *services.CatalogService, engine *services.ReservationService) *ServiceController {
	return &ServiceController{catalog: catalog, engine: engine}
}

// GetServices handles GET /api/services; ?category= filters the catalog.
func (sc *ServiceController) GetServices(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, sc.catalog.List(c.Query("category")))
}

type orderRequest struct {
	GuestID int64 `json:"guest_id" binding:"required"`
}

// OrderService handles POST /api/services/:id/orders, charging the service
// price onto the guest's active booking.
func (sc *ServiceController) OrderService(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service id")
		return
	}
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	booking, err := sc.engine.AddServiceCharge(req.GuestID, serviceID)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONMutation(c, http.StatusOK, booking, sc.engine.SaveError() == nil)
}
