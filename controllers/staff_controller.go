package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-desk/services"
	"hotel-desk/utils"
)

type StaffController struct {
	svc *services.StaffService
}

func NewStaffController(svc *services.StaffService) *StaffController {
	return &StaffController{svc: svc}
}

// GetStaff handles GET /api/staff.
func (sc *StaffController) GetStaff(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, sc.svc.List())
}

type addStaffRequest struct {
	Name       string  `json:"name" binding:"required"`
	Position   string  `json:"position" binding:"required"`
	Department string  `json:"department" binding:"required"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Salary     float64 `json:"salary" binding:"min=0"`
}

// CreateStaff handles POST /api/staff.
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req addStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	member := sc.svc.Add(req.Name, req.Position, req.Department, req.Phone, req.Email, req.Salary)
	utils.JSONSuccess(c, http.StatusCreated, member)
}

// UpdateStaff handles PATCH /api/staff/:id.
func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff id")
		return
	}
	var upd services.StaffUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	member, err := sc.svc.Update(id, upd)
	if err != nil {
		utils.JSONError(c, statusFor(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, member)
}
