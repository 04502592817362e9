package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-desk/services"
	"hotel-desk/utils"
)

type ReportController struct {
	svc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{svc: svc}
}

func (rc *ReportController) Occupancy(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.svc.Occupancy())
}

func (rc *ReportController) Revenue(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.svc.Revenue())
}

func (rc *ReportController) TodaySummary(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.svc.TodaySummary())
}
