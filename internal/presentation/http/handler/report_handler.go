package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajtraders/cashmemo-api/internal/application/service"
	"github.com/rajtraders/cashmemo-api/internal/presentation/http/dto/response"
)

// ReportHandler handles ledger aggregation reads
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Daily handles the daily sales summary
func (h *ReportHandler) Daily(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	response.OK(c, "Daily report retrieved successfully", h.reportService.Daily(date))
}
