package handlers

import (
	"errors"
	"net/http"

	"clarifai/internal/factcheck"
	"clarifai/internal/sentiment"
	"clarifai/internal/services"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for multi-source aggregate reports
type ReportHandler struct {
	reports *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reports: reports,
	}
}

type reportResponse struct {
	factcheck.Report
	Sentiment sentiment.Distribution `json:"sentiment"`
}

// GetReport handles GET /api/report?query=...
func (h *ReportHandler) GetReport(c *gin.Context) {
	query := c.Query("query")

	report, err := h.reports.Report(c.Request.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyContent):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Query is required",
			})
		case errors.Is(err, factcheck.ErrUpstream):
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "Fact check service is unavailable",
				"details": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to build report",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, reportResponse{
		Report:    report,
		Sentiment: sentiment.Analyze(query),
	})
}
