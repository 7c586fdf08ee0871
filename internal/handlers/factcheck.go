package handlers

import (
	"errors"
	"net/http"

	"clarifai/internal/classifier"
	"clarifai/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FactCheckHandler handles HTTP requests for single-claim verdicts
type FactCheckHandler struct {
	verdicts *services.VerdictService
	db       *gorm.DB
}

// NewFactCheckHandler creates a new fact check handler
func NewFactCheckHandler(db *gorm.DB, verdicts *services.VerdictService) *FactCheckHandler {
	return &FactCheckHandler{
		verdicts: verdicts,
		db:       db,
	}
}

type factCheckRequest struct {
	Content string `json:"content"`
}

// CheckFact handles POST /api/fact-check
func (h *FactCheckHandler) CheckFact(c *gin.Context) {
	var req factCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Content is required",
		})
		return
	}

	resolution, err := h.verdicts.Resolve(c.Request.Context(), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyContent):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Content is required",
			})
		case errors.Is(err, classifier.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Classifier is unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to resolve verdict",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content": resolution.Content,
		"verdict": resolution.Verdict,
		"source":  resolution.Source,
	})
}

// HealthCheck handles GET /health
func (h *FactCheckHandler) HealthCheck(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
