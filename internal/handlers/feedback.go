package handlers

import (
	"net/http"

	"clarifai/internal/auth"
	"clarifai/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackHandler handles HTTP requests for result feedback
type FeedbackHandler struct {
	db *gorm.DB
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(db *gorm.DB) *FeedbackHandler {
	return &FeedbackHandler{db: db}
}

type feedbackRequest struct {
	Accuracy   int    `json:"accuracy"`
	Experience int    `json:"experience"`
	Comments   string `json:"comments"`
}

// Submit handles POST /api/feedback (authenticated)
func (h *FeedbackHandler) Submit(c *gin.Context) {
	userIDStr := c.GetString(auth.ContextUserKey)
	if userIDStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Accuracy < 1 || req.Accuracy > 5 || req.Experience < 1 || req.Experience > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Accuracy and experience must be between 1 and 5"})
		return
	}

	feedback := models.Feedback{
		ID:         uuid.New(),
		UserID:     userID,
		Accuracy:   req.Accuracy,
		Experience: req.Experience,
		Comments:   req.Comments,
	}
	if err := h.db.Create(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      feedback.ID,
		"message": "Thank you for your feedback!",
	})
}
