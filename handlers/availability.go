package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mentorhub/middleware"
	"mentorhub/models"
	"mentorhub/services/availability"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes weekly availability endpoints.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(service availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: service}
}

// Set handles PUT /api/mentors/:id/availability. The submitted batch replaces
// the mentor's entire weekly snapshot; any invalid slot rejects the whole batch.
func (h *AvailabilityHandler) Set(c *gin.Context) {
	mentorID := c.Param("id")
	userID := c.GetString(middleware.ContextUserIDKey)

	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	slots, err := h.Service.SetAvailability(c.Request.Context(), mentorID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrMentorNotFound):
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		case errors.Is(err, availability.ErrNotOwner):
			utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())
		default:
			if verr, ok := availability.AsValidationError(err); ok {
				utils.JSONError(c, http.StatusBadRequest, "Invalid availability", verr.Detail)
				return
			}
			utils.GetLogger().Error("failed to set availability", zap.String("mentorId", mentorID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to set availability", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// Get handles GET /api/mentors/:id/availability.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	mentorID := c.Param("id")

	slots, err := h.Service.GetAvailability(c.Request.Context(), mentorID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch availability", zap.String("mentorId", mentorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// Preview handles GET /api/mentors/:id/availability/preview?weeks=N. A missing
// or unparsable weeks value previews a single week.
func (h *AvailabilityHandler) Preview(c *gin.Context) {
	mentorID := c.Param("id")

	weeks, err := strconv.Atoi(c.DefaultQuery("weeks", "1"))
	if err != nil || weeks < 1 {
		weeks = 1
	}

	slots, err := h.Service.PreviewAvailability(c.Request.Context(), mentorID, weeks)
	if err != nil {
		utils.GetLogger().Error("failed to preview availability", zap.String("mentorId", mentorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to preview availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeks": weeks, "slots": slots})
}
