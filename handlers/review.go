package handlers

import (
	"errors"
	"net/http"

	"mentorhub/services/review"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes review listing endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: service}
}

// ListByMentor handles GET /api/mentors/:id/reviews.
func (h *ReviewHandler) ListByMentor(c *gin.Context) {
	mentorID := c.Param("id")

	page, limit := parsePageParams(c)
	query := review.ListQuery{
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      page,
		Limit:     limit,
	}

	listing, err := h.Service.ListMentorReviews(mentorID, query)
	if err != nil {
		if errors.Is(err, review.ErrMentorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
			return
		}
		utils.GetLogger().Error("failed to list reviews", zap.String("mentorId", mentorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, listing)
}
