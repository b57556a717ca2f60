package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mentorhub/middleware"
	"mentorhub/models"
	"mentorhub/services/mentor"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MentorHandler exposes marketplace and mentor profile endpoints.
type MentorHandler struct {
	Service mentor.MentorService
}

// NewMentorHandler creates a new MentorHandler.
func NewMentorHandler(service mentor.MentorService) *MentorHandler {
	return &MentorHandler{Service: service}
}

func parsePageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	return page, limit
}

// List handles GET /api/mentors.
func (h *MentorHandler) List(c *gin.Context) {
	page, limit := parsePageParams(c)
	query := mentor.ListQuery{
		SpecialtyID: c.Query("specialty"),
		SortBy:      c.Query("sortBy"),
		SortOrder:   c.Query("sortOrder"),
		Page:        page,
		Limit:       limit,
	}

	listing, err := h.Service.List(query)
	if err != nil {
		utils.GetLogger().Error("failed to list mentors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list mentors", err.Error())
		return
	}
	c.JSON(http.StatusOK, listing)
}

// Featured handles GET /api/mentors/featured.
func (h *MentorHandler) Featured(c *gin.Context) {
	cards, err := h.Service.Featured()
	if err != nil {
		utils.GetLogger().Error("failed to list featured mentors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list featured mentors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cards})
}

// Detail handles GET /api/mentors/:id.
func (h *MentorHandler) Detail(c *gin.Context) {
	mentorID := c.Param("id")

	detail, err := h.Service.GetDetail(mentorID)
	if err != nil {
		if errors.Is(err, mentor.ErrMentorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
			return
		}
		utils.GetLogger().Error("failed to fetch mentor detail", zap.String("mentorId", mentorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch mentor", err.Error())
		return
	}
	c.JSON(http.StatusOK, detail)
}

// OwnProfile handles GET /api/mentors/me.
func (h *MentorHandler) OwnProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	card, err := h.Service.GetOwnProfile(userID)
	if err != nil {
		if errors.Is(err, mentor.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
			return
		}
		utils.GetLogger().Error("failed to fetch own mentor profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, card)
}

// UpdateOwnProfile handles PUT /api/mentors/me.
func (h *MentorHandler) UpdateOwnProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var req models.MentorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := h.Service.UpdateOwnProfile(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, mentor.ErrProfileNotFound):
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		case errors.Is(err, mentor.ErrUnknownSpecialty):
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		default:
			utils.GetLogger().Error("failed to update mentor profile", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update profile", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}
