package handlers

import (
	"errors"
	"net/http"

	"mentorhub/services/admin"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes moderation and platform management endpoints.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: service}
}

// PendingMentors handles GET /api/admin/mentors/pending.
func (h *AdminHandler) PendingMentors(c *gin.Context) {
	cards, err := h.Service.ListPendingMentors()
	if err != nil {
		utils.GetLogger().Error("failed to list pending mentors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list pending mentors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cards})
}

type approvalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// SetMentorApproval handles PATCH /api/admin/mentors/:id/approval.
func (h *AdminHandler) SetMentorApproval(c *gin.Context) {
	mentorID := c.Param("id")

	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := h.Service.SetMentorApproval(mentorID, *req.Approved)
	if err != nil {
		if errors.Is(err, admin.ErrMentorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
			return
		}
		utils.GetLogger().Error("failed to set mentor approval", zap.String("mentorId", mentorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update approval", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.Service.ListUsers()
	if err != nil {
		utils.GetLogger().Error("failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list users", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": users})
}

type activationRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetUserActive handles PATCH /api/admin/users/:id/active.
func (h *AdminHandler) SetUserActive(c *gin.Context) {
	userID := c.Param("id")

	var req activationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Service.SetUserActive(userID, *req.Active); err != nil {
		if errors.Is(err, admin.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
			return
		}
		utils.GetLogger().Error("failed to update user activation", zap.String("userId", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	if err := h.Service.DeleteUser(userID); err != nil {
		if errors.Is(err, admin.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
			return
		}
		utils.GetLogger().Error("failed to delete user", zap.String("userId", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats()
	if err != nil {
		utils.GetLogger().Error("failed to compute platform stats", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
