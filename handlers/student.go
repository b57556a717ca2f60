package handlers

import (
	"errors"
	"net/http"

	"mentorhub/middleware"
	"mentorhub/models"
	"mentorhub/services/student"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StudentHandler exposes student profile endpoints.
type StudentHandler struct {
	Service student.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(service student.StudentService) *StudentHandler {
	return &StudentHandler{Service: service}
}

// Profile handles GET /api/students/me.
func (h *StudentHandler) Profile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	profile, err := h.Service.GetProfile(userID)
	if err != nil {
		if errors.Is(err, student.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
			return
		}
		utils.GetLogger().Error("failed to fetch student profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PublicProfile handles GET /api/students/:id.
func (h *StudentHandler) PublicProfile(c *gin.Context) {
	studentID := c.Param("id")

	profile, err := h.Service.GetStudent(studentID)
	if err != nil {
		if errors.Is(err, student.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
			return
		}
		utils.GetLogger().Error("failed to fetch student", zap.String("studentId", studentID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch student", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/students/me.
func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var req models.StudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	profile, err := h.Service.UpdateProfile(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, student.ErrProfileNotFound):
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		case errors.Is(err, student.ErrUnknownInterest):
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		default:
			utils.GetLogger().Error("failed to update student profile", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update profile", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}
