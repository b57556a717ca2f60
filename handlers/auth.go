package handlers

import (
	"errors"
	"net/http"

	"mentorhub/middleware"
	"mentorhub/models"
	"mentorhub/services/auth"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration and authentication endpoints.
type AuthHandler struct {
	Service auth.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// RegisterStudent handles POST /api/auth/register/student.
func (h *AuthHandler) RegisterStudent(c *gin.Context) {
	var req models.StudentRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.RegisterStudent(req)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "Registration failed", err.Error())
			return
		}
		utils.GetLogger().Error("student registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegisterMentor handles POST /api/auth/register/mentor.
func (h *AuthHandler) RegisterMentor(c *gin.Context) {
	var req models.MentorRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.RegisterMentor(req)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "Registration failed", err.Error())
			return
		}
		utils.GetLogger().Error("mentor registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, "Login failed", err.Error())
		case errors.Is(err, auth.ErrAccountDisabled):
			utils.JSONError(c, http.StatusForbidden, "Login failed", err.Error())
		default:
			utils.GetLogger().Error("login failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logout is a
// client-side discard; the endpoint exists so clients have a uniform call.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	resp, err := h.Service.GetMe(userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
			return
		}
		utils.GetLogger().Error("failed to fetch current user", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
