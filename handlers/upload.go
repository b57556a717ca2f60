package handlers

import (
	"net/http"
	"strings"
	"time"

	userRepo "mentorhub/database/repository/user"
	"mentorhub/middleware"
	"mentorhub/services/storage"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const maxAvatarBytes = 5 << 20 // 5 MB

// UploadHandler exposes image upload endpoints backed by the storage service.
type UploadHandler struct {
	Storage storage.StorageService
	Users   userRepo.UserRepository
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store storage.StorageService, users userRepo.UserRepository) *UploadHandler {
	return &UploadHandler{Storage: store, Users: users}
}

// UploadAvatar handles POST /api/users/me/avatar. Accepts a multipart image up
// to 5 MB, stores it, and saves the resulting URL on the account.
func (h *UploadHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "An 'avatar' file field is required")
		return
	}
	if fileHeader.Size > maxAvatarBytes {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "Avatar must be 5 MB or smaller")
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "Avatar must be an image")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "Unable to read uploaded file")
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadImage(c.Request.Context(), file, "avatars")
	if err != nil {
		utils.GetLogger().Error("avatar upload failed", zap.String("userId", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", "Could not store the avatar, try again later")
		return
	}

	fields := bson.M{"avatar": url, "updatedAt": time.Now()}
	if err := h.Users.UpdateFields(userID, fields); err != nil {
		utils.GetLogger().Error("failed to save avatar url", zap.String("userId", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", "Could not save the avatar, try again later")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar": url})
}
