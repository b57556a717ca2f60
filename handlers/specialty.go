package handlers

import (
	"errors"
	"net/http"

	"mentorhub/models"
	"mentorhub/services/specialty"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SpecialtyHandler exposes taxonomy endpoints, public and admin.
type SpecialtyHandler struct {
	Service specialty.SpecialtyService
}

// NewSpecialtyHandler creates a new SpecialtyHandler.
func NewSpecialtyHandler(service specialty.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{Service: service}
}

// List handles GET /api/specialties?category=&includeCounts=.
func (h *SpecialtyHandler) List(c *gin.Context) {
	includeCounts := c.Query("includeCounts") == "true"

	items, err := h.Service.List(c.Query("category"), includeCounts)
	if err != nil {
		utils.GetLogger().Error("failed to list specialties", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list specialties", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Categories handles GET /api/specialties/categories.
func (h *SpecialtyHandler) Categories(c *gin.Context) {
	categories, err := h.Service.Categories()
	if err != nil {
		utils.GetLogger().Error("failed to list specialty categories", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list categories", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Get handles GET /api/specialties/:id.
func (h *SpecialtyHandler) Get(c *gin.Context) {
	id := c.Param("id")

	item, err := h.Service.Get(id)
	if err != nil {
		if errors.Is(err, specialty.ErrSpecialtyNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
			return
		}
		utils.GetLogger().Error("failed to fetch specialty", zap.String("specialtyId", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch specialty", err.Error())
		return
	}
	c.JSON(http.StatusOK, item)
}

// AdminList handles GET /api/admin/specialties.
func (h *SpecialtyHandler) AdminList(c *gin.Context) {
	page, limit := parsePageParams(c)

	query := specialty.AdminListQuery{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}
	if raw := c.Query("isActive"); raw != "" {
		active := raw == "true"
		query.IsActive = &active
	}

	listing, err := h.Service.AdminList(query)
	if err != nil {
		utils.GetLogger().Error("failed to list specialties for admin", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list specialties", err.Error())
		return
	}
	c.JSON(http.StatusOK, listing)
}

// Create handles POST /api/admin/specialties.
func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req models.CreateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	created, err := h.Service.Create(req)
	if err != nil {
		if errors.Is(err, specialty.ErrNameTaken) {
			utils.JSONError(c, http.StatusConflict, "Creation failed", err.Error())
			return
		}
		utils.GetLogger().Error("failed to create specialty", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create specialty", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PATCH /api/admin/specialties/:id.
func (h *SpecialtyHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := h.Service.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, specialty.ErrSpecialtyNotFound):
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		case errors.Is(err, specialty.ErrNameTaken):
			utils.JSONError(c, http.StatusConflict, "Update failed", err.Error())
		default:
			utils.GetLogger().Error("failed to update specialty", zap.String("specialtyId", id), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update specialty", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/admin/specialties/:id.
func (h *SpecialtyHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	deactivated, err := h.Service.Delete(id)
	if err != nil {
		if errors.Is(err, specialty.ErrSpecialtyNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
			return
		}
		utils.GetLogger().Error("failed to delete specialty", zap.String("specialtyId", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete specialty", err.Error())
		return
	}

	if deactivated {
		c.JSON(http.StatusOK, gin.H{"message": "Specialty is still in use and was deactivated instead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Specialty deleted"})
}
