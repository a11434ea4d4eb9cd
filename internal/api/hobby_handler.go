package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolioapi/internal/database"
)

// HobbyHandler serves CRUD for hobby entries.
type HobbyHandler struct {
	db *gorm.DB
}

func NewHobbyHandler(db *gorm.DB) *HobbyHandler {
	return &HobbyHandler{db: db}
}

type createHobbyRequest struct {
	Name        *database.BilingualText `json:"name" binding:"required"`
	Description *database.BilingualText `json:"description"`
	Order       *int                    `json:"order" binding:"omitempty,gte=0"`
}

type updateHobbyRequest struct {
	Name        *database.BilingualText `json:"name"`
	Description *database.BilingualText `json:"description"`
	Order       *int                    `json:"order" binding:"omitempty,gte=0"`
}

// List returns all hobbies in display order.
func (h *HobbyHandler) List(c *gin.Context) {
	var hobbies []database.Hobby
	if err := h.db.WithContext(c.Request.Context()).
		Order("display_order ASC").
		Find(&hobbies).Error; err != nil {
		Internal(c, "failed to list hobbies")
		return
	}
	c.JSON(http.StatusOK, hobbies)
}

func (h *HobbyHandler) Create(c *gin.Context) {
	var req createHobbyRequest
	if !bindJSON(c, &req) {
		return
	}

	hobby := database.Hobby{Name: *req.Name}
	if req.Description != nil {
		hobby.Description = *req.Description
	}
	if req.Order != nil {
		hobby.Order = *req.Order
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&hobby).Error; err != nil {
		Internal(c, "failed to create hobby")
		return
	}
	c.JSON(http.StatusCreated, hobby)
}

func (h *HobbyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateHobbyRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var hobby database.Hobby
	if err := h.db.WithContext(ctx).First(&hobby, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "hobby not found")
			return
		}
		Internal(c, "failed to load hobby")
		return
	}

	if req.Name != nil {
		hobby.Name = *req.Name
	}
	if req.Description != nil {
		hobby.Description = *req.Description
	}
	if req.Order != nil {
		hobby.Order = *req.Order
	}

	if err := h.db.WithContext(ctx).Save(&hobby).Error; err != nil {
		Internal(c, "failed to update hobby")
		return
	}
	c.JSON(http.StatusOK, hobby)
}

func (h *HobbyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&database.Hobby{}, id)
	if result.Error != nil {
		Internal(c, "failed to delete hobby")
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "hobby not found")
		return
	}
	c.Status(http.StatusNoContent)
}
