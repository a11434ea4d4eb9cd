package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolioapi/internal/database"
)

// ExperienceHandler serves CRUD for work history entries.
type ExperienceHandler struct {
	db *gorm.DB
}

func NewExperienceHandler(db *gorm.DB) *ExperienceHandler {
	return &ExperienceHandler{db: db}
}

type createExperienceRequest struct {
	Company     *database.BilingualText `json:"company" binding:"required"`
	Role        *database.BilingualText `json:"role" binding:"required"`
	Description *database.BilingualText `json:"description" binding:"required"`
	Location    *database.BilingualText `json:"location"`
	StartDate   *time.Time              `json:"startDate" binding:"required"`
	EndDate     *time.Time              `json:"endDate"`
	IsCurrent   *bool                   `json:"isCurrent"`
	Order       *int                    `json:"order" binding:"omitempty,gte=0"`
}

type updateExperienceRequest struct {
	Company     *database.BilingualText `json:"company"`
	Role        *database.BilingualText `json:"role"`
	Description *database.BilingualText `json:"description"`
	Location    *database.BilingualText `json:"location"`
	StartDate   *time.Time              `json:"startDate"`
	EndDate     *time.Time              `json:"endDate"`
	IsCurrent   *bool                   `json:"isCurrent"`
	Order       *int                    `json:"order" binding:"omitempty,gte=0"`
}

// List returns all experiences in display order.
func (h *ExperienceHandler) List(c *gin.Context) {
	var experiences []database.Experience
	if err := h.db.WithContext(c.Request.Context()).
		Order("display_order ASC").
		Find(&experiences).Error; err != nil {
		Internal(c, "failed to list experiences")
		return
	}
	c.JSON(http.StatusOK, experiences)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req createExperienceRequest
	if !bindJSON(c, &req) {
		return
	}

	experience := database.Experience{
		Company:     *req.Company,
		Role:        *req.Role,
		Description: *req.Description,
		StartDate:   *req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.Location != nil {
		experience.Location = *req.Location
	}
	if req.IsCurrent != nil {
		experience.IsCurrent = *req.IsCurrent
	}
	if req.Order != nil {
		experience.Order = *req.Order
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&experience).Error; err != nil {
		Internal(c, "failed to create experience")
		return
	}
	c.JSON(http.StatusCreated, experience)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateExperienceRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var experience database.Experience
	if err := h.db.WithContext(ctx).First(&experience, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "experience not found")
			return
		}
		Internal(c, "failed to load experience")
		return
	}

	if req.Company != nil {
		experience.Company = *req.Company
	}
	if req.Role != nil {
		experience.Role = *req.Role
	}
	if req.Description != nil {
		experience.Description = *req.Description
	}
	if req.Location != nil {
		experience.Location = *req.Location
	}
	if req.StartDate != nil {
		experience.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		experience.EndDate = req.EndDate
	}
	if req.IsCurrent != nil {
		experience.IsCurrent = *req.IsCurrent
	}
	if req.Order != nil {
		experience.Order = *req.Order
	}

	if err := h.db.WithContext(ctx).Save(&experience).Error; err != nil {
		Internal(c, "failed to update experience")
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&database.Experience{}, id)
	if result.Error != nil {
		Internal(c, "failed to delete experience")
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "experience not found")
		return
	}
	c.Status(http.StatusNoContent)
}
