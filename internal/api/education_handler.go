package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolioapi/internal/database"
)

// EducationHandler serves CRUD for education entries.
type EducationHandler struct {
	db *gorm.DB
}

func NewEducationHandler(db *gorm.DB) *EducationHandler {
	return &EducationHandler{db: db}
}

type createEducationRequest struct {
	School      *database.BilingualText `json:"school" binding:"required"`
	Degree      *database.BilingualText `json:"degree" binding:"required"`
	Field       *database.BilingualText `json:"field"`
	Description *database.BilingualText `json:"description"`
	StartDate   *time.Time              `json:"startDate" binding:"required"`
	EndDate     *time.Time              `json:"endDate"`
	Order       *int                    `json:"order" binding:"omitempty,gte=0"`
}

type updateEducationRequest struct {
	School      *database.BilingualText `json:"school"`
	Degree      *database.BilingualText `json:"degree"`
	Field       *database.BilingualText `json:"field"`
	Description *database.BilingualText `json:"description"`
	StartDate   *time.Time              `json:"startDate"`
	EndDate     *time.Time              `json:"endDate"`
	Order       *int                    `json:"order" binding:"omitempty,gte=0"`
}

// List returns all education entries in display order.
func (h *EducationHandler) List(c *gin.Context) {
	var entries []database.Education
	if err := h.db.WithContext(c.Request.Context()).
		Order("display_order ASC").
		Find(&entries).Error; err != nil {
		Internal(c, "failed to list education")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req createEducationRequest
	if !bindJSON(c, &req) {
		return
	}

	entry := database.Education{
		School:    *req.School,
		Degree:    *req.Degree,
		StartDate: *req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.Field != nil {
		entry.Field = *req.Field
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Order != nil {
		entry.Order = *req.Order
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&entry).Error; err != nil {
		Internal(c, "failed to create education")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateEducationRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var entry database.Education
	if err := h.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "education not found")
			return
		}
		Internal(c, "failed to load education")
		return
	}

	if req.School != nil {
		entry.School = *req.School
	}
	if req.Degree != nil {
		entry.Degree = *req.Degree
	}
	if req.Field != nil {
		entry.Field = *req.Field
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.StartDate != nil {
		entry.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		entry.EndDate = req.EndDate
	}
	if req.Order != nil {
		entry.Order = *req.Order
	}

	if err := h.db.WithContext(ctx).Save(&entry).Error; err != nil {
		Internal(c, "failed to update education")
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&database.Education{}, id)
	if result.Error != nil {
		Internal(c, "failed to delete education")
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "education not found")
		return
	}
	c.Status(http.StatusNoContent)
}
