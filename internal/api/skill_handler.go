package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolioapi/internal/database"
)

// SkillHandler serves CRUD for skill entries.
type SkillHandler struct {
	db *gorm.DB
}

func NewSkillHandler(db *gorm.DB) *SkillHandler {
	return &SkillHandler{db: db}
}

type createSkillRequest struct {
	Name     *database.BilingualText `json:"name" binding:"required"`
	Category *database.BilingualText `json:"category"`
	Order    *int                    `json:"order" binding:"omitempty,gte=0"`
}

type updateSkillRequest struct {
	Name     *database.BilingualText `json:"name"`
	Category *database.BilingualText `json:"category"`
	Order    *int                    `json:"order" binding:"omitempty,gte=0"`
}

// List returns all skills in display order.
func (h *SkillHandler) List(c *gin.Context) {
	var skills []database.Skill
	if err := h.db.WithContext(c.Request.Context()).
		Order("display_order ASC").
		Find(&skills).Error; err != nil {
		Internal(c, "failed to list skills")
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req createSkillRequest
	if !bindJSON(c, &req) {
		return
	}

	skill := database.Skill{Name: *req.Name}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Order != nil {
		skill.Order = *req.Order
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&skill).Error; err != nil {
		Internal(c, "failed to create skill")
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateSkillRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var skill database.Skill
	if err := h.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "skill not found")
			return
		}
		Internal(c, "failed to load skill")
		return
	}

	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Order != nil {
		skill.Order = *req.Order
	}

	if err := h.db.WithContext(ctx).Save(&skill).Error; err != nil {
		Internal(c, "failed to update skill")
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&database.Skill{}, id)
	if result.Error != nil {
		Internal(c, "failed to delete skill")
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "skill not found")
		return
	}
	c.Status(http.StatusNoContent)
}
