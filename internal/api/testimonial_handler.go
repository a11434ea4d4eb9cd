package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolioapi/internal/database"
)

// TestimonialHandler handles visitor-submitted testimonials and their
// moderation. Submissions enter as PENDING; only APPROVED records appear on
// the public list. Approve and reject may be re-applied at any time.
type TestimonialHandler struct {
	db *gorm.DB
}

func NewTestimonialHandler(db *gorm.DB) *TestimonialHandler {
	return &TestimonialHandler{db: db}
}

type createTestimonialRequest struct {
	Name    string  `json:"name" binding:"required"`
	Role    *string `json:"role" binding:"omitempty,min=1"`
	Company *string `json:"company" binding:"omitempty,min=1"`
	Content string  `json:"content" binding:"required"`
}

// ListApproved returns the publicly visible testimonials, newest first.
func (h *TestimonialHandler) ListApproved(c *gin.Context) {
	var testimonials []database.Testimonial
	if err := h.db.WithContext(c.Request.Context()).
		Where("status = ?", database.TestimonialApproved).
		Order("created_at DESC").
		Find(&testimonials).Error; err != nil {
		Internal(c, "failed to list testimonials")
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// ListAll returns every testimonial regardless of status, newest first.
func (h *TestimonialHandler) ListAll(c *gin.Context) {
	var testimonials []database.Testimonial
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&testimonials).Error; err != nil {
		Internal(c, "failed to list testimonials")
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// Submit stores a public testimonial submission in PENDING state.
func (h *TestimonialHandler) Submit(c *gin.Context) {
	var req createTestimonialRequest
	if !bindJSON(c, &req) {
		return
	}

	testimonial := database.Testimonial{
		Name:    req.Name,
		Content: req.Content,
		Status:  database.TestimonialPending,
	}
	if req.Role != nil {
		testimonial.Role = *req.Role
	}
	if req.Company != nil {
		testimonial.Company = *req.Company
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&testimonial).Error; err != nil {
		Internal(c, "failed to create testimonial")
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

// Approve marks a testimonial APPROVED. Re-approving is a no-op success.
func (h *TestimonialHandler) Approve(c *gin.Context) {
	h.setStatus(c, database.TestimonialApproved)
}

// Reject marks a testimonial REJECTED. Re-rejecting is a no-op success.
func (h *TestimonialHandler) Reject(c *gin.Context) {
	h.setStatus(c, database.TestimonialRejected)
}

func (h *TestimonialHandler) setStatus(c *gin.Context, status database.TestimonialStatus) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var testimonial database.Testimonial
	if err := h.db.WithContext(ctx).First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "testimonial not found")
			return
		}
		Internal(c, "failed to load testimonial")
		return
	}

	testimonial.Status = status
	if err := h.db.WithContext(ctx).Save(&testimonial).Error; err != nil {
		Internal(c, "failed to update testimonial")
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&database.Testimonial{}, id)
	if result.Error != nil {
		Internal(c, "failed to delete testimonial")
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "testimonial not found")
		return
	}
	c.Status(http.StatusNoContent)
}
