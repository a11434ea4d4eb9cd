package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolioapi/internal/database"
)

// ContactInfoHandler serves CRUD for the contact details block. The public
// page treats it as a singleton and reads the most recently updated record.
type ContactInfoHandler struct {
	db *gorm.DB
}

func NewContactInfoHandler(db *gorm.DB) *ContactInfoHandler {
	return &ContactInfoHandler{db: db}
}

type createContactInfoRequest struct {
	Email    string                  `json:"email" binding:"required,email"`
	Phone    *string                 `json:"phone" binding:"omitempty,min=5"`
	Location *database.BilingualText `json:"location"`
	Website  *string                 `json:"website" binding:"omitempty,url"`
	Socials  map[string]string       `json:"socials"`
}

type updateContactInfoRequest struct {
	Email    *string                 `json:"email" binding:"omitempty,email"`
	Phone    *string                 `json:"phone" binding:"omitempty,min=5"`
	Location *database.BilingualText `json:"location"`
	Website  *string                 `json:"website" binding:"omitempty,url"`
	Socials  map[string]string       `json:"socials"`
}

func socialsMap(socials map[string]string) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for platform, link := range socials {
		out[platform] = link
	}
	return out
}

// List returns every contact-info record, most recently updated first.
func (h *ContactInfoHandler) List(c *gin.Context) {
	var records []database.ContactInfo
	if err := h.db.WithContext(c.Request.Context()).
		Order("updated_at DESC").
		Find(&records).Error; err != nil {
		Internal(c, "failed to list contact info")
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetCurrent returns the most recently updated record, or null when none
// exists.
func (h *ContactInfoHandler) GetCurrent(c *gin.Context) {
	var record database.ContactInfo
	err := h.db.WithContext(c.Request.Context()).
		Order("updated_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		Internal(c, "failed to load contact info")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ContactInfoHandler) Create(c *gin.Context) {
	var req createContactInfoRequest
	if !bindJSON(c, &req) {
		return
	}

	record := database.ContactInfo{
		Email:   req.Email,
		Socials: socialsMap(req.Socials),
	}
	if req.Phone != nil {
		record.Phone = *req.Phone
	}
	if req.Location != nil {
		record.Location = *req.Location
	}
	if req.Website != nil {
		record.Website = *req.Website
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&record).Error; err != nil {
		Internal(c, "failed to create contact info")
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ContactInfoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateContactInfoRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var record database.ContactInfo
	if err := h.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "contact info not found")
			return
		}
		Internal(c, "failed to load contact info")
		return
	}

	if req.Email != nil {
		record.Email = *req.Email
	}
	if req.Phone != nil {
		record.Phone = *req.Phone
	}
	if req.Location != nil {
		record.Location = *req.Location
	}
	if req.Website != nil {
		record.Website = *req.Website
	}
	if req.Socials != nil {
		record.Socials = socialsMap(req.Socials)
	}

	if err := h.db.WithContext(ctx).Save(&record).Error; err != nil {
		Internal(c, "failed to update contact info")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ContactInfoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&database.ContactInfo{}, id)
	if result.Error != nil {
		Internal(c, "failed to delete contact info")
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "contact info not found")
		return
	}
	c.Status(http.StatusNoContent)
}
