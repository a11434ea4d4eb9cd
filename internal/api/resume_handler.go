package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolioapi/internal/database"
)

// ResumeHandler serves CRUD for resume records and enforces that at most one
// record is marked active at any time. Activating a record deactivates all
// others inside the same transaction, so a failure rolls the whole swap back.
// The brief all-inactive state between the two statements is accepted.
type ResumeHandler struct {
	db *gorm.DB
}

func NewResumeHandler(db *gorm.DB) *ResumeHandler {
	return &ResumeHandler{db: db}
}

type createResumeRequest struct {
	FileURLEn string `json:"fileUrlEn" binding:"required,url"`
	FileURLFr string `json:"fileUrlFr" binding:"required,url"`
	IsActive  *bool  `json:"isActive"`
}

type updateResumeRequest struct {
	FileURLEn *string `json:"fileUrlEn" binding:"omitempty,url"`
	FileURLFr *string `json:"fileUrlFr" binding:"omitempty,url"`
	IsActive  *bool   `json:"isActive"`
}

// List returns every resume record, newest first.
func (h *ResumeHandler) List(c *gin.Context) {
	var resumes []database.Resume
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&resumes).Error; err != nil {
		Internal(c, "failed to list resumes")
		return
	}
	c.JSON(http.StatusOK, resumes)
}

// GetActive returns the currently published resume, or null when none is
// active. Ordering by last update keeps the answer unambiguous even if the
// store ever held more than one active row.
func (h *ResumeHandler) GetActive(c *gin.Context) {
	var resume database.Resume
	err := h.db.WithContext(c.Request.Context()).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&resume).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		Internal(c, "failed to load active resume")
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var req createResumeRequest
	if !bindJSON(c, &req) {
		return
	}

	resume := database.Resume{
		FileURLEn: req.FileURLEn,
		FileURLFr: req.FileURLFr,
	}
	if req.IsActive != nil {
		resume.IsActive = *req.IsActive
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if resume.IsActive {
			if err := tx.Model(&database.Resume{}).
				Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&resume).Error
	})
	if err != nil {
		Internal(c, "failed to create resume")
		return
	}
	c.JSON(http.StatusCreated, resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateResumeRequest
	if !bindJSON(c, &req) {
		return
	}

	var resume database.Resume
	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&resume, id).Error; err != nil {
			return err
		}

		if req.IsActive != nil && *req.IsActive {
			if err := tx.Model(&database.Resume{}).
				Where("is_active = ? AND id <> ?", true, resume.ID).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		if req.FileURLEn != nil {
			resume.FileURLEn = *req.FileURLEn
		}
		if req.FileURLFr != nil {
			resume.FileURLFr = *req.FileURLFr
		}
		if req.IsActive != nil {
			resume.IsActive = *req.IsActive
		}

		return tx.Save(&resume).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "resume not found")
			return
		}
		Internal(c, "failed to update resume")
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&database.Resume{}, id)
	if result.Error != nil {
		Internal(c, "failed to delete resume")
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "resume not found")
		return
	}
	c.Status(http.StatusNoContent)
}
