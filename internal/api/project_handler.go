package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolioapi/internal/database"
)

// ProjectHandler serves CRUD for portfolio projects.
type ProjectHandler struct {
	db *gorm.DB
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{db: db}
}

type createProjectRequest struct {
	Title       *database.BilingualText `json:"title" binding:"required"`
	Description *database.BilingualText `json:"description" binding:"required"`
	URL         *string                 `json:"url" binding:"omitempty,url"`
	RepoURL     *string                 `json:"repoUrl" binding:"omitempty,url"`
	ImageURL    *string                 `json:"imageUrl" binding:"omitempty,url"`
	TechStack   []string                `json:"techStack" binding:"omitempty,dive,min=1"`
	Featured    *bool                   `json:"featured"`
	Order       *int                    `json:"order" binding:"omitempty,gte=0"`
}

type updateProjectRequest struct {
	Title       *database.BilingualText `json:"title"`
	Description *database.BilingualText `json:"description"`
	URL         *string                 `json:"url" binding:"omitempty,url"`
	RepoURL     *string                 `json:"repoUrl" binding:"omitempty,url"`
	ImageURL    *string                 `json:"imageUrl" binding:"omitempty,url"`
	TechStack   []string                `json:"techStack" binding:"omitempty,dive,min=1"`
	Featured    *bool                   `json:"featured"`
	Order       *int                    `json:"order" binding:"omitempty,gte=0"`
}

func marshalTechStack(stack []string) (datatypes.JSON, error) {
	if stack == nil {
		stack = []string{}
	}
	raw, err := json.Marshal(stack)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// List returns all projects in display order.
func (h *ProjectHandler) List(c *gin.Context) {
	var projects []database.Project
	if err := h.db.WithContext(c.Request.Context()).
		Order("display_order ASC").
		Find(&projects).Error; err != nil {
		Internal(c, "failed to list projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	techStack, err := marshalTechStack(req.TechStack)
	if err != nil {
		Internal(c, "failed to encode tech stack")
		return
	}

	project := database.Project{
		Title:       *req.Title,
		Description: *req.Description,
		TechStack:   techStack,
	}
	if req.URL != nil {
		project.URL = *req.URL
	}
	if req.RepoURL != nil {
		project.RepoURL = *req.RepoURL
	}
	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.Order != nil {
		project.Order = *req.Order
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&project).Error; err != nil {
		Internal(c, "failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var project database.Project
	if err := h.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "project not found")
			return
		}
		Internal(c, "failed to load project")
		return
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.URL != nil {
		project.URL = *req.URL
	}
	if req.RepoURL != nil {
		project.RepoURL = *req.RepoURL
	}
	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.TechStack != nil {
		techStack, err := marshalTechStack(req.TechStack)
		if err != nil {
			Internal(c, "failed to encode tech stack")
			return
		}
		project.TechStack = techStack
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.Order != nil {
		project.Order = *req.Order
	}

	if err := h.db.WithContext(ctx).Save(&project).Error; err != nil {
		Internal(c, "failed to update project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&database.Project{}, id)
	if result.Error != nil {
		Internal(c, "failed to delete project")
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "project not found")
		return
	}
	c.Status(http.StatusNoContent)
}
