package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolioapi/internal/database"
)

// MessageHandler accepts contact-form submissions from the public site and
// lets the admin read and prune the inbox.
type MessageHandler struct {
	db *gorm.DB
}

func NewMessageHandler(db *gorm.DB) *MessageHandler {
	return &MessageHandler{db: db}
}

type createMessageRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Subject *string `json:"subject"`
	Content string  `json:"content" binding:"required"`
}

// List returns all messages, newest first.
func (h *MessageHandler) List(c *gin.Context) {
	var messages []database.Message
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		Internal(c, "failed to list messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Create stores a public contact-form submission.
func (h *MessageHandler) Create(c *gin.Context) {
	var req createMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	message := database.Message{
		Name:    req.Name,
		Email:   req.Email,
		Content: req.Content,
	}
	if req.Subject != nil {
		message.Subject = *req.Subject
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&message).Error; err != nil {
		Internal(c, "failed to create message")
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&database.Message{}, id)
	if result.Error != nil {
		Internal(c, "failed to delete message")
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "message not found")
		return
	}
	c.Status(http.StatusNoContent)
}
