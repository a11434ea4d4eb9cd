package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Issue points at a single failing field in a validation error.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type errorBody struct {
	Message string  `json:"message"`
	Issues  []Issue `json:"issues,omitempty"`
}

// Error writes the standard error envelope.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": errorBody{Message: msg}})
}

// ValidationError writes a 400 carrying every failing field path.
func ValidationError(c *gin.Context, issues []Issue) {
	c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{
		Message: "Validation error",
		Issues:  issues,
	}})
}

func BadRequest(c *gin.Context, msg string) { Error(c, http.StatusBadRequest, msg) }
func Unauthorized(c *gin.Context)           { Error(c, http.StatusUnauthorized, "unauthorized") }
func NotFound(c *gin.Context, msg string)   { Error(c, http.StatusNotFound, msg) }
func Internal(c *gin.Context, msg string)   { Error(c, http.StatusInternalServerError, msg) }
