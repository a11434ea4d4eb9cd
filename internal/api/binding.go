package api

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures under the JSON field names clients sent,
	// not the Go struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON decodes and validates the request body into dst. On failure it
// writes the error envelope, listing every failing field path, and returns
// false.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		issues := make([]Issue, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			issues = append(issues, Issue{
				Path:    issuePath(fieldErr),
				Message: issueMessage(fieldErr),
			})
		}
		ValidationError(c, issues)
		return false
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		ValidationError(c, []Issue{{
			Path:    typeErr.Field,
			Message: "expected " + typeErr.Type.String(),
		}})
		return false
	}

	BadRequest(c, "invalid request body")
	return false
}

// issuePath strips the request struct name off the validator namespace,
// leaving the JSON path of the failing field.
func issuePath(fieldErr validator.FieldError) string {
	ns := fieldErr.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fieldErr.Field()
}

func issueMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "min":
		return "must have at least " + fieldErr.Param() + " characters"
	default:
		return "failed on " + fieldErr.Tag()
	}
}

// parseID reads the :id route parameter. A non-numeric id is rejected before
// any query runs.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
