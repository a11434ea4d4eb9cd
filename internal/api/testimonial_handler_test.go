package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioapi/internal/database"
)

func newTestimonialRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	handler := NewTestimonialHandler(db)

	router := gin.New()
	router.GET("/public/testimonials", handler.ListApproved)
	router.POST("/public/testimonials", handler.Submit)
	router.GET("/admin/testimonials", handler.ListAll)
	router.POST("/admin/testimonials/:id/approve", handler.Approve)
	router.POST("/admin/testimonials/:id/reject", handler.Reject)
	router.DELETE("/admin/testimonials/:id", handler.Delete)
	return router
}

func TestTestimonialLifecycle(t *testing.T) {
	router := newTestimonialRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/public/testimonials", map[string]any{
		"name":    "Jane",
		"content": "Great work",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var submitted database.Testimonial
	decodeBody(t, rec, &submitted)
	assert.Equal(t, database.TestimonialPending, submitted.Status)

	// Pending submissions stay off the public list.
	rec = doJSON(t, router, http.MethodGet, "/public/testimonials", nil)
	var publicList []database.Testimonial
	decodeBody(t, rec, &publicList)
	assert.Empty(t, publicList)

	// The admin list sees them.
	rec = doJSON(t, router, http.MethodGet, "/admin/testimonials", nil)
	var adminList []database.Testimonial
	decodeBody(t, rec, &adminList)
	require.Len(t, adminList, 1)

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/admin/testimonials/%d/approve", submitted.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/public/testimonials", nil)
	decodeBody(t, rec, &publicList)
	require.Len(t, publicList, 1)
	assert.Equal(t, database.TestimonialApproved, publicList[0].Status)
}

func TestTestimonialApprove_Idempotent(t *testing.T) {
	router := newTestimonialRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/public/testimonials", map[string]any{
		"name":    "Sam",
		"content": "Would hire again",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var submitted database.Testimonial
	decodeBody(t, rec, &submitted)

	for i := 0; i < 3; i++ {
		rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/admin/testimonials/%d/approve", submitted.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code, "approve attempt %d", i+1)

		var approved database.Testimonial
		decodeBody(t, rec, &approved)
		assert.Equal(t, database.TestimonialApproved, approved.Status)
	}
}

func TestTestimonialReject_ThenApproveAgain(t *testing.T) {
	router := newTestimonialRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/public/testimonials", map[string]any{
		"name":    "Ana",
		"content": "Superb",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var submitted database.Testimonial
	decodeBody(t, rec, &submitted)

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/admin/testimonials/%d/reject", submitted.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rejected database.Testimonial
	decodeBody(t, rec, &rejected)
	assert.Equal(t, database.TestimonialRejected, rejected.Status)

	// Transitions are re-appliable: an admin may still approve later.
	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/admin/testimonials/%d/approve", submitted.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var approved database.Testimonial
	decodeBody(t, rec, &approved)
	assert.Equal(t, database.TestimonialApproved, approved.Status)
}

func TestTestimonialApprove_UnknownID(t *testing.T) {
	router := newTestimonialRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/admin/testimonials/123/approve", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTestimonialSubmit_MissingContent(t *testing.T) {
	router := newTestimonialRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/public/testimonials", map[string]any{
		"name": "Jane",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, issuePaths(t, rec), "content")
}
