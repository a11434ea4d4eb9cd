package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolioapi/internal/api/middleware"
	"portfolioapi/internal/auth"
	"portfolioapi/internal/config"
)

const maxJSONBodyBytes = 1 << 20 // 1 MiB, matches what the admin UI ever sends

// RegisterRoutes wires every resource handler into the public and admin
// route groups.
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	verifier *auth.Verifier,
	rateCounter middleware.RateCounter,
	media MediaUploader,
	logger *slog.Logger,
	cfg *config.Config,
) {
	skillHandler := NewSkillHandler(db)
	projectHandler := NewProjectHandler(db)
	experienceHandler := NewExperienceHandler(db)
	educationHandler := NewEducationHandler(db)
	resumeHandler := NewResumeHandler(db)
	contactInfoHandler := NewContactInfoHandler(db)
	hobbyHandler := NewHobbyHandler(db)
	messageHandler := NewMessageHandler(db)
	testimonialHandler := NewTestimonialHandler(db)
	uploadHandler := NewUploadHandler(media, logger, cfg.Media.ClamdAddr)

	messageLimiter := middleware.RateLimit(rateCounter, middleware.RateLimitPolicy{
		Prefix: "rl:messages",
		Limit:  cfg.RateLimit.MessageLimit,
		Window: cfg.RateLimit.MessageWindow,
	}, logger)
	testimonialLimiter := middleware.RateLimit(rateCounter, middleware.RateLimitPolicy{
		Prefix: "rl:testimonials",
		Limit:  cfg.RateLimit.TestimonialLimit,
		Window: cfg.RateLimit.TestimonialWindow,
	}, logger)

	public := router.Group("/api/public")
	{
		public.GET("/skills", skillHandler.List)
		public.GET("/projects", projectHandler.List)
		public.GET("/experiences", experienceHandler.List)
		public.GET("/education", educationHandler.List)
		public.GET("/resume", resumeHandler.GetActive)
		public.GET("/hobbies", hobbyHandler.List)
		public.GET("/contact-info", contactInfoHandler.GetCurrent)
		public.GET("/testimonials", testimonialHandler.ListApproved)

		public.POST("/messages",
			middleware.MaxBodyBytes(maxJSONBodyBytes), messageLimiter, messageHandler.Create)
		public.POST("/testimonials",
			middleware.MaxBodyBytes(maxJSONBodyBytes), testimonialLimiter, testimonialHandler.Submit)
	}

	admin := router.Group("/api/admin")
	admin.Use(
		middleware.RequireAuth(verifier),
		middleware.RequireAdmin(cfg.Auth.AdminPermission),
		middleware.MaxBodyBytes(maxJSONBodyBytes),
	)
	{
		admin.GET("/skills", skillHandler.List)
		admin.POST("/skills", skillHandler.Create)
		admin.PUT("/skills/:id", skillHandler.Update)
		admin.DELETE("/skills/:id", skillHandler.Delete)

		admin.GET("/projects", projectHandler.List)
		admin.POST("/projects", projectHandler.Create)
		admin.PUT("/projects/:id", projectHandler.Update)
		admin.DELETE("/projects/:id", projectHandler.Delete)

		admin.GET("/experiences", experienceHandler.List)
		admin.POST("/experiences", experienceHandler.Create)
		admin.PUT("/experiences/:id", experienceHandler.Update)
		admin.DELETE("/experiences/:id", experienceHandler.Delete)

		admin.GET("/education", educationHandler.List)
		admin.POST("/education", educationHandler.Create)
		admin.PUT("/education/:id", educationHandler.Update)
		admin.DELETE("/education/:id", educationHandler.Delete)

		admin.GET("/resumes", resumeHandler.List)
		admin.POST("/resumes", resumeHandler.Create)
		admin.PUT("/resumes/:id", resumeHandler.Update)
		admin.DELETE("/resumes/:id", resumeHandler.Delete)

		admin.GET("/contact-info", contactInfoHandler.List)
		admin.POST("/contact-info", contactInfoHandler.Create)
		admin.PUT("/contact-info/:id", contactInfoHandler.Update)
		admin.DELETE("/contact-info/:id", contactInfoHandler.Delete)

		admin.GET("/hobbies", hobbyHandler.List)
		admin.POST("/hobbies", hobbyHandler.Create)
		admin.PUT("/hobbies/:id", hobbyHandler.Update)
		admin.DELETE("/hobbies/:id", hobbyHandler.Delete)

		admin.GET("/messages", messageHandler.List)
		admin.DELETE("/messages/:id", messageHandler.Delete)

		admin.GET("/testimonials", testimonialHandler.ListAll)
		admin.POST("/testimonials/:id/approve", testimonialHandler.Approve)
		admin.POST("/testimonials/:id/reject", testimonialHandler.Reject)
		admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

		admin.POST("/uploads/image", uploadHandler.UploadImage)
	}
}
