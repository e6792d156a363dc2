package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/middleware"
	"github.com/portfolio/backend/internal/service"
	"github.com/redis/go-redis/v9"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	profileHandler *handler.ProfileHandler,
	projectHandler *handler.ProjectHandler,
	skillHandler *handler.SkillHandler,
	resumeHandler *handler.ResumeHandler,
	contactHandler *handler.ContactHandler,
	githubHandler *handler.GitHubHandler,
	trackingHandler *handler.TrackingHandler,
	statsHandler *handler.StatsHandler,
	authHandler *handler.AuthHandler,
	authService service.AuthService,
	redisClient *redis.Client,
	rateLimit middleware.RateLimitConfig,
) {
	api := router.Group("/api/v1")

	// Public portfolio content
	api.GET("/profile", profileHandler.GetProfile)
	api.GET("/projects", projectHandler.ListProjects)
	api.GET("/projects/:id", projectHandler.GetProject)
	api.GET("/skills", skillHandler.ListSkills)
	api.GET("/experience", resumeHandler.ListExperience)
	api.GET("/education", resumeHandler.ListEducation)
	api.GET("/github/contributions", githubHandler.GetContributions)
	api.POST("/contact", contactHandler.SubmitMessage)

	// Tracking ingress (fire-and-forget, rate limited per IP)
	track := api.Group("/track", middleware.RateLimit(redisClient, rateLimit))
	track.POST("/pageview", trackingHandler.TrackPageview)
	track.POST("/click", trackingHandler.TrackClick)

	// Admin endpoints
	api.POST("/admin/login", authHandler.Login)

	admin := api.Group("/admin", middleware.AdminAuth(authService))
	{
		admin.PUT("/profile", profileHandler.UpdateProfile)

		admin.POST("/projects", projectHandler.CreateProject)
		admin.PUT("/projects/:id", projectHandler.UpdateProject)
		admin.DELETE("/projects/:id", projectHandler.DeleteProject)

		admin.POST("/skills", skillHandler.CreateSkill)
		admin.PUT("/skills/:id", skillHandler.UpdateSkill)
		admin.DELETE("/skills/:id", skillHandler.DeleteSkill)

		admin.POST("/experience", resumeHandler.CreateExperience)
		admin.PUT("/experience/:id", resumeHandler.UpdateExperience)
		admin.DELETE("/experience/:id", resumeHandler.DeleteExperience)

		admin.POST("/education", resumeHandler.CreateEducation)
		admin.PUT("/education/:id", resumeHandler.UpdateEducation)
		admin.DELETE("/education/:id", resumeHandler.DeleteEducation)

		admin.GET("/contact", contactHandler.ListMessages)
		admin.PUT("/contact/:id/read", contactHandler.MarkMessageRead)

		admin.GET("/stats/visitors", statsHandler.GetVisitorStats)
		admin.DELETE("/stats/visitors", statsHandler.DeleteVisitorStats)
		admin.GET("/stats/clicks", statsHandler.GetClickStats)
		admin.DELETE("/stats/clicks", statsHandler.DeleteClickStats)
	}
}
