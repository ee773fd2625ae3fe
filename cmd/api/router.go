package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPublicRoutes(v1, c)
		setupGuestbookRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)
	}
}

// ========================================
// PUBLIC ROUTES
// ========================================
// Everything the portfolio site itself renders. No auth; aggressive
// repository-level caching behind the scenes.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/profile", c.ProfileHandler.Get)
	v1.GET("/socials", c.SocialHandler.ListVisible)
	v1.GET("/projects", c.ProjectHandler.ListPublished)
	v1.GET("/projects/:slug", c.ProjectHandler.GetBySlug)
	v1.GET("/skills", c.SkillHandler.List)
	v1.GET("/experiences", c.ExperienceHandler.List)

	// Contact form is the one anonymous write; rate limited per IP.
	v1.POST("/contact",
		middleware.RateLimit(c.Cache, "contact", c.Config.Guestbook.RateLimitPerHour, time.Hour),
		c.MessageHandler.Submit,
	)
}

// ========================================
// GUESTBOOK ROUTES
// ========================================
// Reads are public but honor a token when present (viewer's liked
// state); writes require a signed-in visitor.
func setupGuestbookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	guestbook := v1.Group("/guestbook")
	guestbook.Use(middleware.OptionalAuthMiddleware(c.JWTManager))
	{
		guestbook.GET("", c.GuestbookHandler.List)
		guestbook.GET("/:id/replies", c.GuestbookHandler.ListReplies)

		guestbook.POST("",
			middleware.RateLimit(c.Cache, "guestbook", c.Config.Guestbook.RateLimitPerHour, time.Hour),
			c.GuestbookHandler.Post,
		)
		guestbook.POST("/:id/replies",
			middleware.RateLimit(c.Cache, "guestbook", c.Config.Guestbook.RateLimitPerHour, time.Hour),
			c.GuestbookHandler.Reply,
		)
		guestbook.POST("/:id/like", c.GuestbookHandler.ToggleLike)
		guestbook.DELETE("/:id", c.GuestbookHandler.Delete)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.PUT("/profile", c.ProfileHandler.Upsert)
		admin.POST("/profile/avatar", c.ProfileHandler.UploadAvatar)
		admin.POST("/profile/resume", c.ProfileHandler.UploadResume)

		admin.GET("/socials", c.SocialHandler.ListAll)
		admin.POST("/socials", c.SocialHandler.Create)
		admin.PUT("/socials/:id", c.SocialHandler.Update)
		admin.DELETE("/socials/:id", c.SocialHandler.Delete)

		admin.GET("/projects", c.ProjectHandler.ListAll)
		admin.POST("/projects", c.ProjectHandler.Create)
		admin.PUT("/projects/:id", c.ProjectHandler.Update)
		admin.DELETE("/projects/:id", c.ProjectHandler.Delete)
		admin.POST("/projects/:id/image", c.ProjectHandler.UploadImage)

		admin.GET("/skills", c.SkillHandler.ListAll)
		admin.POST("/skills", c.SkillHandler.Create)
		admin.PUT("/skills/:id", c.SkillHandler.Update)
		admin.DELETE("/skills/:id", c.SkillHandler.Delete)

		admin.GET("/experiences", c.ExperienceHandler.ListAll)
		admin.POST("/experiences", c.ExperienceHandler.Create)
		admin.PUT("/experiences/:id", c.ExperienceHandler.Update)
		admin.DELETE("/experiences/:id", c.ExperienceHandler.Delete)

		admin.GET("/messages", c.MessageHandler.List)
		admin.PUT("/messages/:id/read", c.MessageHandler.MarkRead)
		admin.DELETE("/messages/:id", c.MessageHandler.Delete)

		admin.GET("/guestbook", c.GuestbookHandler.ListForModeration)
		admin.PUT("/guestbook/:id/approval", c.GuestbookHandler.SetApproved)

		admin.GET("/users", c.UserHandler.ListUsers)
		admin.PUT("/users/:id/role", c.UserHandler.UpdateUserRole)
		admin.PUT("/users/:id/status", c.UserHandler.UpdateUserStatus)

		// One endpoint persists every drag-and-drop reorder.
		admin.PUT("/reorder/:collection", c.OrderingHandler.Reorder)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		response.Success(ctx, status, gin.H{
			"status":   "ok",
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
