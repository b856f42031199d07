package routes

import (
	"fmt"
	"net/http"

	"community-portal-backend/internal/api/handlers"
	"community-portal-backend/internal/api/middleware"
	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/cache"
	"community-portal-backend/internal/config"
	"community-portal-backend/internal/repository"
	"community-portal-backend/internal/service"
	"community-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Dependencies carries the infrastructure shared by every repository and service
type Dependencies struct {
	DB      *gorm.DB
	Cache   cache.Cache
	Storage storage.Storage
	// Redis backs the rate limiter; nil disables rate limiting
	Redis *redis.Client
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(deps.DB)
	organizationRepo := repository.NewOrganizationRepository(deps.DB)
	pageRepo := repository.NewPageRepository(deps.DB)
	volunteeringRepo := repository.NewVolunteeringRepository(deps.DB)
	newsRepo := repository.NewNewsRepository(deps.DB)
	notificationRepo := repository.NewNotificationRepository(deps.DB)
	forumRepo := repository.NewForumRepository(deps.DB)
	attachmentRepo := repository.NewAttachmentRepository(deps.DB)
	reportRepo := repository.NewReportRepository(deps.DB)
	moderationRepo := repository.NewModerationRepository(deps.DB)
	newsletterRepo := repository.NewNewsletterRepository(deps.DB)
	invitationRepo := repository.NewInvitationRepository(deps.DB)

	// Initialize services
	aboutService := service.NewAboutService(pageRepo, userRepo, organizationRepo, volunteeringRepo, deps.Cache, cfg.AboutCacheTTL)
	dashboardService := service.NewDashboardService(userRepo, organizationRepo, newsRepo, volunteeringRepo, notificationRepo, forumRepo)
	attachmentService := service.NewAttachmentService(attachmentRepo, deps.Storage)
	reportService := service.NewReportService(reportRepo, forumRepo, moderationRepo, validator)
	moderationService := service.NewModerationService(moderationRepo, forumRepo)
	newsService := service.NewNewsService(newsRepo, organizationRepo)
	newsletterService := service.NewNewsletterService(newsletterRepo, validator)
	notificationService := service.NewNotificationService(notificationRepo)
	invitationService := service.NewInvitationService(invitationRepo)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret, cfg.JWTIssuer), userRepo)
	if err != nil {
		return nil, fmt.Errorf("initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	var limiter middleware.Limiter
	if deps.Redis != nil {
		limiter = middleware.NewRedisLimiter(deps.Redis, cfg.RateLimitPerMinute)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Cache, Version)
	aboutHandler := handlers.NewAboutHandler(aboutService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	attachmentHandler := handlers.NewForumAttachmentHandler(attachmentService)
	reportHandler := handlers.NewForumReportHandler(reportService, moderationService)
	newsHandler := handlers.NewNewsHandler(newsService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	invitationHandler := handlers.NewOrganizationInvitationHandler(invitationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Routes open to visitors; a valid bearer token still attaches the principal
	public := v1.Group("", authMiddleware.OptionalAuth())
	{
		public.GET("/about", aboutHandler.Show)

		public.GET("/news/public", newsHandler.PublicList)
		public.GET("/news/public/:id", newsHandler.Show)

		newsletter := public.Group("/newsletter")
		{
			newsletter.GET("", newsletterHandler.Overview)
			newsletter.POST("/subscribe", middleware.RateLimit(limiter, "newsletter-subscribe"), newsletterHandler.Subscribe)
			newsletter.POST("/unsubscribe", newsletterHandler.Unsubscribe)
			newsletter.GET("/unsubscribe", newsletterHandler.UnsubscribeLink)
			newsletter.POST("/preferences", newsletterHandler.UpdatePreferences)
			newsletter.GET("/status", newsletterHandler.Status)
		}

		public.GET("/invitations/:token", invitationHandler.Show)
	}

	// Routes that require authentication
	protected := v1.Group("", authMiddleware.RequireAuth())
	{
		protected.DELETE("/about/cache", auth.RequireCapability(auth.CapabilityContentManage), aboutHandler.InvalidateCache)

		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("", dashboardHandler.Index)
			dashboard.GET("/personalized", dashboardHandler.Personalized)
			dashboard.GET("/activity-summary", dashboardHandler.ActivitySummary)
		}

		attachments := protected.Group("/forum-attachments")
		{
			attachments.GET("/stats", auth.RequireCapability(auth.CapabilityForumAttachmentsStats), attachmentHandler.Stats)
			attachments.GET("/:id/download", attachmentHandler.Download)
			attachments.GET("/:id/show", attachmentHandler.Show)
			attachments.DELETE("/:id", attachmentHandler.Delete)
		}

		reports := protected.Group("/forum-reports")
		{
			submitLimit := middleware.RateLimit(limiter, "forum-report")
			reports.POST("/threads/:id", submitLimit, reportHandler.ReportThread)
			reports.POST("/posts/:id", submitLimit, reportHandler.ReportPost)
			reports.GET("/mine", reportHandler.Mine)
			reports.GET("/my-history", reportHandler.MyHistory)
			reports.GET("/warnings", reportHandler.Warnings)
			reports.POST("/warnings/:id/acknowledge", reportHandler.AcknowledgeWarning)
			reports.GET("/history/:kind/:id", auth.RequireCapability(auth.CapabilityForumModerate), reportHandler.History)
			reports.GET("/can-post/:forumId", reportHandler.CanPost)
			reports.GET("/can-reply/:threadId", reportHandler.CanReply)
			reports.GET("/:id", reportHandler.Show)
		}

		protected.GET("/news", newsHandler.List)
		protected.GET("/news/:id", newsHandler.Show)

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.GET("/recent", notificationHandler.Recent)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
			notifications.DELETE("/read", notificationHandler.DeleteRead)
			notifications.DELETE("/:id", notificationHandler.Delete)
		}

		invitations := protected.Group("/invitations")
		{
			invitations.GET("/mine", invitationHandler.Mine)
			invitations.GET("/pending-count", invitationHandler.PendingCount)
			invitations.POST("/:token/accept", invitationHandler.Accept)
			invitations.POST("/:token/reject", invitationHandler.Reject)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Success: false, Message: "Not found"})
	})

	return router, nil
}
