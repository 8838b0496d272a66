package routes

import (
	"club-portal-backend/internal/api/handlers"
	"club-portal-backend/internal/api/middleware"
	"club-portal-backend/internal/auth"
	"club-portal-backend/internal/config"
	"club-portal-backend/internal/mailer"
	"club-portal-backend/internal/repository"
	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	clubRepo := repository.NewClubRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	execRepo := repository.NewExecutiveRoleRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	passcodeRepo := repository.NewPasscodeRepository(db)
	eventRepo := repository.NewEventRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)

	// Initialize services
	tokens := auth.NewTokenService(cfg)
	sender := mailer.NewSMTPSender(cfg)
	passcodeService := service.NewPasscodeService(passcodeRepo, sender)
	authService := service.NewAuthService(userRepo, passcodeService, tokens, validator)
	clubService := service.NewClubService(clubRepo, validator)
	communityService := service.NewCommunityService(communityRepo, clubRepo, userRepo, execRepo, membershipRepo, validator)
	eventService := service.NewEventService(eventRepo, validator)
	commentService := service.NewCommentService(commentRepo, eventRepo, validator)
	blogService := service.NewBlogService(blogRepo, validator)
	feedbackService := service.NewFeedbackService(feedbackRepo, validator)
	testimonialService := service.NewTestimonialService(testimonialRepo, validator)
	partnerService := service.NewPartnerService(partnerRepo, validator)
	newsletterService := service.NewNewsletterService(subscriberRepo, sender, cfg.ContactEmail, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	clubHandler := handlers.NewClubHandler(clubService)
	communityHandler := handlers.NewCommunityHandler(communityService)
	eventHandler := handlers.NewEventHandler(eventService)
	commentHandler := handlers.NewCommentHandler(commentService)
	blogHandler := handlers.NewBlogHandler(blogService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)
	partnerHandler := handlers.NewPartnerHandler(partnerService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Auth routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/verify-otp", authHandler.VerifyOTP)
		authGroup.POST("/password-reset", authHandler.RequestPasswordReset)
		authGroup.POST("/reset-password", authHandler.ResetPassword)
	}

	// Public read routes
	{
		v1.GET("/clubs", clubHandler.ListClubs)
		v1.GET("/clubs/:id", clubHandler.GetClub)

		v1.GET("/communities", communityHandler.ListCommunities)
		v1.GET("/communities/search", communityHandler.SearchCommunity)
		v1.GET("/communities/:id", communityHandler.GetCommunity)
		v1.GET("/communities/:id/members", communityHandler.GetCommunityMembers)
		v1.POST("/communities/:id/join", communityHandler.JoinCommunity)

		v1.GET("/events", eventHandler.ListEvents)
		v1.GET("/events/:id", eventHandler.GetEvent)
		v1.GET("/events/:id/comments", commentHandler.ListEventComments)
		v1.GET("/comments/:id", commentHandler.GetComment)
		v1.GET("/comments/:id/replies", commentHandler.ListReplies)

		v1.GET("/testimonials", testimonialHandler.ListTestimonials)
		v1.GET("/testimonials/:id", testimonialHandler.GetTestimonial)
		v1.POST("/testimonials", testimonialHandler.CreateTestimonial)

		v1.GET("/partners", partnerHandler.ListPartners)
		v1.GET("/partners/:id", partnerHandler.GetPartner)

		v1.POST("/feedback", feedbackHandler.CreateFeedback)

		v1.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
		v1.POST("/contact", newsletterHandler.Contact)
	}

	// Write routes require authentication
	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(tokens))
	{
		protected.POST("/clubs", clubHandler.CreateClub)
		protected.PATCH("/clubs/:id", clubHandler.UpdateClub)
		protected.DELETE("/clubs/:id", clubHandler.DeleteClub)

		protected.POST("/communities", communityHandler.CreateCommunity)
		protected.PUT("/communities/:id", communityHandler.UpdateCommunity)
		protected.PATCH("/communities/:id", communityHandler.UpdateCommunity)
		protected.DELETE("/communities/:id", communityHandler.DeleteCommunity)
		protected.DELETE("/communities/:id/members/:member_id", communityHandler.RemoveCommunityMember)

		protected.POST("/events", eventHandler.CreateEvent)
		protected.PATCH("/events/:id", eventHandler.UpdateEvent)
		protected.DELETE("/events/:id", eventHandler.DeleteEvent)

		protected.POST("/events/:id/comments", commentHandler.CreateComment)
		protected.POST("/comments/:id/replies", commentHandler.CreateReply)
		protected.PATCH("/comments/:id", commentHandler.UpdateComment)
		protected.DELETE("/comments/:id", commentHandler.DeleteComment)

		protected.GET("/blogs", blogHandler.ListBlogs)
		protected.POST("/blogs", blogHandler.CreateBlog)
		protected.PATCH("/blogs/:id", blogHandler.UpdateBlog)
		protected.DELETE("/blogs/:id", blogHandler.DeleteBlog)

		protected.POST("/newsletter/send", newsletterHandler.SendNewsletter)

		protected.GET("/feedback", feedbackHandler.ListFeedback)
		protected.GET("/feedback/:id", feedbackHandler.GetFeedback)
		protected.DELETE("/feedback/:id", feedbackHandler.DeleteFeedback)

		protected.PATCH("/testimonials/:id", testimonialHandler.UpdateTestimonial)
		protected.DELETE("/testimonials/:id", testimonialHandler.DeleteTestimonial)

		protected.POST("/partners", partnerHandler.CreatePartner)
		protected.PATCH("/partners/:id", partnerHandler.UpdatePartner)
		protected.DELETE("/partners/:id", partnerHandler.DeletePartner)
	}

	return router
}
