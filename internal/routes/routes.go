package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/handyhub/marketplace-api/internal/audit"
	"github.com/handyhub/marketplace-api/internal/cache"
	"github.com/handyhub/marketplace-api/internal/config"
	"github.com/handyhub/marketplace-api/internal/handlers"
	infraRepo "github.com/handyhub/marketplace-api/internal/infra/repository"
	"github.com/handyhub/marketplace-api/internal/mailer"
	"github.com/handyhub/marketplace-api/internal/media"
	"github.com/handyhub/marketplace-api/internal/middleware"
	"github.com/handyhub/marketplace-api/internal/models"
	"github.com/handyhub/marketplace-api/internal/payments"
	ucBooking "github.com/handyhub/marketplace-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	chatRepo := infraRepo.NewChatGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	redisCache := cache.New(cfg.RedisAddr)
	mail := mailer.New(cfg)
	uploader := media.NewUploader(cfg)
	payClient := payments.New(cfg.MercadoPagoToken)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		payClient,
		auditDispatcher,
	)

	updateBookingStatusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		auditDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookingsForUser(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, cfg, mail, uploader)
	categoryHandler := handlers.NewCategoryHandler(db, redisCache)
	serviceHandler := handlers.NewServiceHandler(db)
	chatHandler := handlers.NewChatHandler(chatRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		updateBookingStatusUC,
		listBookingsUC,
	)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/forgot-password", authHandler.ForgotPassword)
	r.POST("/auth/reset-password", authHandler.ResetPassword)
	r.POST("/auth/reset-password-direct", authHandler.ResetPasswordDirect)

	r.GET("/categories", categoryHandler.List)
	r.GET("/categories/:id", categoryHandler.Get)

	r.GET("/services", serviceHandler.List)
	r.GET("/services/:id", serviceHandler.Get)

	// ======================================================
	// AUTHENTICATED ROUTES
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/auth/profile", authHandler.GetProfile)
		secured.PATCH("/auth/profile", authHandler.UpdateProfile)
		secured.POST("/auth/profile/avatar", authHandler.UploadAvatar)

		secured.POST("/categories",
			middleware.RequireRoles(models.RoleAdmin),
			categoryHandler.Create,
		)

		secured.POST("/services",
			middleware.RequireRoles(models.RoleProvider),
			serviceHandler.Create,
		)
		secured.PATCH("/services/:id",
			middleware.RequireRoles(models.RoleProvider),
			serviceHandler.Update,
		)
		secured.DELETE("/services/:id",
			middleware.RequireRoles(models.RoleProvider),
			serviceHandler.Delete,
		)

		secured.POST("/bookings",
			middleware.RequireRoles(models.RoleCustomer),
			bookingHandler.Create,
		)
		secured.GET("/bookings", bookingHandler.List)
		secured.GET("/bookings/:id", bookingHandler.Get)
		secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

		secured.GET("/chats", chatHandler.ListMine)
		secured.GET("/chats/initiate/:participantId", chatHandler.Initiate)
		secured.GET("/chats/:chatId/messages", chatHandler.Messages)
		secured.POST("/chats/:chatId/messages", chatHandler.SendMessage)

		secured.GET("/admin/audit-logs",
			middleware.RequireRoles(models.RoleAdmin),
			auditLogsHandler.List,
		)
	}
}
