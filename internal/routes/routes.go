package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agendame/agenda-api/internal/cache"
	"github.com/agendame/agenda-api/internal/config"
	"github.com/agendame/agenda-api/internal/handlers"
	infraRepo "github.com/agendame/agenda-api/internal/infra/repository"
	"github.com/agendame/agenda-api/internal/mailer"
	"github.com/agendame/agenda-api/internal/middleware"
	"github.com/agendame/agenda-api/internal/notify"
	"github.com/agendame/agenda-api/internal/storage"
	ucAppointment "github.com/agendame/agenda-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	redisCache := cache.New(cfg.RedisAddr)
	uploader := storage.NewS3Uploader(cfg)

	mailSender := mailer.NewSMTPSender(cfg.SMTPAddr(), cfg.MailFrom)
	dispatcher := notify.NewDispatcher(notify.NewGormStore(db), mailSender, log)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		dispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		dispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	fileHandler := handlers.NewFileHandler(db, uploader, redisCache)
	providerHandler := handlers.NewProviderHandler(db, redisCache)
	notificationHandler := handlers.NewNotificationHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/avatar", fileHandler.UploadAvatar)

			secured.GET("/providers", providerHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
		}
	}
}
