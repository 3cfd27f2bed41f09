package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/medsched/hospital-scheduler/internal/audit"
	"github.com/medsched/hospital-scheduler/internal/config"
	"github.com/medsched/hospital-scheduler/internal/handlers"
	"github.com/medsched/hospital-scheduler/internal/infra/cache"
	infraRepo "github.com/medsched/hospital-scheduler/internal/infra/repository"
	"github.com/medsched/hospital-scheduler/internal/mailer"
	"github.com/medsched/hospital-scheduler/internal/middleware"
	ucAppointment "github.com/medsched/hospital-scheduler/internal/usecase/appointment"
)

// Deps holds the shared singletons the route tree is built from.
type Deps struct {
	AuditDispatcher *audit.Dispatcher
	OverdueSweepUC  *ucAppointment.OverdueSweep
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) Deps {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditRecorder := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditRecorder)

	emailResolver := cache.NewEmailResolver(db, rdb)
	mailClient := mailer.New(cfg.MailerURL)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	changeStatusUC := ucAppointment.NewChangeStatus(
		appointmentRepo,
		auditDispatcher,
	)

	attendAppointmentUC := ucAppointment.NewAttendAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	overdueSweepUC := ucAppointment.NewOverdueSweep(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		changeStatusUC,
		attendAppointmentUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db, emailResolver)
	hospitalHandler := handlers.NewHospitalHandler(db, auditDispatcher)
	profileHandler := handlers.NewProfileHandler(db)
	contactHandler := handlers.NewContactHandler(mailClient)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/contact", contactHandler.Send)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments/:id/status", appointmentHandler.ChangeStatus)
			secured.POST("/appointments/:id/attend/begin", appointmentHandler.BeginAttend)
			secured.POST("/appointments/:id/attend/complete", appointmentHandler.CompleteAttend)

			// ------------------------------
			// ADMIN
			// ------------------------------
			secured.GET("/audit-logs", auditLogsHandler.List)

			secured.GET("/hospitals", hospitalHandler.List)
			secured.POST("/hospitals", hospitalHandler.Create)
			secured.PATCH("/hospitals/:id", hospitalHandler.Update)
			secured.DELETE("/hospitals/:id", hospitalHandler.Delete)

			secured.GET("/profiles", profileHandler.List)
		}
	}

	return Deps{
		AuditDispatcher: auditDispatcher,
		OverdueSweepUC:  overdueSweepUC,
	}
}
