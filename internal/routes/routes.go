package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/notification"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifier := notification.NewDispatcher(db, rdb)

	machine := domain.Machine{
		AllowNoShowFromPending: cfg.AllowNoShowFromPending,
	}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, cfg)

	createUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		notifier,
		auditDispatcher,
		cfg,
	)

	getUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listMineUC := ucAppointment.NewListMyAppointments(appointmentRepo)
	listSalonUC := ucAppointment.NewListSalonAppointments(appointmentRepo)

	confirmUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		machine,
		notifier,
		auditDispatcher,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		machine,
		auditDispatcher,
	)

	noShowUC := ucAppointment.NewMarkNoShow(
		appointmentRepo,
		machine,
		auditDispatcher,
	)

	cancelCustUC := ucAppointment.NewCancelByCustomer(
		appointmentRepo,
		machine,
		notifier,
		auditDispatcher,
	)

	cancelSalUC := ucAppointment.NewCancelBySalon(
		appointmentRepo,
		machine,
		notifier,
		auditDispatcher,
	)

	rescheduleUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)

	staffHandler := handlers.NewStaffHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createUC,
		getUC,
		listMineUC,
		listSalonUC,
		confirmUC,
		completeUC,
		noShowUC,
		cancelCustUC,
		cancelSalUC,
		rescheduleUC,
	)

	reviewHandler := handlers.NewReviewHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/salons", publicHandler.ListSalons)
			publicAPI.GET("/salons/:id", publicHandler.GetSalon)
			publicAPI.GET("/salons/:id/availability", publicHandler.GetAvailability)
			publicAPI.GET("/salons/:id/reviews", publicHandler.ListReviews)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// CLIENTE
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListMine)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.CancelByCustomer)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)

			secured.POST("/reviews", reviewHandler.Create)
			secured.GET("/reviews", reviewHandler.ListMine)

			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			secured.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)

			// ------------------------------
			// SALÃO (DONO)
			// ------------------------------
			secured.POST("/salon", salonHandler.CreateMySalon)
			secured.GET("/salon", salonHandler.GetMySalon)
			secured.PATCH("/salon", salonHandler.UpdateMySalon)

			secured.GET("/salon/staff", staffHandler.List)
			secured.POST("/salon/staff", staffHandler.Create)
			secured.PATCH("/salon/staff/:id", staffHandler.Update)

			secured.GET("/salon/services", serviceHandler.List)
			secured.POST("/salon/services", serviceHandler.Create)
			secured.PATCH("/salon/services/:id", serviceHandler.Update)

			secured.GET("/salon/working-hours", workingHoursHandler.GetSalonHours)
			secured.PUT("/salon/working-hours", workingHoursHandler.UpdateSalonHours)
			secured.GET("/salon/staff/:id/working-hours", workingHoursHandler.GetStaffHours)
			secured.PUT("/salon/staff/:id/working-hours", workingHoursHandler.UpdateStaffHours)

			secured.GET("/salon/appointments", appointmentHandler.ListForSalon)
			secured.PATCH("/salon/appointments/:id/cancel", appointmentHandler.CancelBySalon)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/no-show", appointmentHandler.MarkNoShow)

			secured.GET("/salon/audit-logs", auditLogsHandler.List)
		}
	}
}
