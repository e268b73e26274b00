package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopco/petshop-backend/internal/audit"
	"github.com/petshopco/petshop-backend/internal/cache"
	"github.com/petshopco/petshop-backend/internal/config"
	"github.com/petshopco/petshop-backend/internal/handlers"
	infraRepo "github.com/petshopco/petshop-backend/internal/infra/repository"
	"github.com/petshopco/petshop-backend/internal/middleware"
	"github.com/petshopco/petshop-backend/internal/storage"
	ucAppointment "github.com/petshopco/petshop-backend/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	catalog := cache.NewCatalog(cache.NewClient(cfg))

	uploader := storage.NewUploader(storage.UploaderConfig{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Bucket:          cfg.S3Bucket,
		PublicBaseURL:   cfg.S3PublicBaseURL,
	})

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listUC := ucAppointment.NewListUserAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		cfg.Timezone,
		availabilityUC,
		bookUC,
		updateUC,
		cancelUC,
		listUC,
	)

	serviceHandler := handlers.NewServiceHandler(db, catalog)
	vetHandler := handlers.NewVeterinarianHandler(db, catalog)
	scheduleHandler := handlers.NewScheduleHandler(db)
	petHandler := handlers.NewPetHandler(db, uploader)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC CATALOG + AVAILABILITY
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/veterinarians", vetHandler.List)
		api.GET(
			"/veterinarians/available",
			middleware.RateLimitMiddleware(),
			appointmentHandler.Availability,
		)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/pets", petHandler.Create)
			secured.POST("/pets/:id/photo", petHandler.UploadPhoto)
			secured.GET("/user/pets", petHandler.ListForUser)

			secured.POST("/book", appointmentHandler.Book)
			secured.GET("/user/appointments", appointmentHandler.ListForUser)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Cancel)

			// ------------------------------
			// ADMIN CATALOG
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				admin.POST("/veterinarians", vetHandler.Create)
				admin.PATCH("/veterinarians/:id", vetHandler.Update)

				admin.GET("/veterinarians/:id/schedules", scheduleHandler.Get)
				admin.PUT("/veterinarians/:id/schedules", scheduleHandler.Update)
			}
		}
	}
}
