package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-management-backend/internal/config"
	"hospital-management-backend/internal/database"
	"hospital-management-backend/internal/handler"
	"hospital-management-backend/internal/middleware"
	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	staffRepo := repository.NewStaffRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	admissionRepo := repository.NewAdmissionRepo(db)
	procedureRepo := repository.NewProcedureRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	medicineRepo := repository.NewMedicineRepo(db)
	prescriptionRepo := repository.NewPrescriptionRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	predictionRepo := repository.NewPredictionRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo)
	patientService := service.NewPatientService(patientRepo, admissionRepo)
	staffService := service.NewStaffService(staffRepo, userRepo)
	roomService := service.NewRoomService(roomRepo, admissionRepo)
	admissionService := service.NewAdmissionService(admissionRepo, roomRepo, patientRepo, staffRepo, procedureRepo, auditRepo)
	procedureService := service.NewProcedureService(procedureRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, staffRepo, procedureRepo)
	pharmacyService := service.NewPharmacyService(medicineRepo, prescriptionRepo, patientRepo, staffRepo, admissionRepo, appointmentRepo, auditRepo)
	billingService := service.NewBillingService(paymentRepo, patientRepo, admissionRepo, appointmentRepo, procedureRepo, prescriptionRepo, auditRepo)
	riskClient := service.NewRiskModelClient(cfg.RiskModel.URL, cfg.RiskModel.Timeout)
	predictionService := service.NewPredictionService(riskClient, patientRepo, predictionRepo, auditRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, userRepo, auditRepo)
	dashboardService := service.NewDashboardService(patientRepo, admissionRepo, roomRepo, prescriptionRepo, paymentRepo, medicineRepo, auditRepo)
	workerService := service.NewWorkerService(medicineRepo, auditRepo, cfg.Worker.SweepInterval)

	// 6. Start background worker in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workerService.Start(ctx)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	patientHandler := handler.NewPatientHandler(patientService)
	staffHandler := handler.NewStaffHandler(staffService)
	roomHandler := handler.NewRoomHandler(roomService)
	admissionHandler := handler.NewAdmissionHandler(admissionService)
	procedureHandler := handler.NewProcedureHandler(procedureService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	pharmacyHandler := handler.NewPharmacyHandler(pharmacyService)
	billingHandler := handler.NewBillingHandler(billingService)
	predictionHandler := handler.NewPredictionHandler(predictionService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	clinical := []string{models.RoleAdmin, models.RoleDoctor, models.RoleNurse, models.RoleStaff}
	pharmacy := []string{models.RoleAdmin, models.RolePharmacyStaff}

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-management-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())

	// Patient routes
	patients := api.Group("/patients")
	patients.Use(middleware.RequireRoles(clinical...))
	{
		patients.GET("", patientHandler.GetPatients)
		patients.GET("/admittable", patientHandler.GetAdmittablePatients)
		patients.GET("/:id", patientHandler.GetPatient)
		patients.POST("", patientHandler.CreatePatient)
		patients.PUT("/:id", patientHandler.UpdatePatient)
		patients.POST("/:id/archive", patientHandler.ArchivePatient)
		patients.POST("/:id/restore", patientHandler.RestorePatient)
		patients.GET("/:id/prescriptions", pharmacyHandler.GetPatientPrescriptions)
		patients.POST("/:id/predict", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), predictionHandler.Predict)
		patients.GET("/:id/predictions", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), predictionHandler.GetHistory)
	}

	// Staff management (admin only)
	staff := api.Group("/staff")
	staff.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		staff.GET("/doctors", staffHandler.GetDoctors)
		staff.POST("/doctors", staffHandler.CreateDoctor)
		staff.POST("/doctors/:id/archive", staffHandler.ArchiveDoctor)
		staff.POST("/doctors/:id/restore", staffHandler.RestoreDoctor)
		staff.GET("/nurses", staffHandler.GetNurses)
		staff.POST("/nurses", staffHandler.CreateNurse)
		staff.POST("/nurses/:id/archive", staffHandler.ArchiveNurse)
		staff.POST("/nurses/:id/restore", staffHandler.RestoreNurse)
		staff.POST("/pharmacy", staffHandler.CreatePharmacyStaff)
	}

	// Room routes
	rooms := api.Group("/rooms")
	rooms.Use(middleware.RequireRoles(clinical...))
	{
		rooms.GET("", roomHandler.GetRooms)
		rooms.GET("/:id", roomHandler.GetRoom)
		rooms.POST("", middleware.RequireRoles(models.RoleAdmin), roomHandler.CreateRoom)
		rooms.PUT("/:id", middleware.RequireRoles(models.RoleAdmin), roomHandler.UpdateRoom)
		rooms.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), roomHandler.DeleteRoom)
	}

	// Admission routes
	admissions := api.Group("/admissions")
	admissions.Use(middleware.RequireRoles(clinical...))
	{
		admissions.GET("", admissionHandler.GetAdmissions)
		admissions.GET("/:id", admissionHandler.GetAdmission)
		admissions.POST("", admissionHandler.CreateAdmission)
		admissions.PATCH("/:id", admissionHandler.UpdateAdmission)
		admissions.POST("/:id/room", admissionHandler.AssignRoom)
		admissions.POST("/:id/procedures", admissionHandler.AddProcedures)
	}

	// Procedure catalog
	procedures := api.Group("/procedures")
	procedures.Use(middleware.RequireRoles(clinical...))
	{
		procedures.GET("", procedureHandler.GetProcedures)
		procedures.GET("/:id", procedureHandler.GetProcedure)
		procedures.POST("", middleware.RequireRoles(models.RoleAdmin), procedureHandler.CreateProcedure)
		procedures.PUT("/:id", middleware.RequireRoles(models.RoleAdmin), procedureHandler.UpdateProcedure)
	}

	// Appointment routes
	appointments := api.Group("/appointments")
	appointments.Use(middleware.RequireRoles(clinical...))
	{
		appointments.GET("", appointmentHandler.GetAppointments)
		appointments.GET("/:id", appointmentHandler.GetAppointment)
		appointments.POST("", appointmentHandler.CreateAppointment)
		appointments.PATCH("/:id/status", appointmentHandler.UpdateStatus)
		appointments.POST("/:id/procedures", appointmentHandler.AddProcedures)
	}

	// Pharmacy routes
	medicines := api.Group("/medicines")
	medicines.Use(middleware.RequireRoles(pharmacy...))
	{
		medicines.GET("", pharmacyHandler.GetMedicines)
		medicines.GET("/low-stock", pharmacyHandler.GetLowStockMedicines)
		medicines.GET("/:id", pharmacyHandler.GetMedicine)
		medicines.POST("", pharmacyHandler.CreateMedicine)
		medicines.PUT("/:id", pharmacyHandler.UpdateMedicine)
	}

	prescriptions := api.Group("/prescriptions")
	{
		prescriptions.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), pharmacyHandler.CreatePrescription)
		prescriptions.GET("/pending", middleware.RequireRoles(pharmacy...), pharmacyHandler.GetPendingPrescriptions)
		prescriptions.GET("/:id", pharmacyHandler.GetPrescription)
		prescriptions.POST("/items/:itemId/dispense", middleware.RequireRoles(pharmacy...), pharmacyHandler.DispenseItem)
		prescriptions.POST("/:id/cancel", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), pharmacyHandler.CancelPrescription)
	}

	// Billing routes
	payments := api.Group("/payments")
	payments.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleStaff))
	{
		payments.POST("/preview", billingHandler.PreviewPayment)
		payments.POST("", billingHandler.CreatePayment)
		payments.GET("", billingHandler.GetPayments)
		payments.GET("/:id", billingHandler.GetPayment)
	}

	// Schedule routes
	schedules := api.Group("/schedules")
	{
		schedules.GET("", scheduleHandler.GetSchedules)
		schedules.POST("", middleware.RequireRoles(models.RoleAdmin), scheduleHandler.CreateSchedule)
		schedules.PUT("/:id", middleware.RequireRoles(models.RoleAdmin), scheduleHandler.UpdateSchedule)
		schedules.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), scheduleHandler.DeleteSchedule)
		schedules.POST("/swap-requests", scheduleHandler.CreateSwapRequest)
		schedules.GET("/swap-requests", scheduleHandler.GetSwapRequests)
		schedules.POST("/swap-requests/:id/review", middleware.RequireRoles(models.RoleAdmin), scheduleHandler.ReviewSwapRequest)
		schedules.POST("/unavailability", scheduleHandler.CreateUnavailabilityRequest)
		schedules.GET("/unavailability", scheduleHandler.GetUnavailabilityRequests)
		schedules.POST("/unavailability/:id/review", middleware.RequireRoles(models.RoleAdmin), scheduleHandler.ReviewUnavailabilityRequest)
	}

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.Use(middleware.RequireRoles(clinical...))
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
		dashboard.GET("/activity", middleware.RequireRoles(models.RoleAdmin), dashboardHandler.GetRecentActivity)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}
