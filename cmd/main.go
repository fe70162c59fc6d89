package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"resumatch/database"
	"resumatch/internal/cache"
	"resumatch/internal/controllers"
	"resumatch/internal/middleware"
	"resumatch/internal/repository"
	"resumatch/internal/services"
	"resumatch/internal/utils"
	"resumatch/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	if os.Getenv("JWT_SECRET_KEY") == "" {
		log.Fatal("JWT_SECRET_KEY must be set")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database.DB)
	verificationRepo := repository.NewVerificationRepository(database.DB)
	resetRepo := repository.NewResetPasswordRepository(database.DB)
	resumeRepo := repository.NewResumeRepository(database.DB)
	jobRepo := repository.NewJobRepository(database.DB)
	notificationRepo := repository.NewNotificationRepository(database.DB)
	activityRepo := repository.NewActivityRepository(database.DB)
	generatedRepo := repository.NewGeneratedResumeRepository(database.DB)

	// Failed-login counts live in Redis when available so the
	// forgot-password hint survives restarts; otherwise in process memory.
	attempts, err := cache.NewRedisAttemptStore()
	if err != nil {
		log.Printf("Redis unavailable (%v), using in-memory login attempt counter", err)
		attempts = cache.NewMemoryAttemptStore()
	}

	mailer := utils.NewSMTPMailer(utils.LoadMailConfig())
	authConfig := controllers.LoadAuthConfig()

	cleanupInterval := time.Duration(utils.GetEnvInt("CODE_CLEANUP_INTERVAL_MINUTES", 30)) * time.Minute
	cleanupWorker := services.NewCleanupWorker(verificationRepo, resetRepo, cleanupInterval)
	cleanupWorker.Start()
	defer cleanupWorker.Stop()

	authController := controllers.NewAuthController(
		userRepo, verificationRepo, resetRepo, activityRepo, attempts, mailer, authConfig)
	resumeController := controllers.NewResumeController(
		resumeRepo, userRepo, notificationRepo, activityRepo)
	jobController := controllers.NewJobController(jobRepo, resumeRepo)
	notificationController := controllers.NewNotificationController(notificationRepo)
	dashboardController := controllers.NewDashboardController(
		userRepo, resumeRepo, jobRepo, notificationRepo, activityRepo)
	generatedController := controllers.NewGeneratedResumeController(generatedRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware(), gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":    "Resumatch API is running",
			"version":    "1.0.0",
			"status":     "healthy",
			"request_id": middleware.RequestIDFromContext(c),
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterResumeRoutes(router, resumeController)
	routes.RegisterJobRoutes(router, jobController)
	routes.RegisterNotificationRoutes(router, notificationController)
	routes.RegisterDashboardRoutes(router, dashboardController)
	routes.RegisterGeneratedResumeRoutes(router, generatedController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
