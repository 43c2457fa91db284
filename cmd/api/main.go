package main

import (
	"context"
	"log"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/auth"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/config"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/database"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/handlers"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/mailer"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/payments"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/services"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/video"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. External Collaborators
	resendMailer := mailer.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom)
	pesapal := payments.NewClient(cfg.PesapalBaseURL, cfg.PesapalConsumerKey, cfg.PesapalConsumerSecret)

	var videoService *video.Service
	if cfg.YouTubeAPIKey != "" {
		var err error
		videoService, err = video.NewService(context.Background(), cfg.YouTubeAPIKey, cfg.YouTubeChannelID)
		if err != nil {
			log.Printf("⚠️ YouTube service unavailable: %v", err)
		} else {
			log.Println("✅ YouTube service connected")
		}
	}

	// 4. Admin Auth
	authManager := auth.NewManager(db, cfg.JWTSecret)
	if err := authManager.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to seed admin account:", err)
	}

	// 5. Core Services
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db, resendMailer)
	statusService := services.NewStatusService(db, resendMailer)
	notifyService := services.NewNotifyService(db, resendMailer)
	contactService := services.NewContactService(db)

	// 6. Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, statusService, notifyService)
	contactHandler := handlers.NewContactHandler(contactService)
	paymentHandler := handlers.NewPaymentHandler(pesapal, cfg.PesapalCallbackURL)
	videoHandler := handlers.NewVideoHandler(videoService)
	adminHandler := handlers.NewAdminHandler(authManager)

	// 7. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 8. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/jobs", jobHandler.ListJobs)
		api.GET("/jobs/:id", jobHandler.GetJob)

		api.POST("/applications", applicationHandler.Submit)
		api.POST("/contact", contactHandler.Submit)

		api.GET("/youtube", videoHandler.List)
		api.GET("/youtube/:id", videoHandler.Get)

		api.POST("/payments/initiate", paymentHandler.Initiate)
		api.POST("/verify-payment", paymentHandler.Verify)

		api.POST("/admin/login", adminHandler.Login)

		admin := api.Group("/admin", authManager.RequireAdmin())
		{
			admin.POST("/logout", adminHandler.Logout)
			admin.GET("/applications", applicationHandler.ListAll)
			admin.PATCH("/applications/:id/status", applicationHandler.UpdateStatus)
			admin.POST("/notify/resend-all", applicationHandler.ResendAll)
			admin.GET("/contacts", contactHandler.List)
			admin.PATCH("/contacts/:id/read", contactHandler.MarkRead)
			admin.POST("/jobs", jobHandler.CreateJob)
			admin.PUT("/jobs/:id", jobHandler.UpdateJob)
			admin.DELETE("/jobs/:id", jobHandler.DeleteJob)
		}
	}

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
