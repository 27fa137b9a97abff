package main

import (
	"log"
	"time"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/config"
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/database"
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/handlers"
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/middleware"
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/services"
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.SyncLogger()

	// Initialize database
	db, err := database.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Get underlying SQL DB instance and configure the connection pool
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Initialize Redis cache (optional - caching is skipped when unset)
	cache, err := services.NewCache(cfg.Redis.URL)
	if err != nil {
		log.Printf("Redis cache warning: %v", err)
	}

	// Initialize Storage (S3 or local fallback)
	storage, err := services.NewStorage()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize WebSocket hub for the admin live feed
	hub := services.NewHub()
	go hub.Run()

	mailer := utils.NewMailer(cfg.SMTP)

	bookingService := services.NewBookingService(db, hub)
	ratingService := services.NewRatingService(db, cache)
	reminderService := services.NewReminderService(db, mailer, cfg.Reminder.DaysInAdvance)
	aiService := services.NewAIService(cfg.AI, db, cache)

	// Initialize router
	r := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Serve locally stored uploads
	r.Static("/uploads", "./uploads")

	// Auth and profile routes
	r.POST("/register", handlers.Register(db))
	r.POST("/adminRegister", handlers.Register(db))
	r.POST("/login", handlers.Login(db, cfg.JWT.Secret))
	r.GET("/profile/:email", handlers.GetProfile(db))
	r.PUT("/updateProfile", handlers.UpdateProfile(db))
	r.GET("/users", handlers.GetAllUsers(db))
	r.DELETE("/delete/:id", handlers.DeleteUser(db))

	// Booking routes
	r.POST("/booking", handlers.CreateBooking(bookingService))
	r.GET("/mybookings/:email", handlers.GetMyBookings(bookingService))
	r.GET("/bookings", handlers.GetAllBookings(bookingService))
	r.PUT("/bookings/:id/status", handlers.UpdateBookingStatus(bookingService))
	r.PUT("/booking/payment/:id", handlers.MarkPaid(bookingService))
	r.GET("/payments/:email", handlers.GetPaymentsForUser(db))

	// Rating routes
	ratings := r.Group("/ratings")
	{
		ratings.POST("", handlers.AddRating(ratingService))
		ratings.GET("", handlers.GetAllRatings(ratingService))
		ratings.GET("/planner/:plannerId", handlers.GetRatingsByPlanner(ratingService))
		ratings.GET("/planner/:plannerId/average", handlers.GetAverageRating(ratingService))
		ratings.GET("/user/:userEmail", handlers.GetRatingsByUser(ratingService))
	}

	// Planner routes
	planners := r.Group("/planners")
	{
		planners.POST("", handlers.CreatePlanner(db))
		planners.GET("", handlers.GetPlanners(db))
		planners.PUT("/:id", handlers.UpdatePlanner(db))
		planners.DELETE("/:id", handlers.DeletePlanner(db))
		planners.POST("/:id/photo", handlers.UploadPlannerPhoto(db, storage))
	}

	// Event routes
	events := r.Group("/events")
	{
		events.POST("", handlers.CreateEvent(db))
		events.GET("", handlers.GetEvents(db))
		events.PUT("/:id", handlers.UpdateEvent(db))
		events.DELETE("/:id", handlers.DeleteEvent(db))
		events.GET("/byPlanner/:plannerId", handlers.GetEventsByPlanner(db))
		events.POST("/:id/image", handlers.UploadEventImage(db, storage))
	}

	// Enquiry routes
	r.POST("/enquiry", handlers.CreateEnquiry(db))
	r.GET("/enquiries", handlers.GetAllEnquiries(db))
	r.GET("/enquiries/:email", handlers.GetUserEnquiries(db))
	r.PUT("/enquiries/:id/reply", handlers.ReplyToEnquiry(db))

	api := r.Group("/api")
	{
		// AI routes
		ai := api.Group("/ai")
		{
			ai.POST("/recommend", handlers.RecommendPlanners(aiService))
			ai.POST("/predict-budget", handlers.PredictBudget(aiService))
		}

		// Admin live feed
		api.GET("/ws", middleware.AuthMiddleware(cfg.JWT.Secret), handlers.WebSocketHandler(hub))

		// Protected admin routes
		admin := api.Group("/admin", middleware.AuthMiddleware(cfg.JWT.Secret))
		{
			bookings := admin.Group("/bookings")
			{
				bookings.POST("/send-reminders", handlers.SendAllReminders(reminderService))
				bookings.POST("/reminder/:id/send", handlers.SendReminderByID(reminderService))
				bookings.PUT("/reminder/:id/reset", handlers.ResetReminderStatus(reminderService))
			}
		}

		analytics := api.Group("/analytics", middleware.AuthMiddleware(cfg.JWT.Secret))
		{
			analytics.GET("/overview", handlers.GetAnalyticsOverview(bookingService))
			analytics.POST("/remind/:bookingId", handlers.SendBookingReminderNow(db, mailer))
			analytics.POST("/send-to-planner/:bookingId", handlers.SendBookingToPlanner(db, mailer))
			analytics.POST("/generate-description", handlers.GenerateEventDescription(aiService))
		}
	}

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
