package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/creatorhub/dashboard-api/internal/authz"
	"github.com/creatorhub/dashboard-api/internal/config"
	"github.com/creatorhub/dashboard-api/internal/constants"
	"github.com/creatorhub/dashboard-api/internal/database"
	"github.com/creatorhub/dashboard-api/internal/handlers"
	"github.com/creatorhub/dashboard-api/internal/middleware"
	"github.com/creatorhub/dashboard-api/internal/repository"
	"github.com/creatorhub/dashboard-api/internal/services"
	"github.com/creatorhub/dashboard-api/internal/sources"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to add indexes: %v", err)
		}
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	articleRepo := repository.NewArticleRepository(db)
	followRepo := repository.NewFollowRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize the polymorphic source allow-list
	locator := sources.NewLocator(articleRepo)

	// Policy knobs come from config, not code
	policy := authz.Policy{
		VideoUploadMinAccountAge: cfg.VideoUploadMinAccountAge,
	}

	// Initialize services and handlers
	authService := services.NewAuthService(userRepo)
	dashboardService := services.NewDashboardService(
		articleRepo, followRepo, subscriptionRepo, orgRepo, userRepo, locator, policy,
	)
	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Creator Dashboard API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Dashboard routes (protected)
		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.RequireAuth(), middleware.LoadActor())
		{
			dashboard.GET("", dashboardHandler.GetDashboard)
			dashboard.GET("/user/:username", dashboardHandler.GetUserDashboard)
			dashboard.GET("/organization/:id", dashboardHandler.GetOrganizationDashboard)
			dashboard.GET("/following/:kind", dashboardHandler.GetFollowing)
			dashboard.GET("/follows", dashboardHandler.GetFollowCounts)
			dashboard.GET("/followers", dashboardHandler.GetFollowers)
			dashboard.GET("/pro", dashboardHandler.GetProDashboard)
			dashboard.GET("/pro/org/:id", dashboardHandler.GetOrgProDashboard)
			dashboard.GET("/subscriptions", dashboardHandler.GetSubscriptions)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
