package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mentordash/internal/config"
	"mentordash/internal/database"
	"mentordash/internal/handlers"
	"mentordash/internal/logger"
	"mentordash/internal/metrics"
	"mentordash/internal/middleware"
	"mentordash/internal/notify"
	"mentordash/internal/services"
	"mentordash/internal/validator"
)

// @title           Mentordash API
// @version         1.0
// @description     Mentordash is a personal mentor dashboard for tracking a financial goal, daily habits, weekly actions, income and expenses, quarterly milestones, skill practice, content plans, and an accountability pod.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize metrics
	metrics.Init()

	// Pod notifications go out by email when a Resend key is configured;
	// otherwise they are logged so local development works without one.
	var notifier notify.Notifier
	if appConfig.ResendAPIKey != "" {
		notifier = notify.NewEmailNotifier(appConfig.ResendAPIKey, appConfig.PodFromEmail)
	} else {
		log.Warn("RESEND_API_KEY not set, pod notifications will only be logged")
		notifier = notify.NewLogNotifier()
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	goalService := services.NewGoalService(db)
	habitService := services.NewHabitService(db)
	actionService := services.NewActionService(db)
	transactionService := services.NewTransactionService(db)
	milestoneService := services.NewMilestoneService(db)
	skillService := services.NewSkillService(db)
	postService := services.NewPostService(db)
	podService := services.NewPodService(db, notifier)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	goalHandler := handlers.NewGoalHandler(goalService)
	habitHandler := handlers.NewHabitHandler(habitService)
	actionHandler := handlers.NewActionHandler(actionService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	milestoneHandler := handlers.NewMilestoneHandler(milestoneService)
	skillHandler := handlers.NewSkillHandler(skillService)
	postHandler := handlers.NewPostHandler(postService)
	podHandler := handlers.NewPodHandler(podService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(metrics.Middleware())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", metrics.Handler())

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Financial goal routes
	protected.GET("/goal", goalHandler.GetGoal)
	protected.PUT("/goal", goalHandler.SetGoal)

	// Habit routes
	habits := protected.Group("/habits")
	habits.POST("", habitHandler.CreateHabit)
	habits.GET("", habitHandler.GetHabits)
	habits.POST("/:id/check", habitHandler.CheckIn)
	habits.PUT("/:id", habitHandler.RenameHabit)
	habits.DELETE("/:id", habitHandler.DeleteHabit)

	// Weekly action routes
	actions := protected.Group("/actions")
	actions.POST("", actionHandler.CreateAction)
	actions.GET("", actionHandler.GetActions)
	actions.PUT("/:id", actionHandler.UpdateAction)
	actions.POST("/:id/toggle", actionHandler.ToggleAction)
	actions.DELETE("/:id", actionHandler.DeleteAction)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/summary", transactionHandler.GetSummary)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Milestone routes
	milestones := protected.Group("/milestones")
	milestones.POST("", milestoneHandler.CreateMilestone)
	milestones.GET("", milestoneHandler.GetMilestones)
	milestones.PUT("/:id", milestoneHandler.UpdateMilestone)
	milestones.DELETE("/:id", milestoneHandler.DeleteMilestone)

	// Skill and time log routes
	skills := protected.Group("/skills")
	skills.POST("", skillHandler.CreateSkill)
	skills.GET("", skillHandler.GetSkills)
	skills.GET("/logs", skillHandler.GetLogs)
	skills.GET("/time", skillHandler.GetTimeTotals)
	skills.DELETE("/logs/:id", skillHandler.DeleteLog)
	skills.POST("/:id/logs", skillHandler.LogTime)
	skills.PUT("/:id", skillHandler.RenameSkill)
	skills.DELETE("/:id", skillHandler.DeleteSkill)

	// Social post routes
	posts := protected.Group("/posts")
	posts.POST("", postHandler.CreatePost)
	posts.GET("", postHandler.GetPosts)
	posts.PUT("/:id", postHandler.UpdatePost)
	posts.DELETE("/:id", postHandler.DeletePost)

	// Accountability pod routes
	pod := protected.Group("/pod")
	pod.POST("/members", podHandler.AddMember)
	pod.GET("/members", podHandler.GetMembers)
	pod.DELETE("/members/:id", podHandler.RemoveMember)
	pod.POST("/members/:id/nudge", podHandler.Nudge)
	pod.POST("/invite", podHandler.Invite)

	log.Infof("Starting Mentordash backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
