package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"finwise/internal/config"
	"finwise/internal/database"
	"finwise/internal/events"
	"finwise/internal/genai"
	"finwise/internal/handlers"
	"finwise/internal/logger"
	"finwise/internal/mailer"
	"finwise/internal/marketdata"
	"finwise/internal/middleware"
	"finwise/internal/services"
	"finwise/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finwise/internal/docs" // Import swagger docs
)

// @title           Finwise API
// @version         1.0
// @description     Finwise tracks budgets and expenses, charts spending over named time ranges, projects savings against a goal and keeps a stock watch-list.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const marketDataTimeout = 10 * time.Second

func main() {
	appConfig, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()

	if err := run(appConfig); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(appConfig *config.Config) error {
	log := logger.Get()

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	publisher, err := newPublisher(appConfig)
	if err != nil {
		return err
	}
	defer publisher.Close()

	generator, err := newGenerator(appConfig)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: marketDataTimeout}
	quotes := marketdata.NewAlphaVantageClient(httpClient, appConfig.AlphaVantageAPIKey)
	news := marketdata.NewFinnhubClient(httpClient, appConfig.FinnhubAPIKey)

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db, mailer.LogMailer{}, services.UserSettings{
		VerifyCodeTTL:   appConfig.VerifyCodeExpDur,
		MaxFailedLogins: appConfig.MaxFailedLogins,
		LockDuration:    appConfig.LoginLockDuration,
	})
	auditService := services.NewAuditService(db)
	grouper := services.NewExpenseGrouper(db)
	analyticsService := services.NewAnalyticsService(db, grouper)
	budgetService := services.NewBudgetService(db)
	expenseService := services.NewExpenseService(db, publisher)
	dashboardService := services.NewDashboardService(db, grouper, analyticsService)
	saveGoalService := services.NewSaveGoalService(db, analyticsService)
	notificationService := services.NewNotificationService(db)
	stockService := services.NewStockService(db, quotes, news)
	feedbackService := services.NewFeedbackService(db, analyticsService, generator)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	saveGoalHandler := handlers.NewSaveGoalHandler(saveGoalService, auditService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	stockHandler := handlers.NewStockHandler(stockService, auditService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	validator.Register()
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(appConfig.CORSAllowedOrigins))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/verify", authHandler.Verify)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile", authHandler.UpdateProfile)
	protected.PUT("/profile/password", authHandler.ChangePassword)

	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudget)
	budgets.GET("/latest", budgetHandler.GetLatestCategories)
	budgets.POST("/categories", budgetHandler.AddCategory)
	budgets.PUT("/categories/:name/reset", budgetHandler.ResetCategory)
	budgets.DELETE("/categories/:name", budgetHandler.DeleteCategory)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/bar-chart", dashboardHandler.GetBarChart)
	dashboard.GET("/line-chart", dashboardHandler.GetLineChart)
	dashboard.GET("/pie-chart", dashboardHandler.GetPieChart)
	dashboard.GET("/stat", dashboardHandler.GetStat)
	dashboard.GET("/features", dashboardHandler.GetFeatures)

	saveGoal := protected.Group("/save-goal")
	saveGoal.POST("", saveGoalHandler.SetGoal)
	saveGoal.GET("", saveGoalHandler.GetGoal)
	saveGoal.PUT("/reset", saveGoalHandler.ResetGoal)

	protected.GET("/notifications", notificationHandler.GetNotifications)

	stocks := protected.Group("/stocks")
	stocks.POST("", stockHandler.AddStock)
	stocks.GET("", stockHandler.GetStocks)
	stocks.GET("/news", stockHandler.GetNews)
	stocks.GET("/market-trends", stockHandler.GetMarketTrends)
	stocks.DELETE("/:symbol", stockHandler.RemoveStock)
	stocks.GET("/:symbol/intraday", stockHandler.GetIntraday)

	protected.POST("/feedback", feedbackHandler.GenerateFeedback)

	log.Infof("Starting Finwise backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// newPublisher connects to the broker when AMQP_URL is set and falls back to
// logging events otherwise.
func newPublisher(appConfig *config.Config) (events.Publisher, error) {
	if appConfig.AMQPURL == "" {
		logger.Get().Info("AMQP_URL not set, domain events will only be logged")
		return events.LogPublisher{}, nil
	}
	p, err := events.NewAMQPPublisher(appConfig.AMQPURL, appConfig.AMQPExchange)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to message broker: %w", err)
	}
	return p, nil
}

// newGenerator returns nil, which disables feedback, when no Gemini key is configured.
func newGenerator(appConfig *config.Config) (genai.Generator, error) {
	if appConfig.GeminiAPIKey == "" {
		logger.Get().Warn("GEMINI_API_KEY not set, feedback generation is disabled")
		return nil, nil
	}
	client, err := genai.NewGeminiClient(context.Background(), appConfig.GeminiAPIKey, appConfig.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}
