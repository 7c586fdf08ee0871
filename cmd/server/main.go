package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"clarifai/internal/auth"
	"clarifai/internal/classifier"
	"clarifai/internal/database"
	"clarifai/internal/factcheck"
	"clarifai/internal/handlers"
	"clarifai/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	dbConfig := database.LoadConfig()
	db, err := database.Connect(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	setupGracefulShutdown(db)
	setupServer(db)
}

func setupGracefulShutdown(db *gorm.DB) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Received shutdown signal, gracefully shutting down...")
		database.Close(db)
		log.Println("Shutdown complete")
		os.Exit(0)
	}()
}

func setupServer(db *gorm.DB) {
	// Set Gin mode based on environment
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Fallback classifier
	clf := classifier.NewOpenAIClassifier(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	verdictService := services.NewVerdictService(db, clf)

	// External fact check aggregation
	searchClient := factcheck.NewClient(os.Getenv("FACTCHECK_BASE_URL"), os.Getenv("FACTCHECK_API_KEY"))
	reportCache := factcheck.NewReportCache(reportCacheTTL())
	reportService := services.NewReportService(searchClient, reportCache)

	// Auth
	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		log.Println("AUTH_SECRET not set, using an insecure development secret")
		secret = "clarifai-dev-secret"
	}
	authService := auth.NewService(secret)

	// Initialize handlers
	factCheckHandler := handlers.NewFactCheckHandler(db, verdictService)
	reportHandler := handlers.NewReportHandler(reportService)
	authHandler := handlers.NewAuthHandler(db, authService)
	feedbackHandler := handlers.NewFeedbackHandler(db)
	docsHandler := handlers.NewDocsHandler()

	// Health check
	r.GET("/health", factCheckHandler.HealthCheck)

	// API routes
	api := r.Group("/api")
	{
		api.POST("/fact-check", factCheckHandler.CheckFact)
		api.GET("/report", reportHandler.GetReport)
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/feedback", authService.Middleware(), feedbackHandler.Submit)
	}

	// Documentation
	r.GET("/docs/:doc", docsHandler.ServeMarkdownAsHTML)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// reportCacheTTL reads REPORT_CACHE_TTL_SECONDS, defaulting to 10 minutes.
func reportCacheTTL() time.Duration {
	if v := os.Getenv("REPORT_CACHE_TTL_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 10 * time.Minute
}
