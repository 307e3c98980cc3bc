package main

import (
	"time"

	"github.com/emrerecber/exportiq360/internal/config"
	"github.com/emrerecber/exportiq360/internal/database"
	"github.com/emrerecber/exportiq360/internal/handlers"
	"github.com/emrerecber/exportiq360/internal/logger"
	"github.com/emrerecber/exportiq360/internal/middleware"
	"github.com/emrerecber/exportiq360/internal/parasut"
	"github.com/emrerecber/exportiq360/internal/services"
	"github.com/emrerecber/exportiq360/internal/ws"

	_ "github.com/emrerecber/exportiq360/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           ExportIQ360 API
// @version         1.0
// @description     E-commerce and e-export readiness assessment platform with AI-generated reports
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := database.Connect(cfg, log)
	database.AutoMigrate(db, log)
	if err := database.SeedQuestions(db, log); err != nil {
		log.Fatal("question seeding failed", "error", err)
	}

	hub := ws.NewHub(log)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	questionService := services.NewQuestionService(db)
	responseService := services.NewResponseService(db)
	scoringService := services.NewScoringService()

	aiService := services.NewAIService(cfg.OpenAIAPIKey, cfg.OpenAIAPIURL,
		time.Duration(cfg.AITimeoutSeconds)*time.Second)
	if !aiService.IsAvailable() {
		log.Warn("OPENAI_API_KEY not set, reports will use fallback content")
	}

	reportService := services.NewReportService(
		scoringService, aiService, services.NewFallbackProvider(), log,
		services.ReportOptions{
			CommentModel:  cfg.CommentModel,
			InsightsModel: cfg.InsightsModel,
			Concurrency:   cfg.AIConcurrency,
		})

	parasutClient := parasut.NewClient(parasut.Config{
		ClientID:     cfg.ParasutClientID,
		ClientSecret: cfg.ParasutClientSecret,
		Username:     cfg.ParasutUsername,
		Password:     cfg.ParasutPassword,
		CompanyID:    cfg.ParasutCompanyID,
	}, log)
	if !parasutClient.IsConfigured() {
		log.Warn("Paraşüt credentials not set, invoicing disabled")
	}

	authHandler := handlers.NewAuthHandler(authService)
	questionHandler := handlers.NewQuestionHandler(questionService, authService)
	responseHandler := handlers.NewResponseHandler(responseService)
	reportHandler := handlers.NewReportHandler(reportService, responseService, questionService, hub, log)
	invoiceHandler := handlers.NewInvoiceHandler(db, parasutClient, authService, log)
	statsHandler := handlers.NewStatsHandler(db)
	healthHandler := handlers.NewHealthHandler(db, aiService.IsAvailable(), parasutClient.IsConfigured())
	wsHandler := handlers.NewWSHandler(hub, cfg.FrontendURL, log)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	allowOrigins := []string{"*"}
	if cfg.FrontendURL != "" {
		allowOrigins = []string{cfg.FrontendURL}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Webhook-Secret"},
		AllowCredentials: true,
	}))

	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/reports/:assessment_id", wsHandler.ReportProgress)

	r.POST("/webhook/payment", middleware.WebhookAuth(cfg.WebhookSecret), invoiceHandler.PaymentWebhook)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
		}

		questions := api.Group("/questions")
		questions.Use(middleware.JWTAuth(authService))
		{
			questions.GET("", questionHandler.List)
		}

		responses := api.Group("/responses")
		responses.Use(middleware.JWTAuth(authService))
		{
			responses.POST("", responseHandler.Save)
			responses.GET("/:assessment_id", responseHandler.Get)
		}

		assessments := api.Group("/assessments")
		assessments.Use(middleware.JWTAuth(authService))
		{
			assessments.GET("", responseHandler.ListAssessments)
		}

		reports := api.Group("/reports")
		reports.Use(middleware.JWTAuth(authService))
		{
			reports.POST("/generate", reportHandler.Generate)
			reports.GET("/:assessment_id", reportHandler.Get)
		}

		invoices := api.Group("/invoices")
		invoices.Use(middleware.JWTAuth(authService))
		{
			invoices.POST("", invoiceHandler.Create)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(authService), middleware.AdminOnly())
		{
			admin.GET("/stats", statsHandler.Get)
		}
	}

	log.Info("server starting", "port", cfg.ServerPort, "env", cfg.AppEnv)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("server exited", "error", err)
	}
}
