package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"hireflow/resume-intake/internal/config"
	"hireflow/resume-intake/internal/handlers"
	"hireflow/resume-intake/internal/repositories"
	"hireflow/resume-intake/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	candidateRepo := repositories.NewCandidateRepository(db)
	requestRepo := repositories.NewDocumentRequestRepository(db)
	submissionRepo := repositories.NewDocumentSubmissionRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Server.BaseURL)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	textService := services.NewResumeTextService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI. Without an API key the extraction capabilities
	// run on their deterministic fallbacks.
	var geminiService services.GeminiService
	if cfg.Gemini.APIKey != "" {
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("⚠️ GEMINI_API_KEY not set, using fallback extraction")
	}

	dataExtractor := services.NewResumeDataExtractor(geminiService)
	messageGenerator := services.NewDocumentRequestGenerator(geminiService)

	candidateService := services.NewCandidateService(
		candidateRepo,
		requestRepo,
		submissionRepo,
		textService,
		dataExtractor,
		messageGenerator,
		emailService,
		storageService,
	)
	log.Println("✅ Candidate service initialized")

	// Initialize handlers
	candidateHandler := handlers.NewCandidateHandler(candidateService, cfg.Storage.MaxFileSize)
	documentHandler := handlers.NewDocumentHandler(candidateService, cfg.Storage.MaxFileSize)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Intake API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Stored uploads are served for the presentation layer
	app.Static("/uploads", cfg.Storage.UploadPath)

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/candidates/upload", candidateHandler.HandleUpload)
	api.Get("/candidates", candidateHandler.HandleList)
	api.Get("/candidates/:id", candidateHandler.HandleDetail)
	api.Post("/candidates/:id/request-documents", documentHandler.HandleRequestDocuments)
	api.Post("/candidates/:id/submit-document", documentHandler.HandleSubmitDocument)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Intake API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/candidates/upload",
				"GET /api/v1/candidates",
				"GET /api/v1/candidates/:id",
				"POST /api/v1/candidates/:id/request-documents",
				"POST /api/v1/candidates/:id/submit-document",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
