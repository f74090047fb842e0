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

	"github.com/tarun0648/Resume-Analyser/internal/config"
	"github.com/tarun0648/Resume-Analyser/internal/handlers"
	"github.com/tarun0648/Resume-Analyser/internal/repositories"
	"github.com/tarun0648/Resume-Analyser/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	sessionRepo := repositories.NewSessionRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.ArchivePath)
	if err := storageService.EnsureDirs(); err != nil {
		log.Fatalf("❌ Failed to create storage directories: %v", err)
	}

	pdfParser := services.NewPDFParserService()

	claudeClient := services.NewClaudeClient(cfg.Claude.APIKey, cfg.Claude.BaseURL, cfg.Claude.Timeout)
	log.Println("✅ Claude client initialized successfully")

	verifier := services.NewDocumentVerifier(claudeClient)
	extractor := services.NewStructuredExtractor(claudeClient)
	questionGenerator := services.NewQuestionGenerator(claudeClient)
	matchScorer := services.NewMatchScorer(claudeClient)

	pipeline := services.NewPipeline(
		sessionRepo,
		verifier,
		extractor,
		questionGenerator,
		matchScorer,
		cfg.Pipeline.BatchConcurrency,
	)
	log.Println("✅ Pipeline initialized")

	// Start cleanup worker for abandoned uploads
	cleanupWorker := services.NewCleanupWorker(cfg.Storage.UploadPath, cfg.Pipeline.UploadRetention)
	cleanupWorker.Start()

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(sessionRepo, storageService, pdfParser, pipeline, cfg.Storage.MaxFileSize)
	resultHandler := handlers.NewResultHandler(sessionRepo, storageService)
	reportHandler := handlers.NewReportHandler(sessionRepo)
	batchHandler := handlers.NewBatchHandler(sessionRepo, storageService, pdfParser, pipeline, cfg.Storage.MaxFileSize)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyser API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    int(cfg.Storage.MaxFileSize) * 4,
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

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/upload-resume", uploadHandler.HandleUpload)
	api.Post("/batch-upload", batchHandler.HandleBatchUpload)
	api.Get("/resumes", resultHandler.HandleListResumes)
	api.Get("/resumes/:id", resultHandler.HandleGetResume)
	api.Get("/resumes/:id/status", resultHandler.HandleGetStatus)
	api.Delete("/resumes/:id", resultHandler.HandleDeleteResume)
	api.Post("/resumes/:id/report", reportHandler.HandleGenerateReport)

	// Archived resume files
	app.Static("/files", cfg.Storage.ArchivePath)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyser API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload-resume",
				"POST /api/v1/batch-upload",
				"GET /api/v1/resumes",
				"GET /api/v1/resumes/:id",
				"GET /api/v1/resumes/:id/status",
				"DELETE /api/v1/resumes/:id",
				"POST /api/v1/resumes/:id/report",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		cleanupWorker.Stop()
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
