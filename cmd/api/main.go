package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"cvmatch/cv-job-match/internal/config"
	"cvmatch/cv-job-match/internal/handlers"
	"cvmatch/cv-job-match/internal/logger"
	"cvmatch/cv-job-match/internal/services"
	"cvmatch/cv-job-match/internal/web"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Logger.Level, cfg.Logger.Format)
	log.Info().Str("env", cfg.Server.Env).Msg("config loaded")

	if cfg.Gemini.APIKey == "" {
		log.Fatal().Msg("GEMINI_API_KEY is required")
	}

	// Initialize Gemini AI
	ctx := context.Background()
	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Temperature)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Gemini AI")
	}
	log.Info().Str("model", cfg.Gemini.Model).Msg("Gemini AI initialized")

	// Initialize services
	analyzer := services.NewActionService(services.NewAnalyzerService(geminiService))
	extractor := services.NewTextExtractorService()
	submissionService := services.NewSubmissionService(analyzer, extractor)
	log.Info().Msg("services initialized")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzer)
	submissionHandler := handlers.NewSubmissionHandler(
		submissionService,
		cfg.Upload.MaxFileSize,
		cfg.Upload.MinJobDescChars,
	)

	// Create Fiber app. Body limit leaves headroom above the file cap for
	// the multipart envelope and the job description field.
	app := fiber.New(fiber.Config{
		AppName:      "CV Job Match Analyzer API",
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + 1<<20,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze-cv", analyzeHandler.HandleAnalyzeCv)
	api.Post("/analyze-job", analyzeHandler.HandleAnalyzeJob)
	api.Post("/match", analyzeHandler.HandleMatch)
	api.Post("/submissions", submissionHandler.HandleSubmit)

	// Submission form
	app.Get("/", web.Handler())

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
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
