package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-pto/config"
	_ "smart-pto/docs" // Swagger docs
	"smart-pto/internal/bootstrap"
	"smart-pto/internal/httpserver"
)

// @title       SmartPTO API
// @description PTO balance and recommendations, plus mailbox-driven PTO suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := bootstrap.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SmartPTO...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Mail provider: %s", cfg.Mail.Provider)

	// 3. Collaborators
	parser := bootstrap.NewParser(ctx, logger, cfg)
	llm := bootstrap.NewLLM(ctx, logger, cfg)
	mailRepo, closeMail := bootstrap.NewMailRepository(ctx, logger, cfg)
	defer closeMail()
	ptoRepo := bootstrap.NewPTORepository(ctx, logger, cfg)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		LLM:             llm,
		Parser:          parser,
		PTORepo:         ptoRepo,
		MailRepo:        mailRepo,
		AnalyzerConfig:  bootstrap.AnalyzerConfig(cfg),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
