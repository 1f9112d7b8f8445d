package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/rajtraders/cashmemo-api/internal/application/service"
	"github.com/rajtraders/cashmemo-api/internal/config"
	"github.com/rajtraders/cashmemo-api/internal/infrastructure/repository"
	"github.com/rajtraders/cashmemo-api/internal/presentation/http/handler"
	"github.com/rajtraders/cashmemo-api/internal/presentation/http/routes"
	"github.com/rajtraders/cashmemo-api/pkg/pdf"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the ledger document and load it into memory. A corrupt document is
	// fatal on purpose: starting with a silently empty ledger would hide data
	// loss from the user.
	ledgerRepo := repository.NewFileLedgerRepository(cfg.Ledger.Path)
	ledgerService := service.NewLedgerService(ledgerRepo)
	if err := ledgerService.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load ledger from %s: %v", cfg.Ledger.Path, err)
	}
	log.Printf("Loaded %d memos from %s", len(ledgerService.All()), cfg.Ledger.Path)

	// Initialize services
	draftService := service.NewDraftService(ledgerService)
	reportService := service.NewReportService(ledgerService)

	business := pdf.Business{
		Name:    cfg.Business.Name,
		Address: cfg.Business.Address,
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Draft:   handler.NewDraftHandler(draftService, business),
		Memo:    handler.NewMemoHandler(ledgerService, business),
		Catalog: handler.NewCatalogHandler(ledgerService),
		Report:  handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
