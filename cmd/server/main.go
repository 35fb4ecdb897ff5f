package main

import (
	"fmt"
	"log"

	"vergos/internal/config"
	"vergos/internal/crosscheck"
	"vergos/internal/handler"
	"vergos/internal/router"
	"vergos/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize the reconciliation engine
	engine := crosscheck.NewEngine(cfg.CrossCheck.Options())

	// Initialize services
	crossCheckSvc := service.NewCrossCheckService(engine)

	// Initialize handlers
	crossCheckH := handler.NewCrossCheckHandler(crossCheckSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(crossCheckH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
