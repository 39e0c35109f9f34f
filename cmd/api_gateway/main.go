package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/shannicec/moneymorph/internal/api_gateway"
	"github.com/shannicec/moneymorph/internal/api_gateway/service"
	"github.com/shannicec/moneymorph/internal/config"
	"github.com/shannicec/moneymorph/internal/data/bootstrap"
	"github.com/shannicec/moneymorph/internal/data/memory"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/logger"
	"github.com/shannicec/moneymorph/internal/platform/messaging/producers"
	"github.com/shannicec/moneymorph/internal/scheduler"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("api_gateway")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	log.Info("Starting MoneyMorph API gateway",
		"app_name", cfg.Application.Name,
		"env", cfg.Application.Env,
	)

	// Build the session state
	initial, err := bootstrap.InitialState(cfg.Treasury.AccountsFile)
	if err != nil {
		log.Error("Failed to load initial treasury state", "error", err)
		os.Exit(1)
	}
	repo := memory.NewSessionRepository(log, initial)
	log.Info("Treasury session ready",
		"accounts", len(initial.Accounts),
		"rates", len(initial.Rates),
	)

	clock := ledger.SystemClock()
	mutator := ledger.NewMutator(clock, ledger.UUIDv7Generator())

	// Initialize event publisher (no-op when events are disabled)
	publisher, err := producers.NewPublisher(appCtx, log, cfg)
	if err != nil {
		log.Error("Failed to initialize event publisher", "error", err)
		os.Exit(1)
	}

	// Initialize services
	services := service.NewServices(log, repo, mutator, publisher, clock, cfg.Treasury.BaseCurrency)

	// Initialize REST server
	server, err := api_gateway.NewServer(log, cfg, services)
	if err != nil {
		log.Error("Failed to initialize REST server", "error", err)
		os.Exit(1)
	}
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	var wg sync.WaitGroup

	// Start the due monitor in a goroutine
	if cfg.Scheduler.Enabled {
		monitor := scheduler.NewDueMonitor(&cfg.Scheduler, repo, publisher, clock, log.With("component", "due_monitor"))
		wg.Add(1)
		go func() {
			defer wg.Done()
			monitor.Start(appCtx)
		}()
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	// Shutdown HTTP server
	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	// Let the due monitor finish its current pass
	wg.Wait()

	// Drain pending events and close the producer
	if err = publisher.Close(); err != nil {
		log.Error("Error closing event publisher", "error", err)
	}

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
