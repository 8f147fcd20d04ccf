package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "rfid_tracking/docs"
	"rfid_tracking/internal/client"
	"rfid_tracking/internal/config"
	"rfid_tracking/internal/handlers"
	"rfid_tracking/internal/logger"
	"rfid_tracking/internal/opday"
	"rfid_tracking/internal/repository"
	"rfid_tracking/internal/server"
	"rfid_tracking/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title        Production Line Dashboard API
// @version      1.0
// @description  Reporting-day, endpoint resolution and page filter state for the sewing line dashboard.
// @BasePath     /
func main() {
	// load configs/config.yml (+ DASHBOARD_* env)
	cfg, err := config.Load("configs", ".")
	if err != nil {
		logger.Get(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level, cfg.Log.Format)

	loc, err := cfg.Clock.Load()
	if err != nil {
		log.Fatalw("invalid clock location", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository()
	services := service.NewService(repos, service.Deps{
		Days:    opday.NewResolver(time.Now, loc),
		Fetcher: client.New(cfg.HTTP.Timeout),
		IdleTTL: cfg.Pages.IdleTTL,
		Log:     log,
	})
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Janitor.Run(ctx, cfg.Pages.SweepInterval)

	log.Infow("starting dashboard service",
		"port", cfg.Port,
		"clock_location", loc.String(),
		"reporting_day", services.OperatingDay.CurrentReportingDay(),
	)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
	_ = log.Sync()
}
