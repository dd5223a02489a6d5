package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/config"
	"github.com/Arnav-791/Attendence-calculator/internal/api/handler"
	"github.com/Arnav-791/Attendence-calculator/internal/api/router"
	"github.com/Arnav-791/Attendence-calculator/internal/service"
	"github.com/Arnav-791/Attendence-calculator/internal/store"
	"github.com/Arnav-791/Attendence-calculator/internal/tracker"
	applogger "github.com/Arnav-791/Attendence-calculator/pkg/logger"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting up",
		zap.Int("port", cfg.Server.Port),
		zap.String("snapshot_file", cfg.Storage.File),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Open the snapshot store and load state
	st := store.NewFileStore(cfg.Storage.File)
	trk, err := tracker.New(st, tracker.Defaults{
		MinimumAttendance: cfg.Tracker.MinimumAttendance,
		SemesterEnd:       cfg.Tracker.SemesterEnd,
	}, logger)
	if err != nil {
		logger.Fatal("initializing tracker", zap.Error(err))
	}

	// 3.1 Mark weekends through the semester end as holidays
	if err := trk.SeedWeekendHolidays(time.Now()); err != nil {
		logger.Fatal("seeding weekend holidays", zap.Error(err))
	}

	// 4. Dependency injection: Tracker → Service → Handler
	svc := service.NewService(trk, logger)
	h := handler.NewHandler(svc)

	// 5. Build routes
	engine := router.Setup(cfg, h, logger)

	// 6. Start the HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// 7. Wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
