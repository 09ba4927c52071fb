package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tasky/config"
	"tasky/internal/httpserver"
	"tasky/internal/scheduler"
	cacheRepo "tasky/internal/task/repository/cache"
	sqliteRepo "tasky/internal/task/repository/sqlite"
	"tasky/internal/task/usecase"
	"tasky/pkg/gcalendar"
	"tasky/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Tasky...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.DSN)

	// 3. Storage: SQLite repository wrapped in a read-through LRU cache
	db, err := sqliteRepo.NewDB(cfg.Database.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	taskRepo := cacheRepo.New(sqliteRepo.New(db, logger), cfg.Cache.Capacity, cfg.Cache.TTL, logger)

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 5. Task UseCase
	taskUC := usecase.New(logger, taskRepo, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timezone)

	// 6. Recurring-task sweep scheduler
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(logger, taskUC)
		if _, err := sched.ScheduleSweep(cfg.Scheduler.SweepInterval); err != nil {
			logger.Error(ctx, "Failed to schedule sweep: ", err)
			return
		}
		sched.Start()
		defer sched.Stop()
		logger.Infof(ctx, "Sweep scheduled every %s", cfg.Scheduler.SweepInterval)
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		TaskUseCase:     taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
