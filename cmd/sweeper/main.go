package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tasky/config"
	cacheRepo "tasky/internal/task/repository/cache"
	sqliteRepo "tasky/internal/task/repository/sqlite"
	"tasky/internal/task/usecase"
	"tasky/pkg/log"
)

// main is the entry point for the one-shot sweep binary: it scans for
// completed recurring tasks, spawns their successors, and exits. Meant for
// external cron setups where the API server runs with the embedded scheduler
// disabled.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqliteRepo.NewDB(cfg.Database.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		os.Exit(1)
	}
	taskRepo := cacheRepo.New(sqliteRepo.New(db, logger), cfg.Cache.Capacity, cfg.Cache.TTL, logger)

	// Calendar mirroring is left to the API server; the sweeper only
	// persists successors.
	taskUC := usecase.New(logger, taskRepo, nil, "", cfg.GoogleCalendar.Timezone)

	out, err := taskUC.ProcessCompletedRecurringTasks(ctx)
	if err != nil {
		logger.Error(ctx, "Sweep failed: ", err)
		os.Exit(1)
	}

	logger.Infof(ctx, "Sweep complete: %d successors spawned", len(out.Spawned))
}
