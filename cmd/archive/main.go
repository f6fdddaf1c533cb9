// Command archive moves published week menus whose ISO week ended more than
// MENU_ARCHIVE_AFTER_WEEKS weeks ago to ARCHIVED, across all tenants. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/canteen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canteen-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/canteen-backend/internal/adapter/postgres/dish"
	menurepo "github.com/heartmarshall/canteen-backend/internal/adapter/postgres/menu"
	"github.com/heartmarshall/canteen-backend/internal/adapter/postgres/tenant"
	"github.com/heartmarshall/canteen-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/canteen-backend/internal/app"
	"github.com/heartmarshall/canteen-backend/internal/config"
	"github.com/heartmarshall/canteen-backend/internal/service/menu"
	"github.com/heartmarshall/canteen-backend/pkg/clock"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := menu.NewService(logger,
		menurepo.New(pool), dish.New(pool), vote.New(pool), tenant.New(pool), audit.New(pool),
		postgres.NewTxManager(pool), clock.Real{},
	)

	archived, err := svc.ArchiveStale(ctx, cfg.Menu.ArchiveAfterWeeks)
	if err != nil {
		logger.Error("archive failed",
			slog.String("error", err.Error()),
			slog.Int("archive_after_weeks", cfg.Menu.ArchiveAfterWeeks),
		)
		os.Exit(1)
	}

	for _, w := range archived {
		logger.Info("week archived",
			slog.String("tenant_id", w.TenantID.String()),
			slog.String("week_menu_id", w.ID.String()),
			slog.String("week", w.Label()),
		)
	}
	logger.Info("archive completed", slog.Int("archived", len(archived)))
}
