package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/canteen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canteen-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/canteen-backend/internal/adapter/postgres/dish"
	menurepo "github.com/heartmarshall/canteen-backend/internal/adapter/postgres/menu"
	"github.com/heartmarshall/canteen-backend/internal/adapter/postgres/tenant"
	voterepo "github.com/heartmarshall/canteen-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/canteen-backend/internal/auth"
	"github.com/heartmarshall/canteen-backend/internal/config"
	"github.com/heartmarshall/canteen-backend/internal/ratelimit"
	"github.com/heartmarshall/canteen-backend/internal/service/catalog"
	"github.com/heartmarshall/canteen-backend/internal/service/menu"
	"github.com/heartmarshall/canteen-backend/internal/service/tenancy"
	"github.com/heartmarshall/canteen-backend/internal/service/vote"
	"github.com/heartmarshall/canteen-backend/internal/transport/dataloader"
	"github.com/heartmarshall/canteen-backend/internal/transport/middleware"
	"github.com/heartmarshall/canteen-backend/internal/transport/rest"
	"github.com/heartmarshall/canteen-backend/pkg/clock"
)

const httpLimiterCleanup = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	tenants := tenant.New(pool)
	dishes := dish.New(pool)
	menus := menurepo.New(pool)
	votes := voterepo.New(pool)
	audits := audit.New(pool)
	txm := postgres.NewTxManager(pool)
	clk := clock.Real{}

	voteLimiter := ratelimit.New(cfg.Voting.RateLimit, cfg.Voting.RateWindow, cfg.Voting.CleanupInterval)
	defer voteLimiter.Stop()

	var httpLimiter *ratelimit.Limiter
	if cfg.Server.RequestsPerMinute > 0 {
		httpLimiter = ratelimit.New(cfg.Server.RequestsPerMinute, time.Minute, httpLimiterCleanup)
		defer httpLimiter.Stop()
	}

	// Services.
	tenancySvc := tenancy.NewService(logger, tenants, audits, txm, clk)
	tenancySvc.SetDefaultTimezone(cfg.Menu.DefaultTimezone)
	catalogSvc := catalog.NewService(logger, dishes, menus, votes, audits, txm, clk)
	menuSvc := menu.NewService(logger, menus, dishes, votes, tenants, audits, txm, clk)
	voteSvc := vote.NewService(logger, menus, tenants, votes, voteLimiter, clk)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	handler := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, Version, clk),
		Tenants: rest.NewTenantHandler(tenancySvc, logger),
		Dishes:  rest.NewDishHandler(catalogSvc, logger),
		Menu:    rest.NewMenuHandler(menuSvc, logger),
		Votes:   rest.NewVoteHandler(voteSvc, logger),
	},
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.RateLimit(httpLimiter),
		middleware.Auth(jwtManager),
		middleware.Scope(tenancySvc),
		middleware.Identify,
		dataloader.Middleware(votes),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// serve runs srv until ctx is cancelled or the listener fails, then drains
// in-flight requests for at most shutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
