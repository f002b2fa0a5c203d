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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jonboulle/clockwork"
	"github.com/pressly/goose/v3"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/cellar-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cellar-backend/internal/adapter/postgres/spirit"
	"github.com/heartmarshall/cellar-backend/internal/adapter/postgres/wine"
	"github.com/heartmarshall/cellar-backend/internal/auth"
	"github.com/heartmarshall/cellar-backend/internal/config"
	"github.com/heartmarshall/cellar-backend/internal/service/cellar"
	"github.com/heartmarshall/cellar-backend/internal/service/validation"
	"github.com/heartmarshall/cellar-backend/internal/transport/graphql"
	"github.com/heartmarshall/cellar-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/cellar-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/cellar-backend/internal/transport/graphql/schema"
	"github.com/heartmarshall/cellar-backend/internal/transport/middleware"
	"github.com/heartmarshall/cellar-backend/internal/transport/rest"
)

// Run is the record service entry point. It loads configuration, connects
// to PostgreSQL, wires the services and serves HTTP until ctx is cancelled,
// then shuts down gracefully.
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

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	migrator, err := postgres.NewMigrator(sqlDB)
	if err != nil {
		return err
	}

	clock := clockwork.NewRealClock()
	handler, stop, err := newHandler(logger, *cfg, pool, migrator, clock)
	if err != nil {
		return err
	}
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// newHandler wires the record service over pool: repositories, the cellar
// service, the GraphQL server and the HTTP routes. stop releases the
// background workers the handler owns.
func newHandler(
	logger *slog.Logger,
	cfg config.Config,
	pool *pgxpool.Pool,
	migrator *goose.Provider,
	clock clockwork.Clock,
) (http.Handler, func(), error) {
	engine := validation.NewEngine(clock)

	cellarSvc := cellar.NewService(logger,
		wine.New(pool),
		spirit.New(pool),
		postgres.NewTxManager(pool),
		engine,
		clock,
		cfg.Cellar,
	)

	gqlServer, err := graphql.NewServer(logger, schema.SDL,
		resolver.New(logger, cellarSvc, engine),
		graphql.NewErrorPresenter(logger),
		cfg.GraphQL.MaxDepth,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("graphql server: %w", err)
	}

	limiter := middleware.NewRateLimiter(clock, time.Minute)

	handler := NewRouter(logger, cfg, Routes{
		GraphQL: middleware.Chain(
			limiter.Limit(cfg.Server.RateLimit),
			dataloader.Middleware(cellarSvc, cfg.GraphQL),
		)(graphql.NewHandler(logger, gqlServer, cfg.GraphQL.MaxBodyBytes)),
		Health: rest.NewHealthHandler(pool, migrator, BuildVersion(), clock),
		Tokens: auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock),
	})
	return handler, limiter.Stop, nil
}

// serve runs srv until ctx is done or the listener fails, then drains
// in-flight requests for up to shutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
