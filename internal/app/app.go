package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/invoicedash/internal/config"
	"github.com/GlebRadaev/invoicedash/internal/handlers"
	"github.com/GlebRadaev/invoicedash/internal/pg"
	"github.com/GlebRadaev/invoicedash/internal/repo"
	"github.com/GlebRadaev/invoicedash/internal/service"
	"github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/GlebRadaev/invoicedash/pkg/cache"
	"github.com/GlebRadaev/invoicedash/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	pool *pgxpool.Pool
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New(cfg *config.Config) *Application {
	return &Application{
		cfg:   cfg,
		errCh: make(chan error),
	}
}

// Start connects to Postgres, applies migrations when configured to and
// serves the HTTP API until ctx is cancelled.
func (a *Application) Start(ctx context.Context) error {
	if err := a.init(ctx, a.cfg.MigrateOnStart); err != nil {
		return err
	}

	if err := a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// Seed loads the bootstrap dataset and exits.
func (a *Application) Seed(ctx context.Context) error {
	if err := a.init(ctx, false); err != nil {
		return err
	}
	defer a.pool.Close()

	if err := a.srv.SeedService.Seed(ctx); err != nil {
		return fmt.Errorf("can't seed database: %w", err)
	}
	zap.L().Info("database seeded successfully")
	return nil
}

// Migrate applies pending schema migrations and exits.
func (a *Application) Migrate(ctx context.Context) error {
	if err := logger.InitLogger(a.cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	pool, err := pg.NewPool(ctx, a.cfg.DSN(), pg.NewTracer(a.cfg.LogLvl))
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	defer pool.Close()

	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	zap.L().Info("migrations applied")
	return nil
}

func (a *Application) init(ctx context.Context, migrate bool) error {
	if err := logger.InitLogger(a.cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := pg.NewPool(ctx, a.cfg.DSN(), pg.NewTracer(a.cfg.LogLvl))
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if migrate {
		if err := pg.RunMigrations(pool); err != nil {
			pool.Close()
			zap.L().Error("migrations failed: ", zap.Error(err))
			return fmt.Errorf("can't run migrations: %w", err)
		}
	}
	a.pool = pool
	a.build(pg.New(pool), pg.NewTXManager(pool))
	return nil
}

func (a *Application) build(conn pg.Database, txManager pg.TXManager) {
	tokens := auth.NewJWTService(a.cfg.JWTSecret)

	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, tokens, a.cfg.TokenTTL)
	a.api = handlers.New(a.srv, tokens, cache.New())
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		if a.pool != nil {
			a.pool.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
