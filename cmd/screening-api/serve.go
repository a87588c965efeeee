package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/handler"
	"github.com/tbcare/screening-api/internal/repository"
	"github.com/tbcare/screening-api/internal/router"
	"github.com/tbcare/screening-api/internal/service"
	"github.com/tbcare/screening-api/pkg/cache"
	"github.com/tbcare/screening-api/pkg/config"
	"github.com/tbcare/screening-api/pkg/database"
	"github.com/tbcare/screening-api/pkg/jobs"
	"github.com/tbcare/screening-api/pkg/storage"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logr, err := bootstrap()
		if err != nil {
			return err
		}
		defer logr.Sync() //nolint:errcheck

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	readiness := map[string]handler.Pinger{"postgres": db}

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		readiness["redis"] = handler.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	backend, err := newExportBackend(ctx, cfg)
	if err != nil {
		return err
	}

	metrics := service.NewMetricsService()
	sessions := service.NewSessionService(cfg.Session)
	validate := service.NewValidator()

	userRepo := repository.NewUserRepository(db)
	recordRepo := repository.NewRecordRepository(db)
	regionRepo := repository.NewRegionRepository(db)

	var cacheRepo service.CacheRepository
	if redisClient != nil {
		cacheRepo = repository.NewCacheRepository(redisClient)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cfg.Cache.Enabled)

	userSvc := service.NewUserService(userRepo, validate, logr, service.UserServiceOptions{
		Cache:    cacheSvc,
		Sessions: sessions,
		Metrics:  metrics,
	})
	regionSvc := service.NewRegionService(regionRepo, validate, logr)
	recordSvc := service.NewRecordService(userRepo, recordRepo, validate, logr)
	exportSvc := service.NewExportService(
		userRepo,
		recordRepo,
		service.NewExportPolicy(logr),
		backend,
		storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL),
		metrics,
		logr,
	)

	retention := jobs.NewPeriodic("export-retention", func(ctx context.Context) error {
		_, err := exportSvc.Prune(ctx, cfg.Exports.SignedURLTTL)
		return err
	}, jobs.PeriodicConfig{Interval: time.Hour, MaxRetries: 2, RetryDelay: 10 * time.Second, Logger: logr})
	retention.Start(ctx)
	defer retention.Stop()

	engine := router.New(router.Handlers{
		Users:   handler.NewUserHandler(userSvc, logr),
		Regions: handler.NewRegionHandler(regionSvc, logr),
		Records: handler.NewRecordHandler(recordSvc, logr),
		Exports: handler.NewExportHandler(exportSvc, logr),
		Health:  handler.NewHealthHandler(metrics, readiness, logr),
	}, router.Options{
		Config:   cfg,
		Logger:   logr,
		Metrics:  metrics,
		Sessions: sessions,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logr.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newExportBackend selects the export storage configured by EXPORTS_STORAGE.
func newExportBackend(ctx context.Context, cfg *config.Config) (storage.Backend, error) {
	switch cfg.Exports.Storage {
	case config.StorageMinio:
		store, err := storage.NewMinioStorage(cfg.Minio)
		if err != nil {
			return nil, fmt.Errorf("init minio storage: %w", err)
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("ensure minio bucket: %w", err)
		}
		return store, nil
	case config.StorageLocal, "":
		return storage.NewLocalStorage(cfg.Exports.Dir)
	default:
		return nil, fmt.Errorf("unknown exports storage %q", cfg.Exports.Storage)
	}
}
