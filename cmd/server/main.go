// Command server starts the Career Compass HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	gemini "github.com/careerpath-labs/career-compass/internal/adapter/ai/gemini"
	rediscache "github.com/careerpath-labs/career-compass/internal/adapter/cache/redis"
	httpserver "github.com/careerpath-labs/career-compass/internal/adapter/httpserver"
	"github.com/careerpath-labs/career-compass/internal/adapter/observability"
	"github.com/careerpath-labs/career-compass/internal/adapter/repo/postgres"
	"github.com/careerpath-labs/career-compass/internal/app"
	"github.com/careerpath-labs/career-compass/internal/assistant"
	"github.com/careerpath-labs/career-compass/internal/config"
	"github.com/careerpath-labs/career-compass/internal/usecase"
)

// redisAdapter narrows *redis.Client to the readiness interface.
type redisAdapter struct{ *redis.Client }

func (r redisAdapter) Ping(ctx context.Context) app.RedisPingResult {
	return r.Client.Ping(ctx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	// Infra: DB pool
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("db connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	// Infra: Redis for catalog caching. Cache failures are soft, so a
	// down Redis only costs extra catalog queries.
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	defer func() { _ = rdb.Close() }()

	// Repositories
	assessRepo := postgres.NewAssessmentRepo(pool)
	careerRepo := postgres.NewCareerRepo(pool)
	courseRepo := postgres.NewCourseRepo(pool)
	savedRepo := postgres.NewSavedItemRepo(pool)
	convRepo := postgres.NewConversationRepo(pool)
	resumeRepo := postgres.NewResumeRepo(pool)

	careers := rediscache.NewCareerCache(careerRepo, rdb, cfg.CatalogTTL)
	courses := rediscache.NewCourseCache(courseRepo, rdb, cfg.CatalogTTL)

	// Data retention
	if cfg.DataRetentionDays > 0 {
		cleanupSvc := postgres.NewCleanupService(pool, cfg.DataRetentionDays)
		go cleanupSvc.RunPeriodic(ctx, cfg.CleanupInterval)
		slog.Info("cleanup service started", slog.Int("retention_days", cfg.DataRetentionDays), slog.Duration("interval", cfg.CleanupInterval))
	}

	// LLM collaborator. A missing API key is not fatal: chat falls back
	// to the rule-based assistant.
	ai, err := gemini.New(ctx, cfg)
	if err != nil {
		slog.Error("gemini client init failed", slog.Any("error", err))
		os.Exit(1)
	}
	if ai.Available() {
		slog.Info("llm chat enabled", slog.String("model", cfg.GeminiModel))
	} else {
		slog.Info("llm chat disabled, assistant fallback active")
	}

	// Usecases
	asst := assistant.NewResponder(assessRepo, careers, courses)
	assessSvc := usecase.NewAssessmentService(assessRepo)
	recommendSvc := usecase.NewRecommendService(assessRepo, careers, courses)
	catalogSvc := usecase.NewCatalogService(careers, courses, savedRepo)
	chatSvc := usecase.NewChatService(ai, asst, convRepo, cfg.ChatHistoryLimit)
	resumeSvc := usecase.NewResumeService(resumeRepo, ai)

	dbCheck, redisCheck := app.BuildReadinessChecks(pool, redisAdapter{rdb})

	srv := httpserver.NewServer(cfg, assessSvc, recommendSvc, catalogSvc, chatSvc, asst, resumeSvc, dbCheck, redisCheck)
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
