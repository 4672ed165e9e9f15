package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/cache"
	"github.com/SAP-F-2025/quiz-service/internal/config"
	"github.com/SAP-F-2025/quiz-service/internal/events"
	"github.com/SAP-F-2025/quiz-service/internal/handlers"
	"github.com/SAP-F-2025/quiz-service/internal/repositories/filestore"
	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/session"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/SAP-F-2025/quiz-service/internal/validator"
	"github.com/SAP-F-2025/quiz-service/pkg"
	"github.com/SAP-F-2025/quiz-service/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Environment, cfg.LogFile)
	if err := run(cfg, logger); err != nil {
		logger.LogError(err, "Server stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger utils.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slogLogger := utils.ToSlogLogger(logger)
	v := validator.New()

	repo := filestore.NewRepository(filestore.Paths{
		QuestionBank:  cfg.QuestionBankPath,
		Rubric:        cfg.RubricPath,
		ResultsLog:    cfg.ResultsLogPath,
		QuestionStats: cfg.QuestionStatsPath,
	}, v, logger)

	sessions, closeSessions, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSessions()

	eventPublisher, err := cfg.Events.CreateEventPublisher(slogLogger)
	if err != nil {
		logger.Warn("Event publisher unavailable, falling back to mock", "error", err)
		eventPublisher = events.NewMockEventPublisher(slogLogger)
	}
	defer eventPublisher.Close()

	serviceManager := services.NewServiceManager(services.ServiceOptions{
		Repository:     repo,
		Sessions:       sessions,
		EventPublisher: eventPublisher,
		Validator:      v,
		Logger:         slogLogger,
		QuizSize:       cfg.QuizSize,
	})

	monitoring.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		utils.LoggerMiddleware(logger),
		utils.ContextLogger(logger),
		gin.Recovery(),
		monitoring.MetricsMiddleware(),
	)
	handlers.NewHandlerManager(serviceManager, v, logger).SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", "port", cfg.Port, "environment", cfg.Environment, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server exiting")
	return nil
}

// newSessionStore picks the quiz session backend; the returned func releases it
func newSessionStore(ctx context.Context, cfg *config.Config, logger utils.Logger) (session.Store, func(), error) {
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		client, err := pkg.NewRedisClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using redis session store", "ttl", cfg.SessionTTL.String())
		return session.NewCacheStore(cache.NewRedisCache(client, logger), cfg.SessionTTL), func() { client.Close() }, nil
	case config.SessionBackendMemory:
		return session.NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend: %s", cfg.SessionBackend)
	}
}
