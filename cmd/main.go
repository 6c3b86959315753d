package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/rollcall/internal/config"
	v1 "github.com/shenikar/rollcall/internal/handler/http/v1"
	"github.com/shenikar/rollcall/internal/metrics"
	"github.com/shenikar/rollcall/internal/push"
	"github.com/shenikar/rollcall/internal/repository"
	"github.com/shenikar/rollcall/internal/service"
	"github.com/shenikar/rollcall/internal/token"
	"github.com/shenikar/rollcall/internal/webhook"
	"github.com/shenikar/rollcall/pkg/logger"
	"github.com/shenikar/rollcall/pkg/postgres"
	redisclient "github.com/shenikar/rollcall/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/rollcall/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Roll Call Alert API
// @version 1.0
// @description Emergency roll-call backend: area alerts, push delivery and OK/HELP responses.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newPushProvider выбирает FCM, если заданы учетные данные, иначе отключенный провайдер
func newPushProvider(ctx context.Context, cfg *config.Config, log *logrus.Logger) push.Provider {
	if cfg.FCMCredentialsFile == "" {
		log.Warn("FCM_CREDENTIALS_FILE is not set, push notifications are disabled")
		return push.NewDisabledProvider(log)
	}

	provider, err := push.NewFCMProvider(ctx, cfg.FCMCredentialsFile)
	if err != nil {
		log.Fatalf("Failed to initialize FCM provider: %v", err)
	}
	log.Info("FCM push provider initialized")
	return provider
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		log.Warn("JWT secrets are not set, every token operation will fail")
	}

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Вебхуки: издатель и фоновый воркер
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	appMetrics := metrics.New(prometheus.DefaultRegisterer)
	pushProvider := newPushProvider(ctx, cfg, log)
	tokenManager := token.NewManager(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool)
	refreshRepo := repository.NewRefreshTokenRepository(dbpool)
	eventRepo := repository.NewAlertEventRepository(dbpool, redisClient, cfg.EventCacheTTL)
	responseRepo := repository.NewResponseRepository(dbpool)

	// Инициализация сервисов
	pushService := service.NewPushService(userRepo, pushProvider, appMetrics, log)
	services := v1.Services{
		Auth:      service.NewAuthService(userRepo, refreshRepo, tokenManager, cfg.BcryptCost, log),
		User:      service.NewUserService(userRepo, log),
		Alert:     service.NewAlertService(eventRepo, pushService, webhookPublisher, appMetrics, log),
		Response:  service.NewResponseService(responseRepo, eventRepo, webhookPublisher, log),
		Dashboard: service.NewDashboardService(eventRepo, userRepo, responseRepo, log),
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, tokenManager, log)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(appMetrics.Middleware(), v1.RequestID())
	router.NoRoute(v1.NotFound)
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер вебхуков до закрытия Redis
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
