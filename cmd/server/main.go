package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fundilink.backend/internal/config"
	"fundilink.backend/internal/infrastructure/datasources/postgres"
	"fundilink.backend/internal/infrastructure/migrations"
	"fundilink.backend/internal/infrastructure/repositories"
	"fundilink.backend/internal/interfaces/http/handlers"
	"fundilink.backend/internal/interfaces/http/middleware"
	"fundilink.backend/internal/usecases"
	"fundilink.backend/pkg/jwt"
	"fundilink.backend/pkg/logger"
	"fundilink.backend/pkg/metrics"
	"fundilink.backend/pkg/redis"
)

const (
	serviceName     = "fundilink-backend"
	serviceVersion  = "1.0.0"
	shutdownTimeout = 15 * time.Second
)

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	newConnection   = postgres.NewConnection
	openGorm        = postgres.OpenGorm
	migrateUp       = migrations.Up
	newSessionStore = redis.NewSessionStore
	runServer       = serve
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(ctx, "Redis initialized")

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	decimal.MarshalJSONWithoutQuotes = true

	sqlDB, err := newConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, sqlDB); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info(ctx, "Database migrations applied")
	}

	db, err := openGorm(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to open gorm: %w", err)
	}
	logger.Info(ctx, "Connected to PostgreSQL via GORM")

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := buildRouter(cfg, db, sqlDB, sessionStore, reg)

	logger.Info(ctx, "FundiLink backend starting",
		zap.String("port", cfg.Server.Port),
		zap.Int("routes", len(r.Routes())),
	)

	if err := runServer(newHTTPHandler(r, cfg.CORS.AllowedOrigins), cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func buildRouter(cfg *config.Config, db *gorm.DB, sqlDB *sql.DB, sessionStore *redis.SessionStore, reg *prometheus.Registry) *gin.Engine {
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	m := metrics.New(reg)

	userRepo := repositories.NewUserRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	fundiRepo := repositories.NewFundiRepository(db)
	uow := repositories.NewUnitOfWork(db)

	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	fundiUsecase := usecases.NewFundiUsecase(fundiRepo, serviceRepo, locationRepo, userRepo, uow, m)
	catalogUsecase := usecases.NewCatalogUsecase(serviceRepo, locationRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, serviceRepo, locationRepo, fundiRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(m))

	registerHealthRoute(r, handlers.NewHealthHandler(serviceName, serviceVersion, map[string]handlers.PingFunc{
		"database": sqlDB.PingContext,
		"redis":    redis.Ping,
	}), promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	registerAPIV1Routes(r, routeDeps{
		authHandler:    handlers.NewAuthHandler(authUsecase, sessionStore, cfg.Server.IsProduction()),
		fundiHandler:   handlers.NewFundiHandler(fundiUsecase),
		catalogHandler: handlers.NewCatalogHandler(catalogUsecase),
		adminHandler:   handlers.NewAdminHandler(adminUsecase),
		authMiddleware: middleware.AuthMiddleware(jwtService, sessionStore),
	})
	return r
}

// serve runs until SIGINT/SIGTERM, then drains in-flight requests
func serve(handler http.Handler, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info(context.Background(), "Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
