package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"candidate-intake/config"
	_ "candidate-intake/docs" // Important for Swagger
	v1 "candidate-intake/internal/delivery/http/v1"
	"candidate-intake/internal/repository/postgres"
	"candidate-intake/internal/usecase"
	"candidate-intake/pkg/database"
	"candidate-intake/pkg/logger"
	"candidate-intake/pkg/redis"
	"candidate-intake/pkg/security"
	"candidate-intake/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Candidate Intake API
// @version         1.0
// @description     Candidate intake for the applicant tracking system.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Setup Loggers
	logger.Init(cfg.Environment)
	defer logger.Sync()
	auditLogger := security.InitSecurityLogger("candidate-intake", cfg.Environment)
	defer auditLogger.Sync()
	logger.Log.Infow("Starting candidate intake service", "port", cfg.Port, "env", cfg.Environment)

	// 3. Setup Database
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStartup()

	dbPool, err := database.NewPostgresConnection(startupCtx, cfg.DBUrl, database.PoolOptions{
		MaxConns: int32(cfg.DBMaxConns),
		MinConns: int32(cfg.DBMinConns),
	})
	if err != nil {
		logger.Log.Errorw("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	db, err := database.NewGormDB(dbPool)
	if err != nil {
		logger.Log.Errorw("Failed to open ORM session", "error", err)
		os.Exit(1)
	}
	if cfg.DBAutoMigrate {
		if err := postgres.AutoMigrate(db); err != nil {
			logger.Log.Errorw("Auto-migration failed", "error", err)
			os.Exit(1)
		}
	}

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	redisClient, err = redis.Connect(startupCtx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		redisClient = nil
	case err != nil:
		logger.Log.Warnw("Redis unavailable, rate limiting falls back to memory", "error", err)
		redisClient = nil
	default:
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(db)

	// 6. Setup UseCases
	validate := validation.New()
	candidateValidator := usecase.NewCandidateValidator(validate)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, candidateValidator, cfg.IntakeAtomicSave)

	healthDeps := map[string]usecase.Pinger{
		"database": usecase.PingFunc(dbPool.Ping),
		"redis":    nil,
	}
	if redisClient != nil {
		healthDeps["redis"] = usecase.PingFunc(func(ctx context.Context) error {
			return redis.HealthCheck(ctx, redisClient)
		})
	}
	healthUC := usecase.NewHealthUsecase(healthDeps)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC:    candidateUC,
		HealthUC:       healthUC,
		SecurityLogger: auditLogger,
		Redis:          redisClient,
		Config:         cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Errorw("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Errorw("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
