package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-talent-backend/config"
	_ "go-talent-backend/docs" // Important for Swagger
	v1 "go-talent-backend/internal/delivery/http/v1"
	"go-talent-backend/internal/repository/postgres"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/auth"
	"go-talent-backend/pkg/database"
	"go-talent-backend/pkg/logger"
	"go-talent-backend/pkg/redis"
	"go-talent-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           Student Talent Directory API
// @version         1.0
// @description     Backend for the student talent directory and matching platform.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting talent backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiter falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Avatar Storage
	avatarStore, err := newAvatarStore(cfg)
	if err != nil {
		logger.Log.Error("Failed to configure avatar storage", "provider", cfg.StorageProvider, "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	languageRepo := postgres.NewLanguageRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	collaborationRepo := postgres.NewCollaborationRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	profileUC := usecase.NewProfileUsecase(profileRepo, skillRepo, languageRepo, projectRepo, avatarStore, validate)
	directoryUC := usecase.NewDirectoryUsecase(profileRepo, skillRepo, languageRepo)
	talentMapUC := usecase.NewTalentMapUsecase(skillRepo)
	collaborationUC := usecase.NewCollaborationUsecase(collaborationRepo, profileRepo)
	verificationUC := usecase.NewVerificationUsecase(profileRepo, skillRepo)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:       profileUC,
		DirectoryUC:     directoryUC,
		TalentMapUC:     talentMapUC,
		CollaborationUC: collaborationUC,
		VerificationUC:  verificationUC,
		HealthUC:        healthUC,
		JWKSProvider:    jwksProvider,
		Config:          cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
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
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newAvatarStore(cfg *config.Config) (storage.ObjectStore, error) {
	if cfg.StorageProvider == "s3" {
		return storage.NewS3Store(context.Background(), storage.S3Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.AvatarBucket,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
	}
	return storage.NewSupabaseStore(cfg.SupabaseUrl, cfg.SupabaseKey, cfg.AvatarBucket), nil
}
