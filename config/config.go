package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	SupabaseUrl       string
	SupabaseKey       string
	SupabaseJWTSecret string
	FrontendURL       string
	// Avatar storage
	StorageProvider string // "supabase" (default) or "s3"
	AvatarBucket    string
	S3AccessKeyID   string
	S3SecretKey     string
	S3Region        string
	S3Endpoint      string
	S3PublicBaseURL string
	// Redis (rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate limiting
	RateLimitWindowSeconds   int
	RateLimitAuthThreshold   int
	RateLimitGlobalThreshold int
}

// LoadConfig reads the environment (and .env locally). Missing
// required connection parameters are a startup error, not something to
// discover on the first request.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// Trailing slashes would produce double slashes in built URLs
		SupabaseUrl:       strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseKey:       getEnv("SUPABASE_SERVICE_KEY", getEnv("SUPABASE_KEY", "")),
		SupabaseJWTSecret: getEnv("SUPABASE_JWT_SECRET", ""),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		StorageProvider: getEnv("STORAGE_PROVIDER", "supabase"),
		AvatarBucket:    getEnv("AVATAR_BUCKET", "avatars"),
		S3AccessKeyID:   getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:     getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:        getEnv("S3_REGION", ""),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	var missing []string
	if cfg.DBUrl == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.SupabaseUrl == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if cfg.SupabaseKey == "" {
		missing = append(missing, "SUPABASE_SERVICE_KEY")
	}
	if len(missing) > 0 {
		return nil, errors.New("missing required environment variables: " + strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
