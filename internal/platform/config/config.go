package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DatabaseURL       string
	Environment       string
	SessionJWTSecret  string
	WebhookSecret     string
	ClerkSecretKey    string
	ClerkAPIURL       string
	TokenIssuer       string
	InviteRedirectURL string
	SentryDSN         string
	SeedAdminToken    string
	SeedAdminName     string
	RunMigrations     bool
	RunSeed           bool
	MetricsEnabled    bool
	MaxBodyBytes      int64
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:              getEnv("APP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		Environment:       getEnv("APP_ENV", "development"),
		SessionJWTSecret:  getEnv("SESSION_JWT_SECRET", ""),
		WebhookSecret:     getEnv("CLERK_WEBHOOK_SECRET", ""),
		ClerkSecretKey:    getEnv("CLERK_SECRET_KEY", ""),
		ClerkAPIURL:       getEnv("CLERK_API_URL", "https://api.clerk.com/v1"),
		TokenIssuer:       getEnv("CLERK_FRONTEND_API", ""),
		InviteRedirectURL: getEnv("INVITE_REDIRECT_URL", "http://localhost:3000"),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		SeedAdminToken:    getEnv("SEED_ADMIN_TOKEN", ""),
		SeedAdminName:     getEnv("SEED_ADMIN_NAME", "Administrator"),
		RunMigrations:     getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:           getEnvBool("RUN_SEED", true),
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", true),
		MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.SessionJWTSecret) == "" {
		return fmt.Errorf("SESSION_JWT_SECRET is required")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.WebhookSecret) == "" {
			return fmt.Errorf("CLERK_WEBHOOK_SECRET must be set in production")
		}
		if strings.TrimSpace(c.ClerkSecretKey) == "" {
			return fmt.Errorf("CLERK_SECRET_KEY must be set in production")
		}
	}
	return nil
}
