package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	DatabaseType    string
	DatabasePath    string
	DatabaseURL     string
	StaticFilesPath string
	TemplatesPath   string
	MigrationsPath  string

	// VisitorTokenSecret signs the anonymous visitor cookie
	VisitorTokenSecret string
	VisitorTokenTTL    time.Duration

	// RetentionDays controls background pruning of old sessions; 0 keeps everything
	RetentionDays int

	// Rate limit for analysis submissions, requests per minute per visitor
	AnalyzeRateLimit int

	// Optional SES report email settings
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	// Load .env if present; real env vars take precedence
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		ServerPort:         getEnv("PORT", "8080"),
		DatabaseType:       getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath:       getEnv("DB_PATH", "./typemood.db"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		StaticFilesPath:    getEnv("STATIC_PATH", "./static"),
		TemplatesPath:      getEnv("TEMPLATES_PATH", "./internal/templates"),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "./migrations"),
		VisitorTokenSecret: getEnv("VISITOR_TOKEN_SECRET", "typemood-dev-secret"),
		VisitorTokenTTL:    365 * 24 * time.Hour,
		RetentionDays:      getEnvInt("RETENTION_DAYS", 0),
		AnalyzeRateLimit:   getEnvInt("ANALYZE_RATE_LIMIT", 30),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:       getEnv("SES_FROM_EMAIL", ""),
		SESFromName:        getEnv("SES_FROM_NAME", "TypeMood"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
