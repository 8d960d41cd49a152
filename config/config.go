package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration. DBDriver is "postgres" or "sqlite".
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// MigrationsDir holds the ordered SQL files applied to PostgreSQL.
	MigrationsDir string

	// JWT configuration
	JWTSecret string
	JWTTTL    time.Duration

	// Logging
	LogLevel string

	// CORS
	CORSAllowedOrigins []string

	// Recipe images; uploads are disabled when S3Bucket is empty.
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env file: %v", err)
	}

	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI, Test, Development:
		loadDefaults(cfg)
	case Production:
		loadProductionDefaults(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := loadValues(cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDefaults fills in values that make a local checkout runnable without any setup.
func loadDefaults(cfg *Config) {
	cfg.ServerPort = "5000"
	cfg.ServerHost = "0.0.0.0"
	cfg.DBDriver = "postgres"
	cfg.DBHost = "localhost"
	cfg.DBPort = "5432"
	cfg.DBUser = "postgres"
	cfg.DBPassword = "postgres"
	cfg.DBName = "heritage_recipes"
	cfg.DBSSLMode = "disable"
	cfg.DBPath = "heritage_recipes.db"
	cfg.MigrationsDir = "migrations"
	cfg.JWTSecret = "dev-secret-change-me"
	cfg.LogLevel = "debug"
	cfg.CORSAllowedOrigins = []string{"*"}
}

// loadProductionDefaults only covers non-sensitive settings; credentials, the JWT secret
// and the server port must be provided.
func loadProductionDefaults(cfg *Config) {
	cfg.ServerHost = "0.0.0.0"
	cfg.DBDriver = "postgres"
	cfg.DBSSLMode = "require"
	cfg.MigrationsDir = "migrations"
	cfg.LogLevel = "info"
}

// loadValues overrides cfg with environment variables, and with Docker secrets for
// sensitive values.
func loadValues(cfg *Config) error {
	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.ServerHost = getEnv("SERVER_HOST", cfg.ServerHost)
	cfg.DBDriver = getEnv("DB_DRIVER", cfg.DBDriver)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", cfg.DBSSLMode)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.MigrationsDir = getEnv("MIGRATIONS_DIR", cfg.MigrationsDir)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.S3Bucket = getEnv("S3_BUCKET_NAME", cfg.S3Bucket)
	cfg.AWSRegion = getEnv("AWS_REGION", cfg.AWSRegion)

	cfg.DBUser = getSecret("db_user", "DB_USER", cfg.DBUser)
	cfg.DBPassword = getSecret("db_password", "DB_PASSWORD", cfg.DBPassword)
	cfg.JWTSecret = getSecret("jwt_secret", "JWT_SECRET", cfg.JWTSecret)

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = splitList(origins)
	}

	cfg.JWTTTL = 24 * time.Hour
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid JWT_TTL %q: %w", raw, err)
		}
		cfg.JWTTTL = ttl
	}

	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// ImagesEnabled reports whether recipe image uploads are configured.
func (c *Config) ImagesEnabled() bool {
	return c.S3Bucket != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// getSecret prefers the Docker secret, then the environment variable, then fallback.
func getSecret(name, envKey, fallback string) string {
	if value := readSecret(name); value != "" {
		return value
	}
	return getEnv(envKey, fallback)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

