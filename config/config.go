package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// MinJWTSecretLength is the minimum required length for the signing secret in production
	MinJWTSecretLength = 32

	EnvProduction  = "production"
	EnvDevelopment = "development"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string

	// Database
	DBDriver         string // sqlite, libsql, postgres, mysql
	DBPath           string
	DatabaseURL      string
	TursoDatabaseURL string
	TursoAuthToken   string

	// Auth
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	AuthRequired    bool // When true, mutating endpoints require a bearer token

	// Pagination
	PageSize    int
	MaxPageSize int

	// Logging
	LogLevel  string
	LogFormat string

	// Integrations (all optional)
	AllowedOrigins []string
	RedisURL       string
	AMQPURL        string

	// Evidence storage
	UploadDir         string
	MaxUploadMB       int64
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string

	// Warnings collected while loading, logged once the logger exists
	Warnings []string
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Load reads configuration from a .env file (if present) and the process environment
func Load() (*Config, error) {
	var warnings []string

	// Missing .env is fine: system env vars are used instead
	if err := godotenv.Load(); err != nil {
		warnings = append(warnings, "No .env file found, using system environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	environment := v.GetString("ENVIRONMENT")
	v.SetDefault("AUTH_REQUIRED", environment == EnvProduction)

	jwtSecret := v.GetString("JWT_SECRET")
	warning, err := ValidateJWTSecret(jwtSecret, environment)
	if err != nil {
		return nil, err
	}
	if warning != "" {
		warnings = append(warnings, warning)
	}

	// In development, generate a secret if none provided; tokens die with the process
	if jwtSecret == "" && environment != EnvProduction {
		jwtSecret = GenerateSecureSecret()
		warnings = append(warnings, "Generated temporary JWT secret for development. Set JWT_SECRET for persistence.")
	}

	return &Config{
		ServerPort:        v.GetString("SERVER_PORT"),
		Environment:       environment,
		AppURL:            v.GetString("APP_URL"),
		DBDriver:          strings.ToLower(v.GetString("DB_DRIVER")),
		DBPath:            v.GetString("DB_PATH"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		TursoDatabaseURL:  v.GetString("TURSO_DATABASE_URL"),
		TursoAuthToken:    v.GetString("TURSO_AUTH_TOKEN"),
		JWTSecret:         jwtSecret,
		AccessTokenTTL:    v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:   v.GetDuration("REFRESH_TOKEN_TTL"),
		AuthRequired:      v.GetBool("AUTH_REQUIRED"),
		PageSize:          v.GetInt("PAGE_SIZE"),
		MaxPageSize:       v.GetInt("MAX_PAGE_SIZE"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
		AllowedOrigins:    strings.Split(v.GetString("ALLOWED_ORIGINS"), ","),
		RedisURL:          v.GetString("REDIS_URL"),
		AMQPURL:           v.GetString("AMQP_URL"),
		UploadDir:         v.GetString("UPLOAD_DIR"),
		MaxUploadMB:       v.GetInt64("MAX_UPLOAD_MB"),
		R2AccountID:       v.GetString("R2_ACCOUNT_ID"),
		R2AccessKeyID:     v.GetString("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: v.GetString("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      v.GetString("R2_BUCKET_NAME"),
		Warnings:          warnings,
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("APP_URL", "http://localhost:8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "db/sgac.db")
	v.SetDefault("ACCESS_TOKEN_TTL", "15m")
	v.SetDefault("REFRESH_TOKEN_TTL", "24h")
	v.SetDefault("PAGE_SIZE", 10)
	v.SetDefault("MAX_PAGE_SIZE", 100)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("UPLOAD_DIR", "static/uploads")
	v.SetDefault("MAX_UPLOAD_MB", 10)
}

// ValidateJWTSecret validates the signing secret.
// In production it must be at least 32 bytes and not a known insecure default;
// elsewhere an insecure secret only yields a warning.
func ValidateJWTSecret(secret string, environment string) (string, error) {
	insecureDefaults := []string{
		"dev-secret-change-in-production",
		"change-me",
		"secret",
		"development",
		"test",
		"",
	}

	for _, insecure := range insecureDefaults {
		if strings.EqualFold(secret, insecure) {
			if environment == EnvProduction {
				return "", fmt.Errorf("JWT_SECRET is set to an insecure default value; generate one with: openssl rand -base64 32")
			}
			if secret == "" {
				return "", nil
			}
			return "[WARNING] JWT_SECRET is set to an insecure default value. This is acceptable only in development.", nil
		}
	}

	if environment == EnvProduction && len(secret) < MinJWTSecretLength {
		return "", fmt.Errorf("JWT_SECRET must be at least %d characters in production (current: %d)", MinJWTSecretLength, len(secret))
	}

	return "", nil
}

// GenerateSecureSecret generates a cryptographically secure random secret
func GenerateSecureSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(bytes)
}
