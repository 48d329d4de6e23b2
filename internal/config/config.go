package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort     string
	AppEnv      string
	MetricsPort string

	JWTSecret    string
	JWTAlgorithm string // HMAC family only: HS256, HS384, HS512
	JWTExpiry    time.Duration

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTableNotificationTypes string

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:     getEnv("APP_PORT", "3000"),
		AppEnv:      getEnv("APP_ENV", "development"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),

		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTAlgorithm: getEnv("JWT_ALGORITHM", "HS256"),
		JWTExpiry:    time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTableNotificationTypes: getEnv("DYNAMO_TABLE_NOTIFICATION_TYPES", "notification_types"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
