package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	BodyLimitMB        int
	StaticDir          string
}

type DatabaseConfig struct {
	Path     string
	LogLevel string // silent, error, warn, info
}

type StorageConfig struct {
	Driver string // "fs", "s3" or "memory"
	S3     S3Config
}

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	PathStyle       bool
	AccessKeyID     string
	SecretAccessKey string
}

type TelemetryConfig struct {
	Enabled        bool
	OTLPEndpoint   string
	ServiceName    string
	MetricsEnabled bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://127.0.0.1:8001,http://localhost:8001"),
			BodyLimitMB:        getEnvAsInt("BODY_LIMIT_MB", 10),
			StaticDir:          getEnv("STATIC_DIR", "static"),
		},
		Database: DatabaseConfig{
			Path:     getEnv("DB_PATH", "experiments.db"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		Storage: StorageConfig{
			Driver: getEnv("BLOB_DRIVER", "fs"),
			S3: S3Config{
				Bucket:          getEnv("BLOB_S3_BUCKET", ""),
				Region:          getEnv("BLOB_S3_REGION", "us-east-1"),
				Endpoint:        getEnv("BLOB_S3_ENDPOINT", ""),
				PathStyle:       getEnvAsBool("BLOB_S3_PATH_STYLE", false),
				AccessKeyID:     getEnv("BLOB_S3_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("BLOB_S3_SECRET_ACCESS_KEY", ""),
			},
		},
		Telemetry: TelemetryConfig{
			Enabled:      getEnvAsBool("OTEL_ENABLED", false),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "lab-notebook-backend"),

			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
		},
	}
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := strings.TrimSpace(getEnv(key, ""))
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
