package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Figma       FigmaConfig
	FileStorage FileStorageConfig
	Sync        SyncConfig
	LogLevel    string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// FigmaConfig holds the design source API configuration
type FigmaConfig struct {
	Token          string
	FileKey        string
	BaseURL        string
	ImageScale     int
	ImageBatchSize int
	HTTPTimeout    time.Duration
}

// FileStorageConfig holds file storage configuration
type FileStorageConfig struct {
	UseS3            bool
	S3Region         string
	S3Endpoint       string
	S3PublicEndpoint string
	S3AccessKey      string
	S3SecretKey      string
	S3BucketName     string
	LocalPath        string
}

// SyncConfig holds frame image sync tuning
type SyncConfig struct {
	Concurrency int
}

// Load reads .env.local and .env when present, then configuration from environment variables
func Load() Config {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	endpoint := getEnv("S3_ENDPOINT", "https://storage.yandexcloud.net")

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "3000"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
			ReadTimeout:    parseDuration(getEnv("SERVER_READ_TIMEOUT", "15s"), 15*time.Second),
			WriteTimeout:   parseDuration(getEnv("SERVER_WRITE_TIMEOUT", "10m"), 10*time.Minute),
		},
		Figma: FigmaConfig{
			Token:          getEnv("FIGMA_TOKEN", ""),
			FileKey:        getEnv("FILE_KEY", ""),
			BaseURL:        getEnv("FIGMA_API_URL", "https://api.figma.com"),
			ImageScale:     parseInt(getEnv("FIGMA_IMAGE_SCALE", "1"), 1),
			ImageBatchSize: parseInt(getEnv("FIGMA_IMAGE_BATCH_SIZE", "0"), 0),
			HTTPTimeout:    parseDuration(getEnv("FIGMA_HTTP_TIMEOUT", "60s"), 60*time.Second),
		},
		FileStorage: FileStorageConfig{
			UseS3:            getEnv("USE_S3", "true") == "true",
			S3Region:         getEnv("S3_REGION", "ru-central1"),
			S3Endpoint:       endpoint,
			S3PublicEndpoint: getEnv("S3_PUBLIC_ENDPOINT", endpoint),
			S3AccessKey:      getEnv("ACCESS_KEY", ""),
			S3SecretKey:      getEnv("SECRET_KEY", ""),
			S3BucketName:     getEnv("BUCKET_NAME", ""),
			LocalPath:        getEnv("LOCAL_STORAGE_PATH", "./uploads"),
		},
		Sync: SyncConfig{
			Concurrency: parseInt(getEnv("SYNC_CONCURRENCY", "1"), 1),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration string or returns a default value
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}

// parseInt parses a non-negative integer or returns a default value
func parseInt(value string, defaultValue int) int {
	if n, err := strconv.Atoi(value); err == nil && n >= 0 {
		return n
	}
	return defaultValue
}
