package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`
	StaticDir       string        `json:"static_dir"`

	// Redis configuration (daily article cache)
	RedisURL     string        `json:"redis_url"`
	CacheVersion string        `json:"cache_version"`
	CacheTTL     time.Duration `json:"cache_ttl"`

	// Feed pipeline
	SourcesPath     string        `json:"sources_path"`
	PrebuiltFeedURL string        `json:"prebuilt_feed_url"`
	FeedTimeout     time.Duration `json:"feed_timeout"`
	PoolSize        int           `json:"pool_size"`
	DailySize       int           `json:"daily_size"`

	// Mission persistence
	SQLitePath string `json:"sqlite_path"`
	UserID     string `json:"user_id"`

	// CloudFlare R2 Configuration (prebuilt feed publishing)
	R2Endpoint  string `json:"r2_endpoint"`
	R2AccessKey string `json:"r2_access_key"`
	R2SecretKey string `json:"r2_secret_key"`
	R2Bucket    string `json:"r2_bucket"`
	R2AccountID string `json:"r2_account_id"`

	// Batch output
	PrebuiltOutPath string `json:"prebuilt_out_path"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`

	// Security
	AdminAPIKey string `json:"admin_api_key"`
}

// Load loads configuration from environment variables and validates it
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		// Server configuration
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),
		StaticDir:       getEnv("STATIC_DIR", "./web/static"),

		// Redis configuration
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
		CacheVersion: getEnv("CACHE_VERSION", "v3"),
		CacheTTL:     getEnvAsDuration("CACHE_TTL", 48*time.Hour),

		// Feed pipeline
		SourcesPath:     getEnv("FEED_SOURCES_PATH", "./configs/sources.yaml"),
		PrebuiltFeedURL: getEnv("PREBUILT_FEED_URL", ""),
		FeedTimeout:     getEnvAsDuration("FEED_TIMEOUT", 15*time.Second),
		PoolSize:        getEnvAsInt("FEED_POOL_SIZE", 20),
		DailySize:       getEnvAsInt("DAILY_SET_SIZE", 6),

		// Mission persistence
		SQLitePath: getEnv("SQLITE_PATH", "./data/insight.db"),
		UserID:     getEnv("USER_ID", "jiyul"),

		// CloudFlare R2 Configuration
		R2Endpoint:  getEnv("R2_ENDPOINT", ""),
		R2AccessKey: getEnv("R2_ACCESS_KEY", ""),
		R2SecretKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2Bucket:    getEnv("R2_BUCKET", "junior-insight"),
		R2AccountID: getEnv("CLOUDFLARE_ACCOUNT_ID", ""),

		// Batch output
		PrebuiltOutPath: getEnv("PREBUILT_OUT_PATH", "./public/news.json"),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		// Security
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return nil
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
