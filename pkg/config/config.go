package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Storage  StorageConfig
	LLM      LLMConfig
	Pipeline PipelineConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int
	MinConns    int
	AutoMigrate bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// StorageConfig holds object storage configuration for export artifacts
type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
	PublicURL       string
}

// LLMConfig holds the language-model service configuration
type LLMConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// PipelineConfig holds the deck-generation heuristics. The bonus values are
// inherited tunables from the original scoring tables; do not read deeper
// semantics into them.
type PipelineConfig struct {
	// Template selection
	KeywordBonus     int
	TimeSeriesBonus  int
	ComparisonBonus  int
	ComplexityBonus  int
	DefaultTimeLimit int // minutes, applied when the brief leaves it unset

	// Quality scoring
	BaselineQuality    float64
	InsightDepthBonus  float64
	AudienceMatchBonus float64
	SlideCountBonus    float64
	CompletenessBonus  float64

	// Insight generation
	MaxInsights int
	SampleRows  int
}

// DefaultPipeline returns the pipeline heuristics with their stock values.
func DefaultPipeline() PipelineConfig {
	return PipelineConfig{
		KeywordBonus:       10,
		TimeSeriesBonus:    6,
		ComparisonBonus:    5,
		ComplexityBonus:    4,
		DefaultTimeLimit:   15,
		BaselineQuality:    0.70,
		InsightDepthBonus:  0.10,
		AudienceMatchBonus: 0.10,
		SlideCountBonus:    0.05,
		CompletenessBonus:  0.05,
		MaxInsights:        10,
		SampleRows:         20,
	}
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	pipeline := DefaultPipeline()
	pipeline.KeywordBonus = getEnvAsInt("PIPELINE_KEYWORD_BONUS", pipeline.KeywordBonus)
	pipeline.DefaultTimeLimit = getEnvAsInt("PIPELINE_DEFAULT_TIME_LIMIT", pipeline.DefaultTimeLimit)
	pipeline.BaselineQuality = getEnvAsFloat("PIPELINE_BASELINE_QUALITY", pipeline.BaselineQuality)
	pipeline.MaxInsights = getEnvAsInt("PIPELINE_MAX_INSIGHTS", pipeline.MaxInsights)
	pipeline.SampleRows = getEnvAsInt("PIPELINE_SAMPLE_ROWS", pipeline.SampleRows)

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			Name:        getEnv("DB_NAME", "deckpilot"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxConns:    getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:    getEnvAsInt("DB_MIN_CONNS", 5),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
		},
		JWT: JWTConfig{
			AccessSecret:  getEnv("JWT_ACCESS_SECRET", "dev-access-secret"),
			RefreshSecret: getEnv("JWT_REFRESH_SECRET", "dev-refresh-secret"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Storage: StorageConfig{
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "deck-exports"),
			UseSSL:          getEnvAsBool("STORAGE_USE_SSL", false),
			PublicURL:       getEnv("STORAGE_PUBLIC_URL", ""),
		},
		LLM: LLMConfig{
			BaseURL:    getEnv("LLM_API_URL", "https://api.groq.com"),
			APIKey:     getEnv("LLM_API_KEY", ""),
			Model:      getEnv("LLM_MODEL", "llama-3.1-70b-versatile"),
			Timeout:    getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),
			MaxRetries: getEnvAsInt("LLM_MAX_RETRIES", 2),
		},
		Pipeline: pipeline,
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks required configuration values
func (c *Config) validate() error {
	if c.Server.Environment == "production" {
		if c.JWT.AccessSecret == "dev-access-secret" || c.JWT.RefreshSecret == "dev-refresh-secret" {
			return fmt.Errorf("JWT secrets must be set in production")
		}
	}
	if c.Pipeline.BaselineQuality < 0 || c.Pipeline.BaselineQuality > 1 {
		return fmt.Errorf("PIPELINE_BASELINE_QUALITY must be within [0,1]")
	}
	return nil
}

// GetDatabaseDSN returns the PostgreSQL connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User,
		c.Database.Password, c.Database.Name, c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// getEnv gets an environment variable with a fallback default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as int with a fallback default
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as float64 with a fallback default
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as bool with a fallback default
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as duration with a fallback default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
