package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Authentication
	JWTSecret string `yaml:"jwt_secret"`
	JWTIssuer string `yaml:"jwt_issuer"`

	// Dataset
	SampleDatasetURL string `yaml:"sample_dataset_url"`
	MaxUploadBytes   int64  `yaml:"max_upload_bytes"`

	// Graph
	EntityCap int `yaml:"entity_cap"`

	// Exam
	ExamTimeLimit time.Duration `yaml:"exam_time_limit"`

	// Accounts
	AccountsDBPath string `yaml:"accounts_db_path"`

	// Feature flags
	EnableCORS     bool     `yaml:"enable_cors"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoadConfig loads configuration from defaults, an optional YAML file named
// by CONFIG_FILE, and environment variables, in increasing precedence.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		ServerAddress:    ":8080",
		Environment:      "development",
		LogLevel:         "info",
		JWTSecret:        "development-secret-change-in-production",
		JWTIssuer:        "news-network-api",
		SampleDatasetURL: "http://localhost:5173/news_full_mcq3_type9_entities_novectors.jsonl",
		MaxUploadBytes:   64 << 20,
		EntityCap:        50,
		ExamTimeLimit:    10 * time.Minute,
		AccountsDBPath:   "accounts.db",
		EnableCORS:       true,
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
	}
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) applyEnv() {
	c.ServerAddress = getEnv("SERVER_ADDRESS", c.ServerAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.JWTIssuer = getEnv("JWT_ISSUER", c.JWTIssuer)
	c.SampleDatasetURL = getEnv("SAMPLE_DATASET_URL", c.SampleDatasetURL)
	c.MaxUploadBytes = getEnvInt64("MAX_UPLOAD_BYTES", c.MaxUploadBytes)
	c.EntityCap = getEnvInt("ENTITY_CAP", c.EntityCap)
	c.AccountsDBPath = getEnv("ACCOUNTS_DB_PATH", c.AccountsDBPath)
	c.EnableCORS = getEnvBool("ENABLE_CORS", c.EnableCORS)

	if v := os.Getenv("EXAM_TIME_LIMIT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.ExamTimeLimit = time.Duration(secs) * time.Second
		}
	}
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" || c.JWTSecret == "development-secret-change-in-production" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
	}
	if c.EntityCap <= 0 {
		return fmt.Errorf("ENTITY_CAP must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvInt64 gets a 64-bit integer environment variable with a default value
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}
