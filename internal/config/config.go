package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Engine   EngineConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret  string
	AdminEmail string
}

// RedisConfig holds Redis connection settings for device-claim state
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// EngineConfig holds tunables for the eligibility and referral engine
type EngineConfig struct {
	FreeCreditsAmount       int // credits granted to an eligible new account
	MilestoneRewardCredits  int // credits per withdrawal milestone reached
	RiskScoreDenyThreshold  int // risk score at or above which eligibility is denied
	WithdrawalRateLimit     int // max withdrawal submissions per window per user
	WithdrawalRateWindowSec int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port       int
	WebAppURI  string
	SignupPath string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Auth.AdminEmail = getEnvWithDefault("ADMIN_EMAIL", "admin@imperium.com")

	// Redis configuration (optional; the claim-marker store falls back to its
	// in-memory implementation when disabled)
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	if cfg.Redis.Enabled {
		if cfg.Redis.Host, err = requireEnv("REDIS_HOST"); err != nil {
			return nil, err
		}
		port := getEnvWithDefault("REDIS_PORT", "6379")
		if cfg.Redis.Port, err = strconv.Atoi(port); err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
		}
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
		db := getEnvWithDefault("REDIS_DB", "0")
		if cfg.Redis.DB, err = strconv.Atoi(db); err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
		}
	}

	// Kafka configuration
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "referral-events")

	// Engine configuration
	if cfg.Engine.FreeCreditsAmount, err = intEnvWithDefault("FREE_CREDITS_AMOUNT", 10); err != nil {
		return nil, err
	}
	if cfg.Engine.MilestoneRewardCredits, err = intEnvWithDefault("MILESTONE_REWARD_CREDITS", 2); err != nil {
		return nil, err
	}
	if cfg.Engine.RiskScoreDenyThreshold, err = intEnvWithDefault("RISK_SCORE_DENY_THRESHOLD", 50); err != nil {
		return nil, err
	}
	if cfg.Engine.WithdrawalRateLimit, err = intEnvWithDefault("WITHDRAWAL_RATE_LIMIT", 3); err != nil {
		return nil, err
	}
	if cfg.Engine.WithdrawalRateWindowSec, err = intEnvWithDefault("WITHDRAWAL_RATE_WINDOW_SEC", 60); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	if cfg.Server.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}
	cfg.Server.SignupPath = getEnvWithDefault("SIGNUP_PATH", "/signup")

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func intEnvWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}
