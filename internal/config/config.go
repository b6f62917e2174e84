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
	// Server
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret         string
	JWTExpirationDur  time.Duration
	JWTRefreshExpDur  time.Duration
	VerifyCodeExpDur  time.Duration
	MaxFailedLogins   int
	LoginLockDuration time.Duration

	// Market data
	AlphaVantageAPIKey string
	FinnhubAPIKey      string

	// Generative feedback
	GeminiAPIKey string
	GeminiModel  string

	// Events
	AMQPURL      string
	AMQPExchange string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "finwise"),
		DBPassword: getEnv("DB_PASSWORD", "finwise"),
		DBName:     getEnv("DB_NAME", "finwise"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret:         getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		JWTExpirationDur:  getDuration("JWT_EXPIRY", 24*time.Hour),
		JWTRefreshExpDur:  getDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		VerifyCodeExpDur:  getDuration("VERIFY_CODE_EXPIRY", time.Hour),
		MaxFailedLogins:   getInt("MAX_FAILED_LOGINS", 5),
		LoginLockDuration: getDuration("LOGIN_LOCK_DURATION", 15*time.Minute),

		// Market data
		AlphaVantageAPIKey: getEnv("ALPHAVANTAGE_API_KEY", ""),
		FinnhubAPIKey:      getEnv("FINNHUB_API_KEY", ""),

		// Generative feedback
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-pro"),

		// Events
		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "finwise.events"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfig = config
	return config, nil
}

// Validate checks the configuration for values the server cannot start with.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port '%s': must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == "fallback-secret-key-for-dev-only") {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.MaxFailedLogins < 1 {
		return fmt.Errorf("invalid MAX_FAILED_LOGINS %d: must be positive", c.MaxFailedLogins)
	}
	return nil
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
