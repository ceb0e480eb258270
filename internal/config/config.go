// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Mongo       MongoConfig
	Audit       AuditConfig
	JWT         JWTConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Jobs        JobsConfig
	I18n        I18nConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	IdleTimeout     int
	ShutdownTimeout int
}

type MongoConfig struct {
	Driver            string
	URI               string
	Database          string
	ProductCollection string
	UserCollection    string
	ReviewCollection  string
	CouponCollection  string
	ConnectTimeout    time.Duration
	OperationTimeout  time.Duration
	MaxPoolSize       uint64
}

type AuditConfig struct {
	Enabled      bool
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type JWTConfig struct {
	SecretKey string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type JobsConfig struct {
	DigestSchedule string
}

type I18nConfig struct {
	DefaultLocale string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:     getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:     getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
			ShutdownTimeout: getEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30),
		},
		Mongo: MongoConfig{
			Driver:            strings.ToLower(getEnv("STORE_DRIVER", StoreDriverMongo)),
			URI:               getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:          getEnv("MONGODB_DATABASE", "Product-hunt"),
			ProductCollection: getEnv("MONGODB_PRODUCT_COLLECTION", "Products"),
			UserCollection:    getEnv("MONGODB_USER_COLLECTION", "Users"),
			ReviewCollection:  getEnv("MONGODB_REVIEW_COLLECTION", "reviews"),
			CouponCollection:  getEnv("MONGODB_COUPON_COLLECTION", "coupons"),
			ConnectTimeout:    getEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
			OperationTimeout:  getEnvAsDuration("MONGO_OPERATION_TIMEOUT", 5*time.Second),
			MaxPoolSize:       uint64(getEnvAsInt("MONGO_MAX_POOL_SIZE", 100)),
		},
		Audit: AuditConfig{
			Enabled:      getEnvAsBool("AUDIT_ENABLED", false),
			Host:         getEnv("AUDIT_DB_HOST", "localhost"),
			Port:         getEnv("AUDIT_DB_PORT", "5432"),
			User:         getEnv("AUDIT_DB_USER", "postgres"),
			Password:     getEnv("AUDIT_DB_PASSWORD", ""),
			Database:     getEnv("AUDIT_DB_NAME", "launchpad_audit"),
			SSLMode:      getEnv("AUDIT_DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("AUDIT_DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvAsInt("AUDIT_DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvAsInt("AUDIT_DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("AUDIT_DB_LOG_LEVEL", "silent"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 10),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Jobs: JobsConfig{
			DigestSchedule: getEnv("DIGEST_SCHEDULE", "@every 15m"),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Mongo.Driver != StoreDriverMongo && c.Mongo.Driver != StoreDriverMemory {
		return fmt.Errorf("unsupported store driver %q", c.Mongo.Driver)
	}

	if c.Mongo.Driver == StoreDriverMongo && c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI is required for the mongo store driver")
	}

	if c.Mongo.OperationTimeout <= 0 {
		return fmt.Errorf("mongo operation timeout must be positive")
	}

	if c.IsProduction() {
		if c.Mongo.Driver == StoreDriverMemory {
			return fmt.Errorf("memory store driver is not allowed in production")
		}
		if c.Audit.Enabled && c.Audit.Password == "" {
			return fmt.Errorf("audit database password is required in production")
		}
		if c.JWT.SecretKey == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT secret key must be changed in production")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
