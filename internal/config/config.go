package config

import (
	"errors"  // Validation errors
	"fmt"     // Error formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Supported storage drivers
const (
	DriverMongo    = "mongo"    // MongoDB document store (default)
	DriverMySQL    = "mysql"    // MySQL through GORM
	DriverPostgres = "postgres" // PostgreSQL through GORM
)

// Config holds the application configuration
type Config struct {
	AppPort      string // Application port
	DBDriver     string // Storage driver: mongo, mysql or postgres
	MongoURI     string // Full MongoDB connection string, overrides the Atlas template
	DBUser       string // Database user
	DBPassword   string // Database password
	DBHost       string // Database host (Atlas cluster host for mongo)
	DBPort       string // Database port (SQL drivers only)
	DBName       string // Database name
	JWTSecret    string // JWT secret key
	StripeSecret string // Stripe secret key
	RedisAddr    string // Redis server address, empty disables caching
	RedisPass    string // Redis password
	RedisDB      int    // Redis database number
	IsProd       bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:      getEnv("PORT", "5000"),
		DBDriver:     getEnv("DB_DRIVER", DriverMongo),
		MongoURI:     os.Getenv("MONGO_URI"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   firstEnv("DB_PASS", "DB_PASSWORD"),
		DBHost:       getEnv("DB_HOST", "cluster0.bhgag9l.mongodb.net"),
		DBPort:       os.Getenv("DB_PORT"),
		DBName:       getEnv("DB_NAME", "bistroDB"),
		JWTSecret:    firstEnv("JWT_SECRET", "ACCESS_TOKEN_SECRET"),
		StripeSecret: firstEnv("STRIPE_SECRET_KEY", "PAYMENT_SECRET_KEY"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisPass:    os.Getenv("REDIS_PASS"),
		RedisDB:      redisDB,
		IsProd:       os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// Validate reports configuration that would make the server unusable
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	switch c.DBDriver {
	case DriverMongo, DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// MongoConnString builds the Atlas SRV connection string unless MONGO_URI is given
func (c *Config) MongoConnString() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0", c.DBUser, c.DBPassword, c.DBHost)
}

// SQLDSN builds the data source name for the configured SQL driver
func (c *Config) SQLDSN() string {
	if c.DBDriver == DriverPostgres {
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", c.DBHost, port, c.DBUser, c.DBPassword, c.DBName)
	}
	port := c.DBPort
	if port == "" {
		port = "3306"
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + port + ")/" + c.DBName + "?parseTime=true"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// firstEnv returns the first non-empty variable among keys
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
