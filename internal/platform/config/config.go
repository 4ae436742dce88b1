package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// CoordinatorUserID identifies the service-learning coordinator. It is
	// resolved here once; the workflow never looks the coordinator up by email.
	CoordinatorUserID string

	// DefaultRequiredHours is applied to placement requests that do not
	// specify a required total.
	DefaultRequiredHours int

	// EvidenceDir is where ledger evidence artifacts are stored.
	EvidenceDir string

	// RedisAddr enables the progress snapshot cache when non-empty.
	RedisAddr string

	// RateLimit is a ulule/limiter formatted rate, e.g. "10-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "service-learning-app")
	viper.SetDefault("COORDINATOR_USER_ID", "")
	viper.SetDefault("DEFAULT_REQUIRED_HOURS", 480)
	viper.SetDefault("EVIDENCE_DIR", "./evidence")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("RATE_LIMIT", "30-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.CoordinatorUserID = viper.GetString("COORDINATOR_USER_ID")
	if cfg.CoordinatorUserID == "" {
		log.Println("Warning: COORDINATOR_USER_ID not set. Placement requests cannot be routed to a coordinator.")
	}

	cfg.DefaultRequiredHours = viper.GetInt("DEFAULT_REQUIRED_HOURS")
	if cfg.DefaultRequiredHours <= 0 {
		cfg.DefaultRequiredHours = 480
		log.Printf("Warning: Invalid DEFAULT_REQUIRED_HOURS. Defaulting to %d.\n", cfg.DefaultRequiredHours)
	}

	cfg.EvidenceDir = viper.GetString("EVIDENCE_DIR")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
