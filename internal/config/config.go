package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers selectable with STORE_DRIVER
const (
	DriverPostgres = "postgres"
	DriverSupabase = "supabase"
	DriverMemory   = "memory"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	Timezone    string `mapstructure:"TIMEZONE"`

	// Store selection
	StoreDriver string `mapstructure:"STORE_DRIVER"`

	// Database configuration
	DatabaseURL         string `mapstructure:"DATABASE_URL"`
	DatabaseHost        string `mapstructure:"DB_HOST"`
	DatabasePort        string `mapstructure:"DB_PORT"`
	DatabaseUser        string `mapstructure:"DB_USER"`
	DatabasePassword    string `mapstructure:"DB_PASSWORD"`
	DatabaseName        string `mapstructure:"DB_NAME"`
	DatabaseSSLMode     string `mapstructure:"DB_SSL_MODE"`
	DatabaseAutoMigrate bool   `mapstructure:"DB_AUTO_MIGRATE"`

	// Supabase configuration
	SupabaseURL        string `mapstructure:"SUPABASE_URL"`
	SupabaseAPIKey     string `mapstructure:"SUPABASE_API_KEY"`
	SupabaseTimeoutSec int    `mapstructure:"SUPABASE_TIMEOUT_SEC"`

	// JWT configuration
	AuthEnabled bool   `mapstructure:"AUTH_ENABLED"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Write-route rate limiting, per client IP
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	location *time.Location
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}
	config.StoreDriver = strings.ToLower(strings.TrimSpace(config.StoreDriver))

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("STORE_DRIVER", DriverPostgres)

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "fourdx")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", true)

	// Supabase defaults
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_API_KEY", "")
	v.SetDefault("SUPABASE_TIMEOUT_SEC", 10)

	// JWT defaults
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8501"})

	// Rate limit defaults
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 10)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	switch config.StoreDriver {
	case DriverPostgres:
		if config.DatabaseName == "" && config.DatabaseURL == "" {
			return fmt.Errorf("database name is required")
		}
	case DriverSupabase:
		if config.SupabaseURL == "" || config.SupabaseAPIKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_API_KEY are required for the supabase driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", config.StoreDriver)
	}

	if config.AuthEnabled {
		if config.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is set")
		}
		if config.IsProduction() && config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.RateLimitRPS < 0 || config.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}
	if config.RateLimitRPS > 0 && config.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when RATE_LIMIT_RPS is set")
	}

	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", config.Timezone, err)
	}
	config.location = loc

	return nil
}

// Location returns the time zone used to compute week boundaries
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// SupabaseTimeout returns the request timeout for the Supabase client
func (c *Config) SupabaseTimeout() time.Duration {
	return time.Duration(c.SupabaseTimeoutSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
