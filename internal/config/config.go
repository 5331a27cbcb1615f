// Package config loads runtime settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Log       LogConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            string        `validate:"required"`
	CORSOrigin      string        `validate:"required,url"`
	GinMode         string        `validate:"omitempty,oneof=debug release test"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// MongoDBConfig holds the document store settings. An empty URI selects the
// in-memory store.
type MongoDBConfig struct {
	URI            string
	Database       string        `validate:"required"`
	ConnectTimeout time.Duration `validate:"gt=0"`
	OpTimeout      time.Duration `validate:"gte=0"`
}

type LogConfig struct {
	Level  string `validate:"required,oneof=trace debug info warn error fatal"`
	Format string `validate:"required,oneof=json console"`
}

type AuthConfig struct {
	HashPasswords bool
	BcryptCost    int
	JWTSecret     string
	TokenTTL      time.Duration `validate:"gt=0"`
}

type RateLimitConfig struct {
	RPS   float64 `validate:"gte=0"`
	Burst int     `validate:"gte=1"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "patient_monitor")
	v.SetDefault("MONGO_CONNECT_TIMEOUT", 10*time.Second)
	v.SetDefault("MONGO_OP_TIMEOUT", time.Duration(0))
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("HASH_PASSWORDS", false)
	v.SetDefault("BCRYPT_COST", 14)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("RATE_LIMIT_RPS", 0.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			CORSOrigin:      v.GetString("CORS_ORIGIN"),
			GinMode:         v.GetString("GIN_MODE"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		MongoDB: MongoDBConfig{
			URI:            v.GetString("MONGO_URI"),
			Database:       v.GetString("MONGO_DATABASE"),
			ConnectTimeout: v.GetDuration("MONGO_CONNECT_TIMEOUT"),
			OpTimeout:      v.GetDuration("MONGO_OP_TIMEOUT"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Auth: AuthConfig{
			HashPasswords: v.GetBool("HASH_PASSWORDS"),
			BcryptCost:    v.GetInt("BCRYPT_COST"),
			JWTSecret:     v.GetString("JWT_SECRET"),
			TokenTTL:      v.GetDuration("TOKEN_TTL"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}
