package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost string `env:"REVERSI_SERVER_HOST" env-default:"localhost" env-description:"Host to listen on"`
	ServerPort string `env:"REVERSI_SERVER_PORT" env-default:"3000"      env-description:"Port to listen on"`

	// RedisURL selects the session store. Sessions are kept in memory when it is empty.
	RedisURL string `env:"REVERSI_REDIS_URL" env-description:"Redis URL for game sessions, empty keeps them in memory"`

	// PostgresURL selects the preference store. Preferences are kept in memory when it is empty.
	PostgresURL string `env:"REVERSI_POSTGRES_URL" env-description:"Postgres URL for preferences, empty keeps them in memory"`

	StaticDir   string        `env:"REVERSI_STATIC_DIR"      env-default:"static" env-description:"Directory with the web page files"`
	AIDelay     time.Duration `env:"REVERSI_AI_DELAY"        env-default:"500ms"  env-description:"Pause before the computer moves"`
	MediumDepth int           `env:"REVERSI_AI_MEDIUM_DEPTH" env-default:"3"      env-description:"Search depth at medium difficulty"`
	HardDepth   int           `env:"REVERSI_AI_HARD_DEPTH"   env-default:"6"      env-description:"Search depth at hard difficulty"`
	SessionTTL  time.Duration `env:"REVERSI_SESSION_TTL"     env-default:"24h"    env-description:"Time after which idle games are removed from Redis"`
}

// ReadServerConfig reads the configuration from environment variables.
func ReadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("cannot read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadServerConfig loads configuration from environment variables and exits on failure.
func LoadServerConfig() *ServerConfig {
	cfg, err := ReadServerConfig()
	if err != nil {
		slog.Error("Cannot load configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

func (cfg *ServerConfig) validate() error {
	if cfg.MediumDepth < 1 || cfg.HardDepth < 1 {
		return fmt.Errorf("search depths must be at least 1, got medium=%d hard=%d", cfg.MediumDepth, cfg.HardDepth)
	}

	if cfg.AIDelay < 0 {
		return fmt.Errorf("AI delay cannot be negative, got %s", cfg.AIDelay)
	}

	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got %s", cfg.SessionTTL)
	}

	return nil
}

// Address returns the host:port the server listens on.
func (cfg *ServerConfig) Address() string {
	return cfg.ServerHost + ":" + cfg.ServerPort
}

// Usage returns a description of all environment variables.
func Usage() string {
	description, err := cleanenv.GetDescription(&ServerConfig{}, nil)
	if err != nil {
		return ""
	}
	return description
}
