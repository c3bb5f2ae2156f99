package services

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/reversi/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services.
// A nil field means the matching in-memory store is used instead.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
}

// InitServices connects to the services configured in cfg.
func InitServices(cfg *config.ServerConfig) (*Services, error) {
	services := &Services{}

	if cfg.PostgresURL != "" {
		postgres, err := InitPostgres(cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		services.Postgres = postgres
	}

	if cfg.RedisURL != "" {
		redis, err := InitRedis(cfg.RedisURL)
		if err != nil {
			_ = services.Close()
			return nil, err
		}
		services.Redis = redis
	}

	return services, nil
}

// Close closes all open connections.
func (s *Services) Close() error {
	var errs []error

	if s.Postgres != nil {
		if err := s.Postgres.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing postgres: %w", err))
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing redis: %w", err))
		}
	}

	return errors.Join(errs...)
}
