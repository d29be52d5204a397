// internal/app/app.go
package app

import (
	"invoice-api/config"

	"github.com/go-playground/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client // nil when Redis is not configured; disables the list cache
	Validator   *validator.Validate
}
