package container

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/account-core/config"
	"github.com/oksasatya/account-core/internal/application"
	"github.com/oksasatya/account-core/internal/domain/repository"
	"github.com/oksasatya/account-core/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/account-core/internal/infrastructure/postgres"
	"github.com/oksasatya/account-core/pkg/helpers"
)

// Container holds the components shared across route modules. It is built
// once at startup and not mutated afterwards.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	PGPool *pgxpool.Pool            // nil with the memory store
	Redis  *redis.Client            // nil when rate limiting is disabled
	Events *helpers.RabbitPublisher // nil when events are disabled

	JWT      *helpers.JWTManager
	Hasher   *helpers.BcryptHasher
	Accounts repository.AccountRepository
	Service  *application.Service
}

// New connects the configured backends and wires the account service.
// Redis and RabbitMQ are optional: a failed connection is logged and the
// dependent feature is switched off.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	jwtManager, err := helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	c.JWT = jwtManager
	c.Hasher = helpers.NewBcryptHasher(cfg.BcryptCost)

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := pginfra.NewPool(ctx, pginfra.PoolConfig{
			DSN:             cfg.PostgresDSN(),
			MaxConns:        cfg.DBMaxConns,
			MinConns:        cfg.DBMinConns,
			MaxConnLifetime: cfg.DBMaxConnLife,
		})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pginfra.RunMigrations(cfg.PostgresDSN(), logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		c.PGPool = pool
		c.Accounts = pginfra.NewAccountRepository(pool)
	case config.StoreDriverMemory:
		logger.Warn("using in-memory account store; data is lost on restart")
		c.Accounts = memory.NewAccountRepository()
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if cfg.RedisAddr != "" {
		rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.WithError(err).Warn("redis unavailable, rate limiting disabled")
		} else {
			c.Redis = rdb
		}
	}

	if cfg.EventsEnabled() {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQAccountQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable, account events disabled")
		} else {
			c.Events = pub
		}
	}

	c.Service = application.NewService(c.Accounts, c.Hasher, c.JWT, c.eventPublisher(), logger)
	return c, nil
}

// eventPublisher avoids handing a typed nil to the service.
func (c *Container) eventPublisher() application.EventPublisher {
	if c.Events == nil {
		return nil
	}
	return c.Events
}

// Close releases backend connections.
func (c *Container) Close() {
	if c.Events != nil {
		c.Events.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.PGPool != nil {
		c.PGPool.Close()
	}
}
