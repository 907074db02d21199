package registry

import (
	"context"
	"log/slog"

	"addressing/config"
	"addressing/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RegistryParams holds dependencies for the house number registry, injected by Fx
type RegistryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRegistry returns the Redis registry when enabled and the in-process one otherwise.
func NewRegistry(params RegistryParams) (service.HouseNumberRegistry, error) {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Redis disabled, using in-process house number registry")

		return NewMemoryRegistry(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrapf(err, "ping redis at %s", cfg.Addr)
			}
			logger.Info("Connected to Redis house number registry", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisRegistry(client, cfg.KeyPrefix, logger), nil
}

// Module provides the registry FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRegistry),
)
