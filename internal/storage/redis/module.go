package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/eletrofluxo/storefront/internal/config"
	"github.com/eletrofluxo/storefront/internal/usecase"
)

// Module wires the redis client and the cart store.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(newCartStore),
	fx.Provide(func(s *CartStore) usecase.CartStore { return s }),
	fx.Invoke(registerLifecycle),
)

func newClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
}

func newCartStore(client *redis.Client, cfg *config.Config) *CartStore {
	return NewCartStore(client, cfg.CartTTL)
}

func registerLifecycle(lc fx.Lifecycle, client *redis.Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
