package di

import (
	"go.uber.org/fx"

	"github.com/eletrofluxo/storefront/internal/adapter/gateway"
	"github.com/eletrofluxo/storefront/internal/app"
	"github.com/eletrofluxo/storefront/internal/config"
	"github.com/eletrofluxo/storefront/internal/logger"
	"github.com/eletrofluxo/storefront/internal/pkg/auth"
	"github.com/eletrofluxo/storefront/internal/server/http/handlers"
	"github.com/eletrofluxo/storefront/internal/server/http/router"
	"github.com/eletrofluxo/storefront/internal/storage/postgres"
	"github.com/eletrofluxo/storefront/internal/storage/redis"
	"github.com/eletrofluxo/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		redis.Module,
		gateway.Module,
		usecase.Module,
		fx.Provide(func(client gateway.Client) app.PaymentProvider { return client }),
		fx.Provide(func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
