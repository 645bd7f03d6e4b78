package gateway

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/eletrofluxo/storefront/internal/config"
	"github.com/eletrofluxo/storefront/internal/usecase"
)

// Module exposes the gateway client and its checkout adapter to the fx graph.
var Module = fx.Provide(
	newClient,
	func(c Client) usecase.CheckoutGateway { return checkoutGateway{client: c} },
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.GatewayAddress, p.Logger)
}
