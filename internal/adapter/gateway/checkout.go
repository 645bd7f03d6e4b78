package gateway

import (
	"context"

	"github.com/eletrofluxo/storefront/internal/usecase"
)

// checkoutGateway adapts Client to the checkout contract of the order flow.
type checkoutGateway struct {
	client Client
}

func (g checkoutGateway) CreateCheckout(ctx context.Context, orderNumber string, amountCents int64, payerEmail string) (usecase.CheckoutSession, error) {
	pref, err := g.client.CreatePreference(ctx, PreferenceRequest{
		OrderNumber: orderNumber,
		AmountCents: amountCents,
		PayerEmail:  payerEmail,
	})
	if err != nil {
		return usecase.CheckoutSession{}, err
	}
	return usecase.CheckoutSession{Reference: pref.ID, PaymentURL: pref.InitPoint}, nil
}
