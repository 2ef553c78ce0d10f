package payment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeProvider creates card payment intents in a single fixed currency.
type StripeProvider struct {
	api      *client.API
	currency string
}

// NewStripeProvider builds a provider for the given secret key. Passing nil
// backends uses Stripe's production endpoints.
func NewStripeProvider(secretKey, currency string, backends *stripe.Backends) *StripeProvider {
	return &StripeProvider{
		api:      client.New(secretKey, backends),
		currency: currency,
	}
}

// CreatePaymentIntent asks Stripe for an intent of amount minor units and
// returns the client secret the browser needs to confirm it.
func (p *StripeProvider) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(p.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	log.Debug().
		Str("paymentIntent", intent.ID).
		Int64("amount", amount).
		Str("currency", p.currency).
		Msg("Payment intent created")

	return intent.ClientSecret, nil
}
