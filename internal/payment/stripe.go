// Package payment wraps the Stripe payment intent call used at checkout.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Currency every intent is created in
const Currency = stripe.CurrencyUSD

// ErrGateway wraps any failure reported by the payment gateway
var ErrGateway = errors.New("payment gateway error")

// IntentCreator creates a card payment intent and returns its client secret
type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// StripeGateway implements IntentCreator against the Stripe API
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a gateway for secretKey. A nil backends value uses
// the live Stripe endpoints, still without network retries.
func NewStripeGateway(secretKey string, backends *stripe.Backends) *StripeGateway {
	if backends == nil {
		backends = newBackends(nil) // Live endpoints
	}
	return &StripeGateway{api: client.New(secretKey, backends)}
}

// ToMinorUnits converts a decimal amount to cents, truncating any fraction
func ToMinorUnits(price float64) int64 {
	return int64(price * 100)
}

func (g *StripeGateway) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(ToMinorUnits(price)),
		Currency:           stripe.String(string(Currency)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return pi.ClientSecret, nil
}

// Backends points every Stripe backend at url
func Backends(url string) *stripe.Backends {
	return newBackends(stripe.String(url))
}

// newBackends builds the API, Connect and Uploads backends. A nil url keeps
// each backend's default endpoint.
func newBackends(url *string) *stripe.Backends {
	return &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig(url)),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig(url)),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig(url)),
	}
}

// backendConfig makes one attempt per request and logs through logrus.
// A fresh value per backend, since GetBackendWithConfig fills in the URL.
func backendConfig(url *string) *stripe.BackendConfig {
	return &stripe.BackendConfig{
		URL:               url,                     // nil means the backend default
		MaxNetworkRetries: stripe.Int64(0),         // Failures surface as ErrGateway
		LeveledLogger:     logrus.StandardLogger(), // Same stream as the server
	}
}
