// internal/adapters/stripe/stripe.go
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/macgtech/storefront/internal/domain"
)

const Provider = "stripe"

// EventCheckoutCompleted is the only event type that moves an order; any
// other type is acknowledged without a state change.
const EventCheckoutCompleted = "checkout.session.completed"

// Adapter creates hosted checkout sessions and verifies webhook signatures
// for the card processor. Amounts are converted to minor units (cents),
// rounded to the nearest integer.
type Adapter struct {
	webhookSecret string
	siteURL       string
	currency      string
}

func New(apiKey, webhookSecret, siteURL, currency string) *Adapter {
	stripe.Key = apiKey
	return &Adapter{
		webhookSecret: webhookSecret,
		siteURL:       siteURL,
		currency:      currency,
	}
}

// minorUnits converts a dollar amount to integer cents, rounded to the
// nearest cent.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (a *Adapter) CreateSession(ctx context.Context, orderID string, amount float64, email, name string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CustomerEmail:      stripe.String(email),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(a.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Order #%s", orderID)),
						Description: stripe.String(fmt.Sprintf("Order placed by %s", name)),
					},
					UnitAmount: stripe.Int64(minorUnits(amount)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/payment-success?orderId=%s", a.siteURL, orderID)),
		CancelURL:  stripe.String(a.siteURL + "/cart"),
	}
	params.Context = ctx
	params.AddMetadata("orderId", orderID)
	params.AddMetadata("customerName", name)

	s, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderSession, err)
	}
	if s.URL == "" {
		return "", fmt.Errorf("%w: session has no url", domain.ErrProviderSession)
	}
	return s.URL, nil
}

// VerifyWebhook checks the stripe-signature header against the shared
// webhook secret before any payload field is read. Payloads that fail
// verification never reach reconciliation.
func (a *Adapter) VerifyWebhook(payload []byte, signatureHeader string) (*domain.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, a.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWebhookVerification, err)
	}

	ev := &domain.PaymentEvent{Provider: Provider, Type: string(event.Type)}
	if ev.Type != EventCheckoutCompleted {
		return ev, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedWebhook, err)
	}
	ev.OrderID = s.Metadata["orderId"]
	ev.CustomerEmail = s.CustomerEmail
	if s.PaymentIntent != nil {
		ev.PaymentIntent = s.PaymentIntent.ID
	}
	return ev, nil
}
