package payment

import (
	"context"
	"fmt"

	"aircnc/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeIntentCreator creates PaymentIntents with the package-level stripe.Key.
type StripeIntentCreator struct{}

func NewStripeIntentCreator() *StripeIntentCreator {
	return &StripeIntentCreator{}
}

func (StripeIntentCreator) Create(ctx context.Context, p models.IntentParams) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(p.Amount),
		Currency:           stripe.String(p.Currency),
		PaymentMethodTypes: stripe.StringSlice(p.PaymentMethodTypes),
	}
	params.Context = ctx
	if p.IdempotencyKey != "" {
		params.SetIdempotencyKey(p.IdempotencyKey)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: %w", err)
	}
	return pi.ClientSecret, nil
}
