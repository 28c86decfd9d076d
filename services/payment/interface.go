package payment

import (
	"context"
	"errors"
	"time"

	"aircnc/models"

	"go.uber.org/zap"
)

// ErrInvalidPrice is returned when the submitted price is missing or not a positive number.
var ErrInvalidPrice = errors.New("invalid price")

// PaymentService issues payment intents for client-side confirmation.
type PaymentService interface {
	// CreateIntent creates one remote intent per call. A non-empty idempotencyKey is
	// forwarded to the processor and used to replay an earlier client secret.
	CreateIntent(ctx context.Context, price interface{}, idempotencyKey string) (*models.PaymentIntent, error)
}

// IntentCreator talks to the payment processor and returns the intent's client secret.
type IntentCreator interface {
	Create(ctx context.Context, params models.IntentParams) (string, error)
}

// IntentCache remembers client secrets by idempotency key.
type IntentCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, clientSecret string, ttl time.Duration) error
}

// DefaultPaymentService is the production implementation. Cache may be nil.
type DefaultPaymentService struct {
	Creator  IntentCreator
	Cache    IntentCache
	CacheTTL time.Duration
	Logger   *zap.Logger
}
