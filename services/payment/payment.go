package payment

import (
	"context"
	"fmt"

	"aircnc/models"
	"aircnc/utils"

	"go.uber.org/zap"
)

func (s *DefaultPaymentService) CreateIntent(ctx context.Context, price interface{}, idempotencyKey string) (*models.PaymentIntent, error) {
	amount, err := utils.ParseAmount(price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	minor, err := utils.ToMinorUnits(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}

	if idempotencyKey != "" && s.Cache != nil {
		secret, ok, err := s.Cache.Get(ctx, idempotencyKey)
		if err != nil {
			s.Logger.Warn("payment intent cache lookup failed", zap.String("idempotencyKey", idempotencyKey), zap.Error(err))
		} else if ok {
			s.Logger.Info("replaying cached payment intent", zap.String("idempotencyKey", idempotencyKey))
			return &models.PaymentIntent{ClientSecret: secret}, nil
		}
	}

	params := models.IntentParams{
		Amount:             minor,
		Currency:           models.DefaultCurrency,
		PaymentMethodTypes: []string{models.DefaultPaymentMethodType},
		IdempotencyKey:     idempotencyKey,
	}
	secret, err := s.Creator.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	s.Logger.Info("payment intent created", zap.Int64("amount", minor), zap.String("currency", params.Currency))

	if idempotencyKey != "" && s.Cache != nil {
		if err := s.Cache.Set(ctx, idempotencyKey, secret, s.CacheTTL); err != nil {
			s.Logger.Warn("payment intent cache store failed", zap.String("idempotencyKey", idempotencyKey), zap.Error(err))
		}
	}
	return &models.PaymentIntent{ClientSecret: secret}, nil
}
