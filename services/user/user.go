package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aircnc/models"

	"go.uber.org/zap"
)

var ErrMissingEmail = errors.New("email is required")

func (s *DefaultUserService) UpsertUser(ctx context.Context, email string, fields models.User) (*models.UpdateResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrMissingEmail
	}
	if fields == nil {
		fields = models.User{}
	}

	result, err := s.Repo.UpsertByEmail(ctx, email, fields)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	if result.UpsertedCount > 0 {
		s.Logger.Info("user created", zap.String("email", email))
	}
	return result, nil
}

func (s *DefaultUserService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
