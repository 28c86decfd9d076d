package user

import (
	"context"

	userRepo "aircnc/database/repository/user"
	"aircnc/models"

	"go.uber.org/zap"
)

type UserService interface {
	// UpsertUser stores the profile under email; repeated calls never duplicate the user.
	UpsertUser(ctx context.Context, email string, fields models.User) (*models.UpdateResult, error)
	// GetUserByEmail returns nil, nil when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}
