package userRepo

import (
	"context"

	"aircnc/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// UpsertByEmail sets the given fields on the user with this email, creating it if absent.
	UpsertByEmail(ctx context.Context, email string, fields models.User) (*models.UpdateResult, error)
	// GetByEmail retrieves a user by its email address; nil, nil when absent.
	GetByEmail(ctx context.Context, email string) (models.User, error)
}
